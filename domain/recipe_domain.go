package domain

var (
	MessageSuccessCreateRecipe = "recipe created successfully, you can now add components"
	MessageSuccessUpdateRecipe = "recipe updated successfully"
	MessageSuccessDeleteRecipe = "recipe deleted successfully"

	MessageFailedGetRecipes      = "unable to fetch recipes"
	MessageFailedGetRecipeDetail = "unable to fetch recipe"
	MessageFailedGetUserRecipes  = "failed to fetch recipes for user"
	MessageFailedCreateRecipe    = "failed to create recipe"
	MessageFailedUpdateRecipe    = "failed to update recipe"
	MessageFailedDeleteRecipe    = "recipe was not deleted"
)

type (
	// Recipe mirrors the backend recipe representation. Components and
	// Category are null on list endpoints and populated on detail fetches.
	Recipe struct {
		ID              int64       `json:"id"`
		RecipeName      string      `json:"recipeName"`
		CreationDate    string      `json:"creationDate"`
		ImagePath       string      `json:"imagePath"`
		VideoPath       string      `json:"videoPath,omitempty"`
		PreparationTime string      `json:"preparationTime"`
		Category        *Category   `json:"category"`
		User            *UserRef    `json:"user"`
		Components      []Component `json:"components"`
	}

	// UserRef is the owner reference embedded in recipe payloads.
	UserRef struct {
		Name    string `json:"name"`
		Surname string `json:"surname"`
		Email   string `json:"email,omitempty"`
	}

	// RecipePage is the paged envelope returned by the public search endpoint.
	RecipePage struct {
		Content    []Recipe `json:"content"`
		TotalPages int      `json:"totalPages"`
	}

	CreateRecipeRequest struct {
		Name            string `form:"name" validate:"required"`
		PreparationTime string `form:"preparationTime" validate:"required"`
		CategoryID      int64  `form:"category" validate:"required"`
	}

	UpdateRecipeRequest struct {
		Name            string `form:"name" validate:"required"`
		PreparationTime string `form:"preparationTime" validate:"required"`
		CategoryID      int64  `form:"category" validate:"required"`
		DeleteVideo     bool   `form:"deleteVideo"`
	}
)
