package recipes

import (
	"context"

	"Masterchef-Web/domain"
	"Masterchef-Web/pkg/backend"
)

// PageSize is the fixed size of a public listing page.
const PageSize = 6

// FrontpageCount is how many of the newest recipes the landing page shows.
const FrontpageCount = 3

type (
	RecipeService interface {
		Frontpage(ctx context.Context) ([]domain.Recipe, error)
		Search(ctx context.Context, params SearchParams) (*domain.RecipePage, ListState, error)
		Detail(ctx context.Context, recipeID int64) (*domain.Recipe, error)
		Create(ctx context.Context, token string, upload backend.RecipeUpload) (int64, error)
		Update(ctx context.Context, token string, recipeID int64, upload backend.RecipeUpload) error
		Delete(ctx context.Context, token string, recipeID int64) error
		ForCurrentUser(ctx context.Context, token string) ([]domain.Recipe, error)
		ForUser(ctx context.Context, token string, userID int64) ([]domain.Recipe, error)
	}

	// SearchParams is the committed listing state carried in the URL: the
	// submitted search term, the selected category and the zero-based page.
	SearchParams struct {
		Term       string
		CategoryID int64
		Page       int
	}

	// ListState drives the pagination controls.
	ListState struct {
		Page         int
		TotalPages   int
		PrevDisabled bool
		NextDisabled bool
		PrevPage     int
		NextPage     int
	}

	recipeService struct {
		backendClient backend.Client
	}
)

func NewRecipeService(backendClient backend.Client) RecipeService {
	return &recipeService{backendClient: backendClient}
}

func (s *recipeService) Frontpage(ctx context.Context) ([]domain.Recipe, error) {
	recipes, err := s.backendClient.FrontpageRecipes(ctx)
	if err != nil {
		return nil, err
	}
	if len(recipes) > FrontpageCount {
		recipes = recipes[len(recipes)-FrontpageCount:]
	}
	return recipes, nil
}

func (s *recipeService) Search(ctx context.Context, params SearchParams) (*domain.RecipePage, ListState, error) {
	if params.Page < 0 {
		params.Page = 0
	}
	page, err := s.backendClient.SearchRecipes(ctx, backend.ListQuery{
		Page:       params.Page,
		Size:       PageSize,
		CategoryID: params.CategoryID,
		RecipeName: params.Term,
	})
	if err != nil {
		return nil, ListState{}, err
	}
	return page, BuildListState(params.Page, page.TotalPages), nil
}

// BuildListState disables "previous" at page 0 and "next" at the last page,
// so a page index beyond totalPages-1 is never requested through the
// controls.
func BuildListState(page, totalPages int) ListState {
	state := ListState{
		Page:         page,
		TotalPages:   totalPages,
		PrevDisabled: page == 0,
		NextDisabled: page+1 >= totalPages,
	}
	if !state.PrevDisabled {
		state.PrevPage = page - 1
	}
	state.NextPage = page
	if !state.NextDisabled {
		state.NextPage = page + 1
	}
	return state
}

func (s *recipeService) Detail(ctx context.Context, recipeID int64) (*domain.Recipe, error) {
	return s.backendClient.Recipe(ctx, recipeID)
}

func (s *recipeService) Create(ctx context.Context, token string, upload backend.RecipeUpload) (int64, error) {
	return s.backendClient.CreateRecipe(ctx, token, upload)
}

func (s *recipeService) Update(ctx context.Context, token string, recipeID int64, upload backend.RecipeUpload) error {
	return s.backendClient.UpdateRecipe(ctx, token, recipeID, upload)
}

func (s *recipeService) Delete(ctx context.Context, token string, recipeID int64) error {
	return s.backendClient.DeleteRecipe(ctx, token, recipeID)
}

func (s *recipeService) ForCurrentUser(ctx context.Context, token string) ([]domain.Recipe, error) {
	return s.backendClient.RecipesForUser(ctx, token)
}

func (s *recipeService) ForUser(ctx context.Context, token string, userID int64) ([]domain.Recipe, error) {
	return s.backendClient.RecipesForUserID(ctx, token, userID)
}
