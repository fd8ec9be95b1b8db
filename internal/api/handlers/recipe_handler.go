package handlers

import (
	"strings"

	"Masterchef-Web/domain"
	"Masterchef-Web/internal/api/presenters"
	"Masterchef-Web/internal/middleware"
	"Masterchef-Web/pkg/backend"
	"Masterchef-Web/pkg/categories"
	"Masterchef-Web/pkg/recipes"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type (
	RecipeHandler interface {
		Home(c *fiber.Ctx) error
		List(c *fiber.Ctx) error
		Detail(c *fiber.Ctx) error
		NewRecipePage(c *fiber.Ctx) error
		CreateRecipe(c *fiber.Ctx) error
		EditRecipePage(c *fiber.Ctx) error
		UpdateRecipe(c *fiber.Ctx) error
		DeleteRecipePage(c *fiber.Ctx) error
		DeleteRecipe(c *fiber.Ctx) error
		MyRecipes(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService   recipes.RecipeService
		categoryService categories.CategoryService
		presenter       presenters.Presenter
		validator       *validator.Validate
		log             *zap.Logger
	}
)

func NewRecipeHandler(recipeService recipes.RecipeService, categoryService categories.CategoryService, presenter presenters.Presenter, validator *validator.Validate, log *zap.Logger) RecipeHandler {
	return &recipeHandler{
		recipeService:   recipeService,
		categoryService: categoryService,
		presenter:       presenter,
		validator:       validator,
		log:             log,
	}
}

func (h *recipeHandler) Home(c *fiber.Ctx) error {
	frontpage, err := h.recipeService.Frontpage(c.Context())
	if err != nil {
		h.log.Warn("frontpage fetch failed", zap.Error(err))
	}
	return h.presenter.Render(c, "home", fiber.Map{
		"Recipes": frontpage,
	})
}

// List renders the paginated, filterable public listing. The committed
// search term, category and page index all live in the URL; submitting a
// new term or picking a category links back to page zero.
func (h *recipeHandler) List(c *fiber.Ctx) error {
	params := recipes.SearchParams{
		Term:       strings.TrimSpace(c.Query("q")),
		CategoryID: int64(c.QueryInt("categoryId")),
		Page:       c.QueryInt("page"),
	}

	cats, err := h.categoryService.List(c.Context())
	if err != nil {
		h.log.Warn("category fetch failed", zap.Error(err))
	}

	page, state, err := h.recipeService.Search(c.Context(), params)
	if err != nil {
		if ferr := h.presenter.Flash(c, domain.FlashError, domain.MessageFailedGetRecipes); ferr != nil {
			return ferr
		}
		return h.presenter.Render(c, "recipes/index", fiber.Map{
			"Categories": cats,
			"Params":     params,
			"State":      recipes.BuildListState(params.Page, 0),
		})
	}

	return h.presenter.Render(c, "recipes/index", fiber.Map{
		"Recipes":    page.Content,
		"Categories": cats,
		"Params":     params,
		"State":      state,
	})
}

func (h *recipeHandler) Detail(c *fiber.Ctx) error {
	recipeID, err := paramID(c, "id")
	if err != nil {
		return c.Redirect("/not-found", fiber.StatusFound)
	}

	recipe, err := h.recipeService.Detail(c.Context(), recipeID)
	if err != nil {
		if backend.IsStatus(err, fiber.StatusBadRequest) || backend.IsStatus(err, fiber.StatusNotFound) {
			return c.Redirect("/not-found", fiber.StatusFound)
		}
		if ferr := h.presenter.FlashError(c, err, domain.MessageFailedGetRecipeDetail); ferr != nil {
			return ferr
		}
		return c.Redirect("/recipes", fiber.StatusFound)
	}

	return h.presenter.Render(c, "recipes/detail", fiber.Map{
		"Recipe":    recipe,
		"CanManage": h.canManage(c, recipe),
	})
}

// canManage mirrors the owner check: the recipe owner and administrators
// see the edit and delete controls.
func (h *recipeHandler) canManage(c *fiber.Ctx, recipe *domain.Recipe) bool {
	sess := middleware.SessionFromCtx(c)
	if sess == nil || sess.Token == "" {
		return false
	}
	if sess.IsAdmin {
		return true
	}
	return recipe.User != nil && recipe.User.Email != "" && recipe.User.Email == sess.UserEmail
}

func (h *recipeHandler) NewRecipePage(c *fiber.Ctx) error {
	cats, err := h.categoryService.List(c.Context())
	if err != nil {
		if ferr := h.presenter.Flash(c, domain.FlashError, domain.MessageFailedGetCategories); ferr != nil {
			return ferr
		}
	}
	return h.presenter.Render(c, "recipes/new", fiber.Map{
		"Categories": cats,
	})
}

func (h *recipeHandler) CreateRecipe(c *fiber.Ctx) error {
	req := new(domain.CreateRecipeRequest)
	if err := c.BodyParser(req); err != nil {
		if ferr := h.presenter.Flash(c, domain.FlashError, domain.MessageBadRequest); ferr != nil {
			return ferr
		}
		return c.Redirect("/recipes/new", fiber.StatusFound)
	}
	if err := h.validator.Struct(req); err != nil {
		if ferr := h.presenter.Flash(c, domain.FlashError, domain.MessageBadRequest); ferr != nil {
			return ferr
		}
		return c.Redirect("/recipes/new", fiber.StatusFound)
	}

	image, err := formFile(c, "image")
	if err != nil {
		return err
	}
	if image == nil {
		if ferr := h.presenter.Flash(c, domain.FlashError, domain.MessageBadRequest); ferr != nil {
			return ferr
		}
		return c.Redirect("/recipes/new", fiber.StatusFound)
	}
	video, err := formFile(c, "video")
	if err != nil {
		return err
	}

	sess := middleware.SessionFromCtx(c)
	recipeID, err := h.recipeService.Create(c.Context(), sess.Token, backend.RecipeUpload{
		Name:            req.Name,
		PreparationTime: req.PreparationTime,
		CategoryID:      req.CategoryID,
		Image:           image,
		Video:           video,
	})
	if err != nil {
		if ferr := h.presenter.FlashError(c, err, domain.MessageFailedCreateRecipe); ferr != nil {
			return ferr
		}
		return c.Redirect("/recipes/new", fiber.StatusFound)
	}

	if err := h.presenter.Flash(c, domain.FlashSuccess, domain.MessageSuccessCreateRecipe); err != nil {
		return err
	}
	return c.Redirect(componentWizardPath(recipeID), fiber.StatusFound)
}

func (h *recipeHandler) EditRecipePage(c *fiber.Ctx) error {
	recipeID, err := paramID(c, "id")
	if err != nil {
		return c.Redirect("/not-found", fiber.StatusFound)
	}

	recipe, err := h.recipeService.Detail(c.Context(), recipeID)
	if err != nil {
		if ferr := h.presenter.FlashError(c, err, domain.MessageFailedGetRecipeDetail); ferr != nil {
			return ferr
		}
		return c.Redirect(recipeDetailPath(recipeID), fiber.StatusFound)
	}
	cats, err := h.categoryService.List(c.Context())
	if err != nil {
		h.log.Warn("category fetch failed", zap.Error(err))
	}

	return h.presenter.Render(c, "recipes/edit", fiber.Map{
		"Recipe":     recipe,
		"Categories": cats,
	})
}

func (h *recipeHandler) UpdateRecipe(c *fiber.Ctx) error {
	recipeID, err := paramID(c, "id")
	if err != nil {
		return c.Redirect("/not-found", fiber.StatusFound)
	}

	req := new(domain.UpdateRecipeRequest)
	if err := c.BodyParser(req); err != nil {
		if ferr := h.presenter.Flash(c, domain.FlashError, domain.MessageBadRequest); ferr != nil {
			return ferr
		}
		return c.Redirect(recipeEditPath(recipeID), fiber.StatusFound)
	}
	if err := h.validator.Struct(req); err != nil {
		if ferr := h.presenter.Flash(c, domain.FlashError, domain.MessageBadRequest); ferr != nil {
			return ferr
		}
		return c.Redirect(recipeEditPath(recipeID), fiber.StatusFound)
	}

	image, err := formFile(c, "image")
	if err != nil {
		return err
	}
	video, err := formFile(c, "video")
	if err != nil {
		return err
	}

	sess := middleware.SessionFromCtx(c)
	err = h.recipeService.Update(c.Context(), sess.Token, recipeID, backend.RecipeUpload{
		Name:            req.Name,
		PreparationTime: req.PreparationTime,
		CategoryID:      req.CategoryID,
		Image:           image,
		Video:           video,
		DeleteVideo:     req.DeleteVideo,
	})
	if err != nil {
		if ferr := h.presenter.FlashError(c, err, domain.MessageFailedUpdateRecipe); ferr != nil {
			return ferr
		}
		return c.Redirect(recipeEditPath(recipeID), fiber.StatusFound)
	}

	if err := h.presenter.Flash(c, domain.FlashSuccess, domain.MessageSuccessUpdateRecipe); err != nil {
		return err
	}
	return c.Redirect(recipeDetailPath(recipeID), fiber.StatusFound)
}

func (h *recipeHandler) DeleteRecipePage(c *fiber.Ctx) error {
	recipeID, err := paramID(c, "id")
	if err != nil {
		return c.Redirect("/not-found", fiber.StatusFound)
	}
	return h.presenter.Render(c, "confirm", fiber.Map{
		"Title":      "Delete recipe",
		"Message":    "Are you sure you want to delete this recipe?",
		"Action":     recipeDetailPath(recipeID) + "/delete",
		"CancelPath": recipeDetailPath(recipeID),
	})
}

func (h *recipeHandler) DeleteRecipe(c *fiber.Ctx) error {
	recipeID, err := paramID(c, "id")
	if err != nil {
		return c.Redirect("/not-found", fiber.StatusFound)
	}

	sess := middleware.SessionFromCtx(c)
	if err := h.recipeService.Delete(c.Context(), sess.Token, recipeID); err != nil {
		if ferr := h.presenter.Flash(c, domain.FlashError, domain.MessageFailedDeleteRecipe); ferr != nil {
			return ferr
		}
		return c.Redirect(recipeDetailPath(recipeID), fiber.StatusFound)
	}

	if err := h.presenter.Flash(c, domain.FlashSuccess, domain.MessageSuccessDeleteRecipe); err != nil {
		return err
	}
	return c.Redirect("/recipes", fiber.StatusFound)
}

func (h *recipeHandler) MyRecipes(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)
	list, err := h.recipeService.ForCurrentUser(c.Context(), sess.Token)
	if err != nil {
		if ferr := h.presenter.FlashError(c, err, domain.MessageFailedGetUserRecipes); ferr != nil {
			return ferr
		}
	}
	return h.presenter.Render(c, "recipes/mine", fiber.Map{
		"Recipes": list,
	})
}
