package handlers

import (
	"errors"

	"Masterchef-Web/domain"
	"Masterchef-Web/internal/api/presenters"
	"Masterchef-Web/internal/middleware"
	"Masterchef-Web/pkg/categories"

	"github.com/gofiber/fiber/v2"
)

type (
	CategoryHandler interface {
		CategoriesPage(c *fiber.Ctx) error
		AdminCategoriesPage(c *fiber.Ctx) error
		CreateCategory(c *fiber.Ctx) error
		UpdateCategory(c *fiber.Ctx) error
		DeleteCategoryPage(c *fiber.Ctx) error
		DeleteCategory(c *fiber.Ctx) error
	}

	categoryHandler struct {
		categoryService categories.CategoryService
		presenter       presenters.Presenter
	}
)

func NewCategoryHandler(categoryService categories.CategoryService, presenter presenters.Presenter) CategoryHandler {
	return &categoryHandler{
		categoryService: categoryService,
		presenter:       presenter,
	}
}

func (h *categoryHandler) CategoriesPage(c *fiber.Ctx) error {
	list, err := h.categoryService.List(c.Context())
	if err != nil {
		if ferr := h.presenter.Flash(c, domain.FlashError, domain.MessageFailedGetCategories); ferr != nil {
			return ferr
		}
	}
	return h.presenter.Render(c, "categories/index", fiber.Map{
		"Categories": list,
	})
}

func (h *categoryHandler) AdminCategoriesPage(c *fiber.Ctx) error {
	list, err := h.categoryService.List(c.Context())
	if err != nil {
		if ferr := h.presenter.Flash(c, domain.FlashError, domain.MessageFailedGetCategories); ferr != nil {
			return ferr
		}
	}
	return h.presenter.Render(c, "admin/categories", fiber.Map{
		"Categories": list,
	})
}

func (h *categoryHandler) CreateCategory(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)
	if err := h.categoryService.Create(c.Context(), sess.Token, c.FormValue("categoryName")); err != nil {
		message := domain.MessageFailedCreateCategory
		if errors.Is(err, domain.ErrCategoryNameEmpty) {
			message = domain.MessageCategoryEmptyName
		}
		if ferr := h.presenter.Flash(c, domain.FlashError, message); ferr != nil {
			return ferr
		}
		return c.Redirect("/admin/categories", fiber.StatusFound)
	}

	if err := h.presenter.Flash(c, domain.FlashSuccess, domain.MessageSuccessCreateCategory); err != nil {
		return err
	}
	return c.Redirect("/admin/categories", fiber.StatusFound)
}

func (h *categoryHandler) UpdateCategory(c *fiber.Ctx) error {
	categoryID, err := paramID(c, "id")
	if err != nil {
		return c.Redirect("/not-found", fiber.StatusFound)
	}

	sess := middleware.SessionFromCtx(c)
	if err := h.categoryService.Update(c.Context(), sess.Token, categoryID, c.FormValue("categoryName")); err != nil {
		message := domain.MessageFailedUpdateCategory
		if errors.Is(err, domain.ErrCategoryNameEmpty) {
			message = domain.MessageCategoryEmptyName
		}
		if ferr := h.presenter.Flash(c, domain.FlashError, message); ferr != nil {
			return ferr
		}
		return c.Redirect("/admin/categories", fiber.StatusFound)
	}

	if err := h.presenter.Flash(c, domain.FlashSuccess, domain.MessageSuccessUpdateCategory); err != nil {
		return err
	}
	return c.Redirect("/admin/categories", fiber.StatusFound)
}

func (h *categoryHandler) DeleteCategoryPage(c *fiber.Ctx) error {
	categoryID, err := paramID(c, "id")
	if err != nil {
		return c.Redirect("/not-found", fiber.StatusFound)
	}
	return h.presenter.Render(c, "confirm", fiber.Map{
		"Title":      "Delete category",
		"Message":    "Are you sure you want to delete this category?",
		"Action":     categoryDeletePath(categoryID),
		"CancelPath": "/admin/categories",
	})
}

// DeleteCategory removes the confirmed category. A conflict answer means
// recipes still reference it.
func (h *categoryHandler) DeleteCategory(c *fiber.Ctx) error {
	categoryID, err := paramID(c, "id")
	if err != nil {
		return c.Redirect("/not-found", fiber.StatusFound)
	}

	sess := middleware.SessionFromCtx(c)
	if err := h.categoryService.Delete(c.Context(), sess.Token, categoryID); err != nil {
		message := domain.MessageFailedDeleteCategory
		if categories.IsInUse(err) {
			message = domain.MessageCategoryHasRecipes
		}
		if ferr := h.presenter.Flash(c, domain.FlashError, message); ferr != nil {
			return ferr
		}
		return c.Redirect("/admin/categories", fiber.StatusFound)
	}

	if err := h.presenter.Flash(c, domain.FlashSuccess, domain.MessageSuccessDeleteCategory); err != nil {
		return err
	}
	return c.Redirect("/admin/categories", fiber.StatusFound)
}
