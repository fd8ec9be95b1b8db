package handlers

import (
	"strconv"

	"Masterchef-Web/domain"
	"Masterchef-Web/internal/api/presenters"
	"Masterchef-Web/internal/middleware"
	"Masterchef-Web/pkg/components"
	"Masterchef-Web/pkg/session"

	"github.com/gofiber/fiber/v2"
)

type (
	ComponentHandler interface {
		WizardPage(c *fiber.Ctx) error
		AddDraft(c *fiber.Ctx) error
		RemoveDraft(c *fiber.Ctx) error
		SaveAll(c *fiber.Ctx) error
		EditPage(c *fiber.Ctx) error
		UpdateComponents(c *fiber.Ctx) error
		DeleteComponent(c *fiber.Ctx) error
	}

	componentHandler struct {
		componentService components.ComponentService
		sessionService   session.SessionService
		presenter        presenters.Presenter
	}
)

func NewComponentHandler(componentService components.ComponentService, sessionService session.SessionService, presenter presenters.Presenter) ComponentHandler {
	return &componentHandler{
		componentService: componentService,
		sessionService:   sessionService,
		presenter:        presenter,
	}
}

// WizardPage shows the working list of accumulated drafts for the recipe.
// Nothing hits the backend until "save components".
func (h *componentHandler) WizardPage(c *fiber.Ctx) error {
	recipeID, err := paramID(c, "id")
	if err != nil {
		return c.Redirect("/not-found", fiber.StatusFound)
	}
	sess := middleware.SessionFromCtx(c)
	return h.presenter.Render(c, "components/new", fiber.Map{
		"RecipeID": recipeID,
		"Drafts":   h.sessionService.Drafts(sess, recipeID),
	})
}

// AddDraft validates a single draft and, when it passes, appends it to the
// session-held working list.
func (h *componentHandler) AddDraft(c *fiber.Ctx) error {
	recipeID, err := paramID(c, "id")
	if err != nil {
		return c.Redirect("/not-found", fiber.StatusFound)
	}

	draft := domain.ComponentDraft{
		Name:         c.FormValue("name"),
		Instructions: c.FormValue("instructions"),
		Ingredients:  formValues(c, "ingredients"),
	}
	if image, err := formFile(c, "image"); err != nil {
		return err
	} else if image != nil {
		draft.ImageName = image.Name
		draft.Image = image.Content
	}

	sess := middleware.SessionFromCtx(c)
	if err := h.sessionService.AddDraft(c.Context(), sess, recipeID, draft); err != nil {
		if ferr := h.presenter.Flash(c, domain.FlashError, err.Error()); ferr != nil {
			return ferr
		}
	}
	return c.Redirect(componentWizardPath(recipeID), fiber.StatusFound)
}

func (h *componentHandler) RemoveDraft(c *fiber.Ctx) error {
	recipeID, err := paramID(c, "id")
	if err != nil {
		return c.Redirect("/not-found", fiber.StatusFound)
	}
	index, err := strconv.Atoi(c.FormValue("index"))
	if err != nil {
		return c.Redirect(componentWizardPath(recipeID), fiber.StatusFound)
	}

	sess := middleware.SessionFromCtx(c)
	if err := h.sessionService.RemoveDraft(c.Context(), sess, recipeID, index); err != nil {
		return err
	}
	return c.Redirect(componentWizardPath(recipeID), fiber.StatusFound)
}

// SaveAll serializes the entire working list into one multipart submission.
// Success or failure, the flow ends on the recipe's detail view; failure
// flashes first and keeps the drafts for another attempt.
func (h *componentHandler) SaveAll(c *fiber.Ctx) error {
	recipeID, err := paramID(c, "id")
	if err != nil {
		return c.Redirect("/not-found", fiber.StatusFound)
	}

	sess := middleware.SessionFromCtx(c)
	drafts := h.sessionService.Drafts(sess, recipeID)
	if len(drafts) == 0 {
		return c.Redirect(componentWizardPath(recipeID), fiber.StatusFound)
	}

	if err := h.componentService.SaveAll(c.Context(), sess.Token, recipeID, drafts); err != nil {
		if ferr := h.presenter.Flash(c, domain.FlashError, domain.MessageFailedSaveComponents); ferr != nil {
			return ferr
		}
		return c.Redirect(recipeDetailPath(recipeID), fiber.StatusFound)
	}

	if err := h.sessionService.ClearDrafts(c.Context(), sess, recipeID); err != nil {
		return err
	}
	if err := h.presenter.Flash(c, domain.FlashSuccess, domain.MessageSuccessSaveComponents); err != nil {
		return err
	}
	return c.Redirect(recipeDetailPath(recipeID), fiber.StatusFound)
}

func (h *componentHandler) EditPage(c *fiber.Ctx) error {
	recipeID, err := paramID(c, "id")
	if err != nil {
		return c.Redirect("/not-found", fiber.StatusFound)
	}

	edits, err := h.componentService.Edits(c.Context(), recipeID)
	if err != nil {
		if ferr := h.presenter.Flash(c, domain.FlashError, domain.MessageFailedGetComponents); ferr != nil {
			return ferr
		}
		return c.Redirect(recipeDetailPath(recipeID), fiber.StatusFound)
	}

	return h.presenter.Render(c, "components/edit", fiber.Map{
		"RecipeID":   recipeID,
		"Components": edits,
	})
}

// UpdateComponents rebuilds the full component set from the indexed form
// fields and submits it in one call. Image removal arrives as a staged
// deleteImage flag per component.
func (h *componentHandler) UpdateComponents(c *fiber.Ctx) error {
	recipeID, err := paramID(c, "id")
	if err != nil {
		return c.Redirect("/not-found", fiber.StatusFound)
	}

	count, err := strconv.Atoi(c.FormValue("count"))
	if err != nil || count < 1 {
		if ferr := h.presenter.Flash(c, domain.FlashError, domain.MessageLastComponent); ferr != nil {
			return ferr
		}
		return c.Redirect(componentEditPath(recipeID), fiber.StatusFound)
	}

	edits := make([]domain.ComponentEdit, 0, count)
	for i := 0; i < count; i++ {
		idx := strconv.Itoa(i)
		edit := domain.ComponentEdit{
			Name:         c.FormValue("name_" + idx),
			Instructions: c.FormValue("instructions_" + idx),
			Ingredients:  formValues(c, "ingredients_"+idx),
			ImagePath:    c.FormValue("imagePath_" + idx),
			DeleteImage:  c.FormValue("deleteImage_"+idx) == "true",
		}
		if id, err := strconv.ParseInt(c.FormValue("id_"+idx), 10, 64); err == nil {
			edit.ID = id
		}
		if image, err := formFile(c, "image_"+idx); err != nil {
			return err
		} else if image != nil {
			edit.ImageName = image.Name
			edit.Image = image.Content
			edit.DeleteImage = false
		}
		edits = append(edits, edit)
	}

	sess := middleware.SessionFromCtx(c)
	if err := h.componentService.UpdateAll(c.Context(), sess.Token, recipeID, edits); err != nil {
		message := domain.MessageFailedUpdateComponents
		switch err {
		case domain.ErrComponentFieldsIncomplete, domain.ErrNoIngredients, domain.ErrInstructionsTooShort:
			message = err.Error()
		}
		if ferr := h.presenter.Flash(c, domain.FlashError, message); ferr != nil {
			return ferr
		}
		return c.Redirect(componentEditPath(recipeID), fiber.StatusFound)
	}

	if err := h.presenter.Flash(c, domain.FlashSuccess, domain.MessageSuccessUpdateComponents); err != nil {
		return err
	}
	return c.Redirect(recipeDetailPath(recipeID), fiber.StatusFound)
}

// DeleteComponent removes one component with an immediate call, unlike the
// staged image deletions. The last component of a recipe cannot be removed.
func (h *componentHandler) DeleteComponent(c *fiber.Ctx) error {
	recipeID, err := paramID(c, "id")
	if err != nil {
		return c.Redirect("/not-found", fiber.StatusFound)
	}
	componentID, err := strconv.ParseInt(c.FormValue("componentId"), 10, 64)
	if err != nil {
		return c.Redirect(componentEditPath(recipeID), fiber.StatusFound)
	}

	remaining, err := strconv.Atoi(c.FormValue("count"))
	if err == nil && remaining <= 1 {
		if ferr := h.presenter.Flash(c, domain.FlashError, domain.MessageLastComponent); ferr != nil {
			return ferr
		}
		return c.Redirect(componentEditPath(recipeID), fiber.StatusFound)
	}

	sess := middleware.SessionFromCtx(c)
	if err := h.componentService.Delete(c.Context(), sess.Token, componentID); err != nil {
		if ferr := h.presenter.Flash(c, domain.FlashError, domain.MessageFailedDeleteComponent); ferr != nil {
			return ferr
		}
		return c.Redirect(componentEditPath(recipeID), fiber.StatusFound)
	}

	if err := h.presenter.Flash(c, domain.FlashSuccess, domain.MessageSuccessDeleteComponent); err != nil {
		return err
	}
	return c.Redirect(componentEditPath(recipeID), fiber.StatusFound)
}
