package handlers

import (
	"Masterchef-Web/domain"
	"Masterchef-Web/internal/api/presenters"
	"Masterchef-Web/internal/middleware"
	"Masterchef-Web/pkg/recipes"
	"Masterchef-Web/pkg/session"
	"Masterchef-Web/pkg/users"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type (
	UserHandler interface {
		EditUserPage(c *fiber.Ctx) error
		UpdateUser(c *fiber.Ctx) error
		ChangePassword(c *fiber.Ctx) error
		AdminUsersPage(c *fiber.Ctx) error
		SuspendUserPage(c *fiber.Ctx) error
		SuspendUser(c *fiber.Ctx) error
		DeleteUserPage(c *fiber.Ctx) error
		DeleteUser(c *fiber.Ctx) error
	}

	userHandler struct {
		userService    users.UserService
		recipeService  recipes.RecipeService
		sessionService session.SessionService
		presenter      presenters.Presenter
		validator      *validator.Validate
		log            *zap.Logger
	}
)

func NewUserHandler(userService users.UserService, recipeService recipes.RecipeService, sessionService session.SessionService, presenter presenters.Presenter, validator *validator.Validate, log *zap.Logger) UserHandler {
	return &userHandler{
		userService:    userService,
		recipeService:  recipeService,
		sessionService: sessionService,
		presenter:      presenter,
		validator:      validator,
		log:            log,
	}
}

// editTarget resolves whose profile the page is about: the id segment when
// present (admins reach other users this way), the session's own user
// otherwise.
func (h *userHandler) editTarget(c *fiber.Ctx) (int64, bool) {
	sess := middleware.SessionFromCtx(c)
	if id, err := paramID(c, "id"); err == nil {
		return id, sess.IsAdmin
	}
	if user := h.sessionService.CurrentUser(sess); user != nil {
		return user.ID, false
	}
	return 0, false
}

func (h *userHandler) EditUserPage(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)
	userID, asAdmin := h.editTarget(c)

	user, err := h.userService.Get(c.Context(), sess.Token, userID, asAdmin)
	if err != nil {
		if ferr := h.presenter.FlashError(c, err, domain.MessageFailedFetchUser); ferr != nil {
			return ferr
		}
		return c.Redirect("/", fiber.StatusFound)
	}

	data := fiber.Map{
		"User":    user,
		"AsAdmin": asAdmin,
	}
	// administrators also see the target user's recipes with owner controls
	if asAdmin {
		list, err := h.recipeService.ForUser(c.Context(), sess.Token, user.ID)
		if err != nil {
			h.log.Warn("user recipes fetch failed", zap.Error(err))
		}
		data["Recipes"] = list
	}
	return h.presenter.Render(c, "users/edit", data)
}

// UpdateUser submits the profile edit. When the backend rotated the token
// (the email is the token subject), the session adopts the new token before
// anything else happens.
func (h *userHandler) UpdateUser(c *fiber.Ctx) error {
	userID, err := paramID(c, "id")
	if err != nil {
		return c.Redirect("/not-found", fiber.StatusFound)
	}

	req := new(domain.UpdateUserRequest)
	if err := c.BodyParser(req); err != nil {
		if ferr := h.presenter.Flash(c, domain.FlashError, domain.MessageBadRequest); ferr != nil {
			return ferr
		}
		return c.Redirect(userEditPath(userID), fiber.StatusFound)
	}
	if err := h.validator.Struct(req); err != nil {
		if ferr := h.presenter.Flash(c, domain.FlashError, domain.MessageBadRequest); ferr != nil {
			return ferr
		}
		return c.Redirect(userEditPath(userID), fiber.StatusFound)
	}

	sess := middleware.SessionFromCtx(c)
	rotated, err := h.userService.UpdateProfile(c.Context(), sess.Token, userID, *req)
	if err != nil {
		if ferr := h.presenter.FlashError(c, err, domain.MessageFailedUpdateUser); ferr != nil {
			return ferr
		}
		return c.Redirect(userEditPath(userID), fiber.StatusFound)
	}

	if rotated != "" {
		if err := h.sessionService.RotateToken(c.Context(), sess, rotated); err != nil {
			h.log.Warn("token rotation failed", zap.Error(err))
		}
	}
	if err := h.presenter.Flash(c, domain.FlashSuccess, domain.MessageSuccessUpdateUser); err != nil {
		return err
	}
	return c.Redirect(userEditPath(userID), fiber.StatusFound)
}

func (h *userHandler) ChangePassword(c *fiber.Ctx) error {
	userID, err := paramID(c, "id")
	if err != nil {
		return c.Redirect("/not-found", fiber.StatusFound)
	}

	req := new(domain.ChangePasswordRequest)
	if err := c.BodyParser(req); err != nil {
		if ferr := h.presenter.Flash(c, domain.FlashError, domain.MessageBadRequest); ferr != nil {
			return ferr
		}
		return c.Redirect(userEditPath(userID), fiber.StatusFound)
	}
	if err := h.validator.Struct(req); err != nil {
		if ferr := h.presenter.Flash(c, domain.FlashError, domain.MessageBadRequest); ferr != nil {
			return ferr
		}
		return c.Redirect(userEditPath(userID), fiber.StatusFound)
	}

	sess := middleware.SessionFromCtx(c)
	if err := h.userService.ChangePassword(c.Context(), sess.Token, userID, *req, sess.IsAdmin); err != nil {
		if ferr := h.presenter.FlashError(c, err, domain.MessageFailedChangePassword); ferr != nil {
			return ferr
		}
		return c.Redirect(userEditPath(userID), fiber.StatusFound)
	}

	if err := h.presenter.Flash(c, domain.FlashSuccess, domain.MessageSuccessChangePassword); err != nil {
		return err
	}
	return c.Redirect(userEditPath(userID), fiber.StatusFound)
}

func (h *userHandler) AdminUsersPage(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)
	list, err := h.userService.List(c.Context(), sess.Token)
	if err != nil {
		if ferr := h.presenter.FlashError(c, err, domain.MessageFailedFetchUser); ferr != nil {
			return ferr
		}
	}
	rows := make([]fiber.Map, 0, len(list))
	for _, user := range list {
		rows = append(rows, fiber.Map{
			"User":      user,
			"RoleLabel": domain.RoleLabel(user.Role),
		})
	}
	return h.presenter.Render(c, "admin/users", fiber.Map{
		"Rows": rows,
	})
}

func (h *userHandler) SuspendUserPage(c *fiber.Ctx) error {
	userID, err := paramID(c, "id")
	if err != nil {
		return c.Redirect("/not-found", fiber.StatusFound)
	}
	return h.presenter.Render(c, "confirm", fiber.Map{
		"Title":      "Suspend user",
		"Message":    "Are you sure you want to suspend this user?",
		"Action":     userEditPath(userID) + "/suspend",
		"CancelPath": "/admin/users",
	})
}

func (h *userHandler) SuspendUser(c *fiber.Ctx) error {
	userID, err := paramID(c, "id")
	if err != nil {
		return c.Redirect("/not-found", fiber.StatusFound)
	}

	sess := middleware.SessionFromCtx(c)
	if err := h.userService.Suspend(c.Context(), sess.Token, userID); err != nil {
		if ferr := h.presenter.Flash(c, domain.FlashError, domain.MessageFailedSuspendUser); ferr != nil {
			return ferr
		}
		return c.Redirect("/admin/users", fiber.StatusFound)
	}

	if err := h.presenter.Flash(c, domain.FlashSuccess, domain.MessageSuccessSuspendUser); err != nil {
		return err
	}
	return c.Redirect("/admin/users", fiber.StatusFound)
}

func (h *userHandler) DeleteUserPage(c *fiber.Ctx) error {
	userID, err := paramID(c, "id")
	if err != nil {
		return c.Redirect("/not-found", fiber.StatusFound)
	}
	return h.presenter.Render(c, "confirm", fiber.Map{
		"Title":      "Delete user",
		"Message":    "Are you sure you want to delete this user?",
		"Action":     userEditPath(userID) + "/delete",
		"CancelPath": "/admin/users",
	})
}

func (h *userHandler) DeleteUser(c *fiber.Ctx) error {
	userID, err := paramID(c, "id")
	if err != nil {
		return c.Redirect("/not-found", fiber.StatusFound)
	}

	sess := middleware.SessionFromCtx(c)
	if err := h.userService.Delete(c.Context(), sess.Token, userID); err != nil {
		if ferr := h.presenter.Flash(c, domain.FlashError, domain.MessageFailedDeleteUser); ferr != nil {
			return ferr
		}
		return c.Redirect("/admin/users", fiber.StatusFound)
	}

	if err := h.presenter.Flash(c, domain.FlashSuccess, domain.MessageSuccessDeleteUser); err != nil {
		return err
	}
	if sess.IsAdmin {
		return c.Redirect("/admin/users", fiber.StatusFound)
	}
	// a user deleting their own account loses the session with it
	if err := h.sessionService.SignOut(c.Context(), sess); err != nil {
		return err
	}
	return c.Redirect("/", fiber.StatusFound)
}
