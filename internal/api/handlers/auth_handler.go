package handlers

import (
	"errors"

	"Masterchef-Web/domain"
	"Masterchef-Web/internal/api/presenters"
	"Masterchef-Web/internal/middleware"
	"Masterchef-Web/pkg/backend"
	"Masterchef-Web/pkg/session"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AuthHandler interface {
		SignInPage(c *fiber.Ctx) error
		SignIn(c *fiber.Ctx) error
		SignUpPage(c *fiber.Ctx) error
		SignUp(c *fiber.Ctx) error
		Logout(c *fiber.Ctx) error
		AccessDenied(c *fiber.Ctx) error
	}

	authHandler struct {
		sessionService session.SessionService
		backendClient  backend.Client
		presenter      presenters.Presenter
		validator      *validator.Validate
	}
)

func NewAuthHandler(sessionService session.SessionService, backendClient backend.Client, presenter presenters.Presenter, validator *validator.Validate) AuthHandler {
	return &authHandler{
		sessionService: sessionService,
		backendClient:  backendClient,
		presenter:      presenter,
		validator:      validator,
	}
}

func (h *authHandler) SignInPage(c *fiber.Ctx) error {
	return h.presenter.Render(c, "auth/signin", nil)
}

func (h *authHandler) SignIn(c *fiber.Ctx) error {
	req := new(domain.SignInRequest)
	if err := c.BodyParser(req); err != nil {
		if ferr := h.presenter.Flash(c, domain.FlashError, domain.MessageBadRequest); ferr != nil {
			return ferr
		}
		return c.Redirect("/signin", fiber.StatusFound)
	}
	if err := h.validator.Struct(req); err != nil {
		if ferr := h.presenter.Flash(c, domain.FlashError, domain.MessageBadRequest); ferr != nil {
			return ferr
		}
		return c.Redirect("/signin", fiber.StatusFound)
	}

	token, err := h.backendClient.SignIn(c.Context(), req.Email, req.Password)
	if err != nil {
		if ferr := h.presenter.FlashError(c, err, domain.MessageFailedSignIn); ferr != nil {
			return ferr
		}
		return c.Redirect("/signin", fiber.StatusFound)
	}

	sess := middleware.SessionFromCtx(c)
	if err := h.sessionService.SignIn(c.Context(), sess, token); err != nil {
		if errors.Is(err, domain.ErrTokenInvalid) {
			if ferr := h.presenter.Flash(c, domain.FlashError, domain.MessageInvalidTokenSubject); ferr != nil {
				return ferr
			}
			return c.Redirect("/signin", fiber.StatusFound)
		}
		return err
	}

	if err := h.presenter.Flash(c, domain.FlashSuccess, domain.MessageSuccessSignIn); err != nil {
		return err
	}
	return c.Redirect("/", fiber.StatusFound)
}

func (h *authHandler) SignUpPage(c *fiber.Ctx) error {
	return h.presenter.Render(c, "auth/signup", nil)
}

func (h *authHandler) SignUp(c *fiber.Ctx) error {
	req := new(domain.SignUpRequest)
	if err := c.BodyParser(req); err != nil {
		if ferr := h.presenter.Flash(c, domain.FlashError, domain.MessageBadRequest); ferr != nil {
			return ferr
		}
		return c.Redirect("/signup", fiber.StatusFound)
	}
	if err := h.validator.Struct(req); err != nil {
		if ferr := h.presenter.Flash(c, domain.FlashError, domain.MessageBadRequest); ferr != nil {
			return ferr
		}
		return c.Redirect("/signup", fiber.StatusFound)
	}

	if err := h.backendClient.SignUp(c.Context(), *req); err != nil {
		// the backend answers with a dedicated message for duplicate emails
		if backend.MessageOf(err) == "Email address already in use!" {
			if ferr := h.presenter.Flash(c, domain.FlashError, domain.MessageEmailAlreadyInUse); ferr != nil {
				return ferr
			}
		} else if ferr := h.presenter.FlashError(c, err, domain.MessageFailedSignUp); ferr != nil {
			return ferr
		}
		return c.Redirect("/signup", fiber.StatusFound)
	}

	if err := h.presenter.Flash(c, domain.FlashSuccess, domain.MessageSuccessSignUp); err != nil {
		return err
	}
	return c.Redirect("/signin", fiber.StatusFound)
}

func (h *authHandler) Logout(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)
	if err := h.sessionService.SignOut(c.Context(), sess); err != nil {
		return err
	}
	return c.Redirect("/", fiber.StatusFound)
}

func (h *authHandler) AccessDenied(c *fiber.Ctx) error {
	return h.presenter.RenderStatus(c, fiber.StatusForbidden, "auth/access_denied", nil)
}
