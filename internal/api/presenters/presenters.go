package presenters

import (
	"Masterchef-Web/domain"
	"Masterchef-Web/internal/middleware"
	"Masterchef-Web/pkg/backend"
	"Masterchef-Web/pkg/session"

	"github.com/gofiber/fiber/v2"
)

type (
	// Presenter renders views with the session state and pending flash
	// notifications folded in.
	Presenter interface {
		Render(c *fiber.Ctx, view string, data fiber.Map) error
		RenderStatus(c *fiber.Ctx, status int, view string, data fiber.Map) error
		Flash(c *fiber.Ctx, level, text string) error
		FlashError(c *fiber.Ctx, err error, prefix string) error
	}

	presenter struct {
		sessionService session.SessionService
	}
)

func NewPresenter(sessionService session.SessionService) Presenter {
	return &presenter{sessionService: sessionService}
}

func (p *presenter) Render(c *fiber.Ctx, view string, data fiber.Map) error {
	return p.RenderStatus(c, fiber.StatusOK, view, data)
}

func (p *presenter) RenderStatus(c *fiber.Ctx, status int, view string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	sess := middleware.SessionFromCtx(c)
	if sess != nil {
		flashes, err := p.sessionService.TakeFlashes(c.Context(), sess)
		if err == nil {
			data["Flashes"] = flashes
		}
		data["SignedIn"] = sess.Token != ""
		data["IsAdmin"] = sess.IsAdmin
		data["SessionEmail"] = sess.UserEmail
		data["CurrentUser"] = p.sessionService.CurrentUser(sess)
	}
	return c.Status(status).Render(view, data, "layouts/main")
}

// Flash queues a notification for the next rendered page.
func (p *presenter) Flash(c *fiber.Ctx, level, text string) error {
	sess := middleware.SessionFromCtx(c)
	if sess == nil {
		return nil
	}
	return p.sessionService.AddFlash(c.Context(), sess, level, text)
}

// FlashError translates err into a short user message, prefixed with the
// action that failed.
func (p *presenter) FlashError(c *fiber.Ctx, err error, prefix string) error {
	text := TranslateError(err)
	if prefix != "" {
		text = prefix + ": " + text
	}
	return p.Flash(c, domain.FlashError, text)
}

// TranslateError maps a failure to the short message shown to the user,
// keyed by the backend HTTP status. Transport failures (no response) get
// the network message.
func TranslateError(err error) string {
	status := backend.StatusOf(err)
	message := backendMessage(err)

	switch status {
	case 0:
		return domain.MessageNetworkError
	case fiber.StatusBadRequest:
		return withDetail(domain.MessageBadRequest, message)
	case fiber.StatusUnauthorized:
		return withDetail(domain.MessageUnauthorized, message)
	case fiber.StatusForbidden:
		return withDetail(domain.MessageForbidden, message)
	case fiber.StatusNotFound:
		return domain.MessageNotFound
	case fiber.StatusInternalServerError:
		return domain.MessageServerError
	default:
		return withDetail(domain.MessageUnknownError, message)
	}
}

func backendMessage(err error) string {
	return backend.MessageOf(err)
}

func withDetail(base, detail string) string {
	if detail == "" {
		return base
	}
	return base + ": " + detail
}
