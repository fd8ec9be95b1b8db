package middleware

import (
	"time"

	"Masterchef-Web/domain"
	"Masterchef-Web/entities"
	"Masterchef-Web/pkg/session"

	"github.com/gofiber/fiber/v2"
)

const sessionLocal = "session"

type (
	Middleware interface {
		SessionMiddleware() fiber.Handler
		Guard(adminRequired bool) fiber.Handler
	}

	middleware struct {
		sessionService session.SessionService
		cookieName     string
		cookieSecure   bool
		ttl            time.Duration
	}
)

func NewMiddleware(sessionService session.SessionService, cookieName string, cookieSecure bool, ttl time.Duration) Middleware {
	return &middleware{
		sessionService: sessionService,
		cookieName:     cookieName,
		cookieSecure:   cookieSecure,
		ttl:            ttl,
	}
}

// SessionFromCtx returns the session the SessionMiddleware resolved for
// this request.
func SessionFromCtx(c *fiber.Ctx) *entities.Session {
	sess, _ := c.Locals(sessionLocal).(*entities.Session)
	return sess
}

// SessionMiddleware resolves (or creates) the visitor's session from the
// session cookie and makes it available to every later handler.
func (m *middleware) SessionMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := m.sessionService.Resolve(c.Context(), c.Cookies(m.cookieName))
		if err != nil {
			return err
		}
		c.Cookie(&fiber.Cookie{
			Name:     m.cookieName,
			Value:    sess.ID.String(),
			Expires:  time.Now().Add(m.ttl),
			HTTPOnly: true,
			Secure:   m.cookieSecure,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
		c.Locals(sessionLocal, sess)
		return c.Next()
	}
}

// Guard gates protected views. Without a token the visitor lands on the
// sign-in page with a notification, unless the logout-intent marker is set,
// in which case the redirect to home is silent and the marker is spent.
// Admin-only views additionally require the derived admin flag.
func (m *middleware) Guard(adminRequired bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := SessionFromCtx(c)
		if sess == nil {
			return fiber.ErrInternalServerError
		}

		if sess.Token == "" {
			intentional, err := m.sessionService.ConsumeLogoutIntent(c.Context(), sess)
			if err != nil {
				return err
			}
			if intentional {
				return c.Redirect("/", fiber.StatusFound)
			}
			if err := m.sessionService.AddFlash(c.Context(), sess, domain.FlashError, domain.MessageSignInRequired); err != nil {
				return err
			}
			return c.Redirect("/signin", fiber.StatusFound)
		}

		if adminRequired && !sess.IsAdmin {
			return c.Redirect("/access-denied", fiber.StatusFound)
		}
		return c.Next()
	}
}
