package middleware

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"Masterchef-Web/domain"
	"Masterchef-Web/entities"
	"Masterchef-Web/pkg/session"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSessionService serves a fixed session and records guard side effects.
type fakeSessionService struct {
	session.SessionService
	session *entities.Session
	flashes []domain.Flash
}

func (f *fakeSessionService) Resolve(context.Context, string) (*entities.Session, error) {
	return f.session, nil
}

func (f *fakeSessionService) ConsumeLogoutIntent(_ context.Context, sess *entities.Session) (bool, error) {
	if !sess.LogoutIntent {
		return false, nil
	}
	sess.LogoutIntent = false
	return true, nil
}

func (f *fakeSessionService) AddFlash(_ context.Context, _ *entities.Session, level, text string) error {
	f.flashes = append(f.flashes, domain.Flash{Level: level, Text: text})
	return nil
}

func newGuardedApp(service *fakeSessionService, adminRequired bool) *fiber.App {
	m := NewMiddleware(service, "test_session", false, time.Hour)
	app := fiber.New()
	app.Use(m.SessionMiddleware())
	app.Get("/protected", m.Guard(adminRequired), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestGuardRedirectsAnonymousToSignIn(t *testing.T) {
	service := &fakeSessionService{session: &entities.Session{ID: uuid.New()}}
	app := newGuardedApp(service, false)

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/signin", resp.Header.Get("Location"))

	require.Len(t, service.flashes, 1)
	assert.Equal(t, domain.MessageSignInRequired, service.flashes[0].Text)
}

func TestGuardSilentAfterLogout(t *testing.T) {
	service := &fakeSessionService{session: &entities.Session{ID: uuid.New(), LogoutIntent: true}}
	app := newGuardedApp(service, false)

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
	assert.Empty(t, service.flashes)

	// the marker is spent, the next hit gets the sign-in redirect
	resp, err = app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, "/signin", resp.Header.Get("Location"))
	assert.Len(t, service.flashes, 1)
}

func TestGuardAdminRequired(t *testing.T) {
	t.Run("non-admin is denied", func(t *testing.T) {
		service := &fakeSessionService{session: &entities.Session{ID: uuid.New(), Token: "tok"}}
		app := newGuardedApp(service, true)

		resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusFound, resp.StatusCode)
		assert.Equal(t, "/access-denied", resp.Header.Get("Location"))
	})

	t.Run("admin passes", func(t *testing.T) {
		service := &fakeSessionService{session: &entities.Session{ID: uuid.New(), Token: "tok", IsAdmin: true}}
		app := newGuardedApp(service, true)

		resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}

func TestGuardSignedInPasses(t *testing.T) {
	service := &fakeSessionService{session: &entities.Session{ID: uuid.New(), Token: "tok"}}
	app := newGuardedApp(service, false)

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestSessionMiddlewareSetsCookie(t *testing.T) {
	id := uuid.New()
	service := &fakeSessionService{session: &entities.Session{ID: id}}
	m := NewMiddleware(service, "test_session", false, time.Hour)

	app := fiber.New()
	app.Use(m.SessionMiddleware())
	app.Get("/", func(c *fiber.Ctx) error {
		sess := SessionFromCtx(c)
		require.NotNil(t, sess)
		assert.Equal(t, id, sess.ID)
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	cookies := resp.Header.Values("Set-Cookie")
	require.NotEmpty(t, cookies)
	assert.Contains(t, cookies[0], "test_session="+id.String())
	assert.Contains(t, cookies[0], "HttpOnly")
}
