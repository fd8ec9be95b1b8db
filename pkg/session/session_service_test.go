package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"Masterchef-Web/domain"
	"Masterchef-Web/entities"
	"Masterchef-Web/pkg/backend"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSessionRepository struct {
	sessions map[uuid.UUID]*entities.Session
}

func newFakeSessionRepository() *fakeSessionRepository {
	return &fakeSessionRepository{sessions: map[uuid.UUID]*entities.Session{}}
}

func (r *fakeSessionRepository) GetSession(_ context.Context, id uuid.UUID) (*entities.Session, error) {
	session, ok := r.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	copied := *session
	return &copied, nil
}

func (r *fakeSessionRepository) CreateSession(_ context.Context, session *entities.Session) error {
	copied := *session
	r.sessions[session.ID] = &copied
	return nil
}

func (r *fakeSessionRepository) UpdateSession(_ context.Context, session *entities.Session) error {
	copied := *session
	r.sessions[session.ID] = &copied
	return nil
}

func (r *fakeSessionRepository) DeleteExpired(_ context.Context, now time.Time) error {
	for id, session := range r.sessions {
		if session.ExpiresAt.Before(now) {
			delete(r.sessions, id)
		}
	}
	return nil
}

// fakeBackend stubs the one backend call the session service makes. The
// embedded interface panics on anything else, which is the point.
type fakeBackend struct {
	backend.Client
	user *domain.User
	err  error
}

func (f *fakeBackend) CurrentUser(context.Context, string) (*domain.User, error) {
	return f.user, f.err
}

func signedToken(t *testing.T, subject string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: subject})
	signed, err := token.SignedString([]byte("test-key"))
	require.NoError(t, err)
	return signed
}

func newTestService(repo SessionRepository, client backend.Client) SessionService {
	return NewSessionService(repo, client, time.Hour, zap.NewNop())
}

func TestResolveCreatesFreshSession(t *testing.T) {
	repo := newFakeSessionRepository()
	service := newTestService(repo, &fakeBackend{})

	tests := []struct {
		name   string
		cookie string
	}{
		{name: "no cookie", cookie: ""},
		{name: "malformed cookie", cookie: "not-a-uuid"},
		{name: "unknown cookie", cookie: uuid.NewString()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, err := service.Resolve(context.Background(), tt.cookie)
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, session.ID)
			assert.Empty(t, session.Token)
			assert.True(t, session.ExpiresAt.After(time.Now()))
		})
	}
}

func TestResolveReplacesExpiredSession(t *testing.T) {
	repo := newFakeSessionRepository()
	service := newTestService(repo, &fakeBackend{})

	stale := &entities.Session{
		ID:        uuid.New(),
		Token:     "old-token",
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	require.NoError(t, repo.CreateSession(context.Background(), stale))

	session, err := service.Resolve(context.Background(), stale.ID.String())
	require.NoError(t, err)
	assert.NotEqual(t, stale.ID, session.ID)
	assert.Empty(t, session.Token)
}

func TestResolveRederivesAdminFlag(t *testing.T) {
	tests := []struct {
		name        string
		storedAdmin bool
		roles       []string
		wantAdmin   bool
	}{
		{name: "promotion picked up", storedAdmin: false, roles: []string{domain.RoleUser, domain.RoleAdmin}, wantAdmin: true},
		{name: "stale admin flag dropped", storedAdmin: true, roles: []string{domain.RoleUser}, wantAdmin: false},
		{name: "flag already correct", storedAdmin: true, roles: []string{domain.RoleAdmin}, wantAdmin: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeSessionRepository()
			client := &fakeBackend{user: &domain.User{ID: 1, Email: "cook@example.com", Role: tt.roles}}
			service := newTestService(repo, client)

			existing := &entities.Session{
				ID:        uuid.New(),
				Token:     "token",
				IsAdmin:   tt.storedAdmin,
				ExpiresAt: time.Now().Add(time.Hour),
			}
			require.NoError(t, repo.CreateSession(context.Background(), existing))

			session, err := service.Resolve(context.Background(), existing.ID.String())
			require.NoError(t, err)
			assert.Equal(t, tt.wantAdmin, session.IsAdmin)
			assert.Equal(t, "cook@example.com", session.UserEmail)
		})
	}
}

func TestResolveKeepsTokenWhenProfileFetchFails(t *testing.T) {
	repo := newFakeSessionRepository()
	client := &fakeBackend{err: errors.New("connection refused")}
	service := newTestService(repo, client)

	existing := &entities.Session{
		ID:        uuid.New(),
		Token:     "token",
		IsAdmin:   true,
		UserEmail: "cook@example.com",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, repo.CreateSession(context.Background(), existing))

	session, err := service.Resolve(context.Background(), existing.ID.String())
	require.NoError(t, err)

	// cached state survives, the failure surfaces as a notification
	assert.Equal(t, "token", session.Token)
	assert.True(t, session.IsAdmin)
	flashes, err := service.TakeFlashes(context.Background(), session)
	require.NoError(t, err)
	require.Len(t, flashes, 1)
	assert.Equal(t, domain.FlashError, flashes[0].Level)
}

func TestSignIn(t *testing.T) {
	t.Run("stores token and subject", func(t *testing.T) {
		repo := newFakeSessionRepository()
		client := &fakeBackend{user: &domain.User{ID: 1, Email: "cook@example.com", Role: []string{domain.RoleAdmin}}}
		service := newTestService(repo, client)

		session := &entities.Session{ID: uuid.New(), ExpiresAt: time.Now().Add(time.Hour)}
		require.NoError(t, repo.CreateSession(context.Background(), session))

		token := signedToken(t, "cook@example.com")
		require.NoError(t, service.SignIn(context.Background(), session, token))

		assert.Equal(t, token, session.Token)
		assert.Equal(t, "cook@example.com", session.UserEmail)
		assert.True(t, session.IsAdmin)
		assert.False(t, session.LogoutIntent)
	})

	t.Run("rejects token without subject", func(t *testing.T) {
		repo := newFakeSessionRepository()
		service := newTestService(repo, &fakeBackend{})

		session := &entities.Session{ID: uuid.New(), ExpiresAt: time.Now().Add(time.Hour)}
		err := service.SignIn(context.Background(), session, signedToken(t, ""))
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})

	t.Run("rejects malformed token", func(t *testing.T) {
		repo := newFakeSessionRepository()
		service := newTestService(repo, &fakeBackend{})

		session := &entities.Session{ID: uuid.New(), ExpiresAt: time.Now().Add(time.Hour)}
		err := service.SignIn(context.Background(), session, "not-a-jwt")
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})
}

func TestSignOutAndLogoutIntent(t *testing.T) {
	repo := newFakeSessionRepository()
	client := &fakeBackend{user: &domain.User{ID: 1, Email: "cook@example.com"}}
	service := newTestService(repo, client)

	session := &entities.Session{ID: uuid.New(), ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, repo.CreateSession(context.Background(), session))
	require.NoError(t, service.SignIn(context.Background(), session, signedToken(t, "cook@example.com")))

	require.NoError(t, service.SignOut(context.Background(), session))
	assert.Empty(t, session.Token)
	assert.Empty(t, session.UserEmail)
	assert.Empty(t, session.UserJSON)
	assert.False(t, session.IsAdmin)

	// the marker answers true exactly once
	intentional, err := service.ConsumeLogoutIntent(context.Background(), session)
	require.NoError(t, err)
	assert.True(t, intentional)

	intentional, err = service.ConsumeLogoutIntent(context.Background(), session)
	require.NoError(t, err)
	assert.False(t, intentional)
}

func TestFlashes(t *testing.T) {
	repo := newFakeSessionRepository()
	service := newTestService(repo, &fakeBackend{})

	session := &entities.Session{ID: uuid.New(), ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, repo.CreateSession(context.Background(), session))

	require.NoError(t, service.AddFlash(context.Background(), session, domain.FlashSuccess, "first"))
	require.NoError(t, service.AddFlash(context.Background(), session, domain.FlashError, "second"))

	flashes, err := service.TakeFlashes(context.Background(), session)
	require.NoError(t, err)
	require.Len(t, flashes, 2)
	assert.Equal(t, "first", flashes[0].Text)
	assert.Equal(t, domain.FlashError, flashes[1].Level)

	// taking drains the queue
	flashes, err = service.TakeFlashes(context.Background(), session)
	require.NoError(t, err)
	assert.Empty(t, flashes)
}

func TestDrafts(t *testing.T) {
	repo := newFakeSessionRepository()
	service := newTestService(repo, &fakeBackend{})

	session := &entities.Session{ID: uuid.New(), ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, repo.CreateSession(context.Background(), session))

	valid := domain.ComponentDraft{
		Name:         "Sauce",
		Ingredients:  []string{"tomato"},
		Instructions: "Simmer for an hour",
	}

	t.Run("invalid draft is rejected", func(t *testing.T) {
		err := service.AddDraft(context.Background(), session, 5, domain.ComponentDraft{Name: "ab"})
		assert.ErrorIs(t, err, domain.ErrComponentNameTooShort)
		assert.Empty(t, service.Drafts(session, 5))
	})

	t.Run("drafts accumulate per recipe", func(t *testing.T) {
		require.NoError(t, service.AddDraft(context.Background(), session, 5, valid))
		require.NoError(t, service.AddDraft(context.Background(), session, 5, valid))
		require.NoError(t, service.AddDraft(context.Background(), session, 6, valid))

		assert.Len(t, service.Drafts(session, 5), 2)
		assert.Len(t, service.Drafts(session, 6), 1)
	})

	t.Run("remove by index", func(t *testing.T) {
		require.NoError(t, service.RemoveDraft(context.Background(), session, 5, 0))
		assert.Len(t, service.Drafts(session, 5), 1)

		// out-of-range indexes are ignored
		require.NoError(t, service.RemoveDraft(context.Background(), session, 5, 9))
		assert.Len(t, service.Drafts(session, 5), 1)
	})

	t.Run("clear drops only the recipe's list", func(t *testing.T) {
		require.NoError(t, service.ClearDrafts(context.Background(), session, 5))
		assert.Empty(t, service.Drafts(session, 5))
		assert.Len(t, service.Drafts(session, 6), 1)
	})
}

func TestCurrentUserSnapshot(t *testing.T) {
	repo := newFakeSessionRepository()
	client := &fakeBackend{user: &domain.User{ID: 9, Name: "Ada", Email: "ada@example.com"}}
	service := newTestService(repo, client)

	session := &entities.Session{ID: uuid.New(), ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, repo.CreateSession(context.Background(), session))

	assert.Nil(t, service.CurrentUser(session))

	require.NoError(t, service.SignIn(context.Background(), session, signedToken(t, "ada@example.com")))
	user := service.CurrentUser(session)
	require.NotNil(t, user)
	assert.Equal(t, int64(9), user.ID)
	assert.Equal(t, "Ada", user.Name)
}
