package users

import (
	"context"
	"testing"

	"Masterchef-Web/domain"
	"Masterchef-Web/pkg/backend"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	backend.Client
	currentUserCalls int
	adminUserCalls   int
	passwordReq      domain.ChangePasswordRequest
}

func (f *fakeBackend) CurrentUser(context.Context, string) (*domain.User, error) {
	f.currentUserCalls++
	return &domain.User{ID: 1}, nil
}

func (f *fakeBackend) AdminUser(_ context.Context, _ string, userID int64) (*domain.User, error) {
	f.adminUserCalls++
	return &domain.User{ID: userID}, nil
}

func (f *fakeBackend) ChangePassword(_ context.Context, _ string, _ int64, req domain.ChangePasswordRequest) error {
	f.passwordReq = req
	return nil
}

func TestGetRoutesByRole(t *testing.T) {
	t.Run("admin uses the admin endpoint", func(t *testing.T) {
		client := &fakeBackend{}
		service := NewUserService(client)

		user, err := service.Get(context.Background(), "tok", 9, true)
		require.NoError(t, err)
		assert.Equal(t, int64(9), user.ID)
		assert.Equal(t, 1, client.adminUserCalls)
		assert.Zero(t, client.currentUserCalls)
	})

	t.Run("own profile uses the current-user endpoint", func(t *testing.T) {
		client := &fakeBackend{}
		service := NewUserService(client)

		_, err := service.Get(context.Background(), "tok", 9, false)
		require.NoError(t, err)
		assert.Equal(t, 1, client.currentUserCalls)
		assert.Zero(t, client.adminUserCalls)
	})
}

func TestChangePasswordDropsOldPasswordForAdmins(t *testing.T) {
	client := &fakeBackend{}
	service := NewUserService(client)

	req := domain.ChangePasswordRequest{OldPassword: "old-secret", NewPassword: "new-secret"}
	require.NoError(t, service.ChangePassword(context.Background(), "tok", 9, req, true))
	assert.Empty(t, client.passwordReq.OldPassword)
	assert.Equal(t, "new-secret", client.passwordReq.NewPassword)

	require.NoError(t, service.ChangePassword(context.Background(), "tok", 9, req, false))
	assert.Equal(t, "old-secret", client.passwordReq.OldPassword)
}
