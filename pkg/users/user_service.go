package users

import (
	"context"

	"Masterchef-Web/domain"
	"Masterchef-Web/pkg/backend"
)

type (
	UserService interface {
		List(ctx context.Context, token string) ([]domain.User, error)
		Get(ctx context.Context, token string, userID int64, asAdmin bool) (*domain.User, error)
		UpdateProfile(ctx context.Context, token string, userID int64, req domain.UpdateUserRequest) (string, error)
		ChangePassword(ctx context.Context, token string, userID int64, req domain.ChangePasswordRequest, asAdmin bool) error
		Suspend(ctx context.Context, token string, userID int64) error
		Delete(ctx context.Context, token string, userID int64) error
	}

	userService struct {
		backendClient backend.Client
	}
)

func NewUserService(backendClient backend.Client) UserService {
	return &userService{backendClient: backendClient}
}

func (s *userService) List(ctx context.Context, token string) ([]domain.User, error) {
	return s.backendClient.AdminUsers(ctx, token)
}

// Get resolves a user either through the admin endpoint or, for the
// session's own profile, the current-user endpoint.
func (s *userService) Get(ctx context.Context, token string, userID int64, asAdmin bool) (*domain.User, error) {
	if asAdmin {
		return s.backendClient.AdminUser(ctx, token, userID)
	}
	return s.backendClient.CurrentUser(ctx, token)
}

// UpdateProfile submits the edit and returns the rotated token when the
// backend issued one (email change rotates the token subject), "" otherwise.
func (s *userService) UpdateProfile(ctx context.Context, token string, userID int64, req domain.UpdateUserRequest) (string, error) {
	return s.backendClient.UpdateUser(ctx, token, userID, req)
}

// ChangePassword drops the old-password requirement for administrators, as
// the backend does.
func (s *userService) ChangePassword(ctx context.Context, token string, userID int64, req domain.ChangePasswordRequest, asAdmin bool) error {
	if asAdmin {
		req.OldPassword = ""
	}
	return s.backendClient.ChangePassword(ctx, token, userID, req)
}

func (s *userService) Suspend(ctx context.Context, token string, userID int64) error {
	return s.backendClient.SuspendUser(ctx, token, userID)
}

func (s *userService) Delete(ctx context.Context, token string, userID int64) error {
	return s.backendClient.DeleteUser(ctx, token, userID)
}
