package backend

import (
	"context"
	"fmt"

	"Masterchef-Web/domain"
)

// SignIn exchanges credentials for a bearer token.
func (c *client) SignIn(ctx context.Context, email, password string) (string, error) {
	var out struct {
		JWTToken string `json:"jwtToken"`
	}
	in := domain.SignInRequest{Email: email, Password: password}
	if err := c.postJSON(ctx, "/auth/public/signin", "", in, &out); err != nil {
		return "", err
	}
	if out.JWTToken == "" {
		return "", domain.ErrTokenNotFound
	}
	return out.JWTToken, nil
}

func (c *client) SignUp(ctx context.Context, req domain.SignUpRequest) error {
	return c.postJSON(ctx, "/auth/public/signup", "", req, nil)
}

func (c *client) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	var user domain.User
	if err := c.getJSON(ctx, "/auth/user", token, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *client) ChangePassword(ctx context.Context, token string, userID int64, req domain.ChangePasswordRequest) error {
	return c.postJSON(ctx, fmt.Sprintf("/auth/change-password/%d", userID), token, req, nil)
}

// UpdateUser submits a profile update. When the email (the token subject)
// changed, the backend rotates the token and returns it; callers get ""
// when the old token is still good.
func (c *client) UpdateUser(ctx context.Context, token string, userID int64, req domain.UpdateUserRequest) (string, error) {
	var out struct {
		JWTToken string `json:"jwtToken"`
	}
	if err := c.postJSON(ctx, fmt.Sprintf("/users/%d", userID), token, req, &out); err != nil {
		return "", err
	}
	return out.JWTToken, nil
}

func (c *client) AdminUsers(ctx context.Context, token string) ([]domain.User, error) {
	var users []domain.User
	if err := c.getJSON(ctx, "/admin/users", token, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *client) AdminUser(ctx context.Context, token string, userID int64) (*domain.User, error) {
	var user domain.User
	if err := c.getJSON(ctx, fmt.Sprintf("/admin/user/%d", userID), token, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *client) SuspendUser(ctx context.Context, token string, userID int64) error {
	return c.postJSON(ctx, fmt.Sprintf("/admin/suspend-user/%d", userID), token, nil, nil)
}

func (c *client) DeleteUser(ctx context.Context, token string, userID int64) error {
	return c.delete(ctx, fmt.Sprintf("/users/%d", userID), token)
}
