package domain

var (
	MessageSuccessSignUp         = "registration successful"
	MessageSuccessSignIn         = "signed in successfully"
	MessageSuccessUpdateUser     = "user data updated successfully"
	MessageSuccessChangePassword = "password changed successfully"
	MessageSuccessSuspendUser    = "user suspended"
	MessageSuccessDeleteUser     = "user deleted"

	MessageFailedSignUp         = "registration failed, try again"
	MessageFailedSignIn         = "sign in failed, try again"
	MessageFailedFetchUser      = "failed to fetch user"
	MessageFailedUpdateUser     = "failed to update user"
	MessageFailedChangePassword = "failed to change password"
	MessageFailedSuspendUser    = "user was not suspended"
	MessageFailedDeleteUser     = "user was not deleted"
	MessageEmailAlreadyInUse    = "an account with this email already exists"
	MessageInvalidTokenSubject  = "invalid token, missing user identifier"
)

type (
	// User mirrors the backend user representation.
	User struct {
		ID           int64    `json:"id"`
		Name         string   `json:"name"`
		Surname      string   `json:"surname"`
		Email        string   `json:"email"`
		Role         []string `json:"role"`
		Enabled      bool     `json:"enabled"`
		CreationDate string   `json:"creationDate,omitempty"`
	}

	SignUpRequest struct {
		Name     string `json:"name" form:"name" validate:"required"`
		Surname  string `json:"surname" form:"surname" validate:"required"`
		Email    string `json:"email" form:"email" validate:"required,email"`
		Password string `json:"password" form:"password" validate:"required,min=6"`
	}

	SignInRequest struct {
		Email    string `json:"email" form:"email" validate:"required,email"`
		Password string `json:"password" form:"password" validate:"required,min=6"`
	}

	UpdateUserRequest struct {
		Name    string `json:"name" form:"name" validate:"required"`
		Surname string `json:"surname" form:"surname" validate:"required"`
		Email   string `json:"email" form:"email" validate:"required,email"`
	}

	ChangePasswordRequest struct {
		OldPassword string `json:"oldPassword,omitempty" form:"oldPassword"`
		NewPassword string `json:"newPassword" form:"newPassword" validate:"required,min=6"`
	}
)

// RoleLabel maps a backend role set to the label shown in the admin table.
func RoleLabel(roles []string) string {
	for _, r := range roles {
		if r == RoleAdmin {
			return "ADMIN"
		}
	}
	return "USER"
}

// HasAdminRole reports whether the role set grants administrator access.
func HasAdminRole(roles []string) bool {
	for _, r := range roles {
		if r == RoleAdmin {
			return true
		}
	}
	return false
}
