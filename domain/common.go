package domain

import (
	"errors"
)

const (
	RoleAdmin = "ROLE_ADMIN"
	RoleUser  = "ROLE_USER"
)

var (
	MessageSignInRequired       = "you are not signed in, sign in to access this page"
	MessageFailedProcessRequest = "failed to process request"
	MessageNetworkError         = "network error, check your connection"
	MessageBadRequest           = "invalid data"
	MessageUnauthorized         = "unauthorized"
	MessageForbidden            = "access forbidden"
	MessageNotFound             = "data not found"
	MessageServerError          = "server error, try again later"
	MessageUnknownError         = "unknown error"

	ErrSessionNotFound = errors.New("session not found")
	ErrTokenNotFound   = errors.New("token not found")
	ErrTokenInvalid    = errors.New("token invalid")
)

type Flash struct {
	Level string `json:"level"`
	Text  string `json:"text"`
}

const (
	FlashSuccess = "success"
	FlashError   = "error"
)
