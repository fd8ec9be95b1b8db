package entities

import (
	"time"

	"github.com/google/uuid"
)

// Session is the durable per-visitor record keyed by the session cookie.
// Token, IsAdmin and UserEmail survive restarts; the profile snapshot is
// refreshed from the backend on every resolve.
type Session struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Token           string    `gorm:"type:text" json:"token"`
	IsAdmin         bool      `json:"is_admin"`
	UserEmail       string    `json:"user_email"`
	UserJSON        string    `gorm:"type:text" json:"user_json"`
	LogoutIntent    bool      `json:"logout_intent"`
	FlashJSON       string    `gorm:"type:text" json:"flash_json"`
	ComponentDrafts string    `gorm:"type:text" json:"component_drafts"`
	ExpiresAt       time.Time `gorm:"type:timestamp" json:"expires_at"`

	Timestamp
}
