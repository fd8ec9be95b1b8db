package session

import (
	"context"
	"errors"
	"time"

	"Masterchef-Web/domain"
	"Masterchef-Web/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	SessionRepository interface {
		GetSession(ctx context.Context, id uuid.UUID) (*entities.Session, error)
		CreateSession(ctx context.Context, session *entities.Session) error
		UpdateSession(ctx context.Context, session *entities.Session) error
		DeleteExpired(ctx context.Context, now time.Time) error
	}

	sessionRepository struct {
		db *gorm.DB
	}
)

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) GetSession(ctx context.Context, id uuid.UUID) (*entities.Session, error) {
	var session entities.Session
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) CreateSession(ctx context.Context, session *entities.Session) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *sessionRepository) UpdateSession(ctx context.Context, session *entities.Session) error {
	return r.db.WithContext(ctx).Save(session).Error
}

func (r *sessionRepository) DeleteExpired(ctx context.Context, now time.Time) error {
	return r.db.WithContext(ctx).
		Where("expires_at < ?", now).
		Delete(&entities.Session{}).Error
}
