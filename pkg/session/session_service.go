package session

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"Masterchef-Web/domain"
	"Masterchef-Web/entities"
	"Masterchef-Web/pkg/backend"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type (
	// SessionService is the single source of truth for "is this visitor
	// authenticated, and are they an administrator".
	SessionService interface {
		Resolve(ctx context.Context, sessionID string) (*entities.Session, error)
		SignIn(ctx context.Context, session *entities.Session, token string) error
		SignOut(ctx context.Context, session *entities.Session) error
		ConsumeLogoutIntent(ctx context.Context, session *entities.Session) (bool, error)
		RotateToken(ctx context.Context, session *entities.Session, token string) error

		CurrentUser(session *entities.Session) *domain.User

		AddFlash(ctx context.Context, session *entities.Session, level, text string) error
		TakeFlashes(ctx context.Context, session *entities.Session) ([]domain.Flash, error)

		Drafts(session *entities.Session, recipeID int64) []domain.ComponentDraft
		AddDraft(ctx context.Context, session *entities.Session, recipeID int64, draft domain.ComponentDraft) error
		RemoveDraft(ctx context.Context, session *entities.Session, recipeID int64, index int) error
		ClearDrafts(ctx context.Context, session *entities.Session, recipeID int64) error
	}

	sessionService struct {
		sessionRepository SessionRepository
		backendClient     backend.Client
		ttl               time.Duration
		log               *zap.Logger
	}
)

func NewSessionService(sessionRepository SessionRepository, backendClient backend.Client, ttl time.Duration, log *zap.Logger) SessionService {
	return &sessionService{
		sessionRepository: sessionRepository,
		backendClient:     backendClient,
		ttl:               ttl,
		log:               log,
	}
}

// Resolve loads the session for the cookie value, creating a fresh one when
// the cookie is absent, unknown or expired. A session holding a token gets
// its profile re-fetched and the admin flag re-derived from the role set;
// a failed fetch keeps the token and the cached flag (fail-soft) but leaves
// a user-visible notification.
func (s *sessionService) Resolve(ctx context.Context, sessionID string) (*entities.Session, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Token == "" {
		return session, nil
	}

	user, err := s.backendClient.CurrentUser(ctx, session.Token)
	if err != nil {
		s.log.Warn("profile fetch failed, keeping cached session state",
			zap.String("session_id", session.ID.String()),
			zap.Error(err),
		)
		if ferr := s.AddFlash(ctx, session, domain.FlashError, domain.MessageFailedFetchUser); ferr != nil {
			return nil, ferr
		}
		return session, nil
	}

	return session, s.applyProfile(ctx, session, user)
}

func (s *sessionService) load(ctx context.Context, sessionID string) (*entities.Session, error) {
	if sessionID != "" {
		id, err := uuid.Parse(sessionID)
		if err == nil {
			session, err := s.sessionRepository.GetSession(ctx, id)
			if err == nil && session.ExpiresAt.After(time.Now()) {
				return session, nil
			}
			if err != nil && err != domain.ErrSessionNotFound {
				return nil, err
			}
		}
	}

	session := &entities.Session{
		ID:        uuid.New(),
		ExpiresAt: time.Now().Add(s.ttl),
	}
	if err := s.sessionRepository.CreateSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *sessionService) applyProfile(ctx context.Context, session *entities.Session, user *domain.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	admin := domain.HasAdminRole(user.Role)
	if admin != session.IsAdmin {
		s.log.Info("admin flag re-derived from profile roles",
			zap.String("session_id", session.ID.String()),
			zap.Bool("is_admin", admin),
		)
	}
	session.UserJSON = string(raw)
	session.UserEmail = user.Email
	session.IsAdmin = admin
	return s.sessionRepository.UpdateSession(ctx, session)
}

// SignIn stores a freshly issued token. The token subject seeds the minimal
// identity before the profile fetch completes.
func (s *sessionService) SignIn(ctx context.Context, session *entities.Session, token string) error {
	subject, err := tokenSubject(token)
	if err != nil {
		return err
	}

	session.Token = token
	session.UserEmail = subject
	session.LogoutIntent = false
	if err := s.sessionRepository.UpdateSession(ctx, session); err != nil {
		return err
	}

	user, err := s.backendClient.CurrentUser(ctx, session.Token)
	if err != nil {
		s.log.Warn("profile fetch after sign-in failed", zap.Error(err))
		return s.AddFlash(ctx, session, domain.FlashError, domain.MessageFailedFetchUser)
	}
	return s.applyProfile(ctx, session, user)
}

// SignOut clears the whole session and sets the one-shot logout marker the
// route guard consumes.
func (s *sessionService) SignOut(ctx context.Context, session *entities.Session) error {
	session.Token = ""
	session.IsAdmin = false
	session.UserEmail = ""
	session.UserJSON = ""
	session.ComponentDrafts = ""
	session.LogoutIntent = true
	return s.sessionRepository.UpdateSession(ctx, session)
}

// ConsumeLogoutIntent reads and clears the marker; it answers true at most
// once per sign-out.
func (s *sessionService) ConsumeLogoutIntent(ctx context.Context, session *entities.Session) (bool, error) {
	if !session.LogoutIntent {
		return false, nil
	}
	session.LogoutIntent = false
	if err := s.sessionRepository.UpdateSession(ctx, session); err != nil {
		return false, err
	}
	return true, nil
}

// RotateToken swaps in the token the backend returned after a profile
// update changed the token subject.
func (s *sessionService) RotateToken(ctx context.Context, session *entities.Session, token string) error {
	return s.SignIn(ctx, session, token)
}

// CurrentUser returns the cached profile snapshot, nil when unresolved.
func (s *sessionService) CurrentUser(session *entities.Session) *domain.User {
	if session.UserJSON == "" {
		return nil
	}
	var user domain.User
	if err := json.Unmarshal([]byte(session.UserJSON), &user); err != nil {
		return nil
	}
	return &user
}

func (s *sessionService) AddFlash(ctx context.Context, session *entities.Session, level, text string) error {
	var flashes []domain.Flash
	if session.FlashJSON != "" {
		if err := json.Unmarshal([]byte(session.FlashJSON), &flashes); err != nil {
			flashes = nil
		}
	}
	flashes = append(flashes, domain.Flash{Level: level, Text: text})
	raw, err := json.Marshal(flashes)
	if err != nil {
		return err
	}
	session.FlashJSON = string(raw)
	return s.sessionRepository.UpdateSession(ctx, session)
}

func (s *sessionService) TakeFlashes(ctx context.Context, session *entities.Session) ([]domain.Flash, error) {
	if session.FlashJSON == "" {
		return nil, nil
	}
	var flashes []domain.Flash
	if err := json.Unmarshal([]byte(session.FlashJSON), &flashes); err != nil {
		flashes = nil
	}
	session.FlashJSON = ""
	if err := s.sessionRepository.UpdateSession(ctx, session); err != nil {
		return nil, err
	}
	return flashes, nil
}

func (s *sessionService) Drafts(session *entities.Session, recipeID int64) []domain.ComponentDraft {
	return s.draftMap(session)[draftKey(recipeID)]
}

// AddDraft validates the draft before it joins the working list.
func (s *sessionService) AddDraft(ctx context.Context, session *entities.Session, recipeID int64, draft domain.ComponentDraft) error {
	if err := draft.Validate(); err != nil {
		return err
	}
	drafts := s.draftMap(session)
	key := draftKey(recipeID)
	drafts[key] = append(drafts[key], draft)
	return s.saveDrafts(ctx, session, drafts)
}

func (s *sessionService) RemoveDraft(ctx context.Context, session *entities.Session, recipeID int64, index int) error {
	drafts := s.draftMap(session)
	key := draftKey(recipeID)
	list := drafts[key]
	if index < 0 || index >= len(list) {
		return nil
	}
	drafts[key] = append(list[:index], list[index+1:]...)
	return s.saveDrafts(ctx, session, drafts)
}

func (s *sessionService) ClearDrafts(ctx context.Context, session *entities.Session, recipeID int64) error {
	drafts := s.draftMap(session)
	delete(drafts, draftKey(recipeID))
	return s.saveDrafts(ctx, session, drafts)
}

func (s *sessionService) draftMap(session *entities.Session) map[string][]domain.ComponentDraft {
	drafts := map[string][]domain.ComponentDraft{}
	if session.ComponentDrafts != "" {
		if err := json.Unmarshal([]byte(session.ComponentDrafts), &drafts); err != nil {
			drafts = map[string][]domain.ComponentDraft{}
		}
	}
	return drafts
}

func (s *sessionService) saveDrafts(ctx context.Context, session *entities.Session, drafts map[string][]domain.ComponentDraft) error {
	raw, err := json.Marshal(drafts)
	if err != nil {
		return err
	}
	session.ComponentDrafts = string(raw)
	return s.sessionRepository.UpdateSession(ctx, session)
}

func draftKey(recipeID int64) string {
	return strconv.FormatInt(recipeID, 10)
}

// tokenSubject decodes the token without verifying it; the backend is the
// issuer and the only verifier.
func tokenSubject(token string) (string, error) {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return "", domain.ErrTokenInvalid
	}
	if claims.Subject == "" {
		return "", domain.ErrTokenInvalid
	}
	return claims.Subject, nil
}
