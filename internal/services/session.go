package services

//go:generate mockgen -source=session.go -destination=session_mock.go -package=services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-movie-watchlist/internal/logger"
	"github.com/sbilibin2017/gw-movie-watchlist/internal/models"
)

// ErrUnauthenticated is returned when a request carries no live session.
var ErrUnauthenticated = errors.New("unauthenticated")

// SessionStore persists server-side sessions.
type SessionStore interface {
	Save(ctx context.Context, session *models.Session) error
	Get(ctx context.Context, id string) (*models.Session, error)
	Delete(ctx context.Context, id string) error
}

// UserByIDReader resolves a session's user.
type UserByIDReader interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// SessionTokener signs session ids into cookie tokens and back.
type SessionTokener interface {
	Generate(ctx context.Context, sessionID string) (string, error)
	GetSessionID(ctx context.Context, tokenString string) (string, error)
}

// SessionService establishes, resolves and tears down login sessions.
// A user may hold any number of concurrent sessions.
type SessionService struct {
	store  SessionStore
	users  UserByIDReader
	tokens SessionTokener
}

// NewSessionService creates a new SessionService.
func NewSessionService(store SessionStore, users UserByIDReader, tokens SessionTokener) *SessionService {
	return &SessionService{
		store:  store,
		users:  users,
		tokens: tokens,
	}
}

// Login opens a session for user and returns the signed token for the cookie.
func (s *SessionService) Login(ctx context.Context, user *models.User) (string, error) {
	session := &models.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.Save(ctx, session); err != nil {
		logger.Log.Errorw("failed to save session", "user_id", user.ID, "error", err)
		return "", err
	}

	token, err := s.tokens.Generate(ctx, session.ID)
	if err != nil {
		logger.Log.Errorw("failed to sign session token", "user_id", user.ID, "error", err)
		return "", err
	}

	logger.Log.Infow("session opened", "user_id", user.ID, "session_id", session.ID)
	return token, nil
}

// Resolve maps a token to its live session and user. Any failure is
// ErrUnauthenticated except store errors, which are returned as is.
func (s *SessionService) Resolve(ctx context.Context, token string) (*models.Session, *models.User, error) {
	if token == "" {
		return nil, nil, ErrUnauthenticated
	}

	sessionID, err := s.tokens.GetSessionID(ctx, token)
	if err != nil {
		logger.Log.Infow("rejected session token", "error", err)
		return nil, nil, ErrUnauthenticated
	}

	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		logger.Log.Errorw("failed to load session", "session_id", sessionID, "error", err)
		return nil, nil, err
	}
	if session == nil {
		return nil, nil, ErrUnauthenticated
	}

	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil {
		logger.Log.Errorw("failed to load session user", "session_id", sessionID, "error", err)
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, ErrUnauthenticated
	}

	return session, user, nil
}

// Logout invalidates the session behind token. Unknown, expired or malformed
// tokens are not an error.
func (s *SessionService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	sessionID, err := s.tokens.GetSessionID(ctx, token)
	if err != nil {
		return nil
	}

	if err := s.store.Delete(ctx, sessionID); err != nil {
		logger.Log.Errorw("failed to delete session", "session_id", sessionID, "error", err)
		return err
	}

	logger.Log.Infow("session closed", "session_id", sessionID)
	return nil
}
