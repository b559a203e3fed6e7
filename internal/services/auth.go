package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/gw-movie-watchlist/internal/logger"
	"github.com/sbilibin2017/gw-movie-watchlist/internal/models"
	"github.com/sbilibin2017/gw-movie-watchlist/internal/repositories"
)

// Credential store errors.
var (
	ErrEmailTaken  = errors.New("email already registered")
	ErrNoSuchUser  = errors.New("no such user")
	ErrBadPassword = errors.New("bad password")
)

// PasswordCost is the bcrypt work factor. bcrypt fixes the salt at 16 bytes.
const PasswordCost = bcrypt.DefaultCost

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, email, passwordHash, name string) (*models.User, error)
}

// AuthService registers users and verifies their credentials.
type AuthService struct {
	reader UserReader
	writer UserWriter
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
	}
}

// Register creates a user with a salted bcrypt hash of password. Passwords of
// any length are accepted.
func (svc *AuthService) Register(ctx context.Context, email, password, name string) (*models.User, error) {
	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Infow("email already registered", "email", email)
		return nil, ErrEmailTaken
	}

	hashedPassword, err := HashPassword(password, PasswordCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user, err := svc.writer.Create(ctx, email, hashedPassword, name)
	if errors.Is(err, repositories.ErrConflict) {
		// lost a race with a concurrent registration
		logger.Log.Infow("email already registered", "email", email)
		return nil, ErrEmailTaken
	}
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	return user, nil
}

// Authenticate looks the user up by exact email and verifies the password.
// The hash comparison is constant-time.
func (svc *AuthService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Infow("user does not exist", "email", email)
		return nil, ErrNoSuchUser
	}

	if !VerifyPassword(user.PasswordHash, password) {
		logger.Log.Infow("invalid password", "email", email)
		return nil, ErrBadPassword
	}

	return user, nil
}
