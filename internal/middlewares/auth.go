package middlewares

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-movie-watchlist/internal/logger"
	"github.com/sbilibin2017/gw-movie-watchlist/internal/models"
	"github.com/sbilibin2017/gw-movie-watchlist/internal/services"
)

// LoginPath is where unauthenticated requests are redirected.
const LoginPath = "/login"

// Tokener extracts the session token from a request.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// SessionResolver maps a session token to its session and user.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*models.Session, *models.User, error)
}

// AuthMiddleware requires a live session. Anonymous callers are redirected
// to the login page.
func AuthMiddleware(tokener Tokener, resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Infow("anonymous request to protected route", "uri", r.RequestURI)
				http.Redirect(w, r, LoginPath, http.StatusSeeOther)
				return
			}

			session, user, err := resolver.Resolve(ctx, tokenString)
			if errors.Is(err, services.ErrUnauthenticated) {
				logger.Log.Infow("unauthenticated request", "uri", r.RequestURI)
				http.Redirect(w, r, LoginPath, http.StatusSeeOther)
				return
			}
			if err != nil {
				logger.Log.Errorw("failed to resolve session", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			ctx = context.WithValue(ctx, userKey, user)
			ctx = context.WithValue(ctx, sessionKey, session.ID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

type authContextKey int

const (
	userKey authContextKey = iota
	sessionKey
)

// GetUserFromContext returns the authenticated user or nil.
func GetUserFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(userKey).(*models.User)
	return user
}

// GetSessionIDFromContext returns the current session id or "".
func GetSessionIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(sessionKey).(string)
	return id
}
