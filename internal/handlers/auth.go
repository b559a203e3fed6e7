package handlers

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/sbilibin2017/gw-movie-watchlist/internal/logger"
	"github.com/sbilibin2017/gw-movie-watchlist/internal/models"
	"github.com/sbilibin2017/gw-movie-watchlist/internal/services"
)

// Registerer creates accounts.
type Registerer interface {
	Register(ctx context.Context, email, password, name string) (*models.User, error)
}

// Authenticator verifies credentials.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
}

// SessionManager opens and closes login sessions.
type SessionManager interface {
	Login(ctx context.Context, user *models.User) (string, error)
	Logout(ctx context.Context, token string) error
}

// CookieManager reads and writes the session cookie.
type CookieManager interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	SetCookie(w http.ResponseWriter, token string)
	ClearCookie(w http.ResponseWriter)
}

// LoginRequest is the login form
// swagger:model LoginRequest
type LoginRequest struct {
	// required: true
	// default: user@example.com
	Email string `json:"email" form:"email"`

	// required: true
	// default: pw123
	Password string `json:"password" form:"password"`
}

// RegisterRequest is the registration form
// swagger:model RegisterRequest
type RegisterRequest struct {
	// required: true
	// default: user@example.com
	Email string `json:"email" form:"email"`

	// required: true
	// default: pw123
	Password string `json:"password" form:"password"`

	// required: true
	// default: Ann
	Name string `json:"name" form:"name"`
}

// NewIndexHandler returns the landing page.
// @Summary Landing page
// @Tags pages
// @Produce json
// @Success 200 {object} handlers.ViewResponse "index view"
// @Router / [get]
func NewIndexHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeView(w, http.StatusOK, ViewIndex, "", nil)
	}
}

// NewLoginPageHandler returns the empty login form.
// @Summary Login form
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.ViewResponse "login view"
// @Router /login [get]
func NewLoginPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeView(w, http.StatusOK, ViewLogin, "", nil)
	}
}

// NewLoginHandler authenticates the user and opens a session.
// @Summary User login
// @Description Verifies credentials, sets the session cookie and redirects to /home
// @Tags auth
// @Accept x-www-form-urlencoded,json
// @Produce json
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Success 303 "Redirect to /home"
// @Failure 400 {object} handlers.ViewResponse "Missing fields"
// @Failure 401 {object} handlers.ViewResponse "Unknown user or wrong password"
// @Failure 429 "Too many requests"
// @Failure 500 {object} handlers.ViewResponse "Internal server error"
// @Router /login [post]
func NewLoginHandler(auth Authenticator, sessions SessionManager, cookies CookieManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := decodeRequest(r, &req); err != nil || req.Email == "" || req.Password == "" {
			writeView(w, http.StatusBadRequest, ViewLogin, FlashMissingFields, nil)
			return
		}

		user, err := auth.Authenticate(r.Context(), strings.TrimSpace(req.Email), req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNoSuchUser):
				writeView(w, http.StatusUnauthorized, ViewLogin, FlashNoSuchUser, nil)
			case errors.Is(err, services.ErrBadPassword):
				writeView(w, http.StatusUnauthorized, ViewLogin, FlashBadPassword, nil)
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeView(w, http.StatusInternalServerError, ViewLogin, FlashInternalFailure, nil)
			}
			return
		}

		openSession(w, r, sessions, cookies, user)
	}
}

// NewRegisterPageHandler returns the empty registration form.
// @Summary Registration form
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.ViewResponse "register view"
// @Router /register [get]
func NewRegisterPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeView(w, http.StatusOK, ViewRegister, "", nil)
	}
}

// NewRegisterHandler creates the account and logs the new user in.
// @Summary User registration
// @Description Creates an account, sets the session cookie and redirects to /home
// @Tags auth
// @Accept x-www-form-urlencoded,json
// @Produce json
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Param name formData string true "Display name"
// @Success 303 "Redirect to /home"
// @Failure 400 {object} handlers.ViewResponse "Missing fields"
// @Failure 409 {object} handlers.ViewResponse "Email already used"
// @Failure 429 "Too many requests"
// @Failure 500 {object} handlers.ViewResponse "Internal server error"
// @Router /register [post]
func NewRegisterHandler(reg Registerer, sessions SessionManager, cookies CookieManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := decodeRequest(r, &req); err != nil ||
			req.Email == "" || req.Password == "" || strings.TrimSpace(req.Name) == "" {
			writeView(w, http.StatusBadRequest, ViewRegister, FlashMissingFields, nil)
			return
		}

		user, err := reg.Register(r.Context(), strings.TrimSpace(req.Email), req.Password, strings.TrimSpace(req.Name))
		if err != nil {
			if errors.Is(err, services.ErrEmailTaken) {
				writeView(w, http.StatusConflict, ViewRegister, FlashEmailTaken, nil)
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			writeView(w, http.StatusInternalServerError, ViewRegister, FlashInternalFailure, nil)
			return
		}

		openSession(w, r, sessions, cookies, user)
	}
}

// NewLogoutHandler ends the session and returns to the landing page.
// Calling it without a session is not an error.
// @Summary Logout
// @Tags auth
// @Success 303 "Redirect to /"
// @Router /logout [get]
func NewLogoutHandler(sessions SessionManager, cookies CookieManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if token, err := cookies.GetTokenFromRequest(r.Context(), r); err == nil {
			if err := sessions.Logout(r.Context(), token); err != nil {
				logger.Log.Errorw("failed to close session", "err", err)
			}
		}

		cookies.ClearCookie(w)
		redirect(w, r, "/")
	}
}

func openSession(w http.ResponseWriter, r *http.Request, sessions SessionManager, cookies CookieManager, user *models.User) {
	token, err := sessions.Login(r.Context(), user)
	if err != nil {
		logger.Log.Errorw("failed to open session", "user_id", user.ID, "err", err)
		writeView(w, http.StatusInternalServerError, ViewError, FlashInternalFailure, nil)
		return
	}

	cookies.SetCookie(w, token)
	redirect(w, r, "/home")
}
