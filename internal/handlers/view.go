package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/form/v4"

	"github.com/sbilibin2017/gw-movie-watchlist/internal/logger"
	"github.com/sbilibin2017/gw-movie-watchlist/internal/models"
	"github.com/sbilibin2017/gw-movie-watchlist/internal/services"
)

// View names understood by the templating layer.
const (
	ViewIndex    = "index"
	ViewLogin    = "login"
	ViewRegister = "register"
	ViewHome     = "home"
	ViewAdd      = "add"
	ViewSelect   = "select"
	ViewError    = "error"
)

// Flash messages.
const (
	FlashNoSuchUser      = "Invalid User, please try again"
	FlashBadPassword     = "Invalid password, please try again"
	FlashEmailTaken      = "This email is already being used"
	FlashMissingFields   = "Please fill in all fields"
	FlashTitleRequired   = "Please enter a title"
	FlashPickMovie       = "Please pick a movie"
	FlashUpstream        = "The movie service is unavailable, please try again later"
	FlashMovieNotFound   = "Movie not found"
	FlashInternalFailure = "Internal server error"
)

// UserGetter returns the authenticated user attached to ctx, or nil.
type UserGetter func(ctx context.Context) *models.User

// SessionIDGetter returns the current session id attached to ctx, or "".
type SessionIDGetter func(ctx context.Context) string

// ViewResponse is the view model rendered by the templating layer
// swagger:model ViewResponse
type ViewResponse struct {
	// Template name
	// default: home
	View string `json:"view"`

	// One-shot message shown above the form
	Flash string `json:"flash,omitempty"`

	// View payload
	Data any `json:"data,omitempty"`
}

var formDecoder = form.NewDecoder()

func writeView(w http.ResponseWriter, status int, view, flash string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ViewResponse{
		View:  view,
		Flash: flash,
		Data:  data,
	})
}

func redirect(w http.ResponseWriter, r *http.Request, path string) {
	http.Redirect(w, r, path, http.StatusSeeOther)
}

// decodeRequest fills dst from a JSON body or from url-encoded form values.
func decodeRequest(r *http.Request, dst any) error {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		return json.NewDecoder(r.Body).Decode(dst)
	}

	if err := r.ParseForm(); err != nil {
		return err
	}
	return formDecoder.Decode(dst, r.PostForm)
}

// writeServiceError maps watchlist errors onto the error view.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrUpstreamUnavailable):
		writeView(w, http.StatusBadGateway, ViewError, FlashUpstream, nil)
	case errors.Is(err, services.ErrNotFound):
		writeView(w, http.StatusNotFound, ViewError, FlashMovieNotFound, nil)
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeView(w, http.StatusInternalServerError, ViewError, FlashInternalFailure, nil)
	}
}

func movieIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
