package handlers

//go:generate mockgen -source=watchlist.go -destination=watchlist_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/sbilibin2017/gw-movie-watchlist/internal/models"
	"github.com/sbilibin2017/gw-movie-watchlist/internal/services"
)

// WatchlistLister lists a user's saved movies.
type WatchlistLister interface {
	ListForUser(ctx context.Context, userID int64) ([]models.WatchlistEntry, error)
}

// Searcher runs title searches and recalls the latest batch.
type Searcher interface {
	AddSearch(ctx context.Context, sessionID, query string) ([]models.Candidate, error)
	LatestSearch(ctx context.Context, sessionID string) ([]models.Candidate, error)
}

// Selector saves a candidate to the user's list.
type Selector interface {
	SelectCandidate(ctx context.Context, userID, candidateID int64) (*models.Movie, error)
}

// Unwatcher removes a movie from the user's list.
type Unwatcher interface {
	Unwatch(ctx context.Context, userID, movieID int64) error
}

// MovieRemover deletes a movie for everyone.
type MovieRemover interface {
	RemoveMovie(ctx context.Context, adminID, movieID int64) error
}

// HomeData is the payload of the home view
// swagger:model HomeData
type HomeData struct {
	// Display name of the current user
	Name string `json:"name"`

	// Saved movies with aligned service and link lists
	Movies []models.WatchlistEntry `json:"movies"`
}

// AddRequest is the search form
// swagger:model AddRequest
type AddRequest struct {
	// required: true
	// default: Inception
	Title string `json:"title" form:"title"`
}

// SelectRequest is the candidate pick form
// swagger:model SelectRequest
type SelectRequest struct {
	// Upstream candidate id
	// required: true
	// default: 27205
	Movie int64 `json:"movie" form:"movie"`
}

// NewHomeHandler lists the current user's movies.
// @Summary Watchlist
// @Tags watchlist
// @Produce json
// @Success 200 {object} handlers.ViewResponse "home view with handlers.HomeData"
// @Success 303 "Redirect to /login when anonymous"
// @Failure 500 {object} handlers.ViewResponse "Internal server error"
// @Router /home [get]
func NewHomeHandler(svc WatchlistLister, currentUser UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := currentUser(r.Context())
		if user == nil {
			redirect(w, r, "/login")
			return
		}

		movies, err := svc.ListForUser(r.Context(), user.ID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeView(w, http.StatusOK, ViewHome, "", HomeData{Name: user.Name, Movies: movies})
	}
}

// NewAddPageHandler returns the search form.
// @Summary Search form
// @Tags watchlist
// @Produce json
// @Success 200 {object} handlers.ViewResponse "add view"
// @Router /add [get]
func NewAddPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeView(w, http.StatusOK, ViewAdd, "", nil)
	}
}

// NewAddHandler searches the movie database and stashes the results.
// @Summary Search titles
// @Tags watchlist
// @Accept x-www-form-urlencoded,json
// @Produce json
// @Param title formData string true "Title to search"
// @Success 303 "Redirect to /select"
// @Failure 400 {object} handlers.ViewResponse "Missing title"
// @Failure 502 {object} handlers.ViewResponse "Movie database unavailable"
// @Router /add [post]
func NewAddHandler(svc Searcher, sessionID SessionIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddRequest
		if err := decodeRequest(r, &req); err != nil || strings.TrimSpace(req.Title) == "" {
			writeView(w, http.StatusBadRequest, ViewAdd, FlashTitleRequired, nil)
			return
		}

		if _, err := svc.AddSearch(r.Context(), sessionID(r.Context()), req.Title); err != nil {
			writeServiceError(w, err)
			return
		}

		redirect(w, r, "/select")
	}
}

// NewSelectPageHandler lists the candidates of the latest search.
// @Summary Candidate list
// @Tags watchlist
// @Produce json
// @Success 200 {object} handlers.ViewResponse "select view with []models.Candidate"
// @Success 303 "Redirect to /add when nothing was searched"
// @Router /select [get]
func NewSelectPageHandler(svc Searcher, sessionID SessionIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		batch, err := svc.LatestSearch(r.Context(), sessionID(r.Context()))
		if errors.Is(err, services.ErrNoSearchResults) {
			redirect(w, r, "/add")
			return
		}
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeView(w, http.StatusOK, ViewSelect, "", batch)
	}
}

// NewSelectHandler saves the picked candidate to the user's list.
// @Summary Save candidate
// @Tags watchlist
// @Accept x-www-form-urlencoded,json
// @Produce json
// @Param movie formData int true "Candidate id"
// @Success 303 "Redirect to /home"
// @Failure 400 {object} handlers.ViewResponse "No candidate picked"
// @Failure 502 {object} handlers.ViewResponse "Movie database unavailable"
// @Router /select [post]
func NewSelectHandler(svc Selector, currentUser UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := currentUser(r.Context())
		if user == nil {
			redirect(w, r, "/login")
			return
		}

		var req SelectRequest
		if err := decodeRequest(r, &req); err != nil || req.Movie <= 0 {
			writeView(w, http.StatusBadRequest, ViewSelect, FlashPickMovie, nil)
			return
		}

		if _, err := svc.SelectCandidate(r.Context(), user.ID, req.Movie); err != nil {
			writeServiceError(w, err)
			return
		}

		redirect(w, r, "/home")
	}
}

// NewDeleteHandler removes a movie from the current user's list.
// @Summary Remove from watchlist
// @Tags watchlist
// @Param id path int true "Movie id"
// @Success 303 "Redirect to /home"
// @Failure 404 {object} handlers.ViewResponse "Movie not found"
// @Router /delete/id={id} [post]
func NewDeleteHandler(svc Unwatcher, currentUser UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := currentUser(r.Context())
		if user == nil {
			redirect(w, r, "/login")
			return
		}

		movieID, ok := movieIDParam(r)
		if !ok {
			writeView(w, http.StatusNotFound, ViewError, FlashMovieNotFound, nil)
			return
		}

		if err := svc.Unwatch(r.Context(), user.ID, movieID); err != nil {
			writeServiceError(w, err)
			return
		}

		redirect(w, r, "/home")
	}
}

// NewCatalogDeleteHandler deletes a movie for every user.
// @Summary Delete from catalog
// @Description Admin only. Removes the movie row and every association to it.
// @Tags admin
// @Param id path int true "Movie id"
// @Success 303 "Redirect to /home"
// @Failure 403 "Not an admin"
// @Failure 404 {object} handlers.ViewResponse "Movie not found"
// @Router /catalog/delete/id={id} [post]
func NewCatalogDeleteHandler(svc MovieRemover, currentUser UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := currentUser(r.Context())
		if user == nil {
			redirect(w, r, "/login")
			return
		}

		movieID, ok := movieIDParam(r)
		if !ok {
			writeView(w, http.StatusNotFound, ViewError, FlashMovieNotFound, nil)
			return
		}

		if err := svc.RemoveMovie(r.Context(), user.ID, movieID); err != nil {
			writeServiceError(w, err)
			return
		}

		redirect(w, r, "/home")
	}
}
