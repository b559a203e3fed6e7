package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/sbilibin2017/gw-movie-watchlist/internal/logger"
	"github.com/sbilibin2017/gw-movie-watchlist/internal/models"
)

// TMDBFacade talks to The Movie Database v3 API: title search and per-title details.
type TMDBFacade struct {
	client   *http.Client
	baseURL  string
	imageURL string
	token    string
}

// NewTMDBFacade creates a facade. token is sent as a bearer token; a value
// that already carries the "Bearer " prefix is sent unchanged.
func NewTMDBFacade(client *http.Client, baseURL, imageURL, token string) *TMDBFacade {
	if !strings.HasPrefix(token, "Bearer ") && token != "" {
		token = "Bearer " + token
	}
	return &TMDBFacade{
		client:   client,
		baseURL:  strings.TrimRight(baseURL, "/"),
		imageURL: strings.TrimRight(imageURL, "/"),
		token:    token,
	}
}

type tmdbSearchResponse struct {
	Results []models.Candidate `json:"results"`
}

type tmdbCollection struct {
	PosterPath *string `json:"poster_path"`
}

type tmdbDetails struct {
	Title               string          `json:"title"`
	Overview            string          `json:"overview"`
	ReleaseDate         string          `json:"release_date"`
	PosterPath          *string         `json:"poster_path"`
	BackdropPath        *string         `json:"backdrop_path"`
	BelongsToCollection *tmdbCollection `json:"belongs_to_collection"`
}

// SearchTitles runs the raw query against /search/movie and returns the
// results as given.
func (f *TMDBFacade) SearchTitles(ctx context.Context, query string) ([]models.Candidate, error) {
	endpoint := f.baseURL + "/search/movie?" + url.Values{"query": {query}}.Encode()

	var resp tmdbSearchResponse
	if err := f.get(ctx, endpoint, &resp); err != nil {
		logger.Log.Errorw("title search failed", "query", query, "error", err)
		return nil, err
	}
	if resp.Results == nil {
		resp.Results = []models.Candidate{}
	}
	return resp.Results, nil
}

// FetchDetails loads one title and reduces it to what the catalog stores.
func (f *TMDBFacade) FetchDetails(ctx context.Context, id int64) (*models.MovieDetails, error) {
	endpoint := f.baseURL + "/movie/" + strconv.FormatInt(id, 10)

	var resp tmdbDetails
	if err := f.get(ctx, endpoint, &resp); err != nil {
		logger.Log.Errorw("movie details failed", "id", id, "error", err)
		return nil, err
	}
	if resp.Title == "" {
		return nil, fmt.Errorf("%w: movie %d has no title", ErrUpstreamUnavailable, id)
	}

	details := &models.MovieDetails{
		Title:    resp.Title,
		Overview: resp.Overview,
		Year:     releaseYear(resp.ReleaseDate),
		ImageURL: resolvePoster(f.imageURL, &resp),
	}
	if details.ImageURL == nil {
		logger.Log.Warnw("no poster image for movie", "id", id, "title", resp.Title)
	}
	return details, nil
}

// releaseYear reads the year from the first four characters of a date; 0 if absent.
func releaseYear(date string) int {
	if len(date) < 4 {
		return 0
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0
	}
	return year
}

func (f *TMDBFacade) get(ctx context.Context, endpoint string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: build request: %w", ErrUpstreamUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")
	if f.token != "" {
		req.Header.Set("Authorization", f.token)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: unexpected status code %d", ErrUpstreamUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: decode response: %w", ErrUpstreamUnavailable, err)
	}
	return nil
}
