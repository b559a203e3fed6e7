package services

//go:generate mockgen -source=watchlist.go -destination=watchlist_mock.go -package=services

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-movie-watchlist/internal/facades"
	"github.com/sbilibin2017/gw-movie-watchlist/internal/logger"
	"github.com/sbilibin2017/gw-movie-watchlist/internal/models"
	"github.com/sbilibin2017/gw-movie-watchlist/internal/repositories"
)

var (
	ErrNotFound            = errors.New("movie not found")
	ErrNoSearchResults     = errors.New("no search results stashed")
	ErrUpstreamUnavailable = facades.ErrUpstreamUnavailable
)

// MovieSearcher queries the title-search upstream.
type MovieSearcher interface {
	SearchTitles(ctx context.Context, query string) ([]models.Candidate, error)
	FetchDetails(ctx context.Context, id int64) (*models.MovieDetails, error)
}

// StreamingReader looks up where a title is streaming. It never fails.
type StreamingReader interface {
	FetchStreamingInfo(ctx context.Context, title string) models.StreamingInfo
}

// MovieReader reads the catalog.
type MovieReader interface {
	GetByID(ctx context.Context, id int64) (*models.Movie, error)
	GetByTitle(ctx context.Context, title string) (*models.Movie, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Movie, error)
}

// MovieWriter mutates the catalog and user associations.
type MovieWriter interface {
	Create(ctx context.Context, movie *models.Movie) (int64, error)
	Associate(ctx context.Context, userID, movieID int64) (bool, error)
	Dissociate(ctx context.Context, userID, movieID int64) error
	DeleteIfOrphan(ctx context.Context, movieID int64) (bool, error)
	Delete(ctx context.Context, movieID int64) error
}

// SearchStash keeps the newest candidate batch per session.
type SearchStash interface {
	SaveSearch(ctx context.Context, sessionID string, batch []models.Candidate) error
	GetSearch(ctx context.Context, sessionID string) ([]models.Candidate, error)
}

// KafkaWriter publishes watchlist events.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// WatchlistService drives search, selection and removal of saved movies.
type WatchlistService struct {
	searcher  MovieSearcher
	streaming StreamingReader
	reader    MovieReader
	writer    MovieWriter
	stash     SearchStash
	kafka     KafkaWriter
}

// NewWatchlistService creates a new WatchlistService. kafkaWriter may be nil.
func NewWatchlistService(
	searcher MovieSearcher,
	streaming StreamingReader,
	reader MovieReader,
	writer MovieWriter,
	stash SearchStash,
	kafkaWriter KafkaWriter,
) *WatchlistService {
	return &WatchlistService{
		searcher:  searcher,
		streaming: streaming,
		reader:    reader,
		writer:    writer,
		stash:     stash,
		kafka:     kafkaWriter,
	}
}

// AddSearch runs a title search and stashes the batch under the session.
func (s *WatchlistService) AddSearch(ctx context.Context, sessionID, query string) ([]models.Candidate, error) {
	batch, err := s.searcher.SearchTitles(ctx, query)
	if err != nil {
		logger.Log.Errorw("title search failed", "query", query, "error", err)
		return nil, err
	}

	if err := s.stash.SaveSearch(ctx, sessionID, batch); err != nil {
		logger.Log.Errorw("failed to stash search", "session_id", sessionID, "error", err)
		return nil, err
	}

	return batch, nil
}

// LatestSearch returns the session's newest batch or ErrNoSearchResults.
func (s *WatchlistService) LatestSearch(ctx context.Context, sessionID string) ([]models.Candidate, error) {
	batch, err := s.stash.GetSearch(ctx, sessionID)
	if err != nil {
		logger.Log.Errorw("failed to read stashed search", "session_id", sessionID, "error", err)
		return nil, err
	}
	if batch == nil {
		return nil, ErrNoSearchResults
	}
	return batch, nil
}

// SelectCandidate saves the candidate to the catalog if its title is new and
// associates it with the user. Selecting the same title twice is a no-op.
func (s *WatchlistService) SelectCandidate(ctx context.Context, userID, candidateID int64) (*models.Movie, error) {
	details, err := s.searcher.FetchDetails(ctx, candidateID)
	if err != nil {
		logger.Log.Errorw("detail fetch failed", "candidate_id", candidateID, "error", err)
		return nil, err
	}

	movie, err := s.reader.GetByTitle(ctx, details.Title)
	if err != nil {
		return nil, err
	}

	if movie == nil {
		movie, err = s.createMovie(ctx, details)
		if err != nil {
			return nil, err
		}
	}

	added, err := s.writer.Associate(ctx, userID, movie.ID)
	if err != nil {
		logger.Log.Errorw("failed to associate movie", "user_id", userID, "movie_id", movie.ID, "error", err)
		return nil, err
	}

	if added {
		s.publishEvent(ctx, models.EventMovieAdded, userID, movie)
	}

	return movie, nil
}

func (s *WatchlistService) createMovie(ctx context.Context, details *models.MovieDetails) (*models.Movie, error) {
	info := s.streaming.FetchStreamingInfo(ctx, details.Title)

	movie := &models.Movie{
		Title:       details.Title,
		Year:        details.Year,
		Description: details.Overview,
		ImageURL:    details.ImageURL,
		Streaming:   models.JoinList(info.Services),
		Links:       models.JoinList(info.Links),
	}

	id, err := s.writer.Create(ctx, movie)
	if errors.Is(err, repositories.ErrConflict) {
		// another request stored the title first
		existing, err := s.reader.GetByTitle(ctx, details.Title)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, ErrNotFound
		}
		return existing, nil
	}
	if err != nil {
		logger.Log.Errorw("failed to create movie", "title", details.Title, "error", err)
		return nil, err
	}

	movie.ID = id
	return movie, nil
}

// ListForUser returns the user's saved movies with aligned service and link lists.
func (s *WatchlistService) ListForUser(ctx context.Context, userID int64) ([]models.WatchlistEntry, error) {
	movies, err := s.reader.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list movies", "user_id", userID, "error", err)
		return nil, err
	}

	entries := make([]models.WatchlistEntry, 0, len(movies))
	for _, m := range movies {
		services, links := models.SplitAligned(m.Streaming, m.Links)
		entries = append(entries, models.WatchlistEntry{
			Movie:    m,
			Services: services,
			Links:    links,
		})
	}
	return entries, nil
}

// Unwatch removes the movie from the user's list and drops the catalog row
// once nobody references it.
func (s *WatchlistService) Unwatch(ctx context.Context, userID, movieID int64) error {
	movie, err := s.reader.GetByID(ctx, movieID)
	if err != nil {
		return err
	}
	if movie == nil {
		return ErrNotFound
	}

	if err := s.writer.Dissociate(ctx, userID, movieID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrNotFound
		}
		logger.Log.Errorw("failed to dissociate movie", "user_id", userID, "movie_id", movieID, "error", err)
		return err
	}

	deleted, err := s.writer.DeleteIfOrphan(ctx, movieID)
	if err != nil {
		logger.Log.Errorw("failed to drop orphan movie", "movie_id", movieID, "error", err)
		return err
	}

	s.publishEvent(ctx, models.EventMovieRemoved, userID, movie)
	if deleted {
		logger.Log.Infow("orphan movie deleted", "movie_id", movieID)
	}
	return nil
}

// RemoveMovie deletes the movie for every user.
func (s *WatchlistService) RemoveMovie(ctx context.Context, adminID, movieID int64) error {
	movie, err := s.reader.GetByID(ctx, movieID)
	if err != nil {
		return err
	}
	if movie == nil {
		return ErrNotFound
	}

	if err := s.writer.Delete(ctx, movieID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrNotFound
		}
		logger.Log.Errorw("failed to delete movie", "movie_id", movieID, "error", err)
		return err
	}

	s.publishEvent(ctx, models.EventMovieDeleted, adminID, movie)
	return nil
}

func (s *WatchlistService) publishEvent(ctx context.Context, eventType string, userID int64, movie *models.Movie) {
	if s.kafka == nil {
		return
	}

	event := models.WatchlistEvent{
		EventID:   uuid.NewString(),
		Type:      eventType,
		UserID:    userID,
		MovieID:   movie.ID,
		Title:     movie.Title,
		Timestamp: time.Now().Unix(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		logger.Log.Warnw("failed to marshal event", "type", eventType, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(movie.ID, 10)),
		Value: payload,
	}
	if err := s.kafka.WriteMessages(ctx, msg); err != nil {
		logger.Log.Warnw("failed to publish event", "type", eventType, "movie_id", movie.ID, "error", err)
	}
}
