package models

// Watchlist event types published to Kafka.
const (
	EventMovieAdded   = "movie_added"
	EventMovieRemoved = "movie_removed"
	EventMovieDeleted = "movie_deleted"
)

// WatchlistEvent describes a change to a user's list or to the catalog.
type WatchlistEvent struct {
	EventID   string `json:"event_id"`
	Type      string `json:"type"`
	UserID    int64  `json:"user_id"`
	MovieID   int64  `json:"movie_id"`
	Title     string `json:"title,omitempty"`
	Timestamp int64  `json:"timestamp"`
}
