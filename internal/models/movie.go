package models

import "strings"

// Movie is a catalog row shared by every user that saved the title.
// Streaming and Links hold space-delimited, positionally aligned lists.
type Movie struct {
	ID          int64   `json:"id" db:"id"`
	Title       string  `json:"title" db:"title"`
	Year        int     `json:"year" db:"year"`
	Description string  `json:"description" db:"description"`
	ImageURL    *string `json:"img_url,omitempty" db:"img_url"`
	Links       string  `json:"-" db:"link"`
	Streaming   string  `json:"-" db:"streaming"`
}

// WatchlistEntry is a saved movie with its streaming services split back into
// aligned sequences.
type WatchlistEntry struct {
	Movie    Movie    `json:"movie"`
	Services []string `json:"services"`
	Links    []string `json:"links"`
}

// JoinList joins items with the storage delimiter.
func JoinList(items []string) string {
	return strings.Join(items, " ")
}

// SplitAligned splits stored service names and links back into sequences of
// equal length. Rows written with a trailing delimiter parse the same way.
func SplitAligned(streaming, links string) ([]string, []string) {
	services := strings.Fields(streaming)
	urls := strings.Fields(links)

	n := min(len(services), len(urls))
	return services[:n:n], urls[:n:n]
}
