package models

// Candidate is one title-search result, passed through as returned upstream.
type Candidate struct {
	ID               int64   `json:"id"`
	Title            string  `json:"title"`
	OriginalTitle    string  `json:"original_title,omitempty"`
	Overview         string  `json:"overview,omitempty"`
	ReleaseDate      string  `json:"release_date,omitempty"`
	PosterPath       *string `json:"poster_path,omitempty"`
	BackdropPath     *string `json:"backdrop_path,omitempty"`
	OriginalLanguage string  `json:"original_language,omitempty"`
	Popularity       float64 `json:"popularity,omitempty"`
	VoteAverage      float64 `json:"vote_average,omitempty"`
	VoteCount        int     `json:"vote_count,omitempty"`
}

// MovieDetails is the subset of the upstream detail record kept in the catalog.
type MovieDetails struct {
	Title    string
	Overview string
	Year     int
	ImageURL *string
}

// StreamingInfo lists the services carrying a title and a deep link for each.
type StreamingInfo struct {
	Services []string
	Links    []string
}
