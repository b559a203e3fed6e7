package facades

import "strings"

// posterSource extracts an image path from a details record, or "" if the
// record does not carry one.
type posterSource func(d *tmdbDetails) string

// posterSources are tried in order; the first non-empty path wins.
var posterSources = []posterSource{
	func(d *tmdbDetails) string { return deref(d.PosterPath) },
	func(d *tmdbDetails) string { return deref(d.BackdropPath) },
	func(d *tmdbDetails) string {
		if d.BelongsToCollection == nil {
			return ""
		}
		return deref(d.BelongsToCollection.PosterPath)
	},
}

// resolvePoster builds the image URL from the first available path. nil means
// no source had one, which is a valid outcome.
func resolvePoster(imageBase string, d *tmdbDetails) *string {
	for _, source := range posterSources {
		if path := source(d); path != "" {
			u := imageBase + "/" + strings.TrimLeft(path, "/")
			return &u
		}
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
