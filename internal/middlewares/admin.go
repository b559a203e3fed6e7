package middlewares

import (
	"net/http"
	"strings"

	"github.com/sbilibin2017/gw-movie-watchlist/internal/logger"
)

// AdminMiddleware lets through only users whose email is in emails.
// It must run after AuthMiddleware.
func AdminMiddleware(emails []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(emails))
	for _, e := range emails {
		if e = strings.ToLower(strings.TrimSpace(e)); e != "" {
			allowed[e] = struct{}{}
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := GetUserFromContext(r.Context())
			if user == nil {
				http.Redirect(w, r, LoginPath, http.StatusSeeOther)
				return
			}

			if _, ok := allowed[strings.ToLower(user.Email)]; !ok {
				logger.Log.Warnw("admin route denied", "user_id", user.ID, "uri", r.RequestURI)
				w.WriteHeader(http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
