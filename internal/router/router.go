package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sbilibin2017/gw-movie-watchlist/internal/handlers"
	"github.com/sbilibin2017/gw-movie-watchlist/internal/jwt"
	"github.com/sbilibin2017/gw-movie-watchlist/internal/middlewares"
	"github.com/sbilibin2017/gw-movie-watchlist/internal/services"
)

// New builds the route table. Routes that only touch the database run inside a
// request-scoped transaction. POST /select calls the upstream APIs and writes
// with single statements instead, so no transaction stays open across them.
func New(
	db *sqlx.DB,
	tokens *jwt.JWT,
	auth *services.AuthService,
	sessions *services.SessionService,
	watchlist *services.WatchlistService,
	authLimiter *middlewares.ClientLimiter,
	adminEmails []string,
	swaggerURL string,
) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	tx := middlewares.TxMiddleware(db)
	currentUser := handlers.UserGetter(middlewares.GetUserFromContext)
	sessionID := handlers.SessionIDGetter(middlewares.GetSessionIDFromContext)

	// Public routes
	r.Get("/", handlers.NewIndexHandler())
	r.Get("/login", handlers.NewLoginPageHandler())
	r.Get("/register", handlers.NewRegisterPageHandler())
	r.Get("/logout", handlers.NewLogoutHandler(sessions, tokens))

	r.Group(func(r chi.Router) {
		r.Use(middlewares.RateLimitMiddleware(authLimiter))
		r.Use(tx)
		r.Post("/login", handlers.NewLoginHandler(auth, sessions, tokens))
		r.Post("/register", handlers.NewRegisterHandler(auth, sessions, tokens))
	})

	// Session-protected routes
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokens, sessions))

		r.Get("/home", handlers.NewHomeHandler(watchlist, currentUser))
		r.Get("/add", handlers.NewAddPageHandler())
		r.Post("/add", handlers.NewAddHandler(watchlist, sessionID))
		r.Get("/select", handlers.NewSelectPageHandler(watchlist, sessionID))
		r.Post("/select", handlers.NewSelectHandler(watchlist, currentUser))

		r.Group(func(r chi.Router) {
			r.Use(tx)

			unwatch := handlers.NewDeleteHandler(watchlist, currentUser)
			r.Get("/delete/id={id}", unwatch)
			r.Post("/delete/id={id}", unwatch)

			r.Group(func(r chi.Router) {
				r.Use(middlewares.AdminMiddleware(adminEmails))

				remove := handlers.NewCatalogDeleteHandler(watchlist, currentUser)
				r.Get("/catalog/delete/id={id}", remove)
				r.Post("/catalog/delete/id={id}", remove)
			})
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(swaggerURL)))

	return r
}
