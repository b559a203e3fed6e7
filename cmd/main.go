package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"golang.org/x/time/rate"

	_ "github.com/sbilibin2017/gw-movie-watchlist/docs"
	"github.com/sbilibin2017/gw-movie-watchlist/internal/db"
	"github.com/sbilibin2017/gw-movie-watchlist/internal/facades"
	"github.com/sbilibin2017/gw-movie-watchlist/internal/jwt"
	"github.com/sbilibin2017/gw-movie-watchlist/internal/logger"
	"github.com/sbilibin2017/gw-movie-watchlist/internal/middlewares"
	"github.com/sbilibin2017/gw-movie-watchlist/internal/repositories"
	"github.com/sbilibin2017/gw-movie-watchlist/internal/router"
	"github.com/sbilibin2017/gw-movie-watchlist/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-movie-watchlist API
// @version 1.0.0
// @description Personal movie watchlist with streaming availability
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		movieAPIKey, streamingAPIKey,
		tmdbURL, tmdbImageURL, streamingURL, streamingCountry, upstreamTimeoutSecond,
		secretKey, sessionTTLSecond,
		dbURI, dbMaxOpenConns, dbMaxIdleConns,
		redisAddr, redisPassword, redisDB,
		kafkaBrokers, kafkaTopic,
		adminEmails, authRatePerSecond, authRateBurst,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		movieAPIKey, streamingAPIKey,
		tmdbURL, tmdbImageURL, streamingURL, streamingCountry, upstreamTimeoutSecond,
		secretKey, sessionTTLSecond,
		dbURI, dbMaxOpenConns, dbMaxIdleConns,
		redisAddr, redisPassword, redisDB,
		kafkaBrokers, kafkaTopic,
		adminEmails, authRatePerSecond, authRateBurst,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application, upstream API, session, database, Redis, Kafka and admin settings.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	movieAPIKey, streamingAPIKey string,
	tmdbURL, tmdbImageURL, streamingURL, streamingCountry string, upstreamTimeoutSecond int,
	secretKey string, sessionTTLSecond int,
	dbURI string, dbMaxOpenConns, dbMaxIdleConns int,
	redisAddr, redisPassword string, redisDB int,
	kafkaBrokers []string, kafkaTopic string,
	adminEmails []string, authRatePerSecond float64, authRateBurst int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	splitList := func(s string) []string {
		var out []string
		for _, item := range strings.Split(s, ",") {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
		return out
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// Upstream APIs
	movieAPIKey = getEnv("API_MOV_KEY", "")
	streamingAPIKey = getEnv("API_STR_KEY", "")
	tmdbURL = getEnv("TMDB_URL", "https://api.themoviedb.org/3")
	tmdbImageURL = getEnv("TMDB_IMAGE_URL", "https://image.tmdb.org/t/p/w500")
	streamingURL = getEnv("STREAMING_URL", "https://streaming-availability.p.rapidapi.com")
	streamingCountry = getEnv("STREAMING_COUNTRY", "us")
	if upstreamTimeoutSecond, err = strconv.Atoi(getEnv("UPSTREAM_TIMEOUT_SECOND", "10")); err != nil {
		return
	}

	// Session config
	secretKey = getEnv("SECRET_KEY", "dev-secret-key")
	if sessionTTLSecond, err = strconv.Atoi(getEnv("SESSION_TTL_SECOND", "86400")); err != nil {
		return
	}

	// Database config
	dbURI = getEnv("DB_URI", "sqlite:///movies_personal_project.db")
	if dbMaxOpenConns, err = strconv.Atoi(getEnv("DB_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if dbMaxIdleConns, err = strconv.Atoi(getEnv("DB_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisAddr = getEnv("REDIS_ADDR", "")
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}

	// Kafka config
	kafkaBrokers = splitList(getEnv("KAFKA_BROKERS", ""))
	kafkaTopic = getEnv("KAFKA_TOPIC", "watchlist-events")

	// Admin and rate limiting
	adminEmails = splitList(getEnv("ADMIN_EMAILS", ""))
	if authRatePerSecond, err = strconv.ParseFloat(getEnv("AUTH_RATE_PER_SECOND", "5"), 64); err != nil {
		return
	}
	if authRateBurst, err = strconv.Atoi(getEnv("AUTH_RATE_BURST", "10")); err != nil {
		return
	}

	return
}

// sessionStore is what both the Redis and the in-memory session repositories provide.
type sessionStore interface {
	services.SessionStore
	services.SearchStash
}

// run initializes the logger, database, session store, Kafka writer and HTTP server.
// It sets up routes and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	movieAPIKey, streamingAPIKey string,
	tmdbURL, tmdbImageURL, streamingURL, streamingCountry string, upstreamTimeoutSecond int,
	secretKey string, sessionTTLSecond int,
	dbURI string, dbMaxOpenConns, dbMaxIdleConns int,
	redisAddr, redisPassword string, redisDB int,
	kafkaBrokers []string, kafkaTopic string,
	adminEmails []string, authRatePerSecond float64, authRateBurst int,
) error {
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Database
	conn, dialect, err := db.Open(ctx, dbURI, dbMaxOpenConns, dbMaxIdleConns)
	if err != nil {
		return fmt.Errorf("database connection error: %w", err)
	}
	defer conn.Close()
	logger.Log.Infow("database connected", "dialect", dialect)

	if err := db.Migrate(ctx, conn, dialect); err != nil {
		return fmt.Errorf("database migration error: %w", err)
	}

	sessionTTL := time.Duration(sessionTTLSecond) * time.Second

	// Session store: Redis when configured, process memory otherwise
	var sessions sessionStore
	if redisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     redisAddr,
			Password: redisPassword,
			DB:       redisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis connection error: %w", err)
		}
		defer rdb.Close()
		sessions = repositories.NewSessionRedisRepository(rdb, sessionTTL)
		logger.Log.Infow("using redis session store", "addr", redisAddr)
	} else {
		sessions = repositories.NewSessionMemoryRepository(sessionTTL)
		logger.Log.Warn("REDIS_ADDR not set, sessions are kept in process memory")
	}

	// Kafka events
	var events services.KafkaWriter
	if len(kafkaBrokers) > 0 {
		writer := newKafkaWriter(kafkaBrokers, kafkaTopic)
		defer writer.Close()
		events = writer
		logger.Log.Infow("publishing watchlist events", "brokers", kafkaBrokers, "topic", kafkaTopic)
	}

	// Repositories
	userReadRepo := repositories.NewUserReadRepository(conn, middlewares.GetTxFromContext)
	userWriteRepo := repositories.NewUserWriteRepository(conn, middlewares.GetTxFromContext)
	movieReadRepo := repositories.NewMovieReadRepository(conn, middlewares.GetTxFromContext)
	movieWriteRepo := repositories.NewMovieWriteRepository(conn, middlewares.GetTxFromContext)

	// Upstream facades
	httpClient := &http.Client{Timeout: time.Duration(upstreamTimeoutSecond) * time.Second}
	tmdbFacade := facades.NewTMDBFacade(httpClient, tmdbURL, tmdbImageURL, movieAPIKey)
	streamingFacade := facades.NewStreamingFacade(httpClient, streamingURL, streamingAPIKey, streamingCountry)

	tokens := jwt.New(
		jwt.WithSecretKey(secretKey),
		jwt.WithExpiration(sessionTTL),
	)

	// Services
	authService := services.NewAuthService(userReadRepo, userWriteRepo)
	sessionService := services.NewSessionService(sessions, userReadRepo, tokens)
	watchlistService := services.NewWatchlistService(
		tmdbFacade, streamingFacade,
		movieReadRepo, movieWriteRepo,
		sessions, events,
	)

	handler := router.New(
		conn, tokens,
		authService, sessionService, watchlistService,
		middlewares.NewClientLimiter(rate.Limit(authRatePerSecond), authRateBurst),
		adminEmails,
		fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort),
	)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: handler,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newKafkaWriter keys messages by movie id. Each event is flushed on its own
// instead of waiting out the default one-second batch window.
func newKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		BatchSize:              1,
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}
}
