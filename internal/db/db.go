// Package db opens the catalog/credential store named by DB_URI and creates
// its relations.
package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

// Dialect names the SQL flavour behind a connection.
type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

// Source is a parsed DB_URI.
type Source struct {
	Driver  string
	DSN     string
	Dialect Dialect
}

// ParseURI maps DB_URI onto a registered database/sql driver.
//
//	postgres://, postgresql://  -> pgx
//	libsql://                   -> libsql (remote, SQLite dialect)
//	sqlite:///relative.db       -> modernc sqlite, relative path
//	sqlite:////abs/path.db      -> modernc sqlite, absolute path
//	file:...                    -> modernc sqlite, DSN as given
func ParseURI(uri string) (Source, error) {
	switch {
	case strings.HasPrefix(uri, "postgres://"), strings.HasPrefix(uri, "postgresql://"):
		return Source{Driver: "pgx", DSN: uri, Dialect: Postgres}, nil
	case strings.HasPrefix(uri, "libsql://"):
		return Source{Driver: "libsql", DSN: uri, Dialect: SQLite}, nil
	case strings.HasPrefix(uri, "sqlite://"):
		path := strings.TrimPrefix(uri, "sqlite://")
		path = strings.TrimPrefix(path, "/")
		if path == "" {
			return Source{}, fmt.Errorf("sqlite uri %q has no path", uri)
		}
		return Source{Driver: "sqlite", DSN: sqliteDSN("file:" + path), Dialect: SQLite}, nil
	case strings.HasPrefix(uri, "file:"):
		return Source{Driver: "sqlite", DSN: sqliteDSN(uri), Dialect: SQLite}, nil
	default:
		return Source{}, fmt.Errorf("unsupported DB_URI scheme: %q", uri)
	}
}

func sqliteDSN(dsn string) string {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_txlock=immediate"
}

// Open connects, applies pool settings and pings with a timeout.
func Open(ctx context.Context, uri string, maxOpenConns, maxIdleConns int) (*sqlx.DB, Dialect, error) {
	src, err := ParseURI(uri)
	if err != nil {
		return nil, "", err
	}

	db, err := sqlx.Open(src.Driver, src.DSN)
	if err != nil {
		return nil, "", fmt.Errorf("open %s: %w", src.Driver, err)
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, "", fmt.Errorf("ping %s: %w", src.Driver, err)
	}

	return db, src.Dialect, nil
}

var schemas = map[Dialect][]string{
	Postgres: {
		`CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			email VARCHAR(250) NOT NULL UNIQUE,
			password_hash VARCHAR(250) NOT NULL,
			name VARCHAR(250) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS movies (
			id BIGSERIAL PRIMARY KEY,
			title TEXT NOT NULL UNIQUE,
			year INTEGER NOT NULL DEFAULT 0,
			description TEXT NOT NULL DEFAULT '',
			img_url TEXT,
			link TEXT NOT NULL DEFAULT '',
			streaming TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS user_movie (
			user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			movie_id BIGINT NOT NULL REFERENCES movies(id) ON DELETE CASCADE,
			PRIMARY KEY (user_id, movie_id)
		)`,
	},
	SQLite: {
		`CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			email VARCHAR(250) NOT NULL UNIQUE,
			password_hash VARCHAR(250) NOT NULL,
			name VARCHAR(250) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS movies (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL UNIQUE,
			year INTEGER NOT NULL DEFAULT 0,
			description TEXT NOT NULL DEFAULT '',
			img_url TEXT,
			link TEXT NOT NULL DEFAULT '',
			streaming TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS user_movie (
			user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			movie_id INTEGER NOT NULL REFERENCES movies(id) ON DELETE CASCADE,
			PRIMARY KEY (user_id, movie_id)
		)`,
	},
}

// Migrate creates the users, movies and user_movie relations if missing.
func Migrate(ctx context.Context, db *sqlx.DB, dialect Dialect) error {
	stmts, ok := schemas[dialect]
	if !ok {
		return fmt.Errorf("no schema for dialect %q", dialect)
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
