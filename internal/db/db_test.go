package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseURI(t *testing.T) {
	tests := []struct {
		name        string
		uri         string
		wantDriver  string
		wantDialect Dialect
		wantDSN     string
		wantErr     bool
	}{
		{
			name:        "postgres",
			uri:         "postgres://u:p@localhost:5432/movies?sslmode=disable",
			wantDriver:  "pgx",
			wantDialect: Postgres,
			wantDSN:     "postgres://u:p@localhost:5432/movies?sslmode=disable",
		},
		{
			name:        "postgresql",
			uri:         "postgresql://localhost/movies",
			wantDriver:  "pgx",
			wantDialect: Postgres,
			wantDSN:     "postgresql://localhost/movies",
		},
		{
			name:        "libsql",
			uri:         "libsql://movies.turso.io?authToken=abc",
			wantDriver:  "libsql",
			wantDialect: SQLite,
			wantDSN:     "libsql://movies.turso.io?authToken=abc",
		},
		{
			name:        "sqlite relative",
			uri:         "sqlite:///movies_personal_project.db",
			wantDriver:  "sqlite",
			wantDialect: SQLite,
			wantDSN:     "file:movies_personal_project.db?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_txlock=immediate",
		},
		{
			name:        "sqlite absolute",
			uri:         "sqlite:////var/lib/movies.db",
			wantDriver:  "sqlite",
			wantDialect: SQLite,
			wantDSN:     "file:/var/lib/movies.db?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_txlock=immediate",
		},
		{
			name:        "file with query",
			uri:         "file:movies.db?cache=shared",
			wantDriver:  "sqlite",
			wantDialect: SQLite,
			wantDSN:     "file:movies.db?cache=shared&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_txlock=immediate",
		},
		{name: "sqlite without path", uri: "sqlite://", wantErr: true},
		{name: "unknown scheme", uri: "mongodb://localhost", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := ParseURI(tt.uri)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantDriver, src.Driver)
			assert.Equal(t, tt.wantDialect, src.Dialect)
			assert.Equal(t, tt.wantDSN, src.DSN)
		})
	}
}

func TestOpenAndMigrate_SQLite(t *testing.T) {
	ctx := context.Background()
	uri := "sqlite:///" + filepath.Join(t.TempDir(), "movies.db")

	db, dialect, err := Open(ctx, uri, 4, 2)
	require.NoError(t, err)
	defer db.Close()
	assert.Equal(t, SQLite, dialect)

	require.NoError(t, Migrate(ctx, db, dialect))
	// idempotent
	require.NoError(t, Migrate(ctx, db, dialect))

	var tables []string
	err = db.SelectContext(ctx, &tables,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name IN ('users', 'movies', 'user_movie') ORDER BY name`)
	require.NoError(t, err)
	assert.Equal(t, []string{"movies", "user_movie", "users"}, tables)
}

func TestMigrate_UnknownDialect(t *testing.T) {
	err := Migrate(context.Background(), nil, Dialect("oracle"))
	assert.Error(t, err)
}
