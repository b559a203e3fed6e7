package repositories

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-movie-watchlist/internal/db"
)

func setupSQLite(t *testing.T) *sqlx.DB {
	t.Helper()

	ctx := context.Background()
	conn, dialect, err := db.Open(ctx, "sqlite:///"+filepath.Join(t.TempDir(), "test.db"), 4, 2)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(ctx, conn, dialect))

	t.Cleanup(func() { conn.Close() })
	return conn
}

func strPtr(s string) *string { return &s }
