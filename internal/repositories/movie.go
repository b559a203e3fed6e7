package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-movie-watchlist/internal/models"
)

const movieColumns = `m.id, m.title, m.year, m.description, m.img_url, m.link, m.streaming`

// MovieReadRepository reads the catalog and user lists.
type MovieReadRepository struct {
	db    *sqlx.DB
	getTx TxGetter
}

func NewMovieReadRepository(db *sqlx.DB, getTx TxGetter) *MovieReadRepository {
	return &MovieReadRepository{db: db, getTx: getTx}
}

// GetByID returns nil, nil when the id is unknown.
func (r *MovieReadRepository) GetByID(ctx context.Context, id int64) (*models.Movie, error) {
	const query = `SELECT ` + movieColumns + ` FROM movies m WHERE m.id = ?`
	return r.getOne(ctx, query, id)
}

// GetByTitle matches the title exactly. Returns nil, nil when absent.
func (r *MovieReadRepository) GetByTitle(ctx context.Context, title string) (*models.Movie, error) {
	const query = `SELECT ` + movieColumns + ` FROM movies m WHERE m.title = ?`
	return r.getOne(ctx, query, title)
}

func (r *MovieReadRepository) getOne(ctx context.Context, query string, arg any) (*models.Movie, error) {
	var movie models.Movie
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.getTx), &movie, r.db.Rebind(query), arg)
	logQuery(query, []any{arg}, movie.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

// ListByUser returns the movies associated with userID in insertion order.
func (r *MovieReadRepository) ListByUser(ctx context.Context, userID int64) ([]models.Movie, error) {
	const query = `
		SELECT ` + movieColumns + `
		FROM movies m
		JOIN user_movie um ON um.movie_id = m.id
		WHERE um.user_id = ?
		ORDER BY m.id
	`

	movies := []models.Movie{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.getTx), &movies, r.db.Rebind(query), userID)
	logQuery(query, []any{userID}, len(movies), err)
	if err != nil {
		return nil, err
	}
	return movies, nil
}

// MovieWriteRepository mutates the catalog and the user_movie association.
type MovieWriteRepository struct {
	db    *sqlx.DB
	getTx TxGetter
}

func NewMovieWriteRepository(db *sqlx.DB, getTx TxGetter) *MovieWriteRepository {
	return &MovieWriteRepository{db: db, getTx: getTx}
}

// Create inserts a movie and returns its id. A row with the same title,
// including one inserted concurrently, yields ErrConflict.
func (r *MovieWriteRepository) Create(ctx context.Context, movie *models.Movie) (int64, error) {
	const query = `
		INSERT INTO movies (title, year, description, img_url, link, streaming)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (title) DO NOTHING
		RETURNING id
	`
	args := []any{movie.Title, movie.Year, movie.Description, movie.ImageURL, movie.Links, movie.Streaming}

	var id int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.getTx), &id, r.db.Rebind(query), args...)
	logQuery(query, args, id, err)

	switch {
	case errors.Is(err, sql.ErrNoRows), isUniqueViolation(err):
		return 0, ErrConflict
	case err != nil:
		return 0, err
	}
	return id, nil
}

// Associate links a user to a movie. It reports false when the link already existed.
func (r *MovieWriteRepository) Associate(ctx context.Context, userID, movieID int64) (bool, error) {
	const query = `
		INSERT INTO user_movie (user_id, movie_id)
		VALUES (?, ?)
		ON CONFLICT (user_id, movie_id) DO NOTHING
	`
	return r.exec(ctx, query, userID, movieID)
}

// Dissociate unlinks a user from a movie. ErrNotFound if there was no link.
func (r *MovieWriteRepository) Dissociate(ctx context.Context, userID, movieID int64) error {
	const query = `DELETE FROM user_movie WHERE user_id = ? AND movie_id = ?`
	removed, err := r.exec(ctx, query, userID, movieID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrNotFound
	}
	return nil
}

// DeleteIfOrphan removes the movie only when no user references it.
func (r *MovieWriteRepository) DeleteIfOrphan(ctx context.Context, movieID int64) (bool, error) {
	const query = `
		DELETE FROM movies
		WHERE id = ?
		  AND NOT EXISTS (SELECT 1 FROM user_movie WHERE movie_id = ?)
	`
	return r.exec(ctx, query, movieID, movieID)
}

// Delete removes the movie and every association to it. ErrNotFound if the
// id does not exist.
func (r *MovieWriteRepository) Delete(ctx context.Context, movieID int64) error {
	if _, err := r.exec(ctx, `DELETE FROM user_movie WHERE movie_id = ?`, movieID); err != nil {
		return err
	}
	deleted, err := r.exec(ctx, `DELETE FROM movies WHERE id = ?`, movieID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

// exec runs a statement and reports whether it touched any row.
func (r *MovieWriteRepository) exec(ctx context.Context, query string, args ...any) (bool, error) {
	res, err := executor(ctx, r.db, r.getTx).ExecContext(ctx, r.db.Rebind(query), args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
