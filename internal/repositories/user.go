package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-movie-watchlist/internal/models"
)

// UserReadRepository looks users up in the credential store.
type UserReadRepository struct {
	db    *sqlx.DB
	getTx TxGetter
}

func NewUserReadRepository(db *sqlx.DB, getTx TxGetter) *UserReadRepository {
	return &UserReadRepository{db: db, getTx: getTx}
}

// GetByEmail returns nil, nil when no user has exactly this email.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	const query = `SELECT id, email, password_hash, name FROM users WHERE email = ? LIMIT 1`
	return r.getOne(ctx, query, email)
}

// GetByID returns nil, nil when the id is unknown.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	const query = `SELECT id, email, password_hash, name FROM users WHERE id = ? LIMIT 1`
	return r.getOne(ctx, query, id)
}

func (r *UserReadRepository) getOne(ctx context.Context, query string, arg any) (*models.User, error) {
	var user models.User
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.getTx), &user, r.db.Rebind(query), arg)
	logQuery(query, []any{arg}, user.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UserWriteRepository inserts users.
type UserWriteRepository struct {
	db    *sqlx.DB
	getTx TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, getTx TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, getTx: getTx}
}

// Create inserts a user and returns it with its id. Email uniqueness is
// enforced by the store: an existing email yields ErrConflict.
func (r *UserWriteRepository) Create(ctx context.Context, email, passwordHash, name string) (*models.User, error) {
	const query = `
		INSERT INTO users (email, password_hash, name)
		VALUES (?, ?, ?)
		ON CONFLICT (email) DO NOTHING
		RETURNING id
	`

	var id int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.getTx), &id, r.db.Rebind(query), email, passwordHash, name)
	// the hash stays out of the log
	logQuery(query, []any{email, "***", name}, id, err)

	switch {
	case errors.Is(err, sql.ErrNoRows), isUniqueViolation(err):
		return nil, ErrConflict
	case err != nil:
		return nil, err
	}

	return &models.User{ID: id, Email: email, PasswordHash: passwordHash, Name: name}, nil
}
