package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/shaikhmohammadtalha/mern-wanderlist/internal/models"
)

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail returns the user registered with email, or nil when there is none.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT id, first_name, last_name, email, password_hash, created_at
		FROM users
		WHERE email = $1
		LIMIT 1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, email)

	logQuery(query, []any{email}, user.UserID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user. A duplicate email yields ErrUniqueViolation.
func (r *UserWriteRepository) Save(ctx context.Context, user *models.UserDB) error {
	const query = `
		INSERT INTO users (id, first_name, last_name, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	res, err := r.db.ExecContext(ctx, query,
		user.UserID, user.FirstName, user.LastName, user.Email, user.PasswordHash, user.CreatedAt)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// the hash stays out of the log
	logQuery(query, []any{user.UserID, user.FirstName, user.LastName, user.Email, user.CreatedAt}, rowsAffected, err)

	return mapPgError(err)
}
