package repositories

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/shaikhmohammadtalha/mern-wanderlist/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestUserReadRepository_GetByEmail_Mock(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)
	ctx := context.Background()
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "first_name", "last_name", "email", "password_hash", "created_at"}).
			AddRow("64b7f0c2a1b2c3d4e5f60718", "Ada", "Lovelace", "ada@example.com", "hash", created)
		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
			WithArgs("ada@example.com").
			WillReturnRows(rows)

		user, err := repo.GetByEmail(ctx, "ada@example.com")
		assert.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "64b7f0c2a1b2c3d4e5f60718", user.UserID)
		assert.Equal(t, "hash", user.PasswordHash)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
			WithArgs("nobody@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		user, err := repo.GetByEmail(ctx, "nobody@example.com")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Save_Mock(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db)
	ctx := context.Background()

	user := &models.UserDB{
		UserID:       "64b7f0c2a1b2c3d4e5f60718",
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        "ada@example.com",
		PasswordHash: "hash",
		CreatedAt:    time.Now().UTC(),
	}

	t.Run("inserted", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
			WithArgs(user.UserID, "Ada", "Lovelace", "ada@example.com", "hash", user.CreatedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Save(ctx, user))
	})

	t.Run("duplicate email", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

		assert.ErrorIs(t, repo.Save(ctx, user), ErrUniqueViolation)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositories_Postgres(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	alice := &models.UserDB{
		UserID:       models.NewObjectID(),
		FirstName:    "Alice",
		LastName:     "Smith",
		Email:        "alice@example.com",
		PasswordHash: "hash1",
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, writeRepo.Save(ctx, alice))

	t.Run("ByEmail", func(t *testing.T) {
		user, err := readRepo.GetByEmail(ctx, "alice@example.com")
		assert.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, alice.UserID, user.UserID)
		assert.Equal(t, "Alice", user.FirstName)
		assert.Equal(t, "hash1", user.PasswordHash)
	})

	t.Run("EmailIsCaseSensitive", func(t *testing.T) {
		user, err := readRepo.GetByEmail(ctx, "ALICE@example.com")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		dup := *alice
		dup.UserID = models.NewObjectID()
		assert.ErrorIs(t, writeRepo.Save(ctx, &dup), ErrUniqueViolation)
	})

	t.Run("NotFound", func(t *testing.T) {
		user, err := readRepo.GetByEmail(ctx, "nonexistent@example.com")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}
