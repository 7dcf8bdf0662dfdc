package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shaikhmohammadtalha/mern-wanderlist/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testUserID  = "64b7f0c2a1b2c3d4e5f60718"
	testOtherID = "64b7f0c2a1b2c3d4e5f60719"
	testDestID  = "64b7f0c2a1b2c3d4e5f6071a"
)

var destinationRowColumns = []string{
	"id", "user_id", "name", "lat", "lng", "notes", "tags", "category", "visited", "created_at", "edited_at",
}

func TestDestinationReadRepository_ListByUserID_Mock(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDestinationReadRepository(db)
	ctx := context.Background()
	created := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)

	t.Run("rows", func(t *testing.T) {
		rows := sqlmock.NewRows(destinationRowColumns).
			AddRow(testDestID, testUserID, "Kyoto", 35.0116, 135.7681, "temples", []byte(`["asia","food"]`), "Cultural", false, created, nil).
			AddRow(testOtherID, testUserID, "Oslo", 59.9139, 10.7522, nil, []byte(`[]`), "None", true, created, created)
		mock.ExpectQuery(regexp.QuoteMeta("FROM destinations WHERE user_id = $1 ORDER BY created_at, id")).
			WithArgs(testUserID).
			WillReturnRows(rows)

		list, err := repo.ListByUserID(ctx, testUserID)
		require.NoError(t, err)
		require.Len(t, list, 2)

		assert.Equal(t, "Kyoto", list[0].Name)
		assert.Equal(t, 35.0116, list[0].Lat)
		assert.Equal(t, 135.7681, list[0].Lng)
		require.NotNil(t, list[0].Notes)
		assert.Equal(t, "temples", *list[0].Notes)
		assert.Equal(t, models.Tags{"asia", "food"}, list[0].Tags)
		assert.Equal(t, models.CategoryCultural, list[0].Category)
		assert.Nil(t, list[0].EditedAt)

		assert.Nil(t, list[1].Notes)
		assert.Equal(t, models.Tags{}, list[1].Tags)
		assert.True(t, list[1].Visited)
		require.NotNil(t, list[1].EditedAt)
	})

	t.Run("empty", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM destinations")).
			WithArgs(testOtherID).
			WillReturnRows(sqlmock.NewRows(destinationRowColumns))

		list, err := repo.ListByUserID(ctx, testOtherID)
		require.NoError(t, err)
		assert.NotNil(t, list)
		assert.Empty(t, list)
	})

	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM destinations")).
			WithArgs(testUserID).
			WillReturnError(errors.New("connection reset"))

		list, err := repo.ListByUserID(ctx, testUserID)
		assert.Error(t, err)
		assert.Nil(t, list)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDestinationReadRepository_ExistsByName_Mock(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDestinationReadRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs(testUserID, "Kyoto").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs(testUserID, "kyoto").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err := repo.ExistsByName(ctx, testUserID, "Kyoto")
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByName(ctx, testUserID, "kyoto")
	assert.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDestinationWriteRepository_Save_Mock(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDestinationWriteRepository(db)
	ctx := context.Background()

	d := &models.DestinationDB{
		DestinationID: testDestID,
		UserID:        testUserID,
		Name:          "Kyoto",
		Coordinates:   models.Coordinates{Lat: 35.0116, Lng: 135.7681},
		Tags:          nil,
		Category:      models.CategoryNone,
		CreatedAt:     time.Now().UTC(),
	}

	t.Run("inserted", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO destinations")).
			WithArgs(testDestID, testUserID, "Kyoto", 35.0116, 135.7681, nil, "[]", "None", false, d.CreatedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Save(ctx, d))
	})

	t.Run("duplicate name", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO destinations")).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "destinations_user_id_name_key"})

		assert.ErrorIs(t, repo.Save(ctx, d), ErrUniqueViolation)
	})

	t.Run("other error", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO destinations")).
			WillReturnError(&pgconn.PgError{Code: "23503"})

		err := repo.Save(ctx, d)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrUniqueViolation)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDestinationWriteRepository_Update_Mock(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDestinationWriteRepository(db)
	ctx := context.Background()
	created := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	edited := created.Add(time.Hour)

	t.Run("partial", func(t *testing.T) {
		visited := true
		tags := models.Tags{"asia"}
		patch := models.DestinationPatch{Tags: &tags, Visited: &visited, EditedAt: edited}

		rows := sqlmock.NewRows(destinationRowColumns).
			AddRow(testDestID, testUserID, "Kyoto", 35.0116, 135.7681, nil, []byte(`["asia"]`), "Cultural", true, created, edited)
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE destinations")).
			WithArgs(testDestID, testUserID, nil, `["asia"]`, nil, true, edited).
			WillReturnRows(rows)

		d, err := repo.Update(ctx, testUserID, testDestID, patch)
		require.NoError(t, err)
		require.NotNil(t, d)
		assert.True(t, d.Visited)
		assert.Equal(t, models.Tags{"asia"}, d.Tags)
		assert.Equal(t, models.CategoryCultural, d.Category)
		require.NotNil(t, d.EditedAt)
		assert.True(t, edited.Equal(*d.EditedAt))
	})

	t.Run("category and notes", func(t *testing.T) {
		notes := "cherry blossoms"
		category := models.CategoryNature
		patch := models.DestinationPatch{Notes: &notes, Category: &category, EditedAt: edited}

		rows := sqlmock.NewRows(destinationRowColumns).
			AddRow(testDestID, testUserID, "Kyoto", 35.0116, 135.7681, notes, []byte(`[]`), "Nature", false, created, edited)
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE destinations")).
			WithArgs(testDestID, testUserID, notes, nil, "Nature", nil, edited).
			WillReturnRows(rows)

		d, err := repo.Update(ctx, testUserID, testDestID, patch)
		require.NoError(t, err)
		require.NotNil(t, d)
		assert.Equal(t, models.CategoryNature, d.Category)
		require.NotNil(t, d.Notes)
		assert.Equal(t, notes, *d.Notes)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE destinations")).
			WithArgs(testDestID, testOtherID, nil, nil, nil, nil, edited).
			WillReturnRows(sqlmock.NewRows(destinationRowColumns))

		d, err := repo.Update(ctx, testOtherID, testDestID, models.DestinationPatch{EditedAt: edited})
		assert.NoError(t, err)
		assert.Nil(t, d)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDestinationWriteRepository_Delete_Mock(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDestinationWriteRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM destinations")).
		WithArgs(testDestID, testUserID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(testDestID))
	mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM destinations")).
		WithArgs(testDestID, testOtherID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM destinations")).
		WithArgs(testDestID, testUserID).
		WillReturnError(errors.New("connection reset"))

	deleted, err := repo.Delete(ctx, testUserID, testDestID)
	assert.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, testOtherID, testDestID)
	assert.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = repo.Delete(ctx, testUserID, testDestID)
	assert.Error(t, err)
	assert.False(t, deleted)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDestinationRepositories_Postgres(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	users := NewUserWriteRepository(db)
	readRepo := NewDestinationReadRepository(db)
	writeRepo := NewDestinationWriteRepository(db)

	owner := &models.UserDB{
		UserID: models.NewObjectID(), FirstName: "Ada", LastName: "L",
		Email: "ada@example.com", PasswordHash: "h", CreatedAt: time.Now().UTC(),
	}
	other := &models.UserDB{
		UserID: models.NewObjectID(), FirstName: "Bob", LastName: "K",
		Email: "bob@example.com", PasswordHash: "h", CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, users.Save(ctx, owner))
	require.NoError(t, users.Save(ctx, other))

	kyoto := &models.DestinationDB{
		DestinationID: models.NewObjectID(),
		UserID:        owner.UserID,
		Name:          "Kyoto",
		Coordinates:   models.Coordinates{Lat: 35.011635738, Lng: -135.768149132},
		Tags:          models.Tags{"asia", "temples"},
		Category:      models.CategoryCultural,
		CreatedAt:     time.Now().UTC(),
	}
	require.NoError(t, writeRepo.Save(ctx, kyoto))

	t.Run("CoordinatesRoundTrip", func(t *testing.T) {
		list, err := readRepo.ListByUserID(ctx, owner.UserID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, kyoto.Coordinates, list[0].Coordinates)
		assert.Equal(t, kyoto.Tags, list[0].Tags)
		assert.Nil(t, list[0].Notes)
		assert.Nil(t, list[0].EditedAt)
	})

	t.Run("DuplicateNamePerUser", func(t *testing.T) {
		dup := *kyoto
		dup.DestinationID = models.NewObjectID()
		assert.ErrorIs(t, writeRepo.Save(ctx, &dup), ErrUniqueViolation)

		dup.UserID = other.UserID
		assert.NoError(t, writeRepo.Save(ctx, &dup))

		exists, err := readRepo.ExistsByName(ctx, other.UserID, "Kyoto")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("UpdateOwnedOnly", func(t *testing.T) {
		visited := true
		patch := models.DestinationPatch{Visited: &visited, EditedAt: time.Now().UTC()}

		d, err := writeRepo.Update(ctx, other.UserID, kyoto.DestinationID, patch)
		require.NoError(t, err)
		assert.Nil(t, d)

		d, err = writeRepo.Update(ctx, owner.UserID, kyoto.DestinationID, patch)
		require.NoError(t, err)
		require.NotNil(t, d)
		assert.True(t, d.Visited)
		assert.Equal(t, kyoto.Tags, d.Tags)
		assert.Equal(t, models.CategoryCultural, d.Category)
		assert.NotNil(t, d.EditedAt)
	})

	t.Run("DeleteOwnedOnly", func(t *testing.T) {
		deleted, err := writeRepo.Delete(ctx, other.UserID, kyoto.DestinationID)
		require.NoError(t, err)
		assert.False(t, deleted)

		deleted, err = writeRepo.Delete(ctx, owner.UserID, kyoto.DestinationID)
		require.NoError(t, err)
		assert.True(t, deleted)

		list, err := readRepo.ListByUserID(ctx, owner.UserID)
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}
