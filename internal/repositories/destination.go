package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/shaikhmohammadtalha/mern-wanderlist/internal/models"
)

const destinationColumns = `id, user_id, name, lat, lng, notes, tags, category, visited, created_at, edited_at`

// DestinationReadRepository handles destination read operations
type DestinationReadRepository struct {
	db *sqlx.DB
}

func NewDestinationReadRepository(db *sqlx.DB) *DestinationReadRepository {
	return &DestinationReadRepository{db: db}
}

// ListByUserID returns every destination owned by userID.
func (r *DestinationReadRepository) ListByUserID(ctx context.Context, userID string) ([]models.DestinationDB, error) {
	const query = `
		SELECT ` + destinationColumns + `
		FROM destinations
		WHERE user_id = $1
		ORDER BY created_at, id
	`

	destinations := []models.DestinationDB{}
	err := r.db.SelectContext(ctx, &destinations, query, userID)

	logQuery(query, []any{userID}, len(destinations), err)

	if err != nil {
		return nil, err
	}
	return destinations, nil
}

// ExistsByName reports whether userID already has a destination called name.
func (r *DestinationReadRepository) ExistsByName(ctx context.Context, userID, name string) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM destinations WHERE user_id = $1 AND name = $2
		)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, userID, name)

	logQuery(query, []any{userID, name}, exists, err)

	return exists, err
}

// DestinationWriteRepository handles destination write operations
type DestinationWriteRepository struct {
	db *sqlx.DB
}

func NewDestinationWriteRepository(db *sqlx.DB) *DestinationWriteRepository {
	return &DestinationWriteRepository{db: db}
}

// Save inserts d. A duplicate (user_id, name) pair yields ErrUniqueViolation.
func (r *DestinationWriteRepository) Save(ctx context.Context, d *models.DestinationDB) error {
	const query = `
		INSERT INTO destinations (id, user_id, name, lat, lng, notes, tags, category, visited, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	args := []any{
		d.DestinationID, d.UserID, d.Name, d.Lat, d.Lng,
		d.Notes, d.Tags, string(d.Category), d.Visited, d.CreatedAt,
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, args, rowsAffected, err)

	return mapPgError(err)
}

// Update applies the non-nil fields of patch to the destination identified by
// id and owned by userID. It returns nil when no such destination exists.
func (r *DestinationWriteRepository) Update(ctx context.Context, userID, id string, patch models.DestinationPatch) (*models.DestinationDB, error) {
	const query = `
		UPDATE destinations
		SET notes = COALESCE($3::text, notes),
		    tags = COALESCE($4::jsonb, tags),
		    category = COALESCE($5::varchar, category),
		    visited = COALESCE($6::boolean, visited),
		    edited_at = $7
		WHERE id = $1 AND user_id = $2
		RETURNING ` + destinationColumns

	var tags, category any
	if patch.Tags != nil {
		tags = *patch.Tags
	}
	if patch.Category != nil {
		category = string(*patch.Category)
	}
	args := []any{id, userID, patch.Notes, tags, category, patch.Visited, patch.EditedAt}

	var d models.DestinationDB
	err := r.db.GetContext(ctx, &d, query, args...)

	logQuery(query, args, d.DestinationID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Delete removes the destination identified by id if userID owns it, in a
// single statement. It reports whether a row was deleted.
func (r *DestinationWriteRepository) Delete(ctx context.Context, userID, id string) (bool, error) {
	const query = `
		DELETE FROM destinations
		WHERE id = $1 AND user_id = $2
		RETURNING id
	`

	var deletedID string
	err := r.db.GetContext(ctx, &deletedID, query, id, userID)

	logQuery(query, []any{id, userID}, deletedID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
