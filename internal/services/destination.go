package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shaikhmohammadtalha/mern-wanderlist/internal/logger"
	"github.com/shaikhmohammadtalha/mern-wanderlist/internal/models"
	"github.com/shaikhmohammadtalha/mern-wanderlist/internal/repositories"
)

//go:generate mockgen -source=destination.go -destination=destination_mock.go -package=services

var (
	ErrDestinationExists    = errors.New("destination already exists for this user")
	ErrInvalidDestinationID = errors.New("invalid destination id")
	ErrDestinationNotFound  = errors.New("destination not found")
)

// DestinationReader defines read-only operations for destinations.
type DestinationReader interface {
	ListByUserID(ctx context.Context, userID string) ([]models.DestinationDB, error)
	ExistsByName(ctx context.Context, userID, name string) (bool, error)
}

// DestinationWriter defines write operations for destinations.
type DestinationWriter interface {
	Save(ctx context.Context, d *models.DestinationDB) error
	Update(ctx context.Context, userID, id string, patch models.DestinationPatch) (*models.DestinationDB, error)
	Delete(ctx context.Context, userID, id string) (bool, error)
}

// CoordinatesInput is a latitude/longitude pair as sent by clients.
type CoordinatesInput struct {
	Lat *float64 `json:"lat" validate:"required,finite"`
	Lng *float64 `json:"lng" validate:"required,finite"`
}

// CreateDestinationInput is the payload for creating a destination.
type CreateDestinationInput struct {
	Name        string            `json:"name" validate:"required,nonul"`
	Coordinates *CoordinatesInput `json:"coordinates" validate:"required"`
	Notes       *string           `json:"notes" validate:"omitnil,nonul"`
	Tags        []*string         `json:"tags"`
	Category    *models.Category  `json:"category" validate:"omitnil,category"`
	Visited     *bool             `json:"visited"`
}

// UpdateDestinationInput is the payload for a partial update. Only fields
// present in the request body are applied.
type UpdateDestinationInput struct {
	Notes    models.Optional[string]          `json:"notes"`
	Tags     models.Optional[[]*string]       `json:"tags"`
	Category models.Optional[models.Category] `json:"category"`
	Visited  models.Optional[bool]            `json:"visited"`
}

// DestinationService manages the destinations of a single owner per call.
type DestinationService struct {
	reader DestinationReader
	writer DestinationWriter
	now    func() time.Time
}

// NewDestinationService creates a new DestinationService instance.
func NewDestinationService(reader DestinationReader, writer DestinationWriter) *DestinationService {
	return &DestinationService{
		reader: reader,
		writer: writer,
		now:    time.Now,
	}
}

// Create stores a new destination owned by userID.
func (svc *DestinationService) Create(ctx context.Context, userID string, in CreateDestinationInput) (models.Destination, error) {
	err := validateStruct(in)
	tags, ok := tagValues(in.Tags)
	if !ok {
		err = appendFieldError(err, FieldError{Field: "tags", Message: tagsMessage})
	}
	if err != nil {
		return models.Destination{}, err
	}

	exists, err := svc.reader.ExistsByName(ctx, userID, in.Name)
	if err != nil {
		logger.Log.Errorw("failed to check destination exists", "err", err)
		return models.Destination{}, err
	}
	if exists {
		logger.Log.Infow("destination already exists", "user_id", userID, "name", in.Name)
		return models.Destination{}, ErrDestinationExists
	}

	d := &models.DestinationDB{
		DestinationID: models.NewObjectID(),
		UserID:        userID,
		Name:          in.Name,
		Coordinates:   models.Coordinates{Lat: *in.Coordinates.Lat, Lng: *in.Coordinates.Lng},
		Notes:         in.Notes,
		Tags:          tags,
		Category:      models.CategoryNone,
		CreatedAt:     svc.now().UTC().Truncate(time.Microsecond),
	}
	if in.Category != nil {
		d.Category = *in.Category
	}
	if in.Visited != nil {
		d.Visited = *in.Visited
	}

	if err := svc.writer.Save(ctx, d); err != nil {
		if errors.Is(err, repositories.ErrUniqueViolation) {
			logger.Log.Infow("destination already exists", "user_id", userID, "name", in.Name)
			return models.Destination{}, ErrDestinationExists
		}
		logger.Log.Errorw("failed to save destination", "err", err)
		return models.Destination{}, err
	}

	return d.Public(), nil
}

// List returns every destination owned by userID.
func (svc *DestinationService) List(ctx context.Context, userID string) ([]models.Destination, error) {
	rows, err := svc.reader.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list destinations", "err", err)
		return nil, err
	}

	out := make([]models.Destination, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].Public())
	}
	return out, nil
}

// Update applies the fields present in in to the destination id owned by
// userID. A destination owned by someone else is reported as not found.
func (svc *DestinationService) Update(ctx context.Context, userID, id string, in UpdateDestinationInput) (models.Destination, error) {
	id, ok := models.ParseObjectID(id)
	if !ok {
		return models.Destination{}, ErrInvalidDestinationID
	}

	patch, err := buildPatch(in)
	if err != nil {
		return models.Destination{}, err
	}
	patch.EditedAt = svc.now().UTC().Truncate(time.Microsecond)

	d, err := svc.writer.Update(ctx, userID, id, patch)
	if err != nil {
		logger.Log.Errorw("failed to update destination", "err", err)
		return models.Destination{}, err
	}
	if d == nil {
		return models.Destination{}, ErrDestinationNotFound
	}

	return d.Public(), nil
}

const tagsMessage = "must be an array of strings"

// tagValues dereferences tags. It reports false when an element is null or
// contains a NUL character.
func tagValues(tags []*string) (models.Tags, bool) {
	out := make(models.Tags, 0, len(tags))
	for _, t := range tags {
		if t == nil || strings.ContainsRune(*t, 0) {
			return nil, false
		}
		out = append(out, *t)
	}
	return out, true
}

func buildPatch(in UpdateDestinationInput) (models.DestinationPatch, error) {
	var (
		patch  models.DestinationPatch
		fields []FieldError
	)

	if in.Notes.Set {
		if in.Notes.Null {
			fields = append(fields, FieldError{Field: "notes", Message: "must be a string"})
		} else if strings.ContainsRune(in.Notes.Value, 0) {
			fields = append(fields, FieldError{Field: "notes", Message: nulMessage})
		} else {
			patch.Notes = &in.Notes.Value
		}
	}

	if in.Tags.Set {
		tags, ok := tagValues(in.Tags.Value)
		if in.Tags.Null || !ok {
			fields = append(fields, FieldError{Field: "tags", Message: tagsMessage})
		} else {
			patch.Tags = &tags
		}
	}

	if in.Category.Set {
		category := models.CategoryNone
		if !in.Category.Null {
			category = in.Category.Value
		}
		if !category.Valid() {
			fields = append(fields, FieldError{Field: "category", Message: "must be one of " + categoryList()})
		} else {
			patch.Category = &category
		}
	}

	if in.Visited.Set {
		if in.Visited.Null {
			fields = append(fields, FieldError{Field: "visited", Message: "must be a boolean"})
		} else {
			patch.Visited = &in.Visited.Value
		}
	}

	if len(fields) > 0 {
		return models.DestinationPatch{}, &ValidationError{Fields: fields}
	}
	return patch, nil
}

// Delete removes the destination id owned by userID.
func (svc *DestinationService) Delete(ctx context.Context, userID, id string) error {
	id, ok := models.ParseObjectID(id)
	if !ok {
		return ErrInvalidDestinationID
	}

	deleted, err := svc.writer.Delete(ctx, userID, id)
	if err != nil {
		logger.Log.Errorw("failed to delete destination", "err", err)
		return err
	}
	if !deleted {
		return ErrDestinationNotFound
	}
	return nil
}

// Stats counts the destinations of userID overall and per category.
// Categories without destinations are left out.
func (svc *DestinationService) Stats(ctx context.Context, userID string) (models.DestinationStats, error) {
	rows, err := svc.reader.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list destinations", "err", err)
		return models.DestinationStats{}, err
	}

	counts := make(map[models.Category]*models.CategoryStats)
	stats := models.DestinationStats{Total: len(rows)}
	for _, d := range rows {
		c, ok := counts[d.Category]
		if !ok {
			c = &models.CategoryStats{Category: d.Category}
			counts[d.Category] = c
		}
		if d.Visited {
			stats.Visited++
			c.Visited++
		} else {
			stats.Planned++
			c.Planned++
		}
	}

	stats.ByCategory = []models.CategoryStats{}
	for _, category := range models.Categories {
		if c, ok := counts[category]; ok {
			stats.ByCategory = append(stats.ByCategory, *c)
		}
	}

	return stats, nil
}
