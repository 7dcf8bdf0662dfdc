package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Category classifies a destination. The set is closed.
type Category string

const (
	CategoryAdventure  Category = "Adventure"
	CategoryFood       Category = "Food"
	CategoryRelaxation Category = "Relaxation"
	CategoryCultural   Category = "Cultural"
	CategoryNature     Category = "Nature"
	CategoryNone       Category = "None"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryAdventure,
	CategoryFood,
	CategoryRelaxation,
	CategoryCultural,
	CategoryNature,
	CategoryNone,
}

// Valid reports whether c belongs to Categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Coordinates is a latitude/longitude pair in degrees.
type Coordinates struct {
	Lat float64 `json:"lat" db:"lat"`
	Lng float64 `json:"lng" db:"lng"`
}

// Tags is a list of free-form labels stored as a JSONB array.
type Tags []string

// Value implements driver.Valuer. A nil list is stored as an empty array.
func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(t))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (t *Tags) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*t = Tags{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("tags: unsupported source type %T", src)
	}

	var out []string
	if err := json.Unmarshal(data, &out); err != nil {
		return fmt.Errorf("tags: %w", err)
	}
	if out == nil {
		out = []string{}
	}
	*t = out
	return nil
}

// DestinationDB represents a destination row in the database
type DestinationDB struct {
	DestinationID string `db:"id"`
	UserID        string `db:"user_id"`
	Name          string `db:"name"`
	Coordinates
	Notes     *string    `db:"notes"`
	Tags      Tags       `db:"tags"`
	Category  Category   `db:"category"`
	Visited   bool       `db:"visited"`
	CreatedAt time.Time  `db:"created_at"`
	EditedAt  *time.Time `db:"edited_at"` // Nil until the first update
}

// Destination is the client-facing shape of a destination.
type Destination struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Coordinates Coordinates `json:"coordinates"`
	Notes       *string     `json:"notes,omitempty"`
	Tags        []string    `json:"tags"`
	Category    Category    `json:"category"`
	Visited     bool        `json:"visited"`
	CreatedAt   time.Time   `json:"createdAt"`
	EditedAt    *time.Time  `json:"editedAt,omitempty"`
}

// Public converts a stored row into its client-facing shape.
func (d *DestinationDB) Public() Destination {
	tags := []string(d.Tags)
	if tags == nil {
		tags = []string{}
	}
	return Destination{
		ID:          d.DestinationID,
		Name:        d.Name,
		Coordinates: d.Coordinates,
		Notes:       d.Notes,
		Tags:        tags,
		Category:    d.Category,
		Visited:     d.Visited,
		CreatedAt:   d.CreatedAt,
		EditedAt:    d.EditedAt,
	}
}

// DestinationPatch carries the mutable fields of a partial update.
// A nil field is left untouched.
type DestinationPatch struct {
	Notes    *string
	Tags     *Tags
	Category *Category
	Visited  *bool
	EditedAt time.Time
}
