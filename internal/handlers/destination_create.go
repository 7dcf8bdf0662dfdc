package handlers

import (
	"context"
	"net/http"

	"github.com/shaikhmohammadtalha/mern-wanderlist/internal/models"
	"github.com/shaikhmohammadtalha/mern-wanderlist/internal/services"
)

//go:generate mockgen -source=destination_create.go -destination=destination_create_mock.go -package=handlers

// DestinationCreator defines the interface that the service must implement.
type DestinationCreator interface {
	Create(ctx context.Context, userID string, in services.CreateDestinationInput) (models.Destination, error)
}

// DestinationResponse wraps a single destination
// swagger:model DestinationResponse
type DestinationResponse struct {
	Destination models.Destination `json:"destination"`
}

// NewCreateDestinationHandler returns an HTTP handler adding a destination to
// the caller's list.
// @Summary Add a destination
// @Description Names are unique per user. Category defaults to None, visited to false.
// @Tags destinations
// @Accept json
// @Produce json
// @Param destination body services.CreateDestinationInput true "New destination"
// @Success 201 {object} handlers.DestinationResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid input / duplicate name"
// @Failure 401 {object} handlers.ErrorResponse "No token / invalid token"
// @Failure 500 {object} handlers.ErrorResponse "Adding Destination failed"
// @Router /destinations [post]
// @Security BearerAuth
func NewCreateDestinationHandler(svc DestinationCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUserID(w, r)
		if !ok {
			return
		}

		var in services.CreateDestinationInput
		if !decodeJSON(w, r, &in) {
			return
		}

		d, err := svc.Create(r.Context(), userID, in)
		if err != nil {
			writeServiceError(w, err, "Adding Destination failed")
			return
		}

		writeJSON(w, http.StatusCreated, DestinationResponse{Destination: d})
	}
}
