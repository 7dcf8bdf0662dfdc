package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shaikhmohammadtalha/mern-wanderlist/internal/models"
	"github.com/shaikhmohammadtalha/mern-wanderlist/internal/services"
)

//go:generate mockgen -source=destination_update.go -destination=destination_update_mock.go -package=handlers

// DestinationUpdater defines the interface that the service must implement.
type DestinationUpdater interface {
	Update(ctx context.Context, userID, id string, in services.UpdateDestinationInput) (models.Destination, error)
}

// UpdateDestinationRequest documents the partial update body. Omitted fields
// are left unchanged; a null category resets it to None.
// swagger:model UpdateDestinationRequest
type UpdateDestinationRequest struct {
	Notes    *string          `json:"notes,omitempty"`
	Tags     []string         `json:"tags,omitempty"`
	Category *models.Category `json:"category,omitempty"`
	Visited  *bool            `json:"visited,omitempty"`
}

// NewUpdateDestinationHandler returns an HTTP handler applying a partial
// update to one of the caller's destinations.
// @Summary Update a destination
// @Tags destinations
// @Accept json
// @Produce json
// @Param id path string true "Destination id (24 hex characters)"
// @Param patch body handlers.UpdateDestinationRequest true "Fields to change"
// @Success 200 {object} handlers.DestinationResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid destination ID / invalid input"
// @Failure 401 {object} handlers.ErrorResponse "No token / invalid token"
// @Failure 404 {object} handlers.ErrorResponse "Destination not found"
// @Failure 500 {object} handlers.ErrorResponse "Updating Destination failed"
// @Router /destinations/{id} [patch]
// @Security BearerAuth
func NewUpdateDestinationHandler(svc DestinationUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUserID(w, r)
		if !ok {
			return
		}

		var in services.UpdateDestinationInput
		if !decodeOptionalJSON(w, r, &in) {
			return
		}

		d, err := svc.Update(r.Context(), userID, chi.URLParam(r, "id"), in)
		if err != nil {
			writeServiceError(w, err, "Updating Destination failed")
			return
		}

		writeJSON(w, http.StatusOK, DestinationResponse{Destination: d})
	}
}
