package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
)

//go:generate mockgen -source=destination_delete.go -destination=destination_delete_mock.go -package=handlers

// DestinationDeleter defines the interface that the service must implement.
type DestinationDeleter interface {
	Delete(ctx context.Context, userID, id string) error
}

// NewDeleteDestinationHandler returns an HTTP handler removing one of the
// caller's destinations.
// @Summary Delete a destination
// @Tags destinations
// @Produce json
// @Param id path string true "Destination id (24 hex characters)"
// @Success 200 {object} handlers.MessageResponse "Destination deleted successfully"
// @Failure 400 {object} handlers.ErrorResponse "Invalid destination ID"
// @Failure 401 {object} handlers.ErrorResponse "No token / invalid token"
// @Failure 404 {object} handlers.ErrorResponse "Destination not found"
// @Failure 500 {object} handlers.ErrorResponse "Deleting Destination failed"
// @Router /destinations/{id} [delete]
// @Security BearerAuth
func NewDeleteDestinationHandler(svc DestinationDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUserID(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
			writeServiceError(w, err, "Deleting Destination failed")
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Destination deleted successfully"})
	}
}
