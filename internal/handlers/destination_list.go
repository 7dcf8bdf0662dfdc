package handlers

import (
	"context"
	"net/http"

	"github.com/shaikhmohammadtalha/mern-wanderlist/internal/models"
)

//go:generate mockgen -source=destination_list.go -destination=destination_list_mock.go -package=handlers

// DestinationLister defines the interface that the service must implement.
type DestinationLister interface {
	List(ctx context.Context, userID string) ([]models.Destination, error)
}

// DestinationListResponse lists the caller's destinations
// swagger:model DestinationListResponse
type DestinationListResponse struct {
	Destinations []models.Destination `json:"destinations"`
}

// NewListDestinationsHandler returns an HTTP handler listing the caller's destinations.
// @Summary List destinations
// @Tags destinations
// @Produce json
// @Success 200 {object} handlers.DestinationListResponse
// @Failure 401 {object} handlers.ErrorResponse "No token / invalid token"
// @Failure 500 {object} handlers.ErrorResponse "Getting Destinations failed"
// @Router /destinations [get]
// @Security BearerAuth
func NewListDestinationsHandler(svc DestinationLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUserID(w, r)
		if !ok {
			return
		}

		destinations, err := svc.List(r.Context(), userID)
		if err != nil {
			writeServiceError(w, err, "Getting Destinations failed")
			return
		}

		writeJSON(w, http.StatusOK, DestinationListResponse{Destinations: destinations})
	}
}
