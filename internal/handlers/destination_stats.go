package handlers

import (
	"context"
	"net/http"

	"github.com/shaikhmohammadtalha/mern-wanderlist/internal/models"
)

//go:generate mockgen -source=destination_stats.go -destination=destination_stats_mock.go -package=handlers

// DestinationStatter defines the interface that the service must implement.
type DestinationStatter interface {
	Stats(ctx context.Context, userID string) (models.DestinationStats, error)
}

// NewDestinationStatsHandler returns an HTTP handler summarizing the caller's
// destinations by visit status and category.
// @Summary Destination statistics
// @Tags destinations
// @Produce json
// @Success 200 {object} models.DestinationStats
// @Failure 401 {object} handlers.ErrorResponse "No token / invalid token"
// @Failure 500 {object} handlers.ErrorResponse "Getting Statistics failed"
// @Router /destinations/stats [get]
// @Security BearerAuth
func NewDestinationStatsHandler(svc DestinationStatter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUserID(w, r)
		if !ok {
			return
		}

		stats, err := svc.Stats(r.Context(), userID)
		if err != nil {
			writeServiceError(w, err, "Getting Statistics failed")
			return
		}

		writeJSON(w, http.StatusOK, stats)
	}
}
