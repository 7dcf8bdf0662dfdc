package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/shaikhmohammadtalha/mern-wanderlist/internal/models"
	"github.com/shaikhmohammadtalha/mern-wanderlist/internal/services"
)

//go:generate mockgen -source=geocode.go -destination=geocode_mock.go -package=handlers

// PlaceSearcher defines the interface that the service must implement.
type PlaceSearcher interface {
	Search(ctx context.Context, in services.GeocodeInput) ([]models.GeocodeResult, error)
}

// GeocodeResponse lists places matching a search
// swagger:model GeocodeResponse
type GeocodeResponse struct {
	Results []models.GeocodeResult `json:"results"`
}

// NewGeocodeHandler returns an HTTP handler searching places by name.
// @Summary Search places
// @Description Looks up places through OpenStreetMap Nominatim. Results are cached.
// @Tags geocode
// @Produce json
// @Param q query string true "Free-text place query"
// @Param limit query int false "Maximum number of results (1-50)" default(10)
// @Success 200 {object} handlers.GeocodeResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid input"
// @Failure 401 {object} handlers.ErrorResponse "No token / invalid token"
// @Failure 502 {object} handlers.ErrorResponse "Geocoding service unavailable"
// @Router /geocode [get]
// @Security BearerAuth
func NewGeocodeHandler(svc PlaceSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		in := services.GeocodeInput{
			Query: query.Get("q"),
			Limit: services.DefaultGeocodeLimit,
		}
		if raw := query.Get("limit"); raw != "" {
			limit, err := strconv.Atoi(raw)
			if err != nil {
				writeJSON(w, http.StatusBadRequest, ErrorResponse{
					Message: "Invalid input",
					Errors:  []services.FieldError{{Field: "limit", Message: "must be an integer"}},
				})
				return
			}
			in.Limit = limit
		}

		results, err := svc.Search(r.Context(), in)
		if err != nil {
			writeServiceError(w, err, "Geocoding failed")
			return
		}

		writeJSON(w, http.StatusOK, GeocodeResponse{Results: results})
	}
}
