package handlers

import "net/http"

// HealthResponse reports that the API is up
// swagger:model HealthResponse
type HealthResponse struct {
	// default: WanderList API is running
	Message string `json:"message"`

	// default: ok
	Status string `json:"status"`

	// Build version of the running binary
	Version string `json:"version"`
}

// NewHealthHandler returns a liveness handler reporting the build version.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse
// @Router /health [get]
func NewHealthHandler(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponse{
			Message: "WanderList API is running",
			Status:  "ok",
			Version: version,
		})
	}
}
