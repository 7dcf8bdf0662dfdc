package handlers

import "net/http"

// ProtectedUser identifies the caller of a protected route.
type ProtectedUser struct {
	ID string `json:"id"`
}

// ProtectedResponse confirms that the bearer token was accepted
// swagger:model ProtectedResponse
type ProtectedResponse struct {
	// default: Protected route accessed successfully!
	Message string `json:"message"`

	// Authenticated user
	User ProtectedUser `json:"user"`
}

// NewProtectedHandler returns a handler that echoes the authenticated user id.
// @Summary Check a token
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.ProtectedResponse
// @Failure 401 {object} handlers.ErrorResponse "No token / invalid token"
// @Router /protected [get]
// @Security BearerAuth
func NewProtectedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUserID(w, r)
		if !ok {
			return
		}

		writeJSON(w, http.StatusOK, ProtectedResponse{
			Message: "Protected route accessed successfully!",
			User:    ProtectedUser{ID: userID},
		})
	}
}
