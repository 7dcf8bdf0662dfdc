package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/shaikhmohammadtalha/mern-wanderlist/internal/logger"
	"github.com/shaikhmohammadtalha/mern-wanderlist/internal/middlewares"
	"github.com/shaikhmohammadtalha/mern-wanderlist/internal/services"
)

// ErrorResponse is the body of every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Invalid input
	Message string `json:"message"`

	// Per-field validation failures, present only for invalid input
	Errors []services.FieldError `json:"errors,omitempty"`
}

// MessageResponse is a body carrying only a message
// swagger:model MessageResponse
type MessageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Message: message})
}

// writeServiceError translates an error returned by a service into a
// response. Unrecognized errors are logged and reported as failure.
func writeServiceError(w http.ResponseWriter, err error, failure string) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Message: "Invalid input", Errors: ve.Fields})
	case errors.Is(err, services.ErrUserAlreadyExists):
		writeError(w, http.StatusBadRequest, "User already exists")
	case errors.Is(err, services.ErrInvalidCredentials):
		writeError(w, http.StatusBadRequest, "Invalid credentials")
	case errors.Is(err, services.ErrDestinationExists):
		writeError(w, http.StatusBadRequest, "Destination already exists for this user")
	case errors.Is(err, services.ErrInvalidDestinationID):
		writeError(w, http.StatusBadRequest, "Invalid destination ID")
	case errors.Is(err, services.ErrDestinationNotFound):
		writeError(w, http.StatusNotFound, "Destination not found")
	case errors.Is(err, services.ErrGeocoderUnavailable):
		writeError(w, http.StatusBadGateway, "Geocoding service unavailable")
	default:
		logger.Log.Errorw("internal server error", "op", failure, "err", err)
		writeError(w, http.StatusInternalServerError, failure)
	}
}

// maxBodyBytes caps the size of a JSON request body.
const maxBodyBytes = 1 << 20

// decodeJSON reads the request body into v and answers 400 when it is not
// valid JSON for v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	return decodeBody(w, r, v, false)
}

// decodeOptionalJSON is decodeJSON for endpoints where an empty body means an
// empty object.
func decodeOptionalJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	return decodeBody(w, r, v, true)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any, allowEmpty bool) bool {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v)
	if err == nil || (allowEmpty && errors.Is(err, io.EOF)) {
		return true
	}

	logger.Log.Infow("invalid request body", "err", err)
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, "Request body too large")
		return false
	}
	writeError(w, http.StatusBadRequest, "Invalid input")
	return false
}

// requireUserID returns the authenticated user id, answering 401 when the
// request did not pass through the auth middleware.
func requireUserID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := middlewares.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
	}
	return userID, ok
}
