package middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shaikhmohammadtalha/mern-wanderlist/internal/jwt"
	"github.com/shaikhmohammadtalha/mern-wanderlist/internal/logger"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetUserID(ctx context.Context, tokenString string) (string, error)
}

// AuthErrorResponse is the body of a rejected request.
type AuthErrorResponse struct {
	Message string `json:"message"`
}

// AuthMiddleware rejects requests without a valid bearer token and stores the
// authenticated user id in the request context.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Warnw("authorization failed", "err", err)
				if errors.Is(err, jwt.ErrMissingToken) {
					unauthorized(w, "No token, authorization denied")
				} else {
					unauthorized(w, "Invalid token")
				}
				return
			}

			userID, err := tokener.GetUserID(ctx, tokenString)
			if err != nil {
				logger.Log.Warnw("authorization failed", "err", err)
				unauthorized(w, "Invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(SetUserIDToContext(ctx, userID)))
		})
	}
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(AuthErrorResponse{Message: message})
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var userIDKey = contextKey{}

// SetUserIDToContext stores the authenticated user id in the context
func SetUserIDToContext(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserIDFromContext retrieves the authenticated user id. ok is false when
// the request did not pass through AuthMiddleware.
func GetUserIDFromContext(ctx context.Context) (userID string, ok bool) {
	userID, ok = ctx.Value(userIDKey).(string)
	return userID, ok && userID != ""
}
