package middlewares

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORSMiddleware allows credentialed cross-origin calls from the given
// origins only. An origin may contain one "*" wildcard, e.g.
// https://*.example.com. Requests without an Origin header pass through.
func CORSMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "HEAD", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
