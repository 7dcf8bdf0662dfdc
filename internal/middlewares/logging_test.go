package middlewares

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggingMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		handlerStatus  int
		handlerBody    string
		incomingID     string
		expectedStatus int
	}{
		{
			name:           "OK response",
			handlerStatus:  http.StatusOK,
			handlerBody:    "hello",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Internal server error",
			handlerStatus:  http.StatusInternalServerError,
			handlerBody:    "error",
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "Propagates incoming request id",
			handlerStatus:  http.StatusCreated,
			handlerBody:    "created",
			incomingID:     "req-123",
			expectedStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zap.InfoLevel)
			log := zap.New(core).Sugar()

			var ctxID string
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ctxID = RequestIDFromContext(r.Context())
				w.WriteHeader(tt.handlerStatus)
				_, _ = w.Write([]byte(tt.handlerBody))
			})

			handler := LoggingMiddleware(log)(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
			if tt.incomingID != "" {
				req.Header.Set("X-Request-ID", tt.incomingID)
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			bodyBytes, _ := io.ReadAll(rr.Body)
			assert.Equal(t, tt.handlerBody, string(bodyBytes))

			reqID := rr.Header().Get("X-Request-ID")
			assert.NotEmpty(t, reqID)
			assert.Equal(t, reqID, ctxID)
			if tt.incomingID != "" {
				assert.Equal(t, tt.incomingID, reqID)
			}

			entries := logs.FilterMessage("request").All()
			if assert.Len(t, entries, 1) {
				fields := entries[0].ContextMap()
				assert.Equal(t, reqID, fields["request_id"])
				assert.Equal(t, int64(tt.expectedStatus), fields["status"])
				assert.Equal(t, int64(len(tt.handlerBody)), fields["response_size"])
			}
		})
	}
}
