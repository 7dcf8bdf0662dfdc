package handlers

import (
	"context"
	"net/http"

	"github.com/shaikhmohammadtalha/mern-wanderlist/internal/models"
	"github.com/shaikhmohammadtalha/mern-wanderlist/internal/services"
)

//go:generate mockgen -source=login.go -destination=login_mock.go -package=handlers

// Loginer defines the interface that the service must implement.
type Loginer interface {
	Login(ctx context.Context, in services.LoginInput) (models.User, string, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary Log in
// @Description Authenticates a user by email and password and returns a JWT valid for 7 days.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "User login request"
// @Success 200 {object} handlers.AuthResponse "Successful login"
// @Failure 400 {object} handlers.ErrorResponse "Invalid input / invalid credentials"
// @Failure 500 {object} handlers.ErrorResponse "Login failed"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		user, token, err := svc.Login(r.Context(), services.LoginInput{
			Email:    req.Email,
			Password: req.Password,
		})
		if err != nil {
			writeServiceError(w, err, "Login failed")
			return
		}

		writeJSON(w, http.StatusOK, AuthResponse{Token: token, User: user})
	}
}
