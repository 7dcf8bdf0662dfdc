package handlers

import (
	"context"
	"net/http"

	"github.com/shaikhmohammadtalha/mern-wanderlist/internal/models"
	"github.com/shaikhmohammadtalha/mern-wanderlist/internal/services"
)

//go:generate mockgen -source=register.go -destination=register_mock.go -package=handlers

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, in services.RegisterInput) (models.User, string, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// First name
	// required: true
	// default: John
	FirstName string `json:"firstName"`

	// Last name
	// required: true
	// default: Doe
	LastName string `json:"lastName"`

	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password, at least 6 characters
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// AuthResponse is returned by signup and login
// swagger:model AuthResponse
type AuthResponse struct {
	// Signed bearer token
	Token string `json:"token"`

	// Authenticated user
	User models.User `json:"user"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account with a unique email. The password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.AuthResponse "User successfully registered"
// @Failure 400 {object} handlers.ErrorResponse "Invalid input / user already exists"
// @Failure 500 {object} handlers.ErrorResponse "Signup failed"
// @Router /auth/signup [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		user, token, err := svc.Register(r.Context(), services.RegisterInput{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Password:  req.Password,
		})
		if err != nil {
			writeServiceError(w, err, "Signup failed")
			return
		}

		writeJSON(w, http.StatusCreated, AuthResponse{Token: token, User: user})
	}
}
