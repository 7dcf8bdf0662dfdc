package jwt

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shaikhmohammadtalha/mern-wanderlist/internal/models"
)

var (
	ErrMissingToken      = errors.New("authorization header missing")
	ErrInvalidAuthHeader = errors.New("invalid authorization header format")
	ErrInvalidToken      = errors.New("invalid token")
)

// Claims is the token payload: the user id plus the registered iat/exp claims.
type Claims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

// JWT issues and verifies HS256 identity tokens.
type JWT struct {
	secretKey []byte
	exp       time.Duration
	now       func() time.Time
}

// New creates a JWT bound to a signing key and a token lifetime.
func New(secretKey string, expiration time.Duration) *JWT {
	return &JWT{
		secretKey: []byte(secretKey),
		exp:       expiration,
		now:       time.Now,
	}
}

// Generate signs a token asserting userID, valid for the configured lifetime.
func (j *JWT) Generate(ctx context.Context, userID string) (string, error) {
	now := j.now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.exp)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// GetUserID verifies the token signature and expiry and returns the embedded user id.
func (j *JWT) GetUserID(ctx context.Context, tokenString string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return j.secretKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithStrictDecoding(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return "", ErrInvalidToken
	}

	userID, ok := models.ParseObjectID(claims.UserID)
	if !ok {
		return "", fmt.Errorf("%w: malformed id claim", ErrInvalidToken)
	}
	return userID, nil
}

// GetTokenFromRequest extracts the bearer token from the Authorization header
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := strings.TrimSpace(r.Header.Get("Authorization"))
	if authHeader == "" {
		return "", ErrMissingToken
	}

	parts := strings.Fields(authHeader)
	if !strings.EqualFold(parts[0], "bearer") {
		return "", ErrInvalidAuthHeader
	}
	if len(parts) == 1 {
		return "", ErrMissingToken
	}
	if len(parts) != 2 {
		return "", ErrInvalidAuthHeader
	}

	return parts[1], nil
}
