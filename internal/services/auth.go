package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/shaikhmohammadtalha/mern-wanderlist/internal/logger"
	"github.com/shaikhmohammadtalha/mern-wanderlist/internal/models"
	"github.com/shaikhmohammadtalha/mern-wanderlist/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.UserDB) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID string) (string, error)
}

// RegisterInput is the signup payload.
type RegisterInput struct {
	FirstName string `json:"firstName" validate:"required,nonul"`
	LastName  string `json:"lastName" validate:"required,nonul"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
}

// LoginInput is the login payload.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// AuthService handles registration and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    JWTGenerator
	now    func() time.Time
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
		now:    time.Now,
	}
}

// Register creates a user and returns its public identity with a fresh token.
func (svc *AuthService) Register(ctx context.Context, in RegisterInput) (models.User, string, error) {
	if err := validateStruct(in); err != nil {
		return models.User{}, "", err
	}

	existing, err := svc.reader.GetByEmail(ctx, in.Email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return models.User{}, "", err
	}
	if existing != nil {
		logger.Log.Infow("user already exists", "email", in.Email)
		return models.User{}, "", ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return models.User{}, "", err
	}

	user := &models.UserDB{
		UserID:       models.NewObjectID(),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: string(hashedPassword),
		CreatedAt:    svc.now().UTC().Truncate(time.Microsecond),
	}
	if err := svc.writer.Save(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrUniqueViolation) {
			logger.Log.Infow("user already exists", "email", in.Email)
			return models.User{}, "", ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return models.User{}, "", err
	}

	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return models.User{}, "", err
	}

	return user.Public(), token, nil
}

// Login authenticates a user by email and password and returns a token.
func (svc *AuthService) Login(ctx context.Context, in LoginInput) (models.User, string, error) {
	if err := validateStruct(in); err != nil {
		return models.User{}, "", err
	}

	user, err := svc.reader.GetByEmail(ctx, in.Email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return models.User{}, "", err
	}
	if user == nil {
		// Burn a comparison so unknown emails cost the same as wrong passwords.
		bcrypt.CompareHashAndPassword(dummyHash(), []byte(in.Password))
		logger.Log.Infow("invalid credentials", "email", in.Email)
		return models.User{}, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		logger.Log.Infow("invalid credentials", "email", in.Email)
		return models.User{}, "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return models.User{}, "", err
	}

	return user.Public(), token, nil
}

var (
	dummyHashOnce  sync.Once
	dummyHashValue []byte
)

func dummyHash() []byte {
	dummyHashOnce.Do(func() {
		dummyHashValue, _ = bcrypt.GenerateFromPassword([]byte("wanderlist-dummy-password"), bcrypt.DefaultCost)
	})
	return dummyHashValue
}
