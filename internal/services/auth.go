package services

import (
	"context"
	"errors"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/projecthub/backend/internal/logger"
	"github.com/projecthub/backend/internal/models"
	"github.com/projecthub/backend/internal/repositories"
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user models.UserDB) error
	UpdateLastLogin(ctx context.Context, userID uuid.UUID, when time.Time) error
}

// JWTGenerator defines an interface for issuing session tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, username, role string) (string, error)
}

// AuthService handles registration and login. The login identifier is the
// username; email is only checked for uniqueness at registration.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

func validateRegistration(username, email, password string, firstName, lastName *string) error {
	if len(username) < 3 || len(username) > 50 {
		return newValidationError("Username must be between 3 and 50 characters")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return newValidationError("Email must be a valid email address")
	}
	if len(password) < 8 {
		return newValidationError("Password must be at least 8 characters")
	}
	if firstName != nil && len(*firstName) > 50 {
		return newValidationError("First name must be at most 50 characters")
	}
	if lastName != nil && len(*lastName) > 50 {
		return newValidationError("Last name must be at most 50 characters")
	}
	return nil
}

// Register validates the input, hashes the password and creates the user.
// Unique collisions are reported precisely: ErrEmailExists,
// ErrUsernameExists or ErrUserExists depending on the colliding column.
func (svc *AuthService) Register(ctx context.Context, username, email, password string, firstName, lastName *string) (uuid.UUID, error) {
	if err := validateRegistration(username, email, password, firstName, lastName); err != nil {
		return uuid.Nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return uuid.Nil, err
	}

	user := models.UserDB{
		UserID:       uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
		FirstName:    firstName,
		LastName:     lastName,
		Role:         models.RoleUser,
	}

	if err := svc.writer.Save(ctx, user); err != nil {
		switch {
		case errors.Is(err, repositories.ErrEmailTaken):
			return uuid.Nil, ErrEmailExists
		case errors.Is(err, repositories.ErrUsernameTaken):
			return uuid.Nil, ErrUsernameExists
		case errors.Is(err, repositories.ErrUserTaken):
			return uuid.Nil, ErrUserExists
		}
		logger.Log.Errorw("failed to save user", "username", username, "err", err)
		return uuid.Nil, err
	}

	return user.UserID, nil
}

// Login authenticates a user by username, stamps the last login and
// returns a session token with the user record. Unknown username and
// wrong password are indistinguishable to the caller.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, *models.UserDB, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "username", username, "err", err)
		return "", nil, err
	}
	if user == nil {
		logger.Log.Infow("login failed: unknown username", "username", username)
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			logger.Log.Errorw("password comparison failed", "username", username, "err", err)
			return "", nil, err
		}
		logger.Log.Infow("login failed: wrong password", "username", username)
		return "", nil, ErrInvalidCredentials
	}

	now := time.Now()
	if err := svc.writer.UpdateLastLogin(ctx, user.UserID, now); err != nil {
		return "", nil, err
	}
	user.LastLogin = &now

	token, err := svc.jwt.Generate(ctx, user.UserID, user.Username, user.Role)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "userID", user.UserID, "err", err)
		return "", nil, err
	}

	return token, user, nil
}
