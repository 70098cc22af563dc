package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/projecthub/backend/internal/logger"
	"github.com/projecthub/backend/internal/services"
)

// Registerer defines the interface that the auth service must implement.
type Registerer interface {
	Register(ctx context.Context, username, email, password string, firstName, lastName *string) (uuid.UUID, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`

	// First name
	FirstName *string `json:"firstName"`

	// Last name
	LastName *string `json:"lastName"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Success message
	// default: User registered successfully
	Message string `json:"message"`

	// Created user ID
	UserID uuid.UUID `json:"userId"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account. Username and email must be unique. Password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.RegisterResponse "User successfully registered"
// @Failure 400 {object} handlers.ErrorResponse "Validation failed"
// @Failure 409 {object} handlers.ErrorResponse "Username or email already exists"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		userID, err := svc.Register(r.Context(), req.Username, req.Email, req.Password, req.FirstName, req.LastName)
		if err != nil {
			if vErr := services.AsValidationError(err); vErr != nil {
				writeError(w, http.StatusBadRequest, vErr.Message)
				return
			}
			switch {
			case errors.Is(err, services.ErrEmailExists):
				writeError(w, http.StatusConflict, "Email already exists")
			case errors.Is(err, services.ErrUsernameExists):
				writeError(w, http.StatusConflict, "Username already exists")
			case errors.Is(err, services.ErrUserExists):
				writeError(w, http.StatusConflict, "User with this information already exists")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, RegisterResponse{
			Message: "User registered successfully",
			UserID:  userID,
		})
	}
}
