package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID  `json:"id" db:"user_id"`              // Primary key
	Username     string     `json:"username" db:"username"`       // Unique username
	Email        string     `json:"email" db:"email"`             // Unique email
	PasswordHash string     `json:"-" db:"password_hash"`         // Hashed password, never serialized
	FirstName    *string    `json:"firstName" db:"first_name"`    // Optional first name
	LastName     *string    `json:"lastName" db:"last_name"`      // Optional last name
	Role         string     `json:"role" db:"role"`               // user or admin
	LastLogin    *time.Time `json:"lastLogin" db:"last_login"`    // Set on each successful login
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`    // Creation timestamp
	UpdatedAt    time.Time  `json:"updatedAt" db:"updated_at"`    // Last update timestamp
}

// UserSummary is the short user representation embedded in responses.
type UserSummary struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}
