package models

import (
	"time"

	"github.com/google/uuid"
)

// Project statuses
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusOnHold    = "onhold"
)

// Sort orders accepted by project listing
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// ProjectDB represents a project record in the database.
// A non-nil DeletedAt marks the project as soft-deleted: it must not
// appear in listings and cannot be updated or deleted again.
type ProjectDB struct {
	ProjectID   uuid.UUID  `json:"id" db:"project_id"`          // Primary key
	UserID      uuid.UUID  `json:"userId" db:"user_id"`         // Owner, immutable
	Title       string     `json:"title" db:"title"`            // Required, up to 100 chars
	Description *string    `json:"description" db:"description"`
	StartDate   *time.Time `json:"startDate" db:"start_date"`
	EndDate     *time.Time `json:"endDate" db:"end_date"`
	Status      string     `json:"status" db:"status"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
	DeletedAt   *time.Time `json:"deletedAt,omitempty" db:"deleted_at"` // Soft-delete marker
}

// ProjectSummary is the short project representation embedded in responses.
type ProjectSummary struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
}

// ProjectListQuery holds the validated listing parameters.
type ProjectListQuery struct {
	Cursor    *uuid.UUID // Position after this row, nil for the first page
	Limit     int        // Page size, 1..50
	SortBy    string     // createdAt, updatedAt, title or status
	SortOrder string     // asc or desc
	Status    *string    // Optional status filter
}

// ProjectPage is one page of keyset-paginated projects.
type ProjectPage struct {
	Items           []ProjectDB `json:"items"`
	Limit           int         `json:"limit"`
	HasNextPage     bool        `json:"hasNextPage"`
	HasPreviousPage bool        `json:"hasPreviousPage"`
	NextCursor      *uuid.UUID  `json:"nextCursor"`
	PreviousCursor  *uuid.UUID  `json:"previousCursor"`
}

// ProjectUpdate carries a partial project update; nil fields are left unchanged.
type ProjectUpdate struct {
	Title       *string
	Description *string
	StartDate   *time.Time
	EndDate     *time.Time
	Status      *string
}
