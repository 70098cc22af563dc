package models

import (
	"time"

	"github.com/google/uuid"
)

// DocumentDB represents an uploaded document record in the database.
type DocumentDB struct {
	DocumentID   uuid.UUID `json:"id" db:"document_id"`
	ProjectID    uuid.UUID `json:"projectId" db:"project_id"`
	UploadedByID uuid.UUID `json:"uploadedById" db:"uploaded_by"`
	FileName     string    `json:"fileName" db:"file_name"`         // Storage-assigned, unique
	OriginalName string    `json:"originalName" db:"original_name"` // Name as uploaded
	Path         string    `json:"path" db:"path"`                  // Opaque blob locator
	MimeType     string    `json:"mimeType" db:"mime_type"`
	Size         int64     `json:"size" db:"size"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// BlobDescriptor describes a blob already written to the object store.
type BlobDescriptor struct {
	FileName     string
	OriginalName string
	Path         string
	MimeType     string
	Size         int64
}

// DocumentView is the upload response payload: the stored document plus
// short summaries of the uploader and the target project.
type DocumentView struct {
	DocumentDB
	UploadedBy UserSummary    `json:"uploadedBy"`
	Project    ProjectSummary `json:"project"`
}
