package models

import (
	"time"

	"github.com/google/uuid"
)

// Audit actions
const (
	AuditActionCreate = "CREATE"
	AuditActionUpdate = "UPDATE"
	AuditActionDelete = "DELETE"
)

// AuditEntityProject tags audit entries produced by project mutations.
const AuditEntityProject = "Project"

// AuditLogDB is an append-only audit record. Entries are written in the
// same transaction as the mutation they describe and are never updated
// or deleted.
type AuditLogDB struct {
	AuditID   uuid.UUID `json:"id" db:"audit_id"`
	UserID    uuid.UUID `json:"userId" db:"user_id"`       // Acting user
	Action    string    `json:"action" db:"action"`        // CREATE, UPDATE or DELETE
	Entity    string    `json:"entity" db:"entity"`        // Entity type tag
	EntityID  uuid.UUID `json:"entityId" db:"entity_id"`   // Mutated entity
	Details   string    `json:"details" db:"details"`      // JSON details payload
	CreatedAt time.Time `json:"timestamp" db:"created_at"`
}
