package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/projecthub/backend/internal/logger"
	"github.com/projecthub/backend/internal/models"
)

// AuditLogWriteRepository appends audit entries. Entries ride the request's
// transaction, so an audit insert failure rolls the primary mutation back.
type AuditLogWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewAuditLogWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *AuditLogWriteRepository {
	return &AuditLogWriteRepository{db: db, txGetter: txGetter}
}

func (r *AuditLogWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save appends one audit entry.
func (r *AuditLogWriteRepository) Save(ctx context.Context, entry models.AuditLogDB) error {
	const query = `
		INSERT INTO audit_logs (audit_id, user_id, action, entity, entity_id, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6::jsonb, $7)
	`
	args := []any{
		entry.AuditID, entry.UserID, entry.Action,
		entry.Entity, entry.EntityID, entry.Details, entry.CreatedAt,
	}

	_, err := r.executor(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		logger.Log.Errorw("audit insert failed",
			"userID", entry.UserID, "action", entry.Action, "entityID", entry.EntityID, "error", err)
	}
	return err
}
