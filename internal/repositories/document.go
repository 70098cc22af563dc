package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/projecthub/backend/internal/logger"
	"github.com/projecthub/backend/internal/models"
)

// DocumentWriteRepository registers uploaded documents inside the
// request's transaction.
type DocumentWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewDocumentWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *DocumentWriteRepository {
	return &DocumentWriteRepository{db: db, txGetter: txGetter}
}

func (r *DocumentWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a document record.
func (r *DocumentWriteRepository) Save(ctx context.Context, doc models.DocumentDB) error {
	const query = `
		INSERT INTO documents (document_id, project_id, uploaded_by, file_name, original_name, path, mime_type, size, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	args := []any{
		doc.DocumentID, doc.ProjectID, doc.UploadedByID,
		doc.FileName, doc.OriginalName, doc.Path, doc.MimeType, doc.Size,
		doc.CreatedAt, doc.UpdatedAt,
	}

	_, err := r.executor(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		logger.Log.Errorw("document insert failed",
			"documentID", doc.DocumentID, "projectID", doc.ProjectID, "error", err)
	}
	return err
}
