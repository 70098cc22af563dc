package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/projecthub/backend/internal/logger"
	"github.com/projecthub/backend/internal/models"
)

// DocumentWriter registers uploaded documents.
type DocumentWriter interface {
	Save(ctx context.Context, doc models.DocumentDB) error
}

// DocumentService associates already-stored blobs with a project.
// The blob itself is written to the object store by the caller before
// Upload; on any Upload failure the caller removes it again.
type DocumentService struct {
	projects  ProjectReader
	documents DocumentWriter
	users     UserReader
}

// NewDocumentService creates a new DocumentService instance.
func NewDocumentService(projects ProjectReader, documents DocumentWriter, users UserReader) *DocumentService {
	return &DocumentService{
		projects:  projects,
		documents: documents,
		users:     users,
	}
}

// Upload registers a document against a project. The project must exist,
// not be soft-deleted and belong to the uploader; all three failures
// collapse into the same ErrProjectAccessDenied so the endpoint cannot be
// used to probe for other users' projects. The ownership check and the
// insert share the request's transaction.
func (s *DocumentService) Upload(ctx context.Context, userID, projectID uuid.UUID, blob models.BlobDescriptor) (*models.DocumentView, error) {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil || project.UserID != userID {
		logger.Log.Infow("upload rejected",
			"projectID", projectID, "userID", userID, "fileName", blob.OriginalName)
		return nil, ErrProjectAccessDenied
	}

	uploader, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if uploader == nil {
		// Token refers to a user that no longer exists.
		return nil, ErrProjectAccessDenied
	}

	now := time.Now()
	doc := models.DocumentDB{
		DocumentID:   uuid.New(),
		ProjectID:    project.ProjectID,
		UploadedByID: userID,
		FileName:     blob.FileName,
		OriginalName: blob.OriginalName,
		Path:         blob.Path,
		MimeType:     blob.MimeType,
		Size:         blob.Size,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.documents.Save(ctx, doc); err != nil {
		logger.Log.Errorw("failed to register document",
			"projectID", projectID, "userID", userID, "fileName", blob.FileName, "error", err)
		return nil, err
	}

	logger.Log.Infow("document uploaded",
		"documentID", doc.DocumentID, "projectID", projectID, "userID", userID,
		"fileName", doc.OriginalName, "size", doc.Size)

	return &models.DocumentView{
		DocumentDB: doc,
		UploadedBy: models.UserSummary{
			ID:       uploader.UserID,
			Username: uploader.Username,
			Email:    uploader.Email,
		},
		Project: models.ProjectSummary{
			ID:    project.ProjectID,
			Title: project.Title,
		},
	}, nil
}
