package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projecthub/backend/internal/models"
)

func TestDocumentService_Upload_AccessDenied(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()
	projectID := uuid.New()

	tests := []struct {
		name    string
		project *models.ProjectDB
		caller  uuid.UUID
	}{
		{
			name:    "project does not exist",
			project: nil,
			caller:  owner,
		},
		{
			name:    "project owned by another user",
			project: &models.ProjectDB{ProjectID: projectID, UserID: owner},
			caller:  stranger,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			projects := NewMockProjectReader(ctrl)
			projects.EXPECT().GetByID(gomock.Any(), projectID).Return(tt.project, nil)

			svc := NewDocumentService(projects, NewMockDocumentWriter(ctrl), NewMockUserReader(ctrl))

			view, err := svc.Upload(context.Background(), tt.caller, projectID, models.BlobDescriptor{
				FileName:     "document-1700000000-123456789.pdf",
				OriginalName: "plan.pdf",
			})

			assert.Nil(t, view)
			// Missing and foreign projects are indistinguishable.
			assert.ErrorIs(t, err, ErrProjectAccessDenied)
		})
	}
}

func TestDocumentService_Upload_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	projectID := uuid.New()

	projects := NewMockProjectReader(ctrl)
	projects.EXPECT().GetByID(gomock.Any(), projectID).
		Return(&models.ProjectDB{ProjectID: projectID, UserID: userID, Title: "Website redesign"}, nil)

	users := NewMockUserReader(ctrl)
	users.EXPECT().GetByID(gomock.Any(), userID).
		Return(&models.UserDB{UserID: userID, Username: "alice", Email: "alice@example.com"}, nil)

	documents := NewMockDocumentWriter(ctrl)
	var saved models.DocumentDB
	documents.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, d models.DocumentDB) error {
			saved = d
			return nil
		})

	svc := NewDocumentService(projects, documents, users)

	blob := models.BlobDescriptor{
		FileName:     "document-1700000000-123456789.pdf",
		OriginalName: "plan.pdf",
		Path:         "documents/document-1700000000-123456789.pdf",
		MimeType:     "application/pdf",
		Size:         2048,
	}

	view, err := svc.Upload(context.Background(), userID, projectID, blob)
	require.NoError(t, err)
	require.NotNil(t, view)

	assert.Equal(t, saved.DocumentID, view.DocumentID)
	assert.Equal(t, projectID, saved.ProjectID)
	assert.Equal(t, userID, saved.UploadedByID)
	assert.Equal(t, blob.FileName, saved.FileName)
	assert.Equal(t, blob.Size, saved.Size)

	assert.Equal(t, "alice", view.UploadedBy.Username)
	assert.Equal(t, "Website redesign", view.Project.Title)
}

func TestDocumentService_Upload_SaveError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	projectID := uuid.New()

	projects := NewMockProjectReader(ctrl)
	projects.EXPECT().GetByID(gomock.Any(), projectID).
		Return(&models.ProjectDB{ProjectID: projectID, UserID: userID}, nil)

	users := NewMockUserReader(ctrl)
	users.EXPECT().GetByID(gomock.Any(), userID).
		Return(&models.UserDB{UserID: userID, Username: "alice"}, nil)

	wantErr := errors.New("insert failed")
	documents := NewMockDocumentWriter(ctrl)
	documents.EXPECT().Save(gomock.Any(), gomock.Any()).Return(wantErr)

	svc := NewDocumentService(projects, documents, users)

	view, err := svc.Upload(context.Background(), userID, projectID, models.BlobDescriptor{FileName: "document-1-2.pdf"})
	assert.Nil(t, view)
	assert.ErrorIs(t, err, wantErr)
}
