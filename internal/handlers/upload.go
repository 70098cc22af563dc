package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/projecthub/backend/internal/logger"
	"github.com/projecthub/backend/internal/middlewares"
	"github.com/projecthub/backend/internal/models"
	"github.com/projecthub/backend/internal/services"
)

// DocumentUploader defines the interface that the document service must implement.
type DocumentUploader interface {
	Upload(ctx context.Context, userID, projectID uuid.UUID, blob models.BlobDescriptor) (*models.DocumentView, error)
}

// BlobStorage writes and removes document blobs in the object store.
type BlobStorage interface {
	Put(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
	Remove(ctx context.Context, objectName string) error
}

// UploadResponse represents a successful document upload response
// swagger:model UploadResponse
type UploadResponse struct {
	// Success message
	// default: Document uploaded successfully
	Message string `json:"message"`

	// Stored document with uploader and project summaries
	Document *models.DocumentView `json:"document"`
}

// allowedUploadExts mirrors the MIME allow list; both the extension and
// the declared content type must pass.
var allowedUploadExts = map[string]struct{}{
	".pdf":   {},
	".doc":   {},
	".docx":  {},
	".txt":   {},
	".jpg":   {},
	".jpeg":  {},
	".png":   {},
	".pages": {},
}

var allowedUploadMimes = map[string]struct{}{
	"application/pdf":    {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
	"application/vnd.apple.pages": {},
	"application/octet-stream":    {},
	"text/plain":                  {},
	"image/jpeg":                  {},
	"image/png":                   {},
}

func allowedUpload(fileName, contentType string) bool {
	ext := strings.ToLower(filepath.Ext(fileName))
	if _, ok := allowedUploadExts[ext]; !ok {
		return false
	}
	mime := contentType
	if i := strings.Index(mime, ";"); i >= 0 {
		mime = mime[:i]
	}
	_, ok := allowedUploadMimes[strings.TrimSpace(mime)]
	return ok
}

func storageFileName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return fmt.Sprintf("document-%d-%d%s", time.Now().UnixNano(), rand.Int63n(1_000_000_000), ext)
}

// NewUploadHandler returns an HTTP handler for single-file document upload.
// The blob is written to the object store before the database insert; if
// the insert fails the blob is removed again.
// @Summary Upload a document
// @Description Attaches a single file to one of the caller's projects. Accepts pdf, doc, docx, txt, jpg, jpeg, png and pages files.
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param document formData file true "File to upload"
// @Param projectId formData string true "Target project ID"
// @Success 201 {object} handlers.UploadResponse "Document successfully uploaded"
// @Failure 400 {object} handlers.ErrorResponse "No file, missing project ID or disallowed file type"
// @Failure 403 {object} handlers.ErrorResponse "Project not found or access denied"
// @Router /upload [post]
func NewUploadHandler(svc DocumentUploader, storage BlobStorage, maxFileSize int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Access denied. No token provided.")
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxFileSize)
		if err := r.ParseMultipartForm(maxFileSize); err != nil {
			writeError(w, http.StatusBadRequest, "File too large or malformed form")
			return
		}

		rawProjectID := r.FormValue("projectId")
		if rawProjectID == "" {
			writeError(w, http.StatusBadRequest, "Project ID is required")
			return
		}
		projectID, err := uuid.Parse(rawProjectID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid project ID")
			return
		}

		file, header, err := r.FormFile("document")
		if err != nil {
			writeError(w, http.StatusBadRequest, "No file uploaded")
			return
		}
		defer file.Close()

		contentType := header.Header.Get("Content-Type")
		if !allowedUpload(header.Filename, contentType) {
			writeError(w, http.StatusBadRequest, "Invalid file type. Only documents and images allowed.")
			return
		}

		fileName := storageFileName(header.Filename)
		path, err := storage.Put(r.Context(), fileName, file, header.Size, contentType)
		if err != nil {
			logger.Log.Errorw("failed to store blob", "fileName", fileName, "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		doc, err := svc.Upload(r.Context(), claims.UserID, projectID, models.BlobDescriptor{
			FileName:     fileName,
			OriginalName: header.Filename,
			Path:         path,
			MimeType:     contentType,
			Size:         header.Size,
		})
		if err != nil {
			// The insert did not happen, remove the blob again.
			if rmErr := storage.Remove(r.Context(), fileName); rmErr != nil {
				logger.Log.Errorw("failed to remove orphaned blob", "fileName", fileName, "err", rmErr)
			}
			if errors.Is(err, services.ErrProjectAccessDenied) {
				writeError(w, http.StatusForbidden, "Project not found or access denied")
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusCreated, UploadResponse{
			Message:  "Document uploaded successfully",
			Document: doc,
		})
	}
}
