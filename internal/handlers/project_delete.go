package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/projecthub/backend/internal/logger"
	"github.com/projecthub/backend/internal/middlewares"
	"github.com/projecthub/backend/internal/services"
)

// ProjectDeleter defines the interface that the project service must implement.
type ProjectDeleter interface {
	Delete(ctx context.Context, userID, projectID uuid.UUID) error
}

// DeleteProjectResponse represents a successful project deletion response
// swagger:model DeleteProjectResponse
type DeleteProjectResponse struct {
	// Success message
	// default: Project deleted successfully
	Message string `json:"message"`
}

// NewProjectDeleteHandler returns an HTTP handler for project deletion.
// @Summary Delete a project
// @Description Soft-deletes an owned project and records a DELETE audit entry in the same transaction. The row is kept with a deletion timestamp.
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Success 200 {object} handlers.DeleteProjectResponse "Project successfully deleted"
// @Failure 403 {object} handlers.ErrorResponse "Project owned by another user"
// @Failure 404 {object} handlers.ErrorResponse "Project not found"
// @Router /projects/{id} [delete]
func NewProjectDeleteHandler(svc ProjectDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Access denied. No token provided.")
			return
		}

		projectID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid project ID")
			return
		}

		if err := svc.Delete(r.Context(), claims.UserID, projectID); err != nil {
			switch {
			case errors.Is(err, services.ErrProjectNotFound):
				writeError(w, http.StatusNotFound, "Project not found.")
			case errors.Is(err, services.ErrProjectForbidden):
				writeError(w, http.StatusForbidden, "Unauthorized to delete this project.")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, DeleteProjectResponse{
			Message: "Project deleted successfully",
		})
	}
}
