package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/projecthub/backend/internal/logger"
	"github.com/projecthub/backend/internal/middlewares"
	"github.com/projecthub/backend/internal/models"
	"github.com/projecthub/backend/internal/services"
)

// ProjectUpdater defines the interface that the project service must implement.
type ProjectUpdater interface {
	Update(ctx context.Context, userID, projectID uuid.UUID, upd models.ProjectUpdate) (*models.ProjectDB, error)
}

// UpdateProjectRequest represents a partial project update; omitted fields
// keep their stored values.
// swagger:model UpdateProjectRequest
type UpdateProjectRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	StartDate   *string `json:"startDate"`
	EndDate     *string `json:"endDate"`
	Status      *string `json:"status"`
}

// UpdateProjectResponse represents a successful project update response
// swagger:model UpdateProjectResponse
type UpdateProjectResponse struct {
	// Success message
	// default: Project updated successfully
	Message string `json:"message"`

	// Updated project
	Project *models.ProjectDB `json:"project"`
}

// NewProjectUpdateHandler returns an HTTP handler for project updates.
// @Summary Update a project
// @Description Applies a partial update to an owned project and records an UPDATE audit entry in the same transaction.
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Param updateProjectRequest body handlers.UpdateProjectRequest true "Fields to update"
// @Success 200 {object} handlers.UpdateProjectResponse "Project successfully updated"
// @Failure 400 {object} handlers.ErrorResponse "Validation failed"
// @Failure 403 {object} handlers.ErrorResponse "Project owned by another user"
// @Failure 404 {object} handlers.ErrorResponse "Project not found"
// @Router /projects/{id} [put]
func NewProjectUpdateHandler(svc ProjectUpdater) http.HandlerFunc {
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

		var req UpdateProjectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		startDate, err := parseOptionalDate(req.StartDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid start date")
			return
		}
		endDate, err := parseOptionalDate(req.EndDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid end date")
			return
		}

		project, err := svc.Update(r.Context(), claims.UserID, projectID, models.ProjectUpdate{
			Title:       req.Title,
			Description: req.Description,
			StartDate:   startDate,
			EndDate:     endDate,
			Status:      req.Status,
		})
		if err != nil {
			if vErr := services.AsValidationError(err); vErr != nil {
				writeError(w, http.StatusBadRequest, vErr.Message)
				return
			}
			switch {
			case errors.Is(err, services.ErrProjectNotFound):
				writeError(w, http.StatusNotFound, "Project not found.")
			case errors.Is(err, services.ErrProjectForbidden):
				writeError(w, http.StatusForbidden, "Unauthorized to update this project.")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, UpdateProjectResponse{
			Message: "Project updated successfully",
			Project: project,
		})
	}
}
