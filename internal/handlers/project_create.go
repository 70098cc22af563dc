package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/projecthub/backend/internal/logger"
	"github.com/projecthub/backend/internal/middlewares"
	"github.com/projecthub/backend/internal/models"
	"github.com/projecthub/backend/internal/services"
)

// ProjectCreator defines the interface that the project service must implement.
type ProjectCreator interface {
	Create(ctx context.Context, userID uuid.UUID, title string, description *string, startDate, endDate *time.Time, status string) (*models.ProjectDB, error)
}

// CreateProjectRequest represents the JSON body for project creation
// swagger:model CreateProjectRequest
type CreateProjectRequest struct {
	// Title
	// required: true
	// default: Website redesign
	Title string `json:"title"`

	// Description
	Description *string `json:"description"`

	// Start date, YYYY-MM-DD or RFC 3339
	StartDate *string `json:"startDate"`

	// End date, YYYY-MM-DD or RFC 3339
	EndDate *string `json:"endDate"`

	// Status: active, completed or onhold. Defaults to active.
	Status string `json:"status"`
}

// CreateProjectResponse represents a successful project creation response
// swagger:model CreateProjectResponse
type CreateProjectResponse struct {
	// Success message
	// default: Project created successfully
	Message string `json:"message"`

	// Created project ID
	ProjectID uuid.UUID `json:"projectId"`
}

// NewProjectCreateHandler returns an HTTP handler for project creation.
// @Summary Create a project
// @Description Creates a project owned by the authenticated user and records a CREATE audit entry in the same transaction.
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param createProjectRequest body handlers.CreateProjectRequest true "Project creation request"
// @Success 201 {object} handlers.CreateProjectResponse "Project successfully created"
// @Failure 400 {object} handlers.ErrorResponse "Validation failed"
// @Failure 401 {object} handlers.ErrorResponse "Missing or expired token"
// @Router /projects [post]
func NewProjectCreateHandler(svc ProjectCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Access denied. No token provided.")
			return
		}

		var req CreateProjectRequest
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

		project, err := svc.Create(r.Context(), claims.UserID, req.Title, req.Description, startDate, endDate, req.Status)
		if err != nil {
			if vErr := services.AsValidationError(err); vErr != nil {
				writeError(w, http.StatusBadRequest, vErr.Message)
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusCreated, CreateProjectResponse{
			Message:   "Project created successfully",
			ProjectID: project.ProjectID,
		})
	}
}
