package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/projecthub/backend/internal/logger"
	"github.com/projecthub/backend/internal/middlewares"
	"github.com/projecthub/backend/internal/models"
	"github.com/projecthub/backend/internal/services"
)

// ProjectLister defines the interface that the project service must implement.
type ProjectLister interface {
	List(ctx context.Context, userID uuid.UUID, q models.ProjectListQuery) (*models.ProjectPage, error)
}

// Pagination describes the page size and the cursors around the returned page.
// swagger:model Pagination
type Pagination struct {
	Limit           int        `json:"limit"`
	HasNextPage     bool       `json:"hasNextPage"`
	HasPreviousPage bool       `json:"hasPreviousPage"`
	NextCursor      *uuid.UUID `json:"nextCursor"`
	PreviousCursor  *uuid.UUID `json:"previousCursor"`
}

// ListProjectsResponse represents one page of the caller's projects
// swagger:model ListProjectsResponse
type ListProjectsResponse struct {
	Projects   []models.ProjectDB `json:"projects"`
	Pagination Pagination         `json:"pagination"`
}

// NewProjectListHandler returns an HTTP handler for listing projects.
// @Summary List projects
// @Description Returns the authenticated user's live projects one keyset page at a time.
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param cursor query string false "Project ID to continue after"
// @Param limit query int false "Page size, 1-50" default(10)
// @Param sortBy query string false "createdAt, updatedAt, title or status" default(createdAt)
// @Param sortOrder query string false "asc or desc" default(desc)
// @Param status query string false "Filter by status"
// @Success 200 {object} handlers.ListProjectsResponse "One page of projects"
// @Failure 400 {object} handlers.ErrorResponse "Invalid query parameter"
// @Failure 401 {object} handlers.ErrorResponse "Missing or expired token"
// @Router /projects [get]
func NewProjectListHandler(svc ProjectLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Access denied. No token provided.")
			return
		}

		var q models.ProjectListQuery

		if raw := r.URL.Query().Get("cursor"); raw != "" {
			cursor, err := uuid.Parse(raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, "Invalid cursor value")
				return
			}
			q.Cursor = &cursor
		}
		if raw := r.URL.Query().Get("limit"); raw != "" {
			limit, err := strconv.Atoi(raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, "Limit must be between 1 and 50")
				return
			}
			q.Limit = limit
		}
		q.SortBy = r.URL.Query().Get("sortBy")
		q.SortOrder = r.URL.Query().Get("sortOrder")
		if raw := r.URL.Query().Get("status"); raw != "" {
			q.Status = &raw
		}

		page, err := svc.List(r.Context(), claims.UserID, q)
		if err != nil {
			if vErr := services.AsValidationError(err); vErr != nil {
				writeError(w, http.StatusBadRequest, vErr.Message)
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		// Items is never null in the response, even for an empty page.
		projects := page.Items
		if projects == nil {
			projects = []models.ProjectDB{}
		}

		writeJSON(w, http.StatusOK, ListProjectsResponse{
			Projects: projects,
			Pagination: Pagination{
				Limit:           page.Limit,
				HasNextPage:     page.HasNextPage,
				HasPreviousPage: page.HasPreviousPage,
				NextCursor:      page.NextCursor,
				PreviousCursor:  page.PreviousCursor,
			},
		})
	}
}
