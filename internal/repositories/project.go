package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/projecthub/backend/internal/logger"
	"github.com/projecthub/backend/internal/models"
)

// ErrUnknownSortField is returned for a sort field outside the allow-list.
// Listing parameters are validated before the repository is reached, so
// hitting this means a programming error, not bad user input.
var ErrUnknownSortField = errors.New("unknown sort field")

// SortColumns maps the accepted sort fields to their SQL columns. Only
// values from this map are ever interpolated into a query.
var SortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"title":     "title",
	"status":    "status",
}

const projectColumns = "project_id, user_id, title, description, start_date, end_date, status, created_at, updated_at, deleted_at"

// ProjectReadRepository reads projects. Lookups that feed ownership
// decisions resolve their executor through txGetter so the check happens
// inside the request's transaction.
type ProjectReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewProjectReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ProjectReadRepository {
	return &ProjectReadRepository{db: db, txGetter: txGetter}
}

func (r *ProjectReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// GetByID returns the project with the given id, or nil when it does not
// exist. Soft-deleted projects are treated as missing.
func (r *ProjectReadRepository) GetByID(ctx context.Context, projectID uuid.UUID) (*models.ProjectDB, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM projects
		WHERE project_id = $1 AND deleted_at IS NULL
	`, projectColumns)

	var project models.ProjectDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &project, query, projectID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("project lookup failed", "projectID", projectID, "error", err)
		return nil, err
	}

	return &project, nil
}

// List returns one keyset-paginated page of the owner's projects, ordered
// by the requested sort field with the project id as tie-breaker. It
// fetches limit+1 rows to detect a following page and probes one row in
// the reverse direction to locate the previous cursor.
func (r *ProjectReadRepository) List(ctx context.Context, userID uuid.UUID, q models.ProjectListQuery) (*models.ProjectPage, error) {
	column, ok := SortColumns[q.SortBy]
	if !ok {
		return nil, ErrUnknownSortField
	}

	direction := "ASC"
	comparator := ">"
	if q.SortOrder == models.SortDesc {
		direction = "DESC"
		comparator = "<"
	}

	where := "user_id = $1 AND deleted_at IS NULL"
	args := []any{userID}
	if q.Status != nil {
		args = append(args, *q.Status)
		where += fmt.Sprintf(" AND status = $%d", len(args))
	}

	filterArgs := len(args)

	query := fmt.Sprintf(`
		SELECT %s
		FROM projects
		WHERE %s
		ORDER BY %s %s, project_id %s
		LIMIT $%d
	`, projectColumns, where, column, direction, direction, filterArgs+1)
	queryArgs := append(append([]any{}, args...), q.Limit+1)

	if q.Cursor != nil {
		query = fmt.Sprintf(`
			SELECT %s
			FROM projects
			WHERE %s
			  AND (%s, project_id) %s (SELECT %s, project_id FROM projects WHERE project_id = $%d)
			ORDER BY %s %s, project_id %s
			LIMIT $%d
		`, projectColumns, where, column, comparator, column, filterArgs+1, column, direction, direction, filterArgs+2)
		queryArgs = append(append([]any{}, args...), *q.Cursor, q.Limit+1)
	}

	var items []models.ProjectDB
	err := sqlx.SelectContext(ctx, r.executor(ctx), &items, query, queryArgs...)

	logger.Log.Debugw("project list",
		"query", strings.Join(strings.Fields(query), " "),
		"userID", userID,
		"rows", len(items),
		"error", err,
	)
	if err != nil {
		return nil, err
	}

	page := &models.ProjectPage{
		Items:           items,
		Limit:           q.Limit,
		HasPreviousPage: q.Cursor != nil,
	}

	if len(items) > q.Limit {
		page.Items = items[:q.Limit]
		page.HasNextPage = true
	}
	if page.HasNextPage && len(page.Items) > 0 {
		last := page.Items[len(page.Items)-1].ProjectID
		page.NextCursor = &last
	}

	if q.Cursor != nil {
		prev, err := r.previousCursor(ctx, column, direction, comparator, where, args, *q.Cursor)
		if err != nil {
			return nil, err
		}
		page.PreviousCursor = prev
	}

	return page, nil
}

// previousCursor probes one row in the reverse sort direction before the
// cursor row.
func (r *ProjectReadRepository) previousCursor(
	ctx context.Context,
	column, direction, comparator, where string,
	args []any,
	cursor uuid.UUID,
) (*uuid.UUID, error) {
	revDirection := "DESC"
	if direction == "DESC" {
		revDirection = "ASC"
	}
	revComparator := "<"
	if comparator == "<" {
		revComparator = ">"
	}

	query := fmt.Sprintf(`
		SELECT project_id
		FROM projects
		WHERE %s
		  AND (%s, project_id) %s (SELECT %s, project_id FROM projects WHERE project_id = $%d)
		ORDER BY %s %s, project_id %s
		LIMIT 1
	`, where, column, revComparator, column, len(args)+1, column, revDirection, revDirection)
	queryArgs := append(append([]any{}, args...), cursor)

	var prev uuid.UUID
	err := sqlx.GetContext(ctx, r.executor(ctx), &prev, query, queryArgs...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &prev, nil
}

// ProjectWriteRepository handles project mutations inside the request's
// transaction.
type ProjectWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewProjectWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ProjectWriteRepository {
	return &ProjectWriteRepository{db: db, txGetter: txGetter}
}

func (r *ProjectWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new project.
func (r *ProjectWriteRepository) Save(ctx context.Context, project models.ProjectDB) error {
	const query = `
		INSERT INTO projects (project_id, user_id, title, description, start_date, end_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	args := []any{
		project.ProjectID, project.UserID, project.Title, project.Description,
		project.StartDate, project.EndDate, project.Status,
		project.CreatedAt, project.UpdatedAt,
	}

	_, err := r.executor(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		logger.Log.Errorw("project insert failed", "projectID", project.ProjectID, "error", err)
	}
	return err
}

// Update rewrites the mutable fields of a project. The owner and creation
// timestamp are never touched.
func (r *ProjectWriteRepository) Update(ctx context.Context, project models.ProjectDB) error {
	const query = `
		UPDATE projects
		SET title = $2, description = $3, start_date = $4, end_date = $5, status = $6, updated_at = $7
		WHERE project_id = $1 AND deleted_at IS NULL
	`
	args := []any{
		project.ProjectID, project.Title, project.Description,
		project.StartDate, project.EndDate, project.Status, project.UpdatedAt,
	}

	_, err := r.executor(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		logger.Log.Errorw("project update failed", "projectID", project.ProjectID, "error", err)
	}
	return err
}

// SoftDelete marks a project as deleted without removing the row.
func (r *ProjectWriteRepository) SoftDelete(ctx context.Context, projectID uuid.UUID, when time.Time) error {
	const query = `
		UPDATE projects SET deleted_at = $2, updated_at = $2
		WHERE project_id = $1 AND deleted_at IS NULL
	`

	_, err := r.executor(ctx).ExecContext(ctx, query, projectID, when)
	if err != nil {
		logger.Log.Errorw("project soft delete failed", "projectID", projectID, "error", err)
	}
	return err
}
