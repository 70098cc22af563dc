package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/projecthub/backend/internal/logger"
	"github.com/projecthub/backend/internal/models"
)

// ProjectReader defines read operations for projects.
type ProjectReader interface {
	GetByID(ctx context.Context, projectID uuid.UUID) (*models.ProjectDB, error)
	List(ctx context.Context, userID uuid.UUID, q models.ProjectListQuery) (*models.ProjectPage, error)
}

// ProjectWriter defines write operations for projects.
type ProjectWriter interface {
	Save(ctx context.Context, project models.ProjectDB) error
	Update(ctx context.Context, project models.ProjectDB) error
	SoftDelete(ctx context.Context, projectID uuid.UUID, when time.Time) error
}

// AuditLogWriter appends audit entries in the mutation's transaction.
type AuditLogWriter interface {
	Save(ctx context.Context, entry models.AuditLogDB) error
}

// ProjectListCache caches list pages per owner.
type ProjectListCache interface {
	GetPage(ctx context.Context, userID uuid.UUID, q models.ProjectListQuery) (*models.ProjectPage, error)
	SetPage(ctx context.Context, userID uuid.UUID, q models.ProjectListQuery, page *models.ProjectPage) error
	Invalidate(ctx context.Context, userID uuid.UUID) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

const (
	defaultListLimit = 10
	maxListLimit     = 50
)

var validStatuses = map[string]struct{}{
	models.StatusActive:    {},
	models.StatusCompleted: {},
	models.StatusOnHold:    {},
}

// ProjectService implements project CRUD with ownership enforcement and an
// audit trail. Mutations expect a request-scoped transaction in the
// context; the audit entry rides the same transaction as the mutation.
type ProjectService struct {
	readRepo    ProjectReader
	writeRepo   ProjectWriter
	auditRepo   AuditLogWriter
	cache       ProjectListCache
	kafkaWriter KafkaWriter
}

// NewProjectService creates a new ProjectService. cache and kafkaWriter
// may be nil, which disables list caching and audit-event publishing.
func NewProjectService(
	readRepo ProjectReader,
	writeRepo ProjectWriter,
	auditRepo AuditLogWriter,
	cache ProjectListCache,
	kafkaWriter KafkaWriter,
) *ProjectService {
	return &ProjectService{
		readRepo:    readRepo,
		writeRepo:   writeRepo,
		auditRepo:   auditRepo,
		cache:       cache,
		kafkaWriter: kafkaWriter,
	}
}

func validateProjectFields(title string, description *string, startDate, endDate *time.Time, status string) error {
	if title == "" {
		return newValidationError("Title is required")
	}
	if len(title) > 100 {
		return newValidationError("Title must be at most 100 characters")
	}
	if description != nil && len(*description) > 1000 {
		return newValidationError("Description must be at most 1000 characters")
	}
	if startDate != nil && endDate != nil && endDate.Before(*startDate) {
		return newValidationError("End date must be after start date")
	}
	if _, ok := validStatuses[status]; !ok {
		return newValidationError("Invalid status")
	}
	return nil
}

// publishAuditEvent publishes an audit entry to Kafka, fire and forget.
// The database row written in the mutation's transaction stays the source
// of truth; a publish failure is only logged.
func (s *ProjectService) publishAuditEvent(ctx context.Context, entry models.AuditLogDB) {
	if s.kafkaWriter == nil {
		return
	}

	data, err := json.Marshal(entry)
	if err != nil {
		logger.Log.Errorw("failed to marshal audit event", "auditID", entry.AuditID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(entry.EntityID.String()),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish audit event", "auditID", entry.AuditID, "error", err)
	}
}

func (s *ProjectService) invalidateListCache(ctx context.Context, userID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, userID); err != nil {
		logger.Log.Errorw("failed to invalidate project list cache", "userID", userID, "error", err)
	}
}

// Create validates the input and inserts the project together with its
// CREATE audit entry.
func (s *ProjectService) Create(
	ctx context.Context,
	userID uuid.UUID,
	title string,
	description *string,
	startDate, endDate *time.Time,
	status string,
) (*models.ProjectDB, error) {
	if status == "" {
		status = models.StatusActive
	}
	if err := validateProjectFields(title, description, startDate, endDate, status); err != nil {
		return nil, err
	}

	now := time.Now()
	project := models.ProjectDB{
		ProjectID:   uuid.New(),
		UserID:      userID,
		Title:       title,
		Description: description,
		StartDate:   startDate,
		EndDate:     endDate,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.writeRepo.Save(ctx, project); err != nil {
		logger.Log.Errorw("failed to save project", "userID", userID, "error", err)
		return nil, err
	}

	entry, err := s.auditEntry(userID, models.AuditActionCreate, project.ProjectID, project.Title, now)
	if err != nil {
		return nil, err
	}
	if err := s.auditRepo.Save(ctx, entry); err != nil {
		return nil, err
	}

	s.invalidateListCache(ctx, userID)
	s.publishAuditEvent(ctx, entry)

	logger.Log.Infow("project created", "projectID", project.ProjectID, "userID", userID)
	return &project, nil
}

func (s *ProjectService) auditEntry(userID uuid.UUID, action string, projectID uuid.UUID, title string, when time.Time) (models.AuditLogDB, error) {
	details, err := json.Marshal(map[string]string{"title": title})
	if err != nil {
		return models.AuditLogDB{}, err
	}
	return models.AuditLogDB{
		AuditID:   uuid.New(),
		UserID:    userID,
		Action:    action,
		Entity:    models.AuditEntityProject,
		EntityID:  projectID,
		Details:   string(details),
		CreatedAt: when,
	}, nil
}

// List validates the query parameters and returns one page of the owner's
// projects, consulting the cache first.
func (s *ProjectService) List(ctx context.Context, userID uuid.UUID, q models.ProjectListQuery) (*models.ProjectPage, error) {
	if q.Limit == 0 {
		q.Limit = defaultListLimit
	}
	if q.Limit < 1 || q.Limit > maxListLimit {
		return nil, newValidationError("Limit must be between 1 and 50")
	}
	if q.SortBy == "" {
		q.SortBy = "createdAt"
	}
	validSortBy := map[string]struct{}{"createdAt": {}, "updatedAt": {}, "title": {}, "status": {}}
	if _, ok := validSortBy[q.SortBy]; !ok {
		return nil, newValidationError("Invalid sortBy field")
	}
	if q.SortOrder == "" {
		q.SortOrder = models.SortDesc
	}
	if q.SortOrder != models.SortAsc && q.SortOrder != models.SortDesc {
		return nil, newValidationError("Invalid sortOrder, use asc or desc")
	}
	if q.Status != nil {
		if _, ok := validStatuses[*q.Status]; !ok {
			return nil, newValidationError("Invalid status filter")
		}
	}

	if s.cache != nil {
		page, err := s.cache.GetPage(ctx, userID, q)
		if err != nil {
			logger.Log.Errorw("project list cache read failed", "userID", userID, "error", err)
		} else if page != nil {
			return page, nil
		}
	}

	page, err := s.readRepo.List(ctx, userID, q)
	if err != nil {
		logger.Log.Errorw("failed to list projects", "userID", userID, "error", err)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetPage(ctx, userID, q, page); err != nil {
			logger.Log.Errorw("project list cache write failed", "userID", userID, "error", err)
		}
	}

	return page, nil
}

// Update applies a partial update to an owned project and appends the
// UPDATE audit entry. A missing or soft-deleted project is NotFound;
// a project owned by someone else is Forbidden.
func (s *ProjectService) Update(ctx context.Context, userID, projectID uuid.UUID, upd models.ProjectUpdate) (*models.ProjectDB, error) {
	existing, err := s.readRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrProjectNotFound
	}
	if existing.UserID != userID {
		logger.Log.Infow("update rejected: not the owner", "projectID", projectID, "userID", userID)
		return nil, ErrProjectForbidden
	}

	merged := *existing
	if upd.Title != nil {
		merged.Title = *upd.Title
	}
	if upd.Description != nil {
		merged.Description = upd.Description
	}
	if upd.StartDate != nil {
		merged.StartDate = upd.StartDate
	}
	if upd.EndDate != nil {
		merged.EndDate = upd.EndDate
	}
	if upd.Status != nil {
		merged.Status = *upd.Status
	}

	// Date ordering is re-checked against the merged result, so an update
	// cannot smuggle in an end date before an existing start date.
	if err := validateProjectFields(merged.Title, merged.Description, merged.StartDate, merged.EndDate, merged.Status); err != nil {
		return nil, err
	}

	now := time.Now()
	merged.UpdatedAt = now

	if err := s.writeRepo.Update(ctx, merged); err != nil {
		logger.Log.Errorw("failed to update project", "projectID", projectID, "userID", userID, "error", err)
		return nil, err
	}

	entry, err := s.auditEntry(userID, models.AuditActionUpdate, projectID, merged.Title, now)
	if err != nil {
		return nil, err
	}
	if err := s.auditRepo.Save(ctx, entry); err != nil {
		return nil, err
	}

	s.invalidateListCache(ctx, userID)
	s.publishAuditEvent(ctx, entry)

	logger.Log.Infow("project updated", "projectID", projectID, "userID", userID)
	return &merged, nil
}

// Delete soft-deletes an owned project and appends the DELETE audit entry
// capturing the pre-deletion title. Precedence matches Update: NotFound
// before Forbidden, and a soft-deleted project is already NotFound.
func (s *ProjectService) Delete(ctx context.Context, userID, projectID uuid.UUID) error {
	existing, err := s.readRepo.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrProjectNotFound
	}
	if existing.UserID != userID {
		logger.Log.Infow("delete rejected: not the owner", "projectID", projectID, "userID", userID)
		return ErrProjectForbidden
	}

	now := time.Now()
	if err := s.writeRepo.SoftDelete(ctx, projectID, now); err != nil {
		logger.Log.Errorw("failed to soft delete project", "projectID", projectID, "userID", userID, "error", err)
		return err
	}

	entry, err := s.auditEntry(userID, models.AuditActionDelete, projectID, existing.Title, now)
	if err != nil {
		return err
	}
	if err := s.auditRepo.Save(ctx, entry); err != nil {
		return err
	}

	s.invalidateListCache(ctx, userID)
	s.publishAuditEvent(ctx, entry)

	logger.Log.Infow("project soft deleted", "projectID", projectID, "userID", userID)
	return nil
}
