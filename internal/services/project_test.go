package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projecthub/backend/internal/models"
)

func datePtr(t *testing.T, s string) *time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return &d
}

func TestProjectService_Create_Validation(t *testing.T) {
	longTitle := make([]byte, 101)
	for i := range longTitle {
		longTitle[i] = 'x'
	}
	longDesc := make([]byte, 1001)
	for i := range longDesc {
		longDesc[i] = 'x'
	}

	tests := []struct {
		name        string
		title       string
		description *string
		startDate   *time.Time
		endDate     *time.Time
		status      string
		wantMsg     string
	}{
		{
			name:    "empty title",
			title:   "",
			wantMsg: "Title is required",
		},
		{
			name:    "title too long",
			title:   string(longTitle),
			wantMsg: "Title must be at most 100 characters",
		},
		{
			name:        "description too long",
			title:       "Website redesign",
			description: strPtr(string(longDesc)),
			wantMsg:     "Description must be at most 1000 characters",
		},
		{
			name:      "end date before start date",
			title:     "Website redesign",
			startDate: datePtr(t, "2026-03-01"),
			endDate:   datePtr(t, "2026-02-01"),
			wantMsg:   "End date must be after start date",
		},
		{
			name:    "unknown status",
			title:   "Website redesign",
			status:  "archived",
			wantMsg: "Invalid status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewProjectService(
				NewMockProjectReader(ctrl),
				NewMockProjectWriter(ctrl),
				NewMockAuditLogWriter(ctrl),
				nil, nil,
			)

			project, err := svc.Create(context.Background(), uuid.New(), tt.title, tt.description, tt.startDate, tt.endDate, tt.status)

			assert.Nil(t, project)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantMsg, vErr.Message)
		})
	}
}

func TestProjectService_Create_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	writer := NewMockProjectWriter(ctrl)
	var saved models.ProjectDB
	writer.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, p models.ProjectDB) error {
			saved = p
			return nil
		})

	audit := NewMockAuditLogWriter(ctrl)
	var entry models.AuditLogDB
	audit.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, e models.AuditLogDB) error {
			entry = e
			return nil
		})

	svc := NewProjectService(NewMockProjectReader(ctrl), writer, audit, nil, nil)

	project, err := svc.Create(context.Background(), userID, "Website redesign", strPtr("full rebrand"), nil, nil, "")
	require.NoError(t, err)
	require.NotNil(t, project)

	assert.Equal(t, saved.ProjectID, project.ProjectID)
	assert.Equal(t, userID, project.UserID)
	// Status defaults to active when omitted.
	assert.Equal(t, models.StatusActive, project.Status)

	assert.Equal(t, models.AuditActionCreate, entry.Action)
	assert.Equal(t, models.AuditEntityProject, entry.Entity)
	assert.Equal(t, project.ProjectID, entry.EntityID)
	assert.Equal(t, userID, entry.UserID)

	var details map[string]string
	require.NoError(t, json.Unmarshal([]byte(entry.Details), &details))
	assert.Equal(t, "Website redesign", details["title"])
}

func TestProjectService_Create_AuditSaveError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockProjectWriter(ctrl)
	writer.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	wantErr := errors.New("audit insert failed")
	audit := NewMockAuditLogWriter(ctrl)
	audit.EXPECT().Save(gomock.Any(), gomock.Any()).Return(wantErr)

	svc := NewProjectService(NewMockProjectReader(ctrl), writer, audit, nil, nil)

	_, err := svc.Create(context.Background(), uuid.New(), "Website redesign", nil, nil, nil, models.StatusActive)
	assert.ErrorIs(t, err, wantErr)
}

func TestProjectService_List_Validation(t *testing.T) {
	badSort := "createdAt; DROP TABLE projects"
	badStatus := "archived"

	tests := []struct {
		name    string
		query   models.ProjectListQuery
		wantMsg string
	}{
		{
			name:    "limit too large",
			query:   models.ProjectListQuery{Limit: 51},
			wantMsg: "Limit must be between 1 and 50",
		},
		{
			name:    "negative limit",
			query:   models.ProjectListQuery{Limit: -1},
			wantMsg: "Limit must be between 1 and 50",
		},
		{
			name:    "sortBy outside the allow list",
			query:   models.ProjectListQuery{SortBy: badSort},
			wantMsg: "Invalid sortBy field",
		},
		{
			name:    "bad sort order",
			query:   models.ProjectListQuery{SortOrder: "sideways"},
			wantMsg: "Invalid sortOrder, use asc or desc",
		},
		{
			name:    "bad status filter",
			query:   models.ProjectListQuery{Status: &badStatus},
			wantMsg: "Invalid status filter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewProjectService(
				NewMockProjectReader(ctrl),
				NewMockProjectWriter(ctrl),
				NewMockAuditLogWriter(ctrl),
				nil, nil,
			)

			page, err := svc.List(context.Background(), uuid.New(), tt.query)

			assert.Nil(t, page)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantMsg, vErr.Message)
		})
	}
}

func TestProjectService_List_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	want := &models.ProjectPage{Items: []models.ProjectDB{{ProjectID: uuid.New()}}}

	reader := NewMockProjectReader(ctrl)
	reader.EXPECT().
		List(gomock.Any(), userID, models.ProjectListQuery{
			Limit:     10,
			SortBy:    "createdAt",
			SortOrder: models.SortDesc,
		}).
		Return(want, nil)

	svc := NewProjectService(reader, NewMockProjectWriter(ctrl), NewMockAuditLogWriter(ctrl), nil, nil)

	page, err := svc.List(context.Background(), userID, models.ProjectListQuery{})
	require.NoError(t, err)
	assert.Equal(t, want, page)
}

func TestProjectService_List_CacheHitSkipsRepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	cached := &models.ProjectPage{Items: []models.ProjectDB{{ProjectID: uuid.New()}}}

	cache := NewMockProjectListCache(ctrl)
	cache.EXPECT().GetPage(gomock.Any(), userID, gomock.Any()).Return(cached, nil)

	// The reader mock has no expectations: a call would fail the test.
	svc := NewProjectService(NewMockProjectReader(ctrl), NewMockProjectWriter(ctrl), NewMockAuditLogWriter(ctrl), cache, nil)

	page, err := svc.List(context.Background(), userID, models.ProjectListQuery{})
	require.NoError(t, err)
	assert.Equal(t, cached, page)
}

func TestProjectService_List_CacheMissFillsCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	want := &models.ProjectPage{Items: []models.ProjectDB{{ProjectID: uuid.New()}}}

	cache := NewMockProjectListCache(ctrl)
	cache.EXPECT().GetPage(gomock.Any(), userID, gomock.Any()).Return(nil, nil)
	cache.EXPECT().SetPage(gomock.Any(), userID, gomock.Any(), want).Return(nil)

	reader := NewMockProjectReader(ctrl)
	reader.EXPECT().List(gomock.Any(), userID, gomock.Any()).Return(want, nil)

	svc := NewProjectService(reader, NewMockProjectWriter(ctrl), NewMockAuditLogWriter(ctrl), cache, nil)

	page, err := svc.List(context.Background(), userID, models.ProjectListQuery{})
	require.NoError(t, err)
	assert.Equal(t, want, page)
}

func TestProjectService_Update_NotFoundAndForbidden(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()
	projectID := uuid.New()

	tests := []struct {
		name     string
		existing *models.ProjectDB
		caller   uuid.UUID
		wantErr  error
	}{
		{
			name:     "missing project",
			existing: nil,
			caller:   owner,
			wantErr:  ErrProjectNotFound,
		},
		{
			name:     "owned by another user",
			existing: &models.ProjectDB{ProjectID: projectID, UserID: owner, Title: "Website redesign", Status: models.StatusActive},
			caller:   stranger,
			wantErr:  ErrProjectForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			reader := NewMockProjectReader(ctrl)
			reader.EXPECT().GetByID(gomock.Any(), projectID).Return(tt.existing, nil)

			svc := NewProjectService(reader, NewMockProjectWriter(ctrl), NewMockAuditLogWriter(ctrl), nil, nil)

			title := "New title"
			project, err := svc.Update(context.Background(), tt.caller, projectID, models.ProjectUpdate{Title: &title})

			assert.Nil(t, project)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestProjectService_Update_MergedDateValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := uuid.New()
	projectID := uuid.New()
	existing := &models.ProjectDB{
		ProjectID: projectID,
		UserID:    owner,
		Title:     "Website redesign",
		StartDate: datePtr(t, "2026-03-01"),
		Status:    models.StatusActive,
	}

	reader := NewMockProjectReader(ctrl)
	reader.EXPECT().GetByID(gomock.Any(), projectID).Return(existing, nil)

	svc := NewProjectService(reader, NewMockProjectWriter(ctrl), NewMockAuditLogWriter(ctrl), nil, nil)

	// The new end date alone looks fine; only against the stored start
	// date is it out of order.
	project, err := svc.Update(context.Background(), owner, projectID, models.ProjectUpdate{
		EndDate: datePtr(t, "2026-02-01"),
	})

	assert.Nil(t, project)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "End date must be after start date", vErr.Message)
}

func TestProjectService_Update_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := uuid.New()
	projectID := uuid.New()
	existing := &models.ProjectDB{
		ProjectID:   projectID,
		UserID:      owner,
		Title:       "Website redesign",
		Description: strPtr("old description"),
		Status:      models.StatusActive,
	}

	reader := NewMockProjectReader(ctrl)
	reader.EXPECT().GetByID(gomock.Any(), projectID).Return(existing, nil)

	writer := NewMockProjectWriter(ctrl)
	var updated models.ProjectDB
	writer.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, p models.ProjectDB) error {
			updated = p
			return nil
		})

	audit := NewMockAuditLogWriter(ctrl)
	var entry models.AuditLogDB
	audit.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, e models.AuditLogDB) error {
			entry = e
			return nil
		})

	svc := NewProjectService(reader, writer, audit, nil, nil)

	newTitle := "Mobile app"
	newStatus := models.StatusCompleted
	project, err := svc.Update(context.Background(), owner, projectID, models.ProjectUpdate{
		Title:  &newTitle,
		Status: &newStatus,
	})
	require.NoError(t, err)
	require.NotNil(t, project)

	// Untouched fields carry over from the stored row.
	assert.Equal(t, "Mobile app", updated.Title)
	assert.Equal(t, models.StatusCompleted, updated.Status)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "old description", *updated.Description)

	assert.Equal(t, models.AuditActionUpdate, entry.Action)
	assert.Equal(t, projectID, entry.EntityID)
	assert.Contains(t, entry.Details, "Mobile app")
}

func TestProjectService_Delete_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := uuid.New()
	projectID := uuid.New()
	existing := &models.ProjectDB{
		ProjectID: projectID,
		UserID:    owner,
		Title:     "Website redesign",
		Status:    models.StatusActive,
	}

	reader := NewMockProjectReader(ctrl)
	reader.EXPECT().GetByID(gomock.Any(), projectID).Return(existing, nil)

	writer := NewMockProjectWriter(ctrl)
	writer.EXPECT().SoftDelete(gomock.Any(), projectID, gomock.Any()).Return(nil)

	audit := NewMockAuditLogWriter(ctrl)
	var entry models.AuditLogDB
	audit.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, e models.AuditLogDB) error {
			entry = e
			return nil
		})

	svc := NewProjectService(reader, writer, audit, nil, nil)

	require.NoError(t, svc.Delete(context.Background(), owner, projectID))

	assert.Equal(t, models.AuditActionDelete, entry.Action)
	// The audit entry captures the title as it was before deletion.
	assert.Contains(t, entry.Details, "Website redesign")
}

func TestProjectService_Delete_Forbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	projectID := uuid.New()
	existing := &models.ProjectDB{ProjectID: projectID, UserID: uuid.New(), Title: "Website redesign", Status: models.StatusActive}

	reader := NewMockProjectReader(ctrl)
	reader.EXPECT().GetByID(gomock.Any(), projectID).Return(existing, nil)

	svc := NewProjectService(reader, NewMockProjectWriter(ctrl), NewMockAuditLogWriter(ctrl), nil, nil)

	err := svc.Delete(context.Background(), uuid.New(), projectID)
	assert.ErrorIs(t, err, ErrProjectForbidden)
}

func TestProjectService_Mutations_PublishAuditEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	writer := NewMockProjectWriter(ctrl)
	writer.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	audit := NewMockAuditLogWriter(ctrl)
	audit.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	kafkaWriter := NewMockKafkaWriter(ctrl)
	kafkaWriter.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

	cache := NewMockProjectListCache(ctrl)
	cache.EXPECT().Invalidate(gomock.Any(), userID).Return(nil)

	svc := NewProjectService(NewMockProjectReader(ctrl), writer, audit, cache, kafkaWriter)

	_, err := svc.Create(context.Background(), userID, "Website redesign", nil, nil, nil, "")
	require.NoError(t, err)
}

func TestProjectService_Create_PublishFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockProjectWriter(ctrl)
	writer.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	audit := NewMockAuditLogWriter(ctrl)
	audit.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	kafkaWriter := NewMockKafkaWriter(ctrl)
	kafkaWriter.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker unavailable"))

	svc := NewProjectService(NewMockProjectReader(ctrl), writer, audit, nil, kafkaWriter)

	project, err := svc.Create(context.Background(), uuid.New(), "Website redesign", nil, nil, nil, "")
	require.NoError(t, err)
	assert.NotNil(t, project)
}
