package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/projecthub/backend/internal/logger"
	"github.com/projecthub/backend/internal/models"
)

// ProjectListCacheRepository caches project list pages in Redis. Keys carry
// a per-owner version stamp; every mutation bumps the version, so a stale
// page can never be served after a create, update or delete.
type ProjectListCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

func NewProjectListCacheRepository(client *redis.Client, expiration time.Duration) *ProjectListCacheRepository {
	return &ProjectListCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func versionKey(userID uuid.UUID) string {
	return fmt.Sprintf("projects:ver:%s", userID)
}

func (r *ProjectListCacheRepository) version(ctx context.Context, userID uuid.UUID) (int64, error) {
	val, err := r.client.Get(ctx, versionKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(val, 10, 64)
}

func (r *ProjectListCacheRepository) pageKey(userID uuid.UUID, version int64, q models.ProjectListQuery) string {
	cursor := ""
	if q.Cursor != nil {
		cursor = q.Cursor.String()
	}
	status := ""
	if q.Status != nil {
		status = *q.Status
	}
	return fmt.Sprintf("projects:%s:v%d:%s:%d:%s:%s:%s",
		userID, version, cursor, q.Limit, q.SortBy, q.SortOrder, status)
}

// GetPage returns a cached page, or nil on a miss.
func (r *ProjectListCacheRepository) GetPage(ctx context.Context, userID uuid.UUID, q models.ProjectListQuery) (*models.ProjectPage, error) {
	version, err := r.version(ctx, userID)
	if err != nil {
		return nil, err
	}

	key := r.pageKey(userID, version, q)
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		logger.Log.Debugw("project list cache miss", "key", key)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var page models.ProjectPage
	if err := json.Unmarshal([]byte(val), &page); err != nil {
		return nil, err
	}

	logger.Log.Debugw("project list cache hit", "key", key)
	return &page, nil
}

// SetPage stores a page under the owner's current version.
func (r *ProjectListCacheRepository) SetPage(ctx context.Context, userID uuid.UUID, q models.ProjectListQuery, page *models.ProjectPage) error {
	version, err := r.version(ctx, userID)
	if err != nil {
		return err
	}

	data, err := json.Marshal(page)
	if err != nil {
		return err
	}

	return r.client.Set(ctx, r.pageKey(userID, version, q), data, r.exp).Err()
}

// Invalidate bumps the owner's version, orphaning all cached pages.
func (r *ProjectListCacheRepository) Invalidate(ctx context.Context, userID uuid.UUID) error {
	return r.client.Incr(ctx, versionKey(userID)).Err()
}
