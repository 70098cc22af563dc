package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/projecthub/backend/internal/models"
)

func setupRedis(t *testing.T) (*redis.Client, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := redisC.Host(ctx)
	require.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	require.NoError(t, client.Ping(ctx).Err())

	cleanup := func() {
		client.Close()
		redisC.Terminate(ctx)
	}
	return client, cleanup
}

func TestProjectListCacheRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	client, cleanup := setupRedis(t)
	defer cleanup()

	ctx := context.Background()
	repo := NewProjectListCacheRepository(client, time.Minute)

	userID := uuid.New()
	query := models.ProjectListQuery{Limit: 10, SortBy: "createdAt", SortOrder: models.SortDesc}
	page := &models.ProjectPage{
		Items:       []models.ProjectDB{{ProjectID: uuid.New(), UserID: userID, Title: "Website redesign"}},
		HasNextPage: true,
	}

	t.Run("miss then hit", func(t *testing.T) {
		got, err := repo.GetPage(ctx, userID, query)
		require.NoError(t, err)
		assert.Nil(t, got)

		require.NoError(t, repo.SetPage(ctx, userID, query, page))

		got, err = repo.GetPage(ctx, userID, query)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, page.Items[0].ProjectID, got.Items[0].ProjectID)
		assert.True(t, got.HasNextPage)
	})

	t.Run("different query is a different key", func(t *testing.T) {
		other := query
		other.Limit = 20

		got, err := repo.GetPage(ctx, userID, other)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("invalidate orphans cached pages", func(t *testing.T) {
		require.NoError(t, repo.Invalidate(ctx, userID))

		got, err := repo.GetPage(ctx, userID, query)
		require.NoError(t, err)
		assert.Nil(t, got)

		// Pages written after the bump are visible again.
		require.NoError(t, repo.SetPage(ctx, userID, query, page))
		got, err = repo.GetPage(ctx, userID, query)
		require.NoError(t, err)
		assert.NotNil(t, got)
	})

	t.Run("owners do not share entries", func(t *testing.T) {
		got, err := repo.GetPage(ctx, uuid.New(), query)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}
