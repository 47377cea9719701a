package storests

import (
	"context"
	"testing"
	"time"

	"github.com/IsaacDSC/placecache/internal/domain"
	"github.com/docker/go-connections/nat"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupRedisContainer(t *testing.T) (*redis.Client, func()) {
	testcontainers.SkipIfProviderIsNotHealthy(t)
	ctx := context.Background()

	redisPort := "6379/tcp"
	req := testcontainers.ContainerRequest{
		Image:        "redis:alpine",
		ExposedPorts: []string{redisPort},
		WaitingFor:   wait.ForListeningPort(nat.Port(redisPort)),
	}

	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "Failed to start Redis container")

	mappedPort, err := redisContainer.MappedPort(ctx, nat.Port(redisPort))
	require.NoError(t, err, "Failed to get mapped port")
	host, err := redisContainer.Host(ctx)
	require.NoError(t, err, "Failed to get host")

	redisClient := redis.NewClient(&redis.Options{
		Addr: host + ":" + mappedPort.Port(),
	})
	require.NoError(t, redisClient.Ping(ctx).Err(), "Failed to ping Redis")

	return redisClient, func() {
		if err := redisClient.Close(); err != nil {
			t.Logf("Error closing Redis client: %v", err)
		}
		if err := redisContainer.Terminate(ctx); err != nil {
			t.Logf("Error terminating Redis container: %v", err)
		}
	}
}

func TestKey(t *testing.T) {
	s := Store{}
	assert.Equal(t, "placecache:insights:2026-10-18", s.key("2026-10-18"))
	assert.Equal(t, "photo:hit", field(domain.KindPhoto, domain.OutcomeHit))
}

func TestStore_RecordAndToday(t *testing.T) {
	client, cleanup := setupRedisContainer(t)
	defer cleanup()

	ctx := context.Background()
	store := NewStore(client)
	store.now = func() time.Time { return time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC) }

	require.NoError(t, store.Record(ctx, domain.KindPlace, domain.OutcomeHit))
	require.NoError(t, store.Record(ctx, domain.KindPlace, domain.OutcomeHit))
	require.NoError(t, store.Record(ctx, domain.KindPlace, domain.OutcomeMiss))
	require.NoError(t, store.Record(ctx, domain.KindPhoto, domain.OutcomeUpstreamFailure))

	insights, err := store.Today(ctx)
	require.NoError(t, err)

	assert.Equal(t, "2026-10-18", insights.Day)
	assert.Equal(t, int64(2), insights.Counts[domain.KindPlace][domain.OutcomeHit])
	assert.Equal(t, int64(1), insights.Counts[domain.KindPlace][domain.OutcomeMiss])
	assert.Equal(t, int64(1), insights.Counts[domain.KindPhoto][domain.OutcomeUpstreamFailure])

	ttl, err := client.TTL(ctx, "placecache:insights:2026-10-18").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, 29*24*time.Hour)
}

func TestStore_EmptyDay(t *testing.T) {
	client, cleanup := setupRedisContainer(t)
	defer cleanup()

	insights, err := NewStore(client).Day(context.Background(), "2000-01-01")
	require.NoError(t, err)
	assert.Empty(t, insights.Counts)
}
