package objstore

import (
	"context"
	"fmt"
	"testing"

	"github.com/docker/go-connections/nat"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func startContainer(t *testing.T, image, port string) (string, func()) {
	t.Helper()
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        image,
		ExposedPorts: []string{port},
		WaitingFor:   wait.ForListeningPort(nat.Port(port)),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "Failed to start %s container", image)

	mappedPort, err := container.MappedPort(ctx, nat.Port(port))
	require.NoError(t, err, "Failed to get mapped port")
	host, err := container.Host(ctx)
	require.NoError(t, err, "Failed to get host")

	return fmt.Sprintf("%s:%s", host, mappedPort.Port()), func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("Error terminating %s container: %v", image, err)
		}
	}
}

func setupRedisContainer(t *testing.T) (*redis.Client, func()) {
	addr, terminate := startContainer(t, "redis:alpine", "6379/tcp")

	client := redis.NewClient(&redis.Options{Addr: addr})
	require.NoError(t, client.Ping(context.Background()).Err(), "Failed to ping Redis")

	return client, func() {
		if err := client.Close(); err != nil {
			t.Logf("Error closing Redis client: %v", err)
		}
		terminate()
	}
}

func setupMongoContainer(t *testing.T) (*mongo.Client, func()) {
	addr, terminate := startContainer(t, "mongo:7", "27017/tcp")

	client, err := mongo.Connect(options.Client().ApplyURI("mongodb://" + addr))
	require.NoError(t, err, "Failed to connect to Mongo")
	require.NoError(t, client.Ping(context.Background(), nil), "Failed to ping Mongo")

	return client, func() {
		if err := client.Disconnect(context.Background()); err != nil {
			t.Logf("Error disconnecting Mongo client: %v", err)
		}
		terminate()
	}
}
