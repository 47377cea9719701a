package api

import (
	"context"
	"fmt"

	"github.com/IsaacDSC/placecache/internal/cfg"
	"github.com/IsaacDSC/placecache/internal/objstore"
	"github.com/IsaacDSC/placecache/internal/placesvc"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// NewObjectStore builds the backend named by OBJECT_STORE_DRIVER over the
// bucket the cache service is configured with. The returned close func
// releases connections owned by the store; rdb stays with the caller.
func NewObjectStore(ctx context.Context, env cfg.Config, conf placesvc.Config, rdb *redis.Client) (objstore.Store, func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }
	bucket := conf.ObjectStoreBucket

	switch env.ObjectStore.Driver {
	case cfg.DriverMemory:
		return objstore.NewMemStore(bucket), noop, nil
	case cfg.DriverRedis:
		return objstore.NewRedisStore(bucket, rdb), noop, nil
	case cfg.DriverMongo:
		client, err := mongo.Connect(options.Client().ApplyURI(env.ConfigDatabase.DbConn))
		if err != nil {
			return nil, nil, fmt.Errorf("connect mongo: %w", err)
		}

		store := objstore.NewMongoStore(client, env.ConfigDatabase.DbName, bucket)
		if err := store.EnsureIndexes(ctx); err != nil {
			_ = client.Disconnect(ctx)
			return nil, nil, fmt.Errorf("ensure indexes: %w", err)
		}

		return store, client.Disconnect, nil
	default:
		return nil, nil, fmt.Errorf("unknown object store driver %q", env.ObjectStore.Driver)
	}
}
