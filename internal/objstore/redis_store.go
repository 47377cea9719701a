package objstore

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/IsaacDSC/placecache/pkg/ctxlogger"
	"github.com/redis/go-redis/v9"
)

const (
	redisKeyPrefix = "objstore:"

	fieldBody         = "body"
	fieldContentType  = "content_type"
	fieldCacheControl = "cache_control"
	fieldUpdatedAt    = "updated_at"
)

// RedisStore keeps each object in a hash and expires it after its max-age.
type RedisStore struct {
	bucket string
	client *redis.Client
}

var _ Store = (*RedisStore)(nil)

func NewRedisStore(bucket string, client *redis.Client) *RedisStore {
	return &RedisStore{bucket: bucket, client: client}
}

func (s *RedisStore) Bucket() string {
	return s.bucket
}

func (s *RedisStore) key(key string) string {
	return redisKeyPrefix + objectPath(s.bucket, key)
}

func (s *RedisStore) Download(ctx context.Context, key string) (Object, error) {
	fields, err := s.client.HGetAll(ctx, s.key(key)).Result()
	if err != nil {
		return Object{}, fmt.Errorf("error getting object %s: %w", key, err)
	}

	body, ok := fields[fieldBody]
	if !ok {
		return Object{}, ErrNotFound
	}

	obj := Object{
		Body:         []byte(body),
		ContentType:  fields[fieldContentType],
		CacheControl: fields[fieldCacheControl],
	}

	if ms, err := strconv.ParseInt(fields[fieldUpdatedAt], 10, 64); err == nil {
		obj.UpdatedAt = time.UnixMilli(ms).UTC()
	}

	return obj, nil
}

func (s *RedisStore) Upload(ctx context.Context, key string, body []byte, opts UploadOptions) error {
	l := ctxlogger.GetLogger(ctx)
	k := s.key(key)

	if !opts.Upsert {
		created, err := s.client.HSetNX(ctx, k, fieldBody, body).Result()
		if err != nil {
			return fmt.Errorf("error creating object %s: %w", key, err)
		}
		if !created {
			return ErrAlreadyExists
		}
	}

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, k,
			fieldBody, body,
			fieldContentType, opts.ContentType,
			fieldCacheControl, CacheControl(opts.MaxAge),
			fieldUpdatedAt, time.Now().UTC().UnixMilli(),
		)
		if opts.MaxAge > 0 {
			pipe.Expire(ctx, k, opts.MaxAge)
		} else {
			pipe.Persist(ctx, k)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("error setting object %s: %w", key, err)
	}

	l.Debug("object stored", "bucket", s.bucket, "key", key, "size", len(body), "driver", "redis")

	return nil
}
