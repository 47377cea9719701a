// Package objstore is the key-addressed blob store backing the place caches.
//
// Objects live in a named bucket and are written with upload options modelled on
// storage buckets: a content type, a cache-control max-age hint and an upsert
// flag. Backends may honour the max-age as an expiry (redis, mongo) or ignore it
// (memory); callers must not rely on either.
package objstore

//go:generate mockgen -source=store.go -destination=mock_store.go -package=objstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrNotFound      = errors.New("object not found")
	ErrAlreadyExists = errors.New("object already exists")
)

type Object struct {
	Body         []byte
	ContentType  string
	CacheControl string
	UpdatedAt    time.Time
}

type UploadOptions struct {
	ContentType string
	MaxAge      time.Duration
	// Upsert replaces an existing object; without it an existing key yields ErrAlreadyExists.
	Upsert bool
}

type Store interface {
	Download(ctx context.Context, key string) (Object, error)
	Upload(ctx context.Context, key string, body []byte, opts UploadOptions) error
}

// CacheControl renders the max-age hint stored alongside an object.
func CacheControl(maxAge time.Duration) string {
	if maxAge <= 0 {
		return "no-cache"
	}
	return fmt.Sprintf("max-age=%d", int64(maxAge/time.Second))
}

func objectPath(bucket, key string) string {
	return strings.TrimSuffix(bucket, "/") + "/" + strings.TrimPrefix(key, "/")
}
