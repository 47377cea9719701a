package objstore

import (
	"context"
	"sync"
	"time"
)

// MemStore keeps objects in process memory. Max-age is recorded but not enforced.
type MemStore struct {
	bucket  string
	mu      sync.RWMutex
	objects map[string]Object
	now     func() time.Time
}

var _ Store = (*MemStore)(nil)

func NewMemStore(bucket string) *MemStore {
	return &MemStore{
		bucket:  bucket,
		objects: make(map[string]Object),
		now:     time.Now,
	}
}

func (ms *MemStore) Bucket() string {
	return ms.bucket
}

func (ms *MemStore) Download(ctx context.Context, key string) (Object, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	obj, ok := ms.objects[objectPath(ms.bucket, key)]
	if !ok {
		return Object{}, ErrNotFound
	}

	obj.Body = append([]byte(nil), obj.Body...)
	return obj, nil
}

func (ms *MemStore) Upload(ctx context.Context, key string, body []byte, opts UploadOptions) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	path := objectPath(ms.bucket, key)
	if _, exists := ms.objects[path]; exists && !opts.Upsert {
		return ErrAlreadyExists
	}

	ms.objects[path] = Object{
		Body:         append([]byte(nil), body...),
		ContentType:  opts.ContentType,
		CacheControl: CacheControl(opts.MaxAge),
		UpdatedAt:    ms.now(),
	}

	return nil
}

// Len reports the number of stored objects.
func (ms *MemStore) Len() int {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return len(ms.objects)
}
