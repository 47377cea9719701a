package objstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemStore_UploadDownload(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore("caches")

	_, err := store.Download(ctx, "google-place/ChIJ123")
	assert.ErrorIs(t, err, ErrNotFound)

	body := []byte(`{"id":"ChIJ123"}`)
	err = store.Upload(ctx, "google-place/ChIJ123", body, UploadOptions{
		ContentType: "application/json",
		MaxAge:      25 * 24 * time.Hour,
		Upsert:      true,
	})
	require.NoError(t, err)

	obj, err := store.Download(ctx, "google-place/ChIJ123")
	require.NoError(t, err)
	assert.Equal(t, body, obj.Body)
	assert.Equal(t, "application/json", obj.ContentType)
	assert.Equal(t, "max-age=2160000", obj.CacheControl)
	assert.False(t, obj.UpdatedAt.IsZero())
}

func TestMemStore_UpsertSemantics(t *testing.T) {
	tests := []struct {
		name     string
		upsert   bool
		wantErr  error
		wantBody string
	}{
		{name: "upsert overwrites", upsert: true, wantBody: "v2"},
		{name: "insert rejects existing key", upsert: false, wantErr: ErrAlreadyExists, wantBody: "v1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := NewMemStore("caches")
			require.NoError(t, store.Upload(ctx, "k", []byte("v1"), UploadOptions{Upsert: true}))

			err := store.Upload(ctx, "k", []byte("v2"), UploadOptions{Upsert: tt.upsert})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}

			obj, err := store.Download(ctx, "k")
			require.NoError(t, err)
			assert.Equal(t, tt.wantBody, string(obj.Body))
			assert.Equal(t, 1, store.Len())
		})
	}
}

func TestMemStore_SamePayloadTwiceIsStable(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore("caches")
	opts := UploadOptions{ContentType: "application/json", Upsert: true}

	require.NoError(t, store.Upload(ctx, "k", []byte(`{"id":"a"}`), opts))
	first, err := store.Download(ctx, "k")
	require.NoError(t, err)

	require.NoError(t, store.Upload(ctx, "k", []byte(`{"id":"a"}`), opts))
	second, err := store.Download(ctx, "k")
	require.NoError(t, err)

	assert.Equal(t, first.Body, second.Body)
	assert.Equal(t, first.ContentType, second.ContentType)
}

func TestMemStore_DownloadReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore("caches")
	require.NoError(t, store.Upload(ctx, "k", []byte("abc"), UploadOptions{Upsert: true}))

	obj, err := store.Download(ctx, "k")
	require.NoError(t, err)
	obj.Body[0] = 'x'

	again, err := store.Download(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again.Body))
}

func TestCacheControl(t *testing.T) {
	assert.Equal(t, "max-age=2160000", CacheControl(2160000*time.Second))
	assert.Equal(t, "no-cache", CacheControl(0))
}

func TestObjectPath(t *testing.T) {
	assert.Equal(t, "caches/google-place/abc", objectPath("caches", "google-place/abc"))
	assert.Equal(t, "caches/google-place/abc", objectPath("caches/", "/google-place/abc"))
}
