package cacheapp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/IsaacDSC/placecache/internal/domain"
	"github.com/IsaacDSC/placecache/pkg/httpadapter"
	"github.com/IsaacDSC/placecache/pkg/publisher"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const cacheControl = "public, max-age=2160000"

func serve(t *testing.T, route httpadapter.HttpHandle, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	mux := http.NewServeMux()
	httpadapter.Register(mux, route)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func decodeAppError(t *testing.T, rec *httptest.ResponseRecorder) domain.AppError {
	t.Helper()

	var appErr domain.AppError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &appErr))
	return appErr
}

func TestGetPlacesHandle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	large := make([]string, domain.MaxPlaceBatch+1)
	for i := range large {
		large[i] = fmt.Sprintf("ChIJ%03d", i)
	}
	largeBody, err := json.Marshal(domain.PlaceBatch{PlaceIDList: large})
	require.NoError(t, err)

	tests := []struct {
		name       string
		body       string
		setup      func(cache *MockPlaceCache)
		wantStatus int
		wantIDs    []string
		wantCode   string
	}{
		{
			name: "returns resolved places",
			body: `{"placeIdList":["A","B","C"],"languageCode":"en"}`,
			setup: func(cache *MockPlaceCache) {
				cache.EXPECT().GetPlaces(gomock.Any(), []string{"A", "B", "C"}, "en").
					Return([]domain.PlaceRecord{{ID: "A"}, {ID: "C"}})
			},
			wantStatus: http.StatusOK,
			wantIDs:    []string{"A", "C"},
		},
		{
			name: "language is optional",
			body: `{"placeIdList":["A"]}`,
			setup: func(cache *MockPlaceCache) {
				cache.EXPECT().GetPlaces(gomock.Any(), []string{"A"}, "").Return([]domain.PlaceRecord{{ID: "A"}})
			},
			wantStatus: http.StatusOK,
			wantIDs:    []string{"A"},
		},
		{
			name: "nothing resolved is an empty array",
			body: `{"placeIdList":["B"]}`,
			setup: func(cache *MockPlaceCache) {
				cache.EXPECT().GetPlaces(gomock.Any(), []string{"B"}, "").Return([]domain.PlaceRecord{})
			},
			wantStatus: http.StatusOK,
			wantIDs:    []string{},
		},
		{
			name: "more ids than a warm task accepts",
			body: string(largeBody),
			setup: func(cache *MockPlaceCache) {
				cache.EXPECT().GetPlaces(gomock.Any(), large, "").Return([]domain.PlaceRecord{{ID: "ChIJ000"}})
			},
			wantStatus: http.StatusOK,
			wantIDs:    []string{"ChIJ000"},
		},
		{
			name: "blank ids are passed through",
			body: `{"placeIdList":["A",""]}`,
			setup: func(cache *MockPlaceCache) {
				cache.EXPECT().GetPlaces(gomock.Any(), []string{"A", ""}, "").Return([]domain.PlaceRecord{{ID: "A"}})
			},
			wantStatus: http.StatusOK,
			wantIDs:    []string{"A"},
		},
		{
			name:       "invalid json",
			body:       `{"placeIdList":`,
			setup:      func(*MockPlaceCache) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   domain.CodeBadRequest,
		},
		{
			name:       "empty list",
			body:       `{"placeIdList":[]}`,
			setup:      func(*MockPlaceCache) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   domain.CodeBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := NewMockPlaceCache(ctrl)
			tt.setup(cache)

			req := httptest.NewRequest(http.MethodPost, "/cache/place", strings.NewReader(tt.body))
			rec := serve(t, GetPlacesHandle(cache, cacheControl), req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeAppError(t, rec).Code)
				assert.Empty(t, rec.Header().Get("Cache-Control"))
				return
			}

			assert.Equal(t, cacheControl, rec.Header().Get("Cache-Control"))

			var records []domain.PlaceRecord
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))

			ids := make([]string, 0, len(records))
			for _, r := range records {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestGetPhotoHandle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ref := "places/ChIJ123/photos/abc"

	t.Run("encoded reference", func(t *testing.T) {
		cache := NewMockPlaceCache(ctrl)
		cache.EXPECT().GetPhoto(gomock.Any(), ref).
			Return(domain.PhotoMedia{Body: []byte("png-bytes"), ContentType: "image/png", Hit: true}, nil)

		req := httptest.NewRequest(http.MethodGet, "/cache/google-place/photo/places%2FChIJ123%2Fphotos%2Fabc", nil)
		rec := serve(t, GetPhotoHandle(cache, cacheControl), req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "png-bytes", rec.Body.String())
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		assert.Equal(t, cacheControl, rec.Header().Get("Cache-Control"))
		assert.Equal(t, "HIT", rec.Header().Get("X-Cache"))
		assert.Equal(t, "9", rec.Header().Get("Content-Length"))
	})

	t.Run("plain path segments", func(t *testing.T) {
		cache := NewMockPlaceCache(ctrl)
		cache.EXPECT().GetPhoto(gomock.Any(), ref).
			Return(domain.PhotoMedia{Body: []byte("jpeg"), ContentType: "image/jpeg"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/cache/google-place/photo/"+ref, nil)
		rec := serve(t, GetPhotoHandle(cache, cacheControl), req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "MISS", rec.Header().Get("X-Cache"))
	})

	t.Run("upstream failure", func(t *testing.T) {
		cache := NewMockPlaceCache(ctrl)
		cache.EXPECT().GetPhoto(gomock.Any(), ref).
			Return(domain.PhotoMedia{}, fmt.Errorf("fetch photo: %w", domain.ErrUpstreamUnavailable))

		req := httptest.NewRequest(http.MethodGet, "/cache/google-place/photo/"+ref, nil)
		rec := serve(t, GetPhotoHandle(cache, cacheControl), req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		appErr := decodeAppError(t, rec)
		assert.Equal(t, domain.CodePhotoFetch, appErr.Code)
		assert.NotEmpty(t, appErr.Message)
	})

	t.Run("missing reference", func(t *testing.T) {
		cache := NewMockPlaceCache(ctrl)

		req := httptest.NewRequest(http.MethodGet, "/cache/google-place/photo/", nil)
		rec := serve(t, GetPhotoHandle(cache, cacheControl), req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, domain.CodeBadRequest, decodeAppError(t, rec).Code)
	})
}

func TestWarmPlacesHandle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	batch := domain.PlaceBatch{PlaceIDList: []string{"A", "B"}, LanguageCode: "ja"}

	tests := []struct {
		name       string
		body       string
		publishErr error
		publish    bool
		wantStatus int
		wantCode   string
	}{
		{name: "accepted", body: `{"placeIdList":["A","B"],"languageCode":"ja"}`, publish: true, wantStatus: http.StatusAccepted},
		{name: "duplicate is accepted", body: `{"placeIdList":["A","B"],"languageCode":"ja"}`, publish: true, publishErr: fmt.Errorf("could not enqueue task: %w", asynq.ErrDuplicateTask), wantStatus: http.StatusAccepted},
		{name: "enqueue failure", body: `{"placeIdList":["A","B"],"languageCode":"ja"}`, publish: true, publishErr: errors.New("redis down"), wantStatus: http.StatusInternalServerError, wantCode: domain.CodeWarmupEnqueue},
		{name: "bad body", body: `[]`, wantStatus: http.StatusBadRequest, wantCode: domain.CodeBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pub := publisher.NewMockPublisher(ctrl)
			if tt.publish {
				pub.EXPECT().Publish(gomock.Any(), domain.TaskWarmPlaces, batch, gomock.Any()).Return(tt.publishErr)
			}

			req := httptest.NewRequest(http.MethodPost, "/cache/place/warm", strings.NewReader(tt.body))
			rec := serve(t, WarmPlacesHandle(pub), req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeAppError(t, rec).Code)
			}
		})
	}
}

func TestGetInsightsHandle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	insights := domain.Insights{
		Day: "2026-10-18",
		Counts: map[domain.CacheKind]map[domain.Outcome]int64{
			domain.KindPlace: {domain.OutcomeHit: 3, domain.OutcomeMiss: 1},
		},
	}

	t.Run("today", func(t *testing.T) {
		store := NewMockInsightsReader(ctrl)
		store.EXPECT().Today(gomock.Any()).Return(insights, nil)

		rec := serve(t, GetInsightsHandle(store), httptest.NewRequest(http.MethodGet, "/cache/insights", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp InsightsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "2026-10-18", resp.Day)
		assert.Equal(t, int64(3), resp.Counts[domain.KindPlace][domain.OutcomeHit])
		assert.Equal(t, 0.75, resp.HitRatio[domain.KindPlace])
		assert.Equal(t, 0.0, resp.HitRatio[domain.KindPhoto])
	})

	t.Run("given day", func(t *testing.T) {
		store := NewMockInsightsReader(ctrl)
		store.EXPECT().Day(gomock.Any(), "2026-10-17").Return(domain.Insights{Day: "2026-10-17"}, nil)

		rec := serve(t, GetInsightsHandle(store), httptest.NewRequest(http.MethodGet, "/cache/insights?day=2026-10-17", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("invalid day", func(t *testing.T) {
		store := NewMockInsightsReader(ctrl)

		rec := serve(t, GetInsightsHandle(store), httptest.NewRequest(http.MethodGet, "/cache/insights?day=yesterday", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("store failure", func(t *testing.T) {
		store := NewMockInsightsReader(ctrl)
		store.EXPECT().Today(gomock.Any()).Return(domain.Insights{}, context.DeadlineExceeded)

		rec := serve(t, GetInsightsHandle(store), httptest.NewRequest(http.MethodGet, "/cache/insights", nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, domain.CodeInsights, decodeAppError(t, rec).Code)
	})
}
