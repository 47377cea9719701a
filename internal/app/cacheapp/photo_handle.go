package cacheapp

import (
	"net/http"
	"strconv"

	"github.com/IsaacDSC/placecache/internal/domain"
	"github.com/IsaacDSC/placecache/pkg/ctxlogger"
	"github.com/IsaacDSC/placecache/pkg/httpadapter"
)

// GetPhotoHandle serves photo bytes. The reference may be sent URL-encoded
// (places%2F...%2Fphotos%2F...) or as plain path segments.
func GetPhotoHandle(cache PlaceCache, cacheControl string) httpadapter.HttpHandle {
	return httpadapter.HttpHandle{
		Path: "GET /cache/google-place/photo/{id...}",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			l := ctxlogger.GetLogger(ctx)

			ref := r.PathValue("id")
			if ref == "" {
				writeError(w, r, domain.NewBadRequest("photo reference is required"))
				return
			}

			photo, err := cache.GetPhoto(ctx, ref)
			if err != nil {
				l.Error("failed to get photo", "photo_reference", ref, "error", err.Error())
				writeError(w, r, domain.NewAppError(domain.CodePhotoFetch, "failed to fetch photo", http.StatusInternalServerError))
				return
			}

			xCache := "MISS"
			if photo.Hit {
				xCache = "HIT"
			}

			w.Header().Set("Content-Type", photo.ContentType)
			w.Header().Set("Content-Length", strconv.Itoa(len(photo.Body)))
			w.Header().Set("Cache-Control", cacheControl)
			w.Header().Set("X-Cache", xCache)
			w.WriteHeader(http.StatusOK)

			if _, err := w.Write(photo.Body); err != nil {
				l.Warn("failed to write photo", "photo_reference", ref, "error", err)
			}
		},
	}
}
