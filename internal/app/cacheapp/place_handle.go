package cacheapp

import (
	"encoding/json"
	"net/http"

	"github.com/IsaacDSC/placecache/internal/domain"
	"github.com/IsaacDSC/placecache/pkg/httpadapter"
)

// GetPlacesHandle serves cached place records. Ids whose lookup failed are
// left out of the response array.
func GetPlacesHandle(cache PlaceCache, cacheControl string) httpadapter.HttpHandle {
	return httpadapter.HttpHandle{
		Path: "POST /cache/place",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			var payload domain.PlaceBatch

			defer r.Body.Close()
			if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
				writeError(w, r, domain.NewBadRequest("invalid request body"))
				return
			}

			if err := payload.ValidateLookup(); err != nil {
				writeError(w, r, domain.NewBadRequest(err.Error()))
				return
			}

			records := cache.GetPlaces(ctx, payload.PlaceIDList, payload.LanguageCode)

			w.Header().Set("Cache-Control", cacheControl)
			writeJSON(w, r, http.StatusOK, records)
		},
	}
}
