package cacheapp

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/IsaacDSC/placecache/internal/domain"
	"github.com/IsaacDSC/placecache/pkg/ctxlogger"
	"github.com/IsaacDSC/placecache/pkg/httpadapter"
	"github.com/IsaacDSC/placecache/pkg/publisher"
	"github.com/hibiken/asynq"
)

const warmUniqueTTL = 10 * time.Minute

// WarmPlacesHandle enqueues a background lookup of the given ids so later
// POST /cache/place calls are served from the store.
func WarmPlacesHandle(pub publisher.Publisher) httpadapter.HttpHandle {
	return httpadapter.HttpHandle{
		Path: "POST /cache/place/warm",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			l := ctxlogger.GetLogger(ctx)

			var payload domain.PlaceBatch

			defer r.Body.Close()
			if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
				writeError(w, r, domain.NewBadRequest("invalid request body"))
				return
			}

			if err := payload.Validate(); err != nil {
				writeError(w, r, domain.NewBadRequest(err.Error()))
				return
			}

			err := pub.Publish(ctx, domain.TaskWarmPlaces, payload, publisher.WithUnique(warmUniqueTTL))
			if errors.Is(err, asynq.ErrDuplicateTask) {
				l.Info("warm task already queued", "places", len(payload.PlaceIDList))
				err = nil
			}
			if err != nil {
				l.Error("failed to enqueue warm task", "error", err.Error())
				writeError(w, r, domain.NewAppError(domain.CodeWarmupEnqueue, "failed to schedule cache warm-up", http.StatusInternalServerError))
				return
			}

			w.WriteHeader(http.StatusAccepted)
		},
	}
}
