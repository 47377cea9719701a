package taskapp

//go:generate mockgen -source=warm_handle.go -destination=mock_warm_handle.go -package=taskapp

import (
	"context"
	"fmt"

	"github.com/IsaacDSC/placecache/internal/domain"
	"github.com/IsaacDSC/placecache/internal/placesvc"
	"github.com/IsaacDSC/placecache/pkg/asyncadapter"
	"github.com/IsaacDSC/placecache/pkg/ctxlogger"
)

type PlaceLookup interface {
	LookupPlaces(ctx context.Context, placeIDs []string, languageCode string) []placesvc.Result
}

// GetWarmPlacesHandle resolves every id of the batch so it lands in the object
// store. Partial failures are logged, not retried; the task fails only when no
// id could be resolved, which lets asynq retry a fully unavailable upstream.
func GetWarmPlacesHandle(lookup PlaceLookup) asyncadapter.Handle[domain.PlaceBatch] {
	return asyncadapter.Handle[domain.PlaceBatch]{
		Event: domain.TaskWarmPlaces,
		Handler: func(c asyncadapter.AsyncCtx[domain.PlaceBatch]) error {
			ctx := c.Context()
			l := ctxlogger.GetLogger(ctx)

			payload, err := c.Payload()
			if err != nil {
				return fmt.Errorf("get payload: %w", err)
			}

			if err := payload.Validate(); err != nil {
				return fmt.Errorf("validate payload: %w", err)
			}

			results := lookup.LookupPlaces(ctx, payload.PlaceIDList, payload.LanguageCode)

			var lastErr error
			for _, r := range results {
				if r.Err != nil {
					lastErr = r.Err
					l.Warn("warm lookup failed", "place_id", r.PlaceID, "error", r.Err.Error())
				}
			}

			warmed := len(placesvc.Successes(results))
			if warmed == 0 && lastErr != nil {
				return fmt.Errorf("warm places: %w", lastErr)
			}

			l.Info("warmed place cache", "warmed", warmed, "requested", len(payload.PlaceIDList))

			return nil
		},
	}
}
