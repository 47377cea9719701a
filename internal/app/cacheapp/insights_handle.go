package cacheapp

import (
	"net/http"
	"time"

	"github.com/IsaacDSC/placecache/internal/domain"
	"github.com/IsaacDSC/placecache/pkg/ctxlogger"
	"github.com/IsaacDSC/placecache/pkg/httpadapter"
)

type InsightsResponse struct {
	domain.Insights
	HitRatio map[domain.CacheKind]float64 `json:"hitRatio"`
}

// GetInsightsHandle reports today's counters, or those of ?day=YYYY-MM-DD.
func GetInsightsHandle(store InsightsReader) httpadapter.HttpHandle {
	return httpadapter.HttpHandle{
		Path: "GET /cache/insights",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			var (
				insights domain.Insights
				err      error
			)

			if day := r.URL.Query().Get("day"); day != "" {
				if _, perr := time.Parse(time.DateOnly, day); perr != nil {
					writeError(w, r, domain.NewBadRequest("day must be formatted as YYYY-MM-DD"))
					return
				}
				insights, err = store.Day(ctx, day)
			} else {
				insights, err = store.Today(ctx)
			}

			if err != nil {
				ctxlogger.GetLogger(ctx).Error("failed to read insights", "error", err.Error())
				writeError(w, r, domain.NewAppError(domain.CodeInsights, "failed to read insights", http.StatusInternalServerError))
				return
			}

			writeJSON(w, r, http.StatusOK, InsightsResponse{
				Insights: insights,
				HitRatio: map[domain.CacheKind]float64{
					domain.KindPlace: insights.HitRatio(domain.KindPlace),
					domain.KindPhoto: insights.HitRatio(domain.KindPhoto),
				},
			})
		},
	}
}
