package cacheapp

import (
	"encoding/json"
	"net/http"

	"github.com/IsaacDSC/placecache/internal/domain"
	"github.com/IsaacDSC/placecache/pkg/ctxlogger"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		ctxlogger.GetLogger(r.Context()).Warn("failed to write response", "error", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, appErr *domain.AppError) {
	writeJSON(w, r, appErr.StatusCode, appErr)
}
