package httpsvc

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/IsaacDSC/placecache/cmd/setup/middleware"
	"github.com/IsaacDSC/placecache/internal/app/health"
	"github.com/IsaacDSC/placecache/internal/cfg"
	"github.com/IsaacDSC/placecache/pkg/ctxlogger"
	"github.com/IsaacDSC/placecache/pkg/httpadapter"
)

func NewHandler(routes []httpadapter.HttpHandle) http.Handler {
	mux := http.NewServeMux()

	routes = append(routes, health.GetHealthCheckHandler())
	httpadapter.Register(mux, routes...)

	return middleware.CORSMiddleware(middleware.LoggerMiddleware(mux))
}

// NewServer has no write deadline unless API_WRITE_TIMEOUT is set: a batch
// runs for as long as its slowest wave of upstream calls.
func NewServer(env cfg.Config, routes []httpadapter.HttpHandle) *http.Server {
	return &http.Server{
		Addr:         env.ApiPort.String(),
		Handler:      NewHandler(routes),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: env.ApiWriteTimeout,
		IdleTimeout:  60 * time.Second,
	}
}

// StartHttpServer serves routes on env.ApiPort in the background. The caller
// owns shutdown.
func StartHttpServer(ctx context.Context, env cfg.Config, routes []httpadapter.HttpHandle) *http.Server {
	l := ctxlogger.GetLogger(ctx)
	server := NewServer(env, routes)

	l.Info("[*] Starting API server", "addr", server.Addr, "write_timeout", server.WriteTimeout)

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Error("API server error", "error", err)
		}
	}()

	return server
}
