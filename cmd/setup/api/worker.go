package api

import (
	"context"

	"github.com/IsaacDSC/placecache/cmd/setup/middleware"
	"github.com/IsaacDSC/placecache/internal/app/taskapp"
	"github.com/IsaacDSC/placecache/pkg/asyncadapter"
	"github.com/IsaacDSC/placecache/pkg/ctxlogger"
	"github.com/hibiken/asynq"
)

func (s *Service) Events() []asyncadapter.AsynqHandle {
	return []asyncadapter.AsynqHandle{
		taskapp.GetWarmPlacesHandle(s.cache).ToAsynqHandler(),
	}
}

func (s *Service) StartWorker(ctx context.Context) {
	l := ctxlogger.GetLogger(ctx)

	asynqCfg := asynq.Config{
		Concurrency: s.env.AsynqConfig.Concurrency,
		Queues:      map[string]int{"default": 1},
	}

	s.asynqServer = asynq.NewServer(asynq.RedisClientOpt{Addr: s.env.Cache.CacheAddr}, asynqCfg)

	mux := asynq.NewServeMux()
	mux.Use(middleware.AsynqLogger)

	for _, event := range s.Events() {
		mux.HandleFunc(event.Event, event.Handler)
	}

	l.Info("[*] Asynq worker started", "wq.concurrency", asynqCfg.Concurrency)

	go func() {
		if err := s.asynqServer.Run(mux); err != nil {
			l.Error("Asynq server error", "error", err)
		}
	}()
}
