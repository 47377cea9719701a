package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/IsaacDSC/placecache/cmd/setup/httpsvc"
	"github.com/IsaacDSC/placecache/internal/app/cacheapp"
	"github.com/IsaacDSC/placecache/internal/cfg"
	"github.com/IsaacDSC/placecache/internal/placesvc"
	"github.com/IsaacDSC/placecache/internal/storests"
	"github.com/IsaacDSC/placecache/pkg/auth"
	"github.com/IsaacDSC/placecache/pkg/httpadapter"
	"github.com/IsaacDSC/placecache/pkg/publisher"
	"github.com/hibiken/asynq"
)

const appRealm = "placecache"

type Service struct {
	env       cfg.Config
	cache     *placesvc.Service
	insights  *storests.Store
	publisher publisher.Publisher

	server      *http.Server
	asynqServer *asynq.Server
}

func New(env cfg.Config, cache *placesvc.Service, insights *storests.Store, pub publisher.Publisher) *Service {
	return &Service{
		env:       env,
		cache:     cache,
		insights:  insights,
		publisher: pub,
	}
}

func (s *Service) Routes() []httpadapter.HttpHandle {
	cacheControl := s.cache.Config().CacheControl()

	insights := cacheapp.GetInsightsHandle(s.insights)
	if s.env.Admin.Enabled() {
		admin := auth.NewBasicAuth(appRealm, map[string]string{s.env.Admin.User: s.env.Admin.Password})
		insights.Handler = admin.Middleware(insights.Handler)
	}

	return []httpadapter.HttpHandle{
		cacheapp.GetPlacesHandle(s.cache, cacheControl),
		cacheapp.GetPhotoHandle(s.cache, cacheControl),
		cacheapp.WarmPlacesHandle(s.publisher),
		insights,
	}
}

func (s *Service) StartServer(ctx context.Context) {
	s.server = httpsvc.StartHttpServer(ctx, s.env, s.Routes())
}

func (s *Service) Server() *http.Server { return s.server }

// Shutdown stops whatever was started, waiting for in-flight requests and tasks.
func (s *Service) Shutdown(ctx context.Context) error {
	var errs []error

	if s.server != nil {
		if err := s.server.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}

	if s.asynqServer != nil {
		s.asynqServer.Shutdown()
	}

	return errors.Join(errs...)
}
