package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/IsaacDSC/placecache/cmd/setup/api"
	"github.com/IsaacDSC/placecache/internal/cfg"
	"github.com/IsaacDSC/placecache/internal/fetcher"
	"github.com/IsaacDSC/placecache/internal/placesvc"
	"github.com/IsaacDSC/placecache/internal/storests"
	"github.com/IsaacDSC/placecache/pkg/ctxlogger"
	"github.com/IsaacDSC/placecache/pkg/httpclient"
	"github.com/IsaacDSC/placecache/pkg/logs"
	"github.com/IsaacDSC/placecache/pkg/publisher"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
)

const appName = "placecache"

const shutdownTimeout = time.Minute

// go run ./cmd/api --service=server
// go run ./cmd/api --service=worker
// go run ./cmd/api --service=all
func main() {
	service := flag.String("service", "all", "service to run: server, worker or all")
	flag.Parse()

	if err := run(*service); err != nil {
		logs.Error("placecache stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(service string) error {
	env := cfg.Get()

	logger := logs.New(logs.Options(env.LogLevel, env.LogFormat, env.LogSource)...).With("app", appName, "service", service)
	logs.SetDefault(logger)
	ctx := ctxlogger.WithLogger(context.Background(), logger)

	rdb := redis.NewClient(&redis.Options{Addr: env.Cache.CacheAddr})
	defer rdb.Close()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}

	conf := placesvc.NewConfig(env)

	store, closeStore, err := api.NewObjectStore(ctx, env, conf, rdb)
	if err != nil {
		return err
	}

	httpClient := httpclient.NewHTTPClientWithLogging(env.PlaceAPI.Timeout)
	places := fetcher.NewPlaces(httpClient, fetcher.PlacesConfig{
		BaseURL:         env.PlaceAPI.BaseURL,
		ApiKey:          conf.PlaceApiKey,
		PhotoMaxWidthPx: env.PlaceAPI.PhotoMaxWidthPx,
	})
	notify := fetcher.NewNotification(httpClient, env.Notify.WebhookURL)
	insights := storests.NewStore(rdb)

	cache := placesvc.New(conf, store, places,
		placesvc.WithInsights(insights),
		placesvc.WithNotifier(notify),
	)

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{Addr: env.Cache.CacheAddr})
	defer asynqClient.Close()

	svc := api.New(env, cache, insights, publisher.NewPublisher(asynqClient))

	switch service {
	case "server":
		svc.StartServer(ctx)
	case "worker":
		svc.StartWorker(ctx)
	case "all":
		svc.StartServer(ctx)
		svc.StartWorker(ctx)
	default:
		_ = closeStore(ctx)
		return fmt.Errorf("unknown service %q", service)
	}

	return waitForShutdown(ctx, svc, closeStore)
}

func waitForShutdown(ctx context.Context, svc *api.Service, closeStore func(context.Context) error) error {
	l := ctxlogger.GetLogger(ctx)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan

	l.Info("Shutting down servers...", "signal", sig.String())
	started := time.Now()

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	err := errors.Join(
		svc.Shutdown(shutdownCtx),
		closeStore(shutdownCtx),
	)

	l.Info("All servers shutdown complete", "elapsed_time", time.Since(started))

	return err
}
