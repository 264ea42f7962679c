package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/cykrypt/registration/modules/registration"
	"github.com/cykrypt/registration/pkg/clientip"
	"github.com/cykrypt/registration/pkg/config"
	"github.com/cykrypt/registration/pkg/httpserver"
	"github.com/cykrypt/registration/pkg/logger"
	"github.com/cykrypt/registration/pkg/ratelimit"
	"github.com/cykrypt/registration/pkg/redis"
	"github.com/cykrypt/registration/pkg/requestid"
	"github.com/cykrypt/registration/pkg/telegram"
	regsvc "github.com/cykrypt/registration/svc/registration"
)

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("server stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg serverConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	log := logger.New(
		logger.WithEnvironment(cfg.AppEnv, cfg.ServiceName),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	tg := telegram.NewClient(cfg.Telegram)
	if err := tg.Ready(); err != nil {
		log.Warn("telegram credentials missing, registrations will be refused")
	}

	limiter, checks, closeStore, err := newLimiter(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	svc := regsvc.NewService(tg, regsvc.WithLogger(log))
	checks = append(checks, httpserver.Check{
		Name: "telegram",
		Fn:   func(context.Context) error { return svc.Ready() },
	})

	srv := httpserver.NewFromConfig(cfg.HTTP,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(addr string) {
			log.Info("listening", slog.String("addr", addr), slog.String("rate_limit_store", cfg.RateLimit.Store))
		}),
	)
	return srv.Run(ctx, newRouter(svc, limiter, log, checks...))
}

func newRouter(svc registration.Submitter, limiter ratelimit.Limiter, log *slog.Logger, checks ...httpserver.Check) http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)

	r.Get("/healthz", httpserver.LivenessHandler())
	r.Get("/readyz", httpserver.ReadinessHandler(log, 2*time.Second, checks...))
	r.Mount("/api", registration.Router(svc, limiter, registration.WithLogger(log)))

	return r
}

// newLimiter builds the per-IP limiter on the configured store. The returned
// checks probe the store for readiness.
func newLimiter(ctx context.Context, cfg serverConfig, log *slog.Logger) (ratelimit.Limiter, []httpserver.Check, func(), error) {
	rl := cfg.RateLimit

	var (
		store   ratelimit.Store
		checks  []httpserver.Check
		closeFn = func() {}
	)

	switch rl.Store {
	case storeRedis:
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, nil, err
		}
		store = ratelimit.NewRedisStore(client, ratelimit.WithKeyPrefix(cfg.Redis.KeyPrefix))
		checks = append(checks, httpserver.Check{Name: "redis", Fn: redis.Healthcheck(client)})
		closeFn = func() {
			if err := client.Close(); err != nil {
				log.Error("closing redis client", logger.Error(err))
			}
		}
	case storeMemory, "":
		mem := ratelimit.NewMemoryStore(ratelimit.WithCleanupInterval(rl.CleanupInterval))
		store = mem
		closeFn = func() { _ = mem.Close() }
	default:
		return nil, nil, nil, fmt.Errorf("unknown RATE_LIMIT_STORE %q", rl.Store)
	}

	limiter, err := ratelimit.NewFixedWindow(store, rl.MaxPerIP, rl.Window)
	if err != nil {
		closeFn()
		return nil, nil, nil, errors.Join(errors.New("rate limiter"), err)
	}
	return limiter, checks, closeFn, nil
}
