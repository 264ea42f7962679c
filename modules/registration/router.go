package registration

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cykrypt/registration/pkg/binder"
	"github.com/cykrypt/registration/pkg/clientip"
	"github.com/cykrypt/registration/pkg/logger"
	"github.com/cykrypt/registration/pkg/ratelimit"
	regsvc "github.com/cykrypt/registration/svc/registration"
)

// Submitter is the registration service as seen by the endpoint.
type Submitter interface {
	Ready() error
	Submit(ctx context.Context, reg regsvc.Registration) (regsvc.Receipt, error)
}

type routerConfig struct {
	log     *slog.Logger
	maxBody int64
}

// Option configures the router.
type Option func(*routerConfig)

// WithLogger sets the logger used for rejected and failed requests.
func WithLogger(l *slog.Logger) Option {
	return func(c *routerConfig) {
		if l != nil {
			c.log = l
		}
	}
}

// WithMaxBodySize overrides the request body limit.
func WithMaxBodySize(n int64) Option {
	return func(c *routerConfig) {
		if n > 0 {
			c.maxBody = n
		}
	}
}

// Router returns the registration routes. Limiter decisions are keyed by
// client IP under the "register" namespace. Only POST requests count, so
// preflight and method probes never use up an address's quota.
func Router(svc Submitter, limiter ratelimit.Limiter, opts ...Option) chi.Router {
	if svc == nil {
		panic("registration.Router: service is required")
	}
	if limiter == nil {
		panic("registration.Router: limiter is required")
	}

	cfg := routerConfig{
		log:     slog.New(slog.DiscardHandler),
		maxBody: binder.DefaultMaxJSONSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	log := cfg.log.With(logger.Component("registration.http"))

	h := &handler{
		svc:  svc,
		bind: binder.JSON(binder.WithMaxSize(cfg.maxBody)),
		log:  log,
	}

	limit := ratelimit.Middleware(limiter, ratelimit.Prefixed("register", clientip.Key),
		ratelimit.WithOnLimitReached(func(w http.ResponseWriter, r *http.Request, res *ratelimit.Result) {
			log.WarnContext(r.Context(), "registration rate limited",
				logger.ClientIP(clientip.Key(r)),
				logger.Duration(res.RetryAfter()),
			)
			writeError(w, http.StatusTooManyRequests, MsgRateLimited)
		}),
		ratelimit.WithOnError(func(r *http.Request, err error) {
			log.ErrorContext(r.Context(), "rate limiter unavailable, allowing request", logger.Error(err))
		}),
		ratelimit.WithSkipFunc(func(r *http.Request) bool {
			return r.Method != http.MethodPost
		}),
	)

	r := chi.NewRouter()
	r.Use(clientip.Middleware, limit)
	r.Post("/register", h.register)
	return r
}
