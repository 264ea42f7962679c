package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cykrypt/registration/pkg/config"
	"github.com/cykrypt/registration/pkg/httpserver"
	"github.com/cykrypt/registration/pkg/ratelimit"
	"github.com/cykrypt/registration/pkg/telegram"
	regsvc "github.com/cykrypt/registration/svc/registration"
)

func loadConfig(t *testing.T, vars map[string]string) serverConfig {
	t.Helper()
	var cfg serverConfig
	require.NoError(t, config.Load(&cfg, config.WithEnviron(vars)))
	return cfg
}

func TestConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := loadConfig(t, map[string]string{})
	assert.Equal(t, "memory", cfg.RateLimit.Store)
	assert.Equal(t, 5, cfg.RateLimit.MaxPerIP)
	assert.Equal(t, time.Hour, cfg.RateLimit.Window)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, 10*time.Second, cfg.Telegram.Timeout)
	assert.False(t, cfg.Telegram.Configured())
}

func TestNewLimiter(t *testing.T) {
	t.Parallel()

	t.Run("memory store", func(t *testing.T) {
		t.Parallel()

		cfg := loadConfig(t, map[string]string{"RATE_LIMIT_MAX_PER_IP": "2"})
		limiter, checks, closeFn, err := newLimiter(context.Background(), cfg, nil)
		require.NoError(t, err)
		t.Cleanup(closeFn)
		assert.Empty(t, checks)

		for range 2 {
			res, err := limiter.Allow(context.Background(), "k")
			require.NoError(t, err)
			assert.True(t, res.Allowed)
		}
		res, err := limiter.Allow(context.Background(), "k")
		require.NoError(t, err)
		assert.False(t, res.Allowed)
	})

	t.Run("unknown store", func(t *testing.T) {
		t.Parallel()

		cfg := loadConfig(t, map[string]string{"RATE_LIMIT_STORE": "etcd"})
		_, _, _, err := newLimiter(context.Background(), cfg, nil)
		assert.Error(t, err)
	})

	t.Run("invalid limit", func(t *testing.T) {
		t.Parallel()

		cfg := loadConfig(t, map[string]string{"RATE_LIMIT_MAX_PER_IP": "0"})
		_, _, _, err := newLimiter(context.Background(), cfg, nil)
		assert.Error(t, err)
	})
}

func TestRouter(t *testing.T) {
	t.Parallel()

	cfg := loadConfig(t, map[string]string{})
	limiter, _, closeFn, err := newLimiter(context.Background(), cfg, nil)
	require.NoError(t, err)
	t.Cleanup(closeFn)

	svc := regsvc.NewService(telegram.NewClient(cfg.Telegram))
	h := newRouter(svc, limiter, nil, httpserver.Check{
		Name: "telegram",
		Fn:   func(context.Context) error { return svc.Ready() },
	})

	t.Run("liveness", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	})

	t.Run("readiness without telegram credentials", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("register refuses without credentials", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/api/register", nil)
		req.Header.Set("X-Forwarded-For", "192.0.2.10")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"success":false,"error":"Server configuration error"}`, rec.Body.String())
	})
}

func TestRouter_ReadyWithSink(t *testing.T) {
	t.Parallel()

	h := newRouter(regsvc.NewService(nil), nopLimiter{}, nil, httpserver.Check{
		Name: "ok",
		Fn:   func(context.Context) error { return nil },
	})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	failing := newRouter(regsvc.NewService(nil), nopLimiter{}, nil, httpserver.Check{
		Name: "down",
		Fn:   func(context.Context) error { return errors.New("down") },
	})
	rec = httptest.NewRecorder()
	failing.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

type nopLimiter struct{}

func (nopLimiter) Allow(context.Context, string) (*ratelimit.Result, error) {
	return &ratelimit.Result{Allowed: true, Limit: 1, Remaining: 1}, nil
}

func (nopLimiter) Reset(context.Context, string) error { return nil }
