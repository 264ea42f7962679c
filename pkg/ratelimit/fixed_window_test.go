package ratelimit_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cykrypt/registration/pkg/ratelimit"
)

type failingStore struct{}

func (failingStore) IncrementAndGet(context.Context, string, int, time.Duration) (int64, time.Duration, error) {
	return 0, 0, errors.New("connection refused")
}

func (failingStore) Delete(context.Context, string) error {
	return errors.New("connection refused")
}

func TestNewFixedWindow(t *testing.T) {
	t.Parallel()

	store := ratelimit.NewMemoryStore(ratelimit.WithCleanupInterval(0))

	tests := []struct {
		name   string
		store  ratelimit.Store
		limit  int
		window time.Duration
		err    error
	}{
		{"nil store", nil, 5, time.Hour, ratelimit.ErrStoreRequired},
		{"zero limit", store, 0, time.Hour, ratelimit.ErrInvalidLimit},
		{"negative window", store, 5, -time.Second, ratelimit.ErrInvalidWindow},
		{"valid", store, 5, time.Hour, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l, err := ratelimit.NewFixedWindow(tt.store, tt.limit, tt.window)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				assert.Nil(t, l)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, l)
		})
	}
}

func TestFixedWindow_Allow(t *testing.T) {
	t.Parallel()

	t.Run("sixth request in the window is rejected", func(t *testing.T) {
		t.Parallel()

		clock := newFakeClock()
		store := ratelimit.NewMemoryStore(ratelimit.WithClock(clock.Now), ratelimit.WithCleanupInterval(0))
		l, err := ratelimit.NewFixedWindow(store, 5, time.Hour, ratelimit.WithLimiterClock(clock.Now))
		require.NoError(t, err)
		ctx := context.Background()

		for i := range 5 {
			res, err := l.Allow(ctx, "203.0.113.7")
			require.NoError(t, err)
			assert.True(t, res.Allowed, "request %d", i+1)
			assert.Equal(t, 5-(i+1), res.Remaining)
			clock.Advance(time.Minute)
		}

		res, err := l.Allow(ctx, "203.0.113.7")
		require.NoError(t, err)
		assert.False(t, res.Allowed)
		assert.Zero(t, res.Remaining)
		assert.Equal(t, 55*time.Minute, res.RetryAfter())
		assert.Equal(t, clock.Now().Add(55*time.Minute), res.ResetAt)
	})

	t.Run("window elapsed admits and restarts the count", func(t *testing.T) {
		t.Parallel()

		clock := newFakeClock()
		store := ratelimit.NewMemoryStore(ratelimit.WithClock(clock.Now), ratelimit.WithCleanupInterval(0))
		l, err := ratelimit.NewFixedWindow(store, 5, time.Hour, ratelimit.WithLimiterClock(clock.Now))
		require.NoError(t, err)
		ctx := context.Background()

		for range 6 {
			_, _ = l.Allow(ctx, "ip")
		}
		clock.Advance(time.Hour + time.Second)

		res, err := l.Allow(ctx, "ip")
		require.NoError(t, err)
		assert.True(t, res.Allowed)
		assert.Equal(t, 4, res.Remaining)
		assert.Zero(t, res.RetryAfter())
	})

	t.Run("empty key", func(t *testing.T) {
		t.Parallel()

		l, err := ratelimit.NewFixedWindow(ratelimit.NewMemoryStore(ratelimit.WithCleanupInterval(0)), 5, time.Hour)
		require.NoError(t, err)

		_, err = l.Allow(context.Background(), "")
		assert.ErrorIs(t, err, ratelimit.ErrKeyRequired)
	})

	t.Run("store failure", func(t *testing.T) {
		t.Parallel()

		l, err := ratelimit.NewFixedWindow(failingStore{}, 5, time.Hour)
		require.NoError(t, err)

		_, err = l.Allow(context.Background(), "ip")
		assert.ErrorIs(t, err, ratelimit.ErrStoreFailed)
		assert.ErrorIs(t, l.Reset(context.Background(), "ip"), ratelimit.ErrStoreFailed)
	})
}

func TestFixedWindow_Reset(t *testing.T) {
	t.Parallel()

	l, err := ratelimit.NewFixedWindow(ratelimit.NewMemoryStore(ratelimit.WithCleanupInterval(0)), 1, time.Hour)
	require.NoError(t, err)
	ctx := context.Background()

	_, _ = l.Allow(ctx, "ip")
	res, _ := l.Allow(ctx, "ip")
	require.False(t, res.Allowed)

	require.NoError(t, l.Reset(ctx, "ip"))
	res, err = l.Allow(ctx, "ip")
	require.NoError(t, err)
	assert.True(t, res.Allowed)

	assert.ErrorIs(t, l.Reset(ctx, ""), ratelimit.ErrKeyRequired)
}
