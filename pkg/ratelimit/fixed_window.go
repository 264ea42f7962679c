package ratelimit

import (
	"context"
	"errors"
	"time"
)

// FixedWindow admits up to limit requests per key in each window. The window
// starts with the first request for a key and is replaced by a fresh one with
// a count of 1 once it has elapsed.
type FixedWindow struct {
	store  Store
	limit  int
	window time.Duration
	now    func() time.Time
}

// FixedWindowOption configures a FixedWindow.
type FixedWindowOption func(*FixedWindow)

// WithLimiterClock sets the clock used to compute Result.ResetAt.
func WithLimiterClock(now func() time.Time) FixedWindowOption {
	return func(l *FixedWindow) {
		if now != nil {
			l.now = now
		}
	}
}

// NewFixedWindow creates a fixed-window limiter over store.
func NewFixedWindow(store Store, limit int, window time.Duration, opts ...FixedWindowOption) (*FixedWindow, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}
	if window <= 0 {
		return nil, ErrInvalidWindow
	}

	l := &FixedWindow{
		store:  store,
		limit:  limit,
		window: window,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Allow counts the request and rejects it once the window count exceeds the
// limit. Rejected requests are counted too.
func (l *FixedWindow) Allow(ctx context.Context, key string) (*Result, error) {
	if key == "" {
		return nil, ErrKeyRequired
	}

	count, ttl, err := l.store.IncrementAndGet(ctx, key, 1, l.window)
	if err != nil {
		return nil, errors.Join(ErrStoreFailed, err)
	}

	remaining := max(l.limit-int(count), 0)

	return &Result{
		Allowed:   count <= int64(l.limit),
		Limit:     l.limit,
		Remaining: remaining,
		ResetAt:   l.now().Add(ttl),
		ResetIn:   ttl,
	}, nil
}

// Reset clears the counter for key.
func (l *FixedWindow) Reset(ctx context.Context, key string) error {
	if key == "" {
		return ErrKeyRequired
	}
	if err := l.store.Delete(ctx, key); err != nil {
		return errors.Join(ErrStoreFailed, err)
	}
	return nil
}
