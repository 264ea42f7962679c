package ratelimit

import (
	"context"
	"time"
)

// Result contains the result of a rate limit check.
type Result struct {
	// Allowed indicates whether the request is allowed.
	Allowed bool

	// Limit is the maximum number of requests allowed in the window.
	Limit int

	// Remaining is the number of requests remaining in the current window.
	Remaining int

	// ResetAt is the time when the current window ends.
	ResetAt time.Time

	// ResetIn is the time left in the current window when the check ran.
	ResetIn time.Duration
}

// RetryAfter returns how long to wait before the next request is allowed.
// Returns 0 if the current request was allowed.
func (r *Result) RetryAfter() time.Duration {
	if r.Allowed {
		return 0
	}
	return r.ResetIn
}

// Limiter decides whether a request identified by key may proceed.
type Limiter interface {
	// Allow counts one request for key and reports whether it is admitted.
	Allow(ctx context.Context, key string) (*Result, error)

	// Reset forgets all requests counted for key.
	Reset(ctx context.Context, key string) error
}

// Store keeps fixed-window counters.
type Store interface {
	// IncrementAndGet atomically adds incr to the counter for key and returns
	// the new value and the time left in the window. A missing or expired
	// counter starts a new window of the given length.
	IncrementAndGet(ctx context.Context, key string, incr int, window time.Duration) (current int64, ttl time.Duration, err error)

	// Delete removes the counter for key.
	Delete(ctx context.Context, key string) error
}
