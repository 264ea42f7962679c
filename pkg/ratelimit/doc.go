// Package ratelimit provides a fixed-window request limiter with in-memory and
// Redis-backed counter stores, plus HTTP middleware.
//
// A window opens with the first request for a key and lasts for the
// configured duration. Every request in the window increments the counter;
// requests beyond the limit are rejected until the window has elapsed, after
// which the next request starts a new window with a count of 1.
//
//	store := ratelimit.NewMemoryStore()
//	defer store.Close()
//
//	limiter, err := ratelimit.NewFixedWindow(store, 5, time.Hour)
//	if err != nil {
//	    return err
//	}
//
//	r.With(ratelimit.Middleware(limiter, clientip.Key)).Post("/api/register", h)
//
// MemoryStore is safe for concurrent use and optionally evicts expired
// counters in the background. RedisStore performs the increment and expiry
// in a single Lua script so counts stay exact across instances.
package ratelimit
