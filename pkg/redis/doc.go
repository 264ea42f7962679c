// Package redis connects to Redis for the shared rate-limit store and
// exposes a readiness probe.
//
//	client, err := redis.Connect(ctx, cfg.Redis)
//	if err != nil {
//	    return err
//	}
//	store := ratelimit.NewRedisStore(client, ratelimit.WithKeyPrefix(cfg.Redis.KeyPrefix))
//
// Redis is only used when RATE_LIMIT_STORE=redis.
package redis
