// Package redis connects to the optional Redis instance that backs the
// shared contact-form rate limiter when the site runs on more than one node.
//
//	if cfg.Redis.Enabled() {
//		client, err := redis.Connect(ctx, cfg.Redis)
//		...
//		store := ratelimiter.NewRedisStore(client, ratelimiter.WithKeyPrefix(cfg.Redis.KeyPrefix))
//	}
package redis
