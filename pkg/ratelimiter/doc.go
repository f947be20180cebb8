// Package ratelimiter throttles the contact endpoint with a token bucket.
//
// A bucket holds up to Capacity tokens and regains RefillRate tokens every
// RefillInterval. Each request takes one token; a request that finds too few
// tokens is refused without taking any. Buckets live in a MemoryStore on a
// single node or a RedisStore when several nodes must share the limit.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	bucket, err := ratelimiter.NewBucket(store, cfg.RateLimit)
//	if err != nil {
//		return err
//	}
//	r.With(ratelimiter.Middleware(bucket, ratelimiter.ByClientIP,
//		ratelimiter.WithLogger(log),
//	)).Post("/api/contact", contactHandler)
//
// The middleware sets X-RateLimit-Limit, X-RateLimit-Remaining,
// X-RateLimit-Reset and, on refusal, Retry-After.
package ratelimiter
