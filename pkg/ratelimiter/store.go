package ratelimiter

import (
	"context"
	"time"
)

// Store keeps bucket state. Implementations must be safe for concurrent use.
type Store interface {
	// ConsumeTokens refills the bucket for key and takes tokens from it.
	// When fewer than tokens are available nothing is taken and the returned
	// remaining is negative.
	ConsumeTokens(ctx context.Context, key string, tokens int, config Config) (remaining int, resetAt time.Time, err error)

	// Reset forgets the bucket for key.
	Reset(ctx context.Context, key string) error
}

// refill advances a bucket to now and applies a take of n tokens.
// It is shared by the stores so both follow the same arithmetic.
func refill(tokens int, last, now time.Time, n int, cfg Config) (newTokens int, newLast time.Time, remaining int) {
	elapsed := now.Sub(last)
	if elapsed > 0 {
		maxIntervals := int64(cfg.Capacity/cfg.RefillRate + 1)
		intervals := min(int64(elapsed/cfg.RefillInterval), maxIntervals)
		if intervals > 0 {
			tokens = min(tokens+int(intervals)*cfg.RefillRate, cfg.Capacity)
			if tokens == cfg.Capacity {
				last = now
			} else {
				last = last.Add(time.Duration(intervals) * cfg.RefillInterval)
			}
		}
	}

	if tokens >= n {
		tokens -= n
		return tokens, last, tokens
	}
	return tokens, last, tokens - n
}
