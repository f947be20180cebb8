package ratelimiter_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Marco22874/lares-frontend/pkg/ratelimiter"
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func newClock() *clock {
	return &clock{now: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)}
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

var contactLimit = ratelimiter.Config{Capacity: 3, RefillRate: 1, RefillInterval: time.Minute}

func newBucket(t *testing.T, clk *clock) (*ratelimiter.Bucket, *ratelimiter.MemoryStore) {
	t.Helper()
	store := ratelimiter.NewMemoryStore(
		ratelimiter.WithCleanupInterval(0),
		ratelimiter.WithClock(clk.Now),
	)
	t.Cleanup(store.Close)
	b, err := ratelimiter.NewBucket(store, contactLimit)
	require.NoError(t, err)
	return b, store
}

func TestNewBucketValidation(t *testing.T) {
	t.Parallel()

	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0))
	defer store.Close()

	tests := []struct {
		name string
		cfg  ratelimiter.Config
	}{
		{name: "zero capacity", cfg: ratelimiter.Config{RefillRate: 1, RefillInterval: time.Second}},
		{name: "zero rate", cfg: ratelimiter.Config{Capacity: 1, RefillInterval: time.Second}},
		{name: "zero interval", cfg: ratelimiter.Config{Capacity: 1, RefillRate: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ratelimiter.NewBucket(store, tt.cfg)
			require.ErrorIs(t, err, ratelimiter.ErrInvalidConfig)
		})
	}

	_, err := ratelimiter.NewBucket(nil, contactLimit)
	require.ErrorIs(t, err, ratelimiter.ErrInvalidConfig)
}

func TestBucket(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("burst then refuse without consuming", func(t *testing.T) {
		t.Parallel()
		clk := newClock()
		b, _ := newBucket(t, clk)

		for i := range 3 {
			res, err := b.Allow(ctx, "192.0.2.1")
			require.NoError(t, err)
			assert.True(t, res.Allowed())
			assert.Equal(t, 2-i, res.Remaining)
			assert.Equal(t, 3, res.Limit)
		}

		res, err := b.Allow(ctx, "192.0.2.1")
		require.NoError(t, err)
		assert.False(t, res.Allowed())
		assert.Equal(t, -1, res.Remaining)

		status, err := b.Status(ctx, "192.0.2.1")
		require.NoError(t, err)
		assert.Equal(t, 0, status.Remaining)
	})

	t.Run("refills per interval", func(t *testing.T) {
		t.Parallel()
		clk := newClock()
		b, _ := newBucket(t, clk)

		res, err := b.AllowN(ctx, "k", 3)
		require.NoError(t, err)
		assert.Equal(t, 0, res.Remaining)
		assert.Equal(t, clk.Now().Add(time.Minute), res.ResetAt)

		clk.Advance(90 * time.Second)
		res, err = b.Allow(ctx, "k")
		require.NoError(t, err)
		assert.True(t, res.Allowed())
		assert.Equal(t, 0, res.Remaining)

		clk.Advance(30 * time.Second)
		res, err = b.Status(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, 1, res.Remaining)

		clk.Advance(time.Hour)
		res, err = b.Status(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, 3, res.Remaining)
	})

	t.Run("keys are independent", func(t *testing.T) {
		t.Parallel()
		b, _ := newBucket(t, newClock())
		_, err := b.AllowN(ctx, "a", 3)
		require.NoError(t, err)

		res, err := b.Allow(ctx, "b")
		require.NoError(t, err)
		assert.True(t, res.Allowed())
	})

	t.Run("reset", func(t *testing.T) {
		t.Parallel()
		b, store := newBucket(t, newClock())
		_, err := b.AllowN(ctx, "a", 3)
		require.NoError(t, err)
		require.NoError(t, b.Reset(ctx, "a"))
		assert.Equal(t, 0, store.Len())

		res, err := b.Allow(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, 2, res.Remaining)
	})

	t.Run("invalid token count", func(t *testing.T) {
		t.Parallel()
		b, _ := newBucket(t, newClock())
		_, err := b.AllowN(ctx, "a", 0)
		require.ErrorIs(t, err, ratelimiter.ErrInvalidTokenCount)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		b, _ := newBucket(t, newClock())
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := b.Allow(cctx, "a")
		require.ErrorIs(t, err, ratelimiter.ErrContextCancelled)
	})

	t.Run("concurrent requests never exceed capacity", func(t *testing.T) {
		t.Parallel()
		b, _ := newBucket(t, newClock())

		var allowed atomic.Int32
		var wg sync.WaitGroup
		for range 50 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				res, err := b.Allow(ctx, "shared")
				if err == nil && res.Allowed() {
					allowed.Add(1)
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, int32(3), allowed.Load())
	})
}

func TestMemoryStoreRemoveStale(t *testing.T) {
	t.Parallel()

	clk := newClock()
	store := ratelimiter.NewMemoryStore(
		ratelimiter.WithCleanupInterval(0),
		ratelimiter.WithStaleAfter(10*time.Minute),
		ratelimiter.WithClock(clk.Now),
	)
	defer store.Close()

	ctx := context.Background()
	_, _, err := store.ConsumeTokens(ctx, "old", 1, contactLimit)
	require.NoError(t, err)
	clk.Advance(11 * time.Minute)
	_, _, err = store.ConsumeTokens(ctx, "fresh", 1, contactLimit)
	require.NoError(t, err)

	assert.Equal(t, 1, store.RemoveStale())
	assert.Equal(t, 1, store.Len())
	assert.NotPanics(t, func() {
		store.Close()
		store.Close()
	})
}

func TestResult(t *testing.T) {
	t.Parallel()

	ok := &ratelimiter.Result{Remaining: 0, ResetAt: time.Now().Add(time.Minute)}
	assert.True(t, ok.Allowed())
	assert.Zero(t, ok.RetryAfter())

	denied := &ratelimiter.Result{Remaining: -1, ResetAt: time.Now().Add(time.Minute)}
	assert.False(t, denied.Allowed())
	assert.InDelta(t, time.Minute.Seconds(), denied.RetryAfter().Seconds(), 1)

	past := &ratelimiter.Result{Remaining: -1, ResetAt: time.Now().Add(-time.Minute)}
	assert.Zero(t, past.RetryAfter())
}
