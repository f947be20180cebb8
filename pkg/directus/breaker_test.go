package directus_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Marco22874/lares-frontend/pkg/directus"
)

func TestCircuitBreaker(t *testing.T) {
	t.Parallel()

	t.Run("opens after threshold", func(t *testing.T) {
		t.Parallel()
		b := directus.NewCircuitBreaker(2, 1, time.Hour)

		assert.True(t, b.Allow())
		b.RecordFailure()
		assert.Equal(t, directus.BreakerClosed, b.State())

		b.RecordFailure()
		assert.Equal(t, directus.BreakerOpen, b.State())
		assert.False(t, b.Allow())
	})

	t.Run("success resets failures", func(t *testing.T) {
		t.Parallel()
		b := directus.NewCircuitBreaker(2, 1, time.Hour)

		b.RecordFailure()
		b.RecordSuccess()
		b.RecordFailure()
		assert.Equal(t, directus.BreakerClosed, b.State())
	})

	t.Run("half-open probe closes", func(t *testing.T) {
		t.Parallel()
		b := directus.NewCircuitBreaker(1, 2, 20*time.Millisecond)

		b.RecordFailure()
		assert.False(t, b.Allow())

		time.Sleep(30 * time.Millisecond)
		assert.Equal(t, directus.BreakerHalfOpen, b.State())
		assert.True(t, b.Allow())

		b.RecordSuccess()
		assert.Equal(t, directus.BreakerHalfOpen, b.State())
		b.RecordSuccess()
		assert.Equal(t, directus.BreakerClosed, b.State())
	})

	t.Run("failed probe reopens", func(t *testing.T) {
		t.Parallel()
		b := directus.NewCircuitBreaker(1, 1, 20*time.Millisecond)

		b.RecordFailure()
		time.Sleep(30 * time.Millisecond)
		assert.True(t, b.Allow())

		b.RecordFailure()
		assert.Equal(t, directus.BreakerOpen, b.State())
		assert.False(t, b.Allow())
	})

	t.Run("reset", func(t *testing.T) {
		t.Parallel()
		b := directus.NewCircuitBreaker(1, 1, time.Hour)

		b.RecordFailure()
		b.Reset()
		assert.Equal(t, directus.BreakerClosed, b.State())
		assert.True(t, b.Allow())
	})

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		b := directus.NewCircuitBreaker(0, 0, 0)
		for range 4 {
			b.RecordFailure()
		}
		assert.Equal(t, directus.BreakerClosed, b.State())
		b.RecordFailure()
		assert.Equal(t, directus.BreakerOpen, b.State())
	})
}

func TestBreakerState_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "closed", directus.BreakerClosed.String())
	assert.Equal(t, "open", directus.BreakerOpen.String())
	assert.Equal(t, "half-open", directus.BreakerHalfOpen.String())
	assert.Equal(t, "unknown", directus.BreakerState(9).String())
}

func TestCircuitBreaker_Concurrent(t *testing.T) {
	t.Parallel()

	b := directus.NewCircuitBreaker(1000, 1, time.Hour)
	var wg sync.WaitGroup
	for i := range 200 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if b.Allow() {
				if i%2 == 0 {
					b.RecordFailure()
				} else {
					b.RecordSuccess()
				}
			}
			_ = b.State()
		}()
	}
	wg.Wait()
	assert.Equal(t, directus.BreakerClosed, b.State())
}
