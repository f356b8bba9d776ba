package foursquare

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_DeniesWhenBudgetSpent(t *testing.T) {
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(3, time.Minute)
	limiter.now = func() time.Time { return current }

	for i := 0; i < 3; i++ {
		assert.True(t, limiter.Allow(), "call %d should be allowed", i+1)
		limiter.Record()
	}

	assert.False(t, limiter.Allow(), "4th call within the window should be denied")
}

func TestRateLimiter_RecoversAfterWindowElapses(t *testing.T) {
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(3, time.Minute)
	limiter.now = func() time.Time { return current }

	for i := 0; i < 3; i++ {
		limiter.Record()
	}
	assert.False(t, limiter.Allow())

	// Advance past the window; the old timestamps must be pruned.
	current = current.Add(61 * time.Second)
	assert.True(t, limiter.Allow())
}

func TestRateLimiter_PartialWindowPruning(t *testing.T) {
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(2, time.Minute)
	limiter.now = func() time.Time { return current }

	limiter.Record()
	current = current.Add(40 * time.Second)
	limiter.Record()
	assert.False(t, limiter.Allow())

	// First timestamp ages out, second is still inside the window.
	current = current.Add(25 * time.Second)
	assert.True(t, limiter.Allow())
}

func TestRateLimiter_ConcurrentCallers(t *testing.T) {
	const goroutines = 8
	const callsEach = 50

	limiter := NewRateLimiter(goroutines*callsEach, time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < callsEach; j++ {
				limiter.Allow()
				limiter.Record()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, limiter.requests, goroutines*callsEach)
	assert.False(t, limiter.Allow(), "budget must be fully spent")
}
