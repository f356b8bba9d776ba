package foursquare

import (
	"sync"
	"time"
)

// RateLimiter tracks request timestamps in a sliding window and gates
// outbound calls against a fixed budget. Safe for concurrent use: scheduled
// scans and operator-triggered trending reads share one client.
type RateLimiter struct {
	mu          sync.Mutex
	maxRequests int
	window      time.Duration
	requests    []time.Time
	now         func() time.Time
}

// NewRateLimiter creates a rate limiter allowing maxRequests per window.
func NewRateLimiter(maxRequests int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		maxRequests: maxRequests,
		window:      window,
		now:         time.Now,
	}
}

// Allow prunes timestamps that fell out of the window and reports whether
// another request fits the budget.
func (rl *RateLimiter) Allow() bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-rl.window)

	kept := rl.requests[:0]
	for _, at := range rl.requests {
		if at.After(cutoff) {
			kept = append(kept, at)
		}
	}
	rl.requests = kept

	return len(rl.requests) < rl.maxRequests
}

// Record notes that a request was made.
func (rl *RateLimiter) Record() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.requests = append(rl.requests, rl.now())
}
