// Package filter holds the built-in dispatch filters: pre-execution hooks
// that may cancel a command call without raising.
package filter

import (
	"sync"

	"golang.org/x/time/rate"

	"herald/internal/dispatch"
)

// RateLimit cancels calls from users that fire commands faster than the
// configured rate. It cancels rather than raises, so the rest of the chain
// still runs and the user simply gets no response.
type RateLimit struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

// NewRateLimit allows perMinute invocations per user with the given burst.
func NewRateLimit(perMinute, burst int) *RateLimit {
	return &RateLimit{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(float64(perMinute) / 60.0),
		burst:    burst,
	}
}

func (r *RateLimit) limiterFor(userID string) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.limiters[userID]
	if !ok {
		l = rate.NewLimiter(r.limit, r.burst)
		r.limiters[userID] = l
	}
	return l
}

// Filter implements dispatch.Filter.
func (r *RateLimit) Filter(call *dispatch.CommandCall, ctx dispatch.Context, _ *dispatch.ArgumentMap) error {
	if !r.limiterFor(ctx.AuthorID()).Allow() {
		call.Cancel()
	}
	return nil
}
