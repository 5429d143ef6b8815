package ratelimit

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter paces requests sent to the upstream provider.
//
// The provider is used at interactive, human-paced volume so the limiter is
// unlimited unless a positive rate is configured.
type Limiter struct {
	limiter *rate.Limiter
}

// New returns a limiter allowing rps requests per second with a burst of one.
// rps <= 0 disables limiting.
func New(rps float64) *Limiter {
	if rps <= 0 {
		return &Limiter{limiter: rate.NewLimiter(rate.Inf, 1)}
	}
	return &Limiter{limiter: rate.NewLimiter(rate.Limit(rps), 1)}
}

// Wait blocks until the limiter permits a request.
// It returns an error if the context is canceled before the request can proceed
func (l *Limiter) Wait(ctx context.Context) error {
	if l == nil {
		return nil
	}
	return l.limiter.Wait(ctx)
}

// Allow reports whether a request may happen now
func (l *Limiter) Allow() bool {
	if l == nil {
		return true
	}
	return l.limiter.Allow()
}

// Unlimited reports whether the limiter lets every request through
func (l *Limiter) Unlimited() bool {
	return l == nil || l.limiter.Limit() == rate.Inf
}
