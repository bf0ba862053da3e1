package crawl

import (
	"context"
	"sync"
	"time"

	"github.com/fwojciec/ciagent"
	"golang.org/x/time/rate"
)

var _ ciagent.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter enforces the politeness delay between requests to a host.
// Each host gets its own token bucket with a burst of 1, so the first
// request proceeds immediately and later ones are spaced by 1/rps.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewDomainLimiter creates a new DomainLimiter with the specified requests per second limit.
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// NewDelayLimiter creates a DomainLimiter that spaces requests to the same
// host by at least d. A non-positive d disables limiting.
func NewDelayLimiter(d time.Duration) *DomainLimiter {
	if d <= 0 {
		return NewDomainLimiter(float64(rate.Inf))
	}
	return NewDomainLimiter(float64(time.Second) / float64(d))
}

// Wait blocks until the rate limit allows a request to the domain.
// Returns an error if the context is canceled before the wait completes.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	d.mu.Lock()
	limiter, ok := d.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(d.rps), 1)
		d.limiters[domain] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}
