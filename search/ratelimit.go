package search

import (
	"context"
	"sync"
	"time"

	"github.com/fwojciec/wikimd"
	"golang.org/x/time/rate"
)

var _ wikimd.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter spaces requests to each host by a fixed interval using a
// token bucket per host. Every Wikipedia language edition is its own
// host, so a batch spanning languages is throttled per edition.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	every    rate.Limit
}

// NewDomainLimiter allows one request per interval to each host, with no
// bursting. A non-positive interval disables limiting.
func NewDomainLimiter(interval time.Duration) *DomainLimiter {
	every := rate.Inf
	if interval > 0 {
		every = rate.Every(interval)
	}
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		every:    every,
	}
}

// Wait blocks until the host's limiter grants a token.
// Returns an error if the context is canceled first.
func (d *DomainLimiter) Wait(ctx context.Context, host string) error {
	d.mu.Lock()
	limiter, ok := d.limiters[host]
	if !ok {
		limiter = rate.NewLimiter(d.every, 1)
		d.limiters[host] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}
