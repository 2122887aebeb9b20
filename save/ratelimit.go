package save

import (
	"context"
	"sync"

	"github.com/fwojciec/pagemark"
	"golang.org/x/time/rate"
)

// DefaultRPS is the default per-domain request rate.
const DefaultRPS = 2

// DomainLimiter rate-limits requests per domain so that concurrent
// saves do not hammer a single host.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

var _ pagemark.DomainLimiter = (*DomainLimiter)(nil)

// NewDomainLimiter returns a limiter allowing rps requests per second
// per domain. A non-positive rps falls back to DefaultRPS.
func NewDomainLimiter(rps float64) *DomainLimiter {
	if rps <= 0 {
		rps = DefaultRPS
	}
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until a request to the domain is allowed or the context
// is canceled.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.limiter(domain).Wait(ctx)
}

func (d *DomainLimiter) limiter(domain string) *rate.Limiter {
	d.mu.Lock()
	defer d.mu.Unlock()

	l, ok := d.limiters[domain]
	if !ok {
		l = rate.NewLimiter(rate.Limit(d.rps), 1)
		d.limiters[domain] = l
	}
	return l
}
