package mock

import (
	"context"

	"github.com/fwojciec/pagemark"
)

// Compile-time interface verification.
var (
	_ pagemark.Fetcher       = (*Fetcher)(nil)
	_ pagemark.Prober        = (*Prober)(nil)
	_ pagemark.DomainLimiter = (*DomainLimiter)(nil)
)

// Fetcher is a mock implementation of pagemark.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

// Prober is a mock implementation of pagemark.Prober.
type Prober struct {
	NeedsRenderingFn func(html string) bool
}

func (p *Prober) NeedsRendering(html string) bool {
	return p.NeedsRenderingFn(html)
}

// DomainLimiter is a mock implementation of pagemark.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
