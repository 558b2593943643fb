package mock

import (
	"context"

	"github.com/fwojciec/torrench"
)

var _ torrench.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of torrench.Fetcher.
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

var _ torrench.RateLimiter = (*RateLimiter)(nil)

// RateLimiter is a mock implementation of torrench.RateLimiter.
type RateLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (r *RateLimiter) Wait(ctx context.Context, domain string) error {
	return r.WaitFn(ctx, domain)
}
