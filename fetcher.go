package torrench

import "context"

// Fetcher retrieves raw response bodies from URLs.
type Fetcher interface {
	// Fetch performs a GET request and returns the response body.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// RateLimiter throttles requests per domain.
type RateLimiter interface {
	// Wait blocks until a request to domain is allowed.
	Wait(ctx context.Context, domain string) error
}
