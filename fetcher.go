package wikimd

import "context"

// Fetcher retrieves raw HTML from article URLs.
type Fetcher interface {
	// Fetch issues a GET for the URL and returns the response body.
	// A non-200 response or transport failure is reported as *FetchError.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
