// Package http provides an HTTP-based implementation of wikimd.Fetcher
// for downloading Wikipedia article pages.
package http

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/wikimd"
)

// DefaultUserAgent is sent with every request. Wikipedia rejects requests
// without a descriptive agent.
const DefaultUserAgent = "Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:133.0) Gecko/20100101 Firefox/133.0"

// Ensure Fetcher implements wikimd.Fetcher at compile time.
var _ wikimd.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves article HTML with plain GET requests. Redirects are
// followed and failures are reported once, without retries.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	limiter   wikimd.DomainLimiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// By default no client timeout is set and the request context governs.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithLimiter makes every request wait for the limiter of its host.
func WithLimiter(l wikimd.DomainLimiter) Option {
	return func(f *Fetcher) {
		f.limiter = l
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx, hostOf(rawURL)); err != nil {
			return "", err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", wikimd.Errorf(wikimd.EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", &wikimd.FetchError{URL: rawURL, Detail: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &wikimd.FetchError{URL: rawURL, StatusCode: resp.StatusCode, Detail: resp.Status}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &wikimd.FetchError{URL: rawURL, Detail: err.Error(), Err: err}
	}

	return string(body), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

// hostOf returns the host of rawURL, or rawURL itself if it cannot be parsed.
func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return u.Host
}
