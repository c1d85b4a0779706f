// Package http provides net/http implementations of scrape2tex.Fetcher and
// scrape2tex.Downloader for static article pages and their images.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ourgreenway/scrape2tex"
)

// DefaultFetchTimeout is the default timeout for a single request.
const DefaultFetchTimeout = 20 * time.Second

// DefaultMaxBytes caps the size of a response body (32 MiB).
const DefaultMaxBytes = 32 << 20

// DefaultUserAgent is sent with every request unless overridden.
const DefaultUserAgent = "scrape2tex/1.0 (+https://github.com/Our-Greenway/scrape2TeX)"

// Ensure Fetcher implements scrape2tex.Fetcher and scrape2tex.Downloader at compile time.
var (
	_ scrape2tex.Fetcher    = (*Fetcher)(nil)
	_ scrape2tex.Downloader = (*Fetcher)(nil)
)

// Fetcher retrieves pages and images using plain HTTP GET requests.
// It does not execute JavaScript and never retries.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	maxBytes  int64
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for each request.
// Defaults to DefaultFetchTimeout (20s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithMaxBytes limits how many bytes of a response body are accepted.
// Larger responses fail.
func WithMaxBytes(n int64) Option {
	return func(f *Fetcher) {
		f.maxBytes = n
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
		maxBytes:  DefaultMaxBytes,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content of the page at url.
// Network failures and non-2xx responses are returned as EFETCH errors.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	body, err := f.get(ctx, url)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// Download retrieves the raw bytes served at url.
func (f *Fetcher) Download(ctx context.Context, url string) ([]byte, error) {
	return f.get(ctx, url)
}

func (f *Fetcher) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, scrape2tex.Errorf(scrape2tex.EINVALID, "invalid request URL %q: %v", url, err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, scrape2tex.Errorf(scrape2tex.EFETCH, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", url, err)
	}
	if int64(len(body)) > f.maxBytes {
		return nil, scrape2tex.Errorf(scrape2tex.EFETCH, "response from %s exceeds %d bytes", url, f.maxBytes)
	}

	return body, nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
