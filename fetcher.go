package scrape2tex

import "context"

// Fetcher retrieves the HTML of an article page.
// A failed page fetch aborts the run.
type Fetcher interface {
	// Fetch returns the HTML served at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

// Downloader retrieves raw bytes, such as images, from URLs.
type Downloader interface {
	Download(ctx context.Context, url string) ([]byte, error)
}
