package mock

import (
	"context"

	"github.com/ourgreenway/scrape2tex"
)

var (
	_ scrape2tex.Fetcher    = (*Fetcher)(nil)
	_ scrape2tex.Downloader = (*Downloader)(nil)
)

// Fetcher is a mock implementation of scrape2tex.Fetcher.
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

// Downloader is a mock implementation of scrape2tex.Downloader.
type Downloader struct {
	DownloadFn func(ctx context.Context, url string) ([]byte, error)
}

func (d *Downloader) Download(ctx context.Context, url string) ([]byte, error) {
	return d.DownloadFn(ctx, url)
}
