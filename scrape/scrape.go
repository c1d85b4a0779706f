// Package scrape runs the conversion pipeline: it fetches an article page,
// extracts it, downloads its images and renders the LaTeX output.
package scrape

import (
	"context"
	"io"
	"log/slog"

	"github.com/ourgreenway/scrape2tex"
)

// Scraper converts one article page per call. It holds no per-document
// state, so a single Scraper may serve several independent runs.
type Scraper struct {
	Fetcher   scrape2tex.Fetcher
	Extractor scrape2tex.Extractor

	// Downloader and Images are optional. When either is nil, images keep
	// their remote URLs.
	Downloader scrape2tex.Downloader
	Images     scrape2tex.ImageStore

	// Renderer defaults to scrape2tex.NewRenderer().
	Renderer *scrape2tex.Renderer

	// Output receives the rendered document. Required by Run.
	Output scrape2tex.OutputWriter

	// Logger defaults to discarding all records.
	Logger *slog.Logger
}

// Request describes a single conversion.
type Request struct {
	URL         string
	OutputPath  string
	HeaderLabel string
	DateText    string
}

// Result summarizes a completed conversion.
type Result struct {
	Document    *scrape2tex.Document
	Fingerprint string
	Images      int
	Skipped     int
	Bytes       int
}

// Scrape fetches the page at url and extracts it.
// Fetch failures are reported as EFETCH; a page without main content as
// ESTRUCTURE.
func (s *Scraper) Scrape(ctx context.Context, url string) (*scrape2tex.Document, error) {
	html, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		if scrape2tex.ErrorCode(err) == scrape2tex.EINTERNAL {
			return nil, scrape2tex.Errorf(scrape2tex.EFETCH, "fetching %s: %v", url, err)
		}
		return nil, err
	}

	return s.Extractor.Extract(html, url)
}

// MaterializeImages downloads every image segment of doc, in order, and
// records where it was stored. An image that cannot be downloaded or stored
// becomes a skip marker; it never fails the run. Returns the number of
// images skipped.
func (s *Scraper) MaterializeImages(ctx context.Context, doc *scrape2tex.Document) int {
	if s.Downloader == nil || s.Images == nil {
		return 0
	}

	var skipped int
	for i := range doc.Segments {
		seg := &doc.Segments[i]
		if seg.Kind != scrape2tex.SegmentImage {
			continue
		}

		path, err := s.materialize(ctx, seg.SourceURL)
		if err != nil {
			s.logger().Warn("image skipped", "url", seg.SourceURL, "err", err)
			seg.Skip()
			skipped++
			continue
		}
		seg.Materialize(path)
	}
	return skipped
}

func (s *Scraper) materialize(ctx context.Context, url string) (string, error) {
	data, err := s.Downloader.Download(ctx, url)
	if err != nil {
		return "", err
	}
	return s.Images.SaveImage(ctx, url, data)
}

// Render renders doc with the configured renderer.
func (s *Scraper) Render(doc *scrape2tex.Document, rc scrape2tex.RenderContext) string {
	r := s.Renderer
	if r == nil {
		r = scrape2tex.NewRenderer()
	}
	return r.Render(doc, rc)
}

// Run performs a full conversion and writes the output. Nothing is written
// unless every fatal step succeeded.
func (s *Scraper) Run(ctx context.Context, req Request) (*Result, error) {
	if req.URL == "" {
		return nil, scrape2tex.Errorf(scrape2tex.EINVALID, "page URL required")
	}
	if req.OutputPath == "" {
		return nil, scrape2tex.Errorf(scrape2tex.EINVALID, "output path required")
	}

	doc, err := s.Scrape(ctx, req.URL)
	if err != nil {
		return nil, err
	}

	// Fingerprint before images are materialized so it only reflects the page.
	fingerprint := doc.Fingerprint()
	images := doc.Images()
	skipped := s.MaterializeImages(ctx, doc)

	tex := s.Render(doc, scrape2tex.RenderContext{
		HeaderLabel: req.HeaderLabel,
		DateText:    req.DateText,
		SourceURL:   req.URL,
	})

	if err := s.Output.WriteOutput(ctx, req.OutputPath, tex); err != nil {
		return nil, err
	}

	s.logger().Info("wrote output",
		"path", req.OutputPath,
		"bytes", len(tex),
		"images", images,
		"skipped", skipped,
		"fingerprint", fingerprint,
	)

	return &Result{
		Document:    doc,
		Fingerprint: fingerprint,
		Images:      images,
		Skipped:     skipped,
		Bytes:       len(tex),
	}, nil
}

func (s *Scraper) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s.Logger
}
