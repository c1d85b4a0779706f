package scrape2tex

import "context"

// ImageStore persists downloaded images.
type ImageStore interface {
	// SaveImage stores data under a filename derived from the basename of
	// sourceURL and returns the path to reference from the LaTeX source.
	SaveImage(ctx context.Context, sourceURL string, data []byte) (path string, err error)
}

// OutputWriter persists the rendered LaTeX source.
type OutputWriter interface {
	// WriteOutput replaces the file at path with content.
	WriteOutput(ctx context.Context, path string, content string) error
}
