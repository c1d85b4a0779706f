package mock

import (
	"context"

	"github.com/ourgreenway/scrape2tex"
)

var (
	_ scrape2tex.ImageStore   = (*ImageStore)(nil)
	_ scrape2tex.OutputWriter = (*OutputWriter)(nil)
)

// ImageStore is a mock implementation of scrape2tex.ImageStore.
type ImageStore struct {
	SaveImageFn func(ctx context.Context, sourceURL string, data []byte) (string, error)
}

func (s *ImageStore) SaveImage(ctx context.Context, sourceURL string, data []byte) (string, error) {
	return s.SaveImageFn(ctx, sourceURL, data)
}

// OutputWriter is a mock implementation of scrape2tex.OutputWriter.
type OutputWriter struct {
	WriteOutputFn func(ctx context.Context, path string, content string) error
}

func (w *OutputWriter) WriteOutput(ctx context.Context, path string, content string) error {
	return w.WriteOutputFn(ctx, path, content)
}
