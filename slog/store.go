package slog

import (
	"context"
	"log/slog"

	"github.com/ourgreenway/scrape2tex"
)

// Ensure LoggingImageStore implements scrape2tex.ImageStore.
var _ scrape2tex.ImageStore = (*LoggingImageStore)(nil)

// LoggingImageStore wraps an ImageStore with logging.
type LoggingImageStore struct {
	next   scrape2tex.ImageStore
	logger *slog.Logger
}

// NewLoggingImageStore creates a new LoggingImageStore.
func NewLoggingImageStore(next scrape2tex.ImageStore, logger *slog.Logger) *LoggingImageStore {
	return &LoggingImageStore{next: next, logger: logger}
}

// SaveImage delegates to the wrapped store and logs where the image went.
func (s *LoggingImageStore) SaveImage(ctx context.Context, sourceURL string, data []byte) (path string, err error) {
	defer func() {
		s.logger.Info("save image",
			"url", sourceURL,
			"path", path,
			"bytes", len(data),
			"err", err,
		)
	}()
	return s.next.SaveImage(ctx, sourceURL, data)
}
