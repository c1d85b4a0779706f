package slog

import (
	"log/slog"
	"time"

	"github.com/ourgreenway/scrape2tex"
)

// Ensure LoggingExtractor implements scrape2tex.Extractor.
var _ scrape2tex.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging of what was found.
type LoggingExtractor struct {
	next   scrape2tex.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next scrape2tex.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs segment and
// reference counts.
func (e *LoggingExtractor) Extract(html string, pageURL string) (doc *scrape2tex.Document, err error) {
	defer func(begin time.Time) {
		var segments, references, images int
		var title string
		if doc != nil {
			segments, references, images = len(doc.Segments), len(doc.References), doc.Images()
			title = doc.Title
		}
		e.logger.Info("extract",
			"url", pageURL,
			"title", title,
			"segments", segments,
			"images", images,
			"references", references,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html, pageURL)
}
