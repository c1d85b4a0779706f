package mock

import "github.com/ourgreenway/scrape2tex"

var _ scrape2tex.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of scrape2tex.Extractor.
type Extractor struct {
	ExtractFn func(html string, pageURL string) (*scrape2tex.Document, error)
}

func (e *Extractor) Extract(html string, pageURL string) (*scrape2tex.Document, error) {
	return e.ExtractFn(html, pageURL)
}
