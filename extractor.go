package scrape2tex

// Extractor turns an article page into a Document.
type Extractor interface {
	// Extract parses html and returns the title, byline, body segments and
	// references found under the page's main content element. Relative
	// image sources are resolved against pageURL.
	//
	// Returns ESTRUCTURE if the page has no main content element.
	Extract(html string, pageURL string) (*Document, error)
}
