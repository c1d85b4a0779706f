// Package goquery provides the goquery-based implementation of
// scrape2tex.Extractor for research brief pages.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ourgreenway/scrape2tex"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// MainSelector selects the element holding the article. Everything outside
// it is ignored.
const MainSelector = "main"

// Byline markers searched for in level-3 headings.
const (
	AuthorMarker = "WRITTEN BY:"
	EditorMarker = "EDITED BY:"
)

// Ensure Extractor implements scrape2tex.Extractor at compile time.
var _ scrape2tex.Extractor = (*Extractor)(nil)

// Extractor walks the main content of an article page and splits it into
// segments and references.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses rawHTML and returns the extracted document.
func (e *Extractor) Extract(rawHTML string, pageURL string) (*scrape2tex.Document, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, scrape2tex.Errorf(scrape2tex.EINVALID, "invalid page URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, scrape2tex.Errorf(scrape2tex.EINVALID, "failed to parse HTML: %v", err)
	}

	content := doc.Find(MainSelector).First()
	if content.Length() == 0 {
		return nil, scrape2tex.Errorf(scrape2tex.ESTRUCTURE, "no <main> element found in %s", pageURL)
	}

	out := &scrape2tex.Document{
		Title:     scrape2tex.TitleCase(strippedText(content.Find("h1").First().Nodes...)),
		Author:    byline(content, AuthorMarker),
		EditedBy:  byline(content, EditorMarker),
		SourceURL: pageURL,
	}

	// cascadia matches selector groups in document order.
	state := scrape2tex.StateBody
	content.Find("h2, p, img").Each(func(_ int, sel *goquery.Selection) {
		n := sel.Get(0)
		switch n.DataAtom {
		case atom.H2:
			state = state.Next(scrape2tex.EventHeading)
			text := scrape2tex.Escape(scrape2tex.Capitalize(strippedText(n)))
			out.Segments = append(out.Segments, scrape2tex.Subheading(text))

		case atom.P:
			if scrape2tex.IsSourceMarker(strippedText(n)) {
				state = state.Next(scrape2tex.EventSourceMarker)
				return
			}
			if state == scrape2tex.StateSources {
				if text := referenceText(n); text != "" {
					out.References = append(out.References, scrape2tex.Reference{Text: text})
				}
				return
			}
			if text := paragraphText(n); text != "" {
				out.Segments = append(out.Segments, scrape2tex.Paragraph(text))
			}

		case atom.Img:
			state = state.Next(scrape2tex.EventImage)
			src, _ := sel.Attr("src")
			if src == "" {
				return
			}
			out.Segments = append(out.Segments, scrape2tex.Image(resolveURL(base, src)))
		}
	})

	return out, nil
}

// byline returns the title-cased value after the first colon of the first
// level-3 heading containing marker, or "" if there is none.
func byline(content *goquery.Selection, marker string) string {
	h3 := content.Find("h3").FilterFunction(func(_ int, sel *goquery.Selection) bool {
		return strings.Contains(strings.ToUpper(sel.Text()), marker)
	}).First()
	if h3.Length() == 0 {
		return ""
	}

	text := strippedText(h3.Nodes...)
	if _, after, ok := strings.Cut(text, ":"); ok {
		text = after
	}
	return scrape2tex.TitleCase(strings.TrimSpace(text))
}

// paragraphText converts a body paragraph. Inline links become footnotes
// when their URL is short and clean, and "text (url)" otherwise.
func paragraphText(p *html.Node) string {
	var b strings.Builder
	for c := p.FirstChild; c != nil; c = c.NextSibling {
		switch {
		case c.Type == html.TextNode:
			b.WriteString(scrape2tex.Escape(c.Data))
		case isAnchor(c):
			text := scrape2tex.Escape(strippedText(c))
			href := strings.TrimSpace(attr(c, "href"))
			switch {
			case text != "" && href != "":
				if scrape2tex.IsFootnoteLink(href) {
					b.WriteString(text + `\footnote{\url{` + href + `}}`)
				} else {
					b.WriteString(text + " (" + scrape2tex.Escape(href) + ")")
				}
			case text != "":
				b.WriteString(text)
			}
		case c.Type == html.ElementNode:
			b.WriteString(scrape2tex.Escape(spacedText(c)))
		}
	}
	return strings.TrimSpace(b.String())
}

// referenceText converts a paragraph inside a source section. Links keep
// their URL in plain text next to the escaped link text; the URL is turned
// into a clickable link when the document is rendered.
func referenceText(p *html.Node) string {
	var b strings.Builder
	for c := p.FirstChild; c != nil; c = c.NextSibling {
		switch {
		case c.Type == html.TextNode:
			b.WriteString(scrape2tex.Escape(c.Data))
		case isAnchor(c):
			text := strippedText(c)
			href := strings.TrimSpace(attr(c, "href"))
			switch {
			case text != "" && href != "":
				b.WriteString(scrape2tex.Escape(text) + " " + referenceHref(href))
			case text != "":
				b.WriteString(scrape2tex.Escape(text))
			}
		case c.Type == html.ElementNode:
			b.WriteString(scrape2tex.Escape(spacedText(c)))
		}
	}
	return strings.TrimSpace(b.String())
}

// referenceHref keeps web URLs raw for the reference post-processor and
// escapes anything else.
func referenceHref(href string) string {
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	return scrape2tex.Escape(href)
}

// resolveURL resolves a possibly relative href against the page URL.
// Unparseable hrefs are returned unchanged.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}

func isAnchor(n *html.Node) bool {
	return n.Type == html.ElementNode && n.DataAtom == atom.A
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
