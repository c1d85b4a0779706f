package scrape2tex

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// SegmentKind identifies the variant held by a Segment.
type SegmentKind int

// SegmentKind constants.
const (
	SegmentSubheading SegmentKind = iota
	SegmentParagraph
	SegmentImage
	// SegmentSkip marks an image that failed to download. It renders as nothing.
	SegmentSkip
)

// String returns the kind name.
func (k SegmentKind) String() string {
	switch k {
	case SegmentSubheading:
		return "subheading"
	case SegmentParagraph:
		return "paragraph"
	case SegmentImage:
		return "image"
	case SegmentSkip:
		return "skip"
	default:
		return "unknown"
	}
}

// Segment is one typed unit of body content in document order.
//
// Text is set for subheadings and paragraphs and is already escaped for
// LaTeX. SourceURL and LocalPath are set for images; LocalPath stays empty
// until the image has been downloaded.
type Segment struct {
	Kind      SegmentKind
	Text      string
	SourceURL string
	LocalPath string
}

// Subheading returns a subheading segment holding escaped text.
func Subheading(text string) Segment {
	return Segment{Kind: SegmentSubheading, Text: text}
}

// Paragraph returns a paragraph segment holding escaped text.
func Paragraph(text string) Segment {
	return Segment{Kind: SegmentParagraph, Text: text}
}

// Image returns an image segment for an absolute source URL.
func Image(sourceURL string) Segment {
	return Segment{Kind: SegmentImage, SourceURL: sourceURL}
}

// Materialize records the local path of a downloaded image.
// It has no effect on segments other than images.
func (s *Segment) Materialize(localPath string) {
	if s.Kind != SegmentImage {
		return
	}
	s.LocalPath = localPath
}

// Skip turns an image whose download failed into a skip marker.
// It has no effect on segments other than images.
func (s *Segment) Skip() {
	if s.Kind != SegmentImage {
		return
	}
	s.Kind = SegmentSkip
	s.LocalPath = ""
}

// Reference is one escaped line of a source section.
type Reference struct {
	Text string
}

// Document is the result of extracting an article page.
// It is built in a single pass and owned by the caller.
type Document struct {
	Title    string
	Author   string
	EditedBy string

	// SourceURL is the URL of the page the document was extracted from.
	SourceURL string

	Segments   []Segment
	References []Reference
}

// Images returns the number of image segments still awaiting rendering.
func (d *Document) Images() int {
	var n int
	for _, seg := range d.Segments {
		if seg.Kind == SegmentImage {
			n++
		}
	}
	return n
}

// Fingerprint returns a stable hex digest of the extracted content.
// Two extractions of identical input yield the same fingerprint.
func (d *Document) Fingerprint() string {
	h := xxhash.New()
	write := func(parts ...string) {
		for _, p := range parts {
			_, _ = h.WriteString(strconv.Itoa(len(p)))
			_, _ = h.WriteString(":")
			_, _ = h.WriteString(p)
		}
	}
	write(d.Title, d.Author, d.EditedBy, d.SourceURL)
	for _, seg := range d.Segments {
		write(seg.Kind.String(), seg.Text, seg.SourceURL, seg.LocalPath)
	}
	for _, ref := range d.References {
		write("reference", ref.Text)
	}
	return strconv.FormatUint(h.Sum64(), 16)
}

// RenderContext holds the render-time settings that are not part of the
// extracted document.
type RenderContext struct {
	HeaderLabel string
	DateText    string
	SourceURL   string
}
