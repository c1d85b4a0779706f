package scrape2tex

import "strings"

// SectionState tracks whether the extractor is reading body text or a
// source section.
type SectionState int

// SectionState constants.
const (
	// StateBody is the initial state. Paragraphs become body segments.
	StateBody SectionState = iota
	// StateSources follows a source marker paragraph. Paragraphs become
	// reference entries.
	StateSources
)

// String returns the state name.
func (s SectionState) String() string {
	switch s {
	case StateBody:
		return "body"
	case StateSources:
		return "sources"
	default:
		return "unknown"
	}
}

// SectionEvent is an element encountered during the extraction scan that
// may change the SectionState. Plain paragraphs are not events.
type SectionEvent int

// SectionEvent constants.
const (
	// EventHeading is a level-2 heading.
	EventHeading SectionEvent = iota
	// EventSourceMarker is a paragraph starting with a source marker phrase.
	EventSourceMarker
	// EventImage is an image element.
	EventImage
)

// Next returns the state that follows s when ev is encountered.
// Headings and images end a source section; a marker paragraph starts one.
func (s SectionState) Next(ev SectionEvent) SectionState {
	switch ev {
	case EventSourceMarker:
		return StateSources
	case EventHeading, EventImage:
		return StateBody
	default:
		return s
	}
}

// sourceMarkers are the lower-case prefixes that open a source section.
var sourceMarkers = []string{
	"source:",
	"sources:",
	"sources (",
	"reference:",
	"references:",
	"bibliography:",
}

// IsSourceMarker reports whether paragraph text opens a source section.
// The comparison is case-insensitive and ignores surrounding whitespace.
func IsSourceMarker(text string) bool {
	lower := strings.ToLower(strings.TrimSpace(text))
	for _, marker := range sourceMarkers {
		if strings.HasPrefix(lower, marker) {
			return true
		}
	}
	return false
}
