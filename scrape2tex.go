// Package scrape2tex converts a structured research article published on the
// web into a LaTeX source that uses the companion brand document class.
// It extracts the article's headings, paragraphs, images and sources,
// escapes everything for LaTeX, downloads images next to the output, and
// renders a deterministic .tex document.
//
// This package contains domain types, interfaces and the pure text
// transforms (escaping, link classification, reference linkification and
// rendering). Implementations live in subdirectories named after their
// primary dependency (e.g., goquery/, http/, rod/, yaml/).
package scrape2tex
