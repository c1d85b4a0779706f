package scrape2tex

import "strings"

// DefaultDocumentClass is the companion class that defines the brand macros
// (\headerlabel, \titletext, \MakeBrandTitle, ...).
const DefaultDocumentClass = "ourGreenwayBrand"

// GeneratorURL is the project URL cited in the attribution box.
const GeneratorURL = "https://github.com/Our-Greenway/scrape2TeX"

// Renderer turns an extracted Document into LaTeX source.
// The zero value renders with DefaultDocumentClass.
type Renderer struct {
	// DocumentClass names the LaTeX class loaded by the preamble.
	DocumentClass string
}

// NewRenderer returns a Renderer using DefaultDocumentClass.
func NewRenderer() *Renderer {
	return &Renderer{DocumentClass: DefaultDocumentClass}
}

// Render renders doc with the default renderer.
func Render(doc *Document, rc RenderContext) string {
	return NewRenderer().Render(doc, rc)
}

// Render returns the complete LaTeX source for doc. The output depends only
// on doc and rc.
func (r *Renderer) Render(doc *Document, rc RenderContext) string {
	class := r.DocumentClass
	if class == "" {
		class = DefaultDocumentClass
	}

	var lines []string
	add := func(l ...string) { lines = append(lines, l...) }

	add(
		`\documentclass[letter]{`+class+`}`,
		"",
		`\headerlabel{`+Escape(rc.HeaderLabel)+`}`,
		"",
		`\titletext{`+Escape(doc.Title)+`}`,
		`\subtitletext{}`,
		`\authortext{`+Escape(doc.Author)+`}`,
		`\editedtext{`+Escape(doc.EditedBy)+`}`,
		`\datetext{`+Escape(rc.DateText)+`}`,
		"",
		`\begin{document}`,
		`\MakeBrandTitle`,
		"",
	)

	for _, seg := range doc.Segments {
		switch seg.Kind {
		case SegmentSubheading:
			add(`\section{` + seg.Text + `}`)
		case SegmentParagraph:
			add(seg.Text, "")
		case SegmentImage:
			src := seg.LocalPath
			if src == "" {
				src = seg.SourceURL
			}
			add(
				`\begin{figure}[htbp]`,
				`  \centering`,
				`  \includegraphics[width=0.7\textwidth]{`+src+`}`,
				`\end{figure}`,
				"",
			)
		case SegmentSkip:
		}
	}

	if len(doc.References) > 0 {
		add(`\newpage`, `\section{Sources}`, "")
		for _, ref := range doc.References {
			add(`\hspace{1em}`+LinkifyReference(ref.Text), "")
		}
	}

	sourceURL := doc.SourceURL
	if sourceURL == "" {
		sourceURL = rc.SourceURL
	}

	add(
		`\vspace{2em}`,
		`\fbox{\parbox{\dimexpr\textwidth-2\fboxsep-2\fboxrule\relax}{`,
		`\raggedright`,
		`  \small This PDF was automatically generated using the scrape2TeX tool available at~\url{`+GeneratorURL+`}.\\[0.5em]`,
		`  If there are any differences, the online version at~`+link(sourceURL)+` shall prevail.`,
		`}}`,
		`\end{document}`,
	)

	return strings.Join(lines, "\n")
}

// link wraps url in \url{} when it is safe and escapes it otherwise.
func link(url string) string {
	if IsSafeLink(url) {
		return `\url{` + url + `}`
	}
	return Escape(url)
}
