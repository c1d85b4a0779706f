package goquery

import (
	"strings"

	"golang.org/x/net/html"
)

// strippedText concatenates the trimmed text of every text node below nodes,
// in document order, without separators.
func strippedText(nodes ...*html.Node) string {
	return joinText(nodes, "")
}

// spacedText joins the trimmed text of every text node below n with single
// spaces.
func spacedText(n *html.Node) string {
	return joinText([]*html.Node{n}, " ")
}

func joinText(nodes []*html.Node, sep string) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if s := strings.TrimSpace(n.Data); s != "" {
				parts = append(parts, s)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range nodes {
		walk(n)
	}
	return strings.Join(parts, sep)
}
