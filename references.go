package scrape2tex

import (
	"time"

	"github.com/dlclark/regexp2"
)

// Reference lines are short; the timeout only bounds pathological input.
const referenceMatchTimeout = time.Second

var (
	// \s and \S follow Unicode, so a no-break space ends a URL.
	bareURLRe = newReferenceRegexp(`https?://\S+`)

	duplicateLinkRe = newReferenceRegexp(`(\S+)\s+\\url\{\1\}`)
)

func newReferenceRegexp(expr string) *regexp2.Regexp {
	re := regexp2.MustCompile(expr, regexp2.None)
	re.MatchTimeout = referenceMatchTimeout
	return re
}

// LinkifyReference post-processes an extracted reference line. Bare URLs are
// wrapped in \url{} when IsSafeLink accepts them and escaped otherwise, then
// CollapseDuplicateLinks removes text that repeats the link following it.
func LinkifyReference(text string) string {
	out, err := bareURLRe.ReplaceFunc(text, func(m regexp2.Match) string {
		url := m.String()
		if IsSafeLink(url) {
			return `\url{` + url + `}`
		}
		return Escape(url)
	}, -1, -1)
	if err != nil {
		return Escape(text)
	}
	return CollapseDuplicateLinks(out)
}

// CollapseDuplicateLinks rewrites "X \url{X}" as "\url{X}", where X is a run
// of non-space characters followed by whitespace and a link to the same
// text. Matches are found left to right and never overlap. On a match
// timeout text is returned unchanged.
func CollapseDuplicateLinks(text string) string {
	out, err := duplicateLinkRe.ReplaceFunc(text, func(m regexp2.Match) string {
		return `\url{` + m.GroupByNumber(1).String() + `}`
	}, -1, -1)
	if err != nil {
		return text
	}
	return out
}
