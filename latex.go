package scrape2tex

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MaxFootnoteURLLength is the exclusive upper bound on the length of a URL
// that may be attached to body text as a footnote.
const MaxFootnoteURLLength = 100

// MaxFilenameLength bounds the length, in characters, of sanitized image filenames.
const MaxFilenameLength = 200

// escaper maps LaTeX-sensitive characters to their escaped form. Backslash
// comes first; strings.Replacer never rescans its own output, so the braces
// introduced by \textbackslash{} stay intact.
var escaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`{`, `\{`,
	`}`, `\}`,
	`$`, `\$`,
	`&`, `\&`,
	`#`, `\#`,
	`_`, `\_`,
	`%`, `\%`,
	`~`, `\textasciitilde{}`,
	`^`, `\textasciicircum{}`,
)

// linkSchemes are the transport prefixes a clickable link must start with.
var linkSchemes = []string{"http://", "https://"}

// linkDenylist matches content that would break out of a \url{} argument.
var linkDenylist = []*regexp.Regexp{
	regexp.MustCompile(`[{}]`),
	regexp.MustCompile(`\\`),
	regexp.MustCompile(`\n`),
	regexp.MustCompile(`\r`),
}

// footnoteDenylist lists characters that are not allowed in footnote URLs.
const footnoteDenylist = `{}\%$&_#^~`

var filenameRe = regexp.MustCompile(`[^\p{L}\p{N}_\-.]+`)

// Escape returns s with every LaTeX special character escaped.
// Escape is not idempotent and must be applied exactly once per text unit.
func Escape(s string) string {
	if s == "" {
		return ""
	}
	return escaper.Replace(s)
}

// IsSafeLink reports whether url may be wrapped in \url{} as a clickable link.
func IsSafeLink(url string) bool {
	hasScheme := false
	for _, scheme := range linkSchemes {
		if strings.HasPrefix(url, scheme) {
			hasScheme = true
			break
		}
	}
	if !hasScheme {
		return false
	}
	for _, re := range linkDenylist {
		if re.MatchString(url) {
			return false
		}
	}
	return true
}

// IsFootnoteLink reports whether url is safe, short and clean enough to be
// attached to body text as \footnote{\url{...}}.
func IsFootnoteLink(url string) bool {
	return IsSafeLink(url) &&
		!strings.ContainsAny(url, footnoteDenylist) &&
		len(url) < MaxFootnoteURLLength
}

// CleanFilename collapses every run of characters other than letters, digits,
// underscore, hyphen and dot into a single underscore and truncates the
// result to MaxFilenameLength characters.
func CleanFilename(name string) string {
	name = filenameRe.ReplaceAllString(name, "_")
	if utf8.RuneCountInString(name) <= MaxFilenameLength {
		return name
	}
	return string([]rune(name)[:MaxFilenameLength])
}

// Capitalize upper-cases the first letter of s and lower-cases the rest.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return ""
	}
	return string(unicode.ToTitle(r)) + strings.ToLower(s[size:])
}

// TitleCase upper-cases the first letter of every word in s, lower-cases the
// remaining letters, and trims surrounding whitespace. Words break on Unicode
// word boundaries, so an apostrophe does not start a new word.
func TitleCase(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(cases.Title(language.Und).String(s))
}
