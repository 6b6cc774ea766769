// Package sanitize turns user-entered board text into plain text.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// maxPasses bounds how many layers of entity encoding Text peels off.
const maxPasses = 8

// Text strips every HTML element, decodes the entities the policy escapes and
// trims surrounding whitespace. "<b>Ship & test</b>" becomes "Ship & test".
// Decoding can expose markup written as entities, so sanitizing repeats until
// the text stops changing.
func Text(s string) string {
	if s == "" {
		return ""
	}
	out := s
	for range maxPasses {
		next := html.UnescapeString(strict.Sanitize(out))
		if next == out {
			return strings.TrimSpace(out)
		}
		out = next
	}
	// Still changing: keep the escaped form, which renders as inert text.
	return strings.TrimSpace(strict.Sanitize(out))
}

// URL returns the trimmed input when it is safe to render as an image source,
// and "" otherwise. Only http(s) and site-relative URLs are accepted.
func URL(s string) string {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(lower, "https://"), strings.HasPrefix(lower, "http://"):
	case strings.HasPrefix(s, "/") && !strings.HasPrefix(s, "//"):
	default:
		return ""
	}
	if strings.ContainsAny(s, "<>\"' ") {
		return ""
	}
	return s
}
