package text

import (
	"regexp"
	"strings"
)

// referencePattern matches a bibliography heading standing alone on a
// line: optional surrounding whitespace, an optional trailing colon.
var referencePattern = regexp.MustCompile(`(?i)\n\s*(references|bibliography|works\s+cited)\s*:?\s*\n`)

// StripReferences heuristically truncates content at the first
// references/bibliography/works-cited heading line, dropping the
// heading and everything after it. Newlines are normalised first so
// Windows line endings are handled. Only the first match truncates:
// a false-positive heading mid-document wins over a real one later,
// which is a known limitation of the heuristic. Text without such a
// heading is returned unchanged.
func StripReferences(s string) string {
	if s == "" {
		return s
	}

	t := strings.ReplaceAll(s, "\r\n", "\n")

	loc := referencePattern.FindStringIndex(t)
	if loc == nil {
		return t
	}
	return t[:loc[0]]
}
