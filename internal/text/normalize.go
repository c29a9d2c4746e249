package text

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	urlPattern    = regexp.MustCompile(`https?://\S+|www\.\S+`)
	emailPattern  = regexp.MustCompile(`\S+@\S+\.\S+`)
	digitPattern  = regexp.MustCompile(`[0-9]+`)
	symbolPattern = regexp.MustCompile(`[^\w\s]`)
	spacePattern  = regexp.MustCompile(`\s+`)
)

// foldDiacritics decomposes characters and removes combining marks,
// so "naïve" becomes "naive" and "München" becomes "Munchen".
var foldDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize canonicalises raw text into a single-line, lowercase,
// ASCII, whitespace-delimited word-stream. The step order matters:
// URLs and emails are removed before digits so identifiers embedded in
// them cannot partially survive, and diacritic folding happens after
// digit removal so folding cannot reintroduce digits. Empty input
// yields empty output.
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	// Standardise Unicode, then lowercase.
	s = strings.ToLower(norm.NFKC.String(s))

	// URLs (http/https/www) and simple emails.
	s = urlPattern.ReplaceAllString(s, " ")
	s = emailPattern.ReplaceAllString(s, " ")

	// Digit runs (years, counts, section numbers).
	s = digitPattern.ReplaceAllString(s, " ")

	// Diacritics to ASCII.
	if folded, _, err := transform.String(foldDiacritics, s); err == nil {
		s = folded
	}

	// Strip punctuation, symbols and any remaining non-ASCII.
	s = symbolPattern.ReplaceAllString(s, " ")

	// Collapse whitespace.
	s = spacePattern.ReplaceAllString(s, " ")

	return strings.TrimSpace(s)
}
