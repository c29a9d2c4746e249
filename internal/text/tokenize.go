package text

import "strings"

// Tokenize splits normalised text on whitespace into non-empty tokens.
// It assumes Normalize has already produced clean whitespace-delimited
// words and performs no further cleaning.
func Tokenize(s string) []string {
	return strings.Fields(s)
}
