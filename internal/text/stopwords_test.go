package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStopwordsBaseSet(t *testing.T) {
	sw := Stopwords(nil)

	require.NotEmpty(t, sw)

	// Function words and scholarly boilerplate must be present.
	for _, w := range []string{"the", "and", "of", "however", "using", "based", "et", "al"} {
		assert.Contains(t, sw, w)
	}

	// Content words must not be.
	assert.NotContains(t, sw, "frequency")
	assert.NotContains(t, sw, "analysis")
}

func TestStopwordsExtras(t *testing.T) {
	sw := Stopwords([]string{"study", "results"})

	assert.Contains(t, sw, "study")
	assert.Contains(t, sw, "results")
	assert.Contains(t, sw, "the", "extras must not displace the base set")
}

func TestStopwordsFreshCopy(t *testing.T) {
	first := Stopwords(nil)
	first["corrupted"] = struct{}{}
	delete(first, "the")

	second := Stopwords(nil)
	assert.NotContains(t, second, "corrupted")
	assert.Contains(t, second, "the")
}

func TestStopwordsCaseSensitive(t *testing.T) {
	sw := Stopwords([]string{"Results"})

	// Extras are compared as-is; an uppercased extra will never match
	// the lowercase token stream.
	assert.Contains(t, sw, "Results")
	assert.NotContains(t, sw, "results")
}
