// Package ngram builds frequency tables from token sequences,
// applying the pipeline's length, stopword and threshold filters.
package ngram

import "github.com/custodia-labs/lexfreq-cli/internal/core/domain"

// Separator joins the two tokens of a bigram into a single table key.
const Separator = "_"

// DefaultMinBigramFreq is the default minimum total count a bigram
// needs to survive threshold filtering.
const DefaultMinBigramFreq = 3

// skipToken reports whether a token is filtered out of counting:
// tokens of length <= 2 (abbreviation noise) and stopwords.
func skipToken(token string, stopwords map[string]struct{}) bool {
	if len(token) <= 2 {
		return true
	}
	_, stop := stopwords[token]
	return stop
}

// CountUnigrams counts occurrences of each surviving token. Tokens in
// the stopword set or with length <= 2 are dropped before counting.
// An empty or fully-filtered sequence yields an empty table.
func CountUnigrams(tokens []string, stopwords map[string]struct{}) domain.FrequencyTable {
	freq := make(domain.FrequencyTable)
	for _, tok := range tokens {
		if skipToken(tok, stopwords) {
			continue
		}
		freq[tok]++
	}
	return freq
}

// CountBigrams counts occurrences of each adjacent token pair, joined
// with Separator. Each token of the pair is checked independently
// against the length and stopword filters; the joined form is never
// checked. After counting, keys whose total count is below minFreq are
// dropped, so a bigram seen minFreq-1 times is discarded even though
// it was counted during the scan. minFreq <= 0 disables the threshold.
func CountBigrams(tokens []string, stopwords map[string]struct{}, minFreq int) domain.FrequencyTable {
	freq := make(domain.FrequencyTable)
	for i := 0; i+1 < len(tokens); i++ {
		a, b := tokens[i], tokens[i+1]
		if skipToken(a, stopwords) || skipToken(b, stopwords) {
			continue
		}
		freq[a+Separator+b]++
	}

	for key, count := range freq {
		if count < minFreq {
			delete(freq, key)
		}
	}
	return freq
}
