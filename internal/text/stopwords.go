package text

// baseStopwords is a compact English stopword list tuned for scholarly
// text: common function words plus boilerplate like "et", "al",
// "using", "based".
var baseStopwords = []string{
	"the", "and", "of", "to", "in", "a", "for", "is", "on", "that", "with", "as", "by", "it", "from", "an",
	"be", "or", "are", "at", "this", "we", "you", "your", "our", "their", "they", "these", "those",
	"was", "were", "has", "have", "had", "can", "could", "may", "might", "will", "would", "shall", "should",
	"however", "therefore", "thus", "hence", "into", "within", "between", "across", "via", "both",
	"more", "most", "less", "least", "over", "under", "each", "such", "many", "much", "also", "often",
	"using", "used", "use", "based", "new", "one", "two", "three", "et", "al",
}

// Stopwords returns the base English stopword set unioned with extra.
// Each call returns a fresh set, so callers can mutate the result
// without corrupting shared state. Matching is case-sensitive exact
// match against already-lowercased tokens; callers should supply
// lowercase extras.
func Stopwords(extra []string) map[string]struct{} {
	sw := make(map[string]struct{}, len(baseStopwords)+len(extra))
	for _, w := range baseStopwords {
		sw[w] = struct{}{}
	}
	for _, w := range extra {
		sw[w] = struct{}{}
	}
	return sw
}
