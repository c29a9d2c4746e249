package domain

import "sort"

// FrequencyTable maps an n-gram key (a single token, or two tokens
// joined with an underscore) to its occurrence count. Iteration order
// is meaningless; ranking is always an explicit sort.
type FrequencyTable map[string]int

// Merge adds every count from other into t. Missing keys are created
// with the other table's count. Counts sum; they never overwrite.
func (t FrequencyTable) Merge(other FrequencyTable) {
	for k, c := range other {
		t[k] += c
	}
}

// Clone returns an independent copy of t.
func (t FrequencyTable) Clone() FrequencyTable {
	out := make(FrequencyTable, len(t))
	for k, c := range t {
		out[k] = c
	}
	return out
}

// Total returns the sum of all counts in t.
func (t FrequencyTable) Total() int {
	total := 0
	for _, c := range t {
		total += c
	}
	return total
}

// Entry is one ranked n-gram with its count.
type Entry struct {
	Key   string
	Count int
}

// Ranking is a frequency table ordered by count descending.
type Ranking []Entry

// Rank sorts the table by count descending, breaking ties by key
// ascending so output is reproducible across runs, and truncates to
// the top n entries. n <= 0 means no truncation.
func (t FrequencyTable) Rank(n int) Ranking {
	entries := make(Ranking, 0, len(t))
	for k, c := range t {
		entries = append(entries, Entry{Key: k, Count: c})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Key < entries[j].Key
	})
	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
