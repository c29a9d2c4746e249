// Package corpus accumulates per-document frequency tables into
// corpus-wide totals and produces the final ranked output.
package corpus

import "github.com/custodia-labs/lexfreq-cli/internal/core/domain"

// Aggregator maintains running corpus-wide unigram and bigram tables.
// It has two states: accumulating (zero or more documents added) and
// finalized (ranking computed, tables frozen). A fresh aggregator is
// required for each run.
//
// Addition is a commutative, associative integer sum, so the final
// tables are independent of document processing order.
type Aggregator struct {
	unigrams  domain.FrequencyTable
	bigrams   domain.FrequencyTable
	finalized bool
}

// NewAggregator returns an empty aggregator in the accumulating state.
func NewAggregator() *Aggregator {
	return &Aggregator{
		unigrams: make(domain.FrequencyTable),
		bigrams:  make(domain.FrequencyTable),
	}
}

// Add merges one document's tables into the running totals. Either
// table may be nil when the corresponding mode is disabled. Add
// returns ErrFinalized once Finalize has been called.
func (a *Aggregator) Add(unigrams, bigrams domain.FrequencyTable) error {
	if a.finalized {
		return domain.ErrFinalized
	}
	a.unigrams.Merge(unigrams)
	a.bigrams.Merge(bigrams)
	return nil
}

// Unigrams returns the running unigram table.
func (a *Aggregator) Unigrams() domain.FrequencyTable {
	return a.unigrams
}

// Bigrams returns the running bigram table.
func (a *Aggregator) Bigrams() domain.FrequencyTable {
	return a.bigrams
}

// Finalize transitions the aggregator to the finalized state and
// returns the top-n rankings for both tables. Entries are ordered by
// count descending with ties broken lexicographically, so repeated
// runs over the same corpus produce identical output. Finalize
// returns ErrFinalized if called twice.
func (a *Aggregator) Finalize(n int) (unigrams, bigrams domain.Ranking, err error) {
	if a.finalized {
		return nil, nil, domain.ErrFinalized
	}
	a.finalized = true
	return a.unigrams.Rank(n), a.bigrams.Rank(n), nil
}
