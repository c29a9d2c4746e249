package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lexfreq-cli/internal/core/domain"
)

func TestAggregatorAdditivity(t *testing.T) {
	t.Run("disjoint tables", func(t *testing.T) {
		agg := NewAggregator()

		require.NoError(t, agg.Add(domain.FrequencyTable{"alpha": 2}, nil))
		require.NoError(t, agg.Add(domain.FrequencyTable{"beta": 3}, nil))

		assert.Equal(t, domain.FrequencyTable{"alpha": 2, "beta": 3}, agg.Unigrams())
	})

	t.Run("overlapping keys sum rather than overwrite", func(t *testing.T) {
		agg := NewAggregator()

		require.NoError(t, agg.Add(domain.FrequencyTable{"alpha": 2, "beta": 1}, nil))
		require.NoError(t, agg.Add(domain.FrequencyTable{"alpha": 5}, nil))

		assert.Equal(t, domain.FrequencyTable{"alpha": 7, "beta": 1}, agg.Unigrams())
	})

	t.Run("bigram table accumulates independently", func(t *testing.T) {
		agg := NewAggregator()

		require.NoError(t, agg.Add(
			domain.FrequencyTable{"alpha": 1},
			domain.FrequencyTable{"alpha_beta": 4},
		))
		require.NoError(t, agg.Add(
			nil,
			domain.FrequencyTable{"alpha_beta": 2, "beta_gamma": 3},
		))

		assert.Equal(t, domain.FrequencyTable{"alpha_beta": 6, "beta_gamma": 3}, agg.Bigrams())
		assert.Equal(t, domain.FrequencyTable{"alpha": 1}, agg.Unigrams())
	})
}

func TestAggregatorOrderIndependence(t *testing.T) {
	docs := []domain.FrequencyTable{
		{"alpha": 3, "beta": 1},
		{"beta": 2, "gamma": 5},
		{"alpha": 1, "delta": 2},
	}

	forward := NewAggregator()
	for _, d := range docs {
		require.NoError(t, forward.Add(d, nil))
	}
	forwardRank, _, err := forward.Finalize(100)
	require.NoError(t, err)

	reverse := NewAggregator()
	for i := len(docs) - 1; i >= 0; i-- {
		require.NoError(t, reverse.Add(docs[i], nil))
	}
	reverseRank, _, err := reverse.Finalize(100)
	require.NoError(t, err)

	assert.Equal(t, forwardRank, reverseRank,
		"ranked output must not depend on document processing order")
}

func TestAggregatorFinalize(t *testing.T) {
	agg := NewAggregator()
	require.NoError(t, agg.Add(domain.FrequencyTable{"beta": 2, "alpha": 2, "gamma": 7}, nil))

	unigrams, bigrams, err := agg.Finalize(2)
	require.NoError(t, err)

	assert.Equal(t, domain.Ranking{
		{Key: "gamma", Count: 7},
		{Key: "alpha", Count: 2},
	}, unigrams, "top-2 with lexicographic tie-break")
	assert.Empty(t, bigrams)
}

func TestAggregatorFrozenAfterFinalize(t *testing.T) {
	agg := NewAggregator()
	require.NoError(t, agg.Add(domain.FrequencyTable{"alpha": 1}, nil))

	_, _, err := agg.Finalize(10)
	require.NoError(t, err)

	err = agg.Add(domain.FrequencyTable{"beta": 1}, nil)
	assert.ErrorIs(t, err, domain.ErrFinalized)

	_, _, err = agg.Finalize(10)
	assert.ErrorIs(t, err, domain.ErrFinalized)
}

func TestAggregatorEmptyRun(t *testing.T) {
	agg := NewAggregator()

	unigrams, bigrams, err := agg.Finalize(100)
	require.NoError(t, err)
	assert.Empty(t, unigrams)
	assert.Empty(t, bigrams)
}
