package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lexfreq-cli/internal/core/domain"
)

func TestCSVSinkWriteRanking(t *testing.T) {
	sink := NewCSVSink()
	dest := filepath.Join(t.TempDir(), "top_terms.csv")

	ranking := domain.Ranking{
		{Key: "corpus", Count: 12},
		{Key: "lexical", Count: 7},
		{Key: "token_stream", Count: 3},
	}

	require.NoError(t, sink.WriteRanking(ranking, dest))

	content, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "term,freq\ncorpus,12\nlexical,7\ntoken_stream,3\n", string(content))
}

func TestCSVSinkEmptyRanking(t *testing.T) {
	sink := NewCSVSink()
	dest := filepath.Join(t.TempDir(), "empty.csv")

	require.NoError(t, sink.WriteRanking(domain.Ranking{}, dest))

	_, err := os.Stat(dest)
	assert.True(t, os.IsNotExist(err), "an empty ranking must not produce a file")
}

func TestCSVSinkBadDestination(t *testing.T) {
	sink := NewCSVSink()
	dest := filepath.Join(t.TempDir(), "missing", "nested", "out.csv")

	err := sink.WriteRanking(domain.Ranking{{Key: "term", Count: 1}}, dest)
	assert.Error(t, err)
}
