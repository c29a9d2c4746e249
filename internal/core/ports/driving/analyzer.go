package driving

import (
	"context"

	"github.com/custodia-labs/lexfreq-cli/internal/core/domain"
)

// Options configures one analysis run.
type Options struct {
	// InputDir is the directory to scan for documents. Required.
	InputDir string

	// OutputDir is where artifacts are written. Defaults to "output".
	OutputDir string

	// TopN is the ranking cutoff for exported tables. Defaults to 100.
	TopN int

	// ExtraStopwords extends the base stopword set. Entries must be
	// lowercase to match the token stream.
	ExtraStopwords []string

	// StripReferences truncates trailing bibliography sections before
	// normalisation.
	StripReferences bool

	// Bigrams enables bigram counting and artifacts.
	Bigrams bool

	// MinBigramFreq is the minimum total count a bigram needs to
	// appear in output. Defaults to 3.
	MinBigramFreq int
}

// Analyzer runs the document frequency pipeline.
type Analyzer interface {
	// Run processes every supported file in the input directory and
	// writes per-file and corpus-wide artifacts. It returns the run
	// report, and domain.ErrNoInputFiles when the directory holds no
	// supported files.
	Run(ctx context.Context, opts Options) (*domain.RunReport, error)
}
