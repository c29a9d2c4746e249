package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/lexfreq-cli/internal/core/domain"
	"github.com/custodia-labs/lexfreq-cli/internal/core/ports/driven"
	"github.com/custodia-labs/lexfreq-cli/internal/core/ports/driving"
	"github.com/custodia-labs/lexfreq-cli/internal/corpus"
	"github.com/custodia-labs/lexfreq-cli/internal/logger"
	"github.com/custodia-labs/lexfreq-cli/internal/ngram"
	"github.com/custodia-labs/lexfreq-cli/internal/text"
)

// Ensure AnalyzeOrchestrator implements the interface.
var _ driving.Analyzer = (*AnalyzeOrchestrator)(nil)

// AnalyzeOrchestrator coordinates one analysis run. Documents are
// processed sequentially; a failing document is recorded as skipped
// and never aborts the run or corrupts the corpus aggregate.
type AnalyzeOrchestrator struct {
	registry driven.ExtractorRegistry
	sink     driven.ReportSink
	renderer driven.CloudRenderer
	runStore driven.RunStore
}

// NewAnalyzeOrchestrator creates a new analysis orchestrator.
// The renderer and runStore are optional; when nil, image rendering
// and run history are disabled.
func NewAnalyzeOrchestrator(
	registry driven.ExtractorRegistry,
	sink driven.ReportSink,
	renderer driven.CloudRenderer,
	runStore driven.RunStore,
) *AnalyzeOrchestrator {
	return &AnalyzeOrchestrator{
		registry: registry,
		sink:     sink,
		renderer: renderer,
		runStore: runStore,
	}
}

// Run processes every supported file in opts.InputDir in sorted
// filename order and writes per-file and corpus-wide artifacts.
func (o *AnalyzeOrchestrator) Run(ctx context.Context, opts driving.Options) (*domain.RunReport, error) {
	if opts.InputDir == "" {
		return nil, fmt.Errorf("input directory: %w", domain.ErrInvalidInput)
	}
	if opts.OutputDir == "" {
		opts.OutputDir = "output"
	}
	if opts.TopN <= 0 {
		opts.TopN = 100
	}
	if opts.MinBigramFreq <= 0 {
		opts.MinBigramFreq = ngram.DefaultMinBigramFreq
	}

	report := &domain.RunReport{
		ID:        uuid.New().String(),
		InputDir:  opts.InputDir,
		OutputDir: opts.OutputDir,
		StartedAt: time.Now(),
		Bigrams:   opts.Bigrams,
	}

	files, err := o.listInputFiles(opts.InputDir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		logger.Warn("No supported files found in %s. Supported: PDF/DOCX/TXT", opts.InputDir)
		report.FinishedAt = time.Now()
		return report, domain.ErrNoInputFiles
	}

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	stopwords := text.Stopwords(opts.ExtraStopwords)
	agg := corpus.NewAggregator()

	for _, name := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		unigrams, bigrams, skip := o.processFile(ctx, name, opts, stopwords, report)
		if skip != "" {
			logger.Warn("skipping %s: %s", name, skip)
			report.Skipped = append(report.Skipped, domain.SkippedFile{Name: name, Reason: skip})
			continue
		}

		if err := agg.Add(unigrams, bigrams); err != nil {
			return nil, fmt.Errorf("aggregating %s: %w", name, err)
		}
		report.Processed = append(report.Processed, name)
	}

	if err := o.writeCorpusArtifacts(agg, opts, report); err != nil {
		return nil, err
	}

	report.FinishedAt = time.Now()

	if o.runStore != nil {
		if err := o.runStore.Save(ctx, report); err != nil {
			logger.Warn("could not save run history: %v", err)
		}
	}
	return report, nil
}

// listInputFiles returns the supported filenames in dir, sorted.
func (o *AnalyzeOrchestrator) listInputFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading input directory: %w", err)
	}

	// os.ReadDir returns entries sorted by filename.
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !o.registry.Supported(entry.Name()) {
			logger.Debug("ignoring unsupported file %s", entry.Name())
			continue
		}
		files = append(files, entry.Name())
	}
	return files, nil
}

// processFile runs one document through the pipeline and writes its
// per-file artifacts. A non-empty skip reason means the file produced
// no usable tables and must not touch the aggregate.
func (o *AnalyzeOrchestrator) processFile(
	ctx context.Context,
	name string,
	opts driving.Options,
	stopwords map[string]struct{},
	report *domain.RunReport,
) (unigrams, bigrams domain.FrequencyTable, skipReason string) {
	path := filepath.Join(opts.InputDir, name)

	extractor, err := o.registry.ForPath(path)
	if err != nil {
		return nil, nil, err.Error()
	}

	raw, err := extractor.Extract(ctx, path)
	if err != nil {
		return nil, nil, fmt.Sprintf("extraction failed: %v", err)
	}
	if strings.TrimSpace(raw) == "" {
		return nil, nil, "no extractable text"
	}

	doc := domain.Document{
		ID:   uuid.New().String(),
		Name: strings.TrimSuffix(name, filepath.Ext(name)),
		Path: path,
		Text: raw,
	}
	logger.Info("processing %s", name)

	if opts.StripReferences {
		doc.Text = text.StripReferences(doc.Text)
	}
	tokens := text.Tokenize(text.Normalize(doc.Text))

	unigrams = ngram.CountUnigrams(tokens, stopwords)
	if opts.Bigrams {
		bigrams = ngram.CountBigrams(tokens, stopwords, opts.MinBigramFreq)
	}

	o.writeArtifacts(unigrams.Rank(opts.TopN), opts.OutputDir, doc.Name+"_top_terms.csv", doc.Name+"_cloud.png", report)
	if opts.Bigrams {
		o.writeArtifacts(bigrams.Rank(opts.TopN), opts.OutputDir, doc.Name+"_top_bigrams.csv", doc.Name+"_bigram_cloud.png", report)
	}

	return unigrams, bigrams, ""
}

// writeCorpusArtifacts finalizes the aggregator and writes the
// corpus-wide rankings.
func (o *AnalyzeOrchestrator) writeCorpusArtifacts(agg *corpus.Aggregator, opts driving.Options, report *domain.RunReport) error {
	unigrams, bigrams, err := agg.Finalize(opts.TopN)
	if err != nil {
		return fmt.Errorf("finalizing corpus: %w", err)
	}

	o.writeArtifacts(unigrams, opts.OutputDir, "overall_top_terms.csv", "overall_cloud.png", report)
	if opts.Bigrams {
		o.writeArtifacts(bigrams, opts.OutputDir, "overall_top_bigrams.csv", "overall_bigram_cloud.png", report)
	}
	return nil
}

// writeArtifacts writes the CSV and, when a renderer is configured,
// the word-cloud image for one ranking. Empty rankings are suppressed
// entirely. Sink failures are diagnostics, not run-fatal errors.
func (o *AnalyzeOrchestrator) writeArtifacts(ranking domain.Ranking, outputDir, csvName, imageName string, report *domain.RunReport) {
	if len(ranking) == 0 {
		return
	}

	csvPath := filepath.Join(outputDir, csvName)
	if err := o.sink.WriteRanking(ranking, csvPath); err != nil {
		logger.Warn("could not write %s: %v", csvName, err)
	} else {
		logger.Debug("wrote %s (%d entries)", csvName, len(ranking))
		report.Artifacts++
	}

	if o.renderer == nil {
		return
	}
	imagePath := filepath.Join(outputDir, imageName)
	if err := o.renderer.Render(ranking, imagePath); err != nil {
		logger.Warn("could not render %s: %v", imageName, err)
	} else {
		logger.Debug("rendered %s", imageName)
		report.Artifacts++
	}
}
