package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/lexfreq-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/lexfreq-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/lexfreq-cli/internal/core/domain"
	"github.com/custodia-labs/lexfreq-cli/internal/core/ports/driving"
	"github.com/custodia-labs/lexfreq-cli/internal/core/services"
	"github.com/custodia-labs/lexfreq-cli/internal/extractors"
	"github.com/custodia-labs/lexfreq-cli/internal/logger"
	"github.com/custodia-labs/lexfreq-cli/internal/report"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Generate frequency reports for a folder of documents",
	Long: `Processes every supported file (PDF, DOCX, TXT) in the input folder
and writes per-file and corpus-wide frequency rankings as CSV, plus
word cloud images when a font is configured.`,
	RunE: runAnalyze,
}

var (
	inputFlag     string
	outputFlag    string
	topFlag       int
	stopFlag      []string
	stripRefsFlag bool
	bigramsFlag   bool
	minBigramFlag int
	fontFlag      string
)

func init() {
	analyzeCmd.Flags().StringVarP(&inputFlag, "input", "i", "",
		"input folder with documents (required)")
	analyzeCmd.Flags().StringVarP(&outputFlag, "output", "o", "",
		"output folder for artifacts (default \"output\")")
	analyzeCmd.Flags().IntVar(&topFlag, "top", 0,
		"top N terms to export (default 100)")
	analyzeCmd.Flags().StringSliceVar(&stopFlag, "stop", nil,
		"extra stopwords")
	analyzeCmd.Flags().BoolVar(&stripRefsFlag, "strip-references", false,
		"truncate trailing references/bibliography sections")
	analyzeCmd.Flags().BoolVar(&bigramsFlag, "bigrams", false,
		"also count bigrams")
	analyzeCmd.Flags().IntVar(&minBigramFlag, "min-bigram-freq", 0,
		"minimum bigram frequency (default 3)")
	analyzeCmd.Flags().StringVar(&fontFlag, "font", "",
		"TTF font for word cloud images (empty disables images)")
	_ = analyzeCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(analyzeCmd)
}

// buildOptions merges config file defaults with command-line flags.
// A changed flag always wins over the file value.
func buildOptions(cmd *cobra.Command, cfg file.Config) (driving.Options, string) {
	opts := driving.Options{
		InputDir:        inputFlag,
		OutputDir:       cfg.OutputDir,
		TopN:            cfg.TopN,
		ExtraStopwords:  cfg.ExtraStopwords,
		StripReferences: cfg.StripReferences,
		Bigrams:         cfg.Bigrams,
		MinBigramFreq:   cfg.MinBigramFreq,
	}
	fontPath := cfg.FontPath

	if cmd.Flags().Changed("output") {
		opts.OutputDir = outputFlag
	}
	if cmd.Flags().Changed("top") {
		opts.TopN = topFlag
	}
	if cmd.Flags().Changed("stop") {
		opts.ExtraStopwords = stopFlag
	}
	if cmd.Flags().Changed("strip-references") {
		opts.StripReferences = stripRefsFlag
	}
	if cmd.Flags().Changed("bigrams") {
		opts.Bigrams = bigramsFlag
	}
	if cmd.Flags().Changed("min-bigram-freq") {
		opts.MinBigramFreq = minBigramFlag
	}
	if cmd.Flags().Changed("font") {
		fontPath = fontFlag
	}

	// Tokens are lowercase, so extras must be too.
	for i, w := range opts.ExtraStopwords {
		opts.ExtraStopwords[i] = strings.ToLower(w)
	}

	return opts, fontPath
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cfg, err := file.Load(configFlag)
	if err != nil {
		logger.Warn("ignoring config file: %v", err)
	}

	opts, fontPath := buildOptions(cmd, cfg)

	svc := analyzer
	if svc == nil {
		svc = defaultAnalyzer(fontPath)
	}

	cmd.Printf("Analyzing %s...\n", opts.InputDir)

	rep, err := svc.Run(context.Background(), opts)
	if errors.Is(err, domain.ErrNoInputFiles) {
		cmd.Printf("No supported files found in %s. Supported: PDF/DOCX/TXT\n", opts.InputDir)
		return nil
	}
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	for _, name := range rep.Processed {
		cmd.Printf("  [+] %s\n", name)
	}
	for _, skipped := range rep.Skipped {
		cmd.Printf("  [skip] %s: %s\n", skipped.Name, skipped.Reason)
	}
	cmd.Printf("Done. %d files processed, %d skipped, %d artifacts in %s\n",
		len(rep.Processed), len(rep.Skipped), rep.Artifacts, rep.OutputDir)
	return nil
}

// defaultAnalyzer wires the production pipeline. The renderer and run
// store are optional: a missing font or unwritable history database
// degrade to CSV-only output with a warning.
func defaultAnalyzer(fontPath string) driving.Analyzer {
	var renderer *report.WordCloud
	if fontPath != "" {
		var err error
		renderer, err = report.NewWordCloud(fontPath)
		if err != nil {
			logger.Warn("word cloud rendering disabled: %v", err)
			renderer = nil
		}
	}

	store := runStore
	if store == nil {
		var err error
		store, err = sqlite.NewRunStore("")
		if err != nil {
			logger.Warn("run history disabled: %v", err)
			store = nil
		}
	}

	if renderer == nil {
		// Avoid a typed-nil interface inside the orchestrator.
		return services.NewAnalyzeOrchestrator(extractors.Default(), report.NewCSVSink(), nil, store)
	}
	return services.NewAnalyzeOrchestrator(extractors.Default(), report.NewCSVSink(), renderer, store)
}
