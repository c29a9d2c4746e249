// Package cli implements the lexfreq command-line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/lexfreq-cli/internal/core/ports/driven"
	"github.com/custodia-labs/lexfreq-cli/internal/core/ports/driving"
	"github.com/custodia-labs/lexfreq-cli/internal/logger"
)

var (
	version = "dev"

	// Injected services. When nil, commands wire the default
	// implementations on first use; tests substitute fakes.
	analyzer driving.Analyzer
	runStore driven.RunStore

	verboseFlag bool
	configFlag  string
)

var rootCmd = &cobra.Command{
	Use:   "lexfreq",
	Short: "Lexical frequency reports for document collections",
	Long: `lexfreq extracts text from PDF, DOCX and TXT files, normalises and
tokenises it, and produces frequency-ranked unigram and bigram reports
per file and for the whole corpus, as CSV tables and optional word
cloud images.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false,
		"enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "",
		"config file (default ~/.lexfreq/config.toml)")
}

// SetAnalyzer overrides the analyzer service. Used by tests.
func SetAnalyzer(a driving.Analyzer) {
	analyzer = a
}

// SetRunStore overrides the run history store. Used by tests.
func SetRunStore(s driven.RunStore) {
	runStore = s
}

// Execute runs the root command with the given build version.
func Execute(v string) error {
	version = v
	return rootCmd.Execute()
}
