package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lexfreq-cli/internal/core/domain"
	"github.com/custodia-labs/lexfreq-cli/internal/core/ports/driving"
)

// mockAnalyzer implements driving.Analyzer for testing.
type mockAnalyzer struct {
	opts   driving.Options
	report *domain.RunReport
	err    error
}

func (m *mockAnalyzer) Run(_ context.Context, opts driving.Options) (*domain.RunReport, error) {
	m.opts = opts
	return m.report, m.err
}

func setupAnalyzeTest(mock *mockAnalyzer) func() {
	old := analyzer
	analyzer = mock
	return func() {
		analyzer = old
	}
}

// execute runs the root command with args and captures its output.
// Flag change state is cleared first; it would otherwise leak between
// Execute calls on the shared command tree.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	analyzeCmd.Flags().VisitAll(func(f *pflag.Flag) {
		f.Changed = false
	})

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestAnalyzeCmd_Use(t *testing.T) {
	assert.Equal(t, "analyze", analyzeCmd.Use)
}

func TestAnalyzeCmd_RequiresInput(t *testing.T) {
	cleanup := setupAnalyzeTest(&mockAnalyzer{})
	defer cleanup()

	_, err := execute(t, "analyze")
	assert.Error(t, err)
}

func TestAnalyzeCmd_PassesFlags(t *testing.T) {
	mock := &mockAnalyzer{report: &domain.RunReport{OutputDir: "out"}}
	cleanup := setupAnalyzeTest(mock)
	defer cleanup()

	_, err := execute(t, "analyze",
		"--input", "/papers",
		"--output", "out",
		"--top", "25",
		"--stop", "Study,Results",
		"--strip-references",
		"--bigrams",
		"--min-bigram-freq", "5",
		"--config", filepath.Join(t.TempDir(), "no-config.toml"),
	)
	require.NoError(t, err)

	assert.Equal(t, "/papers", mock.opts.InputDir)
	assert.Equal(t, "out", mock.opts.OutputDir)
	assert.Equal(t, 25, mock.opts.TopN)
	assert.Equal(t, []string{"study", "results"}, mock.opts.ExtraStopwords,
		"extras must be lowercased to match the token stream")
	assert.True(t, mock.opts.StripReferences)
	assert.True(t, mock.opts.Bigrams)
	assert.Equal(t, 5, mock.opts.MinBigramFreq)
}

func TestAnalyzeCmd_ConfigDefaults(t *testing.T) {
	mock := &mockAnalyzer{report: &domain.RunReport{}}
	cleanup := setupAnalyzeTest(mock)
	defer cleanup()

	configPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(configPath, []byte(`
output_dir = "reports"
top_n = 42
bigrams = true
`), 0o600))

	_, err := execute(t, "analyze", "--input", "/papers", "--config", configPath)
	require.NoError(t, err)

	assert.Equal(t, "reports", mock.opts.OutputDir)
	assert.Equal(t, 42, mock.opts.TopN)
	assert.True(t, mock.opts.Bigrams)
}

func TestAnalyzeCmd_FlagOverridesConfig(t *testing.T) {
	mock := &mockAnalyzer{report: &domain.RunReport{}}
	cleanup := setupAnalyzeTest(mock)
	defer cleanup()

	configPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(configPath, []byte(`top_n = 42`), 0o600))

	_, err := execute(t, "analyze",
		"--input", "/papers", "--top", "7", "--config", configPath)
	require.NoError(t, err)

	assert.Equal(t, 7, mock.opts.TopN)
}

func TestAnalyzeCmd_NoInputFilesIsNotAnError(t *testing.T) {
	mock := &mockAnalyzer{err: domain.ErrNoInputFiles}
	cleanup := setupAnalyzeTest(mock)
	defer cleanup()

	output, err := execute(t, "analyze", "--input", "/empty",
		"--config", filepath.Join(t.TempDir(), "no-config.toml"))

	assert.NoError(t, err)
	assert.Contains(t, output, "No supported files found")
}

func TestAnalyzeCmd_PrintsSummary(t *testing.T) {
	mock := &mockAnalyzer{report: &domain.RunReport{
		OutputDir: "out",
		Processed: []string{"a.txt", "b.pdf"},
		Skipped:   []domain.SkippedFile{{Name: "c.pdf", Reason: "no extractable text"}},
		Artifacts: 3,
	}}
	cleanup := setupAnalyzeTest(mock)
	defer cleanup()

	output, err := execute(t, "analyze", "--input", "/papers",
		"--config", filepath.Join(t.TempDir(), "no-config.toml"))
	require.NoError(t, err)

	assert.Contains(t, output, "[+] a.txt")
	assert.Contains(t, output, "[+] b.pdf")
	assert.Contains(t, output, "[skip] c.pdf: no extractable text")
	assert.Contains(t, output, "2 files processed, 1 skipped, 3 artifacts")
}
