// Package pdf extracts text from PDF files by invoking the pdftotext
// tool from poppler. The external command sits behind a CommandRunner
// so tests can substitute a mock.
package pdf

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/custodia-labs/lexfreq-cli/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// CommandRunner executes an external command and returns its stdout.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// execRunner runs commands via os/exec.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// Extractor handles PDF documents via pdftotext.
type Extractor struct {
	runner CommandRunner
}

// New creates a PDF extractor using the system pdftotext binary.
func New() *Extractor {
	return &Extractor{runner: execRunner{}}
}

// NewWithRunner creates a PDF extractor with a custom command runner.
func NewWithRunner(runner CommandRunner) *Extractor {
	return &Extractor{runner: runner}
}

// SupportedExtensions returns the extensions this extractor handles.
func (e *Extractor) SupportedExtensions() []string {
	return []string{".pdf"}
}

// Extract runs pdftotext with stdout output. Encrypted or malformed
// PDFs surface as errors for the pipeline to skip. A missing binary
// produces an error that includes install instructions.
func (e *Extractor) Extract(ctx context.Context, path string) (string, error) {
	output, err := e.runner.Run(ctx, "pdftotext", path, "-")
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", fmt.Errorf("pdftotext not found: %s", InstallInstructions())
		}
		return "", fmt.Errorf("pdftotext: %w", err)
	}
	return string(output), nil
}

// InstallInstructions describes how to install the pdftotext tool.
func InstallInstructions() string {
	return "install poppler for PDF support: " +
		"macOS: brew install poppler; " +
		"Debian/Ubuntu: apt install poppler-utils; " +
		"Fedora: dnf install poppler-utils"
}
