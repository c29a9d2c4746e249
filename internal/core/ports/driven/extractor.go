package driven

import "context"

// Extractor extracts plain text from a document file.
type Extractor interface {
	// Extract reads the file at path and returns its text content.
	// Extraction failures (encrypted, corrupt, unsupported content)
	// surface as errors; the pipeline treats them as skip conditions,
	// never as run-fatal.
	Extract(ctx context.Context, path string) (string, error)

	// SupportedExtensions returns the lowercased file extensions this
	// extractor handles, including the leading dot.
	SupportedExtensions() []string
}

// ExtractorRegistry dispatches files to extractors by extension.
type ExtractorRegistry interface {
	// ForPath returns the extractor for the file's extension, or
	// domain.ErrUnsupportedType if none is registered.
	ForPath(path string) (Extractor, error)

	// Supported reports whether any extractor handles the file.
	Supported(path string) bool
}
