package domain

// Document represents one input file's extracted text.
// It is ephemeral: created by an extractor, consumed by the counting
// pipeline, and discarded once its frequency tables are merged.
type Document struct {
	// ID is the unique identifier for this document within a run.
	ID string

	// Name is the file stem (filename without extension), used to
	// derive per-file artifact names.
	Name string

	// Path is the original file location.
	Path string

	// Text is the raw extracted text before normalisation.
	Text string
}
