package domain

import "time"

// SkippedFile records a file that was passed over during a run,
// with the reason it could not contribute to the corpus.
type SkippedFile struct {
	// Name is the filename relative to the input directory.
	Name string

	// Reason describes why the file was skipped.
	Reason string
}

// RunReport summarises one analysis run. It is persisted to the run
// store so past runs can be listed and inspected.
type RunReport struct {
	// ID is the unique identifier for the run.
	ID string

	// InputDir is the directory that was scanned.
	InputDir string

	// OutputDir is where artifacts were written.
	OutputDir string

	// StartedAt is when the run began.
	StartedAt time.Time

	// FinishedAt is when the run completed.
	FinishedAt time.Time

	// Processed lists the files that contributed to the corpus,
	// in processing order.
	Processed []string

	// Skipped lists files that produced no usable text.
	Skipped []SkippedFile

	// Artifacts is the number of output files written.
	Artifacts int

	// Bigrams reports whether bigram counting was enabled.
	Bigrams bool
}
