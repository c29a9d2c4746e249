package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates a file extension no extractor handles.
	ErrUnsupportedType = errors.New("unsupported file type")

	// ErrNoInputFiles indicates the input directory contains no
	// supported files. This is a normal empty-result condition,
	// not a fatal error.
	ErrNoInputFiles = errors.New("no supported input files")

	// ErrFinalized indicates the corpus aggregator has already been
	// finalized and can no longer accumulate documents.
	ErrFinalized = errors.New("aggregator already finalized")
)
