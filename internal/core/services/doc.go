// Package services contains the orchestrator that drives the
// frequency pipeline: scanning the input directory, running each
// document through extraction, normalisation and counting, and
// aggregating corpus-wide totals.
package services
