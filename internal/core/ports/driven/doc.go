// Package driven defines the interfaces the core pipeline consumes:
// text extractors, report sinks, the word-cloud renderer and the run
// history store. Adapters implement these interfaces.
package driven
