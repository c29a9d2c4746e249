// Package domain contains the core types of the lexical frequency
// pipeline: documents, frequency tables, rankings and run reports.
// Types here have no dependencies on adapters or external services.
package domain
