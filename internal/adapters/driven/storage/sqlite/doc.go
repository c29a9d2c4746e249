// Package sqlite provides the SQLite-backed run history store.
// Each completed analysis run is stored as one row so past runs can
// be listed and inspected from the CLI.
package sqlite
