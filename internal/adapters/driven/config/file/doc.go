// Package file provides TOML-based configuration for the lexfreq
// CLI. The config file holds defaults for run options; command-line
// flags override file values.
package file
