// Package driving defines the interfaces through which callers invoke
// the core pipeline.
package driving
