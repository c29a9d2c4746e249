// Package extractors provides text extraction from the supported
// document formats and an extension-based registry for dispatch.
// Extractors are thin collaborators of the pipeline: they return the
// document's plain text or an error, and never abort a run.
package extractors
