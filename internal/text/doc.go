// Package text implements the normalisation front of the pipeline:
// canonicalising raw extracted text into a clean lowercase ASCII
// word-stream, splitting it into tokens, stripping trailing reference
// sections, and providing the English stopword set.
package text
