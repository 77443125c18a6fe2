package kcparse

import "io"

// Formatter writes extraction results in a serialized form.
type Formatter interface {
	// Format writes results to w. A single result is written as its
	// single-key mapping; several results are written as a sequence.
	Format(w io.Writer, results ...*Result) error
}
