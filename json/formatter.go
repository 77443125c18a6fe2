// Package json formats kcparse results as JSON.
package json

import (
	"encoding/json"
	"io"

	"github.com/fwojciec/kcparse"
)

// Ensure Formatter implements kcparse.Formatter at compile time.
var _ kcparse.Formatter = (*Formatter)(nil)

// Formatter writes results as indented JSON. A single result is written as
// its single-key object; several results are written as an array.
type Formatter struct {
	indent string
}

// NewFormatter creates a Formatter indenting with two spaces. An empty
// indent writes compact JSON.
func NewFormatter(indent ...string) *Formatter {
	f := &Formatter{indent: "  "}
	if len(indent) > 0 {
		f.indent = indent[0]
	}
	return f
}

// Format writes results to w followed by a newline.
func (f *Formatter) Format(w io.Writer, results ...*kcparse.Result) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if f.indent != "" {
		enc.SetIndent("", f.indent)
	}

	if len(results) == 1 {
		return enc.Encode(results[0])
	}
	if results == nil {
		results = []*kcparse.Result{}
	}
	return enc.Encode(results)
}
