// Package yaml formats kcparse results as YAML using gopkg.in/yaml.v3.
package yaml

import (
	"io"

	"github.com/fwojciec/kcparse"
	"gopkg.in/yaml.v3"
)

// Ensure Formatter implements kcparse.Formatter at compile time.
var _ kcparse.Formatter = (*Formatter)(nil)

// Formatter writes each result as its own YAML document.
type Formatter struct {
	indent int
}

// NewFormatter creates a Formatter with two-space indentation.
func NewFormatter() *Formatter {
	return &Formatter{indent: 2}
}

// Format writes results to w as a YAML document stream.
func (f *Formatter) Format(w io.Writer, results ...*kcparse.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(f.indent)
	for _, r := range results {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}
	return enc.Close()
}
