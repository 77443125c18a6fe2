package mock

import (
	"io"

	"github.com/fwojciec/kcparse"
)

var _ kcparse.Formatter = (*Formatter)(nil)

// Formatter is a mock implementation of kcparse.Formatter.
type Formatter struct {
	FormatFn func(w io.Writer, results ...*kcparse.Result) error
}

func (f *Formatter) Format(w io.Writer, results ...*kcparse.Result) error {
	return f.FormatFn(w, results...)
}
