package fs

import (
	"os"
	"path/filepath"

	"github.com/fwojciec/kcparse"
)

// Writer writes formatted results to a file. Output is written to a
// temporary file in the same directory and renamed into place, so readers
// never observe a partially written file.
type Writer struct {
	path      string
	formatter kcparse.Formatter
}

// NewWriter creates a new Writer for path using formatter.
func NewWriter(path string, formatter kcparse.Formatter) *Writer {
	return &Writer{path: path, formatter: formatter}
}

// Write formats results and replaces the file at the writer's path.
func (w *Writer) Write(results ...*kcparse.Result) (err error) {
	if w.path == "" {
		return kcparse.Errorf(kcparse.EINVALID, "output path required")
	}

	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(w.path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if err := w.formatter.Format(tmp, results...); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), w.path)
}
