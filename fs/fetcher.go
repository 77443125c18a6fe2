// Package fs provides file-based loading and writing for kcparse.
package fs

import (
	"context"
	"errors"
	"os"

	"github.com/fwojciec/kcparse"
)

// Ensure Fetcher implements kcparse.Fetcher at compile time.
var _ kcparse.Fetcher = (*Fetcher)(nil)

// Fetcher reads saved search result pages from the local filesystem.
type Fetcher struct{}

// NewFetcher creates a new Fetcher.
func NewFetcher() *Fetcher {
	return &Fetcher{}
}

// Fetch returns the contents of the file at path.
// Returns EINVALID for an empty path and ENOTFOUND if the file does not exist.
func (f *Fetcher) Fetch(ctx context.Context, path string) (string, error) {
	if path == "" {
		return "", kcparse.Errorf(kcparse.EINVALID, "file path required")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", kcparse.Errorf(kcparse.ENOTFOUND, "file %q not found", path)
	} else if err != nil {
		return "", err
	}
	return string(data), nil
}

// Close is a no-op; files are closed after every read.
func (f *Fetcher) Close() error {
	return nil
}
