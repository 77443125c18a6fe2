// Package slog provides kcparse decorators that log operations with log/slog.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/kcparse"
)

// Ensure LoggingFetcher implements kcparse.Fetcher.
var _ kcparse.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   kcparse.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next kcparse.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, source string) (html string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch",
			"source", source,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, source)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
