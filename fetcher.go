package kcparse

import "context"

// Fetcher loads raw markup for a source (a file path or a URL).
type Fetcher interface {
	// Fetch returns the markup for source.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, source string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

// DomainLimiter controls request rate per domain.
type DomainLimiter interface {
	// Wait blocks until a request to domain is allowed or ctx is done.
	Wait(ctx context.Context, domain string) error
}
