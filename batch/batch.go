// Package batch extracts carousels from many sources concurrently.
// Each source is fetched and extracted independently; no state is shared
// between extractions.
package batch

import (
	"context"
	"net/url"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/kcparse"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is used when Runner.Concurrency is not positive.
const DefaultConcurrency = 4

// Runner fetches sources and extracts their carousels.
type Runner struct {
	Fetcher     kcparse.Fetcher
	Extractor   kcparse.Extractor
	RateLimiter kcparse.DomainLimiter // optional; applied to http(s) sources
	Concurrency int
}

// Outcome is the result of processing one source.
type Outcome struct {
	Source   string
	Position int
	Result   *kcparse.Result
	Hash     uint64 // xxhash of the fetched markup
	Err      error
}

// ProgressEvent reports progress during a batch run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Source    string
	Items     int
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// Run processes sources concurrently and returns one outcome per source in
// input order. A failing source is recorded on its outcome and does not
// stop the others. Run only returns an error if ctx is done.
func (r *Runner) Run(ctx context.Context, sources []string, progress ProgressFunc) ([]*Outcome, error) {
	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	total := len(sources)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	resultCh := make(chan *Outcome, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, source := range sources {
			g.Go(func() error {
				resultCh <- r.process(gctx, i, source)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results in order
	outcomes := make([]*Outcome, total)
	var completed atomic.Int64
	for outcome := range resultCh {
		outcomes[outcome.Position] = outcome
		n := int(completed.Add(1))
		if progress == nil {
			continue
		}
		if outcome.Err != nil {
			progress(ProgressEvent{
				Type:      ProgressFailed,
				Completed: n,
				Total:     total,
				Source:    outcome.Source,
				Error:     outcome.Err,
			})
			continue
		}
		progress(ProgressEvent{
			Type:      ProgressCompleted,
			Completed: n,
			Total:     total,
			Source:    outcome.Source,
			Items:     outcome.Result.Len(),
		})
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	if err := ctx.Err(); err != nil {
		return outcomes, err
	}
	return outcomes, nil
}

func (r *Runner) process(ctx context.Context, position int, source string) *Outcome {
	outcome := &Outcome{Source: source, Position: position}

	if r.RateLimiter != nil {
		if host := remoteHost(source); host != "" {
			if err := r.RateLimiter.Wait(ctx, host); err != nil {
				outcome.Err = err
				return outcome
			}
		}
	}

	html, err := r.Fetcher.Fetch(ctx, source)
	if err != nil {
		outcome.Err = err
		return outcome
	}
	outcome.Hash = xxhash.Sum64String(html)

	outcome.Result, outcome.Err = r.Extractor.Extract(html)
	return outcome
}

// Unique returns the successful outcomes, dropping any whose markup hash
// was already seen earlier in the list.
func Unique(outcomes []*Outcome) []*Outcome {
	seen := make(map[uint64]struct{}, len(outcomes))
	var out []*Outcome
	for _, o := range outcomes {
		if o == nil || o.Err != nil {
			continue
		}
		if _, ok := seen[o.Hash]; ok {
			continue
		}
		seen[o.Hash] = struct{}{}
		out = append(out, o)
	}
	return out
}

// remoteHost returns the host of an http(s) source, or "" for local paths.
func remoteHost(source string) string {
	u, err := url.Parse(source)
	if err != nil {
		return ""
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ""
	}
	return u.Host
}

// IsRemote reports whether source is an http(s) URL.
func IsRemote(source string) bool {
	return remoteHost(source) != ""
}
