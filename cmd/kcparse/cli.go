package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/kcparse"
	"github.com/fwojciec/kcparse/batch"
	"github.com/fwojciec/kcparse/fs"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	Logger      *slog.Logger
	Fetcher     kcparse.Fetcher
	Extractor   kcparse.Extractor
	Classifier  kcparse.Classifier
	Formatter   kcparse.Formatter
	RateLimiter kcparse.DomainLimiter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Sources []string `arg:"" name:"source" help:"HTML files or http(s) URLs to extract from"`

	Mode        string          `enum:"name,name-date" default:"name" env:"KCPARSE_MODE" help:"Extraction mode (name, name-date)"`
	Host        string          `default:"https://www.google.com" env:"KCPARSE_HOST" help:"Host prepended to relative links"`
	Kind        string          `help:"Force a carousel kind instead of detecting it (artworks, albums, books, films, items)"`
	Format      string          `enum:"json,yaml" default:"json" env:"KCPARSE_FORMAT" help:"Output format (json, yaml)"`
	Output      string          `short:"o" type:"path" help:"Write output to a file instead of stdout"`
	Concurrency int             `short:"c" default:"4" help:"Concurrent extraction limit"`
	Timeout     time.Duration   `short:"t" default:"10s" help:"Timeout for fetching remote sources"`
	Rate        float64         `default:"1" help:"Requests per second per remote host (0 disables)"`
	Dedupe      bool            `help:"Skip sources whose markup repeats an earlier source"`
	Classify    bool            `help:"Print the detected carousel kind of each source instead of extracting"`
	Verbose     bool            `short:"v" help:"Log each fetch and extraction"`
	Config      kong.ConfigFlag `help:"YAML configuration file"`
}

// Run extracts every source and writes the results.
// Returns an error if any source failed; successful results are still written.
func (c *CLI) Run(deps *Dependencies) error {
	extractor := deps.Extractor
	if c.Classify {
		extractor = &classifyExtractor{classifier: deps.Classifier}
	}

	runner := &batch.Runner{
		Fetcher:     deps.Fetcher,
		Extractor:   extractor,
		RateLimiter: deps.RateLimiter,
		Concurrency: c.Concurrency,
	}

	outcomes, err := runner.Run(deps.Ctx, c.Sources, nil)
	if err != nil {
		return err
	}

	failed := 0
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", o.Source, kcparse.ErrorMessage(o.Err))
		}
	}

	succeeded := outcomes
	if c.Dedupe {
		succeeded = batch.Unique(outcomes)
	}

	if c.Classify {
		for _, o := range succeeded {
			if o.Err == nil {
				fmt.Fprintf(deps.Stdout, "%s\t%s\n", o.Source, o.Result.Key)
			}
		}
	} else if err := c.write(deps, succeeded); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d sources failed", failed, len(outcomes))
	}
	return nil
}

func (c *CLI) write(deps *Dependencies, outcomes []*batch.Outcome) error {
	results := make([]*kcparse.Result, 0, len(outcomes))
	for _, o := range outcomes {
		if o.Err == nil {
			results = append(results, o.Result)
		}
	}

	if c.Output != "" {
		if err := fs.NewWriter(c.Output, deps.Formatter).Write(results...); err != nil {
			return fmt.Errorf("failed to write %s: %w", c.Output, err)
		}
		return nil
	}
	return deps.Formatter.Format(deps.Stdout, results...)
}

// classifyExtractor reports only the carousel kind of a document.
type classifyExtractor struct {
	classifier kcparse.Classifier
}

func (e *classifyExtractor) Extract(html string) (*kcparse.Result, error) {
	if html == "" {
		return nil, kcparse.Errorf(kcparse.EINVALID, "html content required")
	}
	return kcparse.NewResult(e.classifier.Classify(html)), nil
}
