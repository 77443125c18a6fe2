package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/kcparse"
	"github.com/fwojciec/kcparse/batch"
	"github.com/fwojciec/kcparse/fs"
	"github.com/fwojciec/kcparse/goquery"
	kchttp "github.com/fwojciec/kcparse/http"
	"github.com/fwojciec/kcparse/json"
	kcslog "github.com/fwojciec/kcparse/slog"
	"github.com/fwojciec/kcparse/yaml"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher overrides source routing. Set before calling Run().
	Fetcher kcparse.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("kcparse"),
		kong.Description("Extract knowledge carousel items from search result pages"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Configuration(yamlConfig),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no sources specified. Run 'kcparse --help' to see usage")
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	}

	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher = &batch.Router{
			Local:  fs.NewFetcher(),
			Remote: kchttp.NewFetcher(kchttp.WithTimeout(cli.Timeout)),
		}
	}
	deps.Fetcher = kcslog.NewLoggingFetcher(fetcher, logger)
	defer deps.Fetcher.Close()

	extractor, err := newExtractor(cli)
	if err != nil {
		return err
	}
	deps.Extractor = kcslog.NewLoggingExtractor(extractor, logger)
	deps.Classifier = kcslog.NewLoggingClassifier(goquery.NewClassifier(), logger)

	switch cli.Format {
	case "yaml":
		deps.Formatter = yaml.NewFormatter()
	default:
		deps.Formatter = json.NewFormatter("  ")
	}

	if cli.Rate > 0 {
		deps.RateLimiter = batch.NewDomainLimiter(cli.Rate)
	}

	return cli.Run(deps)
}

func newExtractor(cli *CLI) (*goquery.Extractor, error) {
	mode, err := kcparse.ParseMode(cli.Mode)
	if err != nil {
		return nil, err
	}
	opts := []goquery.Option{
		goquery.WithMode(mode),
		goquery.WithHost(cli.Host),
	}
	if cli.Kind != "" {
		kind, err := kcparse.ParseKind(cli.Kind)
		if err != nil {
			return nil, err
		}
		opts = append(opts, goquery.WithKind(kind))
	}
	return goquery.NewExtractor(opts...), nil
}
