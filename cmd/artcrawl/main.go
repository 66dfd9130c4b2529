package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	charmlog "github.com/charmbracelet/log"
	"github.com/fwojciec/artcrawl/crawl"
	"github.com/fwojciec/artcrawl/fs"
	"github.com/fwojciec/artcrawl/goquery"
	crawlhttp "github.com/fwojciec/artcrawl/http"
	crawlslog "github.com/fwojciec/artcrawl/slog"
	"github.com/google/uuid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("artcrawl"),
		kong.Description("Scrape articles linked from seed pages into a JSON document"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	logger := newLogger(stderr, cli.Verbose).With("run", uuid.NewString())

	// Wire dependencies
	fetcher := crawlhttp.NewFetcher(
		crawlhttp.WithTimeout(cli.Timeout),
		crawlhttp.WithUserAgent(cli.UserAgent),
	)
	defer fetcher.Close()

	deps := &Dependencies{
		Ctx:     ctx,
		Stdout:  stdout,
		Stderr:  stderr,
		Logger:  logger,
		Fetcher: crawlslog.NewLoggingFetcher(fetcher, logger),
		Parser:  goquery.NewParser(),
		Pacer:   crawl.NewPacer(cli.Delay),
		Store:   crawlslog.NewLoggingStore(fs.NewStore(cli.Output), cli.Output, logger),
	}

	cmd := &CrawlCmd{
		Seeds:       cli.Seeds,
		Output:      cli.Output,
		Quota:       cli.Quota,
		Concurrency: cli.Concurrency,
		Print:       cli.Print,
	}
	return cmd.Run(deps)
}

// newLogger returns a slog.Logger rendered by charmbracelet/log.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := charmlog.InfoLevel
	if verbose {
		level = charmlog.DebugLevel
	}
	handler := charmlog.NewWithOptions(w, charmlog.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	})
	return slog.New(handler)
}
