package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/newsint"
	"github.com/fwojciec/newsint/bloom"
	"github.com/fwojciec/newsint/fs"
	"github.com/fwojciec/newsint/gemini"
	"github.com/fwojciec/newsint/goquery"
	"github.com/fwojciec/newsint/htmltomarkdown"
	newshttp "github.com/fwojciec/newsint/http"
	"github.com/fwojciec/newsint/readability"
	"github.com/fwojciec/newsint/rod"
	"github.com/fwojciec/newsint/scrape"
	newslog "github.com/fwojciec/newsint/slog"
	"github.com/fwojciec/newsint/trafilatura"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Services for end-to-end testing. Left nil, Run wires the real
	// implementations.
	Scraper    *scrape.Scraper
	Discoverer newsint.FeedDiscoverer
	NewWriter  func(path string) newsint.ArticleWriter
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("newsint"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'newsint --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Discoverer = m.Discoverer
	if deps.Discoverer == nil {
		deps.Discoverer = newshttp.NewFeedDiscoverer(nil)
	}

	deps.NewWriter = m.NewWriter
	if deps.NewWriter == nil {
		deps.NewWriter = func(path string) newsint.ArticleWriter {
			return fs.NewReportWriter(path)
		}
	}

	// Wire the scraping pipeline only when the scrape command runs; the
	// browser is expensive to start.
	if cmd == "scrape" {
		deps.Scraper = m.Scraper
		if deps.Scraper == nil {
			scraper, cleanup, err := buildScraper(ctx, &cli.Scrape, stderr)
			if err != nil {
				return err
			}
			defer cleanup()
			deps.Scraper = scraper
		}
	}

	return kongCtx.Run(deps)
}

// buildScraper assembles the production scraping pipeline. The returned
// cleanup function closes the fetcher (and its browser, if any).
func buildScraper(ctx context.Context, cmd *ScrapeCmd, stderr io.Writer) (*scrape.Scraper, func(), error) {
	var fetcher newsint.Fetcher
	if cmd.Static {
		fetcher = newshttp.NewFetcher()
	} else {
		f, err := rod.NewFetcher()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed, or pass --static")
			return nil, nil, fmt.Errorf("failed to start browser: %w", err)
		}
		fetcher = f
	}

	var semantic newsint.ExtractionStrategy = trafilatura.NewStrategy()
	if cmd.Readability {
		semantic = readability.NewStrategy()
	}

	strategies := []newsint.ExtractionStrategy{
		goquery.NewStrategy(),
		semantic,
	}

	// The assisted strategy is always configured; without credentials it
	// reports unavailable and the other strategies carry the extraction.
	var client *genai.Client
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		c, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			_ = fetcher.Close()
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return nil, nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		client = c
	}
	strategies = append(strategies, gemini.NewStrategy(client))

	if cmd.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		fetcher = newslog.NewLoggingFetcher(fetcher, logger)
		for i, s := range strategies {
			strategies[i] = newslog.NewLoggingStrategy(s, logger)
		}
	}

	scraper := &scrape.Scraper{
		Fetcher:   fetcher,
		Headers:   newshttp.NewHeaderRotator(),
		Health:    newshttp.NewProber(nil),
		Converter: htmltomarkdown.NewConverter(),
		Metadata:  goquery.NewMetadataParser(),
		Registry:  newsint.NewRegistry(newsint.DefaultProfiles()...),
		Extractor: &scrape.Extractor{Strategies: strategies},
		Processor: newsint.NewProcessor(newsint.DefaultVocabulary()),
		Limiter:   scrape.NewDomainLimiter(1.0),
		Backoff:   scrape.NewBackoff(),
		Deduper:   bloom.NewDeduper(dedupeCapacity, dedupeFPRate),
	}

	cleanup := func() { _ = fetcher.Close() }
	return scraper, cleanup, nil
}

// Dedupe filter sizing for a single CLI run.
const (
	dedupeCapacity = 10000
	dedupeFPRate   = 0.01
)
