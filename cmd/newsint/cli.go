package main

import (
	"context"
	"io"

	"github.com/fwojciec/newsint"
	"github.com/fwojciec/newsint/scrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Scraper    *scrape.Scraper
	Discoverer newsint.FeedDiscoverer
	NewWriter  func(path string) newsint.ArticleWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Scrape   ScrapeCmd   `cmd:"" help:"Scrape news articles from the given URLs"`
	Discover DiscoverCmd `cmd:"" help:"Discover article URLs from a site's feeds"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URLs        []string `arg:"" help:"Article URLs to scrape"`
	Output      string   `short:"o" help:"Report output path (default: timestamped file in the current directory)"`
	Static      bool     `help:"Fetch with plain HTTP instead of a headless browser"`
	Readability bool     `help:"Use readability instead of trafilatura for semantic extraction"`
	Verbose     bool     `short:"v" help:"Log fetches and extractions to stderr"`
}

// DiscoverCmd is the "discover" subcommand.
type DiscoverCmd struct {
	URL string `arg:"" help:"Site URL to probe for feeds"`
}
