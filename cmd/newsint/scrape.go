package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/newsint"
	"github.com/fwojciec/newsint/fs"
	"github.com/fwojciec/newsint/scrape"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	progress := func(event scrape.ProgressEvent) {
		switch event.Type {
		case scrape.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Scraping %d addresses\n", event.Total)
		case scrape.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] ok   %s\n", event.Completed, event.Total, scrape.TruncateURL(event.URL, 60))
		case scrape.ProgressSkipped:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] skip %s\n", event.Completed, event.Total, scrape.TruncateURL(event.URL, 60))
		case scrape.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  fail %s: %s\n", scrape.TruncateURL(event.URL, 60), newsint.ErrorMessage(event.Error))
		case scrape.ProgressFinished:
			// Summary printed after the run completes
		}
	}

	articles, stats, err := deps.Scraper.ScrapeAll(deps.Ctx, c.URLs, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsint.ErrorMessage(err))
		return err
	}

	report := newsint.NewReport(articles, stats)

	path := c.Output
	if path == "" {
		path = fs.DefaultFilename(time.Now())
	}

	if err := deps.NewWriter(path).WriteReport(deps.Ctx, report); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsint.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Scraped %d articles from %d requests (%.1f%% success)\n",
		stats.TotalArticles, stats.TotalRequests, stats.SuccessRate()*100)
	if len(stats.Errors) > 0 {
		fmt.Fprintf(deps.Stdout, "%d failed; see report for details\n", stats.FailedRequests)
	}
	fmt.Fprintf(deps.Stdout, "Report written to %s\n", path)

	return nil
}
