// Package scrape provides news scraping orchestration. It coordinates URL
// health checks, domain-aware delays, fetching, multi-strategy extraction,
// merging, and content processing into per-address article records.
package scrape

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/newsint"
	"github.com/fwojciec/newsint/bloom"
)

// Scraper orchestrates the scraping of news articles. Addresses are
// processed sequentially; RunStats has a single writer for the whole run.
type Scraper struct {
	Fetcher     newsint.Fetcher
	Headers     newsint.HeaderSource
	Health      newsint.HealthChecker
	Converter   newsint.Converter
	Metadata    newsint.MetadataParser
	Registry    *newsint.Registry
	Extractor   *Extractor
	Processor   *newsint.Processor
	Limiter     newsint.DomainLimiter
	Backoff     *Backoff
	Deduper     *bloom.Deduper
	RetryDelays []time.Duration

	// Sleep replaces the inter-request sleep. Tests set it to skip real
	// delays; nil means time.After.
	Sleep func(ctx context.Context, d time.Duration) error
}

// ProgressEvent reports progress during a scraping run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting scraping progress.
type ProgressFunc func(event ProgressEvent)

// ScrapeAll processes the addresses sequentially and returns the collected
// articles together with the run's statistics. A failed address yields no
// article and one error record; it never aborts the batch. The progress
// callback, if provided, receives events as scraping proceeds.
func (s *Scraper) ScrapeAll(ctx context.Context, urls []string, progress ProgressFunc) ([]*newsint.Article, newsint.RunStats, error) {
	stats := newsint.NewRunStats()
	total := len(urls)

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	var articles []*newsint.Article
	completed := 0
	for _, url := range urls {
		if err := ctx.Err(); err != nil {
			stats.EndTime = time.Now().UTC()
			return articles, stats, err
		}
		completed++

		// Drop addresses already seen this run
		if s.Deduper != nil && s.Deduper.SeenURL(url) {
			if progress != nil {
				progress(ProgressEvent{Type: ProgressSkipped, Completed: completed, Total: total, URL: url})
			}
			continue
		}

		stats.TotalRequests++
		article, err := s.ScrapeArticle(ctx, url)
		if err != nil {
			stats.RecordFailure(url, err)
			if progress != nil {
				progress(ProgressEvent{Type: ProgressFailed, Completed: completed, Total: total, URL: url, Error: err})
			}
			continue
		}
		stats.SuccessfulRequests++

		// Drop syndicated copies of a story already collected
		if s.Deduper != nil && s.Deduper.SeenContent(article.Content) {
			if progress != nil {
				progress(ProgressEvent{Type: ProgressSkipped, Completed: completed, Total: total, URL: url})
			}
			continue
		}

		stats.TotalArticles++
		articles = append(articles, article)
		if progress != nil {
			progress(ProgressEvent{Type: ProgressCompleted, Completed: completed, Total: total, URL: url})
		}
	}

	stats.EndTime = time.Now().UTC()
	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: completed, Total: total})
	}

	return articles, stats, nil
}

// ScrapeArticle processes a single address through the full pipeline:
// health check, delay, fetch, multi-strategy extraction, merge, and
// content processing.
func (s *Scraper) ScrapeArticle(ctx context.Context, url string) (*newsint.Article, error) {
	domain := newsint.Domain(url)

	if s.Health != nil {
		health := s.Health.Check(ctx, url)
		if !health.Accessible {
			reason := health.Err
			if reason == "" {
				reason = fmt.Sprintf("HTTP %d", health.StatusCode)
			}
			if health.RateLimited && s.Backoff != nil {
				s.Backoff.RecordFailure(domain)
			}
			return nil, newsint.Errorf(newsint.ENOTFOUND, "URL not accessible: %s", reason)
		}
	}

	if s.Limiter != nil {
		if err := s.Limiter.Wait(ctx, domain); err != nil {
			return nil, err
		}
	}

	if s.Backoff != nil {
		if err := s.sleep(ctx, s.Backoff.Delay(domain)); err != nil {
			return nil, err
		}
	}

	var headers map[string]string
	if s.Headers != nil {
		headers = s.Headers.Headers(url)
	}

	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	fetchFn := func(ctx context.Context, url string) (string, error) {
		return s.Fetcher.Fetch(ctx, url, headers)
	}
	html, err := FetchWithRetryDelays(ctx, url, fetchFn, nil, delays)
	if err != nil {
		// Rate-limit signals grow the domain's delay for later attempts
		if newsint.ErrorCode(err) == newsint.ERATELIMITED && s.Backoff != nil {
			s.Backoff.RecordFailure(domain)
		}
		return nil, err
	}

	page := &newsint.Page{URL: url, HTML: html}
	if s.Converter != nil {
		if markdown, err := s.Converter.Convert(html); err == nil {
			page.Markdown = markdown
		}
	}
	if s.Metadata != nil {
		if metadata, err := s.Metadata.Parse(html); err == nil {
			page.Metadata = metadata
		}
	}

	schema := newsint.BuildSchema(url, s.Registry)
	results := s.Extractor.Extract(ctx, schema, page)

	article := newsint.Merge(url, page, results)
	s.Processor.Process(article, page.Metadata)

	if article.Content == "" {
		return nil, newsint.Errorf(newsint.EINTERNAL, "no content extracted from %s", url)
	}

	return article, nil
}

func (s *Scraper) sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	if s.Sleep != nil {
		return s.Sleep(ctx, d)
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// TruncateURL shortens a URL for display, keeping the end which is more
// informative.
func TruncateURL(url string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 4 {
		return url[:min(len(url), maxLen)]
	}
	if len(url) <= maxLen {
		return url
	}
	return "..." + url[len(url)-maxLen+3:]
}
