package newsint

import "context"

// Page represents a fetched, rendered news page.
type Page struct {
	URL string

	// HTML is the rendered document, after JavaScript execution when the
	// fetcher drives a browser.
	HTML string

	// Markdown is the whole-page text rendition used as the content
	// fallback when selector extraction comes up empty.
	Markdown string

	// Metadata holds page-level metadata keyed by name: "title",
	// "description", "keywords", "og:title", "canonical".
	Metadata map[string]string
}

// Fetcher retrieves rendered pages from URLs.
// Implementations may use browser automation to handle JavaScript-rendered
// content, or plain HTTP for static sites.
type Fetcher interface {
	// Fetch navigates to the URL with the given request headers and
	// returns the rendered HTML. The context controls timeout and
	// cancellation.
	Fetch(ctx context.Context, url string, headers map[string]string) (html string, err error)

	// Close releases fetcher resources.
	Close() error
}

// HeaderSource produces request headers for a target URL.
type HeaderSource interface {
	Headers(url string) map[string]string
}

// Health describes the result of a pre-scrape URL probe.
type Health struct {
	Accessible  bool
	StatusCode  int
	LatencyMS   int64
	Server      string
	ContentType string
	RateLimited bool
	Err         string
}

// HealthChecker probes a URL before scraping.
type HealthChecker interface {
	Check(ctx context.Context, url string) Health
}

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	Convert(html string) (string, error)
}

// MetadataParser extracts page-level metadata from rendered HTML.
type MetadataParser interface {
	// Parse returns page metadata keyed by name. Missing entries are
	// simply absent from the map; an empty map is never an error.
	Parse(html string) (map[string]string, error)
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}

// FeedDiscoverer expands a site address into individual article URLs
// using RSS/Atom feeds or sitemaps.
type FeedDiscoverer interface {
	Discover(ctx context.Context, siteURL string) ([]string, error)
}
