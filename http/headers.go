// Package http provides HTTP-based collaborators for the scraping
// pipeline: request header generation, pre-scrape health probes, a static
// site fetcher, and article feed discovery.
package http

import (
	"net/url"
	"strings"
	"sync"

	"github.com/fwojciec/newsint"
)

// Ensure HeaderRotator implements newsint.HeaderSource at compile time.
var _ newsint.HeaderSource = (*HeaderRotator)(nil)

// DefaultUserAgents is the built-in User-Agent rotation pool.
var DefaultUserAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
}

// HeaderRotator produces browser-like request headers with a rotating
// User-Agent and domain-aware customizations. Safe for concurrent use.
type HeaderRotator struct {
	mu         sync.Mutex
	userAgents []string
	next       int
}

// NewHeaderRotator creates a HeaderRotator over the given User-Agent pool.
// An empty pool falls back to DefaultUserAgents.
func NewHeaderRotator(userAgents ...string) *HeaderRotator {
	if len(userAgents) == 0 {
		userAgents = DefaultUserAgents
	}
	return &HeaderRotator{userAgents: userAgents}
}

// Headers generates request headers for the target URL. Each call rotates
// to the next User-Agent in the pool.
func (r *HeaderRotator) Headers(rawURL string) map[string]string {
	r.mu.Lock()
	ua := r.userAgents[r.next%len(r.userAgents)]
	r.next++
	r.mu.Unlock()

	headers := map[string]string{
		"User-Agent":                ua,
		"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
		"Accept-Language":           "en-US,en;q=0.9",
		"Accept-Encoding":           "gzip, deflate, br",
		"DNT":                       "1",
		"Connection":                "keep-alive",
		"Upgrade-Insecure-Requests": "1",
		"Sec-Fetch-Dest":            "document",
		"Sec-Fetch-Mode":            "navigate",
		"Sec-Fetch-Site":            "none",
		"Sec-Fetch-User":            "?1",
		"Cache-Control":             "max-age=0",
	}

	domain := ""
	if u, err := url.Parse(rawURL); err == nil {
		domain = u.Host
	}

	if !strings.Contains(domain, "google") {
		headers["Referer"] = "https://www.google.com/"
	}

	// Regional sites respond better to a matching Accept-Language.
	if strings.Contains(domain, "bbc") {
		headers["Accept-Language"] = "en-GB,en;q=0.9"
	}

	return headers
}
