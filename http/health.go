package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/newsint"
)

// DefaultProbeTimeout bounds the pre-scrape health probe.
const DefaultProbeTimeout = 10 * time.Second

// Ensure Prober implements newsint.HealthChecker at compile time.
var _ newsint.HealthChecker = (*Prober)(nil)

// Prober checks URL accessibility with a HEAD request before the full
// browser fetch is attempted.
type Prober struct {
	client *http.Client
}

// NewProber creates a Prober with the given HTTP client.
// If client is nil, a client with DefaultProbeTimeout is used.
func NewProber(client *http.Client) *Prober {
	if client == nil {
		client = &http.Client{Timeout: DefaultProbeTimeout}
	}
	return &Prober{client: client}
}

// Check probes the URL and reports accessibility and response
// characteristics. Probe failures are reported in the result, not as an
// error; an unreachable address is a normal outcome.
func (p *Prober) Check(ctx context.Context, url string) newsint.Health {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return newsint.Health{Err: err.Error()}
	}

	start := time.Now()
	resp, err := p.client.Do(req)
	if err != nil {
		return newsint.Health{Err: err.Error()}
	}
	defer resp.Body.Close()

	return newsint.Health{
		Accessible:  resp.StatusCode < http.StatusBadRequest,
		StatusCode:  resp.StatusCode,
		LatencyMS:   time.Since(start).Milliseconds(),
		Server:      resp.Header.Get("Server"),
		ContentType: resp.Header.Get("Content-Type"),
		RateLimited: isRateLimited(resp),
	}
}

// isRateLimited checks for rate limiting signals in the response.
func isRateLimited(resp *http.Response) bool {
	if resp.StatusCode == http.StatusTooManyRequests {
		return true
	}
	if resp.Header.Get("Retry-After") != "" {
		return true
	}
	for name := range resp.Header {
		if strings.HasPrefix(strings.ToLower(name), "x-ratelimit") {
			return true
		}
	}
	return false
}
