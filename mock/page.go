package mock

import (
	"context"

	"github.com/fwojciec/newsint"
)

var _ newsint.Converter = (*Converter)(nil)

// Converter is a mock implementation of newsint.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ newsint.MetadataParser = (*MetadataParser)(nil)

// MetadataParser is a mock implementation of newsint.MetadataParser.
type MetadataParser struct {
	ParseFn func(html string) (map[string]string, error)
}

func (m *MetadataParser) Parse(html string) (map[string]string, error) {
	return m.ParseFn(html)
}

var _ newsint.HeaderSource = (*HeaderSource)(nil)

// HeaderSource is a mock implementation of newsint.HeaderSource.
type HeaderSource struct {
	HeadersFn func(url string) map[string]string
}

func (h *HeaderSource) Headers(url string) map[string]string {
	if h.HeadersFn == nil {
		return nil
	}
	return h.HeadersFn(url)
}

var _ newsint.HealthChecker = (*HealthChecker)(nil)

// HealthChecker is a mock implementation of newsint.HealthChecker.
type HealthChecker struct {
	CheckFn func(ctx context.Context, url string) newsint.Health
}

func (h *HealthChecker) Check(ctx context.Context, url string) newsint.Health {
	return h.CheckFn(ctx, url)
}

var _ newsint.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of newsint.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	if d.WaitFn == nil {
		return nil
	}
	return d.WaitFn(ctx, domain)
}

var _ newsint.FeedDiscoverer = (*FeedDiscoverer)(nil)

// FeedDiscoverer is a mock implementation of newsint.FeedDiscoverer.
type FeedDiscoverer struct {
	DiscoverFn func(ctx context.Context, siteURL string) ([]string, error)
}

func (f *FeedDiscoverer) Discover(ctx context.Context, siteURL string) ([]string, error) {
	return f.DiscoverFn(ctx, siteURL)
}

var _ newsint.ArticleWriter = (*ArticleWriter)(nil)

// ArticleWriter is a mock implementation of newsint.ArticleWriter.
type ArticleWriter struct {
	WriteReportFn func(ctx context.Context, report *newsint.Report) error
}

func (w *ArticleWriter) WriteReport(ctx context.Context, report *newsint.Report) error {
	return w.WriteReportFn(ctx, report)
}
