package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/newsint"
)

// Ensure LoggingFeedDiscoverer implements newsint.FeedDiscoverer.
var _ newsint.FeedDiscoverer = (*LoggingFeedDiscoverer)(nil)

// LoggingFeedDiscoverer wraps a FeedDiscoverer with debug logging.
type LoggingFeedDiscoverer struct {
	next   newsint.FeedDiscoverer
	logger *slog.Logger
}

// NewLoggingFeedDiscoverer creates a new LoggingFeedDiscoverer.
func NewLoggingFeedDiscoverer(next newsint.FeedDiscoverer, logger *slog.Logger) *LoggingFeedDiscoverer {
	return &LoggingFeedDiscoverer{next: next, logger: logger}
}

// Discover delegates to the wrapped discoverer and logs the operation.
func (d *LoggingFeedDiscoverer) Discover(ctx context.Context, siteURL string) (urls []string, err error) {
	defer func(begin time.Time) {
		d.logger.Info("feed discovery",
			"url", siteURL,
			"count", len(urls),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return d.next.Discover(ctx, siteURL)
}
