package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/newsint"
)

// Ensure LoggingStrategy implements newsint.ExtractionStrategy.
var _ newsint.ExtractionStrategy = (*LoggingStrategy)(nil)

// LoggingStrategy wraps an ExtractionStrategy with debug logging.
type LoggingStrategy struct {
	next   newsint.ExtractionStrategy
	logger *slog.Logger
}

// NewLoggingStrategy creates a new LoggingStrategy.
func NewLoggingStrategy(next newsint.ExtractionStrategy, logger *slog.Logger) *LoggingStrategy {
	return &LoggingStrategy{next: next, logger: logger}
}

// Name delegates to the wrapped strategy.
func (s *LoggingStrategy) Name() string {
	return s.next.Name()
}

// Extract logs the extraction attempt and delegates to the wrapped strategy.
func (s *LoggingStrategy) Extract(ctx context.Context, schema *newsint.Schema, page *newsint.Page) (result newsint.ExtractionResult) {
	defer func(begin time.Time) {
		fields, ok := result.Fields()
		s.logger.Info("extract",
			"strategy", s.next.Name(),
			"url", page.URL,
			"fields", len(fields),
			"ok", ok,
			"duration", time.Since(begin),
			"err", result.Err(),
		)
	}(time.Now())
	return s.next.Extract(ctx, schema, page)
}
