package scrape

import (
	"context"
	"fmt"

	"github.com/fwojciec/newsint"
	"golang.org/x/sync/errgroup"
)

// Extractor runs every configured extraction strategy against the same
// fetched page. Strategies execute concurrently and their failures are
// isolated: one strategy failing, or even panicking, never prevents the
// others from producing a result.
type Extractor struct {
	Strategies []newsint.ExtractionStrategy
}

// Extract runs all strategies and returns a result per strategy name. The
// returned map contains an entry for every strategy that was attempted.
func (e *Extractor) Extract(ctx context.Context, schema *newsint.Schema, page *newsint.Page) map[string]newsint.ExtractionResult {
	results := make([]newsint.ExtractionResult, len(e.Strategies))

	g, gctx := errgroup.WithContext(ctx)
	for i, strategy := range e.Strategies {
		g.Go(func() error {
			results[i] = runStrategy(gctx, strategy, schema, page)
			return nil
		})
	}
	_ = g.Wait()

	out := make(map[string]newsint.ExtractionResult, len(e.Strategies))
	for i, strategy := range e.Strategies {
		out[strategy.Name()] = results[i]
	}
	return out
}

// runStrategy invokes one strategy, translating a panic into a failure
// result so a misbehaving parser cannot take down the whole pass.
func runStrategy(ctx context.Context, strategy newsint.ExtractionStrategy, schema *newsint.Schema, page *newsint.Page) (result newsint.ExtractionResult) {
	defer func() {
		if r := recover(); r != nil {
			result = newsint.ExtractionFailure(newsint.Errorf(newsint.EINTERNAL, "strategy %s panicked: %v", strategy.Name(), r))
		}
	}()
	if err := ctx.Err(); err != nil {
		return newsint.ExtractionFailure(fmt.Errorf("strategy %s: %w", strategy.Name(), err))
	}
	return strategy.Extract(ctx, schema, page)
}
