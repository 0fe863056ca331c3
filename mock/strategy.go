package mock

import (
	"context"

	"github.com/fwojciec/newsint"
)

var _ newsint.ExtractionStrategy = (*Strategy)(nil)

// Strategy is a mock implementation of newsint.ExtractionStrategy.
type Strategy struct {
	NameFn    func() string
	ExtractFn func(ctx context.Context, schema *newsint.Schema, page *newsint.Page) newsint.ExtractionResult
}

func (s *Strategy) Name() string {
	return s.NameFn()
}

func (s *Strategy) Extract(ctx context.Context, schema *newsint.Schema, page *newsint.Page) newsint.ExtractionResult {
	return s.ExtractFn(ctx, schema, page)
}
