package mock

import (
	"context"

	"github.com/fwojciec/newsint"
)

var _ newsint.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of newsint.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string, headers map[string]string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string, headers map[string]string) (string, error) {
	return f.FetchFn(ctx, url, headers)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
