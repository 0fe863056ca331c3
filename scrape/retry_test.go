package scrape_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/newsint/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchWithRetryDelays(t *testing.T) {
	t.Parallel()

	noDelays := []time.Duration{0, 0, 0}

	t.Run("returns on first success", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(ctx context.Context, url string) (string, error) {
			calls++
			return "<html></html>", nil
		}

		html, err := scrape.FetchWithRetryDelays(context.Background(), "https://example.org", fetch, nil, noDelays)

		require.NoError(t, err)
		assert.Equal(t, "<html></html>", html)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries until success", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(ctx context.Context, url string) (string, error) {
			calls++
			if calls < 3 {
				return "", errors.New("transient")
			}
			return "<html></html>", nil
		}

		html, err := scrape.FetchWithRetryDelays(context.Background(), "https://example.org", fetch, nil, noDelays)

		require.NoError(t, err)
		assert.Equal(t, "<html></html>", html)
		assert.Equal(t, 3, calls)
	})

	t.Run("returns last error when attempts exhausted", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(ctx context.Context, url string) (string, error) {
			calls++
			return "", errors.New("still down")
		}

		_, err := scrape.FetchWithRetryDelays(context.Background(), "https://example.org", fetch, nil, noDelays)

		require.Error(t, err)
		assert.EqualError(t, err, "still down")
		assert.Equal(t, 4, calls) // 1 initial + 3 retries
	})

	t.Run("logs retries", func(t *testing.T) {
		t.Parallel()

		var logged int
		logger := func(format string, args ...any) { logged++ }
		fetch := func(ctx context.Context, url string) (string, error) {
			return "", errors.New("down")
		}

		_, err := scrape.FetchWithRetryDelays(context.Background(), "https://example.org", fetch, logger, noDelays)

		require.Error(t, err)
		assert.Equal(t, 3, logged)
	})

	t.Run("stops on context cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		fetch := func(ctx context.Context, url string) (string, error) {
			cancel()
			return "", errors.New("down")
		}

		_, err := scrape.FetchWithRetryDelays(ctx, "https://example.org", fetch, nil, []time.Duration{time.Minute})

		require.ErrorIs(t, err, context.Canceled)
	})
}
