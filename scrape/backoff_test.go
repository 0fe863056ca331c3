package scrape_test

import (
	"testing"
	"time"

	"github.com/fwojciec/newsint/scrape"
	"github.com/stretchr/testify/assert"
)

// fixedJitter removes randomness so delays can be asserted exactly.
func fixedJitter(v float64) func() float64 {
	return func() float64 { return v }
}

func TestBackoff_Delay(t *testing.T) {
	t.Parallel()

	t.Run("uses per-domain base delay", func(t *testing.T) {
		t.Parallel()

		b := scrape.NewBackoff(scrape.WithJitter(fixedJitter(1)))

		assert.Equal(t, 2*time.Second, b.Delay("bbc.com"))
		assert.Equal(t, 1500*time.Millisecond, b.Delay("cnn.com"))
		assert.Equal(t, 4*time.Second, b.Delay("wsj.com"))
	})

	t.Run("unknown domain uses default delay", func(t *testing.T) {
		t.Parallel()

		b := scrape.NewBackoff(scrape.WithJitter(fixedJitter(1)))

		assert.Equal(t, scrape.DefaultBaseDelay, b.Delay("smalltownnews.example"))
	})

	t.Run("grows by 1.5x per recorded failure", func(t *testing.T) {
		t.Parallel()

		b := scrape.NewBackoff(scrape.WithJitter(fixedJitter(1)))

		b.RecordFailure("bbc.com")
		assert.Equal(t, 3*time.Second, b.Delay("bbc.com"))

		b.RecordFailure("bbc.com")
		assert.Equal(t, 4500*time.Millisecond, b.Delay("bbc.com"))

		// Other domains unaffected
		assert.Equal(t, 2*time.Second, b.Delay("reuters.com"))
	})

	t.Run("caps at MaxDelay", func(t *testing.T) {
		t.Parallel()

		b := scrape.NewBackoff(scrape.WithJitter(fixedJitter(1)))

		for range 20 {
			b.RecordFailure("wsj.com")
		}

		assert.Equal(t, scrape.MaxDelay, b.Delay("wsj.com"))
	})

	t.Run("applies jitter", func(t *testing.T) {
		t.Parallel()

		b := scrape.NewBackoff(scrape.WithJitter(fixedJitter(0.5)))

		assert.Equal(t, 1*time.Second, b.Delay("bbc.com"))
	})

	t.Run("random jitter stays within bounds", func(t *testing.T) {
		t.Parallel()

		b := scrape.NewBackoff()

		for range 100 {
			d := b.Delay("bbc.com")
			assert.GreaterOrEqual(t, d, 1*time.Second)
			assert.Less(t, d, 3*time.Second)
		}
	})

	t.Run("custom delay table", func(t *testing.T) {
		t.Parallel()

		b := scrape.NewBackoff(
			scrape.WithBaseDelays(map[string]time.Duration{"fast.example": time.Millisecond}),
			scrape.WithDefaultDelay(0),
			scrape.WithJitter(fixedJitter(1)),
		)

		assert.Equal(t, time.Millisecond, b.Delay("fast.example"))
		assert.Equal(t, time.Duration(0), b.Delay("other.example"))
	})
}

func TestBackoff_Failures(t *testing.T) {
	t.Parallel()

	b := scrape.NewBackoff()

	assert.Zero(t, b.Failures("bbc.com"))

	b.RecordFailure("bbc.com")
	b.RecordFailure("bbc.com")

	assert.Equal(t, 2, b.Failures("bbc.com"))
	assert.Zero(t, b.Failures("cnn.com"))
}
