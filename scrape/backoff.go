package scrape

import (
	"math"
	"math/rand/v2"
	"sync"
	"time"
)

// MaxDelay caps the inter-request delay regardless of accumulated failures.
const MaxDelay = 30 * time.Second

// DefaultBaseDelays holds per-site base delays between requests. Sites not
// listed use DefaultBaseDelay.
func DefaultBaseDelays() map[string]time.Duration {
	return map[string]time.Duration{
		"bbc.com":     2 * time.Second,
		"cnn.com":     1500 * time.Millisecond,
		"reuters.com": 2 * time.Second,
		"nytimes.com": 3 * time.Second,
		"wsj.com":     4 * time.Second,
	}
}

// DefaultBaseDelay is the inter-request delay for domains without a
// specific entry.
const DefaultBaseDelay = 1 * time.Second

// Backoff computes domain-aware inter-request delays. The base delay grows
// by 1.5x per recorded failure on the domain and a random jitter in
// [0.5, 1.5) is applied, capped at MaxDelay.
//
// Backoff is safe for concurrent use.
type Backoff struct {
	mu         sync.Mutex
	failures   map[string]int
	baseDelays map[string]time.Duration
	baseDelay  time.Duration
	jitter     func() float64
}

// BackoffOption configures a Backoff.
type BackoffOption func(*Backoff)

// WithBaseDelays replaces the per-domain base delay table.
func WithBaseDelays(delays map[string]time.Duration) BackoffOption {
	return func(b *Backoff) {
		b.baseDelays = delays
	}
}

// WithDefaultDelay sets the base delay for domains without a table entry.
func WithDefaultDelay(d time.Duration) BackoffOption {
	return func(b *Backoff) {
		b.baseDelay = d
	}
}

// WithJitter replaces the jitter source. Used by tests to make delays
// deterministic.
func WithJitter(fn func() float64) BackoffOption {
	return func(b *Backoff) {
		b.jitter = fn
	}
}

// NewBackoff creates a Backoff with the default delay table.
func NewBackoff(opts ...BackoffOption) *Backoff {
	b := &Backoff{
		failures:   make(map[string]int),
		baseDelays: DefaultBaseDelays(),
		baseDelay:  DefaultBaseDelay,
		jitter: func() float64 {
			return 0.5 + rand.Float64()
		},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Delay returns the delay to apply before the next request to the domain.
func (b *Backoff) Delay(domain string) time.Duration {
	b.mu.Lock()
	base, ok := b.baseDelays[domain]
	if !ok {
		base = b.baseDelay
	}
	failureCount := b.failures[domain]
	b.mu.Unlock()

	delay := float64(base)
	if failureCount > 0 {
		delay *= math.Pow(1.5, float64(failureCount))
	}
	delay *= b.jitter()

	if delay > float64(MaxDelay) {
		return MaxDelay
	}
	return time.Duration(delay)
}

// RecordFailure increments the failure counter for the domain, growing all
// subsequent delays for it. Called on rate-limit and server-busy signals.
func (b *Backoff) RecordFailure(domain string) {
	b.mu.Lock()
	b.failures[domain]++
	b.mu.Unlock()
}

// Failures returns the recorded failure count for the domain.
func (b *Backoff) Failures(domain string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.failures[domain]
}
