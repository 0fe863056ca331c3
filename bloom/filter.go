// Package bloom provides duplicate detection for scraping runs: a Bloom
// filter over visited URLs and exact fingerprints over article content.
package bloom

import (
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/cespare/xxhash/v2"
)

// Deduper tracks which URLs and article bodies a run has already seen.
// URL membership is probabilistic: false positives are possible (a fresh
// URL may be reported as seen), false negatives are not. Content
// fingerprints are exact.
//
// Deduper is safe for concurrent use.
type Deduper struct {
	mu           sync.Mutex
	urls         *bloom.BloomFilter
	fingerprints map[uint64]struct{}
}

// NewDeduper creates a Deduper sized for n expected URLs with the given
// false positive rate.
func NewDeduper(n uint, fpRate float64) *Deduper {
	return &Deduper{
		urls:         bloom.NewWithEstimates(n, fpRate),
		fingerprints: make(map[uint64]struct{}),
	}
}

// SeenURL reports whether the URL was already recorded, recording it as a
// side effect. The first call for a URL returns false, later calls true.
func (d *Deduper) SeenURL(url string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.urls.TestAndAddString(url)
}

// SeenContent reports whether an article body with the same fingerprint
// was already recorded, recording it as a side effect. Used to drop
// syndicated copies of the same story published under different URLs.
func (d *Deduper) SeenContent(content string) bool {
	sum := xxhash.Sum64String(content)

	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.fingerprints[sum]; ok {
		return true
	}
	d.fingerprints[sum] = struct{}{}
	return false
}

// EstimatedURLCount returns the approximate number of URLs recorded.
func (d *Deduper) EstimatedURLCount() uint {
	d.mu.Lock()
	defer d.mu.Unlock()
	return uint(d.urls.ApproximatedSize())
}
