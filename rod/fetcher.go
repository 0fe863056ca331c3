// Package rod fetches rendered article HTML using Chrome browser automation.
// It handles JavaScript-heavy news sites that plain HTTP fetching cannot,
// at the cost of launching and managing a headless browser.
package rod

import (
	"context"

	"github.com/fwojciec/newsint"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Fetcher implements newsint.Fetcher at compile time.
var _ newsint.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from news URLs using a managed headless
// Chrome browser. The underlying browser is recycled periodically to keep
// memory in check on long scraping runs.
//
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	manager *BrowserManager
}

// NewFetcher creates a new Fetcher backed by a BrowserManager.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...ManagerOption) (*Fetcher, error) {
	manager, err := NewBrowserManager(opts...)
	if err != nil {
		return nil, err
	}
	return &Fetcher{manager: manager}, nil
}

// Fetch navigates to the URL with the given request headers applied and
// returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string, headers map[string]string) (string, error) {
	// Check context before touching the browser
	if err := ctx.Err(); err != nil {
		return "", err
	}

	page, err := f.manager.Browser().Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	// Set context for all subsequent operations
	page = page.Context(ctx)

	if len(headers) > 0 {
		pairs := make([]string, 0, len(headers)*2)
		for name, value := range headers {
			pairs = append(pairs, name, value)
		}
		if _, err := page.SetExtraHeaders(pairs); err != nil {
			return "", err
		}
	}

	if err := page.Navigate(url); err != nil {
		return "", err
	}

	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	html, err := page.HTML()
	if err != nil {
		return "", err
	}

	f.manager.IncrementPageCount()

	return html, nil
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	return f.manager.Close()
}
