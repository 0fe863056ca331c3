package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/fwojciec/newsint"
	main "github.com/fwojciec/newsint/cmd/newsint"
	"github.com/fwojciec/newsint/mock"
	"github.com/fwojciec/newsint/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testContext returns a background context for tests.
func testContext() context.Context {
	return context.Background()
}

const articleBody = "The central bank held interest rates steady on Thursday, citing strong growth and a resilient labor market across the region."

// newTestMain builds a Main with an in-memory scraping pipeline and a
// writer factory that captures the report instead of touching disk.
func newTestMain() (*main.Main, *capturedWrite) {
	captured := &capturedWrite{}

	m := main.NewMain()
	m.Scraper = &scrape.Scraper{
		Fetcher: &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string, headers map[string]string) (string, error) {
				return "<html><body>rendered</body></html>", nil
			},
		},
		Registry: newsint.NewRegistry(newsint.DefaultProfiles()...),
		Extractor: &scrape.Extractor{Strategies: []newsint.ExtractionStrategy{
			&mock.Strategy{
				NameFn: func() string { return newsint.StrategyStructured },
				ExtractFn: func(ctx context.Context, schema *newsint.Schema, page *newsint.Page) newsint.ExtractionResult {
					return newsint.ExtractionSuccess(newsint.FieldValues{
						newsint.FieldTitle:   {"Rates Held Steady"},
						newsint.FieldContent: {articleBody},
					})
				},
			},
		}},
		Processor:   newsint.NewProcessor(newsint.DefaultVocabulary()),
		RetryDelays: []time.Duration{},
		Sleep:       func(ctx context.Context, d time.Duration) error { return nil },
	}
	m.NewWriter = func(path string) newsint.ArticleWriter {
		captured.path = path
		return &mock.ArticleWriter{
			WriteReportFn: func(ctx context.Context, report *newsint.Report) error {
				captured.report = report
				return nil
			},
		}
	}

	return m, captured
}

type capturedWrite struct {
	path   string
	report *newsint.Report
}

func TestRun_HelpFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{"--help flag", []string{"--help"}},
		{"-h flag", []string{"-h"}},
		{"help command", []string{"help"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := main.NewMain()

			stdout := &bytes.Buffer{}
			stderr := &bytes.Buffer{}

			err := m.Run(testContext(), tt.args, stdout, stderr)

			require.NoError(t, err)
			// Usage should be printed to stdout (not stderr) when explicitly requested
			assert.Contains(t, stdout.String(), "Usage: newsint")
			assert.Contains(t, stdout.String(), "Commands:")
			assert.Empty(t, stderr.String())
		})
	}
}

func TestRun_NoArgs(t *testing.T) {
	t.Parallel()

	m := main.NewMain()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(testContext(), []string{}, stdout, stderr)

	// No args should show usage to stdout and return error
	require.Error(t, err)
	assert.Contains(t, stdout.String(), "Usage: newsint")
}

func TestRun_UnknownCommand(t *testing.T) {
	t.Parallel()

	m := main.NewMain()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(testContext(), []string{"frobnicate"}, stdout, stderr)

	require.Error(t, err)
}
