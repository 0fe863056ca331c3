package newsint_test

import (
	"encoding/json"
	"testing"

	"github.com/fwojciec/newsint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRunStats(t *testing.T) {
	t.Parallel()

	stats := newsint.NewRunStats()

	assert.NotEmpty(t, stats.RunID)
	assert.False(t, stats.StartTime.IsZero())
	assert.NotNil(t, stats.Errors)

	// Each run gets its own identifier
	assert.NotEqual(t, stats.RunID, newsint.NewRunStats().RunID)
}

func TestRunStats_RecordFailure(t *testing.T) {
	t.Parallel()

	var stats newsint.RunStats

	stats.RecordFailure("https://example.org/a", newsint.Errorf(newsint.ERATELIMITED, "429 from upstream"))

	assert.Equal(t, 1, stats.FailedRequests)
	require.Len(t, stats.Errors, 1)
	assert.Equal(t, "https://example.org/a", stats.Errors[0].URL)
	assert.Equal(t, newsint.ERATELIMITED, stats.Errors[0].Kind)
	assert.Equal(t, "429 from upstream", stats.Errors[0].Message)
	assert.False(t, stats.Errors[0].Timestamp.IsZero())
}

func TestRunStats_SuccessRate(t *testing.T) {
	t.Parallel()

	t.Run("empty run rates zero", func(t *testing.T) {
		t.Parallel()

		var stats newsint.RunStats
		assert.Zero(t, stats.SuccessRate())
	})

	t.Run("fractional rate", func(t *testing.T) {
		t.Parallel()

		stats := newsint.RunStats{TotalRequests: 4, SuccessfulRequests: 3}
		assert.InDelta(t, 0.75, stats.SuccessRate(), 1e-9)
	})
}

func TestNewReport(t *testing.T) {
	t.Parallel()

	t.Run("serializes with the expected top-level shape", func(t *testing.T) {
		t.Parallel()

		articles := []*newsint.Article{{URL: "https://example.org/a", Tags: []string{}}}
		report := newsint.NewReport(articles, newsint.RunStats{TotalRequests: 1, SuccessfulRequests: 1})

		data, err := json.Marshal(report)
		require.NoError(t, err)

		var doc map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(data, &doc))
		assert.Contains(t, doc, "metadata")
		assert.Contains(t, doc, "articles")

		var meta map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(doc["metadata"], &meta))
		assert.Contains(t, meta, "scraping_timestamp")
		assert.Contains(t, meta, "total_articles")
		assert.Contains(t, meta, "scraping_stats")
	})

	t.Run("nil article list exports as empty array", func(t *testing.T) {
		t.Parallel()

		report := newsint.NewReport(nil, newsint.RunStats{})

		assert.NotNil(t, report.Articles)
		assert.Zero(t, report.Metadata.TotalArticles)
	})
}
