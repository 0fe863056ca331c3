package goquery_test

import (
	"context"
	"testing"

	"github.com/fwojciec/newsint"
	"github.com/fwojciec/newsint/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articleHTML = `<!DOCTYPE html>
<html>
<head>
	<title>Head Title | Site</title>
	<meta name="keywords" content="tech, economy">
</head>
<body>
	<article>
		<h1 data-testid="headline">Rates Fall Again</h1>
		<div class="byline">Jo Reporter</div>
		<time datetime="2026-08-30">30 August 2026</time>
		<div data-component="text-block"><p>First paragraph of the story.</p></div>
		<div data-component="text-block"><p>Second paragraph of the story.</p></div>
	</article>
</body>
</html>`

func TestStrategy_Name(t *testing.T) {
	t.Parallel()

	assert.Equal(t, newsint.StrategyStructured, goquery.NewStrategy().Name())
}

func TestStrategy_Extract(t *testing.T) {
	t.Parallel()

	registry := newsint.NewRegistry(newsint.DefaultProfiles()...)
	schema := newsint.BuildSchema("https://www.bbc.com/news/business-1", registry)
	strategy := goquery.NewStrategy()

	t.Run("resolves fields through the selector union", func(t *testing.T) {
		t.Parallel()

		result := strategy.Extract(context.Background(), schema, &newsint.Page{HTML: articleHTML})

		fields, ok := result.Fields()
		require.True(t, ok)
		assert.Equal(t, "Rates Fall Again", fields.First(newsint.FieldTitle))
		assert.Equal(t, "Jo Reporter", fields.First(newsint.FieldAuthor))
		assert.Equal(t, "30 August 2026", fields.First(newsint.FieldDate))
	})

	t.Run("content collects every paragraph in document order", func(t *testing.T) {
		t.Parallel()

		result := strategy.Extract(context.Background(), schema, &newsint.Page{HTML: articleHTML})

		fields, ok := result.Fields()
		require.True(t, ok)
		assert.Equal(t, []string{
			"First paragraph of the story.",
			"Second paragraph of the story.",
		}, fields[newsint.FieldContent])
	})

	t.Run("single-valued fields take the first non-empty match", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><h1>  </h1><h1>Second Heading</h1></body></html>`
		wildcardSchema := newsint.BuildSchema("https://unknown.example/story", registry)

		result := strategy.Extract(context.Background(), wildcardSchema, &newsint.Page{HTML: html})

		fields, ok := result.Fields()
		require.True(t, ok)
		assert.Equal(t, "Second Heading", fields.First(newsint.FieldTitle))
	})

	t.Run("attribute fields read the named attribute", func(t *testing.T) {
		t.Parallel()

		result := strategy.Extract(context.Background(), schema, &newsint.Page{HTML: articleHTML})

		fields, ok := result.Fields()
		require.True(t, ok)
		assert.Equal(t, "tech, economy", fields.First("meta_keywords"))
	})

	t.Run("missing fields are absent, not an error", func(t *testing.T) {
		t.Parallel()

		result := strategy.Extract(context.Background(), schema, &newsint.Page{HTML: "<html><body><p>x</p></body></html>"})

		fields, ok := result.Fields()
		require.True(t, ok)
		_, present := fields[newsint.FieldCategory]
		assert.False(t, present)
	})

	t.Run("empty page is a failure variant", func(t *testing.T) {
		t.Parallel()

		result := strategy.Extract(context.Background(), schema, &newsint.Page{})

		assert.True(t, result.Failed())
		assert.Equal(t, newsint.EINVALID, newsint.ErrorCode(result.Err()))
	})
}

func TestMetadataParser_Parse(t *testing.T) {
	t.Parallel()

	parser := goquery.NewMetadataParser()

	t.Run("extracts known metadata entries", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
			<title>Page Title</title>
			<meta name="description" content="A description.">
			<meta name="keywords" content="a, b">
			<meta property="og:title" content="OG Title">
			<link rel="canonical" href="https://example.org/canonical">
		</head><body></body></html>`

		meta, err := parser.Parse(html)

		require.NoError(t, err)
		assert.Equal(t, "Page Title", meta["title"])
		assert.Equal(t, "A description.", meta["description"])
		assert.Equal(t, "a, b", meta["keywords"])
		assert.Equal(t, "OG Title", meta["og:title"])
		assert.Equal(t, "https://example.org/canonical", meta["canonical"])
	})

	t.Run("missing entries are absent from the map", func(t *testing.T) {
		t.Parallel()

		meta, err := parser.Parse("<html><head></head><body></body></html>")

		require.NoError(t, err)
		assert.Empty(t, meta)
	})
}
