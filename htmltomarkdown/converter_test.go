package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/newsint"
	"github.com/fwojciec/newsint/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	conv := htmltomarkdown.NewConverter()

	t.Run("converts headings and paragraphs", func(t *testing.T) {
		t.Parallel()

		got, err := conv.Convert("<h1>Headline</h1><p>Body text.</p>")

		require.NoError(t, err)
		assert.Contains(t, got, "# Headline")
		assert.Contains(t, got, "Body text.")
	})

	t.Run("empty input is invalid", func(t *testing.T) {
		t.Parallel()

		_, err := conv.Convert("   ")

		assert.Equal(t, newsint.EINVALID, newsint.ErrorCode(err))
	})
}
