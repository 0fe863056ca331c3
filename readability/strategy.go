// Package readability provides an alternate semantic extraction strategy
// backed by go-readability's Mozilla Readability port.
package readability

import (
	"context"
	"strings"

	"github.com/fwojciec/newsint"
	readability "github.com/go-shiori/go-readability"
)

// Ensure Strategy implements newsint.ExtractionStrategy at compile time.
var _ newsint.ExtractionStrategy = (*Strategy)(nil)

// Strategy extracts the main article through readability scoring. It is a
// drop-in alternative to the trafilatura-backed semantic strategy; both
// report under the same strategy name and only one should be configured
// per pipeline.
type Strategy struct{}

// NewStrategy creates a new Strategy.
func NewStrategy() *Strategy {
	return &Strategy{}
}

// Name returns the strategy's identifier.
func (s *Strategy) Name() string {
	return newsint.StrategySemantic
}

// Extract runs readability over the page HTML.
func (s *Strategy) Extract(_ context.Context, _ *newsint.Schema, page *newsint.Page) newsint.ExtractionResult {
	if page == nil || page.HTML == "" {
		return newsint.ExtractionFailure(newsint.Errorf(newsint.EINVALID, "empty page HTML"))
	}

	article, err := readability.FromReader(strings.NewReader(page.HTML), nil)
	if err != nil {
		return newsint.ExtractionFailure(err)
	}

	fields := newsint.FieldValues{}
	if article.Title != "" {
		fields[newsint.FieldTitle] = []string{article.Title}
	}
	if article.Byline != "" {
		fields[newsint.FieldAuthor] = []string{article.Byline}
	}
	if text := strings.TrimSpace(article.TextContent); text != "" {
		fields[newsint.FieldContent] = splitParagraphs(text)
	}

	return newsint.ExtractionSuccess(fields)
}

func splitParagraphs(text string) []string {
	var paragraphs []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			paragraphs = append(paragraphs, line)
		}
	}
	return paragraphs
}
