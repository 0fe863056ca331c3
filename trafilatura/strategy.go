// Package trafilatura provides the semantic extraction strategy using
// go-trafilatura's similarity-based main-content detection.
package trafilatura

import (
	"bytes"
	"context"
	"strings"

	"github.com/fwojciec/newsint"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Strategy implements newsint.ExtractionStrategy at compile time.
var _ newsint.ExtractionStrategy = (*Strategy)(nil)

// Strategy extracts article fields by topic-driven main-content detection
// rather than site-specific selectors. It is independent of the schema's
// selector chains and serves as the second opinion next to the structured
// strategy.
type Strategy struct{}

// NewStrategy creates a new Strategy.
func NewStrategy() *Strategy {
	return &Strategy{}
}

// Name returns the strategy's identifier.
func (s *Strategy) Name() string {
	return newsint.StrategySemantic
}

// Extract runs trafilatura over the page HTML and maps its metadata and
// content onto article fields. Failures are isolated into the result
// variant.
func (s *Strategy) Extract(_ context.Context, _ *newsint.Schema, page *newsint.Page) newsint.ExtractionResult {
	if page == nil || page.HTML == "" {
		return newsint.ExtractionFailure(newsint.Errorf(newsint.EINVALID, "empty page HTML"))
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(page.HTML), opts)
	if err != nil {
		return newsint.ExtractionFailure(err)
	}

	fields := newsint.FieldValues{}
	if result.Metadata.Title != "" {
		fields[newsint.FieldTitle] = []string{result.Metadata.Title}
	}
	if result.Metadata.Author != "" {
		fields[newsint.FieldAuthor] = []string{result.Metadata.Author}
	}
	if !result.Metadata.Date.IsZero() {
		fields[newsint.FieldDate] = []string{result.Metadata.Date.Format("2006-01-02")}
	}
	if len(result.Metadata.Categories) > 0 {
		fields[newsint.FieldCategory] = []string{result.Metadata.Categories[0]}
	}

	if result.ContentText != "" {
		fields[newsint.FieldContent] = splitParagraphs(result.ContentText)
	} else if result.ContentNode != nil {
		rendered, err := renderNode(result.ContentNode)
		if err != nil {
			return newsint.ExtractionFailure(err)
		}
		fields[newsint.FieldContent] = []string{rendered}
	}

	return newsint.ExtractionSuccess(fields)
}

// splitParagraphs splits extracted text on newlines so the merge stage can
// rejoin paragraphs with its canonical blank-line separator.
func splitParagraphs(text string) []string {
	var paragraphs []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			paragraphs = append(paragraphs, line)
		}
	}
	return paragraphs
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
