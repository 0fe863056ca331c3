// Package goquery provides CSS-selector based extraction using goquery.
// It implements the structured strategy that applies a per-site extraction
// schema to rendered HTML, plus page metadata parsing.
package goquery

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/newsint"
)

// Ensure Strategy implements newsint.ExtractionStrategy at compile time.
var _ newsint.ExtractionStrategy = (*Strategy)(nil)

// Strategy is the selector-based extraction strategy. It evaluates each
// schema field's comma-separated selector union against the page; document
// order decides which selector in the union wins per element, so the
// fallback-chain semantics are handled by the query engine.
type Strategy struct{}

// NewStrategy creates a new Strategy.
func NewStrategy() *Strategy {
	return &Strategy{}
}

// Name returns the strategy's identifier.
func (s *Strategy) Name() string {
	return newsint.StrategyStructured
}

// Extract applies the schema to the page HTML. Parse failures and empty
// pages surface as the failure variant, never as a panic or a pass-level
// error.
func (s *Strategy) Extract(_ context.Context, schema *newsint.Schema, page *newsint.Page) newsint.ExtractionResult {
	if page == nil || page.HTML == "" {
		return newsint.ExtractionFailure(newsint.Errorf(newsint.EINVALID, "empty page HTML"))
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page.HTML))
	if err != nil {
		return newsint.ExtractionFailure(newsint.Errorf(newsint.EINVALID, "failed to parse HTML: %v", err))
	}

	scope := doc.Selection
	if schema.BaseSelector != "" && schema.BaseSelector != "html" {
		scope = doc.Find(schema.BaseSelector)
	}

	fields := newsint.FieldValues{}
	for _, field := range schema.Fields {
		values := extractField(scope, field)
		if len(values) > 0 {
			fields[field.Name] = values
		}
	}

	return newsint.ExtractionSuccess(fields)
}

// extractField evaluates one schema field within the scope. Multi-valued
// fields collect every match in document order; single-valued fields take
// the first non-empty match.
func extractField(scope *goquery.Selection, field newsint.SchemaField) []string {
	var values []string

	scope.Find(field.Selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		var value string
		switch field.Type {
		case newsint.ValueAttribute:
			value, _ = sel.Attr(field.Attribute)
		default:
			value = sel.Text()
		}

		if field.TrimSpace {
			value = strings.TrimSpace(value)
		}
		if value == "" {
			return true // keep scanning for a non-empty match
		}

		values = append(values, value)
		return field.Multiple
	})

	return values
}
