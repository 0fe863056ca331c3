package newsint

import (
	"strings"
	"time"
)

// Merge combines per-strategy extraction results into one article record.
// Precedence is fixed per field: the structured strategy wins when it
// produced a value, regardless of length or apparent completeness. Content
// falls back to the page's markdown rendition, title to the page metadata
// title. Fields still unset stay empty; missing fields are never an error.
//
// The returned article carries raw, uncleaned text. Content cleaning,
// tagging, and sentiment happen in the Processor.
func Merge(rawURL string, page *Page, results map[string]ExtractionResult) *Article {
	article := &Article{
		URL:          rawURL,
		SourceDomain: Domain(rawURL),
		Tags:         []string{},
		Language:     "en",
		ExtractedAt:  time.Now().UTC(),
	}

	if fields, ok := results[StrategyStructured].Fields(); ok {
		article.Title = fields.First(FieldTitle)
		// Multi-valued content keeps document order, blank line between
		// paragraphs.
		article.Content = strings.Join(nonEmpty(fields[FieldContent]), "\n\n")
		article.Author = fields.First(FieldAuthor)
		article.PublishDate = fields.First(FieldDate)
		article.Category = fields.First(FieldCategory)
	}

	if article.Content == "" && page != nil {
		article.Content = page.Markdown
	}
	if article.Title == "" && page != nil {
		article.Title = page.Metadata["title"]
	}

	return article
}

func nonEmpty(vals []string) []string {
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
