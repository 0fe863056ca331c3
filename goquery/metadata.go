package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/newsint"
)

// Ensure MetadataParser implements newsint.MetadataParser at compile time.
var _ newsint.MetadataParser = (*MetadataParser)(nil)

// MetadataParser extracts page-level metadata from rendered HTML.
type MetadataParser struct{}

// NewMetadataParser creates a new MetadataParser.
func NewMetadataParser() *MetadataParser {
	return &MetadataParser{}
}

// Parse returns page metadata keyed by name: "title", "description",
// "keywords", "og:title", "canonical". Missing entries are absent from
// the map.
func (p *MetadataParser) Parse(html string) (map[string]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, newsint.Errorf(newsint.EINVALID, "failed to parse HTML: %v", err)
	}

	meta := make(map[string]string)

	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		meta["title"] = title
	}

	metaContent := func(selector string) string {
		content, _ := doc.Find(selector).First().Attr("content")
		return strings.TrimSpace(content)
	}

	if v := metaContent(`meta[name='description']`); v != "" {
		meta["description"] = v
	}
	if v := metaContent(`meta[name='keywords']`); v != "" {
		meta["keywords"] = v
	}
	if v := metaContent(`meta[property='og:title']`); v != "" {
		meta["og:title"] = v
	}
	if href, ok := doc.Find(`link[rel='canonical']`).First().Attr("href"); ok {
		if href = strings.TrimSpace(href); href != "" {
			meta["canonical"] = href
		}
	}

	return meta, nil
}
