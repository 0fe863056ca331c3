package newsint

import (
	"context"
	"net/url"
	"time"
)

// Article is the canonical merged record for one scraped address.
// It is created once by the merge and content-processing pipeline and is
// not mutated afterwards.
type Article struct {
	URL            string    `json:"url"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	Author         string    `json:"author,omitempty"`
	PublishDate    string    `json:"publish_date,omitempty"`
	Category       string    `json:"category,omitempty"`
	Tags           []string  `json:"tags"`
	SourceDomain   string    `json:"source_domain"`
	ExtractedAt    time.Time `json:"extraction_timestamp"`
	ContentLength  int       `json:"content_length"`
	Language       string    `json:"language"`
	SentimentScore float64   `json:"sentiment_score"`
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	if a.URL == "" {
		return Errorf(EINVALID, "article URL required")
	}
	if a.SentimentScore < -1.0 || a.SentimentScore > 1.0 {
		return Errorf(EINVALID, "sentiment score out of range: %f", a.SentimentScore)
	}
	return nil
}

// Domain returns the authority component of a raw URL.
// Malformed URLs yield an empty domain, which resolves to the wildcard
// selector profile downstream.
func Domain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}

// ArticleWriter persists finished articles together with run statistics.
type ArticleWriter interface {
	WriteReport(ctx context.Context, report *Report) error
}
