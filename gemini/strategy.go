// Package gemini provides the model-assisted extraction strategy using
// Google Gemini.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/newsint"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Ensure Strategy implements newsint.ExtractionStrategy at compile time.
var _ newsint.ExtractionStrategy = (*Strategy)(nil)

// Strategy asks Gemini to read the rendered page and return article
// fields. Without a configured client it reports a deterministic
// EUNAVAILABLE failure instead of attempting a call; callers treat that as
// a soft status, not a retryable fault.
type Strategy struct {
	client *genai.Client
}

// NewStrategy creates a new Strategy. A nil client is valid and yields the
// unavailable status on every extraction.
func NewStrategy(client *genai.Client) *Strategy {
	return &Strategy{client: client}
}

// Name returns the strategy's identifier.
func (s *Strategy) Name() string {
	return newsint.StrategyAssisted
}

// Extract sends the page to the model and parses the JSON response into
// field values.
func (s *Strategy) Extract(ctx context.Context, _ *newsint.Schema, page *newsint.Page) newsint.ExtractionResult {
	if s.client == nil {
		return newsint.ExtractionFailure(newsint.Errorf(newsint.EUNAVAILABLE, "model credentials not configured"))
	}
	if page == nil || page.HTML == "" {
		return newsint.ExtractionFailure(newsint.Errorf(newsint.EINVALID, "empty page HTML"))
	}

	prompt := BuildUserPrompt(page)
	config := BuildConfig()

	result, err := s.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return newsint.ExtractionFailure(err)
	}
	if result == nil {
		return newsint.ExtractionFailure(newsint.Errorf(newsint.EINTERNAL, "gemini returned nil result"))
	}

	fields, err := parseResponse(result.Text())
	if err != nil {
		return newsint.ExtractionFailure(err)
	}
	return newsint.ExtractionSuccess(fields)
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.1)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a news article extraction assistant. Read the provided page and return a JSON object with the keys title, content, author, date, and category. Use empty strings for information that is not on the page. Return only JSON.",
			}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
	}
}

// BuildUserPrompt builds the user prompt containing the page under
// extraction.
func BuildUserPrompt(page *newsint.Page) string {
	var sb strings.Builder
	sb.WriteString("<page>\n")
	fmt.Fprintf(&sb, "<url>%s</url>\n", page.URL)
	fmt.Fprintf(&sb, "<html>%s</html>\n", page.HTML)
	sb.WriteString("</page>\n\n")
	sb.WriteString("Extract the article fields from this page.")
	return sb.String()
}

// parseResponse decodes the model's JSON reply into field values. Keys
// with empty values are dropped so the merge stage sees them as unset.
func parseResponse(text string) (newsint.FieldValues, error) {
	var raw map[string]string
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, newsint.Errorf(newsint.EINTERNAL, "unparseable model response: %v", err)
	}

	fields := newsint.FieldValues{}
	for _, name := range newsint.ArticleFields() {
		if v := strings.TrimSpace(raw[name]); v != "" {
			fields[name] = []string{v}
		}
	}
	return fields, nil
}
