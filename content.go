package newsint

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Vocabulary holds the fixed word lists and thresholds the content
// processor works from. The exact contents materially change tagging and
// sentiment output, so they are inputs rather than embedded constants.
type Vocabulary struct {
	// Positive and Negative are the sentiment term lists. A term counts
	// once per article when it appears as a case-insensitive substring.
	Positive []string
	Negative []string

	// TechTerms is the tag vocabulary matched against cleaned content.
	TechTerms []string

	// NoisePatterns are boilerplate lead-ins; a match deletes from the
	// match start to the end of the text.
	NoisePatterns []string

	// BoilerplatePhrases mark whole paragraphs as navigation or ads.
	BoilerplatePhrases []string

	// MinParagraphLen is the minimum paragraph length kept by CleanContent.
	MinParagraphLen int

	// MaxTags caps the tag set size.
	MaxTags int
}

// DefaultVocabulary returns the built-in word lists.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Positive: []string{
			"success", "growth", "innovation", "breakthrough", "advance", "improve",
			"excellent", "outstanding", "remarkable", "positive", "benefit", "gain",
			"achievement", "progress", "development", "enhancement", "optimization",
		},
		Negative: []string{
			"failure", "decline", "crisis", "problem", "issue", "concern",
			"worry", "threat", "risk", "danger", "loss", "decrease",
			"setback", "challenge", "difficulty", "obstacle", "controversy",
		},
		TechTerms: []string{
			"artificial intelligence", "ai", "machine learning", "blockchain",
			"cryptocurrency", "cybersecurity", "data privacy", "cloud computing",
			"software", "hardware", "startup", "innovation", "digital transformation",
			"automation", "robotics", "internet of things", "iot", "5g", "quantum computing",
		},
		NoisePatterns: []string{
			`Share this article.*`,
			`Follow us on.*`,
			`Subscribe to.*`,
			`Click here.*`,
			`Read more:.*`,
			`Related:.*`,
		},
		BoilerplatePhrases: []string{
			"share this", "follow us", "subscribe", "advertisement",
			"related articles", "more from", "trending now",
		},
		MinParagraphLen: 50,
		MaxTags:         10,
	}
}

// Processor cleans extracted text, derives tags, and scores sentiment.
// All operations are pure functions over their inputs; a Processor is safe
// for concurrent use.
type Processor struct {
	vocab Vocabulary
	noise []*regexp.Regexp
}

var (
	whitespaceRE = regexp.MustCompile(`\s+`)
	// Allow word characters, whitespace, and conservative punctuation.
	disallowedRE = regexp.MustCompile(`[^\p{L}\p{N}_\s.,!?;:\-()"']+`)
)

// NewProcessor creates a Processor over the given vocabulary.
func NewProcessor(vocab Vocabulary) *Processor {
	p := &Processor{vocab: vocab}
	for _, pattern := range vocab.NoisePatterns {
		p.noise = append(p.noise, regexp.MustCompile(`(?i)`+pattern))
	}
	return p
}

// CleanText normalizes text: whitespace runs collapse to a single space,
// characters outside the allow-list are stripped, and boilerplate lead-ins
// are removed through to the end of the text. Idempotent.
func (p *Processor) CleanText(text string) string {
	if text == "" {
		return ""
	}

	// Strip before collapsing: removing a character run between two
	// spaces must not leave a double space behind, or the operation would
	// no longer be idempotent.
	text = disallowedRE.ReplaceAllString(text, "")
	text = whitespaceRE.ReplaceAllString(text, " ")

	for _, re := range p.noise {
		if loc := re.FindStringIndex(text); loc != nil {
			text = text[:loc[0]]
		}
	}

	return strings.TrimSpace(text)
}

// CleanContent cleans article body text paragraph by paragraph: paragraphs
// shorter than the minimum length or matching a boilerplate phrase are
// dropped, survivors are cleaned and rejoined with blank-line separators.
// Fully-boilerplate or empty input yields an empty string, not an error.
func (p *Processor) CleanContent(content string) string {
	if content == "" {
		return ""
	}

	var kept []string
	for _, para := range strings.Split(content, "\n\n") {
		para = strings.TrimSpace(para)
		if len(para) < p.vocab.MinParagraphLen {
			continue
		}
		if p.isBoilerplate(para) {
			continue
		}
		kept = append(kept, p.CleanText(para))
	}

	return strings.Join(kept, "\n\n")
}

func (p *Processor) isBoilerplate(para string) bool {
	lower := strings.ToLower(para)
	for _, phrase := range p.vocab.BoilerplatePhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// ExtractTags derives tags from page metadata keywords and the tag
// vocabulary. Vocabulary terms that appear as case-insensitive substrings
// of the content are added in title case. Tags are deduplicated and capped
// at the vocabulary maximum.
//
// Order is deterministic first-seen: metadata keywords first, then
// vocabulary terms in list order. (The reference derived tags from an
// unordered set; stable ordering is a documented deviation.)
func (p *Processor) ExtractTags(content, metaKeywords string) []string {
	tags := []string{}
	seen := make(map[string]bool)

	add := func(tag string) {
		if tag == "" || seen[tag] {
			return
		}
		seen[tag] = true
		tags = append(tags, tag)
	}

	for _, kw := range strings.Split(metaKeywords, ",") {
		add(strings.TrimSpace(kw))
	}

	if content != "" {
		titler := cases.Title(language.English)
		lower := strings.ToLower(content)
		for _, term := range p.vocab.TechTerms {
			if strings.Contains(lower, term) {
				add(titler.String(term))
			}
		}
	}

	if len(tags) > p.vocab.MaxTags {
		tags = tags[:p.vocab.MaxTags]
	}
	return tags
}

// AnalyzeSentiment computes a keyword-density sentiment score in [-1, 1].
// Each positive or negative term counts once when present as a
// case-insensitive substring. The score is
//
//	(positive - negative) / max(words/100, 1)
//
// clamped to the closed range. The normalization is preserved exactly for
// compatibility with the reference behavior, including its floor of 1 for
// short texts. Empty content scores 0.
func (p *Processor) AnalyzeSentiment(content string) float64 {
	if content == "" {
		return 0.0
	}

	lower := strings.ToLower(content)
	var positive, negative int
	for _, term := range p.vocab.Positive {
		if strings.Contains(lower, term) {
			positive++
		}
	}
	for _, term := range p.vocab.Negative {
		if strings.Contains(lower, term) {
			negative++
		}
	}

	words := len(strings.Fields(content))
	if words == 0 {
		return 0.0
	}

	denom := float64(words) / 100
	if denom < 1 {
		denom = 1
	}

	sentiment := float64(positive-negative) / denom
	return clamp(sentiment, -1.0, 1.0)
}

// Process runs the full post-merge pipeline on a merged article: clean the
// body, clean the scalar fields, derive tags from content and metadata
// keywords, and score sentiment. The article is finalized in place.
func (p *Processor) Process(article *Article, metadata map[string]string) {
	article.Content = p.CleanContent(article.Content)
	article.Title = p.CleanText(article.Title)
	article.Author = p.CleanText(article.Author)
	article.PublishDate = p.CleanText(article.PublishDate)
	article.Category = p.CleanText(article.Category)
	article.Tags = p.ExtractTags(article.Content, metadata["keywords"])
	article.SentimentScore = p.AnalyzeSentiment(article.Content)
	article.ContentLength = len(article.Content)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
