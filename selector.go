package newsint

import "strings"

// Semantic field names extracted from article pages.
const (
	FieldTitle    = "title"
	FieldContent  = "content"
	FieldAuthor   = "author"
	FieldDate     = "date"
	FieldCategory = "category"
)

// WildcardPattern is the profile pattern that matches any domain.
const WildcardPattern = "*"

// ArticleFields lists the semantic fields in schema order.
func ArticleFields() []string {
	return []string{FieldTitle, FieldContent, FieldAuthor, FieldDate, FieldCategory}
}

// FieldSelectors maps a semantic field name to its ordered fallback chain
// of CSS selectors. The first selector producing a match wins at query time.
type FieldSelectors map[string][]string

// Profile binds a site pattern to its field selectors. A profile matches a
// domain when its pattern is a substring of the domain identity.
type Profile struct {
	Pattern string
	Fields  FieldSelectors
}

// Registry resolves domain identities to selector profiles. Profiles are
// checked in registration order; the wildcard profile is the guaranteed
// result when nothing else matches. Immutable after construction.
type Registry struct {
	profiles []Profile
	wildcard Profile
}

// NewRegistry creates a Registry from site profiles. The profile whose
// pattern is WildcardPattern becomes the fallback; if none is supplied a
// registry with an empty wildcard is returned so Resolve never fails.
func NewRegistry(profiles ...Profile) *Registry {
	r := &Registry{wildcard: Profile{Pattern: WildcardPattern, Fields: FieldSelectors{}}}
	for _, p := range profiles {
		if p.Pattern == WildcardPattern {
			r.wildcard = p
			continue
		}
		r.profiles = append(r.profiles, p)
	}
	return r
}

// Resolve returns the field selectors for a domain identity. The first
// profile whose pattern is a substring of the domain wins; unknown domains
// resolve to the wildcard profile. There is no error case.
func (r *Registry) Resolve(domain string) FieldSelectors {
	for _, p := range r.profiles {
		if strings.Contains(domain, p.Pattern) {
			return p.Fields
		}
	}
	return r.wildcard.Fields
}

// Profiles returns the registered site patterns in priority order,
// excluding the wildcard.
func (r *Registry) Profiles() []string {
	patterns := make([]string, 0, len(r.profiles))
	for _, p := range r.profiles {
		patterns = append(patterns, p.Pattern)
	}
	return patterns
}


// DefaultProfiles returns the built-in selector profiles for well-known
// news sites plus the generic wildcard fallback.
func DefaultProfiles() []Profile {
	return []Profile{
		{
			Pattern: "bbc.com",
			Fields: FieldSelectors{
				FieldTitle:    {`h1[data-testid="headline"]`, `h1.story-headline`, `h1`, `.headline h1`},
				FieldContent:  {`[data-component="text-block"] p`, `.story-body p`, `.entry-content p`, `article p`},
				FieldAuthor:   {`[data-testid="byline"]`, `.byline`, `.author`, `.journalist`},
				FieldDate:     {`[data-testid="timestamp"]`, `time`, `.date`, `.published`},
				FieldCategory: {`.category`, `.section`, `.topic`},
			},
		},
		{
			Pattern: "cnn.com",
			Fields: FieldSelectors{
				FieldTitle:    {`h1.headline__text`, `h1[data-analytics="headline"]`, `h1`, `.headline h1`},
				FieldContent:  {`.zn-body__paragraph`, `.zn-body p`, `.article-content p`, `article p`},
				FieldAuthor:   {`.byline__name`, `.metadata__byline`, `.byline`, `.author`},
				FieldDate:     {`.timestamp`, `.update-time`, `time`, `.date`},
				FieldCategory: {`.metadata__section`, `.section`, `.category`},
			},
		},
		{
			Pattern: "reuters.com",
			Fields: FieldSelectors{
				FieldTitle:    {`[data-testid="Heading"]`, `h1[data-module="ArticleHeader"]`, `h1`, `.article-header h1`},
				FieldContent:  {`[data-testid="paragraph"]`, `.article-body p`, `.content p`, `article p`},
				FieldAuthor:   {`[data-testid="byline"]`, `.author`, `.byline`},
				FieldDate:     {`[data-testid="dateTime"]`, `time`, `.date`},
				FieldCategory: {`.kicker`, `.section`, `.category`},
			},
		},
		{
			Pattern: WildcardPattern,
			Fields: FieldSelectors{
				FieldTitle:    {`h1`, `.title h1`, `.headline h1`, `.entry-title`, `.article-title`, `[itemprop="headline"]`},
				FieldContent:  {`article p`, `.content p`, `.entry-content p`, `.article-content p`, `.post-content p`, `.story p`, `[itemprop="articleBody"] p`},
				FieldAuthor:   {`.author`, `.byline`, `.writer`, `[rel="author"]`, `[itemprop="author"]`, `.journalist`},
				FieldDate:     {`time`, `.date`, `.published`, `.publish-date`, `[datetime]`, `[itemprop="datePublished"]`},
				FieldCategory: {`.category`, `.section`, `.topic`, `.tag`},
			},
		},
	}
}
