package newsint

import "strings"

// ValueType describes how a schema field's value is obtained.
type ValueType string

// Schema field value types.
const (
	ValueText      ValueType = "text"      // element text content
	ValueAttribute ValueType = "attribute" // named attribute value
)

// SchemaField is one extraction rule within a Schema.
type SchemaField struct {
	Name string

	// Selector is the field's fallback chain joined into a single
	// comma-separated CSS union. First structural match per element wins
	// at query time; that resolution is the query engine's job.
	Selector string

	Type ValueType

	// Attribute names the attribute to read when Type is ValueAttribute.
	Attribute string

	// Multiple marks fields that legitimately match many elements.
	// Matches are concatenated in document order.
	Multiple bool

	// TrimSpace strips surrounding whitespace from extracted values.
	TrimSpace bool
}

// Schema is a per-request extraction plan derived from a selector profile.
// Built once per address and discarded after the extraction pass.
type Schema struct {
	Name         string
	BaseSelector string
	Fields       []SchemaField
}

// Field returns the schema field with the given name, or nil.
func (s *Schema) Field(name string) *SchemaField {
	for i := range s.Fields {
		if s.Fields[i].Name == name {
			return &s.Fields[i]
		}
	}
	return nil
}

// BuildSchema turns a target address into an extraction schema by
// resolving the registry and appending the fixed metadata fields.
// Malformed addresses resolve to the wildcard profile; there is no
// failure mode.
func BuildSchema(rawURL string, registry *Registry) *Schema {
	domain := Domain(rawURL)
	selectors := registry.Resolve(domain)

	schema := &Schema{
		Name:         "News Article Extraction - " + domain,
		BaseSelector: "html",
	}

	for _, name := range ArticleFields() {
		chain := selectors[name]
		if len(chain) == 0 {
			continue
		}
		schema.Fields = append(schema.Fields, SchemaField{
			Name:      name,
			Selector:  strings.Join(chain, ", "),
			Type:      ValueText,
			Multiple:  name == FieldContent, // content may match many paragraphs
			TrimSpace: true,
		})
	}

	schema.Fields = append(schema.Fields,
		SchemaField{Name: "meta_description", Selector: `meta[name='description']`, Type: ValueAttribute, Attribute: "content"},
		SchemaField{Name: "meta_keywords", Selector: `meta[name='keywords']`, Type: ValueAttribute, Attribute: "content"},
		SchemaField{Name: "og_title", Selector: `meta[property='og:title']`, Type: ValueAttribute, Attribute: "content"},
		SchemaField{Name: "canonical_url", Selector: `link[rel='canonical']`, Type: ValueAttribute, Attribute: "href"},
	)

	return schema
}
