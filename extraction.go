package newsint

import "context"

// Strategy names. The returned mapping from a multi-strategy pass contains
// one entry per attempted strategy.
const (
	StrategyStructured = "structured" // selector-based extraction
	StrategySemantic   = "semantic"   // similarity/topic based extraction
	StrategyAssisted   = "assisted"   // external-model based extraction
)

// FieldValues maps a field name to its raw extracted values in document
// order. Single-valued fields carry exactly one entry.
type FieldValues map[string][]string

// First returns the first value for a field, or the empty string.
func (v FieldValues) First(name string) string {
	if vals := v[name]; len(vals) > 0 {
		return vals[0]
	}
	return ""
}

// ExtractionResult is the tagged per-strategy output: either field values
// or a failure, never both. Collaborator result shapes are normalized into
// this variant at the ingress boundary.
type ExtractionResult struct {
	fields FieldValues
	err    error
}

// ExtractionSuccess wraps extracted field values.
func ExtractionSuccess(fields FieldValues) ExtractionResult {
	if fields == nil {
		fields = FieldValues{}
	}
	return ExtractionResult{fields: fields}
}

// ExtractionFailure wraps a per-strategy failure. A failure in one
// strategy never aborts the others.
func ExtractionFailure(err error) ExtractionResult {
	if err == nil {
		err = Errorf(EINTERNAL, "extraction failed")
	}
	return ExtractionResult{err: err}
}

// Fields returns the extracted values and true on success.
func (r ExtractionResult) Fields() (FieldValues, bool) {
	if r.err != nil {
		return nil, false
	}
	return r.fields, true
}

// Failed reports whether the strategy failed.
func (r ExtractionResult) Failed() bool {
	return r.err != nil
}

// Err returns the failure, or nil on success. An EUNAVAILABLE code marks a
// soft failure (e.g. missing model credentials), not a retryable fault.
func (r ExtractionResult) Err() error {
	return r.err
}

// ExtractionStrategy is one independent extraction technique applied to a
// fetched page. Implementations must be safe for concurrent use; the
// multi-strategy pass may run them in parallel.
type ExtractionStrategy interface {
	// Name identifies the strategy in the combined result mapping.
	Name() string

	// Extract runs the strategy against the page. Failures are reported
	// through the result variant, not the error return of the pass.
	Extract(ctx context.Context, schema *Schema, page *Page) ExtractionResult
}
