// Package newsint provides an adaptive news article extraction pipeline.
// It builds per-site CSS selector schemas, runs multiple independent
// extraction strategies against rendered pages, merges their results with
// a fixed precedence order, and post-processes article text with keyword
// based tagging and a heuristic sentiment score.
//
// This package contains domain types, interfaces, and pure pipeline logic
// following Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., rod/,
// goquery/, trafilatura/, gemini/).
package newsint
