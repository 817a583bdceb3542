// Package layout implements the heading-classification engine: span-to-line
// aggregation, per-document font statistics, title detection, and the ordered
// decision rules that classify lines as H1/H2/H3 headings.
//
// The engine is deliberately relative rather than absolute. Font sizes mean
// nothing on their own; a [StyleProfile] computed over the whole document
// establishes the body text size, and headings are judged against it. All
// numeric margins and tolerances live in [Config] so callers can tune the
// heuristics without touching the rule structure.
//
// None of the types in this package hold state across documents. Build one
// [StyleProfile] per document and discard it; parallel processing of separate
// documents needs no synchronization.
package layout
