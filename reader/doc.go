// Package reader is the page feed adapter: it opens a PDF document and
// yields per-page span collections with font size, font name and position,
// ready for line aggregation.
//
// Boldness detection depends on font-naming conventions and is injected as a
// [BoldFunc], keeping the classification engine testable independent of any
// particular PDF library.
//
// An unreadable document fails at [Open]; a malformed page surfaces as a
// per-page error from [Reader.PageSpans] so callers can decide whether to
// skip the page or fail the document.
package reader
