// Package outliner extracts structural metadata from PDF documents: a
// document title and a hierarchical outline of H1/H2/H3 headings, judged
// relative to the document's own typography rather than absolute font sizes.
//
// Basic usage:
//
//	result, warnings, err := outliner.Open("document.pdf").Outline()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", outliner.FormatWarnings(warnings))
//	}
//	fmt.Println(result.Title, len(result.Outline))
//
// With tuned heuristics:
//
//	cfg := layout.DefaultConfig()
//	cfg.Heading.MinTitleMargin = 3
//	result, _, err := outliner.Open("report.pdf").WithConfig(cfg).Outline()
//
// For callers that already hold per-page line collections (for example a
// different page feed), [ExtractFromPages] runs the classification engine
// directly and performs no I/O.
package outliner

import (
	"fmt"
	"strings"
)

// Open opens a PDF file and returns an Extractor for fluent configuration.
// The returned Extractor must be closed when done, either explicitly via
// Close() or implicitly when calling a terminal operation like Outline().
//
// Example:
//
//	result, warnings, err := outliner.Open("document.pdf").Outline()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		config:   defaultExtractorConfig(),
	}
}

// Warning describes a non-fatal issue encountered while processing a
// document: extraction succeeded but results may be imperfect.
type Warning struct {
	// Page is the 1-indexed page the warning concerns, or 0 for the document
	Page int

	// Message describes the issue
	Message string
}

// String returns a human-readable form of the warning
func (w Warning) String() string {
	if w.Page > 0 {
		return fmt.Sprintf("page %d: %s", w.Page, w.Message)
	}
	return w.Message
}

// FormatWarnings joins warnings into a single human-readable string
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustOutline wraps a terminal operation returning (T, []Warning, error),
// discards warnings and panics on error.
//
// Example:
//
//	result := outliner.MustOutline(outliner.Open("document.pdf").Outline())
func MustOutline[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
