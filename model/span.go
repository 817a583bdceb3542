package model

import "strings"

// Span is the atomic unit reported by a page feed: one run of text drawn
// with a single font face and size. Spans are immutable once produced.
type Span struct {
	// Text is the raw text content of the span
	Text string

	// FontName is the PostScript name of the font, as reported by the feed
	FontName string

	// FontSize is the rendered font size in points
	FontSize float64

	// Bold indicates a bold font weight, as judged by the feed's bold detector
	Bold bool

	// BBox is the span's bounding box in page coordinates
	BBox BBox

	// Page is the 1-indexed page number the span appears on
	Page int
}

// Valid reports whether the span carries usable font metadata and content.
// Spans with zero or negative font size are excluded from aggregation rather
// than propagating an error.
func (s Span) Valid() bool {
	return s.FontSize > 0 && strings.TrimSpace(s.Text) != ""
}

// MidY returns the vertical midpoint of the span, used for co-linearity checks.
func (s Span) MidY() float64 {
	return s.BBox.Center().Y
}
