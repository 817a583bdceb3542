package model

import "strings"

// Line represents a single visual line of text on a page, produced by merging
// co-linear spans. A Line has no identity beyond its page and position.
type Line struct {
	// Text is the assembled, cleaned text content of the line
	Text string

	// FontSize is the representative font size (maximum among merged spans)
	FontSize float64

	// Bold is true if any span at the line's representative size is bold
	Bold bool

	// BBox is the union of the merged spans' bounding boxes
	BBox BBox

	// Page is the 1-indexed page number the line appears on
	Page int

	// Spans are the merged spans, sorted left to right
	Spans []Span
}

// Top returns the top Y coordinate of the line. Larger values are closer to
// the top of the page in PDF coordinates.
func (l Line) Top() float64 {
	return l.BBox.Top()
}

// IsEmpty returns true if the line has no text content
func (l Line) IsEmpty() bool {
	return strings.TrimSpace(l.Text) == ""
}

// CharCount returns the number of runes in the line's text. The style
// profiler weights font sizes by character count so that a handful of large
// decorative spans cannot outvote body text.
func (l Line) CharCount() int {
	return len([]rune(l.Text))
}
