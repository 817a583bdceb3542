package model

import (
	"encoding/json"
	"fmt"
)

// HeadingLevel represents the hierarchical level of a classified heading.
// LevelNone marks a line that is not a heading.
type HeadingLevel int

const (
	LevelNone HeadingLevel = iota
	LevelH1                // Major section
	LevelH2                // Subsection
	LevelH3                // Sub-subsection
)

// String returns a string representation of the heading level
func (l HeadingLevel) String() string {
	switch l {
	case LevelH1:
		return "H1"
	case LevelH2:
		return "H2"
	case LevelH3:
		return "H3"
	default:
		return "none"
	}
}

// IsHeading returns true for H1, H2 and H3
func (l HeadingLevel) IsHeading() bool {
	return l >= LevelH1 && l <= LevelH3
}

// MarshalJSON encodes the level as its string form ("H1", "H2", "H3")
func (l HeadingLevel) MarshalJSON() ([]byte, error) {
	if !l.IsHeading() {
		return nil, fmt.Errorf("heading level %d is not serializable", int(l))
	}
	return json.Marshal(l.String())
}

// UnmarshalJSON decodes a level from its string form
func (l *HeadingLevel) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "H1":
		*l = LevelH1
	case "H2":
		*l = LevelH2
	case "H3":
		*l = LevelH3
	default:
		return fmt.Errorf("unknown heading level %q", s)
	}
	return nil
}

// HeadingRecord is one classified heading. Records are immutable and ordered
// into the outline by document position.
type HeadingRecord struct {
	Level HeadingLevel `json:"level"`
	Text  string       `json:"text"`
	Page  int          `json:"page"`
}

// ExtractionResult is the sole output of the extraction pipeline for one
// document: a title (empty if undetected) and the ordered heading outline.
type ExtractionResult struct {
	Title   string          `json:"title"`
	Outline []HeadingRecord `json:"outline"`
}

// NewExtractionResult creates an empty result. The outline is initialized to
// an empty (non-nil) slice so it serializes as [] rather than null.
func NewExtractionResult() *ExtractionResult {
	return &ExtractionResult{
		Outline: make([]HeadingRecord, 0),
	}
}
