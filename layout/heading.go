package layout

import (
	"regexp"
	"strings"

	"github.com/tsawler/outliner/model"
)

// HeadingConfig holds the tunable margins for profiling, title detection and
// heading classification. The rule structure is fixed; the magnitudes are not.
type HeadingConfig struct {
	// SizeTolerance is the font size bucket width for profiling and
	// threshold matching (default: 0.5 points)
	SizeTolerance float64

	// MinTitleMargin is the minimum amount a title candidate must exceed the
	// body size by, in points (default: 2.0)
	MinTitleMargin float64

	// MinTitleLength is the minimum title length in runes (default: 5)
	MinTitleLength int

	// LargeSizeMargin is the size gap over body text that substitutes for
	// boldness in classification, in points (default: 4.0). Font size alone
	// is noisy; a line must be bold or clearly larger than body text.
	LargeSizeMargin float64

	// IgnorePatterns are matched (case-insensitively) against trimmed line
	// text; matching lines are never headings. Defaults cover punctuation-only
	// lines, bare page numbers, URLs, and form-label lines.
	IgnorePatterns []*regexp.Regexp
}

// DefaultHeadingConfig returns sensible default configuration
func DefaultHeadingConfig() HeadingConfig {
	return HeadingConfig{
		SizeTolerance:   0.5,
		MinTitleMargin:  2.0,
		MinTitleLength:  5,
		LargeSizeMargin: 4.0,
		IgnorePatterns:  DefaultIgnorePatterns(),
	}
}

// DefaultIgnorePatterns returns the default non-heading text patterns
func DefaultIgnorePatterns() []*regexp.Regexp {
	return []*regexp.Regexp{
		regexp.MustCompile(`^[\W_]+$`),                     // punctuation only
		regexp.MustCompile(`^[0-9]{1,3}$`),                 // bare page numbers
		regexp.MustCompile(`^(http|www|\.com)`),            // URLs
		regexp.MustCompile(`\b(rsvp|date|time|address):?`), // form labels
	}
}

// Classify decides whether one line is a heading, and at which level.
// It is a pure function over (line, profile, isTitle); rules are evaluated in
// strict order and the first match wins:
//
//  1. The detected title is never a heading.
//  2. Empty, punctuation-only, or ignored text is never a heading.
//  3. A line whose size matches a profile threshold is a heading at that
//     threshold's level, provided it is bold or exceeds the body size by
//     LargeSizeMargin.
//  4. Everything else is body text.
//
// Returning LevelNone is the expected majority outcome, not an error.
func Classify(line model.Line, profile *StyleProfile, isTitle bool, cfg HeadingConfig) model.HeadingLevel {
	if isTitle {
		return model.LevelNone
	}

	text := strings.TrimSpace(line.Text)
	if text == "" || ignored(text, cfg.IgnorePatterns) {
		return model.LevelNone
	}

	if profile.IsEmpty() {
		return model.LevelNone
	}

	level := profile.LevelFor(line.FontSize)
	if level == model.LevelNone {
		return model.LevelNone
	}
	if line.Bold || line.FontSize >= profile.BodySize+cfg.LargeSizeMargin {
		return level
	}
	return model.LevelNone
}

// ignored reports whether the text matches any ignore pattern
func ignored(text string, patterns []*regexp.Regexp) bool {
	lower := strings.ToLower(text)
	for _, p := range patterns {
		if p.MatchString(lower) {
			return true
		}
	}
	return false
}
