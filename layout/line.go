package layout

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/outliner/model"
)

// LineConfig holds configuration for span-to-line aggregation
type LineConfig struct {
	// MergeTolerance is the vertical-midpoint distance tolerance for merging
	// spans into one line, as a fraction of the smaller span's height
	// (default: 0.5)
	MergeTolerance float64

	// SpaceGapRatio is the horizontal gap, as a fraction of font size, above
	// which a single space is inserted between merged spans (default: 0.2).
	// Feeds that report character-level spans need gap-aware joining or every
	// word would be space-separated into letters.
	SpaceGapRatio float64
}

// DefaultLineConfig returns sensible default configuration
func DefaultLineConfig() LineConfig {
	return LineConfig{
		MergeTolerance: 0.5,
		SpaceGapRatio:  0.2,
	}
}

// Aggregator groups the raw span stream of one page into visual lines.
// The feed's span order is not guaranteed to be top-to-bottom, so spans are
// sorted by position before grouping.
type Aggregator struct {
	config LineConfig
}

// NewAggregator creates an aggregator with default configuration
func NewAggregator() *Aggregator {
	return &Aggregator{config: DefaultLineConfig()}
}

// NewAggregatorWithConfig creates an aggregator with custom configuration
func NewAggregatorWithConfig(config LineConfig) *Aggregator {
	return &Aggregator{config: config}
}

// Aggregate merges the spans of a single page into ordered lines, top to
// bottom. Spans with missing or malformed font metadata are skipped. An empty
// page yields an empty line slice, not an error.
func (a *Aggregator) Aggregate(spans []model.Span) []model.Line {
	valid := make([]model.Span, 0, len(spans))
	for _, s := range spans {
		if s.Valid() {
			valid = append(valid, s)
		}
	}
	if len(valid) == 0 {
		return nil
	}

	sorted := make([]model.Span, len(valid))
	copy(sorted, valid)
	sort.SliceStable(sorted, func(i, j int) bool {
		tol := a.mergeTolerance(sorted[i], sorted[j])
		if math.Abs(sorted[i].MidY()-sorted[j].MidY()) > tol {
			return sorted[i].MidY() > sorted[j].MidY() // higher on the page first
		}
		return sorted[i].BBox.Left() < sorted[j].BBox.Left()
	})

	var groups [][]model.Span
	var current []model.Span
	for _, s := range sorted {
		if len(current) == 0 {
			current = append(current, s)
			continue
		}
		if math.Abs(s.MidY()-groupMidY(current)) <= a.mergeTolerance(s, current[0]) {
			current = append(current, s)
		} else {
			groups = append(groups, current)
			current = []model.Span{s}
		}
	}
	groups = append(groups, current)

	lines := make([]model.Line, 0, len(groups))
	for _, group := range groups {
		if line, ok := a.buildLine(group); ok {
			lines = append(lines, line)
		}
	}
	return lines
}

// mergeTolerance returns the Y distance within which two spans count as
// co-linear: a fraction of the smaller span's height.
func (a *Aggregator) mergeTolerance(s1, s2 model.Span) float64 {
	h := math.Min(s1.BBox.Height, s2.BBox.Height)
	if h <= 0 {
		h = math.Min(s1.FontSize, s2.FontSize)
	}
	return h * a.config.MergeTolerance
}

// groupMidY returns the average vertical midpoint of a span group
func groupMidY(spans []model.Span) float64 {
	total := 0.0
	for _, s := range spans {
		total += s.MidY()
	}
	return total / float64(len(spans))
}

// buildLine assembles one Line from a group of co-linear spans. Returns false
// if the cleaned text is empty.
func (a *Aggregator) buildLine(spans []model.Span) (model.Line, bool) {
	sort.SliceStable(spans, func(i, j int) bool {
		return spans[i].BBox.Left() < spans[j].BBox.Left()
	})

	maxSize := spans[0].FontSize
	for _, s := range spans[1:] {
		if s.FontSize > maxSize {
			maxSize = s.FontSize
		}
	}

	// A line is bold when any span at its representative size is bold.
	// Smaller decorated spans (superscripts, inline emphasis) don't count.
	bold := false
	for _, s := range spans {
		if s.Bold && s.FontSize >= maxSize-0.01 {
			bold = true
			break
		}
	}

	bbox := spans[0].BBox
	for _, s := range spans[1:] {
		bbox = bbox.Union(s.BBox)
	}

	text := CleanText(a.assembleText(spans))
	if text == "" {
		return model.Line{}, false
	}

	return model.Line{
		Text:     text,
		FontSize: maxSize,
		Bold:     bold,
		BBox:     bbox,
		Page:     spans[0].Page,
		Spans:    spans,
	}, true
}

// assembleText joins span text left to right, inserting a single space where
// the horizontal gap suggests a word boundary.
func (a *Aggregator) assembleText(spans []model.Span) string {
	var sb strings.Builder
	for i, s := range spans {
		if i > 0 {
			prev := spans[i-1]
			gap := s.BBox.Left() - prev.BBox.Right()
			if gap > s.FontSize*a.config.SpaceGapRatio {
				sb.WriteString(" ")
			}
		}
		sb.WriteString(s.Text)
	}
	return sb.String()
}

var (
	trailingJunk    = regexp.MustCompile(`[\s\-_]+$`)
	spaceBeforePunc = regexp.MustCompile(`(\w)\s+([.,;!?])`)
)

// CleanText normalizes extracted line text: NFC normalization, whitespace
// collapsing, trailing dash/underscore runs stripped, and stray spaces before
// punctuation removed. PDF text layers frequently carry decomposed accents
// and padded punctuation.
func CleanText(text string) string {
	text = norm.NFC.String(text)
	text = strings.Join(strings.Fields(text), " ")
	text = trailingJunk.ReplaceAllString(text, "")
	text = spaceBeforePunc.ReplaceAllString(text, "$1$2")
	return text
}
