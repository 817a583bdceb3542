package layout

import (
	"math"
	"sort"

	"github.com/tsawler/outliner/model"
)

// StyleProfile holds per-document font-size statistics: the body text size
// and the heading size thresholds derived from it. A profile is scoped to a
// single document and passed explicitly into title detection and
// classification; it is never shared across documents.
type StyleProfile struct {
	// BodySize is the font size judged to be ordinary paragraph text:
	// the most common size bucket, weighted by character count
	BodySize float64

	// Thresholds are the distinct font sizes larger than BodySize, sorted
	// descending. At most three entries; Thresholds[0] maps to H1,
	// Thresholds[1] to H2, Thresholds[2] to H3. A document with fewer
	// distinct larger sizes produces fewer heading levels.
	Thresholds []float64

	// SizeTolerance is the bucket width used when the profile was built,
	// reused for threshold matching
	SizeTolerance float64
}

// maxThresholds caps the size-to-level mapping at H1..H3
const maxThresholds = 3

// BuildProfile computes the style profile over all lines of one document.
// A document with zero lines yields an empty profile (no body size, no
// thresholds) rather than an error.
func BuildProfile(lines []model.Line, cfg HeadingConfig) *StyleProfile {
	profile := &StyleProfile{SizeTolerance: cfg.SizeTolerance}
	if profile.SizeTolerance <= 0 {
		profile.SizeTolerance = DefaultHeadingConfig().SizeTolerance
	}
	if len(lines) == 0 {
		return profile
	}

	// Weight each size bucket by character count: body text is not the
	// largest size, it is the size most of the document is written in.
	counts := make(map[int]int)
	for _, line := range lines {
		counts[profile.bucket(line.FontSize)] += line.CharCount()
	}

	buckets := make([]int, 0, len(counts))
	for b := range counts {
		buckets = append(buckets, b)
	}
	sort.Ints(buckets)

	// Ascending scan with a strict > comparison: ties go to the smaller
	// size, since body text is typically the smallest common size.
	best := buckets[0]
	for _, b := range buckets[1:] {
		if counts[b] > counts[best] {
			best = b
		}
	}
	profile.BodySize = profile.bucketSize(best)

	for i := len(buckets) - 1; i >= 0; i-- {
		size := profile.bucketSize(buckets[i])
		if size <= profile.BodySize {
			break
		}
		profile.Thresholds = append(profile.Thresholds, size)
		if len(profile.Thresholds) == maxThresholds {
			break
		}
	}

	return profile
}

// IsEmpty reports whether the profile was built over zero lines
func (p *StyleProfile) IsEmpty() bool {
	return p == nil || p.BodySize == 0
}

// LevelFor maps a font size onto a heading level by threshold match within
// the profile's tolerance. Returns LevelNone when no threshold matches.
func (p *StyleProfile) LevelFor(size float64) model.HeadingLevel {
	if p.IsEmpty() {
		return model.LevelNone
	}
	for i, th := range p.Thresholds {
		if math.Abs(size-th) <= p.SizeTolerance {
			return model.LevelH1 + model.HeadingLevel(i)
		}
	}
	return model.LevelNone
}

// bucket maps a font size onto an integer bucket of width SizeTolerance
func (p *StyleProfile) bucket(size float64) int {
	return int(math.Round(size / p.SizeTolerance))
}

// bucketSize converts a bucket back to its representative font size
func (p *StyleProfile) bucketSize(bucket int) float64 {
	return float64(bucket) * p.SizeTolerance
}
