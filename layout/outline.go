package layout

import (
	"sort"

	"github.com/tsawler/outliner/model"
)

// AssembleOutline orders classified heading records into the final outline:
// ascending by page, preserving within-page reading order. Classification
// never reorders lines within a page, so a stable sort on page number is
// sufficient. Always returns a non-nil slice so an empty outline serializes
// as [] rather than null.
func AssembleOutline(records []model.HeadingRecord) []model.HeadingRecord {
	outline := make([]model.HeadingRecord, len(records))
	copy(outline, records)
	sort.SliceStable(outline, func(i, j int) bool {
		return outline[i].Page < outline[j].Page
	})
	return outline
}
