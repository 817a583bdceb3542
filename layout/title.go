package layout

import "github.com/tsawler/outliner/model"

// DetectTitle selects the single best title candidate from the lines of page
// one: the largest font size, ties broken toward the top of the page. The
// candidate must exceed the body size by MinTitleMargin and be at least
// MinTitleLength runes long, or the title is the empty string.
//
// Returns the trimmed title and the index of the chosen line within pageOne,
// so the caller can exclude it from heading classification. A miss returns
// ("", -1) and is non-fatal; outline extraction proceeds without a title.
func DetectTitle(pageOne []model.Line, profile *StyleProfile, cfg HeadingConfig) (string, int) {
	if len(pageOne) == 0 || profile.IsEmpty() {
		return "", -1
	}

	best := 0
	for i, line := range pageOne[1:] {
		idx := i + 1
		switch {
		case line.FontSize > pageOne[best].FontSize:
			best = idx
		case line.FontSize == pageOne[best].FontSize && line.Top() > pageOne[best].Top():
			best = idx
		}
	}

	candidate := pageOne[best]
	if candidate.FontSize <= profile.BodySize+cfg.MinTitleMargin {
		return "", -1
	}

	text := CleanText(candidate.Text)
	if len([]rune(text)) < cfg.MinTitleLength {
		return "", -1
	}
	return text, best
}
