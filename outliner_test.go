package outliner

import (
	"bytes"
	"encoding/json"
	"reflect"
	"testing"

	"github.com/tsawler/outliner/layout"
	"github.com/tsawler/outliner/model"
)

// testLine creates a line for pipeline tests. y positions lines vertically;
// larger y is closer to the top of the page.
func testLine(text string, fs float64, bold bool, y float64, page int) model.Line {
	return model.Line{
		Text:     text,
		FontSize: fs,
		Bold:     bold,
		BBox:     model.NewBBox(72, y, 200, fs),
		Page:     page,
	}
}

// samplePages builds a small two-page document: a large bold title and body
// text on page one, one subheading and more body on page two.
func samplePages() [][]model.Line {
	return [][]model.Line{
		{
			testLine("Overview", 24, true, 720, 1),
			testLine("This document describes the project in detail.", 12, false, 680, 1),
			testLine("It has more than one line of ordinary body text.", 12, false, 660, 1),
		},
		{
			testLine("Revision History", 15, true, 720, 2),
			testLine("Version one was released in the spring.", 12, false, 680, 2),
		},
	}
}

func TestExtractFromPages_TitleAndOutline(t *testing.T) {
	result := ExtractFromPages(samplePages(), layout.DefaultConfig())

	if result.Title != "Overview" {
		t.Errorf("Title = %q, want %q", result.Title, "Overview")
	}
	if len(result.Outline) != 1 {
		t.Fatalf("outline has %d records, want 1: %+v", len(result.Outline), result.Outline)
	}

	rec := result.Outline[0]
	// Two distinct sizes above body (24, 15): 24 maps to H1, 15 to H2.
	if rec.Level != model.LevelH2 {
		t.Errorf("Level = %s, want H2", rec.Level)
	}
	if rec.Text != "Revision History" {
		t.Errorf("Text = %q, want %q", rec.Text, "Revision History")
	}
	if rec.Page != 2 {
		t.Errorf("Page = %d, want 2", rec.Page)
	}
}

func TestExtractFromPages_TitleNeverInOutline(t *testing.T) {
	result := ExtractFromPages(samplePages(), layout.DefaultConfig())

	for _, rec := range result.Outline {
		if rec.Text == result.Title {
			t.Errorf("title %q appeared in the outline", result.Title)
		}
	}
}

func TestExtractFromPages_EmptyDocument(t *testing.T) {
	tests := []struct {
		name  string
		pages [][]model.Line
	}{
		{"no pages", nil},
		{"empty pages", [][]model.Line{nil, nil}},
	}

	for _, tt := range tests {
		result := ExtractFromPages(tt.pages, layout.DefaultConfig())
		if result.Title != "" {
			t.Errorf("%s: Title = %q, want empty", tt.name, result.Title)
		}
		if result.Outline == nil || len(result.Outline) != 0 {
			t.Errorf("%s: Outline = %v, want empty non-nil", tt.name, result.Outline)
		}

		data, err := json.Marshal(result)
		if err != nil {
			t.Fatalf("%s: marshal: %v", tt.name, err)
		}
		if string(data) != `{"title":"","outline":[]}` {
			t.Errorf("%s: JSON = %s", tt.name, data)
		}
	}
}

func TestExtractFromPages_Idempotent(t *testing.T) {
	cfg := layout.DefaultConfig()
	first := ExtractFromPages(samplePages(), cfg)
	second := ExtractFromPages(samplePages(), cfg)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("results differ between runs:\n%+v\n%+v", first, second)
	}

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	if !bytes.Equal(a, b) {
		t.Errorf("serialized results differ:\n%s\n%s", a, b)
	}
}

func TestExtractFromPages_OutlineOrdering(t *testing.T) {
	pages := [][]model.Line{
		{
			testLine("Title Of Document", 24, true, 720, 1),
			testLine("First Section", 18, true, 650, 1),
			testLine("body text body text body text body text", 12, false, 630, 1),
			testLine("Second Section", 18, true, 500, 1),
		},
		{
			testLine("Third Section", 18, true, 720, 2),
			testLine("more body text to anchor the profile here", 12, false, 680, 2),
		},
	}

	result := ExtractFromPages(pages, layout.DefaultConfig())
	want := []string{"First Section", "Second Section", "Third Section"}
	if len(result.Outline) != len(want) {
		t.Fatalf("outline = %+v, want %d records", result.Outline, len(want))
	}
	for i, text := range want {
		if result.Outline[i].Text != text {
			t.Errorf("outline[%d] = %q, want %q", i, result.Outline[i].Text, text)
		}
	}
	for i := 1; i < len(result.Outline); i++ {
		if result.Outline[i].Page < result.Outline[i-1].Page {
			t.Error("outline pages decrease")
		}
	}
}

func TestExtractFromPages_BoldTieScenario(t *testing.T) {
	// Two lines share a threshold size close to body; only the bold one
	// becomes a heading.
	pages := [][]model.Line{
		{
			testLine("Document Title Here", 24, true, 720, 1),
			testLine("Actual Heading", 15, true, 650, 1),
			testLine("large table cell text", 15, false, 600, 1),
			testLine("ordinary body text fills most of this page", 12, false, 550, 1),
			testLine("and continues for another line down here", 12, false, 530, 1),
		},
	}

	result := ExtractFromPages(pages, layout.DefaultConfig())
	if len(result.Outline) != 1 {
		t.Fatalf("outline = %+v, want exactly 1 record", result.Outline)
	}
	if result.Outline[0].Text != "Actual Heading" {
		t.Errorf("heading = %q, want %q", result.Outline[0].Text, "Actual Heading")
	}
}

func TestExtractorChaining(t *testing.T) {
	base := Open("document.pdf")
	tuned := base.WithTitleMargin(3).WithLargeSizeMargin(6)

	if base.config.Heading.MinTitleMargin == 3 {
		t.Error("chaining mutated the original extractor")
	}
	if tuned.config.Heading.MinTitleMargin != 3 {
		t.Errorf("MinTitleMargin = %v, want 3", tuned.config.Heading.MinTitleMargin)
	}
	if tuned.config.Heading.LargeSizeMargin != 6 {
		t.Errorf("LargeSizeMargin = %v, want 6", tuned.config.Heading.LargeSizeMargin)
	}
}

func TestExtractorNoFilename(t *testing.T) {
	_, _, err := (&Extractor{config: defaultExtractorConfig()}).Outline()
	if err == nil {
		t.Error("expected error for extractor without filename")
	}
}

func TestFormatWarnings(t *testing.T) {
	if got := FormatWarnings(nil); got != "" {
		t.Errorf("FormatWarnings(nil) = %q, want empty", got)
	}

	warnings := []Warning{
		{Page: 2, Message: "skipped 3 spans with malformed font metadata"},
		{Message: "document-level note"},
	}
	got := FormatWarnings(warnings)
	want := "page 2: skipped 3 spans with malformed font metadata; document-level note"
	if got != want {
		t.Errorf("FormatWarnings = %q, want %q", got, want)
	}
}
