package model

import (
	"encoding/json"
	"testing"
)

func TestHeadingLevelString(t *testing.T) {
	tests := []struct {
		level    HeadingLevel
		expected string
	}{
		{LevelNone, "none"},
		{LevelH1, "H1"},
		{LevelH2, "H2"},
		{LevelH3, "H3"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.expected {
			t.Errorf("HeadingLevel(%d).String() = %q, want %q", tt.level, got, tt.expected)
		}
	}
}

func TestHeadingLevelIsHeading(t *testing.T) {
	if LevelNone.IsHeading() {
		t.Error("LevelNone should not be a heading")
	}
	for _, l := range []HeadingLevel{LevelH1, LevelH2, LevelH3} {
		if !l.IsHeading() {
			t.Errorf("%s should be a heading", l)
		}
	}
}

func TestHeadingLevelJSONRoundTrip(t *testing.T) {
	for _, l := range []HeadingLevel{LevelH1, LevelH2, LevelH3} {
		data, err := json.Marshal(l)
		if err != nil {
			t.Fatalf("marshal %s: %v", l, err)
		}
		var got HeadingLevel
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("unmarshal %s: %v", data, err)
		}
		if got != l {
			t.Errorf("round trip = %s, want %s", got, l)
		}
	}
}

func TestHeadingLevelMarshalNone(t *testing.T) {
	if _, err := json.Marshal(LevelNone); err == nil {
		t.Error("expected error marshaling LevelNone")
	}
}

func TestExtractionResultJSONShape(t *testing.T) {
	res := NewExtractionResult()
	data, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"title":"","outline":[]}` {
		t.Errorf("empty result = %s, want {\"title\":\"\",\"outline\":[]}", data)
	}

	res.Title = "Overview"
	res.Outline = append(res.Outline, HeadingRecord{Level: LevelH2, Text: "Revision History", Page: 2})
	data, err = json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	expected := `{"title":"Overview","outline":[{"level":"H2","text":"Revision History","page":2}]}`
	if string(data) != expected {
		t.Errorf("result = %s, want %s", data, expected)
	}
}

func TestSpanValid(t *testing.T) {
	tests := []struct {
		name  string
		span  Span
		valid bool
	}{
		{"normal", Span{Text: "Hello", FontSize: 12}, true},
		{"zero size", Span{Text: "Hello", FontSize: 0}, false},
		{"negative size", Span{Text: "Hello", FontSize: -3}, false},
		{"blank text", Span{Text: "   ", FontSize: 12}, false},
		{"empty text", Span{Text: "", FontSize: 12}, false},
	}

	for _, tt := range tests {
		if got := tt.span.Valid(); got != tt.valid {
			t.Errorf("%s: Valid() = %v, want %v", tt.name, got, tt.valid)
		}
	}
}

func TestSpanMidY(t *testing.T) {
	s := Span{BBox: NewBBox(10, 100, 50, 12)}
	if got := s.MidY(); got != 106 {
		t.Errorf("MidY() = %v, want 106", got)
	}
}

func TestBBoxEdges(t *testing.T) {
	b := NewBBox(10, 20, 30, 40)
	if b.Left() != 10 || b.Right() != 40 || b.Bottom() != 20 || b.Top() != 60 {
		t.Errorf("edges = %v %v %v %v", b.Left(), b.Right(), b.Bottom(), b.Top())
	}
	c := b.Center()
	if c.X != 25 || c.Y != 40 {
		t.Errorf("Center() = %+v, want {25 40}", c)
	}
}

func TestBBoxUnion(t *testing.T) {
	a := NewBBox(0, 0, 10, 10)
	b := NewBBox(5, 5, 20, 10)
	u := a.Union(b)
	if u.X != 0 || u.Y != 0 || u.Width != 25 || u.Height != 15 {
		t.Errorf("Union = %+v", u)
	}
}

func TestLineHelpers(t *testing.T) {
	l := Line{Text: "Résumé", BBox: NewBBox(0, 700, 100, 14)}
	if l.IsEmpty() {
		t.Error("line with text reported empty")
	}
	if got := l.CharCount(); got != 6 {
		t.Errorf("CharCount() = %d, want 6", got)
	}
	if got := l.Top(); got != 714 {
		t.Errorf("Top() = %v, want 714", got)
	}

	blank := Line{Text: "   "}
	if !blank.IsEmpty() {
		t.Error("blank line not reported empty")
	}
}
