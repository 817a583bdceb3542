package reader

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/tsawler/outliner/model"
)

// BoldFunc judges whether a font name denotes a bold weight
type BoldFunc func(fontName string) bool

// DefaultBold reports bold weight from common font-name markers
func DefaultBold(fontName string) bool {
	lower := strings.ToLower(fontName)
	for _, marker := range []string{"bold", "black", "heavy", "semibold", "demibold"} {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// Reader reads a PDF document and produces per-page span collections
type Reader struct {
	file *os.File
	pdf  *pdf.Reader
	bold BoldFunc
}

// Open opens a PDF file for span extraction. Corrupt, encrypted or otherwise
// unreadable documents fail here, as a whole-document error.
func Open(path string) (*Reader, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	return &Reader{file: f, pdf: r, bold: DefaultBold}, nil
}

// SetBoldFunc replaces the bold detector. A nil fn is ignored.
func (r *Reader) SetBoldFunc(fn BoldFunc) {
	if fn != nil {
		r.bold = fn
	}
}

// PageCount returns the number of pages in the document
func (r *Reader) PageCount() int {
	return r.pdf.NumPage()
}

// PageSpans extracts the spans of one page (1-indexed), in content-stream
// order. The order is not guaranteed to be top-to-bottom; the line aggregator
// sorts. An empty or null page yields an empty slice, not an error.
func (r *Reader) PageSpans(pageNum int) (spans []model.Span, err error) {
	// The underlying library panics on some malformed content streams;
	// recover and surface a per-page error instead.
	defer func() {
		if rec := recover(); rec != nil {
			spans = nil
			err = fmt.Errorf("page %d: malformed content stream: %v", pageNum, rec)
		}
	}()

	page := r.pdf.Page(pageNum)
	if page.V.IsNull() {
		return nil, nil
	}

	content := page.Content()
	spans = make([]model.Span, 0, len(content.Text))
	for _, t := range content.Text {
		spans = append(spans, spanFromText(t, pageNum, r.bold))
	}
	return spans, nil
}

// Close releases the underlying file. Safe to call multiple times.
func (r *Reader) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// spanFromText maps one positioned text run onto the feed's span type.
// The feed reports no glyph height, so the font size stands in for it.
func spanFromText(t pdf.Text, page int, bold BoldFunc) model.Span {
	return model.Span{
		Text:     t.S,
		FontName: t.Font,
		FontSize: t.FontSize,
		Bold:     bold(t.Font),
		BBox:     model.NewBBox(t.X, t.Y, t.W, t.FontSize),
		Page:     page,
	}
}
