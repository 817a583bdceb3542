package outliner

import (
	"encoding/json"
	"fmt"

	"github.com/tsawler/outliner/layout"
	"github.com/tsawler/outliner/model"
	"github.com/tsawler/outliner/reader"
)

// Extractor provides a fluent interface for extracting a title and heading
// outline from a PDF document. Each configuration method returns a new
// Extractor instance, making it safe for concurrent use and allowing method
// chaining. All state is scoped to one document; separate documents may be
// processed in parallel with separate Extractors.
type Extractor struct {
	// Source
	filename string

	// Reader lifecycle
	r            *reader.Reader
	ownsReader   bool // true if we opened the reader and should close it
	readerOpened bool

	// Configuration
	config   layout.Config
	boldFunc reader.BoldFunc

	// Accumulated error (fail-fast)
	err error
}

// defaultExtractorConfig returns the default heuristics
func defaultExtractorConfig() layout.Config {
	return layout.DefaultConfig()
}

// FromReader creates an Extractor from an already-opened reader.Reader.
// The caller remains responsible for closing the reader.
func FromReader(r *reader.Reader) *Extractor {
	return &Extractor{
		r:            r,
		readerOpened: true,
		config:       defaultExtractorConfig(),
	}
}

// clone creates a copy of the Extractor so each chain method returns a new
// instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename:     e.filename,
		r:            e.r,
		ownsReader:   e.ownsReader,
		readerOpened: e.readerOpened,
		config:       e.config,
		boldFunc:     e.boldFunc,
		err:          e.err,
	}
}

// WithConfig replaces the full heuristics configuration.
//
// Example:
//
//	cfg := layout.DefaultConfig()
//	cfg.Heading.LargeSizeMargin = 6
//	result, _, err := outliner.Open("doc.pdf").WithConfig(cfg).Outline()
func (e *Extractor) WithConfig(cfg layout.Config) *Extractor {
	newExt := e.clone()
	newExt.config = cfg
	return newExt
}

// WithTitleMargin sets the minimum amount, in points, by which a title
// candidate must exceed the body font size.
func (e *Extractor) WithTitleMargin(points float64) *Extractor {
	newExt := e.clone()
	newExt.config.Heading.MinTitleMargin = points
	return newExt
}

// WithLargeSizeMargin sets the size gap over body text, in points, that
// substitutes for boldness when classifying headings.
func (e *Extractor) WithLargeSizeMargin(points float64) *Extractor {
	newExt := e.clone()
	newExt.config.Heading.LargeSizeMargin = points
	return newExt
}

// WithBoldFunc injects a custom bold detector for the page feed. Useful for
// documents whose fonts don't follow common naming conventions.
func (e *Extractor) WithBoldFunc(fn reader.BoldFunc) *Extractor {
	newExt := e.clone()
	newExt.boldFunc = fn
	return newExt
}

// ensureReader opens the reader if not already open
func (e *Extractor) ensureReader() error {
	if e.readerOpened {
		return nil
	}
	if e.filename == "" {
		return fmt.Errorf("no filename specified")
	}
	r, err := reader.Open(e.filename)
	if err != nil {
		return fmt.Errorf("failed to open PDF: %w", err)
	}
	e.r = r
	e.ownsReader = true
	e.readerOpened = true
	return nil
}

// Close releases resources associated with the Extractor.
// It is safe to call Close multiple times.
func (e *Extractor) Close() error {
	if e.ownsReader && e.r != nil {
		err := e.r.Close()
		e.r = nil
		e.ownsReader = false
		return err
	}
	return nil
}

// Outline extracts the document title and heading outline. This is a
// terminal operation that closes the reader if the Extractor owns it.
//
// Returns the extraction result, any warnings encountered during processing,
// and an error if the document could not be read at all. A missing title or
// an empty outline is a value, not an error.
func (e *Extractor) Outline() (*model.ExtractionResult, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}
	if err := e.ensureReader(); err != nil {
		return nil, nil, err
	}
	if e.ownsReader {
		defer e.Close()
	}
	if e.boldFunc != nil {
		e.r.SetBoldFunc(e.boldFunc)
	}

	agg := layout.NewAggregatorWithConfig(e.config.Line)
	pageCount := e.r.PageCount()

	var warnings []Warning
	pages := make([][]model.Line, 0, pageCount)
	readable := 0

	for pageNum := 1; pageNum <= pageCount; pageNum++ {
		spans, err := e.r.PageSpans(pageNum)
		if err != nil {
			warnings = append(warnings, Warning{Page: pageNum, Message: err.Error()})
			pages = append(pages, nil)
			continue
		}
		readable++

		dropped := 0
		for _, s := range spans {
			if !s.Valid() {
				dropped++
			}
		}
		if dropped > 0 {
			warnings = append(warnings, Warning{
				Page:    pageNum,
				Message: fmt.Sprintf("skipped %d spans with malformed font metadata", dropped),
			})
		}

		pages = append(pages, agg.Aggregate(spans))
	}

	if pageCount > 0 && readable == 0 {
		return nil, warnings, fmt.Errorf("no readable pages in document")
	}

	return ExtractFromPages(pages, e.config), warnings, nil
}

// JSON extracts the outline and serializes it to indented JSON with exactly
// two top-level keys, "title" and "outline". Terminal operation.
func (e *Extractor) JSON() ([]byte, []Warning, error) {
	result, warnings, err := e.Outline()
	if err != nil {
		return nil, warnings, err
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, warnings, fmt.Errorf("marshal result: %w", err)
	}
	return data, warnings, nil
}

// ExtractFromPages runs the classification engine over pre-aggregated
// per-page line collections; pages[0] holds page 1. It performs no I/O and
// holds no state between calls, so it is safe to call concurrently for
// separate documents. A document with zero pages or zero lines yields an
// empty title and an empty outline.
func ExtractFromPages(pages [][]model.Line, cfg layout.Config) *model.ExtractionResult {
	result := model.NewExtractionResult()

	var all []model.Line
	for _, lines := range pages {
		all = append(all, lines...)
	}
	if len(all) == 0 {
		return result
	}

	profile := layout.BuildProfile(all, cfg.Heading)

	titleIdx := -1
	if len(pages) > 0 {
		result.Title, titleIdx = layout.DetectTitle(pages[0], profile, cfg.Heading)
	}

	var records []model.HeadingRecord
	for i, lines := range pages {
		pageNum := i + 1
		for j, line := range lines {
			isTitle := i == 0 && j == titleIdx
			level := layout.Classify(line, profile, isTitle, cfg.Heading)
			if level == model.LevelNone {
				continue
			}
			page := line.Page
			if page <= 0 {
				page = pageNum
			}
			records = append(records, model.HeadingRecord{
				Level: level,
				Text:  layout.CleanText(line.Text),
				Page:  page,
			})
		}
	}

	result.Outline = layout.AssembleOutline(records)
	return result
}
