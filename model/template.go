package model

import (
	"fmt"
	"strings"
)

// PaperSize is a named page size in PostScript points.
type PaperSize struct {
	Name     string
	WidthPt  float64
	HeightPt float64
}

var (
	// A4 is 210 x 297 mm.
	A4 = PaperSize{Name: "A4", WidthPt: 595.28, HeightPt: 841.89}

	// Letter is 8.5 x 11 in.
	Letter = PaperSize{Name: "Letter", WidthPt: 612, HeightPt: 792}
)

// PaperSizeByName looks up a paper size by its case-insensitive name.
// The second return value reports whether the name was recognized.
func PaperSizeByName(name string) (PaperSize, bool) {
	switch {
	case strings.EqualFold(name, "A4"):
		return A4, true
	case strings.EqualFold(name, "Letter"):
		return Letter, true
	}
	return PaperSize{}, false
}

const (
	// DefaultMarginPt is the outer page margin, 1 cm in points.
	DefaultMarginPt = 28.35

	// DefaultGutterPt is the gap between columns, 0.5 cm in points.
	DefaultGutterPt = 14.17
)

// PageTemplate fixes the geometry every page of a document shares: paper
// size, outer margins, column count, and the gutter between columns. All
// pages produced from one template carry the same frames.
type PageTemplate struct {
	// Paper is the page size. Default: A4.
	Paper PaperSize

	// MarginPt is the uniform outer margin in points. Default: 28.35 (1 cm).
	MarginPt float64

	// GutterPt is the horizontal gap between columns in points.
	// Default: 14.17 (0.5 cm).
	GutterPt float64

	// Columns is the number of column frames per page, 2 or 3. Default: 2.
	Columns int
}

// DefaultTemplate returns a two-column A4 template with 1 cm margins and
// a 0.5 cm gutter.
func DefaultTemplate() PageTemplate {
	return PageTemplate{
		Paper:    A4,
		MarginPt: DefaultMarginPt,
		GutterPt: DefaultGutterPt,
		Columns:  2,
	}
}

// ColumnWidth returns the width of one column frame.
func (t PageTemplate) ColumnWidth() float64 {
	if t.Columns <= 0 {
		return 0
	}
	usable := t.Paper.WidthPt - 2*t.MarginPt - float64(t.Columns-1)*t.GutterPt
	return usable / float64(t.Columns)
}

// FrameHeight returns the height of one column frame.
func (t PageTemplate) FrameHeight() float64 {
	return t.Paper.HeightPt - 2*t.MarginPt
}

// Frames derives the column rectangles for one page, ordered left to
// right. Cursors start at the top edge of each frame.
func (t PageTemplate) Frames() []Frame {
	w := t.ColumnWidth()
	h := t.FrameHeight()
	frames := make([]Frame, t.Columns)
	for i := 0; i < t.Columns; i++ {
		x := t.MarginPt + float64(i)*(w+t.GutterPt)
		frames[i] = Frame{
			Index:   i,
			BBox:    NewBBox(x, t.MarginPt, w, h),
			CursorY: t.MarginPt,
		}
	}
	return frames
}

// Validate checks that the template describes a usable page: a supported
// column count, non-negative spacing, and columns that fit inside the
// margins with positive width and height.
func (t PageTemplate) Validate() error {
	if t.Columns < 2 || t.Columns > 3 {
		return fmt.Errorf("page template: column count must be 2 or 3, got %d", t.Columns)
	}
	if t.Paper.WidthPt <= 0 || t.Paper.HeightPt <= 0 {
		return fmt.Errorf("page template: invalid paper size %.2fx%.2f", t.Paper.WidthPt, t.Paper.HeightPt)
	}
	if t.MarginPt < 0 {
		return fmt.Errorf("page template: negative margin %.2f", t.MarginPt)
	}
	if t.GutterPt < 0 {
		return fmt.Errorf("page template: negative gutter %.2f", t.GutterPt)
	}
	if t.ColumnWidth() <= 0 {
		return fmt.Errorf("page template: margins and gutter leave no column width on %s", t.Paper.Name)
	}
	if t.FrameHeight() <= 0 {
		return fmt.Errorf("page template: margins leave no column height on %s", t.Paper.Name)
	}

	// Total column span must stay inside the printable area.
	span := float64(t.Columns)*t.ColumnWidth() + float64(t.Columns-1)*t.GutterPt
	if span > t.Paper.WidthPt-2*t.MarginPt+0.01 {
		return fmt.Errorf("page template: columns span %.2f exceeds printable width %.2f", span, t.Paper.WidthPt-2*t.MarginPt)
	}
	return nil
}
