package model

import "strings"

// Frame is one column slot on a page. CursorY is the top of the next
// placement in page coordinates; the flow engine only ever moves it down.
type Frame struct {
	Index   int
	BBox    BBox
	CursorY float64
	Used    bool
}

// RemainingHeight returns the vertical space left below the cursor.
func (f Frame) RemainingHeight() float64 {
	return f.BBox.Bottom() - f.CursorY
}

// Page is one sheet with its column frames.
type Page struct {
	Number int // 1-indexed
	Frames []Frame
}

// PlacedRun is one block fixed at its final position: the page and frame
// it landed in, the wrapped lines, and the style it will be drawn with.
// Runs are appended in placement order and the serializer replays them
// without re-measuring.
type PlacedRun struct {
	PageNumber int // 1-indexed
	FrameIndex int

	// X, Y locate the top-left corner of the block's text area, after
	// indents and space-before have been applied.
	X, Y float64

	// Width is the wrap width the lines were measured at.
	Width float64

	Role  Role
	Style StyleSpec

	// Text is the original block text with any classification marker
	// already stripped.
	Text string

	// Lines is the greedy wrap of Text at Width, in reading order.
	Lines []string

	// Truncated reports that trailing lines were cut because the block
	// could not fit even an empty frame.
	Truncated bool
}

// PagedDocument is the fully placed result: the template pages were
// flowed against, the pages themselves, and the ordered run list.
type PagedDocument struct {
	Template PageTemplate
	Pages    []*Page
	Runs     []PlacedRun
}

// NewPagedDocument creates an empty document for the given template.
// Pages are added by the flow engine as content overflows.
func NewPagedDocument(t PageTemplate) *PagedDocument {
	return &PagedDocument{
		Template: t,
		Pages:    make([]*Page, 0, 1),
	}
}

// AddPage appends a fresh page with the template's frames and returns it.
func (d *PagedDocument) AddPage() *Page {
	page := &Page{
		Number: len(d.Pages) + 1,
		Frames: d.Template.Frames(),
	}
	d.Pages = append(d.Pages, page)
	return page
}

// GetPage returns a page by number (1-indexed), or nil.
func (d *PagedDocument) GetPage(number int) *Page {
	if number < 1 || number > len(d.Pages) {
		return nil
	}
	return d.Pages[number-1]
}

// PageCount returns the total number of pages.
func (d *PagedDocument) PageCount() int {
	return len(d.Pages)
}

// RunsOnPage returns the placed runs of one page, in placement order.
func (d *PagedDocument) RunsOnPage(number int) []PlacedRun {
	var runs []PlacedRun
	for _, r := range d.Runs {
		if r.PageNumber == number {
			runs = append(runs, r)
		}
	}
	return runs
}

// Text returns the wrapped lines of every run concatenated in placement
// order, one line per row. Useful for tests and debugging.
func (d *PagedDocument) Text() string {
	var sb strings.Builder
	for _, r := range d.Runs {
		for _, line := range r.Lines {
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
