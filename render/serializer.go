package render

import (
	"fmt"

	"github.com/morningpress/gazette/model"
)

// Serialize replays a placed document onto a backend in placement order.
// The walk is mechanical: a page is added at every page boundary and each
// wrapped line becomes exactly one draw call at its computed position. No
// layout decision is made here.
func Serialize(doc *model.PagedDocument, b Backend) error {
	if doc == nil {
		return fmt.Errorf("render: nil document")
	}
	if b == nil {
		return fmt.Errorf("render: nil backend")
	}

	page := 0
	for _, run := range doc.Runs {
		for page < run.PageNumber {
			b.AddPage()
			page++
		}

		for i, line := range run.Lines {
			x := run.X
			width := run.Width
			if i == 0 && indentsFirstLine(run.Style) {
				x += run.Style.FirstLineIndentPt
				width -= run.Style.FirstLineIndentPt
			}
			y := run.Y + float64(i)*run.Style.LineHeightPt
			lastLine := i == len(run.Lines)-1

			b.DrawLine(x, y, width, line, run.Style, lastLine)
		}
	}

	// Pages the flow opened but never filled still exist in the output.
	for page < doc.PageCount() {
		b.AddPage()
		page++
	}
	return nil
}

// indentsFirstLine reports whether the style's first-line indent applies.
// Centered and right-set text ignores it; the indent is a left-edge
// shift for left-aligned and justified paragraphs.
func indentsFirstLine(s model.StyleSpec) bool {
	if s.FirstLineIndentPt == 0 {
		return false
	}
	return s.Alignment == model.AlignLeft || s.Alignment == model.AlignJustify
}
