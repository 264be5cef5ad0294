package layout

import (
	"github.com/morningpress/gazette/font"
	"github.com/morningpress/gazette/model"
)

// Measurer supplies line widths in points for a given style. The font
// package's Library is the usual implementation.
type Measurer interface {
	LineWidth(text string, style model.StyleSpec) (float64, error)
}

// Flow places styled blocks into column frames, advancing strictly
// forward: down the current frame, across the page's columns, then onto
// a fresh page cut from the document's template. A cursor never moves up
// and an earlier frame is never revisited.
type Flow struct {
	doc      *model.PagedDocument
	measurer Measurer
	warnings []model.Warning

	page     *model.Page
	frameIdx int
}

// NewFlow creates a flow engine writing into doc. The first placement
// opens page one.
func NewFlow(doc *model.PagedDocument, m Measurer) *Flow {
	return &Flow{doc: doc, measurer: m}
}

// Warnings returns the non-fatal problems recorded so far.
func (f *Flow) Warnings() []model.Warning {
	return f.warnings
}

// Place flows one block: wrap to the current column width, charge the
// block's full height including its surrounding space, and advance the
// cursor. A block that does not fit moves to the next column or page.
// A block taller than an empty frame runs through the remaining columns
// onto a fresh page's first frame and is truncated there with a warning.
// Blank roles are ignored.
func (f *Flow) Place(text string, role model.Role, style model.StyleSpec) {
	if !role.Placeable() {
		return
	}

	f.ensurePage()
	frame := f.currentFrame()

	width := frame.BBox.Width - style.LeftIndentPt - style.RightIndentPt
	if width <= 0 {
		width = frame.BBox.Width
	}

	lines, estimated := f.wrapLines(text, style, width)
	if estimated {
		f.warn(model.WarnMeasurementFallback,
			"no metrics for %q at %.1fpt, widths estimated", style.FontName(), style.SizePt)
	}
	if len(lines) == 0 {
		return
	}

	height := blockHeight(style, len(lines))
	if height <= frame.RemainingHeight() {
		f.placeRun(frame, text, role, style, width, lines, false, height)
		return
	}

	// No frame anywhere can hold a block whose single line overflows an
	// empty frame; skip it rather than consume pages it cannot use.
	if blockHeight(style, 1) > f.doc.Template.FrameHeight() {
		f.warn(model.WarnOversizeBlock,
			"block %q does not fit an empty frame, skipped", snippet(text))
		return
	}

	// Advance through the remaining columns. A block taller than an
	// empty frame keeps going onto a fresh page's first frame and is cut
	// there to what one empty frame allows.
	truncated := false
	for {
		prev := f.page
		frame = f.advance()
		if height <= frame.RemainingHeight() {
			break
		}
		if f.page != prev {
			avail := frame.RemainingHeight() - style.SpaceBeforePt - style.SpaceAfterPt
			keep := int(avail / style.LineHeightPt)
			if keep < len(lines) {
				f.warn(model.WarnOversizeBlock,
					"block %q truncated from %d to %d lines", snippet(text), len(lines), keep)
				lines = lines[:keep]
				truncated = true
				height = blockHeight(style, len(lines))
			}
			break
		}
	}

	f.placeRun(frame, text, role, style, width, lines, truncated, height)
}

// placeRun records the run and moves the cursor past it.
func (f *Flow) placeRun(frame *model.Frame, text string, role model.Role, style model.StyleSpec, width float64, lines []string, truncated bool, height float64) {
	run := model.PlacedRun{
		PageNumber: f.page.Number,
		FrameIndex: frame.Index,
		X:          frame.BBox.X + style.LeftIndentPt,
		Y:          frame.CursorY + style.SpaceBeforePt,
		Width:      width,
		Role:       role,
		Style:      style,
		Text:       text,
		Lines:      lines,
		Truncated:  truncated,
	}
	f.doc.Runs = append(f.doc.Runs, run)

	frame.CursorY += height
	frame.Used = true
}

// wrapLines wraps text at the given width, shrinking the first line by
// the style's first-line indent. When the measurer fails the whole block
// switches to estimated widths; the bool reports that switch.
func (f *Flow) wrapLines(text string, style model.StyleSpec, width float64) ([]string, bool) {
	estimated := false
	widthOf := func(s string) float64 {
		if !estimated {
			if w, err := f.measurer.LineWidth(s, style); err == nil {
				return w
			}
			estimated = true
		}
		return font.EstimateLineWidth(s, style.SizePt)
	}
	budget := func(line int) float64 {
		if line == 0 {
			return width - style.FirstLineIndentPt
		}
		return width
	}
	return Wrap(text, widthOf, budget), estimated
}

func (f *Flow) ensurePage() {
	if f.page == nil {
		f.page = f.doc.AddPage()
		f.frameIdx = 0
	}
}

func (f *Flow) currentFrame() *model.Frame {
	return &f.page.Frames[f.frameIdx]
}

// advance moves to the next frame, opening a new page after the last
// column. The returned frame is always empty.
func (f *Flow) advance() *model.Frame {
	f.frameIdx++
	if f.frameIdx >= len(f.page.Frames) {
		f.page = f.doc.AddPage()
		f.frameIdx = 0
	}
	return f.currentFrame()
}

func (f *Flow) warn(code model.WarningCode, format string, args ...any) {
	f.warnings = append(f.warnings, model.Warningf(code, format, args...))
}

// blockHeight is the full vertical charge for a block: leading space,
// wrapped lines at the style's leading, and trailing space.
func blockHeight(style model.StyleSpec, lineCount int) float64 {
	return style.SpaceBeforePt + float64(lineCount)*style.LineHeightPt + style.SpaceAfterPt
}

// snippet shortens text for warning messages.
func snippet(text string) string {
	const max = 40
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}
