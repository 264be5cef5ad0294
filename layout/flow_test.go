package layout

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/morningpress/gazette/model"
)

// fixedMeasurer gives every rune the same width in points, ignoring the
// style, so placements are easy to predict.
type fixedMeasurer struct {
	perRune float64
	err     error
}

func (m fixedMeasurer) LineWidth(text string, _ model.StyleSpec) (float64, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.perRune * float64(utf8.RuneCountInString(text)), nil
}

// testTemplate is small enough to overflow quickly: two 85pt columns,
// 180pt tall.
func testTemplate() model.PageTemplate {
	return model.PageTemplate{
		Paper:    model.PaperSize{Name: "test", WidthPt: 200, HeightPt: 200},
		MarginPt: 10,
		GutterPt: 10,
		Columns:  2,
	}
}

func testStyle() model.StyleSpec {
	return model.StyleSpec{
		FontFamily:   "Times",
		SizePt:       10,
		LineHeightPt: 10,
	}
}

func newTestFlow(t *testing.T, m Measurer) (*Flow, *model.PagedDocument) {
	t.Helper()
	doc := model.NewPagedDocument(testTemplate())
	return NewFlow(doc, m), doc
}

func TestFlowPlaceSingleBlock(t *testing.T) {
	flow, doc := newTestFlow(t, fixedMeasurer{perRune: 5})

	// Wraps at the 85pt column: "aaaa bbbb cc" fills 60pt, "ddddd" breaks.
	flow.Place("aaaa bbbb cc ddddd", model.RoleBody, testStyle())

	if doc.PageCount() != 1 {
		t.Fatalf("PageCount() = %d, want 1", doc.PageCount())
	}
	if len(doc.Runs) != 1 {
		t.Fatalf("len(Runs) = %d, want 1", len(doc.Runs))
	}
	if got := len(doc.Runs[0].Lines); got != 2 {
		t.Fatalf("len(Lines) = %d, want 2", got)
	}

	run := doc.Runs[0]
	if run.PageNumber != 1 || run.FrameIndex != 0 {
		t.Errorf("run placed at page %d frame %d, want page 1 frame 0", run.PageNumber, run.FrameIndex)
	}
	if run.X != 10 || run.Y != 10 {
		t.Errorf("run at (%v, %v), want (10, 10)", run.X, run.Y)
	}

	frame := doc.Pages[0].Frames[0]
	if !frame.Used {
		t.Error("frame not marked used")
	}
	wantCursor := 10.0 + float64(len(run.Lines))*10
	if frame.CursorY != wantCursor {
		t.Errorf("cursor = %v, want %v", frame.CursorY, wantCursor)
	}
}

func TestFlowSkipsBlankRole(t *testing.T) {
	flow, doc := newTestFlow(t, fixedMeasurer{perRune: 5})

	flow.Place("", model.RoleBlank, testStyle())
	flow.Place("ignored", model.RoleBlank, testStyle())

	if len(doc.Runs) != 0 || doc.PageCount() != 0 {
		t.Errorf("blank blocks placed %d runs on %d pages, want none", len(doc.Runs), doc.PageCount())
	}
}

func TestFlowSpaceCharges(t *testing.T) {
	flow, doc := newTestFlow(t, fixedMeasurer{perRune: 5})

	style := testStyle()
	style.SpaceBeforePt = 7
	style.SpaceAfterPt = 3

	flow.Place("one line", model.RoleSectionHeader, style)

	run := doc.Runs[0]
	if run.Y != 10+7 {
		t.Errorf("run.Y = %v, want margin plus space-before (17)", run.Y)
	}
	// Full charge: 7 + 1*10 + 3.
	if got := doc.Pages[0].Frames[0].CursorY; got != 10+7+10+3 {
		t.Errorf("cursor = %v, want 30", got)
	}
}

func TestFlowCursorMonotonic(t *testing.T) {
	flow, doc := newTestFlow(t, fixedMeasurer{perRune: 5})

	for i := 0; i < 60; i++ {
		flow.Place("word word word word word", model.RoleBody, testStyle())
	}

	// Placement order must advance strictly forward through pages and
	// frames, and downward within a frame.
	prev := doc.Runs[0]
	for _, run := range doc.Runs[1:] {
		switch {
		case run.PageNumber < prev.PageNumber:
			t.Fatalf("page went backwards: %d after %d", run.PageNumber, prev.PageNumber)
		case run.PageNumber == prev.PageNumber && run.FrameIndex < prev.FrameIndex:
			t.Fatalf("frame went backwards on page %d: %d after %d", run.PageNumber, run.FrameIndex, prev.FrameIndex)
		case run.PageNumber == prev.PageNumber && run.FrameIndex == prev.FrameIndex && run.Y <= prev.Y:
			t.Fatalf("cursor did not move down within frame: %v after %v", run.Y, prev.Y)
		}
		prev = run
	}
}

func TestFlowColumnThenPageOverflow(t *testing.T) {
	flow, doc := newTestFlow(t, fixedMeasurer{perRune: 5})

	// Each block is one 10pt line in a 180pt frame: 18 per frame.
	// 40 blocks: 18 in frame 0, 18 in frame 1, 4 on page 2.
	for i := 0; i < 40; i++ {
		flow.Place("line", model.RoleBody, testStyle())
	}

	if doc.PageCount() != 2 {
		t.Fatalf("PageCount() = %d, want 2", doc.PageCount())
	}

	counts := map[[2]int]int{}
	for _, run := range doc.Runs {
		counts[[2]int{run.PageNumber, run.FrameIndex}]++
	}
	if counts[[2]int{1, 0}] != 18 || counts[[2]int{1, 1}] != 18 {
		t.Errorf("page 1 frames hold %d/%d runs, want 18/18",
			counts[[2]int{1, 0}], counts[[2]int{1, 1}])
	}
	if counts[[2]int{2, 0}] != 4 {
		t.Errorf("page 2 frame 0 holds %d runs, want 4", counts[[2]int{2, 0}])
	}
	if len(flow.Warnings()) != 0 {
		t.Errorf("unexpected warnings: %v", flow.Warnings())
	}
}

func TestFlowBlockMovesToNextFrameWhole(t *testing.T) {
	flow, doc := newTestFlow(t, fixedMeasurer{perRune: 5})

	// Fill most of frame 0, then place a block needing more room than
	// what remains. It must move whole, not split across frames.
	for i := 0; i < 15; i++ {
		flow.Place("line", model.RoleBody, testStyle())
	}
	long := strings.TrimSpace(strings.Repeat("word ", 40)) // wraps to several lines
	flow.Place(long, model.RoleBody, testStyle())

	last := doc.Runs[len(doc.Runs)-1]
	if last.FrameIndex != 1 {
		t.Fatalf("overflowing block in frame %d, want frame 1", last.FrameIndex)
	}
	if last.Y != 10 {
		t.Errorf("block should start at the top of the fresh frame, Y = %v", last.Y)
	}

	// Frame 0 keeps its cursor where it was; nothing was split into it.
	if got := doc.Pages[0].Frames[0].CursorY; got != 10+15*10 {
		t.Errorf("frame 0 cursor = %v, want %v", got, 10+15*10)
	}
}

func TestFlowOversizeBlockTruncated(t *testing.T) {
	flow, doc := newTestFlow(t, fixedMeasurer{perRune: 5})

	// 17 runes per line, 30 lines worth of words: taller than the 18
	// line frame. The block runs through both columns onto a fresh page
	// and is cut to fit its first frame.
	var words []string
	for i := 0; i < 60; i++ {
		words = append(words, "abcdefgh") // 8 runes = 40pt, two per line
	}
	flow.Place(strings.Join(words, " "), model.RoleBody, testStyle())

	if doc.PageCount() != 2 {
		t.Fatalf("PageCount() = %d, want 2", doc.PageCount())
	}
	if len(doc.Runs) != 1 {
		t.Fatalf("len(Runs) = %d, want 1", len(doc.Runs))
	}
	run := doc.Runs[0]
	if run.PageNumber != 2 || run.FrameIndex != 0 {
		t.Errorf("run at page %d frame %d, want page 2 frame 0", run.PageNumber, run.FrameIndex)
	}
	if !run.Truncated {
		t.Error("run not marked truncated")
	}
	if len(run.Lines) != 18 {
		t.Errorf("kept %d lines, want 18", len(run.Lines))
	}

	warnings := flow.Warnings()
	if len(warnings) != 1 || warnings[0].Code != model.WarnOversizeBlock {
		t.Errorf("warnings = %v, want one oversize-block warning", warnings)
	}

	// The flow keeps going afterwards, moving to the second column of
	// the fresh page; the skipped frames of page 1 stay behind for good.
	flow.Place("next", model.RoleBody, testStyle())
	next := doc.Runs[1]
	if next.PageNumber != 2 || next.FrameIndex != 1 {
		t.Errorf("following block at page %d frame %d, want page 2 frame 1", next.PageNumber, next.FrameIndex)
	}
}

func TestFlowUnplaceableBlockSkipped(t *testing.T) {
	flow, doc := newTestFlow(t, fixedMeasurer{perRune: 5})

	style := testStyle()
	style.LineHeightPt = 500 // taller than any frame

	flow.Place("giant", model.RoleBody, style)

	if len(doc.Runs) != 0 {
		t.Fatalf("unplaceable block produced %d runs, want 0", len(doc.Runs))
	}
	if doc.PageCount() != 1 {
		t.Errorf("PageCount() = %d, want 1: a skipped block must not consume pages", doc.PageCount())
	}
	warnings := flow.Warnings()
	if len(warnings) != 1 || warnings[0].Code != model.WarnOversizeBlock {
		t.Errorf("warnings = %v, want one oversize-block warning", warnings)
	}
}

func TestFlowMeasurementFallback(t *testing.T) {
	flow, doc := newTestFlow(t, fixedMeasurer{err: errors.New("no metrics")})

	flow.Place("estimated text", model.RoleBody, testStyle())

	if len(doc.Runs) != 1 {
		t.Fatalf("len(Runs) = %d, want 1 despite measurement failure", len(doc.Runs))
	}
	warnings := flow.Warnings()
	if len(warnings) != 1 || warnings[0].Code != model.WarnMeasurementFallback {
		t.Errorf("warnings = %v, want one measurement-fallback warning", warnings)
	}
}

func TestFlowWordWiderThanColumn(t *testing.T) {
	flow, doc := newTestFlow(t, fixedMeasurer{perRune: 5})

	// 30 runes at 5pt = 150pt in an 85pt column: stands alone, overhangs.
	flow.Place(strings.Repeat("x", 30), model.RoleBody, testStyle())

	run := doc.Runs[0]
	if len(run.Lines) != 1 {
		t.Fatalf("len(Lines) = %d, want 1", len(run.Lines))
	}
	if run.Truncated {
		t.Error("overlong word should not mark the run truncated")
	}
}

func TestFlowIndentsNarrowWrapWidth(t *testing.T) {
	flow, doc := newTestFlow(t, fixedMeasurer{perRune: 5})

	style := testStyle()
	style.LeftIndentPt = 12
	style.RightIndentPt = 13

	flow.Place("narrow", model.RoleQuoteText, style)

	run := doc.Runs[0]
	if run.Width != 85-12-13 {
		t.Errorf("run.Width = %v, want 60", run.Width)
	}
	if run.X != 10+12 {
		t.Errorf("run.X = %v, want left edge plus indent (22)", run.X)
	}
}

func TestFlowIdempotent(t *testing.T) {
	blocks := []string{
		"HACKER NEWS - TOP STORIES",
		strings.Repeat("word ", 30),
		"short",
		strings.Repeat("encore un paragraphe assez long pour deborder ", 4),
	}

	compose := func() string {
		flow, doc := newTestFlow(t, fixedMeasurer{perRune: 5})
		for _, b := range blocks {
			flow.Place(b, model.RoleBody, testStyle())
		}
		return doc.Text()
	}

	first := compose()
	for i := 0; i < 3; i++ {
		if got := compose(); got != first {
			t.Fatalf("composition %d differs from the first run", i+2)
		}
	}
}
