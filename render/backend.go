package render

import "github.com/morningpress/gazette/model"

// Backend draws positioned text onto pages. Coordinates arrive in page
// points with the origin at the top-left corner; y increases downward.
type Backend interface {
	// AddPage starts a new page.
	AddPage()

	// DrawLine draws one wrapped line. x, y locate the top-left corner
	// of the line box, width is the box width alignment works within,
	// and lastLine marks the final line of a justified block so it can
	// stay ragged.
	DrawLine(x, y, width float64, text string, style model.StyleSpec, lastLine bool)

	// SupportsSymbolGlyphs reports whether pictographic text renders
	// with real glyphs rather than being dropped.
	SupportsSymbolGlyphs() bool
}
