// Package font provides text measurement for layout: character width
// tables for the built-in faces and metrics loaded from OpenType files.
//
// # Faces
//
// A [Face] maps runes to advance widths in 1000ths of an em. The built-in
// faces cover the core serif, sans, and monospace families used by the
// default styles:
//
//	face, ok := font.NewLibrary().Face("Times-Bold")
//	w := face.GetStringWidth("MORNING PRESS")  // milli-ems
//	pt := face.WidthPt("MORNING PRESS", 18)    // points at 18pt
//
// Runes missing from a table fall back to the width of their decomposed
// base character, so accented Latin text measures correctly without
// per-accent entries.
//
// # Library
//
// The [Library] resolves a style's font name to a face and measures whole
// lines in points:
//
//	lib := font.NewLibrary()
//	w, err := lib.LineWidth("Il fait beau", style)
//
// Measurement fails only for an unknown face; callers are expected to fall
// back to [EstimateLineWidth] and carry on.
//
// # OpenType Fonts
//
// [Library.AddOpenType] registers a TrueType or OpenType file, typically a
// symbol font for pictographic text. Advances are read through the sfnt
// parser and cached per rune:
//
//	data, _ := os.ReadFile("symbols.ttf")
//	err := lib.AddOpenType("Symbols", data)
package font
