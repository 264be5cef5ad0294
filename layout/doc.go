// Package layout provides content classification and column flow for
// composing paged documents.
//
// This package turns an ordered sequence of text blocks into positioned
// runs: each block is classified into a role, styled, wrapped to the
// column width, and placed at the next free position.
//
// # Classification
//
// The [Classifier] assigns every block exactly one [model.Role] using an
// ordered rule table over the block's shape and the section context:
//
//	c := layout.NewClassifier()
//	ctx := layout.SectionContext{}
//	cls, ctx := c.Classify("HACKER NEWS - TOP STORIES", ctx)
//	// cls.Role == model.RoleSectionHeader
//
// Rule order is significant: the quote leader glyph also lives in a
// pictographic block, so quote detection must run before emoji detection.
// Classification is total and never fails.
//
// # Column Flow
//
// The [Flow] engine owns the advancing position state. Content moves
// strictly forward: down the current column, to the next column, then to
// a fresh page. Cursors never move up and earlier frames are never
// revisited:
//
//	doc := model.NewPagedDocument(model.DefaultTemplate())
//	flow := layout.NewFlow(doc, measurer)
//	flow.Place("Il fait beau.", model.RoleBody, style)
//
// # Measurement
//
// A [Measurer] supplies line widths in points. When measurement fails the
// engine switches the block to a fixed per-glyph estimate and records a
// warning; layout always completes.
//
// # Wrapping
//
// [Wrap] implements greedy first-fit word wrapping. Words are never
// split: a word wider than the column stands alone on its line and may
// overhang.
package layout
