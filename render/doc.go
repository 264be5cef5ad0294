// Package render turns a placed document into output: a serializer that
// replays runs in order and a PDF backend built on gofpdf.
//
// # Serialization
//
// [Serialize] is a mechanical walk: one page per page boundary, one draw
// call per wrapped line. All layout decisions were made upstream; the
// serializer only converts positions.
//
//	backend := render.NewPDFBackend(doc.Template.Paper)
//	err := render.Serialize(doc, backend)
//	err = backend.WriteFile("press/morning.pdf")
//
// # Backends
//
// A [Backend] draws lines at absolute positions in page points, origin
// top-left. [PDFBackend] renders with the core Latin fonts; registering
// a symbol font via [PDFBackend.RegisterSymbolFont] turns on real glyphs
// for pictographic text, otherwise those runes are dropped before
// drawing.
package render
