package gazette

import (
	"fmt"
	"io"
	"os"

	"github.com/morningpress/gazette/font"
	"github.com/morningpress/gazette/layout"
	"github.com/morningpress/gazette/model"
	"github.com/morningpress/gazette/render"
)

// Composer provides a fluent interface for composing content blocks into
// a paged document. Each configuration method returns a new Composer
// instance, making it safe for concurrent use and allowing method
// chaining.
type Composer struct {
	// Content
	masthead string
	dateLine string
	blocks   []string

	// Configuration
	options ComposeOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Composer with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (c *Composer) clone() *Composer {
	return &Composer{
		masthead: c.masthead,
		dateLine: c.dateLine,
		blocks:   append([]string(nil), c.blocks...),
		options:  c.options.clone(),
		err:      c.err,
	}
}

// ============================================================================
// Configuration Methods (return new Composer instance)
// ============================================================================

// Columns sets the number of column frames per page. Supported values
// are 2 and 3; anything else fails at the terminal operation.
//
// Example:
//
//	doc, _, err := gazette.Compose(title, date, blocks).Columns(3).Document()
func (c *Composer) Columns(n int) *Composer {
	nc := c.clone()
	nc.options.template.Columns = n
	return nc
}

// PageSize sets the paper size.
//
// Example:
//
//	doc, _, err := gazette.Compose(title, date, blocks).PageSize(model.Letter).Document()
func (c *Composer) PageSize(paper model.PaperSize) *Composer {
	nc := c.clone()
	nc.options.template.Paper = paper
	return nc
}

// Margins sets the uniform outer page margin in points.
//
// Example:
//
//	doc, _, err := gazette.Compose(title, date, blocks).Margins(36).Document()
func (c *Composer) Margins(pt float64) *Composer {
	nc := c.clone()
	nc.options.template.MarginPt = pt
	return nc
}

// Gutter sets the horizontal gap between columns in points.
//
// Example:
//
//	doc, _, err := gazette.Compose(title, date, blocks).Gutter(10).Document()
func (c *Composer) Gutter(pt float64) *Composer {
	nc := c.clone()
	nc.options.template.GutterPt = pt
	return nc
}

// Styles replaces the whole style sheet. Roles missing from the sheet
// fall back to its body style.
//
// Example:
//
//	sheet := model.DefaultStyleSheet()
//	doc, _, err := gazette.Compose(title, date, blocks).Styles(sheet).Document()
func (c *Composer) Styles(sheet model.StyleSheet) *Composer {
	nc := c.clone()
	nc.options.styles = sheet.Clone()
	return nc
}

// Style overrides the style of a single role, keeping the rest of the
// sheet as configured.
//
// Example:
//
//	big := model.StyleSpec{FontFamily: "Times", FontStyle: "B", SizePt: 24, LineHeightPt: 28, Alignment: model.AlignCenter}
//	doc, _, err := gazette.Compose(title, date, blocks).Style(model.RoleMasthead, big).Document()
func (c *Composer) Style(role model.Role, spec model.StyleSpec) *Composer {
	nc := c.clone()
	if nc.options.styles == nil {
		nc.options.styles = model.DefaultStyleSheet()
	}
	nc.options.styles[role] = spec
	return nc
}

// QuoteSection renames the reserved banner that opens the quote section.
//
// Example:
//
//	doc, _, err := gazette.Compose(title, date, blocks).QuoteSection("QUOTE OF THE DAY").Document()
func (c *Composer) QuoteSection(name string) *Composer {
	nc := c.clone()
	nc.options.classifier.QuoteSectionName = name
	return nc
}

// WithMeasurer replaces the line measurer used during flow. The default
// is the built-in font library with metrics for the core Latin fonts.
//
// Example:
//
//	lib := font.NewLibrary()
//	doc, _, err := gazette.Compose(title, date, blocks).WithMeasurer(lib).Document()
func (c *Composer) WithMeasurer(m layout.Measurer) *Composer {
	nc := c.clone()
	nc.options.measurer = m
	return nc
}

// WithSymbolFont supplies TrueType or OpenType font data registered with
// PDF output so pictographic text keeps its glyphs. Without it, glyphs
// outside the core Latin fonts are dropped and a warning is reported.
//
// Example:
//
//	data, _ := os.ReadFile("NotoEmoji-Regular.ttf")
//	warnings, err := gazette.Compose(title, date, blocks).
//	    WithSymbolFont("NotoEmoji", data).
//	    WriteFile("edition.pdf")
func (c *Composer) WithSymbolFont(name string, data []byte) *Composer {
	nc := c.clone()
	nc.options.symbolFontName = name
	nc.options.symbolFontData = append([]byte(nil), data...)
	return nc
}

// ============================================================================
// Terminal Operations (execute composition and return results)
// ============================================================================

// Document classifies the blocks, flows them through the column frames,
// and returns the placed document.
//
// Returns the paged document, any warnings encountered during
// composition, and an error if composition failed. Warnings indicate
// non-fatal issues (e.g., an oversize block was truncated) where
// composition succeeded but the output may be imperfect.
//
// Example:
//
//	doc, warnings, err := gazette.Compose(title, date, blocks).Document()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", gazette.FormatWarnings(warnings))
//	}
func (c *Composer) Document() (*model.PagedDocument, []Warning, error) {
	if c.err != nil {
		return nil, nil, c.err
	}
	if err := c.options.template.Validate(); err != nil {
		return nil, nil, err
	}

	measurer := c.options.measurer
	if measurer == nil {
		measurer = font.NewLibrary()
	}

	sheet := c.options.styles
	if sheet == nil {
		sheet = model.DefaultStyleSheet()
	}

	doc := model.NewPagedDocument(c.options.template)
	flow := layout.NewFlow(doc, measurer)

	// Front matter is fixed: the masthead and its dated subtitle are
	// styled directly, never classified.
	flow.Place(c.masthead, model.RoleMasthead, sheet.StyleFor(model.RoleMasthead))
	flow.Place(c.dateLine, model.RoleDateSubtitle, sheet.StyleFor(model.RoleDateSubtitle))

	classifier := layout.NewClassifierWithConfig(c.options.classifier)

	var dropped []Warning
	ctx := layout.SectionContext{}
	for _, block := range c.blocks {
		cls, next := classifier.Classify(block, ctx)
		wasQuote := ctx.InQuote
		ctx = next

		if cls.Role == model.RoleBlank {
			continue
		}

		// Inside the quote section only quote material is placed. A stray
		// block is dropped rather than set in the wrong style.
		if wasQuote && ctx.InQuote && !quoteRole(cls.Role) {
			dropped = append(dropped, model.Warningf(model.WarnQuoteSectionDrop,
				"block %q inside quote section is not quote material, dropped", abbreviate(block)))
			continue
		}

		flow.Place(cls.Text, cls.Role, sheet.StyleFor(cls.Role))
	}

	flowWarnings := flow.Warnings()
	warnings := make([]Warning, 0, len(flowWarnings)+len(dropped))
	warnings = append(warnings, flowWarnings...)
	warnings = append(warnings, dropped...)
	return doc, warnings, nil
}

// Text composes the document and returns its wrapped lines in placement
// order, one per row. This is useful for previews and tests where the
// PDF bytes themselves do not matter.
//
// Example:
//
//	text, warnings, err := gazette.Compose(title, date, blocks).Text()
func (c *Composer) Text() (string, []Warning, error) {
	doc, warnings, err := c.Document()
	if err != nil {
		return "", warnings, err
	}
	return doc.Text(), warnings, nil
}

// PageCount composes the document and returns the number of pages the
// content fills.
//
// Example:
//
//	count, err := gazette.Compose(title, date, blocks).PageCount()
func (c *Composer) PageCount() (int, error) {
	doc, _, err := c.Document()
	if err != nil {
		return 0, err
	}
	return doc.PageCount(), nil
}

// PDF composes the document and renders it as a PDF to w.
//
// Returns any warnings encountered during composition and rendering,
// and an error if either failed.
//
// Example:
//
//	var buf bytes.Buffer
//	warnings, err := gazette.Compose(title, date, blocks).PDF(&buf)
func (c *Composer) PDF(w io.Writer) ([]Warning, error) {
	doc, warnings, err := c.Document()
	if err != nil {
		return warnings, err
	}

	backend := render.NewPDFBackend(doc.Template.Paper)
	if len(c.options.symbolFontData) > 0 {
		if err := backend.RegisterSymbolFont(c.options.symbolFontName, c.options.symbolFontData); err != nil {
			return warnings, fmt.Errorf("registering symbol font: %w", err)
		}
	}

	if !backend.SupportsSymbolGlyphs() && needsSymbolFont(doc) {
		warnings = append(warnings, model.Warningf(model.WarnSymbolFontFallback,
			"no symbol font registered, pictographic glyphs fall back to the base font"))
	}

	if err := render.Serialize(doc, backend); err != nil {
		return warnings, err
	}
	if err := backend.Output(w); err != nil {
		return warnings, err
	}
	return warnings, nil
}

// WriteFile composes the document and writes it as a PDF to path.
//
// Example:
//
//	warnings, err := gazette.Compose(title, date, blocks).WriteFile("edition.pdf")
func (c *Composer) WriteFile(path string) ([]Warning, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	warnings, err := c.PDF(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return warnings, err
}

// ============================================================================
// Internal helpers
// ============================================================================

// quoteRole reports whether a role may appear inside the quote section.
func quoteRole(role model.Role) bool {
	switch role {
	case model.RoleQuoteSectionHeader, model.RoleQuoteText, model.RoleQuoteAttribution:
		return true
	}
	return false
}

// needsSymbolFont reports whether any placed run is styled for glyphs
// outside the core Latin fonts.
func needsSymbolFont(doc *model.PagedDocument) bool {
	for _, run := range doc.Runs {
		if run.Style.NeedsSymbolFont {
			return true
		}
	}
	return false
}

// abbreviate shortens block text for warning messages.
func abbreviate(text string) string {
	const max = 40
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}
