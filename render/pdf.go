package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/morningpress/gazette/model"
)

// baselineFactor converts a line box top to a text baseline: the ascent
// of the core serif faces is close to 0.8 em.
const baselineFactor = 0.8

// PDFBackend renders pages with gofpdf. The core Latin fonts cover the
// default styles; symbol-bearing text needs a registered UTF-8 font,
// otherwise its pictographic runes are dropped before drawing.
type PDFBackend struct {
	pdf        *gofpdf.Fpdf
	translate  func(string) string
	symbolFont string
}

// NewPDFBackend creates a backend producing pages of the given size.
func NewPDFBackend(paper model.PaperSize) *PDFBackend {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: paper.WidthPt, Ht: paper.HeightPt},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)

	return &PDFBackend{
		pdf:       pdf,
		translate: pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

// RegisterSymbolFont registers a TrueType font for pictographic text.
// After a successful registration SupportsSymbolGlyphs reports true and
// styles marked NeedsSymbolFont draw with this font.
func (b *PDFBackend) RegisterSymbolFont(name string, data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("render: empty symbol font data")
	}
	b.pdf.AddUTF8FontFromBytes(name, "", data)
	if err := b.pdf.Error(); err != nil {
		return fmt.Errorf("render: register symbol font %s: %w", name, err)
	}
	b.symbolFont = name
	return nil
}

// SupportsSymbolGlyphs reports whether a symbol font has been registered.
func (b *PDFBackend) SupportsSymbolGlyphs() bool {
	return b.symbolFont != ""
}

// AddPage starts a new page.
func (b *PDFBackend) AddPage() {
	b.pdf.AddPage()
}

// DrawLine draws one line at its absolute position.
func (b *PDFBackend) DrawLine(x, y, width float64, text string, style model.StyleSpec, lastLine bool) {
	useSymbol := style.NeedsSymbolFont && b.symbolFont != ""

	var draw string
	if useSymbol {
		b.pdf.SetFont(b.symbolFont, "", style.SizePt)
		draw = text
	} else {
		b.pdf.SetFont(style.FontFamily, style.FontStyle, style.SizePt)
		draw = b.translate(stripUnencodable(text))
	}

	b.pdf.SetTextColor(int(style.Color.R), int(style.Color.G), int(style.Color.B))
	baseline := y + baselineFactor*style.SizePt

	switch style.Alignment {
	case model.AlignCenter:
		w := b.pdf.GetStringWidth(draw)
		b.pdf.Text(x+(width-w)/2, baseline, draw)
	case model.AlignRight:
		w := b.pdf.GetStringWidth(draw)
		b.pdf.Text(x+width-w, baseline, draw)
	case model.AlignJustify:
		if lastLine {
			b.pdf.Text(x, baseline, draw)
			return
		}
		b.justify(x, baseline, width, draw)
	default:
		b.pdf.Text(x, baseline, draw)
	}
}

// justify draws words with the leftover width spread evenly across the
// gaps. Single words and overfull lines draw plainly.
func (b *PDFBackend) justify(x, baseline, width float64, text string) {
	words := strings.Fields(text)
	if len(words) < 2 {
		b.pdf.Text(x, baseline, text)
		return
	}

	widths := make([]float64, len(words))
	total := 0.0
	for i, w := range words {
		widths[i] = b.pdf.GetStringWidth(w)
		total += widths[i]
	}

	gap := (width - total) / float64(len(words)-1)
	if gap <= 0 {
		b.pdf.Text(x, baseline, text)
		return
	}

	cx := x
	for i, w := range words {
		b.pdf.Text(cx, baseline, w)
		cx += widths[i] + gap
	}
}

// Output writes the rendered PDF to w.
func (b *PDFBackend) Output(w io.Writer) error {
	if err := b.pdf.Output(w); err != nil {
		return fmt.Errorf("render: write pdf: %w", err)
	}
	return nil
}

// WriteFile writes the rendered PDF to a file and closes the document.
func (b *PDFBackend) WriteFile(path string) error {
	if err := b.pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("render: write pdf %s: %w", path, err)
	}
	return nil
}

// stripUnencodable removes runes the cp1252 translation cannot carry, so
// core-font lines never render replacement glyphs.
func stripUnencodable(s string) string {
	for _, r := range s {
		if !cp1252Encodable(r) {
			var sb strings.Builder
			sb.Grow(len(s))
			for _, r := range s {
				if cp1252Encodable(r) {
					sb.WriteRune(r)
				}
			}
			return sb.String()
		}
	}
	return s
}

// cp1252Encodable reports whether the rune survives the cp1252
// translation used for the core fonts.
func cp1252Encodable(r rune) bool {
	if r < 0x80 {
		return true
	}
	if r >= 0xA0 && r <= 0xFF {
		return true
	}
	switch r {
	case '€', '‚', 'ƒ', '„', '…', '†', '‡',
		'ˆ', '‰', 'Š', '‹', 'Œ', 'Ž',
		'‘', '’', '“', '”', '•', '–', '—',
		'˜', '™', 'š', '›', 'œ', 'ž', 'Ÿ':
		return true
	}
	return false
}
