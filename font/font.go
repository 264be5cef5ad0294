package font

import (
	"sync"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/text/unicode/norm"
)

// DefaultGlyphWidth is the milli-em width assumed for runes no table or
// font file can measure.
const DefaultGlyphWidth = 500.0

// Face holds per-rune advance widths for one font, in 1000ths of an em.
// Widths come from a built-in table, an OpenType file, or both; lookups
// for accented characters decompose to their base character before giving
// up.
type Face struct {
	Name string

	mu     sync.Mutex
	widths map[rune]float64

	// otf, when set, answers lookups the width table misses.
	otf    *sfnt.Font
	otfBuf sfnt.Buffer
}

// NewFace creates a face from a width table. The table is copied.
func NewFace(name string, widths map[rune]float64) *Face {
	f := &Face{
		Name:   name,
		widths: make(map[rune]float64, len(widths)),
	}
	for r, w := range widths {
		f.widths[r] = w
	}
	return f
}

// GetWidth returns the width of a character in 1000ths of an em.
func (f *Face) GetWidth(r rune) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.widthLocked(r)
}

func (f *Face) widthLocked(r rune) float64 {
	if w, ok := f.widths[r]; ok {
		return w
	}

	if f.otf != nil {
		if w, ok := f.otfWidth(r); ok {
			f.widths[r] = w
			return w
		}
	}

	// Accented characters measure as their base character.
	decomposed := norm.NFD.String(string(r))
	if base := firstRune(decomposed); base != r {
		if w, ok := f.widths[base]; ok {
			f.widths[r] = w
			return w
		}
	}

	return DefaultGlyphWidth
}

// GetStringWidth calculates the total width of a string in 1000ths of an em.
func (f *Face) GetStringWidth(s string) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	total := 0.0
	for _, r := range s {
		total += f.widthLocked(r)
	}
	return total
}

// WidthPt returns the width of a string in points at the given font size.
func (f *Face) WidthPt(s string, sizePt float64) float64 {
	return f.GetStringWidth(s) / 1000.0 * sizePt
}

// HasGlyph reports whether the face carries a real width for the rune,
// as opposed to the fallback default.
func (f *Face) HasGlyph(r rune) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.widths[r]; ok {
		return true
	}
	if f.otf != nil {
		if w, ok := f.otfWidth(r); ok {
			f.widths[r] = w
			return true
		}
	}
	return false
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

// Built-in faces use the Adobe core font metrics. Tables cover printable
// ASCII plus the typographic punctuation the press content uses; accented
// Latin resolves through decomposition.
var standardFaces = map[string]map[rune]float64{
	"Times":                 timesWidths,
	"Times-Roman":           timesWidths,
	"Times-Bold":            timesBoldWidths,
	"Times-Italic":          timesItalicWidths,
	"Times-BoldItalic":      timesBoldItalicWidths,
	"Helvetica":             helveticaWidths,
	"Helvetica-Bold":        helveticaBoldWidths,
	"Helvetica-Oblique":     helveticaWidths,
	"Helvetica-Italic":      helveticaWidths,
	"Helvetica-BoldOblique": helveticaBoldWidths,
	"Helvetica-BoldItalic":  helveticaBoldWidths,
	"Courier":               courierWidths,
	"Courier-Bold":          courierWidths,
	"Courier-Oblique":       courierWidths,
	"Courier-Italic":        courierWidths,
	"Courier-BoldOblique":   courierWidths,
	"Courier-BoldItalic":    courierWidths,
}

// Times-Roman widths (in 1000ths of em)
var timesWidths = map[rune]float64{
	' ':  250,
	'!':  333,
	'"':  408,
	'#':  500,
	'$':  500,
	'%':  833,
	'&':  778,
	'\'': 180,
	'(':  333,
	')':  333,
	'*':  500,
	'+':  564,
	',':  250,
	'-':  333,
	'.':  250,
	'/':  278,
	'0':  500,
	'1':  500,
	'2':  500,
	'3':  500,
	'4':  500,
	'5':  500,
	'6':  500,
	'7':  500,
	'8':  500,
	'9':  500,
	':':  278,
	';':  278,
	'<':  564,
	'=':  564,
	'>':  564,
	'?':  444,
	'@':  921,
	'A':  722,
	'B':  667,
	'C':  667,
	'D':  722,
	'E':  611,
	'F':  556,
	'G':  722,
	'H':  722,
	'I':  333,
	'J':  389,
	'K':  722,
	'L':  611,
	'M':  889,
	'N':  722,
	'O':  722,
	'P':  556,
	'Q':  722,
	'R':  667,
	'S':  556,
	'T':  611,
	'U':  722,
	'V':  722,
	'W':  944,
	'X':  722,
	'Y':  722,
	'Z':  611,
	'[':  333,
	'\\': 278,
	']':  333,
	'^':  469,
	'_':  500,
	'`':  333,
	'a':  444,
	'b':  500,
	'c':  444,
	'd':  500,
	'e':  444,
	'f':  333,
	'g':  500,
	'h':  500,
	'i':  278,
	'j':  278,
	'k':  500,
	'l':  278,
	'm':  778,
	'n':  500,
	'o':  500,
	'p':  500,
	'q':  500,
	'r':  333,
	's':  389,
	't':  278,
	'u':  500,
	'v':  500,
	'w':  722,
	'x':  500,
	'y':  500,
	'z':  444,
	'{':  480,
	'|':  200,
	'}':  480,
	'~':  541,
	'‘': 333,  // left single quote
	'’': 333,  // right single quote
	'“': 444,  // left double quote
	'”': 444,  // right double quote
	'«': 500,  // left guillemet
	'»': 500,  // right guillemet
	'–': 500,  // en dash
	'—': 1000, // em dash
	'°': 400,  // degree sign
}

// Times-Bold widths
var timesBoldWidths = map[rune]float64{
	' ':  250,
	'!':  333,
	'"':  555,
	'#':  500,
	'$':  500,
	'%':  1000,
	'&':  833,
	'\'': 278,
	'(':  333,
	')':  333,
	'*':  500,
	'+':  570,
	',':  250,
	'-':  333,
	'.':  250,
	'/':  278,
	'0':  500,
	'1':  500,
	'2':  500,
	'3':  500,
	'4':  500,
	'5':  500,
	'6':  500,
	'7':  500,
	'8':  500,
	'9':  500,
	':':  333,
	';':  333,
	'<':  570,
	'=':  570,
	'>':  570,
	'?':  500,
	'@':  930,
	'A':  722,
	'B':  667,
	'C':  722,
	'D':  722,
	'E':  667,
	'F':  611,
	'G':  778,
	'H':  778,
	'I':  389,
	'J':  500,
	'K':  778,
	'L':  667,
	'M':  944,
	'N':  722,
	'O':  778,
	'P':  611,
	'Q':  778,
	'R':  722,
	'S':  556,
	'T':  667,
	'U':  722,
	'V':  722,
	'W':  1000,
	'X':  722,
	'Y':  722,
	'Z':  667,
	'[':  333,
	'\\': 278,
	']':  333,
	'^':  581,
	'_':  500,
	'`':  333,
	'a':  500,
	'b':  556,
	'c':  444,
	'd':  556,
	'e':  444,
	'f':  333,
	'g':  500,
	'h':  556,
	'i':  278,
	'j':  333,
	'k':  556,
	'l':  278,
	'm':  833,
	'n':  556,
	'o':  500,
	'p':  556,
	'q':  556,
	'r':  444,
	's':  389,
	't':  333,
	'u':  556,
	'v':  500,
	'w':  722,
	'x':  500,
	'y':  500,
	'z':  444,
	'{':  394,
	'|':  220,
	'}':  394,
	'~':  520,
	'‘': 333,
	'’': 333,
	'“': 500,
	'”': 500,
	'«': 500,
	'»': 500,
	'–': 500,
	'—': 1000,
	'°': 400,
}

// Times-Italic widths
var timesItalicWidths = map[rune]float64{
	' ':  250,
	'!':  333,
	'"':  420,
	'#':  500,
	'$':  500,
	'%':  833,
	'&':  778,
	'\'': 214,
	'(':  333,
	')':  333,
	'*':  500,
	'+':  675,
	',':  250,
	'-':  333,
	'.':  250,
	'/':  278,
	'0':  500,
	'1':  500,
	'2':  500,
	'3':  500,
	'4':  500,
	'5':  500,
	'6':  500,
	'7':  500,
	'8':  500,
	'9':  500,
	':':  333,
	';':  333,
	'<':  675,
	'=':  675,
	'>':  675,
	'?':  500,
	'@':  920,
	'A':  611,
	'B':  611,
	'C':  667,
	'D':  722,
	'E':  611,
	'F':  611,
	'G':  722,
	'H':  722,
	'I':  333,
	'J':  444,
	'K':  667,
	'L':  556,
	'M':  833,
	'N':  667,
	'O':  722,
	'P':  611,
	'Q':  722,
	'R':  611,
	'S':  500,
	'T':  556,
	'U':  722,
	'V':  611,
	'W':  833,
	'X':  611,
	'Y':  556,
	'Z':  556,
	'[':  389,
	'\\': 278,
	']':  389,
	'^':  422,
	'_':  500,
	'`':  333,
	'a':  500,
	'b':  500,
	'c':  444,
	'd':  500,
	'e':  444,
	'f':  278,
	'g':  500,
	'h':  500,
	'i':  278,
	'j':  278,
	'k':  444,
	'l':  278,
	'm':  722,
	'n':  500,
	'o':  500,
	'p':  500,
	'q':  500,
	'r':  389,
	's':  389,
	't':  278,
	'u':  500,
	'v':  444,
	'w':  667,
	'x':  444,
	'y':  444,
	'z':  389,
	'{':  400,
	'|':  275,
	'}':  400,
	'~':  541,
	'‘': 333,
	'’': 333,
	'“': 556,
	'”': 556,
	'«': 500,
	'»': 500,
	'–': 500,
	'—': 889,
	'°': 400,
}

// Times-BoldItalic widths
var timesBoldItalicWidths = map[rune]float64{
	' ':  250,
	'!':  389,
	'"':  555,
	'#':  500,
	'$':  500,
	'%':  833,
	'&':  778,
	'\'': 278,
	'(':  333,
	')':  333,
	'*':  500,
	'+':  570,
	',':  250,
	'-':  333,
	'.':  250,
	'/':  278,
	'0':  500,
	'1':  500,
	'2':  500,
	'3':  500,
	'4':  500,
	'5':  500,
	'6':  500,
	'7':  500,
	'8':  500,
	'9':  500,
	':':  333,
	';':  333,
	'<':  570,
	'=':  570,
	'>':  570,
	'?':  500,
	'@':  832,
	'A':  667,
	'B':  667,
	'C':  667,
	'D':  722,
	'E':  667,
	'F':  667,
	'G':  722,
	'H':  778,
	'I':  389,
	'J':  500,
	'K':  667,
	'L':  611,
	'M':  889,
	'N':  722,
	'O':  722,
	'P':  611,
	'Q':  722,
	'R':  667,
	'S':  556,
	'T':  611,
	'U':  722,
	'V':  667,
	'W':  889,
	'X':  667,
	'Y':  611,
	'Z':  611,
	'[':  333,
	'\\': 278,
	']':  333,
	'^':  570,
	'_':  500,
	'`':  333,
	'a':  500,
	'b':  500,
	'c':  444,
	'd':  500,
	'e':  444,
	'f':  333,
	'g':  500,
	'h':  556,
	'i':  278,
	'j':  278,
	'k':  500,
	'l':  278,
	'm':  778,
	'n':  556,
	'o':  500,
	'p':  500,
	'q':  500,
	'r':  389,
	's':  389,
	't':  278,
	'u':  556,
	'v':  444,
	'w':  667,
	'x':  500,
	'y':  444,
	'z':  389,
	'{':  348,
	'|':  220,
	'}':  348,
	'~':  570,
	'‘': 333,
	'’': 333,
	'“': 500,
	'”': 500,
	'«': 500,
	'»': 500,
	'–': 500,
	'—': 1000,
	'°': 400,
}

// Helvetica widths
var helveticaWidths = map[rune]float64{
	' ':  278,
	'!':  278,
	'"':  355,
	'#':  556,
	'$':  556,
	'%':  889,
	'&':  667,
	'\'': 191,
	'(':  333,
	')':  333,
	'*':  389,
	'+':  584,
	',':  278,
	'-':  333,
	'.':  278,
	'/':  278,
	'0':  556,
	'1':  556,
	'2':  556,
	'3':  556,
	'4':  556,
	'5':  556,
	'6':  556,
	'7':  556,
	'8':  556,
	'9':  556,
	':':  278,
	';':  278,
	'<':  584,
	'=':  584,
	'>':  584,
	'?':  556,
	'@':  1015,
	'A':  667,
	'B':  667,
	'C':  722,
	'D':  722,
	'E':  667,
	'F':  611,
	'G':  778,
	'H':  722,
	'I':  278,
	'J':  500,
	'K':  667,
	'L':  556,
	'M':  833,
	'N':  722,
	'O':  778,
	'P':  667,
	'Q':  778,
	'R':  722,
	'S':  667,
	'T':  611,
	'U':  722,
	'V':  667,
	'W':  944,
	'X':  667,
	'Y':  667,
	'Z':  611,
	'[':  278,
	'\\': 278,
	']':  278,
	'^':  469,
	'_':  556,
	'`':  333,
	'a':  556,
	'b':  556,
	'c':  500,
	'd':  556,
	'e':  556,
	'f':  278,
	'g':  556,
	'h':  556,
	'i':  222,
	'j':  222,
	'k':  500,
	'l':  222,
	'm':  833,
	'n':  556,
	'o':  556,
	'p':  556,
	'q':  556,
	'r':  333,
	's':  500,
	't':  278,
	'u':  556,
	'v':  500,
	'w':  722,
	'x':  500,
	'y':  500,
	'z':  500,
	'{':  334,
	'|':  260,
	'}':  334,
	'~':  584,
}

// Helvetica-Bold widths
var helveticaBoldWidths = map[rune]float64{
	' ':  278,
	'!':  333,
	'"':  474,
	'#':  556,
	'$':  556,
	'%':  889,
	'&':  722,
	'\'': 238,
	'(':  333,
	')':  333,
	'*':  389,
	'+':  584,
	',':  278,
	'-':  333,
	'.':  278,
	'/':  278,
	'0':  556,
	'1':  556,
	'2':  556,
	'3':  556,
	'4':  556,
	'5':  556,
	'6':  556,
	'7':  556,
	'8':  556,
	'9':  556,
	':':  333,
	';':  333,
	'<':  584,
	'=':  584,
	'>':  584,
	'?':  611,
	'@':  975,
	'A':  722,
	'B':  722,
	'C':  722,
	'D':  722,
	'E':  667,
	'F':  611,
	'G':  778,
	'H':  722,
	'I':  278,
	'J':  556,
	'K':  722,
	'L':  611,
	'M':  833,
	'N':  722,
	'O':  778,
	'P':  667,
	'Q':  778,
	'R':  722,
	'S':  667,
	'T':  611,
	'U':  722,
	'V':  667,
	'W':  944,
	'X':  667,
	'Y':  667,
	'Z':  611,
	'[':  333,
	'\\': 278,
	']':  333,
	'^':  584,
	'_':  556,
	'`':  333,
	'a':  556,
	'b':  611,
	'c':  556,
	'd':  611,
	'e':  556,
	'f':  333,
	'g':  611,
	'h':  611,
	'i':  278,
	'j':  278,
	'k':  556,
	'l':  278,
	'm':  889,
	'n':  611,
	'o':  611,
	'p':  611,
	'q':  611,
	'r':  389,
	's':  556,
	't':  333,
	'u':  611,
	'v':  556,
	'w':  778,
	'x':  556,
	'y':  556,
	'z':  500,
	'{':  389,
	'|':  280,
	'}':  389,
	'~':  584,
}

// Courier widths (monospaced)
var courierWidths = map[rune]float64{}

func init() {
	// Courier is monospaced - all characters have same width
	for r := rune(32); r <= 126; r++ {
		courierWidths[r] = 600
	}
}
