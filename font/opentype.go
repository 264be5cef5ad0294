package font

import (
	"fmt"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// NewOpenTypeFace builds a face from TrueType or OpenType font data.
// Advances are read through the sfnt parser on first use and cached, so
// only the runes that actually occur in content are resolved.
func NewOpenTypeFace(name string, data []byte) (*Face, error) {
	parsed, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font %s: parse failed: %w", name, err)
	}
	if parsed.UnitsPerEm() == 0 {
		return nil, fmt.Errorf("font %s: zero units per em", name)
	}

	return &Face{
		Name:   name,
		widths: make(map[rune]float64),
		otf:    parsed,
	}, nil
}

// otfWidth resolves one rune's advance from the parsed font file, in
// 1000ths of an em. Callers hold f.mu.
func (f *Face) otfWidth(r rune) (float64, bool) {
	gi, err := f.otf.GlyphIndex(&f.otfBuf, r)
	if err != nil || gi == 0 {
		return 0, false
	}

	upem := fixed.I(int(f.otf.UnitsPerEm()))
	adv, err := f.otf.GlyphAdvance(&f.otfBuf, gi, upem, xfont.HintingNone)
	if err != nil {
		return 0, false
	}

	// At ppem == unitsPerEm the advance comes back in font units.
	return float64(adv) / 64.0 / float64(f.otf.UnitsPerEm()) * 1000.0, true
}
