package font

import (
	"fmt"
	"unicode/utf8"

	"github.com/morningpress/gazette/model"
)

// EstimatedGlyphFactor is the fraction of the font size charged per rune
// when no metrics are available at all.
const EstimatedGlyphFactor = 0.6

// EstimateLineWidth approximates the width of text in points without any
// font metrics. It never fails; layout uses it when real measurement does.
func EstimateLineWidth(text string, sizePt float64) float64 {
	return EstimatedGlyphFactor * sizePt * float64(utf8.RuneCountInString(text))
}

// Library resolves font names to measurable faces. A fresh library knows
// the built-in serif, sans, and monospace faces; OpenType files can be
// added for anything else. A Library is safe to share between composers.
type Library struct {
	faces map[string]*Face
}

// NewLibrary creates a library preloaded with the built-in faces.
func NewLibrary() *Library {
	l := &Library{faces: make(map[string]*Face, len(standardFaces))}
	for name, table := range standardFaces {
		l.faces[name] = NewFace(name, table)
	}
	return l
}

// AddFace registers a face under its name, replacing any existing entry.
func (l *Library) AddFace(f *Face) {
	l.faces[f.Name] = f
}

// AddOpenType parses font data and registers it under the given name.
func (l *Library) AddOpenType(name string, data []byte) error {
	face, err := NewOpenTypeFace(name, data)
	if err != nil {
		return err
	}
	l.faces[name] = face
	return nil
}

// Face looks up a registered face by name.
func (l *Library) Face(name string) (*Face, bool) {
	f, ok := l.faces[name]
	return f, ok
}

// LineWidth measures one line of text in points for the given style. It
// fails only when the style names a face the library does not know.
func (l *Library) LineWidth(text string, style model.StyleSpec) (float64, error) {
	face, ok := l.faces[style.FontName()]
	if !ok {
		return 0, fmt.Errorf("font library: unknown face %q", style.FontName())
	}
	return face.WidthPt(text, style.SizePt), nil
}
