package gazette

import (
	"github.com/morningpress/gazette/layout"
	"github.com/morningpress/gazette/model"
)

// ComposeOptions holds configuration for document composition.
type ComposeOptions struct {
	// Page geometry
	template model.PageTemplate

	// Role styling (nil means the default sheet)
	styles model.StyleSheet

	// Block classification
	classifier layout.ClassifierConfig

	// Line measurement (nil means the built-in font library)
	measurer layout.Measurer

	// Symbol font registered with PDF output for pictographic text
	symbolFontName string
	symbolFontData []byte
}

// defaultOptions returns the default composition options.
func defaultOptions() ComposeOptions {
	return ComposeOptions{
		template:   model.DefaultTemplate(),
		styles:     nil, // nil means DefaultStyleSheet
		classifier: layout.DefaultClassifierConfig(),
		measurer:   nil, // nil means font.NewLibrary
	}
}

// clone creates a deep copy of ComposeOptions.
func (o ComposeOptions) clone() ComposeOptions {
	newOpts := ComposeOptions{
		template:       o.template,
		classifier:     o.classifier,
		measurer:       o.measurer,
		symbolFontName: o.symbolFontName,
	}

	// Deep copy the style sheet
	if o.styles != nil {
		newOpts.styles = o.styles.Clone()
	}

	// Deep copy the symbol font bytes
	if o.symbolFontData != nil {
		newOpts.symbolFontData = append([]byte(nil), o.symbolFontData...)
	}

	return newOpts
}
