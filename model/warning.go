package model

import "fmt"

// WarningCode identifies a class of non-fatal composition problem.
type WarningCode int

const (
	// WarnOversizeBlock reports a block taller than an empty frame; its
	// trailing lines were truncated.
	WarnOversizeBlock WarningCode = iota + 1
	// WarnMeasurementFallback reports that a line width could not be
	// measured and a fixed per-glyph estimate was used instead.
	WarnMeasurementFallback
	// WarnQuoteSectionDrop reports a block inside the quote section that
	// was neither quote text nor an attribution and was not placed.
	WarnQuoteSectionDrop
	// WarnSymbolFontFallback reports pictographic text drawn with the
	// base font because the backend has no symbol font registered.
	WarnSymbolFontFallback
)

// String returns a string representation of the code
func (c WarningCode) String() string {
	switch c {
	case WarnOversizeBlock:
		return "oversize-block"
	case WarnMeasurementFallback:
		return "measurement-fallback"
	case WarnQuoteSectionDrop:
		return "quote-section-drop"
	case WarnSymbolFontFallback:
		return "symbol-font-fallback"
	default:
		return "unknown"
	}
}

// Warning is a non-fatal problem encountered during composition. Warnings
// are returned alongside results; they never abort a run.
type Warning struct {
	Code    WarningCode
	Message string
}

// Warningf builds a warning with a formatted message.
func Warningf(code WarningCode, format string, args ...any) Warning {
	return Warning{Code: code, Message: fmt.Sprintf(format, args...)}
}

// String returns the code and message joined for logging.
func (w Warning) String() string {
	return w.Code.String() + ": " + w.Message
}
