package model

// Alignment represents the horizontal alignment of text within its frame
type Alignment int

const (
	// AlignLeft indicates left-aligned text
	AlignLeft Alignment = iota
	// AlignCenter indicates center-aligned text
	AlignCenter
	// AlignRight indicates right-aligned text
	AlignRight
	// AlignJustify indicates justified text
	AlignJustify
)

// String returns a string representation of the alignment
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	case AlignJustify:
		return "justified"
	default:
		return "unknown"
	}
}

// RGB is a 24-bit text color. The zero value is black.
type RGB struct {
	R, G, B uint8
}

// StyleSpec describes how blocks of one role are set. All dimensions are
// in points. Values are copied into every placed run, so a spec can be
// shared freely.
type StyleSpec struct {
	// FontFamily is the base family name, e.g. "Times".
	FontFamily string

	// FontStyle is "", "B", "I", or "BI".
	FontStyle string

	// SizePt is the font size.
	SizePt float64

	// LineHeightPt is the baseline-to-baseline leading.
	LineHeightPt float64

	// Alignment controls horizontal placement within the frame.
	Alignment Alignment

	// FirstLineIndentPt indents only the first wrapped line.
	FirstLineIndentPt float64

	// LeftIndentPt and RightIndentPt narrow the wrap width from each side.
	LeftIndentPt  float64
	RightIndentPt float64

	// SpaceBeforePt and SpaceAfterPt are vertical gaps around the block.
	// Both are always charged to the block's height.
	SpaceBeforePt float64
	SpaceAfterPt  float64

	// Color is the text color.
	Color RGB

	// NeedsSymbolFont marks styles whose text may carry glyphs outside the
	// core Latin fonts. Backends without a registered symbol font draw the
	// base family instead and drop unencodable glyphs.
	NeedsSymbolFont bool
}

// FontName returns the family and style joined in the conventional
// "Family-StyleSuffix" form used by width tables, e.g. "Times-Bold".
func (s StyleSpec) FontName() string {
	switch s.FontStyle {
	case "B":
		return s.FontFamily + "-Bold"
	case "I":
		return s.FontFamily + "-Italic"
	case "BI":
		return s.FontFamily + "-BoldItalic"
	default:
		return s.FontFamily
	}
}

// StyleSheet maps roles to styles. A sheet may be partial: lookup is
// total, with unmapped roles inheriting the body style.
type StyleSheet map[Role]StyleSpec

// StyleFor returns the style for a role. Roles without an entry fall back
// to the sheet's body style, then to the built-in body style, so callers
// never handle a missing-style case.
func (s StyleSheet) StyleFor(role Role) StyleSpec {
	if spec, ok := s[role]; ok {
		return spec
	}
	if spec, ok := s[RoleBody]; ok {
		return spec
	}
	return builtinBodyStyle
}

// Clone returns an independent copy of the sheet.
func (s StyleSheet) Clone() StyleSheet {
	out := make(StyleSheet, len(s))
	for role, spec := range s {
		out[role] = spec
	}
	return out
}

// builtinBodyStyle backs StyleFor when a sheet has no body entry.
var builtinBodyStyle = StyleSpec{
	FontFamily:        "Times",
	SizePt:            10,
	LineHeightPt:      13,
	Alignment:         AlignJustify,
	FirstLineIndentPt: 10,
	SpaceAfterPt:      5.67,
}

// DefaultStyleSheet returns the house style: serif throughout, bold
// centered masthead, justified body columns, italic centered quotes.
func DefaultStyleSheet() StyleSheet {
	return StyleSheet{
		RoleMasthead: {
			FontFamily:   "Times",
			FontStyle:    "B",
			SizePt:       18,
			LineHeightPt: 22,
			Alignment:    AlignCenter,
			SpaceAfterPt: 14.4,
		},
		RoleDateSubtitle: {
			FontFamily:   "Times",
			FontStyle:    "I",
			SizePt:       11,
			LineHeightPt: 14,
			Alignment:    AlignCenter,
			SpaceAfterPt: 8,
		},
		RoleSectionHeader: {
			FontFamily:    "Times",
			FontStyle:     "B",
			SizePt:        13,
			LineHeightPt:  16,
			Alignment:     AlignLeft,
			SpaceBeforePt: 10,
			SpaceAfterPt:  4,
		},
		RoleQuoteSectionHeader: {
			FontFamily:    "Times",
			FontStyle:     "B",
			SizePt:        13,
			LineHeightPt:  16,
			Alignment:     AlignCenter,
			SpaceBeforePt: 16,
			SpaceAfterPt:  6,
		},
		RoleQuoteText: {
			FontFamily:    "Times",
			FontStyle:     "I",
			SizePt:        11,
			LineHeightPt:  15,
			Alignment:     AlignCenter,
			LeftIndentPt:  12,
			RightIndentPt: 12,
			SpaceAfterPt:  4,
		},
		RoleQuoteAttribution: {
			FontFamily:   "Times",
			SizePt:       10,
			LineHeightPt: 13,
			Alignment:    AlignCenter,
			SpaceAfterPt: 10,
		},
		RoleNumberedTitle: {
			FontFamily:    "Times",
			FontStyle:     "B",
			SizePt:        11,
			LineHeightPt:  14,
			Alignment:     AlignLeft,
			SpaceBeforePt: 6,
			SpaceAfterPt:  2,
		},
		RoleEmojiBody: {
			FontFamily:      "Times",
			SizePt:          10,
			LineHeightPt:    13,
			Alignment:       AlignLeft,
			SpaceAfterPt:    5.67,
			NeedsSymbolFont: true,
		},
		RoleBody: builtinBodyStyle,
	}
}
