package model

// Role classifies a content block for styling and placement. Every block
// receives exactly one role; the zero value is RoleBody so an unclassified
// block still renders as running text.
type Role int

const (
	// RoleBody is running paragraph text
	RoleBody Role = iota
	// RoleBlank is an empty or whitespace-only block; never placed
	RoleBlank
	// RoleMasthead is the newspaper title line
	RoleMasthead
	// RoleDateSubtitle is the date line under the masthead
	RoleDateSubtitle
	// RoleSectionHeader is an uppercase section banner
	RoleSectionHeader
	// RoleQuoteSectionHeader is the quote-of-the-day section banner
	RoleQuoteSectionHeader
	// RoleQuoteText is the quoted sentence inside the quote section
	RoleQuoteText
	// RoleQuoteAttribution is the author line inside the quote section
	RoleQuoteAttribution
	// RoleNumberedTitle is a ranked story title ("1." through "5.")
	RoleNumberedTitle
	// RoleEmojiBody is body text carrying pictographic glyphs
	RoleEmojiBody
)

// String returns a string representation of the role
func (r Role) String() string {
	switch r {
	case RoleBody:
		return "body"
	case RoleBlank:
		return "blank"
	case RoleMasthead:
		return "masthead"
	case RoleDateSubtitle:
		return "date-subtitle"
	case RoleSectionHeader:
		return "section-header"
	case RoleQuoteSectionHeader:
		return "quote-section-header"
	case RoleQuoteText:
		return "quote-text"
	case RoleQuoteAttribution:
		return "quote-attribution"
	case RoleNumberedTitle:
		return "numbered-title"
	case RoleEmojiBody:
		return "emoji-body"
	default:
		return "unknown"
	}
}

// Placeable reports whether blocks of this role occupy space on a page.
// Blank blocks are classified but never placed.
func (r Role) Placeable() bool {
	return r != RoleBlank
}
