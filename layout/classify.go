package layout

import (
	"strings"
	"unicode"

	"github.com/morningpress/gazette/model"
)

// SectionContext carries what classification has seen so far: the active
// section banner, if any. It is threaded by value through Classify calls
// so a shared classifier stays stateless.
type SectionContext struct {
	// Section is the most recent section banner text, or "".
	Section string

	// InQuote reports that the active section is the quote section.
	InQuote bool
}

// Classification is the outcome for one block: its role and the text to
// lay out, with any classification marker already stripped.
type Classification struct {
	Role model.Role
	Text string
}

// ClassifierConfig contains configuration for block classification
type ClassifierConfig struct {
	// QuoteSectionName is the reserved banner that opens the quote
	// section. It matches exactly, dash or no dash.
	// Default: "CITATION DU JOUR"
	QuoteSectionName string

	// QuoteLeader is the prefix marking quoted text inside the quote
	// section. Default: "❝"
	QuoteLeader string

	// AttributionLeader is the prefix marking the author line inside the
	// quote section. Default: "—"
	AttributionLeader string

	// MaxTitleRank is the highest rank matched as a numbered title,
	// between 1 and 9. Default: 5
	MaxTitleRank int
}

// DefaultClassifierConfig returns the default classification configuration
func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		QuoteSectionName:  "CITATION DU JOUR",
		QuoteLeader:       "❝",
		AttributionLeader: "—",
		MaxTitleRank:      5,
	}
}

// Classifier assigns a role to each content block using an ordered rule
// table. First match wins; a block no rule claims is body text.
type Classifier struct {
	config ClassifierConfig
	rules  []classifyRule
}

// classifyRule inspects one block. ok reports whether the rule claimed it.
type classifyRule func(text string, ctx SectionContext) (Classification, SectionContext, bool)

// NewClassifier creates a classifier with default configuration
func NewClassifier() *Classifier {
	return NewClassifierWithConfig(DefaultClassifierConfig())
}

// NewClassifierWithConfig creates a classifier with custom configuration
func NewClassifierWithConfig(config ClassifierConfig) *Classifier {
	if config.MaxTitleRank < 1 || config.MaxTitleRank > 9 {
		config.MaxTitleRank = DefaultClassifierConfig().MaxTitleRank
	}
	c := &Classifier{config: config}

	// Order is significant: the quote leader glyph is also pictographic,
	// so quote rules must run before the emoji rule.
	c.rules = []classifyRule{
		c.matchBlank,
		c.matchSectionHeader,
		c.matchQuoteText,
		c.matchQuoteAttribution,
		c.matchNumberedTitle,
		c.matchEmojiBody,
	}
	return c
}

// Classify assigns a role to one block and returns the updated section
// context. It is total: every input maps to exactly one role.
func (c *Classifier) Classify(text string, ctx SectionContext) (Classification, SectionContext) {
	for _, rule := range c.rules {
		if cls, next, ok := rule(text, ctx); ok {
			return cls, next
		}
	}
	return Classification{Role: model.RoleBody, Text: text}, ctx
}

func (c *Classifier) matchBlank(text string, ctx SectionContext) (Classification, SectionContext, bool) {
	if strings.TrimSpace(text) != "" {
		return Classification{}, ctx, false
	}
	return Classification{Role: model.RoleBlank, Text: text}, ctx, true
}

func (c *Classifier) matchSectionHeader(text string, ctx SectionContext) (Classification, SectionContext, bool) {
	if text == c.config.QuoteSectionName {
		next := SectionContext{Section: text, InQuote: true}
		return Classification{Role: model.RoleQuoteSectionHeader, Text: text}, next, true
	}
	if isUpperWithDash(text) {
		next := SectionContext{Section: text}
		return Classification{Role: model.RoleSectionHeader, Text: text}, next, true
	}
	return Classification{}, ctx, false
}

func (c *Classifier) matchQuoteText(text string, ctx SectionContext) (Classification, SectionContext, bool) {
	if !ctx.InQuote || !strings.HasPrefix(text, c.config.QuoteLeader) {
		return Classification{}, ctx, false
	}
	return Classification{Role: model.RoleQuoteText, Text: text}, ctx, true
}

func (c *Classifier) matchQuoteAttribution(text string, ctx SectionContext) (Classification, SectionContext, bool) {
	if !ctx.InQuote || !strings.HasPrefix(text, c.config.AttributionLeader) {
		return Classification{}, ctx, false
	}
	return Classification{Role: model.RoleQuoteAttribution, Text: text}, ctx, true
}

func (c *Classifier) matchNumberedTitle(text string, ctx SectionContext) (Classification, SectionContext, bool) {
	if len(text) < 4 {
		return Classification{}, ctx, false
	}
	rank := text[0]
	if rank < '1' || rank > byte('0'+c.config.MaxTitleRank) {
		return Classification{}, ctx, false
	}
	if text[1] != '.' || text[2] != ' ' {
		return Classification{}, ctx, false
	}
	title := strings.TrimSpace(text[3:])
	if title == "" {
		return Classification{}, ctx, false
	}
	return Classification{Role: model.RoleNumberedTitle, Text: title}, ctx, true
}

func (c *Classifier) matchEmojiBody(text string, ctx SectionContext) (Classification, SectionContext, bool) {
	for _, r := range text {
		if unicode.Is(pictographs, r) {
			return Classification{Role: model.RoleEmojiBody, Text: text}, ctx, true
		}
	}
	return Classification{}, ctx, false
}

// isUpperWithDash reports whether text looks like a section banner: at
// least one letter, no lowercase letters, and a dash somewhere. The
// letter requirement keeps pure divider lines ("----") as body text.
func isUpperWithDash(text string) bool {
	if !strings.Contains(text, "-") {
		return false
	}
	hasLetter := false
	for _, r := range text {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

// pictographs covers the symbol blocks that mark a block as emoji-bearing
// body text. The dingbat range includes the quote leader glyph, which is
// why quote rules run first.
var pictographs = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x2600, Hi: 0x26FF, Stride: 1}, // Miscellaneous Symbols
		{Lo: 0x2700, Hi: 0x27BF, Stride: 1}, // Dingbats
	},
	R32: []unicode.Range32{
		{Lo: 0x1F300, Hi: 0x1F5FF, Stride: 1}, // Misc Symbols and Pictographs
		{Lo: 0x1F600, Hi: 0x1F64F, Stride: 1}, // Emoticons
		{Lo: 0x1F680, Hi: 0x1F6FF, Stride: 1}, // Transport and Map Symbols
		{Lo: 0x1F900, Hi: 0x1F9FF, Stride: 1}, // Supplemental Symbols and Pictographs
		{Lo: 0x1FA70, Hi: 0x1FAFF, Stride: 1}, // Symbols and Pictographs Extended-A
	},
}
