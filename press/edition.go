// Package press gathers one morning edition: the weather line, the
// news sections, and the closing quote, flattened into the block
// sequence the composer sets in columns.
package press

import (
	"fmt"
	"strings"
	"time"

	"github.com/morningpress/gazette/quotes"
)

const (
	// Masthead is the paper's name.
	Masthead = "Morning Press"

	// SectionRuleWidth is the length of the dashed rule under a section
	// banner.
	SectionRuleWidth = 40

	// SummaryLabel and DiscussionLabel introduce a story's texts in
	// labeled sections.
	SummaryLabel    = "Article Summary:"
	DiscussionLabel = "Discussion Analysis:"

	// QuoteBanner opens the closing quote section.
	QuoteBanner = "CITATION DU JOUR"
)

// Story is one article: its title and the texts that follow it.
type Story struct {
	Title      string
	Summary    string
	Discussion string
}

// Section is a named run of stories.
type Section struct {
	// Name is the banner text, e.g. "HACKER NEWS - TOP STORIES".
	Name string

	Stories []Story

	// Labeled emits the summary and discussion labels before each
	// story's texts. Discussion-driven sections set it; plain headline
	// feeds do not.
	Labeled bool
}

// Edition is one morning's gathered content.
type Edition struct {
	Generated   time.Time
	WeatherLine string
	Sections    []Section
	Quote       *quotes.Quote
}

// Blocks flattens the edition into the sequence handed to the
// composer: the weather line, each section as its banner, dashed rule,
// and numbered stories, then the closing quote. Empty blocks separate
// the pieces and are skipped during classification.
func (e *Edition) Blocks() []string {
	var blocks []string

	if e.WeatherLine != "" {
		blocks = append(blocks, e.WeatherLine, "")
	}

	for _, section := range e.Sections {
		blocks = append(blocks, section.Name, strings.Repeat("-", SectionRuleWidth))
		for i, story := range section.Stories {
			blocks = append(blocks, fmt.Sprintf("%d. %s", i+1, story.Title))
			if story.Summary != "" {
				blocks = append(blocks, "")
				if section.Labeled {
					blocks = append(blocks, SummaryLabel)
				}
				blocks = append(blocks, story.Summary)
			}
			if story.Discussion != "" {
				blocks = append(blocks, "")
				if section.Labeled {
					blocks = append(blocks, DiscussionLabel)
				}
				blocks = append(blocks, story.Discussion)
			}
			blocks = append(blocks, "")
		}
	}

	if e.Quote != nil {
		blocks = append(blocks,
			QuoteBanner,
			fmt.Sprintf("❝ %s ❞", e.Quote.Text),
			fmt.Sprintf("— %s", e.Quote.Author),
		)
	}

	return blocks
}
