package press

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/morningpress/gazette/quotes"
)

func TestEditionBlocks(t *testing.T) {
	q := quotes.Quote{Text: "Il faut cultiver notre jardin.", Author: "Voltaire"}
	ed := &Edition{
		WeatherLine: "Weather in Morges: 21.4°C, Partly cloudy",
		Sections: []Section{
			{
				Name:    "HACKER NEWS - TOP STORIES",
				Labeled: true,
				Stories: []Story{
					{Title: "Go 1.25 released", Summary: "Un résumé.", Discussion: "Une analyse."},
					{Title: "Show HN: a tiny press"},
				},
			},
			{
				Name: "LE TEMPS - TOP STORIES",
				Stories: []Story{
					{Title: "Un été caniculaire", Summary: "La Suisse transpire."},
				},
			},
		},
		Quote: &q,
	}

	want := []string{
		"Weather in Morges: 21.4°C, Partly cloudy",
		"",
		"HACKER NEWS - TOP STORIES",
		strings.Repeat("-", SectionRuleWidth),
		"1. Go 1.25 released",
		"",
		"Article Summary:",
		"Un résumé.",
		"",
		"Discussion Analysis:",
		"Une analyse.",
		"",
		"2. Show HN: a tiny press",
		"",
		"LE TEMPS - TOP STORIES",
		strings.Repeat("-", SectionRuleWidth),
		"1. Un été caniculaire",
		"",
		"La Suisse transpire.",
		"",
		"CITATION DU JOUR",
		"❝ Il faut cultiver notre jardin. ❞",
		"— Voltaire",
	}
	assert.Equal(t, want, ed.Blocks())
}

func TestEditionBlocksUnlabeledSection(t *testing.T) {
	ed := &Edition{
		Sections: []Section{
			{
				Name:    "RTS - TOP STORIES",
				Stories: []Story{{Title: "Une annonce", Summary: "Le détail."}},
			},
		},
	}

	blocks := ed.Blocks()
	assert.NotContains(t, blocks, SummaryLabel)
	assert.Contains(t, blocks, "Le détail.")
}

func TestEditionBlocksEmpty(t *testing.T) {
	ed := &Edition{}
	assert.Empty(t, ed.Blocks())
}

func TestEditionBlocksWeatherOnly(t *testing.T) {
	ed := &Edition{WeatherLine: "Weather in Morges: 3°C, Overcast"}
	assert.Equal(t, []string{"Weather in Morges: 3°C, Overcast", ""}, ed.Blocks())
}
