package layout

import "strings"

// Wrap breaks text into lines using greedy first-fit word wrapping.
// widthOf must return the width of a string in the same unit as the
// budgets and must be total; budget gives the available width for each
// line index, which lets the first line carry an indent.
//
// Words are never split: a word wider than its line's budget stands alone
// and may overhang. Whitespace between words collapses to single spaces.
// Empty or whitespace-only text wraps to no lines.
func Wrap(text string, widthOf func(string) float64, budget func(line int) float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	spaceWidth := widthOf(" ")

	var lines []string
	current := words[0]
	currentWidth := widthOf(words[0])

	for _, word := range words[1:] {
		w := widthOf(word)
		if currentWidth+spaceWidth+w <= budget(len(lines)) {
			current += " " + word
			currentWidth += spaceWidth + w
			continue
		}
		lines = append(lines, current)
		current = word
		currentWidth = w
	}
	return append(lines, current)
}
