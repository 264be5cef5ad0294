package press

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

// dateLocales are the subtitle languages, English first as the
// fallback.
var dateLocales = []language.Tag{
	language.English,
	language.French,
}

var dateMatcher = language.NewMatcher(dateLocales)

var frenchWeekdays = [...]string{
	"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi",
}

var frenchMonths = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// DateLine renders the dated subtitle under the masthead in the
// closest supported language. Unrecognized locales fall back to
// English.
//
// Example:
//
//	DateLine(day, "fr")  // "Édition du jeudi 21 août 2025"
//	DateLine(day, "en")  // "Edition of Thursday, August 21, 2025"
func DateLine(t time.Time, locale string) string {
	_, index := language.MatchStrings(dateMatcher, locale)
	if dateLocales[index] == language.French {
		return fmt.Sprintf("Édition du %s %d %s %d",
			frenchWeekdays[t.Weekday()], t.Day(), frenchMonths[t.Month()-1], t.Year())
	}
	return fmt.Sprintf("Edition of %s, %s %d, %d",
		t.Weekday(), t.Month(), t.Day(), t.Year())
}
