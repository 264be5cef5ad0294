// Package quotes carries the built-in pool of French aphorisms that
// closes each edition.
package quotes

import (
	"math/rand"
	"time"
)

// Quote is one aphorism with its author.
type Quote struct {
	Text   string
	Author string
}

// builtin is the rotation pool. Daily walks it by calendar day.
var builtin = []Quote{
	{"Le cœur a ses raisons que la raison ne connaît point.", "Blaise Pascal"},
	{"Il faut cultiver notre jardin.", "Voltaire"},
	{"Je pense, donc je suis.", "René Descartes"},
	{"Rien ne sert de courir ; il faut partir à point.", "Jean de La Fontaine"},
	{"L'enfer, c'est les autres.", "Jean-Paul Sartre"},
	{"On ne voit bien qu'avec le cœur. L'essentiel est invisible pour les yeux.", "Antoine de Saint-Exupéry"},
	{"La culture, c'est ce qui reste quand on a tout oublié.", "Édouard Herriot"},
	{"Impossible n'est pas français.", "Napoléon Bonaparte"},
	{"Le temps est un grand maître, il règle bien des choses.", "Pierre Corneille"},
	{"On ne naît pas femme : on le devient.", "Simone de Beauvoir"},
	{"La vraie générosité envers l'avenir consiste à tout donner au présent.", "Albert Camus"},
	{"Le doute est le commencement de la sagesse.", "Aristote"},
}

// Daily returns the quote for a calendar day. The pick is stable within
// a day and rotates with the date.
func Daily(t time.Time) Quote {
	index := (t.Year()*366 + t.YearDay()) % len(builtin)
	return builtin[index]
}

// Random returns a quote drawn from r.
func Random(r *rand.Rand) Quote {
	return builtin[r.Intn(len(builtin))]
}

// All returns a copy of the pool.
func All() []Quote {
	out := make([]Quote, len(builtin))
	copy(out, builtin)
	return out
}
