package feeds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text", "Bonjour le monde", "Bonjour le monde"},
		{"tags dropped", "<p>Un <b>grand</b> titre</p>", "Un grand titre"},
		{"entities resolved", "Caf&eacute; &amp; th&eacute;", "Café & thé"},
		{"script removed", "<p>Avant</p><script>alert(1)</script><p>Après</p>", "Avant Après"},
		{"style removed", "<style>p{color:red}</style>Texte", "Texte"},
		{"whitespace collapsed", "  Un\n\ttexte   aéré  ", "Un texte aéré"},
		{"line breaks spaced", "ligne une<br>ligne deux", "ligne une ligne deux"},
		{"nested blocks", "<div><p>Premier</p><p>Second</p></div>", "Premier Second"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripHTML(tt.in))
		})
	}
}

func TestStripHTMLNormalizesToNFC(t *testing.T) {
	// "e" plus combining acute arrives decomposed from some feeds.
	in := "rédaction"
	assert.Equal(t, "rédaction", StripHTML(in))
}
