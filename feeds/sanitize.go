package feeds

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

// StripHTML reduces an HTML fragment to plain text: tags dropped,
// entities resolved, whitespace collapsed to single spaces, and the
// result NFC-normalized so accented characters arrive precomposed.
// Script, style, and similar non-content elements are removed
// wholesale.
func StripHTML(s string) string {
	if strings.ContainsAny(s, "<&") {
		if doc, err := html.Parse(strings.NewReader(s)); err == nil {
			var sb strings.Builder
			collectText(doc, &sb)
			s = sb.String()
		}
	}
	return norm.NFC.String(strings.Join(strings.Fields(s), " "))
}

// skippedElement reports elements whose content never counts as text.
func skippedElement(tag string) bool {
	switch tag {
	case "head", "script", "style", "noscript", "template", "svg", "math", "iframe", "object", "embed":
		return true
	}
	return false
}

func collectText(n *html.Node, sb *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(n.Data)
		return
	case html.ElementNode:
		if skippedElement(n.Data) {
			return
		}
		if n.Data == "br" {
			sb.WriteByte(' ')
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
	if n.Type == html.ElementNode {
		switch n.Data {
		case "p", "div", "li", "tr", "h1", "h2", "h3", "h4", "h5", "h6", "blockquote":
			// Block elements separate their text from what follows.
			sb.WriteByte(' ')
		}
	}
}
