package gazette

import (
	"strings"

	"github.com/morningpress/gazette/model"
)

// Warning is a non-fatal problem reported by a terminal operation. It is
// an alias for model.Warning so typical callers never import the model
// package just to inspect warnings.
type Warning = model.Warning

// FormatWarnings joins warnings into a single string for logging.
//
// Example:
//
//	doc, warnings, err := gazette.Compose(title, date, blocks).Document()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", gazette.FormatWarnings(warnings))
//	}
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
