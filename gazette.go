// Package gazette provides a fluent API for composing newspaper-style
// paged documents from plain content blocks.
//
// Basic usage:
//
//	doc, warnings, err := gazette.Compose("Morning Press", dateLine, blocks).Document()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", gazette.FormatWarnings(warnings))
//	}
//
// With options:
//
//	warnings, err := gazette.Compose("Morning Press", dateLine, blocks).
//	    Columns(3).
//	    PageSize(model.Letter).
//	    WriteFile("edition.pdf")
//
// For advanced use cases, the lower-level layout, model, and render
// packages are also available.
package gazette

// Compose starts a composition from a masthead title, a dated subtitle,
// and the content blocks in reading order. Front matter is styled as-is;
// each block is classified by its text shape before it is flowed into
// columns.
//
// Example:
//
//	doc, warnings, err := gazette.Compose("Morning Press", dateLine, blocks).Document()
func Compose(masthead, dateLine string, blocks []string) *Composer {
	return &Composer{
		masthead: masthead,
		dateLine: dateLine,
		blocks:   append([]string(nil), blocks...),
		options:  defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	count := gazette.Must(gazette.Compose(title, date, blocks).PageCount())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustDocument is a helper that wraps a call to Document() or Text() and
// panics if the error is non-nil. It discards warnings and returns just
// the value. It is intended for use in scripts or tests where error
// handling would be cumbersome.
//
// Example:
//
//	doc := gazette.MustDocument(gazette.Compose(title, date, blocks).Document())
func MustDocument[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
