package feeds

import (
	"context"

	"github.com/mmcdole/gofeed"
	"github.com/pkg/errors"
)

// Headline is one RSS or Atom entry reduced to its text.
type Headline struct {
	Title       string
	Description string
}

// FetchHeadlines returns up to limit entries of a feed in document
// order. Titles and descriptions arrive as plain text with markup
// stripped.
func FetchHeadlines(ctx context.Context, feedURL string, limit int) ([]Headline, error) {
	feed, err := gofeed.NewParser().ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing feed %s", feedURL)
	}

	items := feed.Items
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	headlines := make([]Headline, 0, len(items))
	for _, it := range items {
		headlines = append(headlines, Headline{
			Title:       StripHTML(it.Title),
			Description: StripHTML(it.Description),
		})
	}
	return headlines, nil
}
