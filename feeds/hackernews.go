// Package feeds fetches the press's news sources: Hacker News stories
// with their discussion threads, and RSS headlines. Fetched text is
// stripped of markup before it reaches the page.
package feeds

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

// DefaultHackerNewsBaseURL is the public Hacker News API root.
const DefaultHackerNewsBaseURL = "https://hacker-news.firebaseio.com/v0"

// DefaultTimeout bounds each fetch.
const DefaultTimeout = 10 * time.Second

// HackerNews is a client for the Hacker News item API. The zero value
// uses the public API with a default timeout.
type HackerNews struct {
	// BaseURL is the API root without a trailing slash.
	// Default: DefaultHackerNewsBaseURL.
	BaseURL string

	// Client is the HTTP client used for requests. Default: a client
	// with a 10 second timeout.
	Client *http.Client
}

// NewHackerNews creates a client for the public API.
func NewHackerNews() *HackerNews {
	return &HackerNews{
		BaseURL: DefaultHackerNewsBaseURL,
		Client:  &http.Client{Timeout: DefaultTimeout},
	}
}

// Item is one Hacker News story.
type Item struct {
	ID    int
	Title string

	// URL is the story's outbound link, or its discussion page when the
	// story has no link of its own.
	URL string

	// CommentIDs are the top-level comment IDs in rank order.
	CommentIDs []int
}

// apiItem mirrors the item endpoint's JSON shape.
type apiItem struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
	Text  string `json:"text"`
	Kids  []int  `json:"kids"`
}

// TopStories returns up to limit front-page stories in rank order.
func (h *HackerNews) TopStories(ctx context.Context, limit int) ([]Item, error) {
	var ids []int
	if err := h.getJSON(ctx, "/topstories.json", &ids); err != nil {
		return nil, errors.Wrap(err, "fetching top stories")
	}
	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}

	items := make([]Item, 0, len(ids))
	for _, id := range ids {
		var it apiItem
		if err := h.getJSON(ctx, fmt.Sprintf("/item/%d.json", id), &it); err != nil {
			return nil, errors.Wrapf(err, "fetching story %d", id)
		}
		title := it.Title
		if title == "" {
			title = "No Title"
		}
		url := it.URL
		if url == "" {
			url = fmt.Sprintf("https://news.ycombinator.com/item?id=%d", id)
		}
		items = append(items, Item{ID: id, Title: title, URL: url, CommentIDs: it.Kids})
	}
	return items, nil
}

// Comments returns the plain text of up to limit top-level comments on
// it. Comments that cannot be fetched or carry no text are skipped.
func (h *HackerNews) Comments(ctx context.Context, it Item, limit int) ([]string, error) {
	ids := it.CommentIDs
	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}

	var comments []string
	for _, id := range ids {
		var c apiItem
		if err := h.getJSON(ctx, fmt.Sprintf("/item/%d.json", id), &c); err != nil {
			if ctx.Err() != nil {
				return comments, ctx.Err()
			}
			continue
		}
		if text := StripHTML(c.Text); text != "" {
			comments = append(comments, text)
		}
	}
	return comments, nil
}

func (h *HackerNews) getJSON(ctx context.Context, path string, v any) error {
	base := h.BaseURL
	if base == "" {
		base = DefaultHackerNewsBaseURL
	}
	client := h.Client
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+path, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(v)
}
