package feeds

import (
	"context"
	"io"
	"net/http"

	"github.com/pkg/errors"
)

// DefaultArticleLimit caps how much article text is kept for
// summarization.
const DefaultArticleLimit = 4000

// maxArticleBytes bounds the raw download. Markup inflates pages far
// beyond their text, so this sits well above the text limit.
const maxArticleBytes = 1 << 20

// FetchArticle downloads a page and reduces it to at most limit runes
// of plain text. A nil client uses a default with a 10 second timeout;
// limit <= 0 keeps all text.
func FetchArticle(ctx context.Context, client *http.Client, url string, limit int) (string, error) {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", errors.Wrap(err, "building article request")
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "fetching article")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("article fetch: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxArticleBytes))
	if err != nil {
		return "", errors.Wrap(err, "reading article")
	}

	text := StripHTML(string(body))
	if limit > 0 {
		if runes := []rune(text); len(runes) > limit {
			text = string(runes[:limit])
		}
	}
	return text, nil
}
