package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/morningpress/gazette/press"
)

func TestParseFeeds(t *testing.T) {
	parsed, err := parseFeeds([]string{"Le Temps=https://www.letemps.ch/articles.rss"})
	require.NoError(t, err)
	require.Len(t, parsed, 1)
	assert.Equal(t, press.NamedFeed{
		Name: "Le Temps",
		URL:  "https://www.letemps.ch/articles.rss",
	}, parsed[0])
}

func TestParseFeedsDefaults(t *testing.T) {
	parsed, err := parseFeeds(nil)
	require.NoError(t, err)
	assert.Equal(t, press.DefaultFeeds(), parsed)
}

func TestParseFeedsMalformed(t *testing.T) {
	for _, entry := range []string{"letemps", "=https://x", "Le Temps="} {
		_, err := parseFeeds([]string{entry})
		require.Error(t, err, "entry %q", entry)
	}
}
