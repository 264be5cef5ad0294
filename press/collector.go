package press

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/morningpress/gazette/feeds"
	"github.com/morningpress/gazette/quotes"
	"github.com/morningpress/gazette/summary"
	"github.com/morningpress/gazette/weather"
)

// Defaults for the Morges edition.
const (
	DefaultCity = "Morges"
	DefaultLat  = 46.5167
	DefaultLon  = 6.4833

	// DefaultMaxItems caps stories per section.
	DefaultMaxItems = 5

	// DefaultMaxComments caps discussion comments read per story.
	DefaultMaxComments = 3
)

// Location is a place a weather report is tied to.
type Location struct {
	// City names the place in the printed weather line.
	City string
	Lat  float64
	Lon  float64
}

// DefaultLocation returns the Morges edition's location.
func DefaultLocation() Location {
	return Location{City: DefaultCity, Lat: DefaultLat, Lon: DefaultLon}
}

// NamedFeed couples a section title with its RSS URL.
type NamedFeed struct {
	// Name titles the section; it is uppercased into the banner.
	Name string
	URL  string
}

// DefaultFeeds returns the Swiss dailies of the original press run.
func DefaultFeeds() []NamedFeed {
	return []NamedFeed{
		{Name: "Le Temps", URL: "https://www.letemps.ch/articles.rss"},
		{Name: "RTS", URL: "https://www.rts.ch/info/rss"},
	}
}

// Collector gathers one edition from its sources. Sources run
// concurrently and fail independently: a source that errors is logged
// and yields no section, the edition itself is still produced.
type Collector struct {
	// Weather supplies the front-page conditions line. nil skips it.
	Weather *weather.Client

	// Location ties the weather report to a place. nil means Morges; a
	// set location is taken as given, zero coordinates included.
	Location *Location

	// HackerNews leads the news sections when set.
	HackerNews *feeds.HackerNews

	// Feeds follow in order, one section each.
	Feeds []NamedFeed

	// MaxItems caps stories per section. Default: DefaultMaxItems.
	MaxItems int

	// MaxComments caps discussion comments read per story.
	// Default: DefaultMaxComments.
	MaxComments int

	// Summarizer rewrites story texts. nil passes them through.
	Summarizer summary.Summarizer

	// IncludeQuote closes the edition with the quote of the day.
	IncludeQuote bool

	// Logger records source failures. nil discards them.
	Logger *slog.Logger

	// Now supplies the edition timestamp. nil means time.Now.
	Now func() time.Time
}

// Collect fetches every source and assembles the edition. The only
// fatal condition is a canceled context.
func (c *Collector) Collect(ctx context.Context) (*Edition, error) {
	now := time.Now()
	if c.Now != nil {
		now = c.Now()
	}

	var (
		weatherLine  string
		leadSection  *Section
		feedSections = make([]*Section, len(c.Feeds))
	)

	g, gctx := errgroup.WithContext(ctx)

	if c.Weather != nil {
		g.Go(func() error {
			loc := c.location()
			report, err := c.Weather.Current(gctx, loc.Lat, loc.Lon)
			if err != nil {
				c.logger().Warn("weather fetch failed", "error", err)
				weatherLine = weather.NotFoundLine
				return nil
			}
			weatherLine = report.Describe(loc.City)
			return nil
		})
	}

	if c.HackerNews != nil {
		g.Go(func() error {
			section, err := c.collectHackerNews(gctx)
			if err != nil {
				c.logger().Warn("hacker news fetch failed", "error", err)
				return nil
			}
			leadSection = section
			return nil
		})
	}

	for i, f := range c.Feeds {
		i, f := i, f
		g.Go(func() error {
			section, err := c.collectFeed(gctx, f)
			if err != nil {
				c.logger().Warn("feed fetch failed", "feed", f.Name, "error", err)
				return nil
			}
			feedSections[i] = section
			return nil
		})
	}

	// Workers report failures through the log, never through their
	// return value, so only cancellation can surface here.
	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	edition := &Edition{Generated: now, WeatherLine: weatherLine}
	if leadSection != nil && len(leadSection.Stories) > 0 {
		edition.Sections = append(edition.Sections, *leadSection)
	}
	for _, section := range feedSections {
		if section != nil && len(section.Stories) > 0 {
			edition.Sections = append(edition.Sections, *section)
		}
	}
	if c.IncludeQuote {
		q := quotes.Daily(now)
		edition.Quote = &q
	}
	return edition, nil
}

func (c *Collector) collectHackerNews(ctx context.Context) (*Section, error) {
	items, err := c.HackerNews.TopStories(ctx, c.maxItems())
	if err != nil {
		return nil, err
	}

	stories := make([]Story, 0, len(items))
	for _, item := range items {
		story := Story{Title: item.Title}

		// Self-posts link their own discussion page; there is no
		// article to fetch for those.
		if !strings.HasPrefix(item.URL, "https://news.ycombinator.com/") {
			body, err := feeds.FetchArticle(ctx, c.HackerNews.Client, item.URL, feeds.DefaultArticleLimit)
			if err != nil {
				c.logger().Debug("article fetch failed", "url", item.URL, "error", err)
			} else if body != "" {
				story.Summary = c.summarize(ctx, body)
			}
		}

		comments, err := c.HackerNews.Comments(ctx, item, c.maxComments())
		if err != nil {
			c.logger().Debug("comment fetch failed", "story", item.ID, "error", err)
		} else if len(comments) > 0 {
			story.Discussion = c.summarize(ctx,
				"Analyze these top comments from the discussion:\n\n"+strings.Join(comments, "\n"))
		}

		stories = append(stories, story)
	}

	return &Section{Name: banner("Hacker News"), Stories: stories, Labeled: true}, nil
}

func (c *Collector) collectFeed(ctx context.Context, f NamedFeed) (*Section, error) {
	headlines, err := feeds.FetchHeadlines(ctx, f.URL, c.maxItems())
	if err != nil {
		return nil, err
	}

	stories := make([]Story, 0, len(headlines))
	for _, h := range headlines {
		story := Story{Title: h.Title}
		if h.Description != "" {
			story.Summary = c.summarize(ctx, h.Description)
		}
		stories = append(stories, story)
	}

	return &Section{Name: banner(f.Name), Stories: stories}, nil
}

// banner renders a section name in its printed form.
func banner(name string) string {
	return strings.ToUpper(name) + " - TOP STORIES"
}

// summarize rewrites text through the configured summarizer, keeping
// the original text when the rewrite fails.
func (c *Collector) summarize(ctx context.Context, text string) string {
	if c.Summarizer == nil {
		return text
	}
	out, err := c.Summarizer.Summarize(ctx, text)
	if err != nil {
		c.logger().Warn("summarization failed", "error", err)
		return text
	}
	return out
}

func (c *Collector) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (c *Collector) location() Location {
	if c.Location != nil {
		return *c.Location
	}
	return DefaultLocation()
}

func (c *Collector) maxItems() int {
	if c.MaxItems > 0 {
		return c.MaxItems
	}
	return DefaultMaxItems
}

func (c *Collector) maxComments() int {
	if c.MaxComments > 0 {
		return c.MaxComments
	}
	return DefaultMaxComments
}
