// Command gazette gathers the morning's news, weather, and quote of
// the day, sets them as a columned newspaper, and writes the edition
// as a PDF, optionally spooling it to a printer.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	"github.com/morningpress/gazette"
	"github.com/morningpress/gazette/feeds"
	"github.com/morningpress/gazette/model"
	"github.com/morningpress/gazette/press"
	"github.com/morningpress/gazette/printer"
	"github.com/morningpress/gazette/summary"
	"github.com/morningpress/gazette/weather"
)

func main() {
	// A local .env may carry OPENAI_API_KEY; a missing file is fine.
	_ = godotenv.Load()

	cmd := &cli.Command{
		Name:  "gazette",
		Usage: "Compose and print the Morning Press",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "out-dir",
				Usage: "Directory for finished editions",
				Value: "press",
			},
			&cli.IntFlag{
				Name:  "columns",
				Usage: "Columns per page",
				Value: 2,
			},
			&cli.StringFlag{
				Name:  "page-size",
				Usage: "Paper size (A4 or Letter)",
				Value: "A4",
			},
			&cli.StringFlag{
				Name:  "city",
				Usage: "City named in the weather line",
				Value: press.DefaultCity,
			},
			&cli.FloatFlag{
				Name:  "lat",
				Usage: "Weather latitude",
				Value: press.DefaultLat,
			},
			&cli.FloatFlag{
				Name:  "lon",
				Usage: "Weather longitude",
				Value: press.DefaultLon,
			},
			&cli.StringSliceFlag{
				Name:  "feed",
				Usage: "RSS section as NAME=URL, repeatable (default: Le Temps and RTS)",
			},
			&cli.IntFlag{
				Name:  "max-items",
				Usage: "Stories per section",
				Value: press.DefaultMaxItems,
			},
			&cli.StringFlag{
				Name:  "locale",
				Usage: "Language of the dated subtitle (fr or en)",
				Value: "fr",
			},
			&cli.StringFlag{
				Name:  "printer",
				Usage: "Print queue to spool the edition to (default: no printing)",
			},
			&cli.BoolFlag{
				Name:  "no-summarize",
				Usage: "Keep raw story text instead of summarizing",
			},
			&cli.StringFlag{
				Name:    "openai-key",
				Usage:   "OpenAI API key for summaries",
				Sources: cli.EnvVars("OPENAI_API_KEY"),
			},
			&cli.StringFlag{
				Name:  "symbol-font",
				Usage: "TTF font file for weather and quote symbols",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Log at debug level",
			},
		},
		Action: runEdition,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func runEdition(ctx context.Context, cmd *cli.Command) error {
	logger := newLogger(cmd.Bool("verbose"))

	paperName := cmd.String("page-size")
	paper, ok := model.PaperSizeByName(paperName)
	if !ok {
		return errors.Errorf("unknown page size %q", paperName)
	}

	sectionFeeds, err := parseFeeds(cmd.StringSlice("feed"))
	if err != nil {
		return err
	}

	var summarizer summary.Summarizer = summary.Noop{}
	switch key := cmd.String("openai-key"); {
	case cmd.Bool("no-summarize"):
		logger.Debug("summarization disabled")
	case key == "":
		logger.Info("no OpenAI key configured, stories keep their source text")
	default:
		summarizer = summary.NewOpenAI(key)
	}

	collector := &press.Collector{
		Weather: weather.NewClient(),
		Location: &press.Location{
			City: cmd.String("city"),
			Lat:  cmd.Float("lat"),
			Lon:  cmd.Float("lon"),
		},
		HackerNews:   feeds.NewHackerNews(),
		Feeds:        sectionFeeds,
		MaxItems:     int(cmd.Int("max-items")),
		Summarizer:   summarizer,
		IncludeQuote: true,
		Logger:       logger,
	}

	logger.Info("gathering edition", "sections", len(sectionFeeds)+1)
	edition, err := collector.Collect(ctx)
	if err != nil {
		return errors.Wrap(err, "gathering edition")
	}

	composer := gazette.Compose(
		press.Masthead,
		press.DateLine(edition.Generated, cmd.String("locale")),
		edition.Blocks(),
	).
		Columns(int(cmd.Int("columns"))).
		PageSize(paper)

	if fontPath := cmd.String("symbol-font"); fontPath != "" {
		data, err := os.ReadFile(fontPath)
		if err != nil {
			return errors.Wrap(err, "reading symbol font")
		}
		name := strings.TrimSuffix(filepath.Base(fontPath), filepath.Ext(fontPath))
		composer = composer.WithSymbolFont(name, data)
	}

	outDir := cmd.String("out-dir")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return errors.Wrap(err, "creating output directory")
	}
	outPath := filepath.Join(outDir,
		fmt.Sprintf("morning_press_%s.pdf", edition.Generated.Format("20060102_150405")))

	warnings, err := composer.WriteFile(outPath)
	if err != nil {
		return errors.Wrap(err, "writing edition")
	}
	for _, w := range warnings {
		logger.Warn("composition warning", "warning", w.String())
	}
	logger.Info("edition written", "path", outPath)

	if queue := cmd.String("printer"); queue != "" {
		if err := printer.Spool(ctx, outPath, queue); err != nil {
			logger.Error("printing failed", "error", err)
		} else {
			logger.Info("edition sent to printer", "printer", queue)
		}
	}

	return nil
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// parseFeeds turns repeated NAME=URL flags into feed sections, falling
// back to the built-in Swiss dailies.
func parseFeeds(entries []string) ([]press.NamedFeed, error) {
	if len(entries) == 0 {
		return press.DefaultFeeds(), nil
	}

	parsed := make([]press.NamedFeed, 0, len(entries))
	for _, entry := range entries {
		name, url, ok := strings.Cut(entry, "=")
		if !ok || name == "" || url == "" {
			return nil, errors.Errorf("feed %q is not in NAME=URL form", entry)
		}
		parsed = append(parsed, press.NamedFeed{Name: name, URL: url})
	}
	return parsed, nil
}
