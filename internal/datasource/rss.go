// Package datasource converts local news documents into provider-shaped
// payloads. Nothing here touches the network: feeds are read from files or
// readers supplied by the caller.
package datasource

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mmcdole/gofeed"

	"github.com/seenimoa/finsight/internal/analysis/sentiment"
	"github.com/seenimoa/finsight/pkg/models"
	"github.com/seenimoa/finsight/pkg/utils"
)

// topicRelevance is assigned to every RSS category, which carries no score.
const topicRelevance = 1.0

// NewsFeed turns RSS or Atom documents into news sentiment payloads,
// labeling each article with the offline headline scorer.
type NewsFeed struct {
	parser *gofeed.Parser
	source string
}

// NewNewsFeed creates a feed reader. An empty source falls back to the
// feed's own title.
func NewNewsFeed(source string) *NewsFeed {
	return &NewsFeed{
		parser: gofeed.NewParser(),
		source: strings.TrimSpace(source),
	}
}

// Parse reads an RSS/Atom document.
func (n *NewsFeed) Parse(r io.Reader) (models.NewsFeedPayload, error) {
	feed, err := n.parser.Parse(r)
	if err != nil {
		return models.NewsFeedPayload{}, fmt.Errorf("parse feed: %w", err)
	}
	return n.convert(feed), nil
}

// ParseString reads an RSS/Atom document held in memory.
func (n *NewsFeed) ParseString(doc string) (models.NewsFeedPayload, error) {
	return n.Parse(strings.NewReader(doc))
}

// ParseFile reads an RSS/Atom document from disk.
func (n *NewsFeed) ParseFile(path string) (models.NewsFeedPayload, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.NewsFeedPayload{}, fmt.Errorf("open feed %s: %w", path, err)
	}
	defer f.Close()
	return n.Parse(f)
}

func (n *NewsFeed) convert(feed *gofeed.Feed) models.NewsFeedPayload {
	source := n.source
	if source == "" {
		source = strings.TrimSpace(feed.Title)
	}

	items := make([]models.NewsItem, 0, len(feed.Items))
	for _, it := range feed.Items {
		items = append(items, toNewsItem(it, source))
	}
	return models.NewsFeedPayload{
		Items: strconv.Itoa(len(items)),
		Feed:  items,
	}
}

func toNewsItem(it *gofeed.Item, source string) models.NewsItem {
	title := strings.TrimSpace(it.Title)
	summary := utils.StripHTML(it.Description)
	if summary == "" {
		summary = utils.StripHTML(it.Content)
	}

	score := models.Num(utils.RoundTo(sentiment.ScoreText(title), 6))
	item := models.NewsItem{
		Title:                 title,
		URL:                   it.Link,
		Summary:               summary,
		Source:                source,
		OverallSentimentScore: &score,
		OverallSentimentLabel: sentiment.Label(score.Float()),
		Topics:                make([]models.NewsTopic, 0, len(it.Categories)),
	}

	switch {
	case it.PublishedParsed != nil:
		item.TimePublished = utils.FormatCompactTimestamp(*it.PublishedParsed)
	case it.UpdatedParsed != nil:
		item.TimePublished = utils.FormatCompactTimestamp(*it.UpdatedParsed)
	}

	for _, c := range it.Categories {
		if c = strings.TrimSpace(c); c != "" {
			item.Topics = append(item.Topics, models.NewsTopic{Topic: c, RelevanceScore: topicRelevance})
		}
	}
	return item
}

// FilterByTicker keeps the articles whose title or summary mention the
// ticker, case-insensitively. An empty ticker keeps everything.
func FilterByTicker(p models.NewsFeedPayload, ticker string) models.NewsFeedPayload {
	t := strings.ToLower(strings.TrimSpace(ticker))
	if t == "" {
		return p
	}

	var filtered []models.NewsItem
	for _, it := range p.Feed {
		if strings.Contains(strings.ToLower(it.Title+" "+it.Summary), t) {
			filtered = append(filtered, it)
		}
	}
	return models.NewsFeedPayload{
		Items: strconv.Itoa(len(filtered)),
		Feed:  filtered,
	}
}
