// Package sentiment analyzes news sentiment feeds and analyst
// recommendation trends, and scores headlines offline.
package sentiment

import (
	"slices"
	"strings"
	"time"

	"github.com/seenimoa/finsight/internal/analysis/stats"
	"github.com/seenimoa/finsight/pkg/models"
	"github.com/seenimoa/finsight/pkg/utils"
)

// NewsOptions tunes the news analyzer.
type NewsOptions struct {
	// ExcerptLength caps highlight excerpts, in runes. Zero omits excerpts.
	ExcerptLength int
}

// DefaultNewsOptions returns the options AnalyzeNews uses.
func DefaultNewsOptions() NewsOptions {
	return NewsOptions{ExcerptLength: stats.ExcerptRunes}
}

// AnalyzeNews summarizes a news sentiment feed with default options.
func AnalyzeNews(p models.NewsFeedPayload, ticker string) *models.NewsSentimentSummary {
	return AnalyzeNewsWith(p, ticker, DefaultNewsOptions())
}

// AnalyzeNewsWith summarizes a news sentiment feed: label and source
// distributions, average provider score, most recent headlines and the most
// frequent topics. Articles are ordered newest first; the payload itself is
// not reordered. It returns nil for an empty feed.
func AnalyzeNewsWith(p models.NewsFeedPayload, ticker string, opts NewsOptions) *models.NewsSentimentSummary {
	if len(p.Feed) == 0 {
		return nil
	}

	feed := newestFirst(p.Feed)

	labels := models.NewTally()
	sources := models.NewTally()
	var scores []float64
	for _, item := range feed {
		labels.Inc(normalizedLabel(item.OverallSentimentLabel))
		sources.Inc(item.Source)
		if item.OverallSentimentScore == nil {
			continue
		}
		if v := item.OverallSentimentScore.Float(); stats.Meaningful(v) {
			scores = append(scores, v)
		}
	}

	avg := stats.SafeDiv(stats.Sum(scores), float64(len(scores)), 0)
	latest := feed[0]

	return &models.NewsSentimentSummary{
		DataType: models.LabelNewsSentiment,
		Ticker:   ticker,
		Timeframe: models.NewsTimeframe{
			Start:    feed[len(feed)-1].TimePublished,
			End:      latest.TimePublished,
			Articles: len(feed),
		},
		SentimentMetrics: models.NewsSentimentMetrics{
			Average:      utils.ToFixed(avg, 2),
			Distribution: labels,
			CurrentTrend: newsTrend(avg),
		},
		Coverage: models.NewsCoverage{
			TotalSources:       sources.Len(),
			SourceDistribution: sources,
			VolumeLevel:        newsVolume(len(feed)),
		},
		LatestInsight: models.NewsInsight{
			Headline:  latest.Title,
			Sentiment: normalizedLabel(latest.OverallSentimentLabel),
			Source:    latest.Source,
		},
		KeyHighlights: highlights(feed, opts),
		TopTopics:     topTopics(feed, stats.NewsTopTopics),
	}
}

// newestFirst returns a copy of feed stably sorted by publication time,
// newest first. Items with an unparseable timestamp go last in their
// original relative order.
func newestFirst(feed []models.NewsItem) []models.NewsItem {
	type dated struct {
		item models.NewsItem
		at   time.Time
		ok   bool
	}
	rows := make([]dated, len(feed))
	for i, item := range feed {
		at, ok := utils.ParseCompactTimestamp(item.TimePublished)
		rows[i] = dated{item, at, ok}
	}
	slices.SortStableFunc(rows, func(a, b dated) int {
		switch {
		case a.ok && !b.ok:
			return -1
		case !a.ok && b.ok:
			return 1
		case !a.ok && !b.ok:
			return 0
		}
		return b.at.Compare(a.at)
	})

	out := make([]models.NewsItem, len(rows))
	for i, r := range rows {
		out[i] = r.item
	}
	return out
}

func normalizedLabel(label string) string {
	if label == "" {
		return "neutral"
	}
	return strings.ToLower(label)
}

func newsTrend(avg float64) string {
	switch {
	case avg > stats.BullishSentiment:
		return "Bullish"
	case avg < stats.BearishSentiment:
		return "Bearish"
	default:
		return "Neutral"
	}
}

func newsVolume(articles int) string {
	switch {
	case articles > stats.HighNewsVolume:
		return "High"
	case articles > stats.ModerateNewsVolume:
		return "Moderate"
	default:
		return "Low"
	}
}

func highlights(feed []models.NewsItem, opts NewsOptions) []models.NewsHighlight {
	n := min(len(feed), stats.NewsHighlights)
	out := make([]models.NewsHighlight, 0, n)
	for _, item := range feed[:n] {
		h := models.NewsHighlight{
			Title:     item.Title,
			Sentiment: item.OverallSentimentLabel,
			Source:    item.Source,
		}
		if at, ok := utils.ParseCompactTimestamp(item.TimePublished); ok {
			h.Published = utils.FormatISO(at)
		}
		if opts.ExcerptLength > 0 {
			h.Excerpt = utils.Truncate(utils.StripHTML(item.Summary), opts.ExcerptLength)
		}
		out = append(out, h)
	}
	return out
}

// topTopics counts topic tags across the feed and returns the limit most
// frequent, ties broken by first appearance.
func topTopics(feed []models.NewsItem, limit int) []models.TopicFrequency {
	type acc struct {
		topic     string
		count     int
		relevance float64
	}
	var order []*acc
	byTopic := make(map[string]*acc)
	for _, item := range feed {
		for _, t := range item.Topics {
			if t.Topic == "" {
				continue
			}
			a, ok := byTopic[t.Topic]
			if !ok {
				a = &acc{topic: t.Topic}
				byTopic[t.Topic] = a
				order = append(order, a)
			}
			a.count++
			a.relevance += t.RelevanceScore.Float()
		}
	}

	slices.SortStableFunc(order, func(a, b *acc) int { return b.count - a.count })
	if len(order) > limit {
		order = order[:limit]
	}

	out := make([]models.TopicFrequency, 0, len(order))
	for _, a := range order {
		out = append(out, models.TopicFrequency{
			Topic:            a.topic,
			Count:            a.count,
			AverageRelevance: models.Number(utils.RoundTo(a.relevance/float64(a.count), 4)),
		})
	}
	return out
}
