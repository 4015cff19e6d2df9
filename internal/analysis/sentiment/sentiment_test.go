package sentiment

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/seenimoa/finsight/pkg/models"
)

// ── Headline scorer ──

func TestScoreHeadlineBullish(t *testing.T) {
	score, conf := ScoreHeadline("Apple shares rally 5% on strong growth and positive results")
	if score <= 0 {
		t.Errorf("expected positive score for bullish headline, got %.4f", score)
	}
	if conf <= 0 {
		t.Errorf("expected positive confidence, got %.4f", conf)
	}
}

func TestScoreHeadlineBearish(t *testing.T) {
	score, conf := ScoreHeadline("Market crash: stocks plunge amid fraud investigation concerns")
	if score >= 0 {
		t.Errorf("expected negative score for bearish headline, got %.4f", score)
	}
	if conf <= 0 {
		t.Errorf("expected positive confidence, got %.4f", conf)
	}
}

func TestScoreHeadlineNeutral(t *testing.T) {
	score, conf := ScoreHeadline("Company announces new office location in Austin")
	if score != 0 {
		t.Errorf("expected zero score for neutral headline, got %.4f", score)
	}
	if conf > 0.2 {
		t.Errorf("expected low confidence for neutral, got %.4f", conf)
	}
}

func TestScoreHeadlineDeterministic(t *testing.T) {
	text := "Strong profit growth and buyback offset downgrade warning"
	first, _ := ScoreHeadline(text)
	for i := 0; i < 50; i++ {
		if got, _ := ScoreHeadline(text); got != first {
			t.Fatalf("score changed between calls: %v vs %v", got, first)
		}
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0.6, "Bullish"},
		{0.35, "Bullish"},
		{0.2, "Somewhat-Bullish"},
		{0.15, "Somewhat-Bullish"},
		{0.0, "Neutral"},
		{-0.1, "Neutral"},
		{-0.15, "Somewhat-Bearish"},
		{-0.35, "Bearish"},
		{-0.9, "Bearish"},
	}
	for _, tt := range tests {
		if got := Label(tt.score); got != tt.want {
			t.Errorf("Label(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestScoreText(t *testing.T) {
	if got := ScoreText("Stocks surge to record high in bullish rally"); Label(got) != "Bullish" {
		t.Errorf("ScoreText bullish = %v (%s)", got, Label(got))
	}
	if got := ScoreText("Quarterly report published"); got != 0 {
		t.Errorf("ScoreText neutral = %v, want 0", got)
	}
}

// ── News sentiment ──

func score(v float64) *models.Num {
	n := models.Num(v)
	return &n
}

func sampleFeed() models.NewsFeedPayload {
	return models.NewsFeedPayload{Feed: []models.NewsItem{
		{
			Title: "Middle", TimePublished: "20250104T000000", Source: "Reuters",
			OverallSentimentLabel: "Somewhat-Bullish", OverallSentimentScore: score(0.4),
			Topics: []models.NewsTopic{{Topic: "Earnings", RelevanceScore: 0.5}},
		},
		{
			Title: "Oldest", TimePublished: "20250103T120000", Source: "Benzinga",
			OverallSentimentLabel: "Bullish", OverallSentimentScore: score(0.6),
			Summary: "<p>Big <b>news</b> today</p>",
			Topics:  []models.NewsTopic{{Topic: "Technology", RelevanceScore: 1}, {Topic: "Earnings", RelevanceScore: 0.3}},
		},
		{
			Title: "Newest", TimePublished: "20250105T090000", Source: "Reuters",
			OverallSentimentLabel: "Bullish", OverallSentimentScore: score(0.5),
			Topics: []models.NewsTopic{{Topic: "Technology", RelevanceScore: 0.5}, {Topic: "Earnings", RelevanceScore: 1}},
		},
	}}
}

func TestAnalyzeNewsScenario(t *testing.T) {
	p := sampleFeed()
	s := AnalyzeNews(p, "AAPL")
	if s == nil {
		t.Fatal("AnalyzeNews returned nil")
	}
	if s.SentimentMetrics.Average != "0.50" {
		t.Errorf("average: got %q, want 0.50", s.SentimentMetrics.Average)
	}
	if s.SentimentMetrics.CurrentTrend != "Bullish" {
		t.Errorf("currentTrend: got %q, want Bullish", s.SentimentMetrics.CurrentTrend)
	}
	if s.Timeframe.End != "20250105T090000" || s.Timeframe.Start != "20250103T120000" {
		t.Errorf("timeframe: got %+v", s.Timeframe)
	}
	if s.LatestInsight.Headline != "Newest" || s.LatestInsight.Sentiment != "bullish" {
		t.Errorf("latestInsight: got %+v", s.LatestInsight)
	}
	if s.Coverage.TotalSources != 2 || s.Coverage.VolumeLevel != "Low" {
		t.Errorf("coverage: got %+v", s.Coverage)
	}

	var titles []string
	for _, h := range s.KeyHighlights {
		titles = append(titles, h.Title)
	}
	if got := strings.Join(titles, ","); got != "Newest,Middle,Oldest" {
		t.Errorf("highlights order: %s", got)
	}
	if s.KeyHighlights[0].Published != "2025-01-05T09:00:00.000Z" {
		t.Errorf("published: got %q", s.KeyHighlights[0].Published)
	}
	if s.KeyHighlights[2].Excerpt != "Big news today" {
		t.Errorf("excerpt: got %q", s.KeyHighlights[2].Excerpt)
	}
	if s.KeyHighlights[0].Sentiment != "Bullish" {
		t.Errorf("highlight sentiment keeps provider label, got %q", s.KeyHighlights[0].Sentiment)
	}

	dist, _ := json.Marshal(s.SentimentMetrics.Distribution)
	if string(dist) != `{"bullish":2,"somewhat-bullish":1}` {
		t.Errorf("distribution: got %s", dist)
	}

	if len(s.TopTopics) != 2 {
		t.Fatalf("topTopics: got %d, want 2", len(s.TopTopics))
	}
	if s.TopTopics[0].Topic != "Earnings" || s.TopTopics[0].Count != 3 {
		t.Errorf("top topic: got %+v", s.TopTopics[0])
	}
	if s.TopTopics[1].Topic != "Technology" || s.TopTopics[1].AverageRelevance != 0.75 {
		t.Errorf("second topic: got %+v", s.TopTopics[1])
	}

	// The caller's feed keeps its order.
	if p.Feed[0].Title != "Middle" {
		t.Errorf("input feed was reordered: first title %q", p.Feed[0].Title)
	}
}

func TestAnalyzeNewsEmpty(t *testing.T) {
	if s := AnalyzeNews(models.NewsFeedPayload{}, ""); s != nil {
		t.Errorf("expected nil for empty feed, got %+v", s)
	}
}

func TestAnalyzeNewsScores(t *testing.T) {
	tests := []struct {
		name    string
		scores  []*models.Num
		average string
		trend   string
	}{
		{"zero score ignored", []*models.Num{score(0.6), score(0)}, "0.60", "Bullish"},
		{"missing scores ignored", []*models.Num{nil, score(-0.5), nil}, "-0.50", "Bearish"},
		{"no scores", []*models.Num{nil, nil}, "0.00", "Neutral"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p models.NewsFeedPayload
			for _, sc := range tt.scores {
				p.Feed = append(p.Feed, models.NewsItem{Title: "x", OverallSentimentScore: sc})
			}
			s := AnalyzeNews(p, "")
			if s.SentimentMetrics.Average != tt.average {
				t.Errorf("average: got %q, want %q", s.SentimentMetrics.Average, tt.average)
			}
			if s.SentimentMetrics.CurrentTrend != tt.trend {
				t.Errorf("trend: got %q, want %q", s.SentimentMetrics.CurrentTrend, tt.trend)
			}
		})
	}
}

func TestAnalyzeNewsUnparseableLast(t *testing.T) {
	p := models.NewsFeedPayload{Feed: []models.NewsItem{
		{Title: "undated-1", TimePublished: "soon"},
		{Title: "dated", TimePublished: "20240101T0930"},
		{Title: "undated-2"},
	}}
	s := AnalyzeNews(p, "")
	var titles []string
	for _, h := range s.KeyHighlights {
		titles = append(titles, h.Title)
	}
	if got := strings.Join(titles, ","); got != "dated,undated-1,undated-2" {
		t.Errorf("order: %s", got)
	}
	if s.LatestInsight.Sentiment != "neutral" {
		t.Errorf("missing label should read neutral, got %q", s.LatestInsight.Sentiment)
	}
}

func TestAnalyzeNewsVolumeLevels(t *testing.T) {
	for _, tc := range []struct {
		n    int
		want string
	}{{5, "Low"}, {6, "Moderate"}, {10, "Moderate"}, {11, "High"}} {
		var p models.NewsFeedPayload
		for i := 0; i < tc.n; i++ {
			p.Feed = append(p.Feed, models.NewsItem{Title: "x"})
		}
		if got := AnalyzeNews(p, "").Coverage.VolumeLevel; got != tc.want {
			t.Errorf("%d articles: got %q, want %q", tc.n, got, tc.want)
		}
	}
}

func TestAnalyzeNewsWithoutExcerpts(t *testing.T) {
	s := AnalyzeNewsWith(sampleFeed(), "", NewsOptions{})
	for _, h := range s.KeyHighlights {
		if h.Excerpt != "" {
			t.Errorf("expected no excerpt, got %q", h.Excerpt)
		}
	}
}

// ── Analyst recommendations ──

func TestAnalyzeRecommendations(t *testing.T) {
	p := models.RecommendationsPayload{
		Period:     []string{"-1m", "0m"},
		StrongBuy:  []models.Num{2, 5},
		Buy:        []models.Num{3, 10},
		Hold:       []models.Num{5, 4},
		Sell:       []models.Num{0, 1},
		StrongSell: []models.Num{0, 0},
	}
	s := AnalyzeRecommendations(p, "AAPL")
	if s == nil {
		t.Fatal("AnalyzeRecommendations returned nil")
	}

	c := s.CurrentConsensus
	if c.TotalAnalysts != 20 || c.SentimentScore != "0.95" || c.ConsensusRating != "Strong Buy" {
		t.Errorf("consensus: got %+v", c)
	}
	if c.ScoreChange == nil || *c.ScoreChange != "0.25" {
		t.Errorf("scoreChange: got %v, want 0.25", c.ScoreChange)
	}

	b := s.RecommendationBreakdown
	for name, got := range map[string]string{
		"strongBuy": b.StrongBuy.Percentage, "buy": b.Buy.Percentage, "hold": b.Hold.Percentage,
		"sell": b.Sell.Percentage, "strongSell": b.StrongSell.Percentage,
	} {
		want := map[string]string{"strongBuy": "25.0", "buy": "50.0", "hold": "20.0", "sell": "5.0", "strongSell": "0.0"}[name]
		if got != want {
			t.Errorf("%s percentage: got %q, want %q", name, got, want)
		}
	}

	m := s.SentimentMetrics
	if m.BullishPercentage != "75.0" || m.BearishPercentage != "5.0" || m.NeutralPercentage != "20.0" || m.Conviction != "Moderate" {
		t.Errorf("sentimentMetrics: got %+v", m)
	}

	tr := s.TrendAnalysis
	if tr.CoverageChange == nil || *tr.CoverageChange != "100.0" {
		t.Errorf("coverageChange: got %v", tr.CoverageChange)
	}
	if tr.ConsensusShift == nil || *tr.ConsensusShift != "Improving" {
		t.Errorf("consensusShift: got %v", tr.ConsensusShift)
	}
	if tr.ConsensusStrength != "Strong" {
		t.Errorf("consensusStrength: got %q", tr.ConsensusStrength)
	}
	if s.Timeframe.StartPeriod != "-1m" || s.Timeframe.EndPeriod != "0m" || s.Timeframe.PeriodsAnalyzed != 2 {
		t.Errorf("timeframe: got %+v", s.Timeframe)
	}
}

func TestAnalyzeRecommendationsSinglePeriod(t *testing.T) {
	p := models.RecommendationsPayload{
		Period:     []string{"0m"},
		StrongBuy:  []models.Num{0},
		Buy:        []models.Num{1},
		Hold:       []models.Num{2},
		Sell:       []models.Num{3},
		StrongSell: []models.Num{4},
	}
	s := AnalyzeRecommendations(p, "")
	if s.CurrentConsensus.ScoreChange != nil || s.TrendAnalysis.CoverageChange != nil || s.TrendAnalysis.ConsensusShift != nil {
		t.Error("trend fields should be null without a previous period")
	}
	if s.CurrentConsensus.ConsensusRating != "Strong Sell" {
		t.Errorf("rating: got %q, want Strong Sell", s.CurrentConsensus.ConsensusRating)
	}
	if s.CurrentConsensus.SentimentScore != "-1.00" || s.SentimentMetrics.Conviction != "Moderate" {
		t.Errorf("score/conviction: got %q / %q", s.CurrentConsensus.SentimentScore, s.SentimentMetrics.Conviction)
	}

	b, _ := json.Marshal(s)
	if !strings.Contains(string(b), `"scoreChange":null`) {
		t.Errorf("scoreChange should serialize as null: %s", b)
	}
}

func TestAnalyzeRecommendationsZeroPreviousScore(t *testing.T) {
	p := models.RecommendationsPayload{
		Period: []string{"-1m", "0m"},
		Buy:    []models.Num{1, 2},
		Sell:   []models.Num{1, 0},
	}
	s := AnalyzeRecommendations(p, "")
	if s.CurrentConsensus.ScoreChange != nil {
		t.Errorf("scoreChange after a zero previous score: got %q, want null", *s.CurrentConsensus.ScoreChange)
	}
	if s.TrendAnalysis.ConsensusShift != nil {
		t.Errorf("consensusShift after a zero previous score: got %q, want null", *s.TrendAnalysis.ConsensusShift)
	}
	if s.TrendAnalysis.CoverageChange == nil || *s.TrendAnalysis.CoverageChange != "0.0" {
		t.Errorf("coverageChange: got %v, want 0.0", s.TrendAnalysis.CoverageChange)
	}
}

func TestAnalyzeRecommendationsNoRatings(t *testing.T) {
	p := models.RecommendationsPayload{Period: []string{"0m"}}
	s := AnalyzeRecommendations(p, "")
	if s == nil {
		t.Fatal("expected a summary for a period without ratings")
	}
	if s.CurrentConsensus.SentimentScore != "0.00" {
		t.Errorf("score: got %q, want 0.00", s.CurrentConsensus.SentimentScore)
	}
	if s.RecommendationBreakdown.Buy.Percentage != "NaN" {
		t.Errorf("percentage: got %q, want NaN", s.RecommendationBreakdown.Buy.Percentage)
	}
	if s.CurrentConsensus.ConsensusRating != "Hold" {
		t.Errorf("rating: got %q, want Hold", s.CurrentConsensus.ConsensusRating)
	}
}

func TestAnalyzeRecommendationsEmpty(t *testing.T) {
	if s := AnalyzeRecommendations(models.RecommendationsPayload{}, ""); s != nil {
		t.Errorf("expected nil, got %+v", s)
	}
}
