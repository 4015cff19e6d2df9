package sentiment

import (
	"math"

	"github.com/seenimoa/finsight/internal/analysis/stats"
	"github.com/seenimoa/finsight/pkg/models"
	"github.com/seenimoa/finsight/pkg/utils"
)

// AnalyzeRecommendations summarizes analyst rating counts. The last period
// in the payload is treated as the latest and the one before it as the
// previous period. It returns nil when there are no periods.
func AnalyzeRecommendations(p models.RecommendationsPayload, ticker string) *models.RecommendationSummary {
	if len(p.Period) == 0 {
		return nil
	}

	periods := make([]stats.RatingCounts, len(p.Period))
	for i := range p.Period {
		periods[i] = stats.RatingCounts{
			StrongBuy:  at(p.StrongBuy, i),
			Buy:        at(p.Buy, i),
			Hold:       at(p.Hold, i),
			Sell:       at(p.Sell, i),
			StrongSell: at(p.StrongSell, i),
		}
	}

	latest := periods[len(periods)-1]
	total := latest.Total()
	score := stats.WeightedSentimentScore(latest)

	share := func(count float64) string { return utils.ToFixed(count/total*100, 1) }
	dist := models.RatingBreakdown{
		StrongBuy:  models.RatingShare{Count: models.Number(latest.StrongBuy), Percentage: share(latest.StrongBuy)},
		Buy:        models.RatingShare{Count: models.Number(latest.Buy), Percentage: share(latest.Buy)},
		Hold:       models.RatingShare{Count: models.Number(latest.Hold), Percentage: share(latest.Hold)},
		Sell:       models.RatingShare{Count: models.Number(latest.Sell), Percentage: share(latest.Sell)},
		StrongSell: models.RatingShare{Count: models.Number(latest.StrongSell), Percentage: share(latest.StrongSell)},
	}

	pct := func(count float64) float64 { return utils.RoundTo(count/total*100, 1) }
	bullish := pct(latest.StrongBuy) + pct(latest.Buy)
	bearish := pct(latest.Sell) + pct(latest.StrongSell)

	var scoreChange, coverageChange, shift *string
	if len(periods) > 1 {
		previous := periods[len(periods)-2]
		prevScore := stats.WeightedSentimentScore(previous)
		coverageChange = ptr(utils.ToFixed(stats.PercentChange(total, previous.Total()), 1))
		// A previous score of zero has no direction to compare against.
		if stats.Meaningful(prevScore) {
			scoreChange = ptr(utils.ToFixed(score-prevScore, 2))
			shift = ptr(consensusShift(score, prevScore))
		}
	}

	conviction := "Moderate"
	if math.Abs(score) > stats.StrongConviction {
		conviction = "Strong"
	}
	strength := "Mixed"
	if math.Abs(bullish-bearish) > stats.ConsensusSpread {
		strength = "Strong"
	}

	return &models.RecommendationSummary{
		DataType: models.LabelRecommendations,
		Ticker:   ticker,
		CurrentConsensus: models.Consensus{
			TotalAnalysts:   models.Number(total),
			SentimentScore:  utils.ToFixed(score, 2),
			ScoreChange:     scoreChange,
			ConsensusRating: consensusRating(bullish, bearish),
		},
		RecommendationBreakdown: dist,
		SentimentMetrics: models.RatingSentiment{
			BullishPercentage: utils.ToFixed(bullish, 1),
			BearishPercentage: utils.ToFixed(bearish, 1),
			NeutralPercentage: dist.Hold.Percentage,
			Conviction:        conviction,
		},
		TrendAnalysis: models.RatingTrend{
			CoverageChange:    coverageChange,
			ConsensusShift:    shift,
			ConsensusStrength: strength,
		},
		Timeframe: models.PeriodTimeframe{
			StartPeriod:     p.Period[0],
			EndPeriod:       p.Period[len(p.Period)-1],
			PeriodsAnalyzed: len(p.Period),
		},
	}
}

func consensusRating(bullish, bearish float64) string {
	switch {
	case bullish > stats.StrongConsensus:
		return "Strong Buy"
	case bullish > stats.ModerateConsensus:
		return "Buy"
	case bearish > stats.StrongConsensus:
		return "Strong Sell"
	case bearish > stats.ModerateConsensus:
		return "Sell"
	default:
		return "Hold"
	}
}

func consensusShift(current, previous float64) string {
	switch {
	case current > previous:
		return "Improving"
	case current < previous:
		return "Deteriorating"
	default:
		return "Stable"
	}
}

// at returns counts[i], or 0 past the end of a short array.
func at(counts []models.Num, i int) float64 {
	if i >= len(counts) {
		return 0
	}
	return counts[i].Float()
}

func ptr(s string) *string { return &s }
