package technical

import (
	"math"

	"github.com/seenimoa/finsight/internal/analysis/stats"
	"github.com/seenimoa/finsight/pkg/models"
	"github.com/seenimoa/finsight/pkg/utils"
)

// AnalyzeStockGraph produces the technical view of a chart price history:
// prices rounded to cents, volume in millions, 5 and 20 period moving
// averages and return volatility. It returns nil when there are fewer than
// two bars. Without a full 20-bar window the long average is NaN, which
// reads as a downtrend with "NaN" ratios.
func AnalyzeStockGraph(bars models.StockGraphPayload, ticker string) *models.StockGraphSummary {
	if len(bars) < 2 {
		return nil
	}

	raw := columns(bars)
	closes := make([]float64, len(bars))
	highs := make([]float64, len(bars))
	lows := make([]float64, len(bars))
	volumes := make([]float64, len(bars))
	for i := range bars {
		closes[i] = utils.RoundTo(raw.closes[i], 2)
		highs[i] = utils.RoundTo(raw.highs[i], 2)
		lows[i] = utils.RoundTo(raw.lows[i], 2)
		volumes[i] = raw.volumes[i] / stats.Million
	}

	n := len(bars)
	closeNow, closePrev, closeStart := closes[n-1], closes[n-2], closes[0]
	highNow, lowNow, volumeNow := highs[n-1], lows[n-1], volumes[n-1]

	ma5 := stats.Last(RoundedSMA(closes, stats.ShortMAWindow, 2))
	ma20 := stats.Last(RoundedSMA(closes, stats.LongMAWindow, 2))

	returns := stats.DailyReturns(closes)
	vol := stats.Volatility(returns)
	avgVolume := stats.Mean(volumes)

	periodHigh := stats.Max(highs)
	periodLow := stats.Min(lows)

	trend := "Downtrend"
	if closeNow > ma20 {
		trend = "Uptrend"
	}
	strength := "Weak"
	if math.Abs(closeNow/ma20-1) > stats.TrendStrength {
		strength = "Strong"
	}
	regime := "Normal"
	if vol.Annualized > stats.HighVolatility {
		regime = "High Risk"
	}

	return &models.StockGraphSummary{
		DataType: models.LabelTechnicalPrice,
		Ticker:   ticker,
		CurrentState: models.GraphState{
			Price: models.Number(closeNow),
			PriceChange: models.PriceChange{
				Daily: utils.ToFixed(stats.PercentChange(closeNow, closePrev), 2),
				Total: utils.ToFixed(stats.PercentChange(closeNow, closeStart), 2),
			},
			DayRange: models.GraphDayRange{
				High:   models.Number(highNow),
				Low:    models.Number(lowNow),
				Spread: utils.ToFixed((highNow-lowNow)/lowNow*100, 2),
			},
			Volume: models.GraphVolume{
				Current:  utils.ToFixed(volumeNow, 2),
				AvgDaily: utils.ToFixed(avgVolume, 2),
			},
		},
		TechnicalIndicators: models.GraphIndicators{
			MovingAverages: models.MovingAverages{
				MA5:         models.Number(ma5),
				MA20:        models.Number(ma20),
				PriceToMA5:  utils.ToFixed((closeNow/ma5-1)*100, 2),
				PriceToMA20: utils.ToFixed((closeNow/ma20-1)*100, 2),
			},
			Volatility: models.VolatilityReading{
				Daily:          models.Number(vol.Daily * 100),
				Annualized:     models.Number(vol.Annualized),
				Interpretation: volatilityBand(vol.Annualized),
			},
			Momentum: momentum(returns, stats.MomentumLookback),
		},
		PriceRange: models.GraphPriceRange{
			High:   models.Number(periodHigh),
			Low:    models.Number(periodLow),
			Spread: utils.ToFixed((periodHigh-periodLow)/periodLow*100, 2),
		},
		Analysis: models.GraphAnalysis{
			Trend:            trend,
			Strength:         strength,
			VolatilityRegime: regime,
			VolumeProfile:    aboveAverage(volumeNow, avgVolume),
		},
		Timeframe: models.GraphTimeframe{
			Start:       bars[0].Date,
			End:         bars[n-1].Date,
			TradingDays: n,
		},
	}
}

func volatilityBand(annualized float64) string {
	switch {
	case annualized > stats.HighVolatility:
		return "High"
	case annualized > stats.ModerateVolatility:
		return "Moderate"
	default:
		return "Low"
	}
}
