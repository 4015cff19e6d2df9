package technical

import (
	"math"

	"github.com/seenimoa/finsight/internal/analysis/stats"
	"github.com/seenimoa/finsight/pkg/models"
	"github.com/seenimoa/finsight/pkg/utils"
)

// AnalyzePrice summarizes a daily price history. Bars are taken in the order
// given, oldest first. It returns nil when there are fewer than two bars.
func AnalyzePrice(bars models.PriceSeriesPayload, ticker string) *models.PriceSummary {
	if len(bars) < 2 {
		return nil
	}

	latest := bars[len(bars)-1]
	previous := bars[len(bars)-2]
	start := bars[0]
	s := columns(bars)

	returns := stats.DailyReturns(s.closes)
	avgPrice := stats.Mean(s.closes)
	avgVolume := stats.Mean(s.volumes)
	vol := stats.Volatility(returns)

	periodHigh := stats.Max(s.highs)
	periodLow := stats.Min(s.lows)
	closeNow := latest.Close.Float()
	volumeNow := latest.Volume.Float()

	trend := "Downtrend"
	if closeNow > avgPrice {
		trend = "Uptrend"
	}

	return &models.PriceSummary{
		DataType: models.LabelPriceAction,
		Ticker:   ticker,
		CurrentState: models.PriceState{
			Price:       utils.ToFixed(closeNow, 2),
			DailyChange: utils.ToFixed(stats.PercentChange(closeNow, previous.Close.Float()), 2),
			Volume:      models.Number(volumeNow),
			VolumeVsAvg: utils.ToFixed((volumeNow/avgVolume-1)*100, 2),
			DayRange: models.PriceBand{
				Low:  utils.ToFixed(latest.Low.Float(), 2),
				High: utils.ToFixed(latest.High.Float(), 2),
			},
		},
		PerformanceMetrics: models.PerformanceMetrics{
			PeriodReturn: utils.ToFixed(stats.PercentChange(closeNow, start.Close.Float()), 2),
			Volatility:   utils.ToFixed(vol.Annualized, 2),
			PriceRange: models.PriceRange{
				High:   utils.ToFixed(periodHigh, 2),
				Low:    utils.ToFixed(periodLow, 2),
				Spread: utils.ToFixed((periodHigh-periodLow)/periodLow*100, 2),
			},
		},
		TechnicalIndicators: models.PriceIndicators{
			TrendDirection: trend,
			PriceLocation: models.PriceLocation{
				FromHigh: utils.ToFixed((periodHigh-closeNow)/periodHigh*100, 2),
				FromLow:  utils.ToFixed((closeNow-periodLow)/periodLow*100, 2),
			},
			VolumeProfile: aboveAverage(volumeNow, avgVolume),
			Momentum:      momentum(returns, stats.MomentumLookback),
		},
		TradingActivity: models.PriceActivity{
			AverageVolume: models.Number(math.Floor(avgVolume + 0.5)),
			AveragePrice:  utils.ToFixed(avgPrice, 2),
			VolumeRange: models.VolumeRange{
				Max: models.Number(stats.Max(s.volumes)),
				Min: models.Number(stats.Min(s.volumes)),
			},
		},
		Timeframe: models.SeriesTimeframe{
			Start:       start.Date.ISO(),
			End:         latest.Date.ISO(),
			TradingDays: len(bars),
		},
	}
}
