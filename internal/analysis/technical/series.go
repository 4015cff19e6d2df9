// Package technical analyzes daily price histories: price action summaries,
// chart-level technical indicators and moving averages.
package technical

import (
	"github.com/seenimoa/finsight/internal/analysis/stats"
	"github.com/seenimoa/finsight/pkg/models"
)

// series is the column view of a price history.
type series struct {
	opens, highs, lows, closes, volumes []float64
}

func columns(bars []models.PriceBar) series {
	s := series{
		opens:   make([]float64, len(bars)),
		highs:   make([]float64, len(bars)),
		lows:    make([]float64, len(bars)),
		closes:  make([]float64, len(bars)),
		volumes: make([]float64, len(bars)),
	}
	for i, b := range bars {
		s.opens[i] = b.Open.Float()
		s.highs[i] = b.High.Float()
		s.lows[i] = b.Low.Float()
		s.closes[i] = b.Close.Float()
		s.volumes[i] = b.Volume.Float()
	}
	return s
}

func aboveAverage(v, avg float64) string {
	if v > avg {
		return "Above Average"
	}
	return "Below Average"
}

func momentum(returns []float64, lookback int) string {
	if stats.Sum(stats.Tail(returns, lookback)) > 0 {
		return "Positive"
	}
	return "Negative"
}
