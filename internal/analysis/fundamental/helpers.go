package fundamental

import (
	"github.com/seenimoa/finsight/internal/analysis/stats"
	"github.com/seenimoa/finsight/pkg/models"
	"github.com/seenimoa/finsight/pkg/utils"
)

// span picks the latest, previous and oldest reports. With a single report
// all three are the same. reports must not be empty.
func span(reports []models.AnnualReport) (latest, previous, oldest models.AnnualReport) {
	latest = reports[0]
	previous = latest
	if len(reports) > 1 {
		previous = reports[1]
	}
	oldest = reports[len(reports)-1]
	return latest, previous, oldest
}

// billions converts an amount to billions rounded to cents.
func billions(n models.Num) float64 {
	return utils.RoundTo(n.Float()/stats.Billion, 2)
}

func percent(v float64, digits int) string {
	return utils.FormatPercent(utils.ToFixed(v, digits))
}

// band classifies v against two descending thresholds.
func band(v, high, moderate float64, hi, mid, lo string) string {
	switch {
	case v > high:
		return hi
	case v > moderate:
		return mid
	default:
		return lo
	}
}

func tickerOr(ticker, symbol string) string {
	if ticker != "" {
		return ticker
	}
	return symbol
}
