// Package stats holds the numeric helpers and named constants shared by the
// analyzers. Undefined results (division by zero, empty input) are returned
// as IEEE NaN or ±Inf and are never intercepted here.
package stats

import "math"

// PercentChange returns (curr-prev)/prev*100. A zero prev yields ±Inf or NaN.
func PercentChange(curr, prev float64) float64 {
	return (curr - prev) / prev * 100
}

// CAGR returns the compound annual growth rate in percent over years
// periods. It is NaN when start <= 0 or years == 0.
func CAGR(end, start float64, years int) float64 {
	if start <= 0 || years == 0 {
		return math.NaN()
	}
	return (math.Pow(end/start, 1/float64(years)) - 1) * 100
}

// DailyReturns returns the fractional change between consecutive values.
func DailyReturns(closes []float64) []float64 {
	if len(closes) < 2 {
		return nil
	}
	out := make([]float64, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		out[i-1] = (closes[i] - closes[i-1]) / closes[i-1]
	}
	return out
}

// VolatilityStats describes the dispersion of a return series.
type VolatilityStats struct {
	MeanReturn float64
	Variance   float64
	Daily      float64 // standard deviation of daily returns
	Annualized float64 // Daily * sqrt(252) * 100
}

// Volatility computes the population variance of returns about their mean
// and annualizes the daily standard deviation. Empty input yields NaN.
func Volatility(returns []float64) VolatilityStats {
	mean := Mean(returns)
	sq := 0.0
	for _, r := range returns {
		d := r - mean
		sq += d * d
	}
	variance := sq / float64(len(returns))
	daily := math.Sqrt(variance)
	return VolatilityStats{
		MeanReturn: mean,
		Variance:   variance,
		Daily:      daily,
		Annualized: daily * math.Sqrt(TradingDaysPerYear) * 100,
	}
}

// RatingCounts are the analyst rating counts of one period.
type RatingCounts struct {
	StrongBuy  float64
	Buy        float64
	Hold       float64
	Sell       float64
	StrongSell float64
}

// Total returns the number of ratings.
func (c RatingCounts) Total() float64 {
	return c.StrongBuy + c.Buy + c.Hold + c.Sell + c.StrongSell
}

// WeightedSentimentScore maps rating counts onto [-2, 2]. It returns 0 when
// there are no ratings.
func WeightedSentimentScore(c RatingCounts) float64 {
	total := c.Total()
	if total == 0 {
		return 0
	}
	weighted := c.StrongBuy*WeightStrongBuy +
		c.Buy*WeightBuy +
		c.Hold*WeightHold +
		c.Sell*WeightSell +
		c.StrongSell*WeightStrongSell
	return weighted / total
}

// Meaningful reports whether v carries a signal: zero and NaN do not.
func Meaningful(v float64) bool {
	return v != 0 && !math.IsNaN(v)
}

// SafeDiv returns num/den, or fallback when den is zero.
func SafeDiv(num, den, fallback float64) float64 {
	if den == 0 {
		return fallback
	}
	return num / den
}

// Sum returns the total of vals, 0 for empty input.
func Sum(vals []float64) float64 {
	s := 0.0
	for _, v := range vals {
		s += v
	}
	return s
}

// Mean returns the arithmetic mean, NaN for empty input.
func Mean(vals []float64) float64 {
	return Sum(vals) / float64(len(vals))
}

// Max returns the largest value, NaN for empty input or if any value is NaN.
func Max(vals []float64) float64 {
	if len(vals) == 0 {
		return math.NaN()
	}
	m := vals[0]
	for _, v := range vals[1:] {
		m = math.Max(m, v)
	}
	return m
}

// Min returns the smallest value, NaN for empty input or if any value is NaN.
func Min(vals []float64) float64 {
	if len(vals) == 0 {
		return math.NaN()
	}
	m := vals[0]
	for _, v := range vals[1:] {
		m = math.Min(m, v)
	}
	return m
}

// Last returns the final value, NaN for empty input.
func Last(vals []float64) float64 {
	if len(vals) == 0 {
		return math.NaN()
	}
	return vals[len(vals)-1]
}

// Tail returns the last n values, or all of them when there are fewer.
func Tail(vals []float64, n int) []float64 {
	if n >= len(vals) {
		return vals
	}
	return vals[len(vals)-n:]
}
