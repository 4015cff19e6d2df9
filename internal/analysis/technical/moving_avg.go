package technical

import "github.com/seenimoa/finsight/pkg/utils"

// SMA calculates the Simple Moving Average for the given period. The result
// is compact: one value per full window, len(data)-period+1 in total, and
// empty when data is shorter than period. Each window is summed on its own
// so the values do not carry running-sum drift.
func SMA(data []float64, period int) []float64 {
	n := len(data)
	if n < period || period <= 0 {
		return nil
	}

	result := make([]float64, 0, n-period+1)
	for i := period - 1; i < n; i++ {
		sum := 0.0
		for _, v := range data[i-period+1 : i+1] {
			sum += v
		}
		result = append(result, sum/float64(period))
	}
	return result
}

// RoundedSMA is SMA with every value rounded to the given number of decimals.
func RoundedSMA(data []float64, period, decimals int) []float64 {
	vals := SMA(data, period)
	for i, v := range vals {
		vals[i] = utils.RoundTo(v, decimals)
	}
	return vals
}
