// Package utils provides common utility functions for finsight.
//
// Number formatting here mirrors the display rules of the dashboard that
// consumes summaries: fixed-point text follows Number.prototype.toFixed and
// bare numbers follow Number.prototype.toString, including the "NaN" and
// "Infinity" spellings for degraded values.
package utils

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// ToFixed formats v with exactly digits fractional digits.
// Exact ties round away from zero, as toFixed does, rather than to even.
func ToFixed(v float64, digits int) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	if digits < 0 {
		digits = 0
	}
	if math.Abs(v) >= 1e21 {
		return FormatNumber(v)
	}

	s := roundHalfUp(math.Abs(v), digits)
	if v < 0 {
		return "-" + s
	}
	return s
}

// roundHalfUp rounds the exact decimal expansion of a non-negative float.
func roundHalfUp(abs float64, digits int) string {
	// 1074 fractional digits is the exact expansion of any float64.
	exact := strconv.FormatFloat(abs, 'f', 1074, 64)
	dot := strings.IndexByte(exact, '.')
	intPart, frac := exact[:dot], exact[dot+1:]

	keep := []byte(intPart + frac[:digits])
	if frac[digits] >= '5' {
		i := len(keep) - 1
		for ; i >= 0; i-- {
			if keep[i] == '9' {
				keep[i] = '0'
				continue
			}
			keep[i]++
			break
		}
		if i < 0 {
			keep = append([]byte{'1'}, keep...)
		}
	}

	if digits == 0 {
		return string(keep)
	}
	n := len(keep) - digits
	return string(keep[:n]) + "." + string(keep[n:])
}

// FormatNumber renders v the way a bare number is printed by the dashboard:
// shortest round-trip digits, exponent form outside [1e-6, 1e21).
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}

	abs := math.Abs(v)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(v, 'e', -1, 64)
		mantissa, exp, _ := strings.Cut(s, "e")
		sign := exp[:1]
		return mantissa + "e" + sign + strings.TrimLeft(exp[1:], "0")
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// RoundTo rounds v to digits decimals using ToFixed semantics.
// NaN and infinities pass through unchanged.
func RoundTo(v float64, digits int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	r, err := strconv.ParseFloat(ToFixed(v, digits), 64)
	if err != nil {
		return math.NaN()
	}
	return r
}

// FormatBillions formats a raw dollar amount as "$<billions>B",
// e.g. 100e9 → "$100B", 383285000000 → "$383.29B".
func FormatBillions(amount float64) string {
	return "$" + FormatNumber(RoundTo(amount/1e9, 2)) + "B"
}

// FormatPercent appends a percent sign to already formatted text.
func FormatPercent(s string) string {
	return s + "%"
}

// FormatISO renders t as an ISO-8601 UTC timestamp with millisecond precision.
func FormatISO(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}
