package utils

import (
	"math"
	"testing"
)

func TestToFixed(t *testing.T) {
	tests := []struct {
		input    float64
		digits   int
		expected string
	}{
		{25, 2, "25.00"},
		{7.6923076923, 2, "7.69"},
		{0.125, 2, "0.13"},
		{1.005, 2, "1.00"}, // binary value sits below the tie
		{2.5, 0, "3"},
		{-2.5, 0, "-3"},
		{9.999, 2, "10.00"},
		{-0.0, 2, "0.00"},
		{-0.001, 2, "-0.00"},
		{12.34, 1, "12.3"},
		{math.NaN(), 2, "NaN"},
		{math.Inf(1), 2, "Infinity"},
		{math.Inf(-1), 1, "-Infinity"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			result := ToFixed(tt.input, tt.digits)
			if result != tt.expected {
				t.Errorf("ToFixed(%v, %d) = %s, want %s", tt.input, tt.digits, result, tt.expected)
			}
		})
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{100, "100"},
		{383.29, "383.29"},
		{-12.5, "-12.5"},
		{0, "0"},
		{1e21, "1e+21"},
		{1.5e-7, "1.5e-7"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			result := FormatNumber(tt.input)
			if result != tt.expected {
				t.Errorf("FormatNumber(%v) = %s, want %s", tt.input, result, tt.expected)
			}
		})
	}
}

func TestRoundTo(t *testing.T) {
	if got := RoundTo(20.456, 2); got != 20.46 {
		t.Errorf("RoundTo(20.456, 2) = %v, want 20.46", got)
	}
	if got := RoundTo(math.Inf(1), 2); !math.IsInf(got, 1) {
		t.Errorf("RoundTo(+Inf) = %v, want +Inf", got)
	}
	if got := RoundTo(math.NaN(), 2); !math.IsNaN(got) {
		t.Errorf("RoundTo(NaN) = %v, want NaN", got)
	}
}

func TestFormatBillions(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{100e9, "$100B"},
		{383285000000, "$383.29B"},
		{1.5e9, "$1.5B"},
		{-2.25e9, "$-2.25B"},
		{0, "$0B"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := FormatBillions(tt.input); got != tt.expected {
				t.Errorf("FormatBillions(%v) = %s, want %s", tt.input, got, tt.expected)
			}
		})
	}
}
