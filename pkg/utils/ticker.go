package utils

import (
	"strings"
)

// NormalizeTicker normalizes a user-input ticker symbol: surrounding
// whitespace and a leading "$" (common in chat) are removed and the symbol
// is uppercased. Class suffixes such as "BRK.B" are kept.
func NormalizeTicker(ticker string) string {
	ticker = strings.TrimSpace(strings.ToUpper(ticker))
	ticker = strings.TrimPrefix(ticker, "$")
	return strings.TrimSpace(ticker)
}
