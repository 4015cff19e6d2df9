package utils

import (
	"strconv"
	"strings"
	"time"
)

// CompactTimestampLayout is the provider's news timestamp format (YYYYMMDDTHHMMSS).
const CompactTimestampLayout = "20060102T150405"

// compactShortLayout is the same format without seconds, which some feeds emit.
const compactShortLayout = "20060102T1504"

// dateLayouts lists the date encodings seen in price and insider payloads,
// tried in order.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC1123,
	time.RFC1123Z,
	"2006-01-02 15:04:05-07:00",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseCompactTimestamp parses a compact news timestamp in UTC.
func ParseCompactTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{CompactTimestampLayout, compactShortLayout} {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatCompactTimestamp is the inverse of ParseCompactTimestamp.
func FormatCompactTimestamp(t time.Time) string {
	return t.UTC().Format(CompactTimestampLayout)
}

// ParseDate parses the loosely formatted dates found in provider payloads.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseEpochMillis interprets a decimal string as milliseconds since the epoch.
func ParseEpochMillis(s string) (time.Time, bool) {
	ms, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	return time.UnixMilli(ms).UTC(), true
}
