package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/seenimoa/finsight/pkg/utils"
)

// Num is a lenient numeric input field. Providers send numbers either as
// JSON numbers or as strings ("383285000000", "None"); anything that is not
// a finite number decodes to 0.
type Num float64

// UnmarshalJSON implements json.Unmarshaler.
func (n *Num) UnmarshalJSON(b []byte) error {
	*n = 0
	s := string(bytes.TrimSpace(b))
	if s == "" || s == "null" {
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return nil
		}
		s = strings.TrimSpace(str)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	*n = Num(f)
	return nil
}

// Float returns n as a float64.
func (n Num) Float() float64 { return float64(n) }

// Number is a float output field. NaN and infinities have no JSON
// representation and are written as null.
type Number float64

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

// Float returns n as a float64.
func (n Number) Float() float64 { return float64(n) }

// Stamp is a date field that keeps the provider's original encoding for
// display and, when it can be parsed, the instant it denotes.
type Stamp struct {
	Raw   string
	Time  time.Time
	Valid bool

	raw json.RawMessage
}

// UnmarshalJSON accepts date strings and epoch-millisecond numbers.
func (s *Stamp) UnmarshalJSON(b []byte) error {
	*s = Stamp{}
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	s.raw = append(json.RawMessage(nil), b...)

	if b[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return nil
		}
		s.Raw = str
		s.Time, s.Valid = utils.ParseDate(str)
		return nil
	}

	s.Raw = string(b)
	s.Time, s.Valid = utils.ParseEpochMillis(s.Raw)
	return nil
}

// MarshalJSON writes the value back in its original encoding.
func (s Stamp) MarshalJSON() ([]byte, error) {
	if len(s.raw) > 0 {
		return s.raw, nil
	}
	if s.Raw == "" {
		return []byte("null"), nil
	}
	return json.Marshal(s.Raw)
}

// ISO returns the stamp as an ISO-8601 UTC string, or the raw text when
// the stamp could not be parsed.
func (s Stamp) ISO() string {
	if !s.Valid {
		return s.Raw
	}
	return utils.FormatISO(s.Time)
}

// NewStamp builds a Stamp from a raw date string.
func NewStamp(raw string) Stamp {
	t, ok := utils.ParseDate(raw)
	return Stamp{Raw: raw, Time: t, Valid: ok}
}
