package models

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"
)

// ── Lenient numbers ──

func TestNumUnmarshal(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{`42.5`, 42.5},
		{`"383285000000"`, 383285000000},
		{`" 12.25 "`, 12.25},
		{`null`, 0},
		{`"None"`, 0},
		{`"abc"`, 0},
		{`"NaN"`, 0},
		{`"Infinity"`, 0},
		{`-3`, -3},
	}
	for _, tt := range tests {
		var n Num
		if err := json.Unmarshal([]byte(tt.in), &n); err != nil {
			t.Fatalf("Unmarshal(%s) error: %v", tt.in, err)
		}
		if n.Float() != tt.want {
			t.Errorf("Unmarshal(%s) = %v, want %v", tt.in, n.Float(), tt.want)
		}
	}
}

func TestNumMissingFieldIsZero(t *testing.T) {
	var r AnnualReport
	if err := json.Unmarshal([]byte(`{"fiscalDateEnding":"2023-12-31","totalRevenue":"100"}`), &r); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if r.TotalRevenue != 100 {
		t.Errorf("TotalRevenue: got %v, want 100", r.TotalRevenue)
	}
	if r.NetIncome != 0 {
		t.Errorf("NetIncome: got %v, want 0", r.NetIncome)
	}
}

func TestNumberMarshalNonFinite(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1.5, "1.5"},
		{math.NaN(), "null"},
		{math.Inf(1), "null"},
		{math.Inf(-1), "null"},
	}
	for _, tt := range tests {
		b, err := json.Marshal(Number(tt.in))
		if err != nil {
			t.Fatalf("Marshal(%v) error: %v", tt.in, err)
		}
		if string(b) != tt.want {
			t.Errorf("Marshal(%v) = %s, want %s", tt.in, b, tt.want)
		}
	}
}

// ── Stamps ──

func TestStampString(t *testing.T) {
	var s Stamp
	if err := json.Unmarshal([]byte(`"Mon, 06 Jan 2025 00:00:00 GMT"`), &s); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if !s.Valid {
		t.Fatal("expected parsed stamp")
	}
	if got := s.ISO(); got != "2025-01-06T00:00:00.000Z" {
		t.Errorf("ISO() = %q", got)
	}
	b, _ := json.Marshal(s)
	if string(b) != `"Mon, 06 Jan 2025 00:00:00 GMT"` {
		t.Errorf("Marshal = %s, want original text", b)
	}
}

func TestStampEpochMillis(t *testing.T) {
	var s Stamp
	if err := json.Unmarshal([]byte(`1736121600000`), &s); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if !s.Valid {
		t.Fatal("expected parsed stamp")
	}
	if got := s.ISO(); got != "2025-01-06T00:00:00.000Z" {
		t.Errorf("ISO() = %q", got)
	}
	b, _ := json.Marshal(s)
	if string(b) != `1736121600000` {
		t.Errorf("Marshal = %s, want number preserved", b)
	}
}

func TestStampUnparseable(t *testing.T) {
	s := NewStamp("yesterday")
	if s.Valid {
		t.Error("expected invalid stamp")
	}
	if s.ISO() != "yesterday" {
		t.Errorf("ISO() = %q, want raw text", s.ISO())
	}
}

// ── Data types ──

func TestParseDataType(t *testing.T) {
	for _, info := range AllDataTypes() {
		dt, ok := ParseDataType(string(info.Name))
		if !ok || dt != info.Name {
			t.Errorf("ParseDataType(%q) = %q, %v", info.Name, dt, ok)
		}
	}
	if _, ok := ParseDataType("av_cash_flow"); ok {
		t.Error("ParseDataType accepted an unknown tag")
	}
	if len(AllDataTypes()) != 7 {
		t.Errorf("AllDataTypes: got %d, want 7", len(AllDataTypes()))
	}
}

func TestDataTypeCategory(t *testing.T) {
	tests := map[DataType]DataCategory{
		DataIncomeStatement: CategoryFinancialStatements,
		DataNewsSentiment:   CategoryNews,
		DataPrice:           CategoryPrice,
		DataStockGraph:      CategoryVisualization,
	}
	for dt, want := range tests {
		if got := dt.Category(); got != want {
			t.Errorf("%s.Category() = %q, want %q", dt, got, want)
		}
	}
}

// ── Payload decoding ──

func TestDecodePayloadVariants(t *testing.T) {
	tests := []struct {
		dt  DataType
		raw string
	}{
		{DataIncomeStatement, `{"annualReports":[{"fiscalDateEnding":"2023-12-31"}]}`},
		{DataBalanceSheet, `{"symbol":"AAPL","annualReports":[]}`},
		{DataNewsSentiment, `{"feed":[{"title":"t","overall_sentiment_score":0.2}]}`},
		{DataInsiderTransactions, `{"data":[{"shares":"100","share_price":"10.5"}]}`},
		{DataPrice, `[{"Date":"2025-01-02","Close":10}]`},
		{DataRecommendations, `{"period":["0m"],"strongBuy":[3]}`},
		{DataStockGraph, `[{"Date":1735776000000,"Close":10}]`},
	}
	for _, tt := range tests {
		p, err := DecodePayload(tt.dt, json.RawMessage(tt.raw))
		if err != nil {
			t.Fatalf("DecodePayload(%s) error: %v", tt.dt, err)
		}
		if p.DataType() != tt.dt {
			t.Errorf("DecodePayload(%s) variant reports %s", tt.dt, p.DataType())
		}
	}
}

func TestDecodePayloadErrors(t *testing.T) {
	if _, err := DecodePayload("av_cash_flow", json.RawMessage(`{}`)); !errors.Is(err, ErrUnknownDataType) {
		t.Errorf("unknown tag: got %v, want ErrUnknownDataType", err)
	}
	if _, err := DecodePayload(DataPrice, json.RawMessage(`{"Close":1}`)); err == nil {
		t.Error("expected error decoding an object as a price series")
	}
}

func TestNewsScoreOptional(t *testing.T) {
	p, err := DecodePayload(DataNewsSentiment, json.RawMessage(`{"feed":[{"title":"a"},{"title":"b","overall_sentiment_score":"0"}]}`))
	if err != nil {
		t.Fatalf("DecodePayload error: %v", err)
	}
	feed := p.(NewsFeedPayload).Feed
	if feed[0].OverallSentimentScore != nil {
		t.Error("missing score should decode to nil")
	}
	if feed[1].OverallSentimentScore == nil || *feed[1].OverallSentimentScore != 0 {
		t.Error("explicit zero score should be present")
	}
}

// ── Envelope ──

const sampleEnvelope = `{
  "yf_price": {"category": "price", "description": "Daily prices", "data": [{"Date":"2025-01-02","Close":10}]},
  "av_news_sentiment": {"category": "news", "data": {"feed": []}},
  "broken": "not an object",
  "no_category": {"data": [1]},
  "metadata": {"question": "How is AAPL doing?", "detected_ticker": " AAPL ", "explanation": "price and news"},
  "av_balance_sheet": {"category": "financial_statements", "data": null}
}`

func TestParseEnvelopeOrder(t *testing.T) {
	env, err := ParseEnvelope([]byte(sampleEnvelope))
	if err != nil {
		t.Fatalf("ParseEnvelope error: %v", err)
	}
	var tags []string
	for _, e := range env.Entries {
		tags = append(tags, e.Tag)
	}
	want := "yf_price,av_news_sentiment,av_balance_sheet"
	if got := strings.Join(tags, ","); got != want {
		t.Errorf("tags = %s, want %s", got, want)
	}
	if env.Ticker() != "AAPL" {
		t.Errorf("Ticker() = %q, want AAPL", env.Ticker())
	}
	if env.Question() != "How is AAPL doing?" {
		t.Errorf("Question() = %q", env.Question())
	}
	if env.Entries[0].Description != "Daily prices" {
		t.Errorf("Description = %q", env.Entries[0].Description)
	}
}

func TestParseEnvelopeDuplicateKey(t *testing.T) {
	env, err := ParseEnvelope([]byte(`{"a":{"category":"x","data":1},"b":{"category":"y","data":2},"a":{"category":"z","data":3}}`))
	if err != nil {
		t.Fatalf("ParseEnvelope error: %v", err)
	}
	if len(env.Entries) != 2 {
		t.Fatalf("entries: got %d, want 2", len(env.Entries))
	}
	if env.Entries[0].Tag != "a" || env.Entries[0].Category != "z" {
		t.Errorf("first entry = %+v, want last value of a in first position", env.Entries[0])
	}
}

func TestParseEnvelopeInvalid(t *testing.T) {
	for _, in := range []string{`[]`, `"x"`, ``, `{"a":`} {
		if _, err := ParseEnvelope([]byte(in)); !errors.Is(err, ErrInvalidEnvelope) {
			t.Errorf("ParseEnvelope(%q): got %v, want ErrInvalidEnvelope", in, err)
		}
	}
}

func TestEnvelopeEntryHasData(t *testing.T) {
	tests := []struct {
		data string
		want bool
	}{
		{``, false},
		{`null`, false},
		{`false`, false},
		{`0`, false},
		{`""`, false},
		{`[]`, true},
		{`{}`, true},
		{`[1]`, true},
	}
	for _, tt := range tests {
		e := EnvelopeEntry{Data: json.RawMessage(tt.data)}
		if got := e.HasData(); got != tt.want {
			t.Errorf("HasData(%q) = %v, want %v", tt.data, got, tt.want)
		}
	}
}

func TestEnvelopeMarshalKeepsOrder(t *testing.T) {
	env := &Envelope{}
	env.Add(EnvelopeEntry{Tag: "yf_price", Category: "price", Data: json.RawMessage(`[]`)})
	env.Add(EnvelopeEntry{Tag: "av_news_sentiment", Category: "news", Data: json.RawMessage(`{"feed":[]}`)})
	env.Metadata = &Metadata{DetectedTicker: "MSFT"}

	b, err := json.Marshal(env)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	want := `{"yf_price":{"category":"price","data":[]},"av_news_sentiment":{"category":"news","data":{"feed":[]}},"metadata":{"detected_ticker":"MSFT"}}`
	if string(b) != want {
		t.Errorf("Marshal =\n%s\nwant\n%s", b, want)
	}
}

// ── Summary map ──

func TestSummaryMapOrder(t *testing.T) {
	m := NewSummaryMap()
	m.Set("z_tag", SummaryEntry{Type: "price", Summary: &PriceSummary{DataType: LabelPriceAction}})
	m.Set("a_tag", SummaryEntry{Type: "news", Summary: &NewsSentimentSummary{DataType: LabelNewsSentiment}})
	m.Set("z_tag", SummaryEntry{Type: "visualization", Summary: &PriceSummary{DataType: LabelPriceAction}})

	if got := strings.Join(m.Keys(), ","); got != "z_tag,a_tag" {
		t.Errorf("Keys() = %s", got)
	}
	e, ok := m.Get("z_tag")
	if !ok || e.Type != "visualization" {
		t.Errorf("Get(z_tag) = %+v, %v", e, ok)
	}

	b, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if strings.Index(string(b), `"z_tag"`) > strings.Index(string(b), `"a_tag"`) {
		t.Errorf("marshaled keys out of insertion order: %s", b)
	}
}

func TestSummaryMapEmpty(t *testing.T) {
	var m *SummaryMap
	if m.Len() != 0 {
		t.Error("nil map should be empty")
	}
	b, _ := json.Marshal(NewSummaryMap())
	if string(b) != "{}" {
		t.Errorf("Marshal(empty) = %s", b)
	}
}

func TestTally(t *testing.T) {
	tl := NewTally()
	for _, k := range []string{"neutral", "bullish", "neutral", "somewhat-bearish"} {
		tl.Inc(k)
	}
	if tl.Count("neutral") != 2 || tl.Count("missing") != 0 {
		t.Errorf("counts wrong: neutral=%d", tl.Count("neutral"))
	}
	b, _ := json.Marshal(tl)
	want := `{"neutral":2,"bullish":1,"somewhat-bearish":1}`
	if string(b) != want {
		t.Errorf("Marshal = %s, want %s", b, want)
	}
}

func TestSummaryTypeLabels(t *testing.T) {
	tests := []struct {
		s    Summary
		want string
	}{
		{&IncomeStatementSummary{}, "Income Statement Analysis"},
		{&BalanceSheetSummary{}, "Balance Sheet Analysis"},
		{&NewsSentimentSummary{}, "News Sentiment Analysis"},
		{&InsiderSummary{}, "Insider Trading Analysis"},
		{&PriceSummary{}, "Price Action Analysis"},
		{&RecommendationSummary{}, "Analyst Recommendations Analysis"},
		{&StockGraphSummary{}, "Technical Price Analysis"},
	}
	for _, tt := range tests {
		if got := tt.s.SummaryType(); got != tt.want {
			t.Errorf("SummaryType() = %q, want %q", got, tt.want)
		}
	}
}
