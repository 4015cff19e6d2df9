// Package summary routes raw data payloads to their analyzers and collects
// the resulting summaries for a whole response envelope.
package summary

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/seenimoa/finsight/internal/analysis/fundamental"
	"github.com/seenimoa/finsight/internal/analysis/insider"
	"github.com/seenimoa/finsight/internal/analysis/sentiment"
	"github.com/seenimoa/finsight/internal/analysis/technical"
	"github.com/seenimoa/finsight/pkg/models"
)

// Generate returns the summary of a raw payload for the given data-type
// tag, or nil when the tag is not supported, the payload does not decode
// or the analyzer finds too little data.
func Generate(tag string, raw json.RawMessage, ticker string) models.Summary {
	s, _ := generate(tag, raw, analyzers{ticker: ticker, news: sentiment.DefaultNewsOptions()})
	return s
}

func generate(tag string, raw json.RawMessage, v analyzers) (models.Summary, string) {
	dt, ok := models.ParseDataType(tag)
	if !ok {
		return nil, ResultUnknown
	}
	payload, err := models.DecodePayload(dt, raw)
	if err != nil {
		return nil, ResultAbsent
	}
	s := payload.Accept(v)
	if s == nil {
		return nil, ResultAbsent
	}
	return s, ResultOK
}

// analyzers is the PayloadVisitor binding each payload variant to its
// analyzer.
type analyzers struct {
	ticker string
	news   sentiment.NewsOptions
}

var _ models.PayloadVisitor = analyzers{}

func (a analyzers) VisitIncomeStatement(p models.IncomeStatementPayload) models.Summary {
	return present(fundamental.AnalyzeIncomeStatement(p, a.ticker))
}

func (a analyzers) VisitBalanceSheet(p models.BalanceSheetPayload) models.Summary {
	return present(fundamental.AnalyzeBalanceSheet(p, a.ticker))
}

func (a analyzers) VisitNewsSentiment(p models.NewsFeedPayload) models.Summary {
	return present(sentiment.AnalyzeNewsWith(p, a.ticker, a.news))
}

func (a analyzers) VisitInsiderTransactions(p models.InsiderTransactionsPayload) models.Summary {
	return present(insider.Analyze(p, a.ticker))
}

func (a analyzers) VisitPrice(p models.PriceSeriesPayload) models.Summary {
	return present(technical.AnalyzePrice(p, a.ticker))
}

func (a analyzers) VisitRecommendations(p models.RecommendationsPayload) models.Summary {
	return present(sentiment.AnalyzeRecommendations(p, a.ticker))
}

func (a analyzers) VisitStockGraph(p models.StockGraphPayload) models.Summary {
	return present(technical.AnalyzeStockGraph(p, a.ticker))
}

// present converts an analyzer result to a Summary, mapping a nil pointer
// to a nil interface.
func present[S any, PS interface {
	*S
	models.Summary
}](s PS) models.Summary {
	if s == nil {
		return nil
	}
	return s
}

// Dispatcher is Generate with configurable analyzer options, debug logging
// and metrics. It is safe for concurrent use.
type Dispatcher struct {
	news    sentiment.NewsOptions
	metrics *Metrics
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithMetrics records every dispatch in m.
func WithMetrics(m *Metrics) Option {
	return func(d *Dispatcher) { d.metrics = m }
}

// WithNewsOptions overrides the news analyzer options.
func WithNewsOptions(o sentiment.NewsOptions) Option {
	return func(d *Dispatcher) { d.news = o }
}

// NewDispatcher returns a dispatcher with default news options.
func NewDispatcher(opts ...Option) *Dispatcher {
	d := &Dispatcher{news: sentiment.DefaultNewsOptions()}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Summarize behaves like Generate. A panicking analyzer is logged and
// reported as an absent result.
func (d *Dispatcher) Summarize(tag string, raw json.RawMessage, ticker string) (s models.Summary) {
	start := time.Now()
	result := ResultAbsent
	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("data_type", tag).Str("panic", fmt.Sprint(r)).Msg("analyzer panicked")
			s, result = nil, ResultAbsent
		}
		elapsed := time.Since(start)
		d.metrics.observe(tag, result, elapsed)
		log.Debug().
			Str("data_type", tag).
			Str("ticker", ticker).
			Str("result", result).
			Dur("elapsed", elapsed).
			Msg("summary dispatched")
	}()

	s, result = generate(tag, raw, analyzers{ticker: ticker, news: d.news})
	return s
}
