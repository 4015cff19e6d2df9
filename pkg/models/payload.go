package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownDataType is returned when a tag is outside the supported set.
var ErrUnknownDataType = errors.New("unknown data type")

// Payload is the decoded raw data for one data type. The set of
// implementations is closed: each variant below is the only type for its
// tag, and PayloadVisitor has one method per variant.
type Payload interface {
	DataType() DataType
	Accept(v PayloadVisitor) Summary
	sealed()
}

// PayloadVisitor handles every payload variant. Adding a variant adds a
// method here, so each visitor must be updated before the module builds.
type PayloadVisitor interface {
	VisitIncomeStatement(IncomeStatementPayload) Summary
	VisitBalanceSheet(BalanceSheetPayload) Summary
	VisitNewsSentiment(NewsFeedPayload) Summary
	VisitInsiderTransactions(InsiderTransactionsPayload) Summary
	VisitPrice(PriceSeriesPayload) Summary
	VisitRecommendations(RecommendationsPayload) Summary
	VisitStockGraph(StockGraphPayload) Summary
}

// --- Price series ---

// PriceBar is one OHLCV record of a daily price history.
type PriceBar struct {
	Date   Stamp `json:"Date"`
	Open   Num   `json:"Open"`
	High   Num   `json:"High"`
	Low    Num   `json:"Low"`
	Close  Num   `json:"Close"`
	Volume Num   `json:"Volume"`
}

// PriceSeriesPayload is a price history in ascending date order.
// The order is trusted, not verified.
type PriceSeriesPayload []PriceBar

// StockGraphPayload is the chart variant of a price history.
type StockGraphPayload []PriceBar

// --- Fundamentals ---

// AnnualReport is one fiscal year of an income statement or balance sheet.
// Only the fields the analyzers read are decoded.
type AnnualReport struct {
	FiscalDateEnding                      string `json:"fiscalDateEnding"`
	ReportedCurrency                      string `json:"reportedCurrency,omitempty"`
	TotalRevenue                          Num    `json:"totalRevenue"`
	GrossProfit                           Num    `json:"grossProfit"`
	OperatingIncome                       Num    `json:"operatingIncome"`
	NetIncome                             Num    `json:"netIncome"`
	TotalAssets                           Num    `json:"totalAssets"`
	TotalLiabilities                      Num    `json:"totalLiabilities"`
	TotalShareholderEquity                Num    `json:"totalShareholderEquity"`
	TotalCurrentAssets                    Num    `json:"totalCurrentAssets"`
	TotalCurrentLiabilities               Num    `json:"totalCurrentLiabilities"`
	CashAndCashEquivalentsAtCarryingValue Num    `json:"cashAndCashEquivalentsAtCarryingValue"`
}

// FinancialStatements is the common shape of statement payloads.
// AnnualReports are ordered most recent first.
type FinancialStatements struct {
	Symbol        string         `json:"symbol"`
	AnnualReports []AnnualReport `json:"annualReports"`
}

// IncomeStatementPayload holds annual income statements.
type IncomeStatementPayload struct {
	FinancialStatements
}

// BalanceSheetPayload holds annual balance sheets.
type BalanceSheetPayload struct {
	FinancialStatements
}

// --- News ---

// NewsTopic is a topic tag attached to a news item.
type NewsTopic struct {
	Topic          string `json:"topic"`
	RelevanceScore Num    `json:"relevance_score"`
}

// NewsItem is one article of a news sentiment feed.
type NewsItem struct {
	Title                 string      `json:"title"`
	URL                   string      `json:"url"`
	TimePublished         string      `json:"time_published"`
	Summary               string      `json:"summary"`
	Source                string      `json:"source"`
	Topics                []NewsTopic `json:"topics"`
	OverallSentimentScore *Num        `json:"overall_sentiment_score"`
	OverallSentimentLabel string      `json:"overall_sentiment_label"`
}

// NewsFeedPayload is a news sentiment response.
type NewsFeedPayload struct {
	Items string     `json:"items,omitempty"`
	Feed  []NewsItem `json:"feed"`
}

// --- Insider transactions ---

// Acquisition and disposal flags of an insider transaction.
const (
	InsiderAcquisition = "A"
	InsiderDisposal    = "D"
)

// InsiderTransaction is one reported insider trade.
type InsiderTransaction struct {
	TransactionDate       string `json:"transaction_date"`
	Ticker                string `json:"ticker"`
	Executive             string `json:"executive"`
	ExecutiveTitle        string `json:"executive_title"`
	SecurityType          string `json:"security_type"`
	AcquisitionOrDisposal string `json:"acquisition_or_disposal"`
	Shares                Num    `json:"shares"`
	SharePrice            Num    `json:"share_price"`
}

// InsiderTransactionsPayload is an insider transactions response.
type InsiderTransactionsPayload struct {
	Data []InsiderTransaction `json:"data"`
}

// --- Analyst recommendations ---

// RecommendationsPayload holds rating counts as parallel arrays indexed by period.
type RecommendationsPayload struct {
	Period     []string `json:"period"`
	StrongBuy  []Num    `json:"strongBuy"`
	Buy        []Num    `json:"buy"`
	Hold       []Num    `json:"hold"`
	Sell       []Num    `json:"sell"`
	StrongSell []Num    `json:"strongSell"`
}

// --- Union plumbing ---

func (IncomeStatementPayload) DataType() DataType     { return DataIncomeStatement }
func (BalanceSheetPayload) DataType() DataType        { return DataBalanceSheet }
func (NewsFeedPayload) DataType() DataType            { return DataNewsSentiment }
func (InsiderTransactionsPayload) DataType() DataType { return DataInsiderTransactions }
func (PriceSeriesPayload) DataType() DataType         { return DataPrice }
func (RecommendationsPayload) DataType() DataType     { return DataRecommendations }
func (StockGraphPayload) DataType() DataType          { return DataStockGraph }

func (p IncomeStatementPayload) Accept(v PayloadVisitor) Summary { return v.VisitIncomeStatement(p) }
func (p BalanceSheetPayload) Accept(v PayloadVisitor) Summary    { return v.VisitBalanceSheet(p) }
func (p NewsFeedPayload) Accept(v PayloadVisitor) Summary        { return v.VisitNewsSentiment(p) }
func (p InsiderTransactionsPayload) Accept(v PayloadVisitor) Summary {
	return v.VisitInsiderTransactions(p)
}
func (p PriceSeriesPayload) Accept(v PayloadVisitor) Summary     { return v.VisitPrice(p) }
func (p RecommendationsPayload) Accept(v PayloadVisitor) Summary { return v.VisitRecommendations(p) }
func (p StockGraphPayload) Accept(v PayloadVisitor) Summary      { return v.VisitStockGraph(p) }

func (IncomeStatementPayload) sealed()     {}
func (BalanceSheetPayload) sealed()        {}
func (NewsFeedPayload) sealed()            {}
func (InsiderTransactionsPayload) sealed() {}
func (PriceSeriesPayload) sealed()         {}
func (RecommendationsPayload) sealed()     {}
func (StockGraphPayload) sealed()          {}

// DecodePayload decodes raw JSON into the payload variant for dt.
func DecodePayload(dt DataType, raw json.RawMessage) (Payload, error) {
	switch dt {
	case DataIncomeStatement:
		return decodeAs[IncomeStatementPayload](dt, raw)
	case DataBalanceSheet:
		return decodeAs[BalanceSheetPayload](dt, raw)
	case DataNewsSentiment:
		return decodeAs[NewsFeedPayload](dt, raw)
	case DataInsiderTransactions:
		return decodeAs[InsiderTransactionsPayload](dt, raw)
	case DataPrice:
		return decodeAs[PriceSeriesPayload](dt, raw)
	case DataRecommendations:
		return decodeAs[RecommendationsPayload](dt, raw)
	case DataStockGraph:
		return decodeAs[StockGraphPayload](dt, raw)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownDataType, dt)
}

func decodeAs[T Payload](dt DataType, raw json.RawMessage) (Payload, error) {
	var p T
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode %s payload: %w", dt, err)
	}
	return p, nil
}
