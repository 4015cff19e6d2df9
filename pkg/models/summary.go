package models

// Summary is the normalized analysis of one payload. Every summary type
// carries a human-readable label in its dataType field.
type Summary interface {
	SummaryType() string
}

// Summary labels written to the dataType field.
const (
	LabelIncomeStatement = "Income Statement Analysis"
	LabelBalanceSheet    = "Balance Sheet Analysis"
	LabelNewsSentiment   = "News Sentiment Analysis"
	LabelInsiderTrading  = "Insider Trading Analysis"
	LabelPriceAction     = "Price Action Analysis"
	LabelRecommendations = "Analyst Recommendations Analysis"
	LabelTechnicalPrice  = "Technical Price Analysis"
)

// ════════════════════════════════════════════════════════════════════
// Income statement
// ════════════════════════════════════════════════════════════════════

// IncomeStatementSummary is the analysis of annual income statements.
type IncomeStatementSummary struct {
	DataType           string             `json:"dataType"`
	Ticker             string             `json:"ticker,omitempty"`
	CurrentFinancials  IncomeFinancials   `json:"currentFinancials"`
	YearOverYearGrowth IncomeGrowth       `json:"yearOverYearGrowth"`
	LongTermTrends     IncomeTrends       `json:"longTermTrends"`
	Analysis           IncomeAnalysis     `json:"analysis"`
	Timeframe          StatementTimeframe `json:"timeframe"`
}

type IncomeFinancials struct {
	Revenue         string  `json:"revenue"`
	NetIncome       string  `json:"netIncome"`
	OperatingIncome string  `json:"operatingIncome"`
	Margins         Margins `json:"margins"`
}

type Margins struct {
	Gross string `json:"gross"`
	Net   string `json:"net"`
}

type IncomeGrowth struct {
	Revenue         string `json:"revenue"`
	NetIncome       string `json:"netIncome"`
	OperatingIncome string `json:"operatingIncome"`
}

type IncomeTrends struct {
	RevenueCAGR       string            `json:"revenueCAGR"`
	NetIncomeCAGR     string            `json:"netIncomeCAGR"`
	MarginProgression MarginProgression `json:"marginProgression"`
}

// MarginProgression holds percentage-point margin changes from the oldest
// to the latest report.
type MarginProgression struct {
	GrossMarginChange string `json:"grossMarginChange"`
	NetMarginChange   string `json:"netMarginChange"`
}

type IncomeAnalysis struct {
	Profitability         string `json:"profitability"`
	GrowthRate            string `json:"growthRate"`
	OperationalEfficiency string `json:"operationalEfficiency"`
}

type StatementTimeframe struct {
	LatestPeriod  string `json:"latestPeriod"`
	PeriodCovered string `json:"periodCovered"`
	YearsAnalyzed int    `json:"yearsAnalyzed"`
}

func (*IncomeStatementSummary) SummaryType() string { return LabelIncomeStatement }

// ════════════════════════════════════════════════════════════════════
// Balance sheet
// ════════════════════════════════════════════════════════════════════

// BalanceSheetSummary is the analysis of annual balance sheets.
type BalanceSheetSummary struct {
	DataType           string           `json:"dataType"`
	Ticker             string           `json:"ticker,omitempty"`
	CurrentState       BalanceState     `json:"currentState"`
	KeyRatios          BalanceRatios    `json:"keyRatios"`
	YearOverYearGrowth BalanceGrowth    `json:"yearOverYearGrowth"`
	Analysis           BalanceAnalysis  `json:"analysis"`
	Timeframe          BalanceTimeframe `json:"timeframe"`
}

type BalanceState struct {
	Assets       string `json:"assets"`
	Liabilities  string `json:"liabilities"`
	Equity       string `json:"equity"`
	CashPosition string `json:"cashPosition"`
}

type BalanceRatios struct {
	CurrentRatio   Number `json:"currentRatio"`
	DebtToEquity   Number `json:"debtToEquity"`
	WorkingCapital string `json:"workingCapital"`
}

type BalanceGrowth struct {
	Assets      string `json:"assets"`
	Liabilities string `json:"liabilities"`
	Equity      string `json:"equity"`
}

type BalanceAnalysis struct {
	FinancialStrength   string `json:"financialStrength"`
	LeveragePosition    string `json:"leveragePosition"`
	GrowthTrend         string `json:"growthTrend"`
	LiquidityAssessment string `json:"liquidityAssessment"`
}

type BalanceTimeframe struct {
	LatestReport  string `json:"latestReport"`
	ReportRange   string `json:"reportRange"`
	YearsAnalyzed int    `json:"yearsAnalyzed"`
}

func (*BalanceSheetSummary) SummaryType() string { return LabelBalanceSheet }

// ════════════════════════════════════════════════════════════════════
// Price action
// ════════════════════════════════════════════════════════════════════

// PriceSummary is the analysis of a daily price history.
type PriceSummary struct {
	DataType            string             `json:"dataType"`
	Ticker              string             `json:"ticker,omitempty"`
	CurrentState        PriceState         `json:"currentState"`
	PerformanceMetrics  PerformanceMetrics `json:"performanceMetrics"`
	TechnicalIndicators PriceIndicators    `json:"technicalIndicators"`
	TradingActivity     PriceActivity      `json:"tradingActivity"`
	Timeframe           SeriesTimeframe    `json:"timeframe"`
}

type PriceState struct {
	Price       string    `json:"price"`
	DailyChange string    `json:"dailyChange"`
	Volume      Number    `json:"volume"`
	VolumeVsAvg string    `json:"volumeVsAvg"`
	DayRange    PriceBand `json:"dayRange"`
}

type PriceBand struct {
	Low  string `json:"low"`
	High string `json:"high"`
}

type PerformanceMetrics struct {
	PeriodReturn string     `json:"periodReturn"`
	Volatility   string     `json:"volatility"`
	PriceRange   PriceRange `json:"priceRange"`
}

type PriceRange struct {
	High   string `json:"high"`
	Low    string `json:"low"`
	Spread string `json:"spread"`
}

type PriceIndicators struct {
	TrendDirection string        `json:"trendDirection"`
	PriceLocation  PriceLocation `json:"priceLocation"`
	VolumeProfile  string        `json:"volumeProfile"`
	Momentum       string        `json:"momentum"`
}

type PriceLocation struct {
	FromHigh string `json:"fromHigh"`
	FromLow  string `json:"fromLow"`
}

type PriceActivity struct {
	AverageVolume Number      `json:"averageVolume"`
	AveragePrice  string      `json:"averagePrice"`
	VolumeRange   VolumeRange `json:"volumeRange"`
}

type VolumeRange struct {
	Max Number `json:"max"`
	Min Number `json:"min"`
}

type SeriesTimeframe struct {
	Start       string `json:"start"`
	End         string `json:"end"`
	TradingDays int    `json:"tradingDays"`
}

func (*PriceSummary) SummaryType() string { return LabelPriceAction }

// ════════════════════════════════════════════════════════════════════
// Stock graph (technical)
// ════════════════════════════════════════════════════════════════════

// StockGraphSummary is the technical analysis of a chart price history.
type StockGraphSummary struct {
	DataType            string          `json:"dataType"`
	Ticker              string          `json:"ticker,omitempty"`
	CurrentState        GraphState      `json:"currentState"`
	TechnicalIndicators GraphIndicators `json:"technicalIndicators"`
	PriceRange          GraphPriceRange `json:"priceRange"`
	Analysis            GraphAnalysis   `json:"analysis"`
	Timeframe           GraphTimeframe  `json:"timeframe"`
}

type GraphState struct {
	Price       Number        `json:"price"`
	PriceChange PriceChange   `json:"priceChange"`
	DayRange    GraphDayRange `json:"dayRange"`
	Volume      GraphVolume   `json:"volume"`
}

type PriceChange struct {
	Daily string `json:"daily"`
	Total string `json:"total"`
}

type GraphDayRange struct {
	High   Number `json:"high"`
	Low    Number `json:"low"`
	Spread string `json:"spread"`
}

// GraphVolume values are in millions of shares.
type GraphVolume struct {
	Current  string `json:"current"`
	AvgDaily string `json:"avgDaily"`
}

type GraphIndicators struct {
	MovingAverages MovingAverages    `json:"movingAverages"`
	Volatility     VolatilityReading `json:"volatility"`
	Momentum       string            `json:"momentum"`
}

type MovingAverages struct {
	MA5         Number `json:"ma5"`
	MA20        Number `json:"ma20"`
	PriceToMA5  string `json:"priceToMA5"`
	PriceToMA20 string `json:"priceToMA20"`
}

// VolatilityReading values are percentages.
type VolatilityReading struct {
	Daily          Number `json:"daily"`
	Annualized     Number `json:"annualized"`
	Interpretation string `json:"interpretation"`
}

type GraphPriceRange struct {
	High   Number `json:"high"`
	Low    Number `json:"low"`
	Spread string `json:"spread"`
}

type GraphAnalysis struct {
	Trend            string `json:"trend"`
	Strength         string `json:"strength"`
	VolatilityRegime string `json:"volatilityRegime"`
	VolumeProfile    string `json:"volumeProfile"`
}

type GraphTimeframe struct {
	Start       Stamp `json:"start"`
	End         Stamp `json:"end"`
	TradingDays int   `json:"tradingDays"`
}

func (*StockGraphSummary) SummaryType() string { return LabelTechnicalPrice }

// ════════════════════════════════════════════════════════════════════
// News sentiment
// ════════════════════════════════════════════════════════════════════

// NewsSentimentSummary is the analysis of a news sentiment feed.
type NewsSentimentSummary struct {
	DataType         string               `json:"dataType"`
	Ticker           string               `json:"ticker,omitempty"`
	Timeframe        NewsTimeframe        `json:"timeframe"`
	SentimentMetrics NewsSentimentMetrics `json:"sentimentMetrics"`
	Coverage         NewsCoverage         `json:"coverage"`
	LatestInsight    NewsInsight          `json:"latestInsight"`
	KeyHighlights    []NewsHighlight      `json:"keyHighlights"`
	TopTopics        []TopicFrequency     `json:"topTopics"`
}

type NewsTimeframe struct {
	Start    string `json:"start"`
	End      string `json:"end"`
	Articles int    `json:"articles"`
}

type NewsSentimentMetrics struct {
	Average      string `json:"average"`
	Distribution *Tally `json:"distribution"`
	CurrentTrend string `json:"currentTrend"`
}

type NewsCoverage struct {
	TotalSources       int    `json:"totalSources"`
	SourceDistribution *Tally `json:"sourceDistribution"`
	VolumeLevel        string `json:"volumeLevel"`
}

type NewsInsight struct {
	Headline  string `json:"headline"`
	Sentiment string `json:"sentiment"`
	Source    string `json:"source"`
}

type NewsHighlight struct {
	Title     string `json:"title"`
	Sentiment string `json:"sentiment"`
	Source    string `json:"source"`
	Published string `json:"published,omitempty"`
	Excerpt   string `json:"excerpt,omitempty"`
}

type TopicFrequency struct {
	Topic            string `json:"topic"`
	Count            int    `json:"count"`
	AverageRelevance Number `json:"averageRelevance"`
}

func (*NewsSentimentSummary) SummaryType() string { return LabelNewsSentiment }

// ════════════════════════════════════════════════════════════════════
// Insider trading
// ════════════════════════════════════════════════════════════════════

// InsiderSummary is the analysis of recent insider transactions.
type InsiderSummary struct {
	DataType          string            `json:"dataType"`
	Ticker            string            `json:"ticker,omitempty"`
	CurrentState      InsiderState      `json:"currentState"`
	TradingActivity   InsiderActivity   `json:"tradingActivity"`
	ExecutiveInsights ExecutiveInsights `json:"executiveInsights"`
	Analysis          InsiderAnalysis   `json:"analysis"`
	Timeframe         InsiderTimeframe  `json:"timeframe"`
}

type InsiderState struct {
	LatestTransaction  LatestTransaction `json:"latestTransaction"`
	NetTradingPosition string            `json:"netTradingPosition"`
	DominantActivity   string            `json:"dominantActivity"`
}

type LatestTransaction struct {
	Date      string `json:"date"`
	Type      string `json:"type"`
	Executive string `json:"executive"`
	Shares    Number `json:"shares"`
}

type InsiderActivity struct {
	Acquisitions TransactionGroup `json:"acquisitions"`
	Disposals    TransactionGroup `json:"disposals"`
}

type TransactionGroup struct {
	Count       int    `json:"count"`
	TotalShares Number `json:"totalShares"`
	TotalValue  string `json:"totalValue"`
}

type ExecutiveInsights struct {
	ActiveTraders []ActiveTrader `json:"activeTraders"`
}

type ActiveTrader struct {
	Name        string            `json:"name"`
	Title       string            `json:"title"`
	NetPosition Number            `json:"netPosition"`
	Activity    ExecutiveActivity `json:"activity"`
}

type ExecutiveActivity struct {
	Acquisitions Number `json:"acquisitions"`
	Disposals    Number `json:"disposals"`
}

type InsiderAnalysis struct {
	Sentiment        string `json:"sentiment"`
	TradingIntensity string `json:"tradingIntensity"`
	Participation    string `json:"participation"`
}

type InsiderTimeframe struct {
	Start                string `json:"start"`
	End                  string `json:"end"`
	TransactionsAnalyzed int    `json:"transactionsAnalyzed"`
	UniqueExecutives     int    `json:"uniqueExecutives"`
}

func (*InsiderSummary) SummaryType() string { return LabelInsiderTrading }

// ════════════════════════════════════════════════════════════════════
// Analyst recommendations
// ════════════════════════════════════════════════════════════════════

// RecommendationSummary is the analysis of analyst rating counts.
type RecommendationSummary struct {
	DataType                string          `json:"dataType"`
	Ticker                  string          `json:"ticker,omitempty"`
	CurrentConsensus        Consensus       `json:"currentConsensus"`
	RecommendationBreakdown RatingBreakdown `json:"recommendationBreakdown"`
	SentimentMetrics        RatingSentiment `json:"sentimentMetrics"`
	TrendAnalysis           RatingTrend     `json:"trendAnalysis"`
	Timeframe               PeriodTimeframe `json:"timeframe"`
}

type Consensus struct {
	TotalAnalysts   Number  `json:"totalAnalysts"`
	SentimentScore  string  `json:"sentimentScore"`
	ScoreChange     *string `json:"scoreChange"`
	ConsensusRating string  `json:"consensusRating"`
}

type RatingBreakdown struct {
	StrongBuy  RatingShare `json:"strongBuy"`
	Buy        RatingShare `json:"buy"`
	Hold       RatingShare `json:"hold"`
	Sell       RatingShare `json:"sell"`
	StrongSell RatingShare `json:"strongSell"`
}

type RatingShare struct {
	Count      Number `json:"count"`
	Percentage string `json:"percentage"`
}

type RatingSentiment struct {
	BullishPercentage string `json:"bullishPercentage"`
	BearishPercentage string `json:"bearishPercentage"`
	NeutralPercentage string `json:"neutralPercentage"`
	Conviction        string `json:"conviction"`
}

type RatingTrend struct {
	CoverageChange    *string `json:"coverageChange"`
	ConsensusShift    *string `json:"consensusShift"`
	ConsensusStrength string  `json:"consensusStrength"`
}

type PeriodTimeframe struct {
	StartPeriod     string `json:"startPeriod"`
	EndPeriod       string `json:"endPeriod"`
	PeriodsAnalyzed int    `json:"periodsAnalyzed"`
}

func (*RecommendationSummary) SummaryType() string { return LabelRecommendations }
