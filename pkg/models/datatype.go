package models

// DataType is the tag identifying which kind of financial payload an
// envelope entry carries. The set is closed; see ParseDataType.
type DataType string

const (
	DataIncomeStatement     DataType = "av_income_statement"
	DataBalanceSheet        DataType = "av_balance_sheet"
	DataNewsSentiment       DataType = "av_news_sentiment"
	DataInsiderTransactions DataType = "av_insider_transactions"
	DataPrice               DataType = "yf_price"
	DataRecommendations     DataType = "yf_recommendations"
	DataStockGraph          DataType = "yf_stock_graph"
)

// DataCategory groups data types by the kind of information they hold.
// Envelope entries carry their category alongside the payload.
type DataCategory string

const (
	CategoryPrice               DataCategory = "price"
	CategoryNews                DataCategory = "news"
	CategoryFundamentals        DataCategory = "fundamentals"
	CategoryTechnical           DataCategory = "technical"
	CategorySentiment           DataCategory = "sentiment"
	CategoryFinancialStatements DataCategory = "financial_statements"
	CategoryInsiderTrading      DataCategory = "insider_trading"
	CategoryCompanyProfile      DataCategory = "company_profile"
	CategoryVisualization       DataCategory = "visualization"
)

// DataTypeInfo describes a supported data type.
type DataTypeInfo struct {
	Name        DataType     `json:"name"`
	Category    DataCategory `json:"category"`
	Provider    string       `json:"provider"`
	Description string       `json:"description"`
}

var dataTypeTable = []DataTypeInfo{
	{DataNewsSentiment, CategoryNews, "alphavantage", "Latest news and sentiment analysis for specific tickers"},
	{DataIncomeStatement, CategoryFinancialStatements, "alphavantage", "Annual and quarterly income statements"},
	{DataBalanceSheet, CategoryFinancialStatements, "alphavantage", "Annual and quarterly balance sheets"},
	{DataPrice, CategoryPrice, "yfinance", "Real-time and historical price data"},
	{DataRecommendations, CategorySentiment, "yfinance", "Analyst recommendations"},
	{DataInsiderTransactions, CategoryInsiderTrading, "alphavantage", "Latest insider transactions by key stakeholders"},
	{DataStockGraph, CategoryVisualization, "yfinance", "Basic stock price chart data"},
}

// AllDataTypes returns every supported data type in catalogue order.
func AllDataTypes() []DataTypeInfo {
	out := make([]DataTypeInfo, len(dataTypeTable))
	copy(out, dataTypeTable)
	return out
}

// ParseDataType maps a tag string to a DataType. The second result is
// false for any tag outside the supported set.
func ParseDataType(s string) (DataType, bool) {
	for _, info := range dataTypeTable {
		if string(info.Name) == s {
			return info.Name, true
		}
	}
	return "", false
}

// Info returns the catalogue entry for d.
func (d DataType) Info() (DataTypeInfo, bool) {
	for _, info := range dataTypeTable {
		if info.Name == d {
			return info, true
		}
	}
	return DataTypeInfo{}, false
}

// Category returns the default category for d, or "" if d is unknown.
func (d DataType) Category() DataCategory {
	info, _ := d.Info()
	return info.Category
}

func (d DataType) String() string { return string(d) }
