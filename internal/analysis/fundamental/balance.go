package fundamental

import (
	"github.com/seenimoa/finsight/internal/analysis/stats"
	"github.com/seenimoa/finsight/pkg/models"
	"github.com/seenimoa/finsight/pkg/utils"
)

// AnalyzeBalanceSheet summarizes annual balance sheets: current position in
// billions, liquidity and leverage ratios and year-over-year changes. It
// returns nil when there are no annual reports.
func AnalyzeBalanceSheet(p models.BalanceSheetPayload, ticker string) *models.BalanceSheetSummary {
	reports := p.AnnualReports
	if len(reports) == 0 {
		return nil
	}

	latest, previous, oldest := span(reports)

	assets := billions(latest.TotalAssets)
	liabilities := billions(latest.TotalLiabilities)
	equity := billions(latest.TotalShareholderEquity)
	currentAssets := billions(latest.TotalCurrentAssets)
	currentLiabilities := billions(latest.TotalCurrentLiabilities)

	currentRatio := utils.RoundTo(latest.TotalCurrentAssets.Float()/latest.TotalCurrentLiabilities.Float(), 2)
	debtToEquity := utils.RoundTo(latest.TotalLiabilities.Float()/latest.TotalShareholderEquity.Float(), 2)

	assetsGrowth := stats.PercentChange(assets, previous.TotalAssets.Float()/stats.Billion)
	growthTrend := "Contracting"
	if utils.RoundTo(assetsGrowth, 1) > 0 {
		growthTrend = "Expanding"
	}

	return &models.BalanceSheetSummary{
		DataType: models.LabelBalanceSheet,
		Ticker:   tickerOr(ticker, p.Symbol),
		CurrentState: models.BalanceState{
			Assets:       utils.FormatBillions(latest.TotalAssets.Float()),
			Liabilities:  utils.FormatBillions(latest.TotalLiabilities.Float()),
			Equity:       utils.FormatBillions(latest.TotalShareholderEquity.Float()),
			CashPosition: utils.FormatBillions(latest.CashAndCashEquivalentsAtCarryingValue.Float()),
		},
		KeyRatios: models.BalanceRatios{
			CurrentRatio:   models.Number(currentRatio),
			DebtToEquity:   models.Number(debtToEquity),
			WorkingCapital: "$" + utils.ToFixed(currentAssets-currentLiabilities, 2) + "B",
		},
		YearOverYearGrowth: models.BalanceGrowth{
			Assets:      percent(assetsGrowth, 1),
			Liabilities: percent(stats.PercentChange(liabilities, previous.TotalLiabilities.Float()/stats.Billion), 1),
			Equity:      percent(stats.PercentChange(equity, previous.TotalShareholderEquity.Float()/stats.Billion), 1),
		},
		Analysis: models.BalanceAnalysis{
			FinancialStrength:   band(currentRatio, stats.StrongCurrentRatio, stats.AdequateCurrentRatio, "Strong", "Adequate", "Weak"),
			LeveragePosition:    leverage(debtToEquity),
			GrowthTrend:         growthTrend,
			LiquidityAssessment: band(currentRatio, stats.StrongCurrentRatio, stats.AdequateCurrentRatio, "Highly liquid", "Adequately liquid", "Liquidity concerns"),
		},
		Timeframe: models.BalanceTimeframe{
			LatestReport:  latest.FiscalDateEnding,
			ReportRange:   oldest.FiscalDateEnding + " to " + latest.FiscalDateEnding,
			YearsAnalyzed: len(reports),
		},
	}
}

func leverage(debtToEquity float64) string {
	switch {
	case debtToEquity < stats.ConservativeLeverage:
		return "Conservative"
	case debtToEquity < stats.ModerateLeverage:
		return "Moderate"
	default:
		return "High"
	}
}
