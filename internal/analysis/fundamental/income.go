// Package fundamental analyzes annual financial statements. Reports are
// expected most recent first; amounts are shown in billions.
package fundamental

import (
	"github.com/seenimoa/finsight/internal/analysis/stats"
	"github.com/seenimoa/finsight/pkg/models"
	"github.com/seenimoa/finsight/pkg/utils"
)

// AnalyzeIncomeStatement summarizes annual income statements: current
// financials and margins, year-over-year growth against the previous
// report and compound growth since the oldest one. It returns nil when
// there are no annual reports.
func AnalyzeIncomeStatement(p models.IncomeStatementPayload, ticker string) *models.IncomeStatementSummary {
	reports := p.AnnualReports
	if len(reports) == 0 {
		return nil
	}

	latest, previous, oldest := span(reports)
	years := len(reports) - 1

	revenue := billions(latest.TotalRevenue)
	operating := billions(latest.OperatingIncome)
	grossMargin := utils.RoundTo(margin(latest.GrossProfit, latest.TotalRevenue), 2)
	netMargin := utils.RoundTo(margin(latest.NetIncome, latest.TotalRevenue), 2)

	revenueGrowth := stats.PercentChange(latest.TotalRevenue.Float(), previous.TotalRevenue.Float())

	return &models.IncomeStatementSummary{
		DataType: models.LabelIncomeStatement,
		Ticker:   tickerOr(ticker, p.Symbol),
		CurrentFinancials: models.IncomeFinancials{
			Revenue:         utils.FormatBillions(latest.TotalRevenue.Float()),
			NetIncome:       utils.FormatBillions(latest.NetIncome.Float()),
			OperatingIncome: utils.FormatBillions(latest.OperatingIncome.Float()),
			Margins: models.Margins{
				Gross: utils.FormatPercent(utils.FormatNumber(grossMargin)),
				Net:   utils.FormatPercent(utils.FormatNumber(netMargin)),
			},
		},
		YearOverYearGrowth: models.IncomeGrowth{
			Revenue:         percent(revenueGrowth, 2),
			NetIncome:       percent(stats.PercentChange(latest.NetIncome.Float(), previous.NetIncome.Float()), 2),
			OperatingIncome: percent(stats.PercentChange(latest.OperatingIncome.Float(), previous.OperatingIncome.Float()), 2),
		},
		LongTermTrends: models.IncomeTrends{
			RevenueCAGR:   percent(stats.CAGR(latest.TotalRevenue.Float(), oldest.TotalRevenue.Float(), years), 2),
			NetIncomeCAGR: percent(stats.CAGR(latest.NetIncome.Float(), oldest.NetIncome.Float(), years), 2),
			MarginProgression: models.MarginProgression{
				GrossMarginChange: utils.ToFixed(margin(latest.GrossProfit, latest.TotalRevenue)-margin(oldest.GrossProfit, oldest.TotalRevenue), 2),
				NetMarginChange:   utils.ToFixed(margin(latest.NetIncome, latest.TotalRevenue)-margin(oldest.NetIncome, oldest.TotalRevenue), 2),
			},
		},
		Analysis: models.IncomeAnalysis{
			Profitability:         band(netMargin, stats.HighNetMargin, stats.ModerateNetMargin, "High", "Moderate", "Low"),
			GrowthRate:            band(utils.RoundTo(revenueGrowth, 2), stats.HighRevenueGrowth, stats.ModerateRevenueGrowth, "High", "Moderate", "Low"),
			OperationalEfficiency: efficiency(operating / revenue),
		},
		Timeframe: models.StatementTimeframe{
			LatestPeriod:  latest.FiscalDateEnding,
			PeriodCovered: oldest.FiscalDateEnding + " to " + latest.FiscalDateEnding,
			YearsAnalyzed: len(reports),
		},
	}
}

func efficiency(operatingRatio float64) string {
	if operatingRatio > stats.EfficientOperating {
		return "Efficient"
	}
	return "Needs Improvement"
}

// margin returns part as a percentage of whole.
func margin(part, whole models.Num) float64 {
	return part.Float() / whole.Float() * 100
}
