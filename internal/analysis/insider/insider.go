// Package insider analyzes insider transaction filings. Money amounts are
// computed in decimal arithmetic so totals do not pick up float error.
package insider

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/seenimoa/finsight/internal/analysis/stats"
	"github.com/seenimoa/finsight/pkg/models"
	"github.com/seenimoa/finsight/pkg/utils"
)

var strongRatio = decimal.NewFromFloat(stats.InsiderStrongRatio)

// executive accumulates one insider's activity.
type executive struct {
	name         string
	title        string
	net          decimal.Decimal
	acquisitions decimal.Decimal
	disposals    decimal.Decimal
}

// group is the running total of one side of the book.
type group struct {
	count  int
	shares decimal.Decimal
	value  decimal.Decimal
}

func (g *group) add(t models.InsiderTransaction) {
	shares := decimal.NewFromFloat(t.Shares.Float())
	g.count++
	g.shares = g.shares.Add(shares)
	g.value = g.value.Add(shares.Mul(decimal.NewFromFloat(t.SharePrice.Float())))
}

func (g group) summary() models.TransactionGroup {
	return models.TransactionGroup{
		Count:       g.count,
		TotalShares: models.Number(g.shares.InexactFloat64()),
		TotalValue:  g.value.StringFixed(2),
	}
}

// Analyze summarizes the most recent insider transactions: net buying or
// selling by value, per-side totals and the most active executives. It
// returns nil when there are no transactions.
func Analyze(p models.InsiderTransactionsPayload, ticker string) *models.InsiderSummary {
	if len(p.Data) == 0 {
		return nil
	}

	txs := mostRecent(p.Data, stats.InsiderWindow)

	var acq, disp group
	var execs []*executive
	byName := make(map[string]*executive)
	for _, t := range txs {
		switch t.AcquisitionOrDisposal {
		case models.InsiderAcquisition:
			acq.add(t)
		case models.InsiderDisposal:
			disp.add(t)
		}

		e, ok := byName[t.Executive]
		if !ok {
			e = &executive{name: t.Executive, title: t.ExecutiveTitle}
			byName[t.Executive] = e
			execs = append(execs, e)
		}
		shares := decimal.NewFromFloat(t.Shares.Float())
		if t.AcquisitionOrDisposal == models.InsiderAcquisition {
			e.acquisitions = e.acquisitions.Add(shares)
			e.net = e.net.Add(shares)
		} else {
			e.disposals = e.disposals.Add(shares)
			e.net = e.net.Sub(shares)
		}
	}

	latest := txs[0]
	latestType := "Disposal"
	if latest.AcquisitionOrDisposal == models.InsiderAcquisition {
		latestType = "Acquisition"
	}
	dominant := "Net Selling"
	if acq.value.GreaterThan(disp.value) {
		dominant = "Net Buying"
	}

	return &models.InsiderSummary{
		DataType: models.LabelInsiderTrading,
		Ticker:   ticker,
		CurrentState: models.InsiderState{
			LatestTransaction: models.LatestTransaction{
				Date:      latest.TransactionDate,
				Type:      latestType,
				Executive: latest.Executive,
				Shares:    models.Number(latest.Shares.Float()),
			},
			NetTradingPosition: acq.value.Sub(disp.value).StringFixed(2),
			DominantActivity:   dominant,
		},
		TradingActivity: models.InsiderActivity{
			Acquisitions: acq.summary(),
			Disposals:    disp.summary(),
		},
		ExecutiveInsights: models.ExecutiveInsights{
			ActiveTraders: activeTraders(execs, stats.TopInsiderExecutives),
		},
		Analysis: models.InsiderAnalysis{
			Sentiment:        sentiment(acq.value, disp.value),
			TradingIntensity: intensity(len(txs)),
			Participation:    participation(len(execs)),
		},
		Timeframe: models.InsiderTimeframe{
			Start:                txs[len(txs)-1].TransactionDate,
			End:                  latest.TransactionDate,
			TransactionsAnalyzed: len(txs),
			UniqueExecutives:     len(execs),
		},
	}
}

// mostRecent returns up to limit transactions, newest first, from a stably
// sorted copy of txs. Undated transactions sort after dated ones.
func mostRecent(txs []models.InsiderTransaction, limit int) []models.InsiderTransaction {
	type dated struct {
		tx models.InsiderTransaction
		at time.Time
		ok bool
	}
	rows := make([]dated, len(txs))
	for i, t := range txs {
		at, ok := utils.ParseDate(t.TransactionDate)
		rows[i] = dated{t, at, ok}
	}
	slices.SortStableFunc(rows, func(a, b dated) int {
		switch {
		case a.ok && !b.ok:
			return -1
		case !a.ok && b.ok:
			return 1
		case !a.ok && !b.ok:
			return 0
		}
		return b.at.Compare(a.at)
	})

	n := min(len(rows), limit)
	out := make([]models.InsiderTransaction, n)
	for i := range out {
		out[i] = rows[i].tx
	}
	return out
}

// activeTraders returns the limit executives with the largest absolute net
// position, keeping first-seen order between equals.
func activeTraders(execs []*executive, limit int) []models.ActiveTrader {
	ranked := slices.Clone(execs)
	slices.SortStableFunc(ranked, func(a, b *executive) int {
		return b.net.Abs().Cmp(a.net.Abs())
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]models.ActiveTrader, 0, len(ranked))
	for _, e := range ranked {
		out = append(out, models.ActiveTrader{
			Name:        e.name,
			Title:       e.title,
			NetPosition: models.Number(e.net.InexactFloat64()),
			Activity: models.ExecutiveActivity{
				Acquisitions: models.Number(e.acquisitions.InexactFloat64()),
				Disposals:    models.Number(e.disposals.InexactFloat64()),
			},
		})
	}
	return out
}

func sentiment(acq, disp decimal.Decimal) string {
	switch {
	case acq.GreaterThan(disp.Mul(strongRatio)):
		return "Strongly Bullish"
	case acq.GreaterThan(disp):
		return "Moderately Bullish"
	case disp.GreaterThan(acq.Mul(strongRatio)):
		return "Strongly Bearish"
	default:
		return "Moderately Bearish"
	}
}

func intensity(transactions int) string {
	switch {
	case transactions > stats.HighInsiderIntensity:
		return "High"
	case transactions > stats.ModerateInsiderIntensity:
		return "Moderate"
	default:
		return "Low"
	}
}

func participation(executives int) string {
	if executives > stats.BroadParticipation {
		return "Broad"
	}
	return "Concentrated"
}
