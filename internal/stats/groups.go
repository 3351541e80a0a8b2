package stats

import (
	"math"
	"sort"

	"gitlab.com/avollard/tradebook/internal/models"
)

// rrBucket rounds a risk-reward ratio to the nearest half step.
func rrBucket(rr float64) float64 {
	return math.Round(rr*2) / 2
}

// rrCategory labels a bucket with the range shown on the dashboard.
func rrCategory(rr float64) string {
	switch {
	case rr < 1:
		return "< 1:1"
	case rr < 1.5:
		return "1:1 - 1.5:1"
	case rr < 2:
		return "1.5:1 - 2:1"
	case rr < 3:
		return "2:1 - 3:1"
	case rr < 5:
		return "3:1 - 5:1"
	default:
		return "> 5:1"
	}
}

// ByRR groups trades carrying a risk-reward ratio into half-step buckets.
// Trades without a ratio are skipped; with none left the result is empty.
// Buckets come back sorted ascending by ratio.
func ByRR(trades models.Trades) []models.RRStatistics {
	groups := make(map[float64]*models.RRStatistics)
	buckets := make([]float64, 0)

	for _, t := range chronological(trades) {
		if t.RR == nil {
			continue
		}
		bucket := rrBucket(*t.RR)
		g, ok := groups[bucket]
		if !ok {
			g = &models.RRStatistics{RR: bucket, Category: rrCategory(bucket)}
			groups[bucket] = g
			buckets = append(buckets, bucket)
		}
		g.TotalTrades++
		switch t.Result {
		case models.ResultWin:
			g.Wins++
			g.TotalGain += gainOf(t)
		case models.ResultLoss:
			g.Losses++
			g.TotalLoss += math.Abs(lossOf(t))
		}
	}

	sort.Float64s(buckets)
	out := make([]models.RRStatistics, 0, len(buckets))
	for _, bucket := range buckets {
		g := groups[bucket]
		g.WinRate = percentage(float64(g.Wins), float64(g.TotalTrades))
		g.NetResult = g.TotalGain - g.TotalLoss
		out = append(out, *g)
	}
	return out
}

// ByDevise groups trades per pair, in the order pairs first appear in the
// chronological history. The per-pair schema deliberately omits win/loss
// counts to stay shape-compatible with the legacy API.
func ByDevise(trades models.Trades) []models.DeviseStatistics {
	type acc struct {
		stats models.DeviseStatistics
		wins  int
	}
	groups := make(map[models.Devise]*acc)
	order := make([]models.Devise, 0)

	for _, t := range chronological(trades) {
		g, ok := groups[t.Devise]
		if !ok {
			g = &acc{stats: models.DeviseStatistics{Devise: t.Devise}}
			groups[t.Devise] = g
			order = append(order, t.Devise)
		}
		g.stats.TotalTrades++
		switch t.Result {
		case models.ResultWin:
			g.wins++
			g.stats.TotalGain += gainOf(t)
		case models.ResultLoss:
			g.stats.TotalLoss += math.Abs(lossOf(t))
		}
	}

	out := make([]models.DeviseStatistics, 0, len(order))
	for _, devise := range order {
		g := groups[devise]
		g.stats.WinRate = percentage(float64(g.wins), float64(g.stats.TotalTrades))
		g.stats.NetResult = g.stats.TotalGain - g.stats.TotalLoss
		out = append(out, g.stats)
	}
	return out
}

// ByTradeType groups trades per direction, first-encountered order.
func ByTradeType(trades models.Trades) []models.TradeTypeStatistics {
	type acc struct {
		stats models.TradeTypeStatistics
		wins  int
	}
	groups := make(map[models.TradeType]*acc)
	order := make([]models.TradeType, 0, 2)

	for _, t := range chronological(trades) {
		g, ok := groups[t.Type]
		if !ok {
			g = &acc{stats: models.TradeTypeStatistics{Type: t.Type}}
			groups[t.Type] = g
			order = append(order, t.Type)
		}
		g.stats.TotalTrades++
		switch t.Result {
		case models.ResultWin:
			g.wins++
			g.stats.TotalGain += gainOf(t)
		case models.ResultLoss:
			g.stats.TotalLoss += math.Abs(lossOf(t))
		}
	}

	out := make([]models.TradeTypeStatistics, 0, len(order))
	for _, tradeType := range order {
		g := groups[tradeType]
		g.stats.WinRate = percentage(float64(g.wins), float64(g.stats.TotalTrades))
		g.stats.NetResult = g.stats.TotalGain - g.stats.TotalLoss
		out = append(out, g.stats)
	}
	return out
}

// BestRRByWinRate picks the risk-reward bucket with the highest win rate among
// buckets holding at least MinSampleSize trades. Ties keep the earlier bucket.
// Nil means no bucket is significant, which is not an error.
func BestRRByWinRate(trades models.Trades) *models.RRStatistics {
	return bestRR(trades, func(g models.RRStatistics) float64 { return g.WinRate })
}

// BestRRByProfit picks the significant bucket with the highest net result.
func BestRRByProfit(trades models.Trades) *models.RRStatistics {
	return bestRR(trades, func(g models.RRStatistics) float64 { return g.NetResult })
}

func bestRR(trades models.Trades, score func(models.RRStatistics) float64) *models.RRStatistics {
	var best *models.RRStatistics
	for _, g := range ByRR(trades) {
		if g.TotalTrades < MinSampleSize {
			continue
		}
		if best == nil || score(g) > score(*best) {
			g := g
			best = &g
		}
	}
	return best
}
