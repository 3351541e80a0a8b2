package stats

import (
	"math"
	"sort"

	"gitlab.com/avollard/tradebook/internal/models"
)

// WinLossRatio summarizes win and loss counts as fractions. The percentage
// field is rounded to a whole number, unlike the two-decimal rates of the
// other views; the dashboard has always shown it that way.
func WinLossRatio(trades models.Trades) models.WinLossRatio {
	r := models.WinLossRatio{TotalTrades: len(trades)}
	for _, t := range trades {
		switch t.Result {
		case models.ResultWin:
			r.WinCount++
		case models.ResultLoss:
			r.LossCount++
		}
	}
	if r.TotalTrades == 0 {
		return r
	}
	total := float64(r.TotalTrades)
	r.WinRatio = float64(r.WinCount) / total
	r.LossRatio = float64(r.LossCount) / total
	r.WinRatePercentage = int(math.Round(float64(r.WinCount) / total * 100))
	return r
}

// DailySummary folds the history into one row per calendar day of the stored
// timestamps, newest day first.
func DailySummary(trades models.Trades) []models.DailySummary {
	type acc struct {
		total float64
		count int
	}
	days := make(map[string]*acc)
	for _, t := range trades {
		date := t.CreatedAt.Format("2006-01-02")
		d, ok := days[date]
		if !ok {
			d = &acc{}
			days[date] = d
		}
		d.total += resultOf(t)
		d.count++
	}

	dates := make([]string, 0, len(days))
	for date := range days {
		dates = append(dates, date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	out := make([]models.DailySummary, 0, len(dates))
	for _, date := range dates {
		d := days[date]
		total := round2(d.total)
		out = append(out, models.DailySummary{
			Date:        date,
			TotalResult: total,
			TradeCount:  d.count,
			IsWin:       total > 0,
			IsLoss:      total < 0,
		})
	}
	return out
}
