// Package stats computes performance statistics over a single user's trade
// history. Every function is a pure transform: the input slice is never
// mutated, no I/O happens here, and identical input produces identical output.
// Order-dependent passes (streaks, drawdown, daily grouping) re-sort their own
// copy by creation time, since the store hands trades back newest first.
package stats

import (
	"math"
	"sort"

	"gitlab.com/avollard/tradebook/internal/models"
)

// Infinity is the profit-factor sentinel for a history with gains and no
// losses. math.Inf does not survive JSON encoding, so the largest
// representable float stands in for it across the whole API.
const Infinity = math.MaxFloat64

// MinSampleSize is the trade count a risk-reward bucket needs before it is
// eligible for best-bucket selection.
const MinSampleSize = 5

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// percentage returns num/den as a percentage with two decimals, 0 when den is 0.
func percentage(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return math.Round(num/den*10000) / 100
}

func gainOf(t models.Trade) float64 {
	if t.Gain == nil {
		return 0
	}
	return *t.Gain
}

func lossOf(t models.Trade) float64 {
	if t.Loss == nil {
		return 0
	}
	return *t.Loss
}

// resultOf is the net outcome of one trade. Loss is stored non-positive, so
// plain addition is correct.
func resultOf(t models.Trade) float64 {
	return gainOf(t) + lossOf(t)
}

// chronological returns a copy of trades sorted by creation time ascending.
// The sort is stable so trades sharing a timestamp keep their input order.
func chronological(trades models.Trades) models.Trades {
	ordered := make(models.Trades, len(trades))
	copy(ordered, trades)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
	})
	return ordered
}

// streakPass walks trades in chronological order and tracks win/loss runs.
// A break-even trade ends both kinds of run.
func streakPass(ordered models.Trades) (maxWin, maxLoss, curWin, curLoss int) {
	for _, t := range ordered {
		switch t.Result {
		case models.ResultWin:
			curWin++
			curLoss = 0
			if curWin > maxWin {
				maxWin = curWin
			}
		case models.ResultLoss:
			curLoss++
			curWin = 0
			if curLoss > maxLoss {
				maxLoss = curLoss
			}
		default:
			curWin = 0
			curLoss = 0
		}
	}
	return maxWin, maxLoss, curWin, curLoss
}

// drawdownPass tracks the running balance against its peak. Both start at 0.
// maxDuration is the longest run of consecutive trades spent at or below the
// latest peak; the counter resets whenever a new peak is set.
func drawdownPass(ordered models.Trades) (maxDrawdown float64, maxDuration int, finalBalance float64) {
	var peak, balance float64
	var curDuration int
	for _, t := range ordered {
		balance += resultOf(t)
		if balance > peak {
			peak = balance
			curDuration = 0
		} else {
			curDuration++
		}
		if dd := peak - balance; dd > maxDrawdown {
			maxDrawdown = dd
		}
		if curDuration > maxDuration {
			maxDuration = curDuration
		}
	}
	return maxDrawdown, maxDuration, balance
}

// Global computes the headline statistics over the whole history. An empty
// history yields the zero-valued object, not an error.
func Global(trades models.Trades) models.GlobalStatistics {
	var s models.GlobalStatistics
	if len(trades) == 0 {
		return s
	}
	ordered := chronological(trades)
	s.TotalTrades = len(ordered)

	for _, t := range ordered {
		switch t.Result {
		case models.ResultWin:
			s.Wins++
			s.TotalGain += gainOf(t)
		case models.ResultLoss:
			s.Losses++
			s.TotalLoss += math.Abs(lossOf(t))
		case models.ResultBreakEven:
			s.BreakEvens++
		}
		if g := gainOf(t); g > s.BestTrade {
			s.BestTrade = g
		}
		if l := lossOf(t); l < s.WorstTrade {
			s.WorstTrade = l
		}
	}

	total := float64(s.TotalTrades)
	s.NetResult = s.TotalGain - s.TotalLoss
	s.WinRate = percentage(float64(s.Wins), total)
	s.LossRate = percentage(float64(s.Losses), total)
	s.BreakEvenRate = percentage(float64(s.BreakEvens), total)

	if s.Wins > 0 {
		s.AvgGainPerWin = s.TotalGain / float64(s.Wins)
	}
	if s.Losses > 0 {
		s.AvgLossPerLoss = s.TotalLoss / float64(s.Losses)
	}
	s.ProfitFactor = profitFactor(s.TotalGain, s.TotalLoss)
	s.Expectancy = expectancy(s.WinRate, s.AvgGainPerWin, s.AvgLossPerLoss)
	s.AvgTradeResult = s.NetResult / total

	s.MaxConsecutiveWins, s.MaxConsecutiveLosses, _, _ = streakPass(ordered)

	maxDD, _, _ := drawdownPass(ordered)
	s.MaxDrawdown = maxDD
	if maxDD != 0 {
		s.RecoveryFactor = s.NetResult / math.Abs(maxDD)
	}
	return s
}

// profitFactor is totalGain/totalLoss with two decimals. A history with gains
// and no losses maps to the Infinity sentinel, an empty one to 0.
func profitFactor(totalGain, totalLoss float64) float64 {
	if totalLoss == 0 {
		if totalGain > 0 {
			return Infinity
		}
		return 0
	}
	return round2(totalGain / totalLoss)
}

// expectancy is the expected net result per trade, from the win rate (in
// percent) and the average win/loss magnitudes.
func expectancy(winRate, avgWin, avgLoss float64) float64 {
	lossRate := 100 - winRate
	return round2((winRate/100)*avgWin - (lossRate/100)*math.Abs(avgLoss))
}

// Series reports the longest win and loss streaks and the streak the last
// trade belongs to.
func Series(trades models.Trades) models.ConsecutiveSeries {
	series := models.ConsecutiveSeries{
		CurrentStreak: models.Streak{Type: models.StreakNone},
	}
	if len(trades) == 0 {
		return series
	}
	ordered := chronological(trades)
	maxWin, maxLoss, curWin, curLoss := streakPass(ordered)
	series.MaxWinStreak = maxWin
	series.MaxLossStreak = maxLoss

	switch ordered[len(ordered)-1].Result {
	case models.ResultWin:
		series.CurrentStreak = models.Streak{Type: models.StreakWin, Count: curWin}
	case models.ResultLoss:
		series.CurrentStreak = models.Streak{Type: models.StreakLoss, Count: curLoss}
	}
	return series
}
