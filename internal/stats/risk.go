package stats

import (
	"math"
	"time"

	"gitlab.com/avollard/tradebook/internal/models"
)

// placeholderHoldingHours stands in for a real holding-time average until
// trades record separate open and close timestamps.
const placeholderHoldingHours = 2

// Risk computes drawdown depth and duration, the recovery factor and a
// simplified Sharpe ratio (mean per-trade result over its population
// standard deviation). All figures are rounded to two decimals.
func Risk(trades models.Trades) models.RiskMetrics {
	var m models.RiskMetrics
	if len(trades) == 0 {
		return m
	}
	ordered := chronological(trades)
	maxDD, maxDuration, finalBalance := drawdownPass(ordered)

	var sum float64
	for _, t := range ordered {
		sum += resultOf(t)
	}
	mean := sum / float64(len(ordered))
	var variance float64
	for _, t := range ordered {
		d := resultOf(t) - mean
		variance += d * d
	}
	variance /= float64(len(ordered))
	stdDev := math.Sqrt(variance)

	if stdDev != 0 {
		m.SharpeRatio = round2(mean / stdDev)
	}
	if maxDD != 0 {
		m.RecoveryFactor = round2(finalBalance / maxDD)
	}
	m.MaxDrawdown = round2(maxDD)
	m.MaxDrawdownDuration = maxDuration
	return m
}

// Patterns buckets trades into times of day and weekday/weekend, and finds
// the hours with the best and worst average result. The hour fields stay nil
// when the history is empty.
func Patterns(trades models.Trades) models.TradingPatterns {
	var p models.TradingPatterns
	if len(trades) == 0 {
		return p
	}

	type hourly struct {
		total float64
		count int
	}
	perHour := make(map[int]*hourly)

	for _, t := range trades {
		hour := t.CreatedAt.Hour()
		switch {
		case hour >= 6 && hour < 12:
			p.MorningTrades++
		case hour >= 12 && hour < 18:
			p.AfternoonTrades++
		default:
			p.EveningTrades++
		}

		switch t.CreatedAt.Weekday() {
		case time.Saturday, time.Sunday:
			p.WeekendTrades++
		default:
			p.WeekdayTrades++
		}

		h, ok := perHour[hour]
		if !ok {
			h = &hourly{}
			perHour[hour] = h
		}
		h.total += resultOf(t)
		h.count++
	}

	bestAvg := math.Inf(-1)
	worstAvg := math.Inf(1)
	for hour := 0; hour < 24; hour++ {
		h, ok := perHour[hour]
		if !ok {
			continue
		}
		avg := h.total / float64(h.count)
		if avg > bestAvg {
			bestAvg = avg
			hour := hour
			p.BestPerformingHour = &hour
		}
		if avg < worstAvg {
			worstAvg = avg
			hour := hour
			p.WorstPerformingHour = &hour
		}
	}
	return p
}

// Advanced computes the secondary size ratios. When there are no losses the
// win/loss and profitability ratios fall back to the win side alone rather
// than dividing by zero.
func Advanced(trades models.Trades) models.AdvancedStatistics {
	var a models.AdvancedStatistics
	if len(trades) == 0 {
		return a
	}

	var winCount, lossCount int
	var totalWin, totalLoss float64
	for _, t := range trades {
		switch t.Result {
		case models.ResultWin:
			winCount++
			g := gainOf(t)
			totalWin += g
			if g > a.LargestWin {
				a.LargestWin = g
			}
		case models.ResultLoss:
			lossCount++
			l := math.Abs(lossOf(t))
			totalLoss += l
			if l > a.LargestLoss {
				a.LargestLoss = l
			}
		}
	}

	if winCount > 0 {
		a.AverageWinSize = totalWin / float64(winCount)
	}
	if lossCount > 0 {
		a.AverageLossSize = totalLoss / float64(lossCount)
	}
	if lossCount > 0 {
		a.WinLossRatio = float64(winCount) / float64(lossCount)
	} else {
		a.WinLossRatio = float64(winCount)
	}
	if a.AverageLossSize > 0 {
		a.ProfitabilityRatio = a.AverageWinSize / a.AverageLossSize
	} else {
		a.ProfitabilityRatio = a.AverageWinSize
	}

	a.AverageHoldingTime = round2(placeholderHoldingHours)
	a.WinLossRatio = round2(a.WinLossRatio)
	a.LargestWin = round2(a.LargestWin)
	a.LargestLoss = round2(a.LargestLoss)
	a.AverageWinSize = round2(a.AverageWinSize)
	a.AverageLossSize = round2(a.AverageLossSize)
	a.ProfitabilityRatio = round2(a.ProfitabilityRatio)
	return a
}
