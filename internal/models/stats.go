package models

// GlobalStatistics is the dashboard headline view over a user's whole history.
type GlobalStatistics struct {
	TotalTrades          int     `json:"totalTrades"`
	Wins                 int     `json:"wins"`
	Losses               int     `json:"losses"`
	BreakEvens           int     `json:"breakEvens"`
	WinRate              float64 `json:"winRate"`
	LossRate             float64 `json:"lossRate"`
	BreakEvenRate        float64 `json:"breakEvenRate"`
	TotalGain            float64 `json:"totalGain"`
	TotalLoss            float64 `json:"totalLoss"`
	NetResult            float64 `json:"netResult"`
	AvgGainPerWin        float64 `json:"avgGainPerWin"`
	AvgLossPerLoss       float64 `json:"avgLossPerLoss"`
	ProfitFactor         float64 `json:"profitFactor"`
	Expectancy           float64 `json:"expectancy"`
	BestTrade            float64 `json:"bestTrade"`
	WorstTrade           float64 `json:"worstTrade"`
	AvgTradeResult       float64 `json:"avgTradeResult"`
	MaxConsecutiveWins   int     `json:"maxConsecutiveWins"`
	MaxConsecutiveLosses int     `json:"maxConsecutiveLosses"`
	MaxDrawdown          float64 `json:"maxDrawdown"`
	RecoveryFactor       float64 `json:"recoveryFactor"`
}

// RRStatistics aggregates trades sharing a risk-reward bucket.
type RRStatistics struct {
	RR          float64 `json:"rr"`
	Category    string  `json:"category"`
	TotalTrades int     `json:"totalTrades"`
	Wins        int     `json:"wins"`
	Losses      int     `json:"losses"`
	WinRate     float64 `json:"winRate"`
	TotalGain   float64 `json:"totalGain"`
	TotalLoss   float64 `json:"totalLoss"`
	NetResult   float64 `json:"netResult"`
}

// DeviseStatistics aggregates trades per pair. The schema is narrower than the
// global and RR views on purpose, matching the legacy API shape.
type DeviseStatistics struct {
	Devise      Devise  `json:"devise"`
	TotalTrades int     `json:"totalTrades"`
	WinRate     float64 `json:"winRate"`
	TotalGain   float64 `json:"totalGain"`
	TotalLoss   float64 `json:"totalLoss"`
	NetResult   float64 `json:"netResult"`
}

// TradeTypeStatistics aggregates trades per direction.
type TradeTypeStatistics struct {
	Type        TradeType `json:"type"`
	TotalTrades int       `json:"totalTrades"`
	WinRate     float64   `json:"winRate"`
	TotalGain   float64   `json:"totalGain"`
	TotalLoss   float64   `json:"totalLoss"`
	NetResult   float64   `json:"netResult"`
}

// WinLossRatio is the compact win/loss summary. WinRatePercentage is rounded
// to a whole number, unlike the two-decimal rates elsewhere.
type WinLossRatio struct {
	TotalTrades       int     `json:"totalTrades"`
	WinCount          int     `json:"winCount"`
	LossCount         int     `json:"lossCount"`
	WinRatio          float64 `json:"winRatio"`
	LossRatio         float64 `json:"lossRatio"`
	WinRatePercentage int     `json:"winRatePercentage"`
}

// DailySummary is one calendar day of trading activity.
type DailySummary struct {
	Date        string  `json:"date"`
	TotalResult float64 `json:"totalResult"`
	TradeCount  int     `json:"tradeCount"`
	IsWin       bool    `json:"isWin"`
	IsLoss      bool    `json:"isLoss"`
}

// StreakType tags the outcome a streak is made of.
type StreakType string

const (
	StreakWin  StreakType = "WIN"
	StreakLoss StreakType = "LOSS"
	StreakNone StreakType = "NONE"
)

// Streak is a run of consecutive same-outcome trades.
type Streak struct {
	Type  StreakType `json:"type"`
	Count int        `json:"count"`
}

// ConsecutiveSeries reports the longest win and loss streaks plus the streak
// the account is currently on.
type ConsecutiveSeries struct {
	CurrentStreak Streak `json:"currentStreak"`
	MaxWinStreak  int    `json:"maxWinStreak"`
	MaxLossStreak int    `json:"maxLossStreak"`
}

// RiskMetrics groups the drawdown and volatility figures.
type RiskMetrics struct {
	MaxDrawdown         float64 `json:"maxDrawdown"`
	MaxDrawdownDuration int     `json:"maxDrawdownDuration"`
	RecoveryFactor      float64 `json:"recoveryFactor"`
	SharpeRatio         float64 `json:"sharpeRatio"`
}

// TradingPatterns buckets trades by time of day and day of week. The
// performing-hour fields are nil when there are no trades.
type TradingPatterns struct {
	MorningTrades       int  `json:"morningTrades"`
	AfternoonTrades     int  `json:"afternoonTrades"`
	EveningTrades       int  `json:"eveningTrades"`
	WeekdayTrades       int  `json:"weekdayTrades"`
	WeekendTrades       int  `json:"weekendTrades"`
	BestPerformingHour  *int `json:"bestPerformingHour"`
	WorstPerformingHour *int `json:"worstPerformingHour"`
}

// AdvancedStatistics carries the secondary ratios shown on the stats page.
// AverageHoldingTime is a fixed placeholder (in hours) until entry/exit
// timestamps are recorded per trade.
type AdvancedStatistics struct {
	AverageHoldingTime float64 `json:"averageHoldingTime"`
	WinLossRatio       float64 `json:"winLossRatio"`
	LargestWin         float64 `json:"largestWin"`
	LargestLoss        float64 `json:"largestLoss"`
	AverageWinSize     float64 `json:"averageWinSize"`
	AverageLossSize    float64 `json:"averageLossSize"`
	ProfitabilityRatio float64 `json:"profitabilityRatio"`
}
