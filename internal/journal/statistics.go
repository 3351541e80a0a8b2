package journal

import (
	"context"

	"gitlab.com/avollard/tradebook/internal/models"
	"gitlab.com/avollard/tradebook/internal/stats"
)

// Each statistics method loads the owner's full history once and hands the
// snapshot to the pure engine. A trade written after the snapshot is read is
// simply not part of that response.

func (j *Journal) GlobalStatistics(ctx context.Context, userID string) (models.GlobalStatistics, error) {
	trades, err := j.store.GetTrades(ctx, userID)
	if err != nil {
		return models.GlobalStatistics{}, err
	}
	return stats.Global(trades), nil
}

func (j *Journal) StatisticsByRR(ctx context.Context, userID string) ([]models.RRStatistics, error) {
	trades, err := j.store.GetTrades(ctx, userID)
	if err != nil {
		return nil, err
	}
	return stats.ByRR(trades), nil
}

func (j *Journal) StatisticsByDevise(ctx context.Context, userID string) ([]models.DeviseStatistics, error) {
	trades, err := j.store.GetTrades(ctx, userID)
	if err != nil {
		return nil, err
	}
	return stats.ByDevise(trades), nil
}

func (j *Journal) StatisticsByTradeType(ctx context.Context, userID string) ([]models.TradeTypeStatistics, error) {
	trades, err := j.store.GetTrades(ctx, userID)
	if err != nil {
		return nil, err
	}
	return stats.ByTradeType(trades), nil
}

// BestRRByWinRate returns nil when no bucket reaches the significance
// threshold; callers serialize that as JSON null.
func (j *Journal) BestRRByWinRate(ctx context.Context, userID string) (*models.RRStatistics, error) {
	trades, err := j.store.GetTrades(ctx, userID)
	if err != nil {
		return nil, err
	}
	return stats.BestRRByWinRate(trades), nil
}

func (j *Journal) BestRRByProfit(ctx context.Context, userID string) (*models.RRStatistics, error) {
	trades, err := j.store.GetTrades(ctx, userID)
	if err != nil {
		return nil, err
	}
	return stats.BestRRByProfit(trades), nil
}

func (j *Journal) WinLossRatio(ctx context.Context, userID string) (models.WinLossRatio, error) {
	trades, err := j.store.GetTrades(ctx, userID)
	if err != nil {
		return models.WinLossRatio{}, err
	}
	return stats.WinLossRatio(trades), nil
}

func (j *Journal) DailySummary(ctx context.Context, userID string) ([]models.DailySummary, error) {
	trades, err := j.store.GetTrades(ctx, userID)
	if err != nil {
		return nil, err
	}
	return stats.DailySummary(trades), nil
}

func (j *Journal) ConsecutiveSeries(ctx context.Context, userID string) (models.ConsecutiveSeries, error) {
	trades, err := j.store.GetTrades(ctx, userID)
	if err != nil {
		return models.ConsecutiveSeries{}, err
	}
	return stats.Series(trades), nil
}

func (j *Journal) RiskMetrics(ctx context.Context, userID string) (models.RiskMetrics, error) {
	trades, err := j.store.GetTrades(ctx, userID)
	if err != nil {
		return models.RiskMetrics{}, err
	}
	return stats.Risk(trades), nil
}

func (j *Journal) TradingPatterns(ctx context.Context, userID string) (models.TradingPatterns, error) {
	trades, err := j.store.GetTrades(ctx, userID)
	if err != nil {
		return models.TradingPatterns{}, err
	}
	return stats.Patterns(trades), nil
}

func (j *Journal) AdvancedStatistics(ctx context.Context, userID string) (models.AdvancedStatistics, error) {
	trades, err := j.store.GetTrades(ctx, userID)
	if err != nil {
		return models.AdvancedStatistics{}, err
	}
	return stats.Advanced(trades), nil
}
