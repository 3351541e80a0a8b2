package openapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gitlab.com/avollard/tradebook/internal/auth"
	"gitlab.com/avollard/tradebook/internal/metrics"
)

// statsView wraps the load-then-compute shape shared by every statistics
// endpoint. The journal method returns the serialized view or an error; nil
// views (best-RR with no significant bucket) serialize as JSON null.
func (h *Handlers) statsView(ctx echo.Context, view string, compute func(userID string) (interface{}, error)) error {
	result, err := compute(auth.UserID(ctx))
	if err != nil {
		h.logger.Err(err).Str("view", view).Msg("failure computing statistics")
		return echo.NewHTTPError(http.StatusInternalServerError, GeneralErrorResponse{Error: err.Error()})
	}
	metrics.StatsRequests.WithLabelValues(view).Inc()
	return ctx.JSON(http.StatusOK, result)
}

// (GET /v1/stats/global)
func (h *Handlers) GetGlobalStatistics(ctx echo.Context) error {
	return h.statsView(ctx, "global", func(userID string) (interface{}, error) {
		return h.journal.GlobalStatistics(ctx.Request().Context(), userID)
	})
}

// (GET /v1/stats/rr)
func (h *Handlers) GetStatisticsByRR(ctx echo.Context) error {
	return h.statsView(ctx, "rr", func(userID string) (interface{}, error) {
		return h.journal.StatisticsByRR(ctx.Request().Context(), userID)
	})
}

// (GET /v1/stats/devise)
func (h *Handlers) GetStatisticsByDevise(ctx echo.Context) error {
	return h.statsView(ctx, "devise", func(userID string) (interface{}, error) {
		return h.journal.StatisticsByDevise(ctx.Request().Context(), userID)
	})
}

// (GET /v1/stats/type)
func (h *Handlers) GetStatisticsByTradeType(ctx echo.Context) error {
	return h.statsView(ctx, "type", func(userID string) (interface{}, error) {
		return h.journal.StatisticsByTradeType(ctx.Request().Context(), userID)
	})
}

// (GET /v1/stats/best-rr/winrate)
func (h *Handlers) GetBestRRByWinRate(ctx echo.Context) error {
	return h.statsView(ctx, "best-rr-winrate", func(userID string) (interface{}, error) {
		return h.journal.BestRRByWinRate(ctx.Request().Context(), userID)
	})
}

// (GET /v1/stats/best-rr/profit)
func (h *Handlers) GetBestRRByProfit(ctx echo.Context) error {
	return h.statsView(ctx, "best-rr-profit", func(userID string) (interface{}, error) {
		return h.journal.BestRRByProfit(ctx.Request().Context(), userID)
	})
}

// (GET /v1/stats/winloss)
func (h *Handlers) GetWinLossRatio(ctx echo.Context) error {
	return h.statsView(ctx, "winloss", func(userID string) (interface{}, error) {
		return h.journal.WinLossRatio(ctx.Request().Context(), userID)
	})
}

// (GET /v1/stats/daily)
func (h *Handlers) GetDailySummary(ctx echo.Context) error {
	return h.statsView(ctx, "daily", func(userID string) (interface{}, error) {
		return h.journal.DailySummary(ctx.Request().Context(), userID)
	})
}

// (GET /v1/stats/series)
func (h *Handlers) GetConsecutiveSeries(ctx echo.Context) error {
	return h.statsView(ctx, "series", func(userID string) (interface{}, error) {
		return h.journal.ConsecutiveSeries(ctx.Request().Context(), userID)
	})
}

// (GET /v1/stats/risk)
func (h *Handlers) GetRiskMetrics(ctx echo.Context) error {
	return h.statsView(ctx, "risk", func(userID string) (interface{}, error) {
		return h.journal.RiskMetrics(ctx.Request().Context(), userID)
	})
}

// (GET /v1/stats/patterns)
func (h *Handlers) GetTradingPatterns(ctx echo.Context) error {
	return h.statsView(ctx, "patterns", func(userID string) (interface{}, error) {
		return h.journal.TradingPatterns(ctx.Request().Context(), userID)
	})
}

// (GET /v1/stats/advanced)
func (h *Handlers) GetAdvancedStatistics(ctx echo.Context) error {
	return h.statsView(ctx, "advanced", func(userID string) (interface{}, error) {
		return h.journal.AdvancedStatistics(ctx.Request().Context(), userID)
	})
}
