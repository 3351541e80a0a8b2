package openapi

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterHandlers wires every route onto the echo engine. authMiddleware
// gates everything under /v1 except health and the auth endpoints.
func RegisterHandlers(e *echo.Echo, h *Handlers, authMiddleware echo.MiddlewareFunc) {
	e.GET("/v1/health", h.GetHealth)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.POST("/v1/auth/register", h.Register)
	e.POST("/v1/auth/login", h.Login)

	v1 := e.Group("/v1", authMiddleware)

	v1.GET("/trades", h.GetTrades)
	v1.POST("/trades", h.CreateTrade)
	v1.GET("/trades/:id", h.GetTrade)
	v1.PUT("/trades/:id", h.UpdateTrade)
	v1.DELETE("/trades/:id", h.DeleteTrade)

	v1.GET("/stats/global", h.GetGlobalStatistics)
	v1.GET("/stats/rr", h.GetStatisticsByRR)
	v1.GET("/stats/devise", h.GetStatisticsByDevise)
	v1.GET("/stats/type", h.GetStatisticsByTradeType)
	v1.GET("/stats/best-rr/winrate", h.GetBestRRByWinRate)
	v1.GET("/stats/best-rr/profit", h.GetBestRRByProfit)
	v1.GET("/stats/winloss", h.GetWinLossRatio)
	v1.GET("/stats/daily", h.GetDailySummary)
	v1.GET("/stats/series", h.GetConsecutiveSeries)
	v1.GET("/stats/risk", h.GetRiskMetrics)
	v1.GET("/stats/patterns", h.GetTradingPatterns)
	v1.GET("/stats/advanced", h.GetAdvancedStatistics)
}
