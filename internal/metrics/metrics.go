package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TradesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tradebook_trades_created_total",
		Help: "Total number of trades recorded",
	})

	StatsRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tradebook_stats_requests_total",
		Help: "Total number of statistics requests served",
	}, []string{"view"})

	UsersRegistered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tradebook_users_registered_total",
		Help: "Total number of registered users",
	})
)
