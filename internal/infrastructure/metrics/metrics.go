package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Transfer metrics
	TransfersCompleted prometheus.Counter
	TransferDuration   prometheus.Histogram
	TransferAmount     prometheus.Histogram
	TransferErrors     *prometheus.CounterVec

	// Balance query metrics
	BalanceQueries      prometheus.Counter
	BalanceQueryErrors  *prometheus.CounterVec
	BalanceQueryLatency prometheus.Histogram

	// Database metrics
	DBQueries  *prometheus.CounterVec
	DBDuration *prometheus.HistogramVec
	DBErrors   *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		TransfersCompleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "account_manager_transfers_completed_total",
			Help: "Total number of transfers completed",
		}),
		TransferDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "account_manager_transfer_duration_seconds",
			Help:    "Duration of transfer operations",
			Buckets: prometheus.DefBuckets,
		}),
		TransferAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "account_manager_transfer_amount",
			Help:    "Transfer amounts",
			Buckets: []float64{100, 1000, 10000, 100000, 1000000, 10000000},
		}),
		TransferErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "account_manager_transfer_errors_total",
				Help: "Total number of transfer errors by code",
			},
			[]string{"code"},
		),

		BalanceQueries: promauto.NewCounter(prometheus.CounterOpts{
			Name: "account_manager_balance_queries_total",
			Help: "Total number of balance queries",
		}),
		BalanceQueryErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "account_manager_balance_query_errors_total",
				Help: "Total number of balance query errors by code",
			},
			[]string{"code"},
		),
		BalanceQueryLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "account_manager_balance_query_duration_seconds",
			Help:    "Duration of balance queries",
			Buckets: prometheus.DefBuckets,
		}),

		DBQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "account_manager_db_queries_total",
				Help: "Total database queries",
			},
			[]string{"operation", "table"},
		),
		DBDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "account_manager_db_query_duration_seconds",
				Help:    "Database query duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "table"},
		),
		DBErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "account_manager_db_errors_total",
				Help: "Total database errors",
			},
			[]string{"operation"},
		),
	}
}
