package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Transaction metrics
	TransactionsCreated *prometheus.CounterVec
	TransactionsDeleted prometheus.Counter
	TransactionAmount   prometheus.Histogram

	// Settlement metrics
	SettlementsRecorded *prometheus.CounterVec
	SettlementAmount    prometheus.Histogram
	SettlementErrors    *prometheus.CounterVec
	SettlementRetries   prometheus.Counter

	// Report metrics
	ReportRequests   *prometheus.CounterVec
	ReportCacheHits  *prometheus.CounterVec
	ReportMismatches prometheus.Gauge

	// Database metrics
	DBConnections prometheus.Gauge

	// Authentication metrics
	AuthFailures *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Transaction metrics
		TransactionsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hisab_transactions_created_total",
				Help: "Total number of transactions created by type",
			},
			[]string{"type"},
		),
		TransactionsDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "hisab_transactions_deleted_total",
			Help: "Total number of transactions deleted",
		}),
		TransactionAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "hisab_transaction_amount",
			Help:    "Transaction amounts",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
		}),

		// Settlement metrics
		SettlementsRecorded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hisab_settlements_recorded_total",
				Help: "Total number of settlements recorded by type",
			},
			[]string{"type"},
		),
		SettlementAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "hisab_settlement_amount",
			Help:    "Settlement amounts",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000},
		}),
		SettlementErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hisab_settlement_errors_total",
				Help: "Total number of settlement errors by type",
			},
			[]string{"error_type"},
		),
		SettlementRetries: promauto.NewCounter(prometheus.CounterOpts{
			Name: "hisab_settlement_retries_total",
			Help: "Total number of settlement transaction retries",
		}),

		// Report metrics
		ReportRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hisab_report_requests_total",
				Help: "Total report requests by report",
			},
			[]string{"report"},
		),
		ReportCacheHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hisab_report_cache_hits_total",
				Help: "Report cache hits and misses",
			},
			[]string{"report", "result"},
		),
		ReportMismatches: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "hisab_settlement_mismatches",
			Help: "Settlement mismatches found by the last consistency check",
		}),

		// Database metrics
		DBConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "hisab_db_connections",
			Help: "Current number of database connections",
		}),

		// Authentication metrics
		AuthFailures: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hisab_auth_failures_total",
				Help: "Total authentication failures by reason",
			},
			[]string{"reason"},
		),
	}
}
