package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for the AMM module
type Metrics struct {
	SwapsTotal       *prometheus.CounterVec
	FeesAccrued      *prometheus.CounterVec
	IssuanceRequests *prometheus.CounterVec
	LiquidityOps     *prometheus.CounterVec
	PairsTotal       prometheus.Gauge
}

var (
	ammMetricsOnce sync.Once
	ammMetrics     *Metrics
)

// NewMetrics creates and registers the AMM metrics (singleton pattern)
func NewMetrics() *Metrics {
	ammMetricsOnce.Do(func() {
		ammMetrics = &Metrics{
			SwapsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "pond",
					Subsystem: "amm",
					Name:      "swaps_total",
					Help:      "Total number of swap executions by mode and result",
				},
				[]string{"mode", "result"},
			),
			FeesAccrued: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "pond",
					Subsystem: "amm",
					Name:      "fees_accrued_total",
					Help:      "Owner fees accrued per denom",
				},
				[]string{"denom"},
			),
			IssuanceRequests: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "pond",
					Subsystem: "amm",
					Name:      "issuance_requests_total",
					Help:      "LP token issuance requests by outcome",
				},
				[]string{"outcome"},
			),
			LiquidityOps: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "pond",
					Subsystem: "amm",
					Name:      "liquidity_ops_total",
					Help:      "Liquidity deposits and redemptions",
				},
				[]string{"op"},
			),
			PairsTotal: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "pond",
					Subsystem: "amm",
					Name:      "pairs_total",
					Help:      "Number of committed trading pairs",
				},
			),
		}
	})
	return ammMetrics
}
