// Package metrics exposes Prometheus collectors for the budget engine.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Budget windows used as label values.
const (
	WindowDaily   = "daily"
	WindowMonthly = "monthly"
)

// Metrics contains Prometheus metrics for brands and campaigns.
type Metrics struct {
	brandSpend      *prometheus.GaugeVec
	budgetExceeded  *prometheus.CounterVec
	budgetResets    *prometheus.CounterVec
	campaignsActive *prometheus.GaugeVec
	statusChecks    *prometheus.CounterVec
	opDuration      *prometheus.HistogramVec
}

// NewMetrics registers the collectors with reg. A nil reg falls back to the
// default Prometheus registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Metrics{
		brandSpend: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "adbudget_brand_spend",
				Help: "Current accumulated spend per brand and budget window",
			},
			[]string{"brand", "window"},
		),

		budgetExceeded: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adbudget_budget_exceeded_total",
				Help: "Number of spend updates that left a brand at or over budget",
			},
			[]string{"brand", "window"},
		),

		budgetResets: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adbudget_budget_resets_total",
				Help: "Number of all-brand budget resets",
			},
			[]string{"window"},
		),

		campaignsActive: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "adbudget_campaigns_active",
				Help: "Number of active campaigns per brand",
			},
			[]string{"brand"},
		),

		statusChecks: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adbudget_status_checks_total",
				Help: "Number of all-brand campaign status checks",
			},
			[]string{"result"},
		),

		opDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "adbudget_operation_duration_seconds",
				Help:    "Duration of use case operations in seconds",
				Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
			},
			[]string{"operation"},
		),
	}
}

// SetSpend records the current spend of a brand for a window.
func (m *Metrics) SetSpend(brand, window string, spend float64) {
	if m == nil {
		return
	}
	m.brandSpend.WithLabelValues(brand, window).Set(spend)
}

// RecordBudgetExceeded records a spend update that reached a budget.
func (m *Metrics) RecordBudgetExceeded(brand, window string) {
	if m == nil {
		return
	}
	m.budgetExceeded.WithLabelValues(brand, window).Inc()
}

// RecordReset records an all-brand reset of a window.
func (m *Metrics) RecordReset(window string) {
	if m == nil {
		return
	}
	m.budgetResets.WithLabelValues(window).Inc()
}

// SetActiveCampaigns records the number of running campaigns of a brand.
func (m *Metrics) SetActiveCampaigns(brand string, n int) {
	if m == nil {
		return
	}
	m.campaignsActive.WithLabelValues(brand).Set(float64(n))
}

// RecordStatusCheck records the outcome of an all-brand status check.
func (m *Metrics) RecordStatusCheck(err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.statusChecks.WithLabelValues(result).Inc()
}

// ObserveDuration records how long an operation took since start.
func (m *Metrics) ObserveDuration(operation string, start time.Time) {
	if m == nil {
		return
	}
	m.opDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
