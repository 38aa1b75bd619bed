package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsRecord(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.SetSpend("acme", WindowDaily, 42)
	m.RecordBudgetExceeded("acme", WindowDaily)
	m.RecordBudgetExceeded("acme", WindowDaily)
	m.RecordReset(WindowMonthly)
	m.SetActiveCampaigns("acme", 3)
	m.RecordStatusCheck(nil)
	m.RecordStatusCheck(errors.New("x"))
	m.ObserveDuration("update_spend", time.Now())

	assert.Equal(t, 42.0, testutil.ToFloat64(m.brandSpend.WithLabelValues("acme", WindowDaily)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.budgetExceeded.WithLabelValues("acme", WindowDaily)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.budgetResets.WithLabelValues(WindowMonthly)))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.campaignsActive.WithLabelValues("acme")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.statusChecks.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.statusChecks.WithLabelValues("error")))

	n, err := testutil.GatherAndCount(reg, "adbudget_operation_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.SetSpend("a", WindowDaily, 1)
		m.RecordBudgetExceeded("a", WindowDaily)
		m.RecordReset(WindowDaily)
		m.SetActiveCampaigns("a", 1)
		m.RecordStatusCheck(nil)
		m.ObserveDuration("op", time.Now())
	})
}
