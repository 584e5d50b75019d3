package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderMetrics_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewProviderMetrics(reg)
	require.NoError(t, err)

	m.Observe("get_wallet", OutcomeSuccess, 120*time.Millisecond)
	m.Observe("get_wallet", OutcomeSuccess, 80*time.Millisecond)
	m.Observe("get_wallet", OutcomeProviderError, 10*time.Millisecond)

	assert.InDelta(t, 2, testutil.ToFloat64(m.requests.WithLabelValues("get_wallet", OutcomeSuccess)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.requests.WithLabelValues("get_wallet", OutcomeProviderError)), 0)
	assert.Equal(t, 1, testutil.CollectAndCount(m.duration))
}

func TestProviderMetrics_DoubleRegistrationFails(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewProviderMetrics(reg)
	require.NoError(t, err)

	_, err = NewProviderMetrics(reg)
	assert.Error(t, err)
}

func TestProviderMetrics_NilIsNoop(t *testing.T) {
	var m *ProviderMetrics

	assert.NotPanics(t, func() {
		m.Observe("list_users", OutcomeSuccess, time.Second)
	})
}

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry()

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}
