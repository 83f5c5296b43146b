package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetricsForTesting(t *testing.T) {
	m := NewMetricsForTesting()
	require.NotNil(t, m)

	// Unregistered metrics must still be usable.
	m.ComputationsTotal.Inc()
	m.FailuresTotal.WithLabelValues("missing_unit").Inc()
	m.BatchReadings.Observe(3)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ComputationsTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FailuresTotal.WithLabelValues("missing_unit")))
}
