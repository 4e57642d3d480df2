package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/pkg/machine"
)

func TestMetrics_CountsRunsAndSteps(t *testing.T) {
	metrics := NewMetrics()
	reg := prometheus.NewRegistry()
	require.NoError(t, metrics.Register(reg))

	eng := turing.New(turing.WithLifecycleHooks(metrics.Hooks()))

	_, err := eng.Run(machine.BinaryIncrementer(), "101", nil) // 6 steps, accepted
	require.NoError(t, err)
	_, err = eng.Run(machine.AnBn(), "aab", nil) // rejected
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.runs.WithLabelValues(string(machine.OutcomeAccepted))))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.runs.WithLabelValues(string(machine.OutcomeRejected))))
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.runs.WithLabelValues(string(machine.OutcomeHalted))))
	assert.Equal(t, 1, testutil.CollectAndCount(metrics.span, "turing_steps_per_run"))
	assert.GreaterOrEqual(t, testutil.ToFloat64(metrics.steps), 6.0)
}

func TestMetrics_RegisterTwiceFails(t *testing.T) {
	metrics := NewMetrics()
	reg := prometheus.NewRegistry()
	require.NoError(t, metrics.Register(reg))
	assert.Error(t, metrics.Register(reg))
}
