package tracker_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/ifml-editor-alpha/platformkit/core"
	"github.com/ifml-editor-alpha/platformkit/tracker"
)

// counterValue reads the current value of a counter from the registry.
func counterValue(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() == name {
			require.Len(t, mf.GetMetric(), 1)
			return mf.GetMetric()[0].GetCounter().GetValue()
		}
	}
	return 0
}

func TestWithMetrics_CountsHitsMissesAndFailures(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := tracker.New(tracker.WithMetrics(reg))
	ctx, services := newFakeContext("ctx-1")

	// Miss, then hit.
	_, _, err := c.Get(ctx, "com.example.Service")
	require.NoError(t, err)
	_, _, err = c.Get(ctx, "com.example.Service")
	require.NoError(t, err)

	// Failed creation.
	services.setErr(core.ErrStopped)
	_, _, err = c.Get(ctx, "com.example.Other")
	require.Error(t, err)

	require.Equal(t, float64(1), counterValue(t, reg, "platformkit_tracker_cache_hits_total"))
	require.Equal(t, float64(2), counterValue(t, reg, "platformkit_tracker_cache_misses_total"))
	require.Equal(t, float64(1), counterValue(t, reg, "platformkit_tracker_cache_creation_failures_total"))
}
