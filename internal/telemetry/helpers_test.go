package telemetry_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lazybeaver/internal/telemetry"
)

// gaugeValue returns the single sample of a gauge family.
func gaugeValue(t *testing.T, m *telemetry.Metrics, name string) float64 {
	t.Helper()
	families, err := m.Registry().Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() == name {
			require.Len(t, f.GetMetric(), 1)

			return f.GetMetric()[0].GetGauge().GetValue()
		}
	}
	t.Fatalf("metric %s not found", name)

	return 0
}
