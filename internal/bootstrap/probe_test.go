package bootstrap

import (
	"context"
	"errors"
	"testing"

	"github.com/GoSim-25-26J-441/mongo-gateway/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestProbe_RunSetsGauge(t *testing.T) {
	up := NewProbe(pingFunc(func(ctx context.Context) error {
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		return nil
	}))
	require.NoError(t, up.Run())
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.DatabaseUp))

	down := NewProbe(pingFunc(func(context.Context) error { return errors.New("refused") }))
	require.Error(t, down.Run())
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.DatabaseUp))
}

func TestStartProbe(t *testing.T) {
	p := NewProbe(pingFunc(func(context.Context) error { return nil }))

	t.Run("accepts descriptors and six-field schedules", func(t *testing.T) {
		for _, schedule := range []string{"@every 30s", "*/15 * * * * *", "*/5 * * * *"} {
			c, err := StartProbe(schedule, p)
			require.NoError(t, err, schedule)
			c.Stop()
		}
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := StartProbe("not a schedule", p)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "PROBE_SCHEDULE")
	})
}

func TestStartProbe_ExportsGaugeOnlyWhenScheduled(t *testing.T) {
	reg := prometheus.NewRegistry()

	n, err := testutil.GatherAndCount(reg, "docgw_database_up")
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	calls := 0
	p := NewProbe(pingFunc(func(context.Context) error {
		calls++
		return nil
	}))

	c, err := startProbe("@every 1h", p, reg)
	require.NoError(t, err)
	defer c.Stop()

	assert.Equal(t, 1, calls, "first check runs before the schedule fires")
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.DatabaseUp))

	n, err = testutil.GatherAndCount(reg, "docgw_database_up")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	c2, err := startProbe("@every 1h", p, reg)
	require.NoError(t, err, "re-registering the gauge is tolerated")
	c2.Stop()
}
