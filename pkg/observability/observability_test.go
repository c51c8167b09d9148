package observability_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/aretw0/furrow/pkg/config"
	"github.com/aretw0/furrow/pkg/observability"
	"github.com/aretw0/furrow/pkg/search"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_RecordSearch(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg)

	p, err := config.Default().Build()
	require.NoError(t, err)
	res, err := p.Plan(context.Background(), search.WithHooks(m.Hooks()))
	require.NoError(t, err)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.Searches.WithLabelValues("goal")))
	assert.Equal(t, float64(res.Expanded), testutil.ToFloat64(m.Expansions))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.Generated))
	count, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 6, count)
}

func TestMetrics_NilRegisterer(t *testing.T) {
	m := observability.NewMetrics(nil)
	assert.NotPanics(t, func() {
		m.Searches.WithLabelValues("no_plan").Inc()
	})
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Searches.WithLabelValues("no_plan")))
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	p, err := config.Default().Build()
	require.NoError(t, err)
	_, err = p.Plan(context.Background(), search.WithHooks(observability.LogHooks(logger)))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "node_expand")
	assert.Contains(t, out, "goal_reached")
	assert.Contains(t, out, "outcome=goal")
}
