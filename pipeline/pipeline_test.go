package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"coldtrack/bus"
)

func TestPipeline_BoundedRunTerminates(t *testing.T) {
	defer goleak.VerifyNone(t)

	cfg := fastConfig()
	cfg.Bounded = true
	cfg.Count = 5
	cfg.MinReadings = 5

	rec := &bus.Recorder{}
	events := bus.New()
	events.Register(rec)

	p, err := New(cfg, events, testLogger())
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- p.Run(context.Background()) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("bounded pipeline did not terminate")
	}

	// Exactly the configured count arrived; the single pass ran against
	// them. Retention is 60s so nothing was compacted away.
	assert.Equal(t, 5, p.Store().Len())
	latest, ok := p.Store().Latest()
	require.True(t, ok)
	assert.GreaterOrEqual(t, latest.Temperature, cfg.TempMin)
	assert.LessOrEqual(t, latest.Temperature, cfg.TempMax)
}

func TestPipeline_BoundedLowThresholdAlerts(t *testing.T) {
	cfg := fastConfig()
	cfg.Bounded = true
	cfg.Count = 3
	cfg.MinReadings = 3
	// Any simulated temperature (15-30°C) exceeds this.
	cfg.Threshold = 1.0

	rec := &bus.Recorder{}
	events := bus.New()
	events.Register(rec)

	p, err := New(cfg, events, testLogger())
	require.NoError(t, err)
	require.NoError(t, p.Run(context.Background()))

	var sawTemperature bool
	for _, e := range rec.Events() {
		if e.Category == bus.CategoryTemperature {
			sawTemperature = true
			assert.Equal(t, 9, e.Priority)
		}
	}
	assert.True(t, sawTemperature, "threshold step should have raised an alert")
}

func TestPipeline_ContinuousStopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	cfg := fastConfig()

	p, err := New(cfg, bus.New(), testLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	assert.Eventually(t, func() bool {
		return p.Store().Len() >= 2
	}, 5*time.Second, time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("pipeline did not stop on cancellation")
	}
}
