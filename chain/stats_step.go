package chain

import (
	"time"

	"coldtrack/stats"
)

// StatsStep recomputes window statistics over its trailing window and
// stores the snapshot on the context for later steps. It never emits.
type StatsStep struct {
	Window time.Duration
}

func (s *StatsStep) Evaluate(ctx *Context) {
	readings := ctx.Store.SnapshotSince(ctx.Now, s.Window)
	ctx.Stats = stats.Compute(readings)

	temp := ctx.Stats.Temperature
	hum := ctx.Stats.Humidity
	ctx.Log.Infow("window statistics",
		"window", s.Window,
		"samples", temp.Count,
		"mean_temp", meanField(temp),
		"stddev_temp", temp.Stddev,
		"mean_hum", meanField(hum),
		"stddev_hum", hum.Stddev,
	)
}

func meanField(s stats.Summary) interface{} {
	if !s.HasMean() {
		return "n/a"
	}
	return s.Mean
}
