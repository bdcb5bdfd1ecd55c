package chain

import (
	"time"

	"coldtrack/bus"
	"coldtrack/core"
	"coldtrack/stats"
)

// VariationStep watches for sudden swings: if the max-min spread of
// temperature or humidity within its own trailing window exceeds MaxSpread,
// it raises a priority-8 variation alert. An empty window means no
// variation detected.
type VariationStep struct {
	Window    time.Duration
	MaxSpread float64
}

func (s *VariationStep) Evaluate(ctx *Context) {
	readings := ctx.Store.SnapshotSince(ctx.Now, s.Window)

	tempSpread, ok := stats.Spread(readings, func(r core.Reading) float64 { return r.Temperature })
	if !ok {
		return
	}
	humSpread, _ := stats.Spread(readings, func(r core.Reading) float64 { return r.Humidity })

	if tempSpread <= s.MaxSpread && humSpread <= s.MaxSpread {
		return
	}
	ctx.Log.Infow("sudden variation detected",
		"window", s.Window,
		"temp_spread", tempSpread,
		"hum_spread", humSpread,
		"max_spread", s.MaxSpread,
	)
	ctx.Bus.Publish(bus.NewEvent(
		"sudden variation in temperature or humidity",
		bus.CategoryVariation,
		8,
		ctx.Now,
	))
}
