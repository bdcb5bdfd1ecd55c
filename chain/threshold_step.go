package chain

import (
	"fmt"

	"coldtrack/bus"
)

// ThresholdStep compares the latest reading's temperature against a fixed
// threshold and raises a priority-9 temperature alert when exceeded. With no
// readings yet it is a no-op.
type ThresholdStep struct {
	Threshold float64
}

func (s *ThresholdStep) Evaluate(ctx *Context) {
	latest, ok := ctx.Store.Latest()
	if !ok {
		return
	}
	if latest.Temperature <= s.Threshold {
		return
	}
	ctx.Log.Infow("temperature threshold exceeded",
		"temperature", latest.Temperature,
		"threshold", s.Threshold,
	)
	ctx.Bus.Publish(bus.NewEvent(
		fmt.Sprintf("high temperature: %.2f°C (threshold %.1f°C)", latest.Temperature, s.Threshold),
		bus.CategoryTemperature,
		9,
		ctx.Now,
	))
}
