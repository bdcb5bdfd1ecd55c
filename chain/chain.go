// Package chain runs an ordered sequence of inspection steps over the
// shared store. Each step sees only the Context, decides on its own whether
// to emit events, and never fails the pass: insufficient data degrades to a
// no-op. Adding a step means appending to the slice, not touching siblings.
package chain

import (
	"time"

	"go.uber.org/zap"

	"coldtrack/bus"
	"coldtrack/core"
	"coldtrack/stats"
)

// Context is the shared state of one evaluation pass.
type Context struct {
	Store *core.Store
	Now   time.Time // evaluation instant, fixed for the whole pass
	Stats stats.WindowStatistics
	Bus   bus.Publisher
	Log   *zap.SugaredLogger
}

// Step is one inspection unit. Evaluate runs to completion before the next
// step begins; it must not fail.
type Step interface {
	Evaluate(ctx *Context)
}

// Chain is an explicit ordered list of steps.
type Chain struct {
	steps []Step
}

func New(steps ...Step) *Chain {
	return &Chain{steps: steps}
}

// Run executes every step in order against the same context.
func (c *Chain) Run(ctx *Context) {
	for _, step := range c.steps {
		step.Evaluate(ctx)
	}
}

// Default is the reference chain: statistics over 60s, threshold check,
// then spread check over an independent 30s window.
func Default(threshold float64) *Chain {
	return New(
		&StatsStep{Window: 60 * time.Second},
		&ThresholdStep{Threshold: threshold},
		&VariationStep{Window: 30 * time.Second, MaxSpread: 2.0},
	)
}
