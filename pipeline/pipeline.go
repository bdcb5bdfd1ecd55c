// Package pipeline wires the producing and evaluating tasks of one tracked
// vehicle around the shared windowed store.
package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"coldtrack/bus"
	"coldtrack/chain"
	"coldtrack/core"
)

// Pipeline owns the store, the source, and the driver of one vehicle. The
// event bus is provided by the caller so listeners can be registered before
// anything runs.
type Pipeline struct {
	cfg    Config
	store  *core.Store
	source *Source
	driver *Driver
}

func New(cfg Config, events bus.Publisher, log *zap.SugaredLogger) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	store := core.NewStore()
	rules := chain.Default(cfg.Threshold)
	return &Pipeline{
		cfg:    cfg,
		store:  store,
		source: NewSource(cfg, store, log),
		driver: NewDriver(cfg, store, rules, events, log),
	}, nil
}

func (p *Pipeline) Store() *core.Store {
	return p.store
}

// Run starts the producer and the driver and blocks until both return:
// never in continuous mode short of cancellation, after the configured
// reading count and one final pass in bounded mode.
func (p *Pipeline) Run(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(runCtx)
	g.Go(func() error {
		return p.source.Run(gctx)
	})
	g.Go(func() error {
		defer cancel() // bounded: a finished driver also stops the source
		return p.driver.Run(gctx)
	})
	return g.Wait()
}
