package pipeline

import (
	"context"
	"time"

	"go.uber.org/zap"

	"coldtrack/bus"
	"coldtrack/chain"
	"coldtrack/core"
)

// Driver periodically runs the rule chain over the store. One loop serves
// both modes: it ticks at the evaluation interval (continuous) or the poll
// interval (bounded), evaluates once enough readings have arrived, and in
// bounded mode returns after exactly one pass.
type Driver struct {
	cfg    Config
	store  *core.Store
	rules  *chain.Chain
	events bus.Publisher
	now    func() time.Time
	log    *zap.SugaredLogger
}

func NewDriver(cfg Config, store *core.Store, rules *chain.Chain, events bus.Publisher, log *zap.SugaredLogger) *Driver {
	return &Driver{
		cfg:    cfg,
		store:  store,
		rules:  rules,
		events: events,
		now:    time.Now,
		log:    log.Named("driver"),
	}
}

func (d *Driver) Run(ctx context.Context) error {
	tick := d.cfg.Interval
	if d.cfg.Bounded {
		tick = d.cfg.Poll
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if d.store.Len() < d.cfg.MinReadings {
				continue
			}
			d.evaluate()
			if d.cfg.Bounded {
				return nil
			}
		case <-ctx.Done():
			return nil
		}
	}
}

// evaluate runs one full chain pass against the current store state, then
// compacts readings that no rule window can reach anymore.
func (d *Driver) evaluate() {
	now := d.now()
	d.rules.Run(&chain.Context{
		Store: d.store,
		Now:   now,
		Bus:   d.events,
		Log:   d.log,
	})
	d.store.Compact(now.Add(-d.cfg.Retention))
}
