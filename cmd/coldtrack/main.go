package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"coldtrack/bus"
	"coldtrack/logging"
	"coldtrack/pipeline"
	"coldtrack/storage"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cfg := pipeline.DefaultConfig()
	var journalPath string

	cmd := &cobra.Command{
		Use:   "coldtrack",
		Short: "Streaming telemetry pipeline for refrigerated vehicles",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfg, journalPath)
		},
		SilenceUsage: true,
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.Vehicle, "vehicle", cfg.Vehicle, "vehicle identifier")
	flags.BoolVar(&cfg.Bounded, "bounded", false, "stop after a fixed reading count and one pass")
	flags.IntVar(&cfg.Count, "count", cfg.Count, "readings to produce in bounded mode")
	flags.IntVar(&cfg.MinReadings, "min-readings", cfg.MinReadings, "readings required before the first pass")
	flags.DurationVar(&cfg.Interval, "interval", cfg.Interval, "evaluation interval in continuous mode")
	flags.DurationVar(&cfg.MinDelay, "min-delay", cfg.MinDelay, "minimum delay between readings")
	flags.DurationVar(&cfg.MaxDelay, "max-delay", cfg.MaxDelay, "maximum delay between readings")
	flags.Float64Var(&cfg.Threshold, "threshold", cfg.Threshold, "temperature alert threshold in °C")
	flags.DurationVar(&cfg.DedupTTL, "dedup-ttl", cfg.DedupTTL, "suppress repeat alerts of a category for this long (0 disables)")
	flags.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for the simulated source")
	flags.StringVar(&journalPath, "journal", "", "badger directory for the event journal (empty: in-memory)")

	return cmd
}

func run(cfg pipeline.Config, journalPath string) error {
	log := logging.NewLogger()
	defer func() { _ = log.Sync() }()

	if cfg.Bounded && cfg.MinReadings < cfg.Count {
		cfg.MinReadings = cfg.Count
	}

	journal, err := storage.OpenBadgerJournal(journalPath)
	if err != nil {
		return err
	}
	defer func() { _ = journal.Close() }()

	events := bus.New()
	events.Register(&bus.LogListener{Name: "operations", Log: log})
	events.Register(&bus.FilterListener{
		Category:    bus.CategoryTemperature,
		MinPriority: 8,
		Next:        &bus.LogListener{Name: "cold-chain-alerts", Log: log},
	})
	events.Register(&storage.JournalListener{Journal: journal, Log: log})

	var publisher bus.Publisher = events
	if cfg.DedupTTL > 0 {
		dedup, err := bus.NewDedup(events, cfg.DedupTTL)
		if err != nil {
			return err
		}
		defer dedup.Close()
		publisher = dedup
	}

	p, err := pipeline.New(cfg, publisher, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Infow("pipeline starting",
		"vehicle", cfg.Vehicle,
		"bounded", cfg.Bounded,
		"threshold", cfg.Threshold,
	)
	start := time.Now()
	if err := p.Run(ctx); err != nil {
		return err
	}
	log.Infow("pipeline stopped", "vehicle", cfg.Vehicle, "uptime", time.Since(start))
	return nil
}
