package pipeline

import (
	"context"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"coldtrack/core"
	"coldtrack/geo"
)

// Source simulates the on-vehicle sensor unit: it appends a reading to the
// store at randomized intervals. Positions arrive in the legacy sexagesimal
// form and are converted to decimal degrees before storage; a conversion
// failure skips that one reading, never the stream.
type Source struct {
	cfg   Config
	store *core.Store
	rng   *rand.Rand
	now   func() time.Time
	log   *zap.SugaredLogger
}

func NewSource(cfg Config, store *core.Store, log *zap.SugaredLogger) *Source {
	return &Source{
		cfg:   cfg,
		store: store,
		rng:   rand.New(rand.NewSource(cfg.Seed)),
		now:   time.Now,
		log:   log.Named("source"),
	}
}

// Run produces readings until the context is cancelled or, in bounded mode,
// the configured count has been emitted.
func (s *Source) Run(ctx context.Context) error {
	produced := 0
	for {
		if s.emit() {
			produced++
		}
		if s.cfg.Bounded && produced >= s.cfg.Count {
			s.log.Infow("source done", "vehicle", s.cfg.Vehicle, "readings", produced)
			return nil
		}

		delay := s.cfg.MinDelay +
			time.Duration(s.rng.Float64()*float64(s.cfg.MaxDelay-s.cfg.MinDelay))
		timer := time.NewTimer(delay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return nil
		}
	}
}

// emit generates one reading; it reports false when the reading had to be
// skipped because of a malformed coordinate.
func (s *Source) emit() bool {
	position := geo.RandomPosition(s.rng)
	lat, err := position.Latitude.Decimal()
	if err != nil {
		s.log.Warnw("skipping reading: bad latitude", "vehicle", s.cfg.Vehicle, "error", err)
		return false
	}
	lon, err := position.Longitude.Decimal()
	if err != nil {
		s.log.Warnw("skipping reading: bad longitude", "vehicle", s.cfg.Vehicle, "error", err)
		return false
	}

	reading := core.Reading{
		Timestamp:   s.now(),
		Temperature: s.uniform(s.cfg.TempMin, s.cfg.TempMax),
		Longitude:   lon,
		Latitude:    lat,
		Humidity:    s.uniform(s.cfg.HumMin, s.cfg.HumMax),
	}
	s.store.Append(reading)

	s.log.Infow("reading received",
		"vehicle", s.cfg.Vehicle,
		"temperature", reading.Temperature,
		"humidity", reading.Humidity,
		"olc", geo.EncodeLocation(lat, lon),
	)
	return true
}

func (s *Source) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}
