package pipeline

import (
	"errors"
	"fmt"
	"time"
)

// Config drives both run modes through one code path. Bounded runs stop the
// source after Count readings and the driver after one evaluation pass;
// continuous runs go until the context is cancelled.
type Config struct {
	Vehicle string

	// Source.
	MinDelay time.Duration
	MaxDelay time.Duration
	TempMin  float64
	TempMax  float64
	HumMin   float64
	HumMax   float64
	Count    int // readings to emit in bounded mode; ignored otherwise

	// Driver.
	Interval    time.Duration // evaluation tick in continuous mode
	Poll        time.Duration // store poll tick in bounded mode
	MinReadings int           // readings required before the first pass
	Bounded     bool

	// Rules.
	Threshold float64

	// Retention bound for store compaction; must cover the widest rule
	// window so trailing reads stay complete.
	Retention time.Duration

	// Re-alert suppression window; 0 disables dedup.
	DedupTTL time.Duration

	Seed int64
}

// DefaultConfig mirrors the reference deployment: 1-3s between readings,
// a pass every 5s, 25°C threshold, 60s retention.
func DefaultConfig() Config {
	return Config{
		Vehicle:     "truck-01",
		MinDelay:    1 * time.Second,
		MaxDelay:    3 * time.Second,
		TempMin:     15,
		TempMax:     30,
		HumMin:      30,
		HumMax:      70,
		Count:       5,
		Interval:    5 * time.Second,
		Poll:        500 * time.Millisecond,
		MinReadings: 1,
		Threshold:   25.0,
		Retention:   60 * time.Second,
		Seed:        time.Now().UnixNano(),
	}
}

// Validate rejects configurations that must never start a task.
func (c Config) Validate() error {
	if c.MinDelay <= 0 {
		return fmt.Errorf("min delay must be positive, got %v", c.MinDelay)
	}
	if c.MaxDelay < c.MinDelay {
		return fmt.Errorf("max delay %v below min delay %v", c.MaxDelay, c.MinDelay)
	}
	if c.TempMax < c.TempMin {
		return fmt.Errorf("temperature range inverted: [%g, %g]", c.TempMin, c.TempMax)
	}
	if c.HumMax < c.HumMin {
		return fmt.Errorf("humidity range inverted: [%g, %g]", c.HumMin, c.HumMax)
	}
	if c.Interval <= 0 {
		return fmt.Errorf("evaluation interval must be positive, got %v", c.Interval)
	}
	if c.Poll <= 0 {
		return fmt.Errorf("poll interval must be positive, got %v", c.Poll)
	}
	if c.Threshold < 0 {
		return fmt.Errorf("threshold must not be negative, got %g", c.Threshold)
	}
	if c.MinReadings <= 0 {
		return errors.New("minimum reading count must be positive")
	}
	if c.Bounded && c.Count <= 0 {
		return errors.New("bounded mode needs a positive reading count")
	}
	if c.Retention <= 0 {
		return fmt.Errorf("retention must be positive, got %v", c.Retention)
	}
	return nil
}
