package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfig_DefaultIsValid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero min delay", func(c *Config) { c.MinDelay = 0 }},
		{"negative min delay", func(c *Config) { c.MinDelay = -time.Second }},
		{"max delay below min", func(c *Config) { c.MaxDelay = c.MinDelay / 2 }},
		{"inverted temperature range", func(c *Config) { c.TempMin, c.TempMax = c.TempMax, c.TempMin }},
		{"inverted humidity range", func(c *Config) { c.HumMin, c.HumMax = c.HumMax, c.HumMin }},
		{"zero interval", func(c *Config) { c.Interval = 0 }},
		{"zero poll", func(c *Config) { c.Poll = 0 }},
		{"negative threshold", func(c *Config) { c.Threshold = -1 }},
		{"zero min readings", func(c *Config) { c.MinReadings = 0 }},
		{"bounded without count", func(c *Config) { c.Bounded = true; c.Count = 0 }},
		{"zero retention", func(c *Config) { c.Retention = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestConfig_RejectedBeforeAnyTaskStarts(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Threshold = -5
	_, err := New(cfg, nil, testLogger())
	assert.ErrorContains(t, err, "threshold")
}
