package stats

import "coldtrack/core"

// Summary describes one projection (temperature or humidity) of a trailing
// window. Mean is meaningful only when Count > 0; an empty projection has no
// mean. Stddev is 0 for Count < 2, a deliberate approximation kept for
// output parity with the reference pipeline.
type Summary struct {
	Count  int
	Mean   float64
	Stddev float64
}

// HasMean reports whether Mean is defined for this summary.
func (s Summary) HasMean() bool {
	return s.Count > 0
}

// WindowStatistics is the per-pass aggregate snapshot over one trailing
// window of readings.
type WindowStatistics struct {
	Temperature Summary
	Humidity    Summary
}

// Compute derives window statistics from readings in a single pass.
func Compute(readings []core.Reading) WindowStatistics {
	temp := NewWelford()
	hum := NewWelford()
	for _, r := range readings {
		temp.Update(r.Temperature)
		hum.Update(r.Humidity)
	}
	return WindowStatistics{
		Temperature: summarize(temp),
		Humidity:    summarize(hum),
	}
}

func summarize(w *Welford) Summary {
	s := Summary{Count: int(w.Count())}
	if s.Count > 0 {
		s.Mean = w.GetMean()
	}
	s.Stddev = w.GetSD()
	return s
}

// Spread returns max-min over the values selected by pick, and false when
// there are no readings to compare.
func Spread(readings []core.Reading, pick func(core.Reading) float64) (float64, bool) {
	if len(readings) == 0 {
		return 0, false
	}
	min := pick(readings[0])
	max := min
	for _, r := range readings[1:] {
		v := pick(r)
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return max - min, true
}
