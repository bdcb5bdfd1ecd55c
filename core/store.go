package core

import (
	"sync"
	"time"
)

// Store holds the readings of a single vehicle in arrival order, plus the
// most recent reading. It supports one concurrent writer (the source) and
// concurrent readers (the rule chain): a reader only ever observes a prefix
// of the eventual sequence, never a reordering or a partial reading.
type Store struct {
	mu       sync.RWMutex
	readings []Reading
	latest   Reading
	hasData  bool
}

func NewStore() *Store {
	return &Store{
		readings: make([]Reading, 0, 64),
	}
}

// Append adds a reading to the end of the sequence and updates latest.
func (s *Store) Append(r Reading) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.readings = append(s.readings, r)
	s.latest = r
	s.hasData = true
}

// SnapshotSince returns, in arrival order, every reading whose timestamp is
// within the trailing window ending at now. The result is a copy; for a
// fixed now the call is idempotent. An empty result is a valid state.
func (s *Store) SnapshotSince(now time.Time, window time.Duration) []Reading {
	cutoff := now.Add(-window)
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Reading, 0, len(s.readings))
	for _, r := range s.readings {
		if !r.Timestamp.Before(cutoff) {
			out = append(out, r)
		}
	}
	return out
}

// Latest returns the last appended reading, if any.
func (s *Store) Latest() (Reading, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest, s.hasData
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.readings)
}

// Compact drops readings older than the given instant so the log stays
// bounded by the widest rule window. Survivors keep their arrival order and
// latest is unaffected: the last appended reading is never dropped.
func (s *Store) Compact(before time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	keep := 0
	for keep < len(s.readings)-1 && s.readings[keep].Timestamp.Before(before) {
		keep++
	}
	if keep == 0 {
		return
	}
	s.readings = append(s.readings[:0], s.readings[keep:]...)
}
