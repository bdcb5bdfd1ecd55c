package storage

import (
	"sync"

	"coldtrack/bus"
)

// MemoryJournal keeps events in process memory. It backs runs that do not
// want a badger directory on disk.
type MemoryJournal struct {
	mu     sync.Mutex
	events []bus.Event
}

func NewMemoryJournal() *MemoryJournal {
	return &MemoryJournal{}
}

func (j *MemoryJournal) Append(event bus.Event) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.events = append(j.events, event)
	return nil
}

func (j *MemoryJournal) Scan(fn func(event bus.Event) error) error {
	j.mu.Lock()
	snapshot := make([]bus.Event, len(j.events))
	copy(snapshot, j.events)
	j.mu.Unlock()

	for _, event := range snapshot {
		if err := fn(event); err != nil {
			return err
		}
	}
	return nil
}

func (j *MemoryJournal) Close() error {
	return nil
}
