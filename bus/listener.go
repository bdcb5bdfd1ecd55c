package bus

import (
	"sync"

	"go.uber.org/zap"
)

// LogListener records every event unconditionally as a structured log line.
type LogListener struct {
	Name string
	Log  *zap.SugaredLogger
}

func (l *LogListener) OnEvent(event Event) {
	l.Log.Infow("event received",
		"listener", l.Name,
		"id", event.ID,
		"title", event.Title,
		"category", string(event.Category),
		"priority", event.Priority,
	)
}

// FilterListener forwards an event to the wrapped listener only when the
// category matches and the priority is at least MinPriority.
type FilterListener struct {
	Category    Category
	MinPriority int
	Next        Listener
}

func (l *FilterListener) OnEvent(event Event) {
	if event.Category != l.Category || event.Priority < l.MinPriority {
		return
	}
	l.Next.OnEvent(event)
}

// Recorder captures delivered events for inspection. Integration tests
// assert on the recorded events rather than on log formatting.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) OnEvent(event Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}
