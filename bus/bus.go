package bus

import "sync"

// Publisher is the write side of the bus, the only part rule steps see.
type Publisher interface {
	Publish(event Event)
}

// Listener consumes events delivered by the bus.
type Listener interface {
	OnEvent(event Event)
}

// Bus fans events out to registered listeners, synchronously and in
// registration order. Publish works from a stable snapshot of the listener
// slice, so listeners (un)registered while a fan-out is in flight are not
// guaranteed inclusion in that fan-out.
type Bus struct {
	mu        sync.Mutex
	listeners []Listener
}

func New() *Bus {
	return &Bus{}
}

func (b *Bus) Register(l Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners = append(b.listeners, l)
}

func (b *Bus) Unregister(l Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, reg := range b.listeners {
		if reg == l {
			b.listeners = append(b.listeners[:i], b.listeners[i+1:]...)
			return
		}
	}
}

func (b *Bus) Publish(event Event) {
	b.mu.Lock()
	snapshot := make([]Listener, len(b.listeners))
	copy(snapshot, b.listeners)
	b.mu.Unlock()

	for _, l := range snapshot {
		l.OnEvent(event)
	}
}
