package bus

import (
	"time"

	"github.com/dgraph-io/ristretto"
)

// Dedup wraps a Publisher and drops events whose category was already
// published within the TTL, so a condition that stays true across passes
// raises one alert instead of one per pass. A zero TTL forwards everything.
type Dedup struct {
	next  Publisher
	cache *ristretto.Cache
	ttl   time.Duration
}

func NewDedup(next Publisher, ttl time.Duration) (*Dedup, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1 << 10,
		MaxCost:     1 << 10,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &Dedup{
		next:  next,
		cache: cache,
		ttl:   ttl,
	}, nil
}

func (d *Dedup) Publish(event Event) {
	if d.ttl <= 0 {
		d.next.Publish(event)
		return
	}
	key := string(event.Category)
	if _, suppressed := d.cache.Get(key); suppressed {
		return
	}
	d.cache.SetWithTTL(key, struct{}{}, 1, d.ttl)
	// Set is buffered; wait so the next Publish observes this entry.
	d.cache.Wait()
	d.next.Publish(event)
}

func (d *Dedup) Close() {
	d.cache.Close()
}
