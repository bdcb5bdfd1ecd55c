package bus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type named struct {
	name  string
	order *[]string
}

func (n *named) OnEvent(Event) {
	*n.order = append(*n.order, n.name)
}

func TestBus_DeliversInRegistrationOrder(t *testing.T) {
	b := New()
	var order []string
	b.Register(&named{"first", &order})
	b.Register(&named{"second", &order})
	b.Register(&named{"third", &order})

	b.Publish(NewEvent("t", CategoryTemperature, 9, time.Now()))

	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestBus_Unregister(t *testing.T) {
	b := New()
	var order []string
	first := &named{"first", &order}
	second := &named{"second", &order}
	b.Register(first)
	b.Register(second)
	b.Unregister(first)

	b.Publish(NewEvent("t", CategoryTemperature, 9, time.Now()))

	assert.Equal(t, []string{"second"}, order)
}

func TestFilterListener(t *testing.T) {
	rec := &Recorder{}
	filter := &FilterListener{
		Category:    CategoryTemperature,
		MinPriority: 8,
		Next:        rec,
	}

	filter.OnEvent(NewEvent("high temp", CategoryTemperature, 9, time.Now()))
	filter.OnEvent(NewEvent("exact", CategoryTemperature, 8, time.Now()))
	filter.OnEvent(NewEvent("too low", CategoryTemperature, 7, time.Now()))
	filter.OnEvent(NewEvent("wrong category", CategoryVariation, 10, time.Now()))

	events := rec.Events()
	require.Len(t, events, 2)
	assert.Equal(t, "high temp", events[0].Title)
	assert.Equal(t, "exact", events[1].Title)
}

func TestDedup_SuppressesRepeatCategory(t *testing.T) {
	rec := &Recorder{}
	b := New()
	b.Register(rec)

	dedup, err := NewDedup(b, time.Minute)
	require.NoError(t, err)
	defer dedup.Close()

	dedup.Publish(NewEvent("first", CategoryTemperature, 9, time.Now()))
	dedup.Publish(NewEvent("repeat", CategoryTemperature, 9, time.Now()))
	dedup.Publish(NewEvent("different", CategoryVariation, 8, time.Now()))

	events := rec.Events()
	require.Len(t, events, 2)
	assert.Equal(t, "first", events[0].Title)
	assert.Equal(t, "different", events[1].Title)
}

func TestDedup_ZeroTTLForwardsEverything(t *testing.T) {
	rec := &Recorder{}
	b := New()
	b.Register(rec)

	dedup, err := NewDedup(b, 0)
	require.NoError(t, err)
	defer dedup.Close()

	dedup.Publish(NewEvent("first", CategoryTemperature, 9, time.Now()))
	dedup.Publish(NewEvent("second", CategoryTemperature, 9, time.Now()))

	assert.Len(t, rec.Events(), 2)
}
