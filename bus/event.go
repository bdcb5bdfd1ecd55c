package bus

import (
	"time"

	"github.com/google/uuid"
)

// Category classifies an alert raised by a rule step.
type Category string

const (
	CategoryTemperature Category = "TEMPERATURE"
	CategoryVariation   Category = "VARIATION"
)

// Priority ranges from 1 (lowest) to 10 (highest).
const (
	MinPriority = 1
	MaxPriority = 10
)

// Event is an immutable alert signal. It is created by a rule step and
// consumed synchronously by the bus.
type Event struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Category Category  `json:"category"`
	Priority int       `json:"priority"`
	At       time.Time `json:"at"`
}

// NewEvent stamps a fresh event with a unique ID and the given instant.
func NewEvent(title string, category Category, priority int, at time.Time) Event {
	return Event{
		ID:       uuid.NewString(),
		Title:    title,
		Category: category,
		Priority: priority,
		At:       at,
	}
}
