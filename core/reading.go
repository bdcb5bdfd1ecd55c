package core

import "time"

// Reading is one timestamped sensor sample from a vehicle. Values are
// immutable once constructed; the store owns readings after ingestion.
type Reading struct {
	Timestamp   time.Time
	Temperature float64 // °C
	Longitude   float64 // decimal degrees
	Latitude    float64 // decimal degrees
	Humidity    float64 // %RH
}
