package geo

import (
	"math/rand"

	olc "github.com/google/open-location-code/go"
)

// EncodeLocation returns the Open Location Code for a decimal position.
// Pure and deterministic; the standard 10-digit code.
func EncodeLocation(lat, lon float64) string {
	return olc.Encode(lat, lon, 10)
}

// Position is a decimal coordinate pair alongside its legacy sexagesimal
// representation, as produced by the simulated vehicle unit.
type Position struct {
	Latitude  DMS
	Longitude DMS
}

// RandomPosition draws a uniform position anywhere on the globe, expressed
// in the legacy form the conversion path consumes.
func RandomPosition(rng *rand.Rand) Position {
	lat := -90 + rng.Float64()*180
	lon := -180 + rng.Float64()*360
	return Position{
		Latitude:  LatitudeDMS(lat),
		Longitude: LongitudeDMS(lon),
	}
}
