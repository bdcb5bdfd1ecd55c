package geo

import "fmt"

// Hemisphere marks which side of the equator or prime meridian a
// sexagesimal coordinate lies on.
type Hemisphere string

const (
	North Hemisphere = "N"
	South Hemisphere = "S"
	East  Hemisphere = "E"
	West  Hemisphere = "W"
)

// DMS is a coordinate in the legacy degrees/minutes/seconds form emitted by
// the on-vehicle units.
type DMS struct {
	Degrees    int
	Minutes    int
	Seconds    float64
	Hemisphere Hemisphere
}

// Decimal converts to decimal degrees, negating for S and W. Out-of-range
// components and unknown hemispheres are errors; a malformed coordinate
// aborts only the reading it belongs to.
func (d DMS) Decimal() (float64, error) {
	var maxDegrees int
	switch d.Hemisphere {
	case North, South:
		maxDegrees = 90
	case East, West:
		maxDegrees = 180
	default:
		return 0, fmt.Errorf("unknown hemisphere %q", string(d.Hemisphere))
	}
	if d.Degrees < 0 || d.Degrees > maxDegrees {
		return 0, fmt.Errorf("degrees %d out of range [0, %d]", d.Degrees, maxDegrees)
	}
	if d.Minutes < 0 || d.Minutes >= 60 {
		return 0, fmt.Errorf("minutes %d out of range [0, 60)", d.Minutes)
	}
	if d.Seconds < 0 || d.Seconds >= 60 {
		return 0, fmt.Errorf("seconds %g out of range [0, 60)", d.Seconds)
	}

	decimal := float64(d.Degrees) + float64(d.Minutes)/60 + d.Seconds/3600
	if decimal > float64(maxDegrees) {
		return 0, fmt.Errorf("coordinate %g exceeds %d degrees", decimal, maxDegrees)
	}
	if d.Hemisphere == South || d.Hemisphere == West {
		decimal = -decimal
	}
	return decimal, nil
}

// LatitudeDMS converts decimal latitude to the legacy form.
func LatitudeDMS(decimal float64) DMS {
	hemisphere := North
	if decimal < 0 {
		hemisphere = South
	}
	return fromDecimal(decimal, hemisphere)
}

// LongitudeDMS converts decimal longitude to the legacy form.
func LongitudeDMS(decimal float64) DMS {
	hemisphere := East
	if decimal < 0 {
		hemisphere = West
	}
	return fromDecimal(decimal, hemisphere)
}

func fromDecimal(decimal float64, hemisphere Hemisphere) DMS {
	if decimal < 0 {
		decimal = -decimal
	}
	degrees := int(decimal)
	minutesDec := (decimal - float64(degrees)) * 60
	minutes := int(minutesDec)
	seconds := (minutesDec - float64(minutes)) * 60
	return DMS{
		Degrees:    degrees,
		Minutes:    minutes,
		Seconds:    seconds,
		Hemisphere: hemisphere,
	}
}
