package chart

import (
	"fmt"

	"github.com/seleneworks/astrochart/pkg/ephemeris"
	"github.com/seleneworks/astrochart/pkg/houses"
)

// Request describes one chart to compute. Date and time are civil
// values in the local zone given by TZOffsetHours; longitude is
// positive east.
type Request struct {
	Year          int
	Month         int
	Day           int
	Hour          int
	Minute        int
	Second        float64
	TZOffsetHours float64

	LatDeg float64
	LonDeg float64

	HouseSystem houses.System

	// Sidereal subtracts the ayanamsa from every longitude in the
	// result, shifting the chart to the sidereal zodiac.
	Sidereal bool

	// Bodies limits the chart to a subset; empty means all bodies.
	Bodies []ephemeris.Body
}

// InputError reports a malformed request field.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("chart: invalid %s: %s", e.Field, e.Reason)
}

func (r Request) validate() error {
	switch {
	case r.Month < 1 || r.Month > 12:
		return &InputError{Field: "month", Reason: fmt.Sprintf("%d not in 1..12", r.Month)}
	case r.Day < 1 || r.Day > 31:
		return &InputError{Field: "day", Reason: fmt.Sprintf("%d not in 1..31", r.Day)}
	case r.Hour < 0 || r.Hour > 23:
		return &InputError{Field: "hour", Reason: fmt.Sprintf("%d not in 0..23", r.Hour)}
	case r.Minute < 0 || r.Minute > 59:
		return &InputError{Field: "minute", Reason: fmt.Sprintf("%d not in 0..59", r.Minute)}
	case r.Second < 0 || r.Second >= 60:
		return &InputError{Field: "second", Reason: fmt.Sprintf("%g not in [0,60)", r.Second)}
	case r.TZOffsetHours < -14 || r.TZOffsetHours > 14:
		return &InputError{Field: "timezone", Reason: fmt.Sprintf("%g hours out of range", r.TZOffsetHours)}
	case r.LatDeg < -90 || r.LatDeg > 90:
		return &InputError{Field: "latitude", Reason: fmt.Sprintf("%g not in -90..90", r.LatDeg)}
	case r.LonDeg < -180 || r.LonDeg > 180:
		return &InputError{Field: "longitude", Reason: fmt.Sprintf("%g not in -180..180", r.LonDeg)}
	}
	return nil
}

func (r Request) bodies() []ephemeris.Body {
	if len(r.Bodies) == 0 {
		return ephemeris.AllBodies()
	}
	return r.Bodies
}
