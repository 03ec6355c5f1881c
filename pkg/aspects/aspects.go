// Package aspects scans body positions for significant angular
// relationships. Separations are compared against a fixed table of
// seventeen aspect types, each with its own maximum orb, and every hit
// is classified as applying or separating from the bodies' speeds.
package aspects

import (
	"fmt"
	"math"

	"github.com/seleneworks/astrochart/pkg/coords"
	"github.com/seleneworks/astrochart/pkg/ephemeris"
)

// Type identifies an aspect.
type Type int

const (
	Conjunction Type = iota
	Opposition
	Trine
	Square
	Sextile
	Semisextile
	Semisquare
	Sesquiquadrate
	Quincunx
	Quintile
	Biquintile
	Septile
	Biseptile
	Triseptile
	Novile
	Binovile
	Quadrinovile
)

var typeNames = [...]string{
	"Conjunction", "Opposition", "Trine", "Square", "Sextile",
	"Semisextile", "Semisquare", "Sesquiquadrate", "Quincunx",
	"Quintile", "Biquintile", "Septile", "Biseptile", "Triseptile",
	"Novile", "Binovile", "Quadrinovile",
}

func (t Type) String() string {
	if t < Conjunction || t > Quadrinovile {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// definition pairs an aspect's exact angle with its maximum orb, both
// in degrees.
type definition struct {
	typ   Type
	exact float64
	orb   float64
}

// table lists the majors first, then the minor harmonics with tighter
// orbs. The angles are spaced further apart than the sum of adjacent
// orbs, so a separation matches at most one entry.
var table = []definition{
	{Conjunction, 0, 8},
	{Opposition, 180, 8},
	{Trine, 120, 8},
	{Square, 90, 7},
	{Sextile, 60, 6},
	{Semisextile, 30, 2},
	{Semisquare, 45, 2},
	{Sesquiquadrate, 135, 2},
	{Quincunx, 150, 3},
	{Quintile, 72, 2},
	{Biquintile, 144, 2},
	{Septile, 360.0 / 7, 1},
	{Biseptile, 720.0 / 7, 1},
	{Triseptile, 1080.0 / 7, 1},
	{Novile, 40, 1},
	{Binovile, 80, 1},
	{Quadrinovile, 160, 1},
}

// Aspect is one detected relationship between two bodies.
type Aspect struct {
	BodyA    ephemeris.Body
	BodyB    ephemeris.Body
	Type     Type
	ExactDeg float64
	OrbDeg   float64
	Applying bool
}

// Options control the pair scan.
type Options struct {
	// IncludeRetrograde keeps pairs with a retrograde member in the
	// scan. The default drops any pair where either body is moving
	// backwards.
	IncludeRetrograde bool
}

// projectionDays is how far ahead the longitudes are projected when
// deciding applying versus separating.
const projectionDays = 0.01

// Separation returns the angular distance between two longitudes,
// always in [0,180].
func Separation(lonA, lonB float64) float64 {
	d := coords.Normalize(lonA - lonB)
	if d > 180 {
		d = 360 - d
	}
	return d
}

// Detect scans every unordered pair of states against the aspect table
// and returns the hits in input order. The input order also fixes
// BodyA/BodyB in each result.
func Detect(states []ephemeris.BodyState, opts Options) []Aspect {
	var out []Aspect
	for i := 0; i < len(states); i++ {
		for j := i + 1; j < len(states); j++ {
			a, b := states[i], states[j]
			if !opts.IncludeRetrograde && (a.Retrograde() || b.Retrograde()) {
				continue
			}
			if asp, ok := match(a, b); ok {
				out = append(out, asp)
			}
		}
	}
	return out
}

func match(a, b ephemeris.BodyState) (Aspect, bool) {
	sep := Separation(a.LonDeg, b.LonDeg)
	for _, def := range table {
		orb := math.Abs(sep - def.exact)
		if orb > def.orb {
			continue
		}
		return Aspect{
			BodyA:    a.Body,
			BodyB:    b.Body,
			Type:     def.typ,
			ExactDeg: def.exact,
			OrbDeg:   orb,
			Applying: applying(a, b, def.exact, orb),
		}, true
	}
	return Aspect{}, false
}

// applying projects both longitudes a short step forward at their
// current speeds and reports whether the orb shrinks. Equal speeds
// leave the separation fixed, which counts as not applying.
func applying(a, b ephemeris.BodyState, exact, orb float64) bool {
	sepNext := Separation(
		a.LonDeg+a.SpeedDegPerDay*projectionDays,
		b.LonDeg+b.SpeedDegPerDay*projectionDays,
	)
	return math.Abs(sepNext-exact) < orb
}
