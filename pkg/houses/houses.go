// Package houses divides the ecliptic into the twelve houses of a chart
// for a given moment and geographic location. Several house systems are
// supported; all of them agree on the four angles for the quadrant
// systems and differ in how the intermediate cusps are found.
package houses

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/seleneworks/astrochart/pkg/astrotime"
	"github.com/seleneworks/astrochart/pkg/coords"
)

// System identifies a house system.
type System int

const (
	Placidus System = iota
	Koch
	Equal
	WholeSign
	Campanus
	Regiomontanus
	Meridian
	Morinus
	Alcabitius
	Krusinski
	Topocentric
	Vedic
)

var systemNames = [...]string{
	"Placidus", "Koch", "Equal", "WholeSign", "Campanus",
	"Regiomontanus", "Meridian", "Morinus", "Alcabitius",
	"Krusinski", "Topocentric", "Vedic",
}

func (s System) String() string {
	if s < Placidus || s > Vedic {
		return fmt.Sprintf("System(%d)", int(s))
	}
	return systemNames[s]
}

// ParseSystem resolves a case-insensitive system name. Hyphens and
// underscores are ignored, so "whole-sign" and "WholeSign" both parse.
func ParseSystem(name string) (System, error) {
	canon := strings.NewReplacer("-", "", "_", "", " ", "").Replace(name)
	for s := Placidus; s <= Vedic; s++ {
		if strings.EqualFold(canon, systemNames[s]) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown house system %q", name)
}

// Sentinel errors for house calculation failures.
var (
	ErrUnsupportedSystem = errors.New("house system not supported")
	ErrPolarLatitude     = errors.New("latitude beyond polar limit for this house system")
)

// SystemError reports a failed cusp calculation for a system.
type SystemError struct {
	System System
	Err    error
}

func (e *SystemError) Error() string {
	return fmt.Sprintf("houses: %s: %v", e.System, e.Err)
}

func (e *SystemError) Unwrap() error { return e.Err }

// Cusps holds the twelve house cusps of a chart, in ecliptic longitude
// degrees, together with the chart angles. Cusp[0] is the first house.
type Cusps struct {
	System  System
	Cusp    [12]float64
	AscDeg  float64
	MCDeg   float64
	ARMCDeg float64
}

// House returns the house (1..12) containing an ecliptic longitude. A
// body sitting exactly on a cusp belongs to the house the cusp opens.
func (c Cusps) House(lonDeg float64) int {
	lon := coords.Normalize(lonDeg)
	house := 1
	for i, cusp := range c.Cusp {
		if lon >= cusp {
			house = i + 1
		}
	}
	return house
}

// calculators maps each implemented system to its cusp routine. Systems
// absent from the map are recognized names that Calculate rejects with
// ErrUnsupportedSystem.
var calculators = map[System]func(a angles) ([12]float64, error){
	Placidus:      placidusCusps,
	Koch:          kochCusps,
	Equal:         equalCusps,
	WholeSign:     wholeSignCusps,
	Campanus:      campanusCusps,
	Regiomontanus: regiomontanusCusps,
	Meridian:      meridianCusps,
	Morinus:       morinusCusps,
}

// Supported returns the implemented systems in declaration order.
func Supported() []System {
	out := make([]System, 0, len(calculators))
	for s := range calculators {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Calculate computes the house cusps for a Julian date and geographic
// location. Longitude is positive east. Placidus and Koch fail with
// ErrPolarLatitude at latitudes where their construction degenerates.
func Calculate(jd, latDeg, lonDeg float64, sys System) (Cusps, error) {
	if latDeg < -90 || latDeg > 90 {
		return Cusps{}, &SystemError{System: sys, Err: coords.ErrInvalidLatitude}
	}

	calc, ok := calculators[sys]
	if !ok {
		return Cusps{}, &SystemError{System: sys, Err: ErrUnsupportedSystem}
	}

	a := angles{
		ramc: astrotime.LST(jd, lonDeg),
		eps:  coords.Obliquity(jd),
		lat:  latDeg,
	}

	cusp, err := calc(a)
	if err != nil {
		return Cusps{}, &SystemError{System: sys, Err: err}
	}

	return Cusps{
		System:  sys,
		Cusp:    cusp,
		AscDeg:  a.ascendant(),
		MCDeg:   a.midheaven(),
		ARMCDeg: a.ramc,
	}, nil
}
