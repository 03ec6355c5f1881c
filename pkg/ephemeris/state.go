package ephemeris

import "github.com/seleneworks/astrochart/pkg/astrotime"

// BodyState is a position together with the instantaneous rate of
// change of ecliptic longitude.
type BodyState struct {
	Body Body
	Position
	SpeedDegPerDay float64
}

// Retrograde reports whether the body's longitude is decreasing.
func (s BodyState) Retrograde() bool { return s.SpeedDegPerDay < 0 }

// velocityStep is the half-width of the central difference in Julian
// centuries. The Moon needs a tighter step because it moves through a
// large arc per day; the slow outer planets get a wider one so the
// longitude difference stays well above the model's noise floor.
func velocityStep(b Body) float64 {
	switch b {
	case Moon:
		return 3e-5
	case Mars, Jupiter, Saturn, Uranus, Neptune, Pluto:
		return 2e-4
	default:
		return 1e-4
	}
}

// StateAt returns the position and longitude speed of a body at the
// given Julian date. Speed is a central difference of the full position
// pipeline across a per-body step, with the shorter arc taken when the
// longitude wraps through 0.
func StateAt(p Provider, jd float64, b Body) (BodyState, error) {
	pos, err := p.Position(jd, b)
	if err != nil {
		return BodyState{}, err
	}

	stepDays := velocityStep(b) * astrotime.DaysPerCentury
	before, err := p.Position(jd-stepDays, b)
	if err != nil {
		return BodyState{}, err
	}
	after, err := p.Position(jd+stepDays, b)
	if err != nil {
		return BodyState{}, err
	}

	delta := after.LonDeg - before.LonDeg
	if delta > 180 {
		delta -= 360
	} else if delta < -180 {
		delta += 360
	}

	return BodyState{
		Body:           b,
		Position:       pos,
		SpeedDegPerDay: delta / (2 * stepDays),
	}, nil
}

// StationBetween reports whether a body's longitude speed changes sign
// between two Julian dates, i.e. whether it passes through a station.
func StationBetween(p Provider, jd1, jd2 float64, b Body) (bool, error) {
	s1, err := StateAt(p, jd1, b)
	if err != nil {
		return false, err
	}
	s2, err := StateAt(p, jd2, b)
	if err != nil {
		return false, err
	}
	return s1.SpeedDegPerDay*s2.SpeedDegPerDay < 0, nil
}
