package ephemeris

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/seleneworks/astrochart/pkg/astrotime"
	"github.com/seleneworks/astrochart/pkg/coords"
	"github.com/seleneworks/astrochart/pkg/orbital"
)

// BuiltinProvider computes positions from the mean-element orbital
// model. It needs no external data files and holds no state beyond the
// model, so it is safe for concurrent use.
type BuiltinProvider struct {
	model *orbital.Model
}

// NewBuiltin returns a provider over the given orbital model. A nil
// model gets a default one.
func NewBuiltin(model *orbital.Model) *BuiltinProvider {
	if model == nil {
		model = orbital.NewModel()
	}
	return &BuiltinProvider{model: model}
}

func (p *BuiltinProvider) Name() string { return "builtin" }

var bodyPlanets = map[Body]orbital.Planet{
	Mercury: orbital.Mercury,
	Venus:   orbital.Venus,
	Mars:    orbital.Mars,
	Jupiter: orbital.Jupiter,
	Saturn:  orbital.Saturn,
	Uranus:  orbital.Uranus,
	Neptune: orbital.Neptune,
	Pluto:   orbital.Pluto,
}

// Position returns the geocentric ecliptic position of a body. The Sun
// is the Earth's heliocentric position reflected through the origin,
// the Moon comes from its periodic series, and planets are the vector
// difference of two heliocentric positions.
func (p *BuiltinProvider) Position(jd float64, b Body) (Position, error) {
	t := astrotime.JulianCenturies(jd)

	switch b {
	case Sun:
		earth, err := p.model.Heliocentric(orbital.Earth, t)
		if err != nil {
			return Position{}, calcErr("position", b, err)
		}
		return Position{
			LonDeg:   coords.Normalize(earth.LonDeg + 180),
			LatDeg:   0,
			RadiusAU: earth.RadiusAU,
		}, nil

	case Moon:
		m := orbital.MoonPosition(t)
		return Position{LonDeg: m.LonDeg, LatDeg: m.LatDeg, RadiusAU: m.RadiusAU}, nil
	}

	planet, ok := bodyPlanets[b]
	if !ok {
		return Position{}, calcErr("position", b, ErrUnknownBody)
	}

	earth, err := p.model.HeliocentricVector(orbital.Earth, t)
	if err != nil {
		return Position{}, calcErr("position", b, err)
	}
	target, err := p.model.HeliocentricVector(planet, t)
	if err != nil {
		return Position{}, calcErr("position", b, err)
	}

	s := orbital.ToSpherical(r3.Sub(target, earth))
	return Position{LonDeg: s.LonDeg, LatDeg: s.LatDeg, RadiusAU: s.RadiusAU}, nil
}
