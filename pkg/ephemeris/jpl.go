package ephemeris

import (
	"fmt"
	"math"

	"github.com/mshafiee/jpleph"

	"github.com/seleneworks/astrochart/pkg/coords"
)

// j2000ObliquityDeg is the mean obliquity at J2000.0, used to rotate the
// JPL equatorial frame onto the ecliptic.
const j2000ObliquityDeg = 23.43929111

var jplTargets = map[Body]jpleph.Planet{
	Sun:     jpleph.Sun,
	Moon:    jpleph.Moon,
	Mercury: jpleph.Mercury,
	Venus:   jpleph.Venus,
	Mars:    jpleph.Mars,
	Jupiter: jpleph.Jupiter,
	Saturn:  jpleph.Saturn,
	Uranus:  jpleph.Uranus,
	Neptune: jpleph.Neptune,
	Pluto:   jpleph.Pluto,
}

// JPLProvider reads geocentric positions from a JPL development
// ephemeris file (DE405, DE440 and the like). It trades the built-in
// model's hands-off operation for much higher accuracy within the
// file's time span.
type JPLProvider struct {
	eph  *jpleph.Ephemeris
	path string
}

// OpenJPL opens a binary JPL ephemeris file. The caller owns the
// returned provider and must Close it.
func OpenJPL(path string) (*JPLProvider, error) {
	eph, err := jpleph.NewEphemeris(path, false)
	if err != nil {
		return nil, fmt.Errorf("open jpl ephemeris %s: %w", path, err)
	}
	return &JPLProvider{eph: eph, path: path}, nil
}

// Close releases the underlying ephemeris file.
func (p *JPLProvider) Close() error { return p.eph.Close() }

func (p *JPLProvider) Name() string { return "jpl" }

// Position interpolates the geocentric position of a body and rotates
// it from the ICRF equatorial frame to ecliptic coordinates.
func (p *JPLProvider) Position(jd float64, b Body) (Position, error) {
	target, ok := jplTargets[b]
	if !ok {
		return Position{}, calcErr("position", b, ErrUnknownBody)
	}

	pv, _, err := p.eph.CalculatePV(jd, target, jpleph.CenterEarth, false)
	if err != nil {
		return Position{}, calcErr("position", b, err)
	}

	sinEps, cosEps := math.Sincos(coords.Rad(j2000ObliquityDeg))
	x := pv.X
	y := pv.Y*cosEps + pv.Z*sinEps
	z := -pv.Y*sinEps + pv.Z*cosEps

	r := math.Sqrt(x*x + y*y + z*z)
	return Position{
		LonDeg:   coords.Normalize(coords.Deg(math.Atan2(y, x))),
		LatDeg:   coords.Deg(math.Asin(z / r)),
		RadiusAU: r,
	}, nil
}
