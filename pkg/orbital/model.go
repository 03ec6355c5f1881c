package orbital

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/seleneworks/astrochart/pkg/coords"
)

// ErrNoElements is returned for a planet without an element-table entry.
var ErrNoElements = errors.New("no orbital elements for planet")

// Model evaluates heliocentric ecliptic positions from the mean element
// table. A Model is stateless apart from its logger and is safe for
// concurrent use.
type Model struct {
	log *zap.Logger
}

// Option configures a Model.
type Option func(*Model)

// WithLogger installs a logger for solver diagnostics. Iteration detail
// is emitted at Debug level only; the default is a nop logger.
func WithLogger(l *zap.Logger) Option {
	return func(m *Model) { m.log = l }
}

// NewModel returns a Model over the built-in element table.
func NewModel(opts ...Option) *Model {
	m := &Model{log: zap.NewNop()}
	for _, o := range opts {
		o(m)
	}
	return m
}

// Spherical is a heliocentric position in ecliptic spherical form.
type Spherical struct {
	LonDeg   float64
	LatDeg   float64
	RadiusAU float64
}

// HeliocentricVector returns the heliocentric ecliptic rectangular
// position of a planet in AU at T Julian centuries since J2000.0.
func (m *Model) HeliocentricVector(p Planet, t float64) (r3.Vec, error) {
	table, ok := TableElements(p)
	if !ok {
		return r3.Vec{}, fmt.Errorf("%w: %s", ErrNoElements, p)
	}
	el := table.At(t)

	// Mean anomaly from mean longitude and longitude of perihelion.
	meanAnomaly := coords.Rad(coords.Normalize(el.MeanLongitudeDeg - el.LongitudeOfPerihelionDeg))

	ecc, iters, err := solveKepler(meanAnomaly, el.Eccentricity)
	if err != nil {
		return r3.Vec{}, fmt.Errorf("%s at T=%.6f: %w", p, t, err)
	}
	m.log.Debug("kepler solved",
		zap.Stringer("planet", p),
		zap.Float64("t", t),
		zap.Int("iterations", iters),
	)

	nu := TrueAnomaly(ecc, el.Eccentricity)
	radius := el.SemiMajorAxisAU * (1 - el.Eccentricity*el.Eccentricity) /
		(1 + el.Eccentricity*math.Cos(nu))

	// Argument of latitude and orbital orientation.
	u := nu + coords.Rad(el.LongitudeOfPerihelionDeg-el.AscendingNodeDeg)
	sinU, cosU := math.Sincos(u)
	sinNode, cosNode := math.Sincos(coords.Rad(el.AscendingNodeDeg))
	sinInc, cosInc := math.Sincos(coords.Rad(el.InclinationDeg))

	return r3.Vec{
		X: radius * (cosNode*cosU - sinNode*sinU*cosInc),
		Y: radius * (sinNode*cosU + cosNode*sinU*cosInc),
		Z: radius * sinU * sinInc,
	}, nil
}

// Heliocentric returns the heliocentric ecliptic longitude, latitude and
// radius of a planet at T Julian centuries since J2000.0.
func (m *Model) Heliocentric(p Planet, t float64) (Spherical, error) {
	v, err := m.HeliocentricVector(p, t)
	if err != nil {
		return Spherical{}, err
	}
	return ToSpherical(v), nil
}

// ToSpherical converts an ecliptic rectangular vector to spherical form
// with the longitude normalized to [0,360).
func ToSpherical(v r3.Vec) Spherical {
	radius := r3.Norm(v)
	return Spherical{
		LonDeg:   coords.Normalize(coords.Deg(math.Atan2(v.Y, v.X))),
		LatDeg:   coords.Deg(math.Asin(v.Z / radius)),
		RadiusAU: radius,
	}
}
