// Package chart assembles full charts: body positions and speeds,
// house cusps, placements and aspects for one moment and place. It is
// the composition layer over the ephemeris, houses and aspects
// packages.
package chart

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/seleneworks/astrochart/pkg/aspects"
	"github.com/seleneworks/astrochart/pkg/astrotime"
	"github.com/seleneworks/astrochart/pkg/coords"
	"github.com/seleneworks/astrochart/pkg/ephemeris"
	"github.com/seleneworks/astrochart/pkg/houses"
)

// BodyResult is one body's computed place in the chart.
type BodyResult struct {
	Body           ephemeris.Body
	LonDeg         float64
	LatDeg         float64
	RadiusAU       float64
	SpeedDegPerDay float64
	Retrograde     bool
	House          int
}

// HouseResult is one house cusp.
type HouseResult struct {
	Number  int
	CuspDeg float64
}

// Chart is a fully computed chart.
type Chart struct {
	JulianDate  float64
	System      houses.System
	AscDeg      float64
	MCDeg       float64
	AyanamsaDeg float64
	Bodies      []BodyResult
	Houses      [12]HouseResult
	Aspects     []aspects.Aspect
}

// Ayanamsa returns the Lahiri-style offset between the tropical and
// sidereal zodiacs, in degrees, at T Julian centuries since J2000.0.
func Ayanamsa(t float64) float64 {
	return 23.85316 + 1.396971*t
}

// Engine computes charts against a position provider. The zero options
// give the built-in provider, a nop logger and default aspect
// detection.
type Engine struct {
	provider   ephemeris.Provider
	log        *zap.Logger
	aspectOpts aspects.Options
}

// Option configures an Engine.
type Option func(*Engine)

// WithProvider swaps the position provider, e.g. for a JPL file.
func WithProvider(p ephemeris.Provider) Option {
	return func(e *Engine) { e.provider = p }
}

// WithLogger installs a logger for per-stage diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithAspectOptions overrides aspect detection behavior.
func WithAspectOptions(o aspects.Options) Option {
	return func(e *Engine) { e.aspectOpts = o }
}

// NewEngine returns a ready Engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		provider: ephemeris.NewBuiltin(nil),
		log:      zap.NewNop(),
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Compute builds the chart for a request. Body states are computed in
// parallel, then houses, placements and aspects are derived from the
// complete set.
func (e *Engine) Compute(ctx context.Context, req Request) (*Chart, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	jd := astrotime.JulianDate(req.Year, req.Month, req.Day, req.Hour, req.Minute,
		req.Second, req.TZOffsetHours)
	bodies := req.bodies()

	states := make([]ephemeris.BodyState, len(bodies))
	g, ctx := errgroup.WithContext(ctx)
	for i, b := range bodies {
		i, b := i, b
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s, err := ephemeris.StateAt(e.provider, jd, b)
			if err != nil {
				return err
			}
			states[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	cusps, err := houses.Calculate(jd, req.LatDeg, req.LonDeg, req.HouseSystem)
	if err != nil {
		return nil, err
	}

	var ayanamsa float64
	if req.Sidereal {
		ayanamsa = Ayanamsa(astrotime.JulianCenturies(jd))
	}

	out := &Chart{
		JulianDate:  jd,
		System:      cusps.System,
		AscDeg:      coords.Normalize(cusps.AscDeg - ayanamsa),
		MCDeg:       coords.Normalize(cusps.MCDeg - ayanamsa),
		AyanamsaDeg: ayanamsa,
	}

	// House membership and aspect separations are unchanged by the
	// uniform ayanamsa rotation, so both run on the tropical values.
	out.Aspects = aspects.Detect(states, e.aspectOpts)
	for _, s := range states {
		e.log.Debug("body state",
			zap.Stringer("body", s.Body),
			zap.Float64("lon", s.LonDeg),
			zap.Float64("speed", s.SpeedDegPerDay),
		)
		out.Bodies = append(out.Bodies, BodyResult{
			Body:           s.Body,
			LonDeg:         coords.Normalize(s.LonDeg - ayanamsa),
			LatDeg:         s.LatDeg,
			RadiusAU:       s.RadiusAU,
			SpeedDegPerDay: s.SpeedDegPerDay,
			Retrograde:     s.Retrograde(),
			House:          cusps.House(s.LonDeg),
		})
	}
	for i := range out.Houses {
		out.Houses[i] = HouseResult{
			Number:  i + 1,
			CuspDeg: coords.Normalize(cusps.Cusp[i] - ayanamsa),
		}
	}

	e.log.Info("chart computed",
		zap.Float64("jd", jd),
		zap.Stringer("system", cusps.System),
		zap.String("provider", e.provider.Name()),
		zap.Int("bodies", len(out.Bodies)),
		zap.Int("aspects", len(out.Aspects)),
	)
	return out, nil
}
