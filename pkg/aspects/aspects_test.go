package aspects

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/seleneworks/astrochart/pkg/ephemeris"
)

func state(b ephemeris.Body, lon, speed float64) ephemeris.BodyState {
	return ephemeris.BodyState{
		Body:           b,
		Position:       ephemeris.Position{LonDeg: lon},
		SpeedDegPerDay: speed,
	}
}

func TestSeparation(t *testing.T) {
	tests := []struct {
		a, b, want float64
	}{
		{10, 10, 0},
		{100, 10, 90},
		{10, 100, 90},
		{355, 5, 10},
		{5, 355, 10},
		{0, 180, 180},
		{359, 181, 178},
	}
	for _, tt := range tests {
		if got := Separation(tt.a, tt.b); !scalar.EqualWithinAbs(got, tt.want, 1e-10) {
			t.Errorf("Separation(%.0f, %.0f) = %.6f, expected %.6f", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestExactConjunctionEqualSpeeds(t *testing.T) {
	got := Detect([]ephemeris.BodyState{
		state(ephemeris.Sun, 120, 1),
		state(ephemeris.Mercury, 120, 1),
	}, Options{})
	if len(got) != 1 {
		t.Fatalf("detected %d aspects, expected 1", len(got))
	}
	a := got[0]
	if a.Type != Conjunction {
		t.Errorf("type = %v, expected Conjunction", a.Type)
	}
	if a.OrbDeg != 0 {
		t.Errorf("orb = %.6f, expected exactly 0", a.OrbDeg)
	}
	if a.Applying {
		t.Error("equal speeds must not count as applying")
	}
}

func TestApplyingAndSeparating(t *testing.T) {
	tests := []struct {
		name     string
		a, b     ephemeris.BodyState
		typ      Type
		applying bool
	}{
		{
			// The faster Moon widens a 119 degree gap toward the trine.
			"applying trine",
			state(ephemeris.Moon, 129, 13), state(ephemeris.Sun, 10, 1),
			Trine, true,
		},
		{
			// Past exactness and pulling away.
			"separating trine",
			state(ephemeris.Moon, 131, 13), state(ephemeris.Sun, 10, 1),
			Trine, false,
		},
		{
			// Conjunction across the 0 degree boundary, gap closing.
			"applying conjunction over wrap",
			state(ephemeris.Moon, 357, 13), state(ephemeris.Sun, 3, 1),
			Conjunction, true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Detect([]ephemeris.BodyState{tt.a, tt.b}, Options{})
			if len(got) != 1 {
				t.Fatalf("detected %d aspects, expected 1", len(got))
			}
			if got[0].Type != tt.typ {
				t.Errorf("type = %v, expected %v", got[0].Type, tt.typ)
			}
			if got[0].Applying != tt.applying {
				t.Errorf("applying = %v, expected %v", got[0].Applying, tt.applying)
			}
		})
	}
}

func TestOrbNeverExceedsMaximum(t *testing.T) {
	orbs := map[Type]float64{}
	for _, def := range table {
		orbs[def.typ] = def.orb
	}
	var states []ephemeris.BodyState
	for lon := 0.0; lon < 360; lon += 7.3 {
		states = append(states, state(ephemeris.Body(len(states)%10), lon, 1))
	}
	for _, a := range Detect(states, Options{}) {
		if a.OrbDeg > orbs[a.Type] {
			t.Errorf("%v between %v and %v: orb %.4f exceeds maximum %.1f",
				a.Type, a.BodyA, a.BodyB, a.OrbDeg, orbs[a.Type])
		}
		if a.OrbDeg < 0 {
			t.Errorf("negative orb %.4f", a.OrbDeg)
		}
	}
}

func TestNoAspectOutsideOrbs(t *testing.T) {
	// 15 degrees falls between the conjunction and semisextile orbs.
	got := Detect([]ephemeris.BodyState{
		state(ephemeris.Sun, 0, 1),
		state(ephemeris.Venus, 15, 1.2),
	}, Options{})
	if len(got) != 0 {
		t.Fatalf("detected %v, expected nothing at 15 degrees", got)
	}
}

func TestRetrogradePairExcluded(t *testing.T) {
	states := []ephemeris.BodyState{
		state(ephemeris.Sun, 10, 1),
		state(ephemeris.Mars, 130, -0.4),
	}
	if got := Detect(states, Options{}); len(got) != 0 {
		t.Fatalf("retrograde pair detected by default: %v", got)
	}
	got := Detect(states, Options{IncludeRetrograde: true})
	if len(got) != 1 || got[0].Type != Trine {
		t.Fatalf("expected one trine with IncludeRetrograde, got %v", got)
	}
}

func TestMinorAspects(t *testing.T) {
	tests := []struct {
		sep float64
		typ Type
	}{
		{30.5, Semisextile},
		{44.2, Semisquare},
		{360.0 / 7, Septile},
		{40.9, Novile},
		{72.0, Quintile},
		{144.8, Biquintile},
		{150.0, Quincunx},
		{160.4, Quadrinovile},
	}
	for _, tt := range tests {
		got := Detect([]ephemeris.BodyState{
			state(ephemeris.Sun, 100, 1),
			state(ephemeris.Venus, 100+tt.sep, 1.1),
		}, Options{})
		if len(got) != 1 {
			t.Fatalf("separation %.3f: detected %d aspects, expected 1", tt.sep, len(got))
		}
		if got[0].Type != tt.typ {
			t.Errorf("separation %.3f: type = %v, expected %v", tt.sep, got[0].Type, tt.typ)
		}
	}
}

func TestTableAnglesDisjoint(t *testing.T) {
	// No separation can sit inside two orbs at once, so detection never
	// depends on table order.
	for i, a := range table {
		for _, b := range table[i+1:] {
			gap := math.Abs(a.exact - b.exact)
			if gap <= a.orb+b.orb {
				t.Errorf("%v and %v overlap: angles %.3f and %.3f within summed orb %.1f",
					a.typ, b.typ, a.exact, b.exact, a.orb+b.orb)
			}
		}
	}
	if len(table) != 17 {
		t.Errorf("table has %d entries, expected 17", len(table))
	}
}

func TestDetectFromProvider(t *testing.T) {
	// 1977-10-23: the Moon at 342.8 stands 133.05 degrees ahead of the
	// Sun at 209.8, an applying sesquiquadrate.
	p := ephemeris.NewBuiltin(nil)
	var states []ephemeris.BodyState
	for _, b := range []ephemeris.Body{ephemeris.Sun, ephemeris.Moon} {
		s, err := ephemeris.StateAt(p, 2443439.5, b)
		if err != nil {
			t.Fatalf("StateAt(%v): %v", b, err)
		}
		states = append(states, s)
	}
	got := Detect(states, Options{})
	if len(got) != 1 {
		t.Fatalf("detected %d aspects, expected 1", len(got))
	}
	if got[0].Type != Sesquiquadrate || !got[0].Applying {
		t.Errorf("got %+v, expected an applying sesquiquadrate", got[0])
	}
}
