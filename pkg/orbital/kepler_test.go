package orbital

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestSolveKepler(t *testing.T) {
	tests := []struct {
		name string
		m, e float64
		want float64
	}{
		{"circular orbit", 1.2345, 0, 1.2345},
		{"zero anomaly", 0, 0.5, 0},
		{"half orbit", math.Pi, 0.3, math.Pi},
		{"moderate eccentricity", 1.0, 0.1, 1.0885977523978936},
		{"high eccentricity", 2.0, 0.9, 2.522365434000245},
		{"near perihelion high e", 0.1, 0.97, 0.7869726734337711},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SolveKepler(tt.m, tt.e)
			if err != nil {
				t.Fatalf("SolveKepler: %v", err)
			}
			if !scalar.EqualWithinAbs(got, tt.want, 1e-10) {
				t.Errorf("E = %.12f, expected %.12f", got, tt.want)
			}
			// The solution satisfies Kepler's equation.
			if resid := got - tt.e*math.Sin(got) - tt.m; math.Abs(resid) > 1e-10 {
				t.Errorf("residual %e", resid)
			}
		})
	}
}

func TestSolveKeplerConvergesForTableBodies(t *testing.T) {
	// Every table body at every time in a +/- 2 century window must solve
	// without hitting the iteration cap.
	for p := Mercury; p <= Pluto; p++ {
		table, ok := TableElements(p)
		if !ok {
			t.Fatalf("missing elements for %s", p)
		}
		for tc := -2.0; tc <= 2.0; tc += 0.0831 {
			el := table.At(tc)
			m := el.MeanLongitudeDeg - el.LongitudeOfPerihelionDeg
			if _, err := SolveKepler(m*math.Pi/180, el.Eccentricity); err != nil {
				t.Errorf("%s at T=%.4f: %v", p, tc, err)
			}
		}
	}
}

func TestSolveKeplerNonConvergence(t *testing.T) {
	// A parabolic eccentricity at perihelion makes the Newton denominator
	// vanish; the solver must report it instead of returning a junk
	// estimate.
	_, err := SolveKepler(0, 1.0)
	if !errors.Is(err, ErrKeplerNoConvergence) {
		t.Errorf("expected ErrKeplerNoConvergence, got %v", err)
	}
}

func TestTrueAnomaly(t *testing.T) {
	// At e=0 the anomalies coincide.
	if got := TrueAnomaly(1.5, 0); !scalar.EqualWithinAbs(got, 1.5, 1e-12) {
		t.Errorf("TrueAnomaly(1.5, 0) = %f", got)
	}
	// True anomaly leads the eccentric anomaly on the outbound half.
	if got := TrueAnomaly(1.0, 0.2); got <= 1.0 {
		t.Errorf("TrueAnomaly(1.0, 0.2) = %f, expected > 1", got)
	}
	// Antisymmetric about perihelion.
	plus := TrueAnomaly(0.7, 0.3)
	minus := TrueAnomaly(-0.7, 0.3)
	if !scalar.EqualWithinAbs(plus, -minus, 1e-12) {
		t.Errorf("asymmetry: %f vs %f", plus, minus)
	}
}
