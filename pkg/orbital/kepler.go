package orbital

import (
	"errors"
	"fmt"
	"math"
)

// ErrKeplerNoConvergence is returned when the Newton iteration for the
// eccentric anomaly fails to reach tolerance within the iteration budget.
// The solver never hands back an unconverged estimate.
var ErrKeplerNoConvergence = errors.New("kepler solver did not converge")

const (
	keplerTolerance = 1e-12
	keplerMaxIter   = 50
)

// SolveKepler solves Kepler's equation E - e*sin(E) = M for the eccentric
// anomaly E, with M in radians and 0 <= e < 1. Newton's method seeded at
// E0 = M converges in a handful of iterations for planetary
// eccentricities.
func SolveKepler(meanAnomaly, eccentricity float64) (float64, error) {
	ecc, iters, err := solveKepler(meanAnomaly, eccentricity)
	if err != nil {
		return 0, fmt.Errorf("kepler: M=%.9f e=%.6f after %d iterations: %w", meanAnomaly, eccentricity, iters, err)
	}
	return ecc, nil
}

func solveKepler(m, e float64) (ecc float64, iters int, err error) {
	ecc = m
	for iters = 1; iters <= keplerMaxIter; iters++ {
		delta := (ecc - e*math.Sin(ecc) - m) / (1 - e*math.Cos(ecc))
		ecc -= delta
		if math.Abs(delta) < keplerTolerance {
			return ecc, iters, nil
		}
	}
	return ecc, keplerMaxIter, ErrKeplerNoConvergence
}

// TrueAnomaly converts an eccentric anomaly to the true anomaly for
// eccentricity e, using the half-angle form which is stable near
// perihelion and aphelion.
func TrueAnomaly(eccentricAnomaly, e float64) float64 {
	return 2 * math.Atan2(
		math.Sqrt(1+e)*math.Sin(eccentricAnomaly/2),
		math.Sqrt(1-e)*math.Cos(eccentricAnomaly/2),
	)
}
