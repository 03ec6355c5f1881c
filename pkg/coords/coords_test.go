package coords

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

const testObliquity = 23.43929111

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{359.999, 359.999},
		{360, 0},
		{720.5, 0.5},
		{-1, 359},
		{-360, 0},
		{-725, 355},
		{1e6, math.Mod(1e6, 360)},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); !scalar.EqualWithinAbs(got, tt.want, 1e-9) {
			t.Errorf("Normalize(%f) = %f, expected %f", tt.in, got, tt.want)
		}
	}
	// A tiny negative input must fold to 0, not round up to 360.
	if got := Normalize(-1e-15); got != 0 {
		t.Errorf("Normalize(-1e-15) = %v, expected 0", got)
	}
	if got := Normalize(-1e-300); got != 0 {
		t.Errorf("Normalize(-1e-300) = %v, expected 0", got)
	}
}

func TestNormalizeRangeAndIdempotence(t *testing.T) {
	for x := -1080.0; x <= 1080.0; x += 7.31 {
		n := Normalize(x)
		if n < 0 || n >= 360 {
			t.Fatalf("Normalize(%f) = %f out of [0,360)", x, n)
		}
		if again := Normalize(n); again != n {
			t.Fatalf("Normalize not idempotent at %f: %f != %f", x, again, n)
		}
	}
}

func TestDegRadRoundTrip(t *testing.T) {
	for d := 0; d <= 360; d++ {
		got := Deg(Rad(float64(d)))
		if !scalar.EqualWithinAbs(got, float64(d), 1e-10) {
			t.Errorf("Deg(Rad(%d)) = %.12f", d, got)
		}
	}
}

func TestObliquity(t *testing.T) {
	// IAU mean obliquity at J2000.0.
	got := Obliquity(2451545.0)
	if !scalar.EqualWithinAbs(got, testObliquity, 1e-6) {
		t.Errorf("Obliquity(J2000) = %.8f, expected %.8f", got, testObliquity)
	}
	// Slowly decreasing over centuries.
	if later := Obliquity(2451545.0 + 36525); later >= got {
		t.Errorf("obliquity should decrease: %f -> %f", got, later)
	}
}

func TestEclipticToEquatorialFixedPoints(t *testing.T) {
	// The vernal equinox is the shared origin of both frames.
	ra, dec := EclipticToEquatorial(0, 0, testObliquity)
	if !scalar.EqualWithinAbs(ra, 0, 1e-10) || !scalar.EqualWithinAbs(dec, 0, 1e-10) {
		t.Errorf("equinox point: ra=%.12f dec=%.12f, expected 0,0", ra, dec)
	}

	// The summer solstice point lies at RA 90 with declination equal to
	// the obliquity.
	ra, dec = EclipticToEquatorial(90, 0, testObliquity)
	if !scalar.EqualWithinAbs(ra, 90, 1e-10) {
		t.Errorf("solstice point: ra=%.12f, expected 90", ra)
	}
	if !scalar.EqualWithinAbs(dec, testObliquity, 1e-10) {
		t.Errorf("solstice point: dec=%.12f, expected %f", dec, testObliquity)
	}
}

func TestEclipticEquatorialRoundTrip(t *testing.T) {
	for lon := 0.0; lon < 360; lon += 31.7 {
		for lat := -80.0; lat <= 80; lat += 23.3 {
			ra, dec := EclipticToEquatorial(lon, lat, testObliquity)
			backLon, backLat := EquatorialToEcliptic(ra, dec, testObliquity)
			if !scalar.EqualWithinAbs(backLon, lon, 1e-9) || !scalar.EqualWithinAbs(backLat, lat, 1e-9) {
				t.Errorf("round trip (%f,%f) -> (%f,%f)", lon, lat, backLon, backLat)
			}
		}
	}
}

func TestEquatorialHorizontalRoundTrip(t *testing.T) {
	const lst = 123.456
	for _, obsLat := range []float64{-62.5, -33.9, 0, 40.7, 64.1} {
		for ra := 0.0; ra < 360; ra += 47.3 {
			for dec := -60.0; dec <= 60; dec += 29.1 {
				az, alt, err := EquatorialToHorizontal(ra, dec, obsLat, lst)
				if err != nil {
					t.Fatalf("EquatorialToHorizontal: %v", err)
				}
				backRA, backDec, err := HorizontalToEquatorial(az, alt, obsLat, lst)
				if err != nil {
					t.Fatalf("HorizontalToEquatorial: %v", err)
				}
				if !scalar.EqualWithinAbs(backRA, ra, 1e-8) || !scalar.EqualWithinAbs(backDec, dec, 1e-8) {
					t.Errorf("lat %f: round trip (%f,%f) -> (%f,%f)", obsLat, ra, dec, backRA, backDec)
				}
			}
		}
	}
}

func TestHorizontalInvalidLatitude(t *testing.T) {
	if _, _, err := EquatorialToHorizontal(10, 10, 91, 0); !errors.Is(err, ErrInvalidLatitude) {
		t.Errorf("expected ErrInvalidLatitude, got %v", err)
	}
	if _, _, err := HorizontalToEquatorial(10, 10, -90.0001, 0); !errors.Is(err, ErrInvalidLatitude) {
		t.Errorf("expected ErrInvalidLatitude, got %v", err)
	}
}

func TestPoleClampIsDeterministic(t *testing.T) {
	// Out-of-range input latitudes clamp to the pole instead of producing
	// NaN through a tangent blowup.
	ra, dec := EclipticToEquatorial(45, 95, testObliquity)
	if math.IsNaN(ra) || math.IsNaN(dec) {
		t.Fatalf("clamped pole conversion produced NaN: %f %f", ra, dec)
	}
	ra2, dec2 := EclipticToEquatorial(45, 90, testObliquity)
	if ra != ra2 || dec != dec2 {
		t.Errorf("clamp at pole not deterministic: (%f,%f) vs (%f,%f)", ra, dec, ra2, dec2)
	}
}
