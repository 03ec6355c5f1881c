package orbital

import (
	"math"

	"github.com/seleneworks/astrochart/pkg/coords"
)

// kmPerAU converts the lunar distance series, which works in kilometers,
// to AU.
const kmPerAU = 149597870.7

// MoonPosition returns the Moon's geocentric ecliptic longitude, latitude
// and distance at T Julian centuries since J2000.0.
//
// The Moon does not go through the Keplerian solver: its orbit is
// perturbed too strongly for mean elements to be useful, so a truncated
// Meeus periodic series over the fundamental lunar arguments is used
// instead. Accuracy is a few arcminutes in longitude, which is adequate
// for chart work.
func MoonPosition(t float64) Spherical {
	// Fundamental arguments, degrees.
	l := 218.3164477 + // mean longitude
		481267.88123421*t -
		0.0015786*t*t +
		t*t*t/538841 -
		t*t*t*t/65194000

	d := 297.8501921 + // mean elongation from the Sun
		445267.1114034*t -
		0.0018819*t*t +
		t*t*t/545868 -
		t*t*t*t/113065000

	mp := 134.9633964 + // mean anomaly
		477198.8675055*t +
		0.0087414*t*t +
		t*t*t/69699 -
		t*t*t*t/14712000

	f := 93.2720950 + // argument of latitude
		483202.0175233*t -
		0.0036539*t*t -
		t*t*t/3526000 +
		t*t*t*t/863310000

	dRad := coords.Rad(coords.Normalize(d))
	mpRad := coords.Rad(coords.Normalize(mp))
	fRad := coords.Rad(coords.Normalize(f))

	// Longitude: dominant terms of the ELP series.
	lon := l +
		6.289*math.Sin(mpRad) +
		1.274*math.Sin(2*dRad-mpRad) +
		0.658*math.Sin(2*dRad) +
		0.214*math.Sin(2*mpRad) +
		0.110*math.Sin(dRad)

	// Latitude: dominant terms.
	lat := 5.128*math.Sin(fRad) +
		0.2806*math.Sin(mpRad+fRad) +
		0.2777*math.Sin(mpRad-fRad) +
		0.1732*math.Sin(2*dRad-fRad)

	// Distance in kilometers, dominant cosine terms.
	distKm := 385000.56 -
		20905.355*math.Cos(mpRad) -
		3699.111*math.Cos(2*dRad-mpRad) -
		2955.968*math.Cos(2*dRad) -
		569.925*math.Cos(2*mpRad)

	return Spherical{
		LonDeg:   coords.Normalize(lon),
		LatDeg:   lat,
		RadiusAU: distKm / kmPerAU,
	}
}
