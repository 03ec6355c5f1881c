// Package coords implements the spherical-coordinate machinery shared by
// the position model and the house calculator: angle normalization,
// obliquity of the ecliptic, and conversions between the ecliptic,
// equatorial, and horizontal frames.
//
// All public angles are degrees. Longitude-like outputs (ecliptic
// longitude, right ascension, azimuth) are normalized to [0,360);
// latitude-like inputs are clamped to [-90,90] so the pole cases resolve
// deterministically instead of dividing by zero.
package coords

import (
	"errors"
	"fmt"
	"math"

	"github.com/soniakeys/meeus/v3/nutation"
)

// ErrInvalidLatitude is returned when an observer latitude outside
// [-90,90] is passed to a horizontal-frame conversion.
var ErrInvalidLatitude = errors.New("observer latitude outside [-90,90]")

// Normalize wraps an angle in degrees to the range [0,360).
func Normalize(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	// Adding 360 to a tiny negative remainder rounds to exactly 360,
	// which is outside the half-open range.
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// Rad converts degrees to radians.
func Rad(deg float64) float64 { return deg * math.Pi / 180 }

// Deg converts radians to degrees.
func Deg(rad float64) float64 { return rad * 180 / math.Pi }

// clampLat forces a latitude-like angle into [-90,90].
func clampLat(deg float64) float64 {
	if deg > 90 {
		return 90
	}
	if deg < -90 {
		return -90
	}
	return deg
}

// Obliquity returns the mean obliquity of the ecliptic in degrees for a
// Julian Date, from the IAU polynomial.
func Obliquity(jd float64) float64 {
	return nutation.MeanObliquity(jd).Deg()
}

// EclipticToEquatorial converts ecliptic longitude and latitude to right
// ascension and declination, all in degrees, for obliquity epsDeg.
func EclipticToEquatorial(lonDeg, latDeg, epsDeg float64) (raDeg, decDeg float64) {
	lon := Rad(Normalize(lonDeg))
	lat := Rad(clampLat(latDeg))
	eps := Rad(epsDeg)

	sinLon, cosLon := math.Sincos(lon)
	sinLat, cosLat := math.Sincos(lat)
	sinEps, cosEps := math.Sincos(eps)

	dec := math.Asin(sinLat*cosEps + cosLat*sinEps*sinLon)
	ra := math.Atan2(sinLon*cosEps-math.Tan(lat)*sinEps, cosLon)

	return Normalize(Deg(ra)), Deg(dec)
}

// EquatorialToEcliptic converts right ascension and declination to
// ecliptic longitude and latitude, all in degrees, for obliquity epsDeg.
func EquatorialToEcliptic(raDeg, decDeg, epsDeg float64) (lonDeg, latDeg float64) {
	ra := Rad(Normalize(raDeg))
	dec := Rad(clampLat(decDeg))
	eps := Rad(epsDeg)

	sinRA, cosRA := math.Sincos(ra)
	sinDec, cosDec := math.Sincos(dec)
	sinEps, cosEps := math.Sincos(eps)

	lat := math.Asin(sinDec*cosEps - cosDec*sinEps*sinRA)
	lon := math.Atan2(sinRA*cosEps+math.Tan(dec)*sinEps, cosRA)

	return Normalize(Deg(lon)), Deg(lat)
}

// EquatorialToHorizontal converts right ascension and declination to
// azimuth and altitude for an observer at latDeg with local sidereal time
// lstDeg. Azimuth is measured from north, clockwise through east.
func EquatorialToHorizontal(raDeg, decDeg, latDeg, lstDeg float64) (azDeg, altDeg float64, err error) {
	if latDeg < -90 || latDeg > 90 {
		return 0, 0, fmt.Errorf("equatorial to horizontal: %w", ErrInvalidLatitude)
	}
	ha := Rad(Normalize(lstDeg - raDeg))
	dec := Rad(clampLat(decDeg))
	lat := Rad(latDeg)

	sinHA, cosHA := math.Sincos(ha)
	sinDec, cosDec := math.Sincos(dec)
	sinLat, cosLat := math.Sincos(lat)

	alt := math.Asin(sinLat*sinDec + cosLat*cosDec*cosHA)
	// Measured from south westward, then rotated to a north-based bearing.
	az := math.Atan2(sinHA, cosHA*sinLat-math.Tan(dec)*cosLat)

	return Normalize(Deg(az) + 180), Deg(alt), nil
}

// HorizontalToEquatorial converts azimuth (north-based, clockwise) and
// altitude back to right ascension and declination for an observer at
// latDeg with local sidereal time lstDeg.
func HorizontalToEquatorial(azDeg, altDeg, latDeg, lstDeg float64) (raDeg, decDeg float64, err error) {
	if latDeg < -90 || latDeg > 90 {
		return 0, 0, fmt.Errorf("horizontal to equatorial: %w", ErrInvalidLatitude)
	}
	az := Rad(Normalize(azDeg) - 180)
	alt := Rad(clampLat(altDeg))
	lat := Rad(latDeg)

	sinAz, cosAz := math.Sincos(az)
	sinAlt, cosAlt := math.Sincos(alt)
	sinLat, cosLat := math.Sincos(lat)

	dec := math.Asin(sinLat*sinAlt - cosLat*cosAlt*cosAz)
	ha := math.Atan2(sinAz, cosAz*sinLat+math.Tan(alt)*cosLat)

	return Normalize(lstDeg - Deg(ha)), Deg(dec), nil
}
