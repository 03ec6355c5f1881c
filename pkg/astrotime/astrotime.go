// Package astrotime converts civil timestamps into the time scales the
// position model runs on: Julian Date, Julian centuries since J2000.0,
// and mean sidereal time.
package astrotime

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// J2000 is the Julian Date of the J2000.0 epoch.
const J2000 = 2451545.0

// DaysPerCentury is the length of a Julian century in days.
const DaysPerCentury = 36525.0

// JulianDate converts a proleptic Gregorian date and civil time of day,
// together with a timezone offset in hours east of UTC, to a Julian Date.
// The offset is subtracted from the time of day first, so local wall-clock
// time plus its zone produces the correct UT instant.
//
// Calendar components are not range-checked here; validating the request
// is the caller's responsibility.
func JulianDate(year, month, day, hour, minute int, second, tzOffsetHours float64) float64 {
	y := float64(year)
	m := float64(month)
	ut := float64(hour) + float64(minute)/60 + second/3600 - tzOffsetHours

	// Jan and Feb count as months 13 and 14 of the previous year.
	if m <= 2 {
		y--
		m += 12
	}

	a := math.Floor(y / 100)
	b := 2 - a + math.Floor(a/4)

	jd := math.Floor(365.25*(y+4716)) + math.Floor(30.6001*(m+1)) + float64(day) + b - 1524.5
	return jd + ut/24
}

// FromTime converts a time.Time to a Julian Date.
func FromTime(t time.Time) float64 {
	return julian.TimeToJD(t.UTC())
}

// JulianCenturies returns Julian centuries elapsed since J2000.0.
func JulianCenturies(jd float64) float64 {
	return (jd - J2000) / DaysPerCentury
}

// JDFromCenturies is the inverse of JulianCenturies.
func JDFromCenturies(t float64) float64 {
	return J2000 + t*DaysPerCentury
}

// GMST returns Greenwich mean sidereal time in degrees [0,360) for a
// Julian Date, using the IAU 1982 coefficients.
func GMST(jd float64) float64 {
	// Sidereal time at the preceding midnight, in hours.
	jd0 := math.Floor(jd-0.5) + 0.5
	t := (jd0 - J2000) / DaysPerCentury
	gmst := 6.697374558 + 2400.0513369*t + 0.0000258622*t*t - 1.7222e-9*t*t*t

	// Advance by the elapsed UT at the sidereal rate.
	gmst += 1.00273790935 * (jd - jd0) * 24

	gmst = math.Mod(gmst, 24)
	if gmst < 0 {
		gmst += 24
	}
	if gmst >= 24 {
		gmst = 0
	}
	return gmst * 15
}

// LST returns local mean sidereal time in degrees [0,360) for a Julian
// Date and an observer longitude in degrees, east positive.
func LST(jd, lonDeg float64) float64 {
	lst := math.Mod(GMST(jd)+lonDeg, 360)
	if lst < 0 {
		lst += 360
	}
	if lst >= 360 {
		lst = 0
	}
	return lst
}
