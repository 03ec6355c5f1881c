package houses

import (
	"math"

	"github.com/seleneworks/astrochart/pkg/coords"
)

// angles bundles the chart-frame quantities every system works from:
// the right ascension of the midheaven, the obliquity of date and the
// geographic latitude, all in degrees.
type angles struct {
	ramc float64
	eps  float64
	lat  float64
}

// mcLon converts a right ascension on the ecliptic-crossing meridian to
// ecliptic longitude.
func mcLon(raDeg, epsDeg float64) float64 {
	ra := coords.Rad(raDeg)
	return coords.Normalize(coords.Deg(math.Atan2(
		math.Sin(ra),
		math.Cos(ra)*math.Cos(coords.Rad(epsDeg)),
	)))
}

// ascAt returns the ecliptic longitude rising across the horizon of a
// fictitious observer at the given polar height, for the given oblique
// right ascension. With pole equal to the geographic latitude and
// theta = RAMC+90 this is the ascendant.
func ascAt(thetaDeg, poleDeg, epsDeg float64) float64 {
	theta := coords.Rad(thetaDeg)
	eps := coords.Rad(epsDeg)
	return coords.Normalize(coords.Deg(math.Atan2(
		math.Sin(theta),
		-math.Tan(coords.Rad(poleDeg))*math.Sin(eps)+math.Cos(eps)*math.Cos(theta),
	)))
}

func (a angles) ascendant() float64 { return ascAt(a.ramc+90, a.lat, a.eps) }
func (a angles) midheaven() float64 { return mcLon(a.ramc, a.eps) }

// quadrantCusps assembles a full wheel from the ascendant, midheaven
// and the four intermediate cusps 11, 12, 2 and 3. Opposite cusps are
// exact reflections.
func (a angles) quadrantCusps(c11, c12, c2, c3 float64) [12]float64 {
	asc := a.ascendant()
	mc := a.midheaven()
	return [12]float64{
		asc, c2, c3, coords.Normalize(mc + 180),
		coords.Normalize(c11 + 180), coords.Normalize(c12 + 180),
		coords.Normalize(asc + 180), coords.Normalize(c2 + 180),
		coords.Normalize(c3 + 180), mc, c11, c12,
	}
}

func equalCusps(a angles) ([12]float64, error) {
	var out [12]float64
	asc := a.ascendant()
	for i := range out {
		out[i] = coords.Normalize(asc + float64(30*i))
	}
	return out, nil
}

func wholeSignCusps(a angles) ([12]float64, error) {
	var out [12]float64
	start := 30 * math.Floor(a.ascendant()/30)
	for i := range out {
		out[i] = coords.Normalize(start + float64(30*i))
	}
	return out, nil
}

// placidusCusps finds the intermediate cusps by iterating the
// semi-arc division. Each cusp converges in well under thirty passes at
// temperate latitudes; inside the polar circles a cusp's declination
// can make the semi-arc undefined, which is reported as
// ErrPolarLatitude.
func placidusCusps(a angles) ([12]float64, error) {
	sinEps := math.Sin(coords.Rad(a.eps))
	tanLat := math.Tan(coords.Rad(a.lat))

	cusp := func(offset, frac float64, nocturnal bool) (float64, error) {
		ra := a.ramc + offset
		for i := 0; i < 30; i++ {
			lam := mcLon(ra, a.eps)
			dec := math.Asin(sinEps * math.Sin(coords.Rad(lam)))
			ct := -tanLat * math.Tan(dec)
			if ct < -1 || ct > 1 {
				return 0, ErrPolarLatitude
			}
			sa := coords.Deg(math.Acos(ct))
			if nocturnal {
				ra = a.ramc + 180 - frac*(180-sa)
			} else {
				ra = a.ramc + frac*sa
			}
		}
		return mcLon(ra, a.eps), nil
	}

	c11, err := cusp(30, 1.0/3, false)
	if err != nil {
		return [12]float64{}, err
	}
	c12, err := cusp(60, 2.0/3, false)
	if err != nil {
		return [12]float64{}, err
	}
	c2, err := cusp(120, 2.0/3, true)
	if err != nil {
		return [12]float64{}, err
	}
	c3, err := cusp(150, 1.0/3, true)
	if err != nil {
		return [12]float64{}, err
	}
	return a.quadrantCusps(c11, c12, c2, c3), nil
}

// kochCusps divides the midheaven's own diurnal arc. The construction
// needs the midheaven to rise and set, so it fails where the MC's
// declination is circumpolar.
func kochCusps(a angles) ([12]float64, error) {
	decMC := math.Asin(math.Sin(coords.Rad(a.eps)) * math.Sin(coords.Rad(a.midheaven())))
	tanLat := math.Tan(coords.Rad(a.lat))
	if v := tanLat * math.Tan(decMC); v < -1 || v > 1 {
		return [12]float64{}, ErrPolarLatitude
	}

	c := math.Atan(tanLat / math.Cos(decMC))
	ad3 := coords.Deg(math.Asin(math.Sin(c)*math.Sin(decMC))) / 3

	c11 := ascAt(a.ramc+30-2*ad3, a.lat, a.eps)
	c12 := ascAt(a.ramc+60-ad3, a.lat, a.eps)
	c2 := ascAt(a.ramc+120+ad3, a.lat, a.eps)
	c3 := ascAt(a.ramc+150+2*ad3, a.lat, a.eps)
	return a.quadrantCusps(c11, c12, c2, c3), nil
}

// regiomontanusCusps divides the celestial equator and projects through
// great circles of the observer's horizon system. Each intermediate
// cusp uses its own pole height.
func regiomontanusCusps(a angles) ([12]float64, error) {
	tanLat := math.Tan(coords.Rad(a.lat))
	cusp := func(offset float64) float64 {
		pole := coords.Deg(math.Atan(tanLat * math.Sin(coords.Rad(offset))))
		return ascAt(a.ramc+offset, pole, a.eps)
	}
	return a.quadrantCusps(cusp(30), cusp(60), cusp(120), cusp(150)), nil
}

// campanusCusps divides the prime vertical into equal arcs and maps the
// division points to the ecliptic.
func campanusCusps(a angles) ([12]float64, error) {
	sinLat := math.Sin(coords.Rad(a.lat))
	cosLat := math.Cos(coords.Rad(a.lat))

	fh1 := coords.Deg(math.Asin(sinLat / 2))
	fh2 := coords.Deg(math.Asin(math.Sqrt(3) / 2 * sinLat))
	xh1 := coords.Deg(math.Atan(math.Sqrt(3) / cosLat))
	xh2 := coords.Deg(math.Atan(1 / (math.Sqrt(3) * cosLat)))

	c11 := ascAt(a.ramc+90-xh1, fh1, a.eps)
	c12 := ascAt(a.ramc+90-xh2, fh2, a.eps)
	c2 := ascAt(a.ramc+90+xh2, fh2, a.eps)
	c3 := ascAt(a.ramc+90+xh1, fh1, a.eps)
	return a.quadrantCusps(c11, c12, c2, c3), nil
}

// meridianCusps divides the equator into twelve equal arcs from the
// east point and carries each division to the ecliptic along meridians.
// Latitude plays no part, so the ascendant is generally not on the
// first cusp.
func meridianCusps(a angles) ([12]float64, error) {
	var out [12]float64
	for i := range out {
		out[i] = mcLon(a.ramc+90+float64(30*i), a.eps)
	}
	return out, nil
}

// morinusCusps projects the equal equatorial division directly with the
// obliquity rotation. Like Meridian it is independent of latitude and
// works at the poles.
func morinusCusps(a angles) ([12]float64, error) {
	cosEps := math.Cos(coords.Rad(a.eps))
	var out [12]float64
	for i := range out {
		r := coords.Rad(a.ramc + 90 + float64(30*i))
		out[i] = coords.Normalize(coords.Deg(math.Atan2(math.Sin(r)*cosEps, math.Cos(r))))
	}
	return out, nil
}
