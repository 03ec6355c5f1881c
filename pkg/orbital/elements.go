// Package orbital evaluates heliocentric positions of the planets from
// mean Keplerian elements, and the Moon's geocentric position from a
// truncated periodic series. Element tables are Standish-style mean
// elements referred to the mean ecliptic and equinox of J2000, valid for
// roughly 1800-2050.
package orbital

// Planet identifies a body with an entry in the element table. Earth is
// included because the geocentric transform needs its heliocentric
// position; the Sun and Moon have no Keplerian entries.
type Planet int

const (
	Mercury Planet = iota
	Venus
	Earth
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
	Pluto
)

var planetNames = [...]string{"Mercury", "Venus", "Earth", "Mars", "Jupiter", "Saturn", "Uranus", "Neptune", "Pluto"}

func (p Planet) String() string {
	if p < 0 || int(p) >= len(planetNames) {
		return "Unknown"
	}
	return planetNames[p]
}

// Coeffs is one orbital element as a polynomial in Julian centuries T:
// value(T) = Const + Linear*T + Quad*T*T.
type Coeffs struct {
	Const, Linear, Quad float64
}

// At evaluates the polynomial at T.
func (c Coeffs) At(t float64) float64 {
	return c.Const + t*(c.Linear+t*c.Quad)
}

// Elements holds the six mean orbital elements of a planet, each as a
// polynomial in Julian centuries since J2000.0. Angles are degrees, the
// semi-major axis is in AU.
type Elements struct {
	SemiMajorAxis         Coeffs // a
	Eccentricity          Coeffs // e
	Inclination           Coeffs // i
	MeanLongitude         Coeffs // L
	LongitudeOfPerihelion Coeffs // varpi
	AscendingNode         Coeffs // Omega
}

// ElementsAt is the element set evaluated at a specific time.
type ElementsAt struct {
	SemiMajorAxisAU          float64
	Eccentricity             float64
	InclinationDeg           float64
	MeanLongitudeDeg         float64
	LongitudeOfPerihelionDeg float64
	AscendingNodeDeg         float64
}

// At evaluates all six elements at T (Julian centuries since J2000.0).
func (e Elements) At(t float64) ElementsAt {
	return ElementsAt{
		SemiMajorAxisAU:          e.SemiMajorAxis.At(t),
		Eccentricity:             e.Eccentricity.At(t),
		InclinationDeg:           e.Inclination.At(t),
		MeanLongitudeDeg:         e.MeanLongitude.At(t),
		LongitudeOfPerihelionDeg: e.LongitudeOfPerihelion.At(t),
		AscendingNodeDeg:         e.AscendingNode.At(t),
	}
}

// elementTable holds the mean elements and per-century rates for every
// planet (Standish, "Keplerian Elements for Approximate Positions of the
// Major Planets", 1800-2050 fit). Earth values are for the Earth-Moon
// barycenter. Quadratic terms are carried for table shape even where the
// fit provides none.
var elementTable = map[Planet]Elements{
	Mercury: {
		SemiMajorAxis:         Coeffs{0.38709927, 0.00000037, 0},
		Eccentricity:          Coeffs{0.20563593, 0.00001906, 0},
		Inclination:           Coeffs{7.00497902, -0.00594749, 0},
		MeanLongitude:         Coeffs{252.25032350, 149472.67411175, 0},
		LongitudeOfPerihelion: Coeffs{77.45779628, 0.16047689, 0},
		AscendingNode:         Coeffs{48.33076593, -0.12534081, 0},
	},
	Venus: {
		SemiMajorAxis:         Coeffs{0.72333566, 0.00000390, 0},
		Eccentricity:          Coeffs{0.00677672, -0.00004107, 0},
		Inclination:           Coeffs{3.39467605, -0.00078890, 0},
		MeanLongitude:         Coeffs{181.97909950, 58517.81538729, 0},
		LongitudeOfPerihelion: Coeffs{131.60246718, 0.00268329, 0},
		AscendingNode:         Coeffs{76.67984255, -0.27769418, 0},
	},
	Earth: {
		SemiMajorAxis:         Coeffs{1.00000261, 0.00000562, 0},
		Eccentricity:          Coeffs{0.01671123, -0.00004392, 0},
		Inclination:           Coeffs{-0.00001531, -0.01294668, 0},
		MeanLongitude:         Coeffs{100.46457166, 35999.37244981, 0},
		LongitudeOfPerihelion: Coeffs{102.93768193, 0.32327364, 0},
		AscendingNode:         Coeffs{0, 0, 0},
	},
	Mars: {
		SemiMajorAxis:         Coeffs{1.52371034, 0.00001847, 0},
		Eccentricity:          Coeffs{0.09339410, 0.00007882, 0},
		Inclination:           Coeffs{1.84969142, -0.00813131, 0},
		MeanLongitude:         Coeffs{-4.55343205, 19140.30268499, 0},
		LongitudeOfPerihelion: Coeffs{-23.94362959, 0.44441088, 0},
		AscendingNode:         Coeffs{49.55953891, -0.29257343, 0},
	},
	Jupiter: {
		SemiMajorAxis:         Coeffs{5.20288700, -0.00011607, 0},
		Eccentricity:          Coeffs{0.04838624, -0.00013253, 0},
		Inclination:           Coeffs{1.30439695, -0.00183714, 0},
		MeanLongitude:         Coeffs{34.39644051, 3034.74612775, 0},
		LongitudeOfPerihelion: Coeffs{14.72847983, 0.21252668, 0},
		AscendingNode:         Coeffs{100.47390909, 0.20469106, 0},
	},
	Saturn: {
		SemiMajorAxis:         Coeffs{9.53667594, -0.00125060, 0},
		Eccentricity:          Coeffs{0.05386179, -0.00050991, 0},
		Inclination:           Coeffs{2.48599187, 0.00193609, 0},
		MeanLongitude:         Coeffs{49.95424423, 1222.49362201, 0},
		LongitudeOfPerihelion: Coeffs{92.59887831, -0.41897216, 0},
		AscendingNode:         Coeffs{113.66242448, -0.28867794, 0},
	},
	Uranus: {
		SemiMajorAxis:         Coeffs{19.18916464, -0.00196176, 0},
		Eccentricity:          Coeffs{0.04725744, -0.00004397, 0},
		Inclination:           Coeffs{0.77263783, -0.00242939, 0},
		MeanLongitude:         Coeffs{313.23810451, 428.48202785, 0},
		LongitudeOfPerihelion: Coeffs{170.95427630, 0.40805281, 0},
		AscendingNode:         Coeffs{74.01692503, 0.04240589, 0},
	},
	Neptune: {
		SemiMajorAxis:         Coeffs{30.06992276, 0.00026291, 0},
		Eccentricity:          Coeffs{0.00859048, 0.00005105, 0},
		Inclination:           Coeffs{1.77004347, 0.00035372, 0},
		MeanLongitude:         Coeffs{-55.12002969, 218.45945325, 0},
		LongitudeOfPerihelion: Coeffs{44.96476227, -0.32241464, 0},
		AscendingNode:         Coeffs{131.78422574, -0.00508664, 0},
	},
	Pluto: {
		SemiMajorAxis:         Coeffs{39.48211675, -0.00031596, 0},
		Eccentricity:          Coeffs{0.24882730, 0.00005170, 0},
		Inclination:           Coeffs{17.14001206, 0.00004818, 0},
		MeanLongitude:         Coeffs{238.92903833, 145.20780515, 0},
		LongitudeOfPerihelion: Coeffs{224.06891629, -0.04062942, 0},
		AscendingNode:         Coeffs{110.30393684, -0.01183482, 0},
	},
}

// TableElements returns the element polynomials for a planet. The second
// return is false for planets without a table entry.
func TableElements(p Planet) (Elements, bool) {
	e, ok := elementTable[p]
	return e, ok
}
