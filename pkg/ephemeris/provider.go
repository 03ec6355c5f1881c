package ephemeris

// Position is a geocentric ecliptic position of date.
type Position struct {
	LonDeg   float64
	LatDeg   float64
	RadiusAU float64
}

// Provider supplies geocentric positions for a Julian date. Providers
// must be safe for concurrent use.
type Provider interface {
	// Name identifies the provider in logs and output.
	Name() string

	// Position returns the geocentric ecliptic position of a body at
	// the given Julian date.
	Position(jd float64, b Body) (Position, error)
}
