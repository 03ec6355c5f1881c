// Package ephemeris computes geocentric ecliptic positions and motion
// for the Sun, Moon and planets. Positions come from a Provider; the
// built-in provider evaluates the mean-element orbital model, and an
// alternative provider reads a JPL development ephemeris file.
package ephemeris

import (
	"fmt"
	"strings"
)

// Body identifies a chart body.
type Body int

const (
	Sun Body = iota
	Moon
	Mercury
	Venus
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
	Pluto
)

var bodyNames = [...]string{
	"Sun", "Moon", "Mercury", "Venus", "Mars",
	"Jupiter", "Saturn", "Uranus", "Neptune", "Pluto",
}

func (b Body) String() string {
	if b < Sun || b > Pluto {
		return fmt.Sprintf("Body(%d)", int(b))
	}
	return bodyNames[b]
}

// AllBodies returns every supported body, Sun through Pluto.
func AllBodies() []Body {
	out := make([]Body, 0, len(bodyNames))
	for b := Sun; b <= Pluto; b++ {
		out = append(out, b)
	}
	return out
}

// ParseBody resolves a case-insensitive body name.
func ParseBody(name string) (Body, error) {
	for b := Sun; b <= Pluto; b++ {
		if strings.EqualFold(name, bodyNames[b]) {
			return b, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBody, name)
}
