package lampshade

import (
	"fmt"
	"strings"
)

// Interpolation selects how the shell radius is blended between the
// top, middle and bottom control diameters.
type Interpolation int

const (
	// Bezier is a quadratic Bézier curve. The middle diameter pulls the
	// curve but is not passed through.
	Bezier Interpolation = iota
	// Lagrange is the quadratic through top, middle and bottom at u = 0, 0.5, 1.
	// It may overshoot the control radii near the rims.
	Lagrange
	// Linear joins top to middle and middle to bottom with straight segments.
	Linear
)

var interpolationNames = [...]string{
	Bezier:   "bezier",
	Lagrange: "lagrange",
	Linear:   "linear",
}

// Valid reports whether i is a known interpolation mode.
func (i Interpolation) Valid() bool { return i >= Bezier && i <= Linear }

func (i Interpolation) String() string {
	if !i.Valid() {
		return fmt.Sprintf("Interpolation(%d)", int(i))
	}
	return interpolationNames[i]
}

// ParseInterpolation parses an interpolation mode by name, case insensitive.
func ParseInterpolation(s string) (Interpolation, error) {
	for i, name := range interpolationNames {
		if strings.EqualFold(s, name) {
			return Interpolation(i), nil
		}
	}
	return Bezier, fmt.Errorf("unknown interpolation %q", s)
}

// Profile returns the undisplaced shell radius at height parameter u,
// where u=0 is the top rim and u=1 the bottom rim. The result is not clamped.
// Unknown interpolation modes evaluate as Bezier.
func Profile(u float64, p Params) float64 {
	top, mid, bot := p.TopDiameter/2, p.MiddleDiameter/2, p.BottomDiameter/2
	switch p.Interpolation {
	case Lagrange:
		return 2*(u-1)*(u-0.5)*top - 4*(u-1)*u*mid + 2*u*(u-0.5)*bot
	case Linear:
		if u <= 0.5 {
			return Mix(top, mid, u/0.5)
		}
		return Mix(mid, bot, (u-0.5)/0.5)
	default:
		return (1-u)*(1-u)*top + 2*(1-u)*u*mid + u*u*bot
	}
}
