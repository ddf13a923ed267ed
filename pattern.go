package lampshade

import (
	"fmt"
	"math"
	"strings"
)

// Pattern is a periodic radial displacement applied over the shell.
// PatternNone disables displacement.
type Pattern int

const (
	PatternNone Pattern = iota
	Ripples
	Spirals
	Ridges
	Crosshatch
	DoubleSine
	TwistedPulse
	Weave
	Moire
	Michelin
	MichelinSpitz
	MichelinSpiral
	Shards

	numPatterns
)

var patternNames = [numPatterns]string{
	PatternNone:    "None",
	Ripples:        "Ripples",
	Spirals:        "Spirals",
	Ridges:         "Ridges",
	Crosshatch:     "Crosshatch",
	DoubleSine:     "Double sine",
	TwistedPulse:   "Twisted pulse",
	Weave:          "Weave",
	Moire:          "Moire",
	Michelin:       "Michelin",
	MichelinSpitz:  "Michelin (spitz)",
	MichelinSpiral: "Michelin (Spirale)",
	Shards:         "Shards",
}

// Patterns returns every pattern, PatternNone first.
func Patterns() []Pattern {
	all := make([]Pattern, numPatterns)
	for i := range all {
		all[i] = Pattern(i)
	}
	return all
}

// Valid reports whether pt is PatternNone or one of the twelve displacement patterns.
func (pt Pattern) Valid() bool { return pt >= PatternNone && pt < numPatterns }

func (pt Pattern) String() string {
	if !pt.Valid() {
		return fmt.Sprintf("Pattern(%d)", int(pt))
	}
	return patternNames[pt]
}

// ParsePattern parses a pattern by display name, case insensitive.
func ParsePattern(s string) (Pattern, error) {
	for i, name := range patternNames {
		if strings.EqualFold(s, name) {
			return Pattern(i), nil
		}
	}
	return PatternNone, fmt.Errorf("unknown pattern %q", s)
}

// Offset returns the signed radial displacement at height parameter u in [0,1]
// and azimuth v in [0,2π). It is zero for PatternNone and unknown patterns.
func (pt Pattern) Offset(u, v float64, featureCount int, featureDepth float64) float64 {
	fd := featureDepth
	fc := float64(featureCount)
	switch pt {
	case Ripples:
		return fd * math.Sin(fc*math.Pi*u) * math.Cos(fc*v)
	case Spirals:
		return fd * math.Sin(fc*(v+math.Pi*u))
	case Ridges:
		return fd * math.Abs(math.Sin(fc*v))
	case Crosshatch:
		return fd * (math.Abs(math.Sin(fc*math.Pi*u)) + math.Abs(math.Sin(fc*v)))
	case DoubleSine:
		return fd * math.Sin(fc*(v+u)) * math.Sin(fc*(v-u))
	case TwistedPulse:
		return fd * math.Sin(fc*(v+0.5*math.Sin(2*math.Pi*u)))
	case Weave:
		return fd * (math.Abs(math.Sin(fc*v)) - math.Abs(math.Sin(fc*math.Pi*u)))
	case Moire:
		return fd * 0.5 * (math.Sin(fc*v) + math.Sin((fc+1)*v+2*math.Pi*u))
	case Michelin:
		return fd * 0.7 * math.Cos(fc*2*math.Pi*u)
	case MichelinSpitz:
		// Triangle wave in u.
		phase := fc * u
		return fd * 0.8 * math.Abs(2*(phase-math.Floor(phase+0.5)))
	case MichelinSpiral:
		return fd * 0.9 * math.Abs(math.Sin(fc*math.Pi*u+v))
	case Shards:
		d := math.Cos(fc*2*math.Pi*u+2*v) + 0.7*math.Sin(fc*v+u*2.7)
		return fd * 0.5 * d
	}
	return 0
}

// Bound returns k such that |Offset(u, v, fc, fd)| <= k*|fd| for all inputs.
func (pt Pattern) Bound() float64 {
	switch pt {
	case Ripples, Spirals, Ridges, DoubleSine, TwistedPulse, Weave, Moire:
		return 1
	case Crosshatch:
		return 2
	case Michelin:
		return 0.7
	case MichelinSpitz:
		return 0.8
	case MichelinSpiral:
		return 0.9
	case Shards:
		return 0.5 * (1 + 0.7)
	}
	return 0
}

// displacement is the pattern offset selected by p at (u, v).
func displacement(u, v float64, p Params) float64 {
	return p.Pattern.Offset(u, v, p.FeatureCount, p.FeatureDepth)
}
