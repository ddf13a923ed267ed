package lampshade

import (
	"math"
	"math/rand"
)

// Randomize returns a copy of p with the body diameters, height, feature count,
// pattern and interpolation drawn from rng within lim. Detail and overhang angle
// are kept. The feature depth is drawn last, inside the cap the new shape allows.
// The same seed and inputs always give the same design.
func Randomize(rng *rand.Rand, p Params, lim Limits) Params {
	p.TopDiameter = randInt(rng, lim.TopDiameter)
	p.MiddleDiameter = randInt(rng, lim.MiddleDiameter)
	p.BottomDiameter = randInt(rng, lim.BottomDiameter)
	p.CylinderHeight = randInt(rng, lim.CylinderHeight)
	p.FeatureCount = int(randInt(rng, lim.FeatureCount))
	p.Pattern = Pattern(rng.Intn(int(numPatterns)))
	p.Interpolation = Interpolation(rng.Intn(int(Linear) + 1))

	p = p.Derive()
	hi := math.Max(p.FeatureDepthMin, p.FeatureDepthMax)
	p.FeatureDepth = p.FeatureDepthMin + rng.Float64()*(hi-p.FeatureDepthMin)
	return p
}

// randInt draws a whole number uniformly from the inclusive range r.
func randInt(rng *rand.Rand, r Range) float64 {
	lo, hi := int(math.Ceil(r.Min)), int(math.Floor(r.Max))
	if hi <= lo {
		return float64(lo)
	}
	return float64(lo + rng.Intn(hi-lo+1))
}
