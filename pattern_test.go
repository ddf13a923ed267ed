package lampshade

import (
	"math"
	"math/rand"
	"testing"
)

func TestPatternBound(t *testing.T) {
	for _, pt := range Patterns() {
		for fc := 0; fc <= 10; fc++ {
			for _, fd := range []float64{0.25, 2, 4} {
				bound := pt.Bound()*fd + 1e-12
				for u := 0.; u <= 1; u += 1. / 50 {
					for v := 0.; v < tau; v += tau / 90 {
						got := pt.Offset(u, v, fc, fd)
						if math.Abs(got) > bound {
							t.Fatalf("%s: |offset(%g,%g)|=%g exceeds %g (fc=%d fd=%g)", pt, u, v, got, bound, fc, fd)
						}
						if pt != Crosshatch && math.Abs(got) > 1.8*fd {
							t.Fatalf("%s: |offset| %g exceeds 1.8*fd", pt, got)
						}
					}
				}
			}
		}
	}
}

func TestPatternNoneIsZero(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		u, v := rng.Float64(), rng.Float64()*tau
		fc, fd := rng.Intn(20), rng.Float64()*10
		if got := PatternNone.Offset(u, v, fc, fd); got != 0 {
			t.Fatalf("PatternNone offset %g", got)
		}
		if got := Pattern(-1).Offset(u, v, fc, fd); got != 0 {
			t.Fatalf("invalid pattern offset %g", got)
		}
		if got := numPatterns.Offset(u, v, fc, fd); got != 0 {
			t.Fatalf("invalid pattern offset %g", got)
		}
	}
}

func TestPatternValues(t *testing.T) {
	const fd = 2
	for _, test := range []struct {
		pt   Pattern
		u, v float64
		fc   int
		want float64
	}{
		{Ridges, 0.3, math.Pi / 2, 1, 2},
		{Crosshatch, 0.5, math.Pi / 2, 1, 4},
		{Weave, 0.5, math.Pi / 2, 1, 0},
		{Michelin, 0, 1, 6, 1.4},
		{MichelinSpitz, 0.5, 0, 1, 1.6},
		{MichelinSpitz, 0.25, 0, 1, 0.8},
		{MichelinSpitz, 1, 0, 6, 0},
		{MichelinSpiral, 0.5, 0, 1, 1.8},
		{Shards, 0, 0, 3, 1},
		{Spirals, 0, math.Pi / 2, 1, 2},
		{Ripples, 0, 1.3, 6, 0},
		{TwistedPulse, 0, math.Pi / 2, 1, 2},
		{Moire, 0, 0, 4, 0},
		{Moire, 0, math.Pi / 2, 1, 1},
		{Moire, 0.125, math.Pi / 2, 1, 1 - math.Sqrt2/2},
		{DoubleSine, 0, math.Pi / 4, 2, 2},
		{DoubleSine, math.Pi / 6, math.Pi / 2, 1, 1.5},
		{DoubleSine, math.Pi / 2, math.Pi / 6, 1, -1.5},
	} {
		got := test.pt.Offset(test.u, test.v, test.fc, fd)
		if math.Abs(got-test.want) > 1e-12 {
			t.Errorf("%s.Offset(%g, %g, %d, %d) = %g, want %g", test.pt, test.u, test.v, test.fc, fd, got, test.want)
		}
	}
}

func TestOuterVertexReference(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		p := DefaultParams()
		p.TopDiameter = 16 + 84*rng.Float64()
		p.MiddleDiameter = 30 + 90*rng.Float64()
		p.BottomDiameter = 30 + 90*rng.Float64()
		p.Pattern = Pattern(rng.Intn(int(numPatterns)))
		p.Interpolation = Interpolation(rng.Intn(3))
		p.FeatureCount = rng.Intn(11)
		// Deep features can push the radius negative; the vertex must clamp at the axis.
		p.FeatureDepth = 60 * rng.Float64()
		u, v := rng.Float64(), rng.Float64()*tau

		want := math.Max(0, Profile(u, p)+p.Pattern.Offset(u, v, p.FeatureCount, p.FeatureDepth))
		got := OuterVertex(u, v, p)
		if r := math.Hypot(got.X, got.Z); math.Abs(r-want) > 1e-9 {
			t.Fatalf("radius %g, want %g", r, want)
		}
		if got.X != want*math.Cos(v) || got.Z != want*math.Sin(v) {
			t.Fatalf("vertex %v does not match reference radius %g at v=%g", got, want, v)
		}
		if wantY := p.CylinderHeight/2*(1-u) - p.CylinderHeight/2*u; got.Y != wantY {
			t.Fatalf("height %g, want %g", got.Y, wantY)
		}
	}
}

func TestParsePattern(t *testing.T) {
	for _, pt := range Patterns() {
		got, err := ParsePattern(pt.String())
		if err != nil || got != pt {
			t.Errorf("ParsePattern(%q) = %v, %v", pt.String(), got, err)
		}
	}
	if _, err := ParsePattern("paisley"); err == nil {
		t.Error("expected error for unknown pattern")
	}
	if len(Patterns()) != 13 {
		t.Errorf("got %d patterns, want 13", len(Patterns()))
	}
}
