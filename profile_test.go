package lampshade

import (
	"math"
	"testing"
)

func TestProfileAnchors(t *testing.T) {
	const tol = 1e-9
	lim := DefaultLimits()
	for _, mode := range []Interpolation{Bezier, Lagrange, Linear} {
		for top := lim.TopDiameter.Min; top <= lim.TopDiameter.Max; top += 9 {
			for mid := lim.MiddleDiameter.Min; mid <= lim.MiddleDiameter.Max; mid += 15 {
				for bot := lim.BottomDiameter.Min; bot <= lim.BottomDiameter.Max; bot += 15 {
					p := DefaultParams()
					p.TopDiameter, p.MiddleDiameter, p.BottomDiameter = top, mid, bot
					p.Interpolation = mode
					if got := Profile(0, p); math.Abs(got-top/2) > tol {
						t.Fatalf("%s: profile(0)=%g, want %g", mode, got, top/2)
					}
					if got := Profile(1, p); math.Abs(got-bot/2) > tol {
						t.Fatalf("%s: profile(1)=%g, want %g", mode, got, bot/2)
					}
				}
			}
		}
	}
}

func TestProfileMidpoint(t *testing.T) {
	p := DefaultParams()
	p.Interpolation = Lagrange
	if got := Profile(0.5, p); math.Abs(got-35) > 1e-9 {
		t.Errorf("lagrange profile(0.5)=%g, want 35", got)
	}
	p.Interpolation = Linear
	if got := Profile(0.5, p); got != 35 {
		t.Errorf("linear profile(0.5)=%g, want 35", got)
	}
	if got := Profile(0.25, p); got != 25 {
		t.Errorf("linear profile(0.25)=%g, want 25", got)
	}
	p.Interpolation = Bezier
	// 0.25*15 + 0.5*35 + 0.25*30
	if got := Profile(0.5, p); math.Abs(got-28.75) > 1e-12 {
		t.Errorf("bezier profile(0.5)=%g, want 28.75", got)
	}
}

func TestProfileUnknownModeIsBezier(t *testing.T) {
	p := DefaultParams()
	q := p
	q.Interpolation = 7
	for u := 0.; u <= 1; u += 0.1 {
		if Profile(u, p) != Profile(u, q) {
			t.Fatalf("unknown interpolation differs from bezier at u=%g", u)
		}
	}
}

func TestLagrangeOvershoot(t *testing.T) {
	p := DefaultParams()
	p.TopDiameter, p.MiddleDiameter, p.BottomDiameter = 100, 30, 100
	p.Interpolation = Lagrange
	// Symmetric inputs put the vertex of the parabola at the middle radius.
	min := math.Inf(1)
	for u := 0.; u <= 1; u += 1. / 64 {
		min = math.Min(min, Profile(u, p))
	}
	if math.Abs(min-15) > 1e-9 {
		t.Errorf("minimum radius %g, want 15", min)
	}
	p.TopDiameter, p.MiddleDiameter, p.BottomDiameter = 30, 120, 60
	max := math.Inf(-1)
	for u := 0.; u <= 1; u += 1. / 64 {
		max = math.Max(max, Profile(u, p))
	}
	if max <= 60 {
		t.Errorf("expected lagrange overshoot past middle radius 60, max %g", max)
	}
}

func TestParseInterpolation(t *testing.T) {
	for _, mode := range []Interpolation{Bezier, Lagrange, Linear} {
		got, err := ParseInterpolation(mode.String())
		if err != nil || got != mode {
			t.Errorf("ParseInterpolation(%q) = %v, %v", mode.String(), got, err)
		}
	}
	if _, err := ParseInterpolation("cubic"); err == nil {
		t.Error("expected error for unknown interpolation")
	}
}
