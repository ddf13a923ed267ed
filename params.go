package lampshade

import (
	"errors"
	"fmt"
	"math"
)

// Params holds every shape input of a lampshade plus the values derived from them.
// Lengths are in millimetres and angles in degrees.
//
// TransitionWidth, TransitionHeight and the FeatureDepthMax cap are derived fields.
// Use Derive to obtain a consistent copy before evaluating geometry; Build does so itself.
type Params struct {
	// Mount collar geometry. Fixed for a given fitting.
	MountOuterDiameter float64 `yaml:"mount_outer_diameter" json:"mountOuterDiameter"`
	MountHeight        float64 `yaml:"mount_height" json:"mountHeight"`

	TopDiameter    float64 `yaml:"top_diameter" json:"topDiameter"`
	MiddleDiameter float64 `yaml:"middle_diameter" json:"middleDiameter"`
	BottomDiameter float64 `yaml:"bottom_diameter" json:"bottomDiameter"`
	CylinderHeight float64 `yaml:"cylinder_height" json:"cylinderHeight"`
	// OverhangAngle is the steepest permitted angle of the transition skirt.
	OverhangAngle float64 `yaml:"overhang_angle" json:"overhangAngle"`

	FeatureCount int     `yaml:"feature_count" json:"featureCount"`
	FeatureDepth float64 `yaml:"feature_depth" json:"featureDepth"`
	// FeatureDepthMin and FeatureDepthMax bound FeatureDepth. Derive lowers
	// FeatureDepthMax so the pattern cannot carve the shell inside the collar.
	FeatureDepthMin float64 `yaml:"feature_depth_min" json:"featureDepthMin"`
	FeatureDepthMax float64 `yaml:"feature_depth_max" json:"featureDepthMax"`

	// Detail is the number of grid subdivisions in both height and angle.
	Detail        int           `yaml:"detail" json:"detail"`
	Pattern       Pattern       `yaml:"pattern" json:"pattern"`
	Interpolation Interpolation `yaml:"interpolation" json:"interpolation"`

	TransitionWidth  float64 `yaml:"-" json:"transitionWidth"`
	TransitionHeight float64 `yaml:"-" json:"transitionHeight"`
}

// DefaultParams returns the stock lampshade design.
func DefaultParams() Params {
	p := Params{
		MountOuterDiameter: 13.0,
		MountHeight:        5.5,
		TopDiameter:        30,
		MiddleDiameter:     70,
		BottomDiameter:     60,
		CylinderHeight:     80,
		OverhangAngle:      30,
		FeatureCount:       6,
		FeatureDepth:       2.0,
		FeatureDepthMin:    0,
		FeatureDepthMax:    4.0,
		Detail:             120,
		Pattern:            Ripples,
		Interpolation:      Bezier,
	}
	return p.Derive()
}

// WithTransition returns a copy of p with the transition skirt dimensions recomputed.
// The skirt rises exactly as much as needed to keep its slope at OverhangAngle.
func (p Params) WithTransition() Params {
	p.TransitionWidth = (p.TopDiameter - p.MountOuterDiameter) / 2
	p.TransitionHeight = math.Max(0, p.TransitionWidth) * math.Tan(DtoR(p.OverhangAngle))
	return p
}

// WithFeatureDepthLimit returns a copy of p with FeatureDepthMax lowered so that the
// thinnest section of the shell stays outside the mount collar, and FeatureDepth clamped
// into the resulting range. It reads TransitionWidth, so WithTransition must run first.
func (p Params) WithFeatureDepthLimit() Params {
	p.FeatureDepthMax = math.Min(p.FeatureDepthMax, math.Max(0, p.MinimalMainRadius()-p.MountOuterDiameter/2))
	p.FeatureDepth = Clamp(p.FeatureDepth, p.FeatureDepthMin, math.Max(p.FeatureDepthMin, p.FeatureDepthMax))
	return p
}

// Derive returns a copy of p with all derived fields refreshed in dependency order.
func (p Params) Derive() Params {
	return p.WithTransition().WithFeatureDepthLimit()
}

// MinimalMainRadius is the smallest control radius of the shell body.
func (p Params) MinimalMainRadius() float64 {
	return math.Min(p.TopDiameter+p.TransitionWidth, math.Min(p.BottomDiameter, p.MiddleDiameter)) / 2
}

// MountTop is the height of the mount collar's top face above the origin.
func (p Params) MountTop() float64 {
	return p.CylinderHeight/2 + p.TransitionHeight + p.MountHeight
}

// Range is an inclusive interval of accepted values for an adjustable input.
type Range struct {
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`
}

// Contains reports whether Min <= x <= Max.
func (r Range) Contains(x float64) bool { return x >= r.Min && x <= r.Max }

// Limits are the ranges a controller should keep adjustable inputs within.
// The geometry functions tolerate values outside them.
type Limits struct {
	TopDiameter    Range `yaml:"top_diameter"`
	MiddleDiameter Range `yaml:"middle_diameter"`
	BottomDiameter Range `yaml:"bottom_diameter"`
	CylinderHeight Range `yaml:"cylinder_height"`
	OverhangAngle  Range `yaml:"overhang_angle"`
	FeatureCount   Range `yaml:"feature_count"`
	FeatureDepth   Range `yaml:"feature_depth"`
	Detail         Range `yaml:"detail"`
}

// DefaultLimits returns the slider ranges of the stock control panel.
func DefaultLimits() Limits {
	return Limits{
		TopDiameter:    Range{16, 100},
		MiddleDiameter: Range{30, 120},
		BottomDiameter: Range{30, 120},
		CylinderHeight: Range{50, 120},
		OverhangAngle:  Range{30, 80},
		FeatureCount:   Range{1, 10},
		FeatureDepth:   Range{0, 4},
		Detail:         Range{25, 300},
	}
}

// ErrOutOfRange is wrapped by errors returned from Limits.Validate.
var ErrOutOfRange = errors.New("parameter out of range")

// Validate checks the adjustable inputs of p against the limits and reports every
// offending field. Feature depth is checked against the derived cap as well.
func (lim Limits) Validate(p Params) error {
	var errs []error
	check := func(name string, x float64, r Range) {
		if math.IsNaN(x) || !r.Contains(x) {
			errs = append(errs, fmt.Errorf("%w: %s=%g not in [%g, %g]", ErrOutOfRange, name, x, r.Min, r.Max))
		}
	}
	check("top diameter", p.TopDiameter, lim.TopDiameter)
	check("middle diameter", p.MiddleDiameter, lim.MiddleDiameter)
	check("bottom diameter", p.BottomDiameter, lim.BottomDiameter)
	check("cylinder height", p.CylinderHeight, lim.CylinderHeight)
	check("overhang angle", p.OverhangAngle, lim.OverhangAngle)
	check("feature count", float64(p.FeatureCount), lim.FeatureCount)
	check("detail", float64(p.Detail), lim.Detail)
	d := p.Derive()
	depth := lim.FeatureDepth
	depth.Max = math.Min(depth.Max, math.Max(d.FeatureDepthMin, d.FeatureDepthMax))
	check("feature depth", p.FeatureDepth, depth)
	if !p.Pattern.Valid() {
		errs = append(errs, fmt.Errorf("%w: pattern=%d", ErrOutOfRange, int(p.Pattern)))
	}
	if !p.Interpolation.Valid() {
		errs = append(errs, fmt.Errorf("%w: interpolation=%d", ErrOutOfRange, int(p.Interpolation)))
	}
	return errors.Join(errs...)
}
