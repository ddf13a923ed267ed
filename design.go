package lampshade

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrDesignFormat is wrapped by every error ParseDesign returns.
var ErrDesignFormat = errors.New("invalid design format")

// minDesignFields is the number of comma separated fields a design line must carry.
// A tenth field holding the interpolation mode is optional.
const minDesignFields = 9

// DesignString encodes the adjustable inputs of p as a single line:
//
//	top,middle,bottom,cylinderHeight,featureCount,featureDepth,detail,overhangAngle,pattern,interpolation
func (p Params) DesignString() string {
	f := func(x float64) string { return strconv.FormatFloat(x, 'g', -1, 64) }
	return strings.Join([]string{
		f(p.TopDiameter),
		f(p.MiddleDiameter),
		f(p.BottomDiameter),
		f(p.CylinderHeight),
		strconv.Itoa(p.FeatureCount),
		f(p.FeatureDepth),
		strconv.Itoa(p.Detail),
		f(p.OverhangAngle),
		strconv.Itoa(int(p.Pattern)),
		strconv.Itoa(int(p.Interpolation)),
	}, ",")
}

// ParseDesign decodes a line written by DesignString on top of base and returns the
// derived result. Fields base does not persist, such as the mount geometry, are kept.
// NaN and infinite values are rejected. On error nothing is applied; base is a
// value and is never modified.
func ParseDesign(line string, base Params) (Params, error) {
	toks := strings.Split(strings.TrimSpace(line), ",")
	if len(toks) < minDesignFields {
		return base, fmt.Errorf("%w: got %d fields, need at least %d", ErrDesignFormat, len(toks), minDesignFields)
	}
	var (
		p    = base
		errs []error
	)
	float := func(i int, name string, dst *float64) {
		x, err := strconv.ParseFloat(strings.TrimSpace(toks[i]), 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("field %d (%s): %w", i+1, name, err))
			return
		}
		if math.IsNaN(x) || math.IsInf(x, 0) {
			errs = append(errs, fmt.Errorf("field %d (%s): %g is not a finite number", i+1, name, x))
			return
		}
		*dst = x
	}
	integer := func(i int, name string, dst *int) {
		x, err := strconv.Atoi(strings.TrimSpace(toks[i]))
		if err != nil {
			errs = append(errs, fmt.Errorf("field %d (%s): %w", i+1, name, err))
			return
		}
		*dst = x
	}
	var pattern, interp int
	float(0, "top diameter", &p.TopDiameter)
	float(1, "middle diameter", &p.MiddleDiameter)
	float(2, "bottom diameter", &p.BottomDiameter)
	float(3, "cylinder height", &p.CylinderHeight)
	integer(4, "feature count", &p.FeatureCount)
	float(5, "feature depth", &p.FeatureDepth)
	integer(6, "detail", &p.Detail)
	float(7, "overhang angle", &p.OverhangAngle)
	integer(8, "pattern", &pattern)
	p.Pattern = Pattern(pattern)
	if len(toks) > minDesignFields {
		interp = int(base.Interpolation)
		integer(9, "interpolation", &interp)
		p.Interpolation = Interpolation(interp)
	}
	if len(errs) > 0 {
		return base, fmt.Errorf("%w: %w", ErrDesignFormat, errors.Join(errs...))
	}
	return p.Derive(), nil
}

// Name returns a file name stem identifying the design, for example
// "1_30_70_60_80_6_2.00_120".
func (p Params) Name() string {
	f := func(x float64) string { return strconv.FormatFloat(x, 'g', -1, 64) }
	return fmt.Sprintf("%d_%s_%s_%s_%s_%d_%.02f_%d",
		int(p.Pattern),
		f(p.TopDiameter),
		f(p.MiddleDiameter),
		f(p.BottomDiameter),
		f(p.CylinderHeight),
		p.FeatureCount,
		p.FeatureDepth,
		p.Detail,
	)
}
