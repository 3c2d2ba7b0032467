// Package deepfrac is the top-level entry point §6 describes: the
// precision-selection helpers and the per-family registry a rendering
// driver consults before it ever touches a pixel. The numerics themselves
// live in the leaf packages (bigdecimal, dcomplex, reforbit, series,
// perturb, hybrid, fractal, formula); this package only wires them
// together the way §6 names them as public API.
package deepfrac

import "math"

// RecommendedPrecision implements §6's recommended_precision(zoom) =
// max(50, ceil(log10(zoom))+20): enough BigDecimal digits to keep a
// reference orbit stable past where float64's ~15-16 significant digits
// run out at the requested zoom depth.
func RecommendedPrecision(zoom float64) int {
	if zoom < 1 {
		zoom = 1
	}
	digits := int(math.Ceil(math.Log10(zoom))) + 20
	if digits < 50 {
		return 50
	}
	return digits
}

// ShouldUsePerturbation implements §6's should_use_perturbation(zoom) =
// zoom > 10^13, the threshold past which float64's mantissa can no longer
// resolve individual pixels of the view directly.
func ShouldUsePerturbation(zoom float64) bool {
	return zoom > 1e13
}
