package fractal

import (
	"github.com/cfdwalrus/deepfrac/bigdecimal"
	"github.com/cfdwalrus/deepfrac/family"
	"github.com/cfdwalrus/deepfrac/reforbit"
)

// iterateArbitrary runs the family's recurrence at arbitrary precision for
// one pixel (§4.G's "precisionMode = arbitrary: run the family's
// high-precision loop via A; no reference, no series"). Perturbation
// exists precisely so this path doesn't have to run per pixel at deep
// zoom; reforbit.Compute already implements exactly this recurrence (it
// is the same loop run once per view to build the shared reference), so
// the arbitrary-precision per-pixel path reuses it directly instead of
// duplicating the family recurrences a second time in BigDecimal.
func iterateArbitrary(c bigdecimal.BigComplex, id family.ID, p FractalParams, extras reforbit.Extras) (IterationResult, error) {
	orbit := reforbit.New()
	if err := orbit.Init(c, p.MaxIterations, p.Bailout, p.Precision); err != nil {
		return IterationResult{}, err
	}
	orbit.SetExtras(extras)
	if err := orbit.Compute(id); err != nil {
		return IterationResult{}, err
	}

	n := orbit.Length - 1
	finalZ := orbit.Z[n]
	result := IterationResult{
		Iterations:      orbit.Length,
		Escaped:         orbit.Escaped,
		FinalZ:          finalZ,
		FinalMagnitude2: orbit.ZMag2[n],
		Angle:           finalZ.Arg(),
	}
	if orbit.Escaped {
		result.Iterations = orbit.EscapeIteration
		if p.SmoothColoring {
			result.Smooth = smoothIterationEscaped(orbit.EscapeIteration, orbit.ZMag2[n], p.Bailout, float64(p.Power))
		} else {
			result.Smooth = float64(orbit.EscapeIteration)
		}
	} else {
		result.Smooth = float64(orbit.Length)
	}
	return result, nil
}
