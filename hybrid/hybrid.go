// Package hybrid composes the series approximation of package series with
// the perturbation iterator of package perturb into the single per-pixel
// routine component F describes: skip what the Taylor table can certify,
// then fall back to delta-recurrence iteration for the rest.
package hybrid

import (
	"github.com/cfdwalrus/deepfrac/dcomplex"
	"github.com/cfdwalrus/deepfrac/family"
	"github.com/cfdwalrus/deepfrac/fracerr"
	"github.com/cfdwalrus/deepfrac/perturb"
	"github.com/cfdwalrus/deepfrac/reforbit"
	"github.com/cfdwalrus/deepfrac/series"
)

// Result mirrors the hybrid-path fields of IterationResult (§3):
// iterations, escaped, the full z, its magnitude, and both
// perturbationUsed/glitched plus the skippedIterations §4.F calls for so a
// colorer can reconstruct the effective count.
type Result struct {
	Iterations        int
	Escaped           bool
	FinalZ            dcomplex.C
	FinalMag2         float64
	PerturbationUsed  bool
	Glitched          bool
	SkippedIterations int
}

// Iterate runs the four-step algorithm of §4.F for one pixel offset deltaC:
// ask the series table for a certified skip point, resolve an
// already-escaped candidate with an exact binary search, or resume the
// delta recurrence from the skip point to completion (escape, glitch, or
// maxIterations).
func Iterate(
	ref *reforbit.ReferenceOrbit,
	coeffs *series.Coefficients,
	fam family.ID,
	deltaC dcomplex.C,
	maxIterations int,
	errorTolerance, glitchTolerance float64,
	stats *series.Stats,
	extras perturb.Extras,
) (Result, error) {
	if ref == nil || ref.Length == 0 {
		return Result{}, fracerr.NotInitialized("hybrid: Iterate called with an uncomputed reference orbit")
	}
	if coeffs == nil {
		return Result{}, fracerr.NotInitialized("hybrid: Iterate called without series coefficients")
	}

	skipN, v := coeffs.FindSkip(ref, deltaC, errorTolerance, stats)

	if v.Escaped {
		escapeN := coeffs.FindEscapeIteration(ref, deltaC, 0, skipN)
		delta := coeffs.Evaluate(escapeN, deltaC)
		z := ref.Z[escapeN].Add(delta)
		return Result{
			Iterations:        escapeN,
			Escaped:           true,
			FinalZ:            z,
			FinalMag2:         z.Mag2(),
			PerturbationUsed:  true,
			SkippedIterations: skipN,
		}, nil
	}

	if skipN >= maxIterations {
		return Result{
			Iterations:        maxIterations,
			Escaped:           false,
			FinalZ:            v.Z,
			FinalMag2:         v.Z.Mag2(),
			PerturbationUsed:  true,
			SkippedIterations: skipN,
		}, nil
	}

	pr := perturb.Iterate(ref, fam, skipN, v.Delta, deltaC, maxIterations, glitchTolerance, extras)
	return Result{
		Iterations:        pr.Iterations,
		Escaped:           pr.Escaped,
		FinalZ:            pr.FinalZ,
		FinalMag2:         pr.FinalMag2,
		PerturbationUsed:  true,
		Glitched:          pr.Glitched,
		SkippedIterations: skipN,
	}, nil
}
