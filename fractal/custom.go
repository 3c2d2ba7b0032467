package fractal

import "github.com/cfdwalrus/deepfrac/dcomplex"

// iterateCustom runs a user formula (package formula's compiled AST,
// behind the CustomFormula interface) as the inner step, per §4.G: "uses
// the AST evaluator as the inner step; estimates effective power from the
// formula text for smoothing." A formula evaluation failure aborts the
// sample per §7 ("the evaluator reports runtime errors ... by aborting
// that sample") rather than propagating the error to the caller.
func iterateCustom(z0, c dcomplex.C, p FractalParams, power float64) IterationResult {
	z := z0
	trap := newTrapAccumulator(p.OrbitTrap)
	stripe := newStripeAccumulator(p.StripeDensity, p.StripeAverage)
	bailoutSq := p.BailoutSquared()

	for n := 0; n < p.MaxIterations; n++ {
		trap.observe(z)
		stripe.observe(z)

		mag2 := z.Mag2()
		if mag2 > bailoutSq {
			smooth := float64(n)
			if p.SmoothColoring {
				smooth = smoothIterationCustom(n, mag2, p.Bailout, power)
			}
			return IterationResult{
				Iterations:        n,
				Escaped:           true,
				Smooth:            smooth,
				FinalZ:            z,
				FinalMagnitude2:   mag2,
				OrbitTrapDistance: trap.result(),
				StripeAverage:     stripe.result(),
				Angle:             z.Arg(),
			}
		}

		next, err := p.Formula.Eval(z, c, z0, n)
		if err != nil {
			return IterationResult{
				Iterations:        n,
				Escaped:           false,
				Smooth:            float64(n),
				FinalZ:            z,
				FinalMagnitude2:   mag2,
				OrbitTrapDistance: trap.result(),
				StripeAverage:     stripe.result(),
			}
		}
		z = next
	}
	return IterationResult{
		Iterations:        p.MaxIterations,
		Escaped:           false,
		Smooth:            float64(p.MaxIterations),
		FinalZ:            z,
		FinalMagnitude2:   z.Mag2(),
		OrbitTrapDistance: trap.result(),
		StripeAverage:     stripe.result(),
	}
}

func smoothIterationCustom(n int, mag2, bailout, power float64) float64 {
	return smoothIterationEscaped(n, mag2, bailout, power)
}
