package fractal

import (
	"math"

	"github.com/cfdwalrus/deepfrac/dcomplex"
)

// iterateNewton runs the plain double-precision Newton/Nova kernel: z <-
// z - relaxation*f(z)/f'(z), with an optional Nova additive c term, over
// the polynomial and precomputed roots p.Newton names. Terminates at the
// first root the iterate lands within tolerance of; tracks the closest
// root throughout so a diverging or non-converging pixel still reports
// a meaningful RootIndex (§4.G).
func iterateNewton(z0, c dcomplex.C, p FractalParams) IterationResult {
	poly := polynomialFor(p.Newton)
	deriv := poly.derivative()
	roots := p.Newton.Roots
	if len(roots) == 0 {
		roots = PrecomputeRoots(p.Newton)
	}
	tol := p.Newton.Tolerance
	if tol <= 0 {
		tol = 1e-6
	}
	tolSq := tol * tol
	relaxation := p.Newton.Relaxation
	if relaxation == (dcomplex.C{}) {
		relaxation = dcomplex.One
	}
	degree := float64(poly.degree())
	if degree < 1 {
		degree = 1
	}

	z := z0
	bailoutSq := p.BailoutSquared()
	trap := newTrapAccumulator(p.OrbitTrap)
	stripe := newStripeAccumulator(p.StripeDensity, p.StripeAverage)

	for n := 0; n < p.MaxIterations; n++ {
		trap.observe(z)
		stripe.observe(z)

		fpz := deriv.eval(z)
		if fpz.Mag2() < 1e-20 || z.Mag2() > bailoutSq {
			idx, _ := closestRoot(z, roots)
			return IterationResult{
				Iterations:        n,
				Escaped:           true,
				Smooth:            float64(n),
				FinalZ:            z,
				FinalMagnitude2:   z.Mag2(),
				RootIndex:         idx,
				OrbitTrapDistance: trap.result(),
				StripeAverage:     stripe.result(),
			}
		}

		step := relaxation.Mul(poly.eval(z).Div(fpz))
		next := z.Sub(step)
		if p.Newton.NovaMode {
			next = next.Add(c)
		}

		idx, dist := closestRoot(next, roots)
		if dist*dist < tolSq {
			smooth := float64(n+1) + math.Log(tol/dist)/math.Log(degree)
			return IterationResult{
				Iterations:        n + 1,
				Escaped:           false,
				Smooth:            smooth,
				FinalZ:            next,
				FinalMagnitude2:   next.Mag2(),
				RootIndex:         idx,
				OrbitTrapDistance: trap.result(),
				StripeAverage:     stripe.result(),
			}
		}
		z = next
	}

	idx, _ := closestRoot(z, roots)
	return IterationResult{
		Iterations:        p.MaxIterations,
		Escaped:           false,
		Smooth:            float64(p.MaxIterations),
		FinalZ:            z,
		FinalMagnitude2:   z.Mag2(),
		RootIndex:         idx,
		OrbitTrapDistance: trap.result(),
		StripeAverage:     stripe.result(),
	}
}

// closestRoot returns the index of and distance to the nearest entry in
// roots, or (-1, +Inf) if roots is empty.
func closestRoot(z dcomplex.C, roots []dcomplex.C) (int, float64) {
	best := -1
	bestDist := math.Inf(1)
	for i, r := range roots {
		d := z.Sub(r).Abs()
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best, bestDist
}
