package fractal

import "github.com/cfdwalrus/deepfrac/dcomplex"

// quadraticLoop runs the shared z <- z^2+c recurrence Mandelbrot and Julia
// both use (gofrac's Quadratic.q is exactly this step, generalized here
// with the orbit-trap/stripe/derivative accumulation §4.G adds). z0 is the
// starting iterate, derivSeed the initial derivative (0 for Mandelbrot's
// z0=0 start, 1 for Julia's pixel-seeded start per §4.G: "derivative seed
// is 1+0i in z, not c").
func quadraticLoop(z0, c dcomplex.C, derivSeed dcomplex.C, p FractalParams) IterationResult {
	z := z0
	deriv := derivSeed
	trap := newTrapAccumulator(p.OrbitTrap)
	stripe := newStripeAccumulator(p.StripeDensity, p.StripeAverage)
	bailoutSq := p.BailoutSquared()

	for n := 0; n < p.MaxIterations; n++ {
		trap.observe(z)
		stripe.observe(z)

		mag2 := z.Mag2()
		if mag2 > bailoutSq {
			return finishEscaped(n, z, mag2, deriv, p, trap, stripe)
		}

		if p.DistanceEstimate {
			deriv = z.Scale(2).Mul(deriv).Add(dcomplex.One)
		}
		z = z.Square().Add(c)
	}
	return finishNotEscaped(p.MaxIterations, z, p, trap, stripe)
}

func finishEscaped(n int, z dcomplex.C, mag2 float64, deriv dcomplex.C, p FractalParams, trap trapAccumulator, stripe stripeAccumulator) IterationResult {
	r := IterationResult{
		Iterations:        n,
		Escaped:           true,
		FinalZ:            z,
		FinalMagnitude2:   mag2,
		OrbitTrapDistance: trap.result(),
		StripeAverage:     stripe.result(),
		Angle:             z.Arg(),
	}
	if p.SmoothColoring {
		r.Smooth = smoothIterationEscaped(n, mag2, p.Bailout, float64(p.Power))
	} else {
		r.Smooth = float64(n)
	}
	if p.DistanceEstimate {
		r.DerivativeMagnitude = deriv.Abs()
		r.DistanceEstimate = distanceEstimate(z, deriv)
	}
	return r
}

func finishNotEscaped(n int, z dcomplex.C, p FractalParams, trap trapAccumulator, stripe stripeAccumulator) IterationResult {
	return IterationResult{
		Iterations:        n,
		Escaped:           false,
		Smooth:            float64(n),
		FinalZ:            z,
		FinalMagnitude2:   z.Mag2(),
		OrbitTrapDistance: trap.result(),
		StripeAverage:     stripe.result(),
		Angle:             z.Arg(),
	}
}
