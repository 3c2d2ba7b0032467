package fractal

import "github.com/cfdwalrus/deepfrac/dcomplex"

// iterateTricorn runs the plain double-precision Tricorn (Mandelbar)
// kernel: z0=0, z <- conj(z)^power+c, power defaulting to 2 and
// generalizing to the multicorn family for integer power >= 2.
func iterateTricorn(c dcomplex.C, p FractalParams) IterationResult {
	power := p.Tricorn.Power
	if power < 2 {
		power = 2
	}

	z := dcomplex.C{}
	deriv := dcomplex.C{}
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

		conj := z.Conj()
		if p.DistanceEstimate {
			// d/dz conj(z)^power+c is not holomorphic; track the
			// magnitude of the power*conj(z)^(power-1) factor, the
			// standard approximation public Tricorn renderers use for
			// the distance estimate.
			deriv = conj.Pow(power - 1).Scale(float64(power)).Mul(deriv).Add(dcomplex.One)
		}
		z = conj.Pow(power).Add(c)
	}
	return finishNotEscaped(p.MaxIterations, z, p, trap, stripe)
}
