package fractal

import "github.com/cfdwalrus/deepfrac/dcomplex"

// iteratePhoenix runs the plain double-precision Phoenix kernel, which
// carries one step of history (prev = z_{n-1}) per §4.G:
//
//   Ushiki mode:  z <- z^2 + Re(c) + Im(c)*prev           (p = Im c)
//   General mode: z <- z^2 + c + p*prev
//
// Julia mode fixes c (p.Phoenix.C) and starts z from the pixel instead of
// from zero.
func iteratePhoenix(z0, c dcomplex.C, p FractalParams) IterationResult {
	var z dcomplex.C
	var fixedC dcomplex.C
	if p.Phoenix.JuliaMode {
		z = z0
		fixedC = p.Phoenix.C
	} else {
		z = dcomplex.C{}
		fixedC = c
	}

	prev := dcomplex.C{}
	prevDeriv := dcomplex.C{}
	deriv := dcomplex.C{}
	if p.Phoenix.JuliaMode {
		deriv = dcomplex.One
	}

	pCoeff := p.Phoenix.P
	var ushikiAdd dcomplex.C
	if p.Phoenix.UshikiMode {
		ushikiAdd = dcomplex.New(fixedC.Re, 0)
		pCoeff = fixedC.Im
	}

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

		var next dcomplex.C
		if p.Phoenix.UshikiMode {
			next = z.Square().Add(ushikiAdd).Add(prev.Scale(pCoeff))
		} else {
			next = z.Square().Add(fixedC).Add(prev.Scale(pCoeff))
		}

		if p.DistanceEstimate {
			nextDeriv := z.Scale(2).Mul(deriv).Add(dcomplex.One).Add(prevDeriv.Scale(pCoeff))
			prevDeriv = deriv
			deriv = nextDeriv
		}

		prev = z
		z = next
	}
	return finishNotEscaped(p.MaxIterations, z, p, trap, stripe)
}
