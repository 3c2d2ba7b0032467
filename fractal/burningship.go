package fractal

import (
	"math"

	"github.com/cfdwalrus/deepfrac/dcomplex"
	"github.com/cfdwalrus/deepfrac/family"
)

// burningShipStep applies the sign-masking table §4.G specifies for
// variant to (re, im) against c, returning the next iterate.
func burningShipStep(variant family.BurningShipVariant, re, im float64, c dcomplex.C) dcomplex.C {
	absRe, absIm := math.Abs(re), math.Abs(im)
	switch variant {
	case family.Standard:
		return dcomplex.New(absRe*absRe-absIm*absIm+c.Re, 2*absRe*absIm+c.Im)
	case family.PartialRe:
		return dcomplex.New(absRe*absRe-im*im+c.Re, 2*absRe*im+c.Im)
	case family.PartialIm:
		return dcomplex.New(re*re-absIm*absIm+c.Re, 2*re*absIm+c.Im)
	case family.Buffalo:
		return dcomplex.New(absRe*absRe-absIm*absIm-c.Re, -2*absRe*absIm+c.Im)
	case family.Celtic:
		return dcomplex.New(math.Abs(re*re-im*im)+c.Re, 2*re*im+c.Im)
	default:
		return dcomplex.New(absRe*absRe-absIm*absIm+c.Re, 2*absRe*absIm+c.Im)
	}
}

// iterateBurningShip runs the plain double-precision Burning Ship kernel:
// z0=0, z <- (|Re z|+i|Im z|)^2+c under the selected sign-masking variant.
// Its derivative recurrence mirrors the standard escape-time form, tracked
// purely on the unmasked z (an approximation shared with every public
// Burning Ship renderer, since |.| is not differentiable at 0).
func iterateBurningShip(c dcomplex.C, p FractalParams) IterationResult {
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

		if p.DistanceEstimate {
			deriv = z.Scale(2).Mul(deriv).Add(dcomplex.One)
		}
		z = burningShipStep(p.BurningShip.Variant, z.Re, z.Im, c)
	}
	return finishNotEscaped(p.MaxIterations, z, p, trap, stripe)
}
