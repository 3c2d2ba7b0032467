package fractal

import (
	"github.com/cfdwalrus/deepfrac/bigdecimal"
	"github.com/cfdwalrus/deepfrac/dcomplex"
)

// bigPolynomial mirrors polynomial over bigdecimal.BigComplex, for the
// arbitrary-precision Newton path. Coefficients are promoted from the
// double-precision polynomialFor table via FromFloat64 components; every
// enumerated Newton polynomial (§4.G) has small integer coefficients, so
// this promotion is exact at any working precision.
type bigPolynomial struct {
	coeffs []bigdecimal.BigComplex
}

func promotePolynomial(p polynomial, precision int) bigPolynomial {
	out := make([]bigdecimal.BigComplex, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = bigdecimal.NewBigComplex(bigdecimal.FromFloat64(c.Re, precision), bigdecimal.FromFloat64(c.Im, precision))
	}
	return bigPolynomial{coeffs: out}
}

func (p bigPolynomial) degree() int { return len(p.coeffs) - 1 }

func (p bigPolynomial) eval(z bigdecimal.BigComplex) bigdecimal.BigComplex {
	acc := p.coeffs[0]
	for i := 1; i < len(p.coeffs); i++ {
		acc = acc.Mul(z).Add(p.coeffs[i])
	}
	return acc
}

func (p bigPolynomial) derivative(precision int) bigPolynomial {
	d := p.degree()
	if d == 0 {
		return bigPolynomial{coeffs: []bigdecimal.BigComplex{bigdecimal.ZeroComplex(precision)}}
	}
	out := make([]bigdecimal.BigComplex, d)
	for i := 0; i < d; i++ {
		power := bigdecimal.FromInt64(int64(d-i), precision)
		out[i] = p.coeffs[i].Scale(power)
	}
	return bigPolynomial{coeffs: out}
}

// iterateNewtonArbitrary runs the Newton/Nova recurrence at arbitrary
// precision, promoting the double-precision roots PrecomputeRoots found
// (setup-time work, shared across every pixel of a view, the same
// sharing discipline reforbit gives the Mandelbrot-family reference) into
// BigComplex for the per-pixel convergence test.
func iterateNewtonArbitrary(z0, c bigdecimal.BigComplex, p FractalParams) IterationResult {
	precision := p.Precision
	if precision < 1 {
		precision = 30
	}
	poly := promotePolynomial(polynomialFor(p.Newton), precision)
	deriv := poly.derivative(precision)

	roots := p.Newton.Roots
	if len(roots) == 0 {
		roots = PrecomputeRoots(p.Newton)
	}
	bigRoots := make([]bigdecimal.BigComplex, len(roots))
	for i, r := range roots {
		bigRoots[i] = bigdecimal.NewBigComplex(bigdecimal.FromFloat64(r.Re, precision), bigdecimal.FromFloat64(r.Im, precision))
	}

	tol := p.Newton.Tolerance
	if tol <= 0 {
		tol = 1e-6
	}
	tolSq := bigdecimal.FromFloat64(tol*tol, precision)
	bailoutSq := bigdecimal.FromFloat64(p.BailoutSquared(), precision)
	relaxation := p.Newton.Relaxation
	if relaxation == (dcomplex.C{}) {
		relaxation = dcomplex.One
	}
	relaxationBig := bigdecimal.NewBigComplex(bigdecimal.FromFloat64(relaxation.Re, precision), bigdecimal.FromFloat64(relaxation.Im, precision))

	z := z0
	for n := 0; n < p.MaxIterations; n++ {
		fpz := deriv.eval(z)
		if fpz.MagnitudeSquared().Compare(bigdecimal.FromFloat64(1e-20, precision)) < 0 || z.MagnitudeSquared().Compare(bailoutSq) > 0 {
			idx := closestBigRoot(z, bigRoots)
			re, im := z.ToFloat64()
			return IterationResult{Iterations: n, Escaped: true, Smooth: float64(n), FinalZ: dcomplex.New(re, im), RootIndex: idx}
		}

		quotient, err := poly.eval(z).Div(fpz)
		if err != nil {
			idx := closestBigRoot(z, bigRoots)
			re, im := z.ToFloat64()
			return IterationResult{Iterations: n, Escaped: true, Smooth: float64(n), FinalZ: dcomplex.New(re, im), RootIndex: idx}
		}
		step := relaxationBig.Mul(quotient)
		next := z.Sub(step)
		if p.Newton.NovaMode {
			next = next.Add(c)
		}

		idx := closestBigRoot(next, bigRoots)
		if idx >= 0 && next.Sub(bigRoots[idx]).MagnitudeSquared().Compare(tolSq) < 0 {
			re, im := next.ToFloat64()
			return IterationResult{Iterations: n + 1, Escaped: false, Smooth: float64(n + 1), FinalZ: dcomplex.New(re, im), RootIndex: idx}
		}
		z = next
	}

	idx := closestBigRoot(z, bigRoots)
	re, im := z.ToFloat64()
	return IterationResult{Iterations: p.MaxIterations, Escaped: false, Smooth: float64(p.MaxIterations), FinalZ: dcomplex.New(re, im), RootIndex: idx}
}

func closestBigRoot(z bigdecimal.BigComplex, roots []bigdecimal.BigComplex) int {
	best := -1
	var bestDist bigdecimal.BigDecimal
	for i, r := range roots {
		d := z.Sub(r).MagnitudeSquared()
		if best == -1 || d.Compare(bestDist) < 0 {
			bestDist = d
			best = i
		}
	}
	return best
}
