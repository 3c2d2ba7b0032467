package fractal

import "github.com/cfdwalrus/deepfrac/dcomplex"

// polynomial is a monic-or-not polynomial in coefficient order
// [z^d, z^(d-1), ..., z^0], the representation Horner evaluation and
// Durand-Kerner root-finding both want.
type polynomial struct {
	coeffs []dcomplex.C
}

func (poly polynomial) degree() int { return len(poly.coeffs) - 1 }

// eval returns f(z) via Horner's method.
func (poly polynomial) eval(z dcomplex.C) dcomplex.C {
	acc := poly.coeffs[0]
	for i := 1; i < len(poly.coeffs); i++ {
		acc = acc.Mul(z).Add(poly.coeffs[i])
	}
	return acc
}

// derivative returns f' as its own polynomial.
func (poly polynomial) derivative() polynomial {
	d := poly.degree()
	if d == 0 {
		return polynomial{coeffs: []dcomplex.C{{}}}
	}
	out := make([]dcomplex.C, d)
	for i := 0; i < d; i++ {
		power := float64(d - i)
		out[i] = poly.coeffs[i].Scale(power)
	}
	return polynomial{coeffs: out}
}

// polynomialFor builds the monic polynomial NewtonExtras.Polynomial names,
// per §4.G's enumerated choice list.
func polynomialFor(e NewtonExtras) polynomial {
	one := dcomplex.One
	negOne := dcomplex.New(-1, 0)
	two := dcomplex.New(2, 0)

	switch e.Polynomial {
	case NewtonZ3Minus1:
		return polynomial{coeffs: []dcomplex.C{one, {}, {}, negOne}}
	case NewtonZ4Minus1:
		return polynomial{coeffs: []dcomplex.C{one, {}, {}, {}, negOne}}
	case NewtonZ5Minus1:
		return polynomial{coeffs: []dcomplex.C{one, {}, {}, {}, {}, negOne}}
	case NewtonZ6Minus1:
		return polynomial{coeffs: []dcomplex.C{one, {}, {}, {}, {}, {}, negOne}}
	case NewtonZNMinus1:
		n := e.Degree
		if n < 2 {
			n = 2
		}
		coeffs := make([]dcomplex.C, n+1)
		coeffs[0] = one
		coeffs[n] = negOne
		return polynomial{coeffs: coeffs}
	case NewtonZ3Minus2ZPlus2:
		return polynomial{coeffs: []dcomplex.C{one, {}, two.Neg(), two}}
	case NewtonZ4MinusZ:
		return polynomial{coeffs: []dcomplex.C{one, {}, {}, negOne, {}}}
	default:
		return polynomial{coeffs: []dcomplex.C{one, {}, {}, negOne}}
	}
}

// PrecomputeRoots finds every root of the polynomial e names via the
// Durand-Kerner (Weierstrass) simultaneous-iteration method, the standard
// way to find all roots of an arbitrary-degree polynomial at once without
// deflation. Spec.md §4.G calls Newton's roots "precomputed"; this is
// a per-view setup step, not a per-pixel one, matching the cost profile of
// reforbit.Compute.
func PrecomputeRoots(e NewtonExtras) []dcomplex.C {
	poly := polynomialFor(e)
	d := poly.degree()
	if d < 1 {
		return nil
	}

	roots := make([]dcomplex.C, d)
	seed := dcomplex.New(0.4, 0.9)
	power := dcomplex.One
	for k := 0; k < d; k++ {
		roots[k] = power
		power = power.Mul(seed)
	}

	const iterations = 300
	for iter := 0; iter < iterations; iter++ {
		for k := 0; k < d; k++ {
			denom := dcomplex.One
			for j := 0; j < d; j++ {
				if j == k {
					continue
				}
				denom = denom.Mul(roots[k].Sub(roots[j]))
			}
			if denom == (dcomplex.C{}) {
				continue
			}
			roots[k] = roots[k].Sub(poly.eval(roots[k]).Div(denom))
		}
	}
	return roots
}
