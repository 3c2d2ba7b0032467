// Package dcomplex is the fast, double-precision complex number used in
// every hot loop of the engine (reference-orbit truncation, perturbation
// delta recurrence, series coefficients, plain family kernels). It mirrors
// the (re, im) pair gofrac iterates as complex128 in frac.go, but as a
// named struct with explicit mutating variants so the perturbation and
// series inner loops (perturb, series, hybrid, fractal) can update a
// value in place with no heap allocation, the way gofrac's Quadratic.q
// mutates a local z across iterations.
package dcomplex

import "math"

// C is a double-precision complex number.
type C struct {
	Re, Im float64
}

// Zero is the additive identity.
var Zero = C{}

// One is the multiplicative identity.
var One = C{Re: 1}

// New builds a C from its components.
func New(re, im float64) C { return C{Re: re, Im: im} }

// FromComplex128 converts a standard library complex128.
func FromComplex128(z complex128) C { return C{Re: real(z), Im: imag(z)} }

// Complex128 converts to the standard library representation.
func (z C) Complex128() complex128 { return complex(z.Re, z.Im) }

// Add returns z+w.
func (z C) Add(w C) C { return C{z.Re + w.Re, z.Im + w.Im} }

// Sub returns z-w.
func (z C) Sub(w C) C { return C{z.Re - w.Re, z.Im - w.Im} }

// Mul returns z*w.
func (z C) Mul(w C) C {
	return C{z.Re*w.Re - z.Im*w.Im, z.Re*w.Im + z.Im*w.Re}
}

// Scale returns z scaled by a real factor.
func (z C) Scale(k float64) C { return C{z.Re * k, z.Im * k} }

// Neg returns -z.
func (z C) Neg() C { return C{-z.Re, -z.Im} }

// Conj returns the complex conjugate.
func (z C) Conj() C { return C{z.Re, -z.Im} }

// Square returns z*z. This is the hottest of all hot paths (every
// Mandelbrot-family iteration calls it once); it is written out instead
// of delegating to Mul so it never reloads z.Re/z.Im from memory twice.
func (z C) Square() C {
	re, im := z.Re, z.Im
	return C{re*re - im*im, 2 * re * im}
}

// Cube returns z*z*z.
func (z C) Cube() C { return z.Square().Mul(z) }

// AbsComponents returns (|Re z|, |Im z|) as a C, the construction the
// Burning Ship family iterates on.
func (z C) AbsComponents() C { return C{math.Abs(z.Re), math.Abs(z.Im)} }

// Mag2 returns |z|^2 = re^2+im^2, the quantity every bailout test in the
// engine compares against bailoutSquared (gofrac's getMod2 does the same
// to avoid a sqrt in the hot loop).
func (z C) Mag2() float64 { return z.Re*z.Re + z.Im*z.Im }

// Abs returns |z|.
func (z C) Abs() float64 { return math.Hypot(z.Re, z.Im) }

// Arg returns arg(z) in (-pi, pi].
func (z C) Arg() float64 { return math.Atan2(z.Im, z.Re) }

// Inv returns 1/z.
func (z C) Inv() C {
	d := z.Mag2()
	return C{z.Re / d, -z.Im / d}
}

// Div returns z/w.
func (z C) Div(w C) C { return z.Mul(w.Inv()) }

// Pow returns z raised to an integer power via repeated squaring. Negative
// n takes the reciprocal of the positive power.
func (z C) Pow(n int) C {
	if n < 0 {
		return z.Pow(-n).Inv()
	}
	result := One
	base := z
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Square()
		n >>= 1
	}
	return result
}

// PowReal returns z raised to a real, possibly non-integer power via
// the polar identity z^p = exp(p*log z).
func (z C) PowReal(p float64) C {
	if z == (C{}) {
		if p == 0 {
			return One
		}
		return C{}
	}
	r := math.Pow(z.Abs(), p)
	theta := z.Arg() * p
	return C{r * math.Cos(theta), r * math.Sin(theta)}
}

// PowComplex returns z^w = exp(w*log z) for a complex exponent.
func (z C) PowComplex(w C) C {
	if z == (C{}) {
		return C{}
	}
	return w.Mul(z.Log()).Exp()
}

// Exp returns e^z.
func (z C) Exp() C {
	r := math.Exp(z.Re)
	return C{r * math.Cos(z.Im), r * math.Sin(z.Im)}
}

// Log returns the principal branch of the natural logarithm.
func (z C) Log() C { return C{math.Log(z.Abs()), z.Arg()} }

// Sqrt returns the principal square root.
func (z C) Sqrt() C {
	r := z.Abs()
	re := math.Sqrt((r + z.Re) / 2)
	im := math.Sqrt((r - z.Re) / 2)
	if z.Im < 0 {
		im = -im
	}
	return C{re, im}
}

// Cbrt returns the principal cube root.
func (z C) Cbrt() C { return z.PowReal(1.0 / 3.0) }

// Sin returns sin(z).
func (z C) Sin() C { return C{math.Sin(z.Re) * math.Cosh(z.Im), math.Cos(z.Re) * math.Sinh(z.Im)} }

// Cos returns cos(z).
func (z C) Cos() C { return C{math.Cos(z.Re) * math.Cosh(z.Im), -math.Sin(z.Re) * math.Sinh(z.Im)} }

// Tan returns tan(z).
func (z C) Tan() C { return z.Sin().Div(z.Cos()) }

// Sinh returns sinh(z).
func (z C) Sinh() C { return C{math.Sinh(z.Re) * math.Cos(z.Im), math.Cosh(z.Re) * math.Sin(z.Im)} }

// Cosh returns cosh(z).
func (z C) Cosh() C { return C{math.Cosh(z.Re) * math.Cos(z.Im), math.Sinh(z.Re) * math.Sin(z.Im)} }

// Tanh returns tanh(z).
func (z C) Tanh() C { return z.Sinh().Div(z.Cosh()) }

// Asin returns the principal inverse sine.
func (z C) Asin() C {
	i := C{0, 1}
	inner := One.Sub(z.Mul(z)).Sqrt()
	return i.Neg().Mul(i.Mul(z).Add(inner).Log())
}

// Acos returns the principal inverse cosine.
func (z C) Acos() C {
	halfPi := C{Re: math.Pi / 2}
	return halfPi.Sub(z.Asin())
}

// Atan returns the principal inverse tangent.
func (z C) Atan() C {
	i := C{0, 1}
	num := i.Add(z)
	den := i.Sub(z)
	return i.Scale(0.5).Mul(num.Div(den).Log())
}

// Asinh returns the inverse hyperbolic sine.
func (z C) Asinh() C { return z.Add(z.Mul(z).Add(One).Sqrt()).Log() }

// Acosh returns the inverse hyperbolic cosine.
func (z C) Acosh() C { return z.Add(z.Mul(z).Sub(One).Sqrt()).Log() }

// Atanh returns the inverse hyperbolic tangent.
func (z C) Atanh() C {
	num := One.Add(z)
	den := One.Sub(z)
	return num.Div(den).Log().Scale(0.5)
}

// MutSquare sets z to z*z in place. It is the in-place counterpart of
// Square; the engine's own loops use the value-returning methods.
func (z *C) MutSquare() {
	re, im := z.Re, z.Im
	z.Re = re*re - im*im
	z.Im = 2 * re * im
}

// MutMulAdd sets z to z*w+add in place.
func (z *C) MutMulAdd(w, add C) {
	re := z.Re*w.Re - z.Im*w.Im + add.Re
	im := z.Re*w.Im + z.Im*w.Re + add.Im
	z.Re, z.Im = re, im
}

// MutAdd sets z to z+w in place.
func (z *C) MutAdd(w C) {
	z.Re += w.Re
	z.Im += w.Im
}

// IsFinite reports whether both components are finite (not NaN or Inf),
// used by the evaluator (formula package) to turn a blown-up result into
// an EvalError instead of propagating NaN through the rest of a render.
func (z C) IsFinite() bool {
	return !math.IsNaN(z.Re) && !math.IsInf(z.Re, 0) &&
		!math.IsNaN(z.Im) && !math.IsInf(z.Im, 0)
}
