package bigdecimal

import "github.com/cfdwalrus/deepfrac/fracerr"

// BigComplex is a pair of BigDecimals sharing precision, the
// arbitrary-precision analogue of dcomplex.C used by the reference orbit
// (reforbit) while it walks the high-precision recurrence.
type BigComplex struct {
	Re, Im BigDecimal
}

// NewBigComplex builds a BigComplex from its components.
func NewBigComplex(re, im BigDecimal) BigComplex { return BigComplex{Re: re, Im: im} }

// ZeroComplex returns 0+0i at the given precision.
func ZeroComplex(precision int) BigComplex {
	return BigComplex{Re: zero(precision), Im: zero(precision)}
}

// ParseComplex builds a BigComplex from two separate decimal strings,
// parsing reStr and imStr independently with Parse (spec.md §6
// initialize_perturbation takes centerX, centerY separately). It does not
// accept a combined "re+imi" literal.
func ParseComplex(reStr, imStr string, precision int) (BigComplex, error) {
	re, err := Parse(reStr, precision)
	if err != nil {
		return BigComplex{}, err
	}
	im, err := Parse(imStr, precision)
	if err != nil {
		return BigComplex{}, err
	}
	return BigComplex{Re: re, Im: im}, nil
}

// Add returns z+w.
func (z BigComplex) Add(w BigComplex) BigComplex {
	return BigComplex{Re: z.Re.Add(w.Re), Im: z.Im.Add(w.Im)}
}

// Sub returns z-w.
func (z BigComplex) Sub(w BigComplex) BigComplex {
	return BigComplex{Re: z.Re.Sub(w.Re), Im: z.Im.Sub(w.Im)}
}

// Neg returns -z.
func (z BigComplex) Neg() BigComplex {
	return BigComplex{Re: z.Re.Neg(), Im: z.Im.Neg()}
}

// Conj returns the complex conjugate.
func (z BigComplex) Conj() BigComplex {
	return BigComplex{Re: z.Re, Im: z.Im.Neg()}
}

// Mul returns z*w using the standard 4-multiply form:
// (a+bi)(c+di) = (ac-bd) + (ad+bc)i.
func (z BigComplex) Mul(w BigComplex) BigComplex {
	ac := z.Re.Mul(w.Re)
	bd := z.Im.Mul(w.Im)
	ad := z.Re.Mul(w.Im)
	bc := z.Im.Mul(w.Re)
	return BigComplex{Re: ac.Sub(bd), Im: ad.Add(bc)}
}

// Square returns z*z using three BigDecimal multiplies
// (a^2-b^2, 2ab = ab+ab) instead of the general 4-multiply Mul, the same
// reduction gofrac's Quadratic.q leans on every iteration (z*z+c) and
// spec.md §4.A calls out explicitly for BigComplex.Square.
func (z BigComplex) Square() BigComplex {
	a2 := z.Re.Mul(z.Re)
	b2 := z.Im.Mul(z.Im)
	ab := z.Re.Mul(z.Im)
	return BigComplex{Re: a2.Sub(b2), Im: ab.Add(ab)}
}

// Scale multiplies both components by a real BigDecimal factor.
func (z BigComplex) Scale(k BigDecimal) BigComplex {
	return BigComplex{Re: z.Re.Mul(k), Im: z.Im.Mul(k)}
}

// MagnitudeSquared returns |z|^2 = re^2+im^2.
func (z BigComplex) MagnitudeSquared() BigDecimal {
	return z.Re.Mul(z.Re).Add(z.Im.Mul(z.Im))
}

// Escaped reports whether |z|^2 exceeds thresholdSquared.
func (z BigComplex) Escaped(thresholdSquared BigDecimal) bool {
	return z.MagnitudeSquared().Compare(thresholdSquared) > 0
}

// Div returns z/w = z*conj(w)/|w|^2.
func (z BigComplex) Div(w BigComplex) (BigComplex, error) {
	denom := w.MagnitudeSquared()
	if denom.IsZero() {
		return BigComplex{}, fracerr.Arithmetic("bigcomplex: division by zero")
	}
	num := z.Mul(w.Conj())
	re, err := num.Re.Div(denom)
	if err != nil {
		return BigComplex{}, err
	}
	im, err := num.Im.Div(denom)
	if err != nil {
		return BigComplex{}, err
	}
	return BigComplex{Re: re, Im: im}, nil
}

// ToFloat64 truncates to a double-precision pair (re, im), the operation
// reforbit uses to populate its Z[n] fast-access table from Zhp.
func (z BigComplex) ToFloat64() (re, im float64) {
	return z.Re.Float64(), z.Im.Float64()
}
