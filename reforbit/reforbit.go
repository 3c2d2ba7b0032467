// Package reforbit computes the single high-precision reference orbit a view
// shares across every pixel (component C). It is the direct descendant of
// gofrac's per-family "Frac" loop in frac.go — Quadratic.q's
// "z = z*z + c, check modulus against bailout" shape is exactly the
// recurrence run here, except run once at arbitrary precision over
// bigdecimal.BigComplex instead of once per pixel over complex128, and with
// every intermediate Zn retained instead of discarded.
package reforbit

import (
	"github.com/cfdwalrus/deepfrac/bigdecimal"
	"github.com/cfdwalrus/deepfrac/dcomplex"
	"github.com/cfdwalrus/deepfrac/family"
	"github.com/cfdwalrus/deepfrac/fracerr"
)

// Extras carries the family-specific fixed parameters the plain 4-argument
// init contract in spec.md §4.C has no room for (Julia's fixed c, Phoenix's
// real p, Tricorn/multicorn's power). Zero value is correct for Mandelbrot
// and Burning Ship and for Tricorn's default power=2.
type Extras struct {
	JuliaC       bigdecimal.BigComplex
	PhoenixP     bigdecimal.BigDecimal
	TricornPower int
}

// ReferenceOrbit holds the five parallel sequences of §3 plus the family
// side-data needed to reproduce them (Phoenix's one-step history, Burning
// Ship's per-step sign bits).
type ReferenceOrbit struct {
	Center          bigdecimal.BigComplex
	BailoutSquared  float64
	MaxIterations   int
	Precision       int
	Length          int
	Escaped         bool
	EscapeIteration int

	Z      []dcomplex.C
	Zhp    []bigdecimal.BigComplex
	TwoZ   []dcomplex.C
	ZMag2  []float64

	// PrevZ/PrevZhp hold Z_{n-1} for families that carry one-step history
	// (Phoenix); nil for every other family.
	PrevZ   []dcomplex.C
	PrevZhp []bigdecimal.BigComplex

	// SignRe/SignIm hold the per-step sign bits of Re Zn / Im Zn the open
	// question in design note 9 requires Burning Ship perturbation to
	// check against; nil for every other family.
	SignRe []int8
	SignIm []int8

	extras      Extras
	initialized bool
}

// New returns a zero-value ReferenceOrbit; call Init before Compute.
func New() *ReferenceOrbit {
	return &ReferenceOrbit{}
}

// SetExtras records family-specific fixed parameters (Julia's c, Phoenix's
// p, Tricorn's power). Call before Compute; no-op fields default to the
// family's standard behavior.
func (r *ReferenceOrbit) SetExtras(e Extras) {
	r.extras = e
}

// Init allocates storage and records the parameters shared by every family,
// per spec.md §4.C's four-argument contract.
func (r *ReferenceOrbit) Init(center bigdecimal.BigComplex, maxIterations int, bailout float64, precision int) error {
	if maxIterations < 1 {
		return fracerr.Configuration("reforbit: maxIterations must be positive, got %d", maxIterations)
	}
	if bailout <= 0 {
		return fracerr.Configuration("reforbit: bailout must be positive, got %v", bailout)
	}
	if precision < 1 {
		return fracerr.Configuration("reforbit: precision must be positive, got %d", precision)
	}

	r.Center = center
	r.BailoutSquared = bailout * bailout
	r.MaxIterations = maxIterations
	r.Precision = precision
	r.Length = 0
	r.Escaped = false
	r.EscapeIteration = 0

	r.Z = make([]dcomplex.C, maxIterations)
	r.Zhp = make([]bigdecimal.BigComplex, maxIterations)
	r.TwoZ = make([]dcomplex.C, maxIterations)
	r.ZMag2 = make([]float64, maxIterations)
	r.PrevZ = nil
	r.PrevZhp = nil
	r.SignRe = nil
	r.SignIm = nil
	r.initialized = true
	return nil
}

// Compute runs the high-precision recurrence of fam from its natural initial
// condition, stopping at the first escape or at MaxIterations, and populates
// every sequence described in §3.
func (r *ReferenceOrbit) Compute(fam family.ID) error {
	if !r.initialized {
		return fracerr.NotInitialized("reforbit: Compute called before Init")
	}
	if !family.CapabilitiesFor(fam).SupportsArbitraryPrecision || fam == family.Newton || fam == family.Custom {
		return fracerr.Unsupported(fam.String(), "reference orbit")
	}

	bailoutSq := bigdecimal.FromFloat64(r.BailoutSquared, r.Precision)

	var c bigdecimal.BigComplex
	switch fam {
	case family.Julia:
		c = r.extras.JuliaC
	default:
		c = r.Center
	}

	zhp := bigdecimal.ZeroComplex(r.Precision)
	if fam == family.Julia {
		zhp = r.Center
	}
	prevHp := bigdecimal.ZeroComplex(r.Precision)

	if fam == family.Phoenix {
		r.PrevZ = make([]dcomplex.C, r.MaxIterations)
		r.PrevZhp = make([]bigdecimal.BigComplex, r.MaxIterations)
	}
	if fam == family.BurningShip {
		r.SignRe = make([]int8, r.MaxIterations)
		r.SignIm = make([]int8, r.MaxIterations)
	}

	tricornPower := r.extras.TricornPower
	if tricornPower < 2 {
		tricornPower = 2
	}

	for n := 0; n < r.MaxIterations; n++ {
		r.Zhp[n] = zhp
		re, im := zhp.ToFloat64()
		r.Z[n] = dcomplex.New(re, im)
		r.ZMag2[n] = r.Z[n].Mag2()

		switch fam {
		case family.Mandelbrot, family.Julia, family.Phoenix:
			r.TwoZ[n] = dcomplex.New(2*re, 2*im)
		case family.Tricorn:
			r.TwoZ[n] = dcomplex.New(2*re, -2*im)
		case family.BurningShip:
			r.TwoZ[n] = dcomplex.New(2*absF(re), 2*absF(im))
			r.SignRe[n] = signBit(re)
			r.SignIm[n] = signBit(im)
		}
		if fam == family.Phoenix {
			r.PrevZhp[n] = prevHp
			pre, pim := prevHp.ToFloat64()
			r.PrevZ[n] = dcomplex.New(pre, pim)
		}

		r.Length = n + 1
		if zhp.Escaped(bailoutSq) {
			r.Escaped = true
			r.EscapeIteration = n
			return nil
		}
		if n == r.MaxIterations-1 {
			break
		}

		var next bigdecimal.BigComplex
		switch fam {
		case family.Mandelbrot, family.Julia:
			next = zhp.Square().Add(c)
		case family.Tricorn:
			conj := zhp.Conj()
			next = conjPow(conj, tricornPower).Add(c)
		case family.BurningShip:
			absZ := bigdecimal.NewBigComplex(zhp.Re.Abs(), zhp.Im.Abs())
			next = absZ.Square().Add(c)
		case family.Phoenix:
			pTerm := prevHp.Scale(r.extras.PhoenixP)
			next = zhp.Square().Add(c).Add(pTerm)
			prevHp = zhp
		}
		zhp = next
	}
	r.Escaped = false
	return nil
}

func absF(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func signBit(x float64) int8 {
	if x < 0 {
		return -1
	}
	return 1
}

// conjPow raises z to the integer power p>=2 by repeated multiplication; p is
// small (Tricorn/multicorn powers in practice stay under 10) so the naive
// loop is clearer than binary exponentiation here and never dominates
// runtime the way BigDecimal.Pow's does for user-chosen exponents.
func conjPow(z bigdecimal.BigComplex, p int) bigdecimal.BigComplex {
	result := z
	for i := 1; i < p; i++ {
		result = result.Mul(z)
	}
	return result
}
