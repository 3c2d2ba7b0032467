// Package fractal is the formula dispatcher of component G: the public
// entry point for a single sample, routing on family and precision mode
// to the plain double-precision loop, the arbitrary-precision loop, or
// (via hybrid/perturb) the reference-orbit path. FractalParams.JuliaMode
// is not consulted by the dispatcher. gofrac's Quadratic/JuliaQ/JuliaR/Polynomiograph structs in
// frac.go are the direct ancestor of the per-family kernels here -- each
// keeps the "iterate z, track bailout, accumulate a derivative" shape
// gofrac's Frac() loop has, generalized per family and enriched with the
// orbit-trap/stripe-average/distance-estimate accumulation spec.md §4.G
// adds.
package fractal

import (
	"github.com/cfdwalrus/deepfrac/dcomplex"
	"github.com/cfdwalrus/deepfrac/family"
	"github.com/cfdwalrus/deepfrac/fracerr"
)

// NewtonPolynomial enumerates the fixed polynomial choices §4.G's Newton
// kernel supports.
type NewtonPolynomial int

const (
	NewtonZ3Minus1 NewtonPolynomial = iota
	NewtonZ4Minus1
	NewtonZ5Minus1
	NewtonZ6Minus1
	NewtonZNMinus1
	NewtonZ3Minus2ZPlus2
	NewtonZ4MinusZ
)

// PhoenixExtras carries Phoenix's p/c pair, its Ushiki-mode flag, and its
// Julia-mode flag (§3 "Phoenix p/c + ushikiMode + juliaMode").
type PhoenixExtras struct {
	P         float64
	C         dcomplex.C
	UshikiMode bool
	JuliaMode bool
}

// BurningShipExtras names the sign-masking variant (§3 "Burning Ship
// variant").
type BurningShipExtras struct {
	Variant family.BurningShipVariant
}

// NewtonExtras carries Newton/Nova's polynomial choice, relaxation factor,
// Nova-mode flag, and convergence tolerance (§3 "Newton polynomial and
// relaxation and novaMode and tolerance").
type NewtonExtras struct {
	Polynomial NewtonPolynomial
	Degree     int // only consulted when Polynomial == NewtonZNMinus1
	Relaxation dcomplex.C
	NovaMode   bool
	Tolerance  float64

	// Roots holds the polynomial's roots as PrecomputeRoots returns them;
	// when nil, the Newton kernels call PrecomputeRoots on every sample and
	// do not store the result here.
	Roots []dcomplex.C
}

// TricornExtras names the multicorn power (§3 "Tricorn power").
type TricornExtras struct {
	Power int
}

// OrbitTrapParams configures the trap §4.G's orbit-trap accumulation
// measures distance against.
type OrbitTrapParams struct {
	Kind   family.OrbitTrapKind
	Center dcomplex.C
	Size   float64
}

// FractalParams is the configuration bundle of §3: validated once at
// construction (NewFractalParams), then immutable for the lifetime of a
// render pass, matching §5's "FractalParams are immutable per render
// pass."
type FractalParams struct {
	MaxIterations int
	Bailout       float64
	bailoutSquared float64
	Power         int

	SmoothColoring    bool
	DistanceEstimate  bool
	OrbitTrap         OrbitTrapParams
	StripeAverage     bool
	StripeDensity     float64

	PrecisionMode family.PrecisionMode
	Precision     int

	JuliaMode bool
	JuliaC    dcomplex.C

	Phoenix     PhoenixExtras
	BurningShip BurningShipExtras
	Newton      NewtonExtras
	Tricorn     TricornExtras

	// Formula is the parsed custom expression (family.Custom only);
	// nil for every other family.
	Formula CustomFormula
	// CustomPower is the effective escape power formula.AST.EstimatePower
	// derived from the formula text, used by the Custom family's smooth
	// iteration finalization (§4.G). Defaults to 2.
	CustomPower float64
}

// CustomFormula is the minimal surface the Custom family's kernel needs
// from a compiled formula.AST, kept as an interface here so fractal does
// not need to import formula's full public surface (and so tests can
// supply a stub).
type CustomFormula interface {
	Eval(z, c, p dcomplex.C, n int) (dcomplex.C, error)
}

// BailoutSquared returns the cached bailout^2 NewFractalParams computed.
func (p FractalParams) BailoutSquared() float64 { return p.bailoutSquared }

// NewFractalParams validates and constructs a FractalParams, the single
// up-front validation point design note in SPEC_FULL.md's ambient-stack
// section calls for instead of deep-call-chain checks.
func NewFractalParams(maxIterations int, bailout float64, power int, precisionMode family.PrecisionMode, precision int) (FractalParams, error) {
	if maxIterations < 1 {
		return FractalParams{}, fracerr.Configuration("fractal: maxIterations must be positive, got %d", maxIterations)
	}
	if bailout <= 0 {
		return FractalParams{}, fracerr.Configuration("fractal: bailout must be positive, got %v", bailout)
	}
	if power < 2 {
		return FractalParams{}, fracerr.Configuration("fractal: power must be >= 2, got %d", power)
	}
	if precisionMode == family.PrecisionArbitrary || precisionMode == family.PrecisionPerturbation {
		if precision < 1 {
			return FractalParams{}, fracerr.Configuration("fractal: precision must be positive, got %d", precision)
		}
	}
	return FractalParams{
		MaxIterations:  maxIterations,
		Bailout:        bailout,
		bailoutSquared: bailout * bailout,
		Power:          power,
		StripeDensity:  5,
		PrecisionMode:  precisionMode,
		Precision:      precision,
		Newton:         NewtonExtras{Relaxation: dcomplex.One, Tolerance: 1e-6},
		Tricorn:        TricornExtras{Power: 2},
		CustomPower:    2,
	}, nil
}
