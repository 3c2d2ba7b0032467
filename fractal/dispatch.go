package fractal

import (
	"github.com/cfdwalrus/deepfrac/bigdecimal"
	"github.com/cfdwalrus/deepfrac/dcomplex"
	"github.com/cfdwalrus/deepfrac/family"
	"github.com/cfdwalrus/deepfrac/fracerr"
	"github.com/cfdwalrus/deepfrac/hybrid"
	"github.com/cfdwalrus/deepfrac/perturb"
	"github.com/cfdwalrus/deepfrac/reforbit"
	"github.com/cfdwalrus/deepfrac/series"
)

// ComputeOptions carries the per-pixel inputs §6's compute(point, c_or_none,
// options) needs beyond the pixel's own z0/c: the shared per-view
// reference orbit and series table perturbation/hybrid mode consult, the
// pixel's offset from that reference, and a precision-mode override.
type ComputeOptions struct {
	// DeltaC is the pixel's offset from Reference.Center, required when
	// PrecisionMode (or its override) is PrecisionPerturbation.
	DeltaC dcomplex.C
	// InitialDelta is the starting delta fed to the recurrence; zero for
	// every family except Julia, where it is the pixel's starting z0
	// minus Reference.Center (Julia's reference orbit start is itself a
	// pixel-swept quantity, not a fixed c).
	InitialDelta dcomplex.C

	Reference *reforbit.ReferenceOrbit
	Series    *series.Coefficients
	Stats     *series.Stats

	ErrorTolerance  float64
	GlitchTolerance float64
	PerturbExtras   perturb.Extras

	// PrecisionModeOverride, when non-nil, replaces FractalParams'
	// PrecisionMode for this one sample (§6: "precisionMode override").
	PrecisionModeOverride *family.PrecisionMode
}

// Compute is the formula dispatcher's public entry point for a single
// sample (§4.G, §6): it routes on family and precision mode (or
// opts.PrecisionModeOverride) to the plain double loop, the
// arbitrary-precision loop, or the hybrid/perturbation path.
// FractalParams.JuliaMode is not consulted: a Julia set is selected by
// family.Julia (and Phoenix's by PhoenixExtras.JuliaMode), while
// Mandelbrot, Burning Ship and Tricorn always take the pixel as c.
func Compute(id family.ID, z0, c dcomplex.C, p FractalParams, opts ComputeOptions) (IterationResult, error) {
	mode := p.PrecisionMode
	if opts.PrecisionModeOverride != nil {
		mode = *opts.PrecisionModeOverride
	}

	switch mode {
	case family.PrecisionDouble:
		return computeDouble(id, z0, c, p)
	case family.PrecisionArbitrary:
		return computeArbitrary(id, z0, c, p)
	case family.PrecisionPerturbation:
		return computePerturbation(id, p, opts)
	default:
		return failed(false), fracerr.Configuration("fractal: unknown precision mode %d", int(mode))
	}
}

func computeDouble(id family.ID, z0, c dcomplex.C, p FractalParams) (IterationResult, error) {
	switch id {
	case family.Mandelbrot:
		return iterateMandelbrot(c, p, true), nil
	case family.Julia:
		return iterateJulia(z0, p), nil
	case family.BurningShip:
		return iterateBurningShip(c, p), nil
	case family.Tricorn:
		return iterateTricorn(c, p), nil
	case family.Phoenix:
		return iteratePhoenix(z0, c, p), nil
	case family.Newton:
		return iterateNewton(z0, c, p), nil
	case family.Custom:
		if p.Formula == nil {
			return failed(false), fracerr.Configuration("fractal: custom family requires FractalParams.Formula")
		}
		return iterateCustom(z0, c, p, p.CustomPower), nil
	default:
		return failed(false), fracerr.Configuration("fractal: unknown family %d", int(id))
	}
}

func computeArbitrary(id family.ID, z0, c dcomplex.C, p FractalParams) (IterationResult, error) {
	if !family.CapabilitiesFor(id).SupportsArbitraryPrecision {
		return failed(false), fracerr.Unsupported(id.String(), "arbitrary precision")
	}
	precision := p.Precision
	if precision < 1 {
		return failed(false), fracerr.Configuration("fractal: arbitrary precision requires FractalParams.Precision >= 1")
	}

	switch id {
	case family.Newton:
		z0Big := bigdecimal.NewBigComplex(bigdecimal.FromFloat64(z0.Re, precision), bigdecimal.FromFloat64(z0.Im, precision))
		cBig := bigdecimal.NewBigComplex(bigdecimal.FromFloat64(c.Re, precision), bigdecimal.FromFloat64(c.Im, precision))
		return iterateNewtonArbitrary(z0Big, cBig, p), nil
	default:
		var pixelBig bigdecimal.BigComplex
		extras := reforbit.Extras{}
		switch id {
		case family.Julia:
			pixelBig = bigdecimal.NewBigComplex(bigdecimal.FromFloat64(z0.Re, precision), bigdecimal.FromFloat64(z0.Im, precision))
			extras.JuliaC = bigdecimal.NewBigComplex(bigdecimal.FromFloat64(p.JuliaC.Re, precision), bigdecimal.FromFloat64(p.JuliaC.Im, precision))
		case family.Phoenix:
			pixelBig = bigdecimal.NewBigComplex(bigdecimal.FromFloat64(c.Re, precision), bigdecimal.FromFloat64(c.Im, precision))
			extras.PhoenixP = bigdecimal.FromFloat64(p.Phoenix.P, precision)
		case family.Tricorn:
			pixelBig = bigdecimal.NewBigComplex(bigdecimal.FromFloat64(c.Re, precision), bigdecimal.FromFloat64(c.Im, precision))
			extras.TricornPower = p.Tricorn.Power
		default:
			pixelBig = bigdecimal.NewBigComplex(bigdecimal.FromFloat64(c.Re, precision), bigdecimal.FromFloat64(c.Im, precision))
		}
		return iterateArbitrary(pixelBig, id, p, extras)
	}
}

// computePerturbation implements §4.G's perturbation branch: delegate to
// the hybrid iterator when series approximation is available and a
// coefficient table was supplied, otherwise run the plain delta recurrence
// (package perturb) directly.
func computePerturbation(id family.ID, p FractalParams, opts ComputeOptions) (IterationResult, error) {
	if !family.CapabilitiesFor(id).SupportsPerturbation {
		return failed(false), fracerr.Unsupported(id.String(), "perturbation")
	}
	if opts.Reference == nil || opts.Reference.Length == 0 {
		return failed(false), fracerr.NotInitialized("fractal: perturbation requested without a computed reference orbit")
	}

	errTol := opts.ErrorTolerance
	if errTol <= 0 {
		errTol = series.DefaultErrorTolerance
	}
	glitchTol := opts.GlitchTolerance

	if opts.Series != nil && family.CapabilitiesFor(id).SupportsSeriesApproximation {
		if glitchTol <= 0 {
			glitchTol = perturb.GlitchToleranceHybrid
		}
		stats := opts.Stats
		if stats == nil {
			stats = &series.Stats{}
		}
		hr, err := hybrid.Iterate(opts.Reference, opts.Series, id, opts.DeltaC, p.MaxIterations, errTol, glitchTol, stats, opts.PerturbExtras)
		if err != nil {
			return failed(false), err
		}
		return fromHybrid(hr), nil
	}

	if glitchTol <= 0 {
		glitchTol = perturb.GlitchToleranceStandard
	}
	pr := perturb.Iterate(opts.Reference, id, 0, opts.InitialDelta, opts.DeltaC, p.MaxIterations, glitchTol, opts.PerturbExtras)
	return fromPerturb(pr), nil
}

func fromPerturb(r perturb.Result) IterationResult {
	return IterationResult{
		Iterations:       r.Iterations,
		Escaped:          r.Escaped,
		Smooth:           float64(r.Iterations),
		FinalZ:           r.FinalZ,
		FinalMagnitude2:  r.FinalMag2,
		PerturbationUsed: r.PerturbationUsed,
		Glitched:         r.Glitched,
	}
}

func fromHybrid(r hybrid.Result) IterationResult {
	return IterationResult{
		Iterations:        r.Iterations,
		Escaped:           r.Escaped,
		Smooth:            float64(r.Iterations),
		FinalZ:            r.FinalZ,
		FinalMagnitude2:   r.FinalMag2,
		PerturbationUsed:  r.PerturbationUsed,
		Glitched:          r.Glitched,
		SkippedIterations: r.SkippedIterations,
	}
}
