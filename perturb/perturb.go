// Package perturb runs the per-pixel delta recurrence around a shared
// reference orbit (component D). Where gofrac's Quadratic.q iterates a full
// complex128 z against a bailout radius every pixel (frac.go), perturb
// iterates only the *difference* from a precomputed high-precision orbit,
// trading the full complex value for a double-precision delta that stays
// small as long as the approximation holds.
package perturb

import (
	"github.com/cfdwalrus/deepfrac/dcomplex"
	"github.com/cfdwalrus/deepfrac/family"
	"github.com/cfdwalrus/deepfrac/reforbit"
)

// Glitch tolerances named in §4.D: tighter for the standalone perturbation
// path, looser for the hybrid path that has already validated a series skip.
const (
	GlitchToleranceStandard = 1e-8
	GlitchToleranceHybrid   = 1e-4
)

// Extras carries the family-specific state perturb's four-argument-ish
// contract has no room for: Phoenix's one-step delta history and its real p
// parameter.
type Extras struct {
	PrevDelta dcomplex.C
	PhoenixP  float64
}

// Result is the perturbation-path subset of IterationResult (§3):
// iterations, escaped, the full z = Zn+delta at the last step examined,
// its squared magnitude, and the perturbationUsed/glitched flags.
type Result struct {
	Iterations       int
	Escaped          bool
	FinalZ           dcomplex.C
	FinalMag2        float64
	PerturbationUsed bool
	Glitched         bool
}

// Iterate runs the delta recurrence for fam starting at reference index
// startN with initial delta, propagating the fixed per-pixel offset deltaC
// up to maxIterations, an escape, or a glitch. tau is the family-dependent
// glitch tolerance of §4.D.
func Iterate(ref *reforbit.ReferenceOrbit, fam family.ID, startN int, delta, deltaC dcomplex.C, maxIterations int, tau float64, extras Extras) Result {
	prevDelta := extras.PrevDelta
	var lastFull dcomplex.C
	var lastMag2 float64

	for n := startN; n < maxIterations; n++ {
		if n >= ref.Length {
			// The reference ran out before this pixel escaped or hit
			// maxIterations. Rebasing onto a better-suited reference is
			// allowed but not required (§4.D); DEEPFRAC takes the
			// required simple fallback and reports glitched so the
			// caller retires the pixel via plain iteration.
			return Result{Iterations: n, Escaped: false, FinalZ: lastFull, FinalMag2: lastMag2, PerturbationUsed: true, Glitched: true}
		}

		zn := ref.Z[n]
		twoZn := ref.TwoZ[n]
		zMag2 := ref.ZMag2[n]

		full := zn.Add(delta)
		mag2 := full.Mag2()
		lastFull, lastMag2 = full, mag2

		if mag2 > ref.BailoutSquared {
			return Result{Iterations: n, Escaped: true, FinalZ: full, FinalMag2: mag2, PerturbationUsed: true}
		}

		if delta.Mag2() > tau*zMag2 {
			return Result{Iterations: n, Escaped: false, FinalZ: full, FinalMag2: mag2, PerturbationUsed: true, Glitched: true}
		}

		if ref.Escaped && n == ref.Length-1 {
			// The reference itself escaped here; any pixel still going
			// must be retired rather than advanced past the orbit's end.
			return Result{Iterations: n, Escaped: false, FinalZ: full, FinalMag2: mag2, PerturbationUsed: true, Glitched: true}
		}

		var next dcomplex.C
		switch fam {
		case family.Mandelbrot:
			next = stepQuadratic(twoZn, delta, deltaC)
		case family.Julia:
			next = stepQuadraticNoForcing(twoZn, delta)
		case family.Tricorn:
			next = stepTricorn(twoZn, delta, deltaC)
		case family.BurningShip:
			sRe, sIm := ref.SignRe[n], ref.SignIm[n]
			if signOf(full.Re) != sRe || signOf(full.Im) != sIm {
				return Result{Iterations: n, Escaped: false, FinalZ: full, FinalMag2: mag2, PerturbationUsed: true, Glitched: true}
			}
			next = stepBurningShip(zn, delta, deltaC, sRe, sIm)
		case family.Phoenix:
			next = stepPhoenix(twoZn, delta, deltaC, prevDelta, extras.PhoenixP)
			prevDelta = delta
		default:
			return Result{Iterations: n, Escaped: false, FinalZ: full, FinalMag2: mag2, PerturbationUsed: true, Glitched: true}
		}
		delta = next
	}

	return Result{Iterations: maxIterations, Escaped: false, FinalZ: lastFull, FinalMag2: lastMag2, PerturbationUsed: true}
}

func stepQuadratic(twoZn, delta, deltaC dcomplex.C) dcomplex.C {
	return twoZn.Mul(delta).Add(delta.Square()).Add(deltaC)
}

// stepQuadraticNoForcing is Julia's linear kernel: c is fixed for the whole
// render so no +deltaC forcing term is added each step (§4.D).
func stepQuadraticNoForcing(twoZn, delta dcomplex.C) dcomplex.C {
	return twoZn.Mul(delta).Add(delta.Square())
}

func stepTricorn(twoZn, delta, deltaC dcomplex.C) dcomplex.C {
	conjDelta := delta.Conj()
	return twoZn.Mul(conjDelta).Add(conjDelta.Square()).Add(deltaC)
}

func stepPhoenix(twoZn, delta, deltaC, prevDelta dcomplex.C, p float64) dcomplex.C {
	return twoZn.Mul(delta).Add(delta.Square()).Add(deltaC).Add(prevDelta.Scale(p))
}

// stepBurningShip implements the sign-masked form design note 9 specifies in
// place of the source's approximate twoAbsZ update: the sign check that
// guards this call must already have passed (Iterate glitches immediately
// on a sign mismatch rather than calling this).
func stepBurningShip(zn, delta, deltaC dcomplex.C, sRe, sIm int8) dcomplex.C {
	sr, si := float64(sRe), float64(sIm)
	re := 2*(sr*zn.Re*delta.Re-si*zn.Im*delta.Im) + deltaC.Re
	im := 2*(sr*zn.Re*delta.Im+si*zn.Im*delta.Re) + deltaC.Im
	return dcomplex.New(re, im)
}

func signOf(x float64) int8 {
	if x < 0 {
		return -1
	}
	return 1
}
