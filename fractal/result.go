package fractal

import "github.com/cfdwalrus/deepfrac/dcomplex"

// IterationResult is the output record per sample (§3). Only
// Iterations/Escaped/Smooth/FinalZ are guaranteed meaningful for every
// family and mode; the rest are populated when the corresponding
// FractalParams option is enabled, and left at their zero value otherwise.
type IterationResult struct {
	Iterations int
	Escaped    bool
	Smooth     float64
	FinalZ     dcomplex.C

	FinalMagnitude2    float64
	DistanceEstimate   float64
	OrbitTrapDistance  float64
	DerivativeMagnitude float64
	StripeAverage      float64
	Angle              float64

	PerturbationUsed  bool
	SkippedIterations int
	Glitched          bool

	// RootIndex is meaningful only for the Newton family: the index of
	// the root the orbit converged to (or came closest to, on
	// divergence).
	RootIndex int
}

// failed returns the well-formed, zeroed IterationResult §7 requires the
// per-pixel compute path to produce in place of throwing: iterations=0,
// escaped=false, smooth=0, glitched set when the pathology arose from a
// numeric pathology that should be reported to the caller as such.
func failed(glitched bool) IterationResult {
	return IterationResult{Glitched: glitched}
}
