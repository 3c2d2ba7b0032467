package fractal

import "github.com/cfdwalrus/deepfrac/dcomplex"

// iterateJulia runs the plain double-precision Julia kernel: c is fixed
// (p.JuliaC), z0 is the pixel, and the derivative seed is 1+0i in z per
// §4.G ("derivative seed is 1+0i in z, not c").
func iterateJulia(z0 dcomplex.C, p FractalParams) IterationResult {
	return quadraticLoop(z0, p.JuliaC, dcomplex.One, p)
}
