package fractal

import "github.com/cfdwalrus/deepfrac/dcomplex"

// iterateMandelbrot runs the plain double-precision Mandelbrot kernel:
// z0=0, z <- z^2+c, with the main-cardioid/period-2-bulb interior
// optimization §4.G names (gofrac's Quadratic.q never had this
// optimization; it is grounded directly in the cardioid/bulb inequalities
// spec.md §4.G states).
func iterateMandelbrot(c dcomplex.C, p FractalParams, interiorChecking bool) IterationResult {
	if interiorChecking && inMainCardioidOrBulb(c) {
		return IterationResult{
			Iterations:      p.MaxIterations,
			Escaped:         false,
			Smooth:          float64(p.MaxIterations),
			FinalZ:          dcomplex.C{},
			FinalMagnitude2: 0,
		}
	}
	return quadraticLoop(dcomplex.C{}, c, dcomplex.C{}, p)
}

// inMainCardioidOrBulb implements §4.G's closed-form interior test:
// cardioid q*(q+(c_re-1/4)) < 1/4*c_im^2 with q=(c_re-1/4)^2+c_im^2, and
// the period-2 bulb (c_re+1)^2+c_im^2 < 1/16.
func inMainCardioidOrBulb(c dcomplex.C) bool {
	q := (c.Re-0.25)*(c.Re-0.25) + c.Im*c.Im
	if q*(q+(c.Re-0.25)) < 0.25*c.Im*c.Im {
		return true
	}
	dre := c.Re + 1
	return dre*dre+c.Im*c.Im < 1.0/16.0
}
