package fractal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cfdwalrus/deepfrac/bigdecimal"
	"github.com/cfdwalrus/deepfrac/dcomplex"
	"github.com/cfdwalrus/deepfrac/family"
	"github.com/cfdwalrus/deepfrac/reforbit"
)

func mustParams(t *testing.T, maxIter int, bailout float64, power int) FractalParams {
	t.Helper()
	p, err := NewFractalParams(maxIter, bailout, power, family.PrecisionDouble, 0)
	require.NoError(t, err)
	return p
}

// S1: c=0, maxIter=100, bailout=2 -> iterations=100, escaped=false.
func TestMandelbrotOriginNeverEscapes(t *testing.T) {
	p := mustParams(t, 100, 2, 2)
	r, err := Compute(family.Mandelbrot, dcomplex.C{}, dcomplex.C{}, p, ComputeOptions{})
	require.NoError(t, err)
	assert.Equal(t, 100, r.Iterations)
	assert.False(t, r.Escaped)
}

// S2: c=1+0i escapes quickly.
func TestMandelbrotCOneEscapes(t *testing.T) {
	p := mustParams(t, 100, 2, 2)
	r, err := Compute(family.Mandelbrot, dcomplex.C{}, dcomplex.New(1, 0), p, ComputeOptions{})
	require.NoError(t, err)
	assert.True(t, r.Escaped)
	assert.LessOrEqual(t, r.Iterations, 3)
}

// S3: c=-0.5+0i is inside the main cardioid; interior checking must
// report escaped=false, iterations=maxIter, without running the main loop.
func TestMandelbrotInteriorShortCircuits(t *testing.T) {
	p := mustParams(t, 1000, 2, 2)
	r, err := Compute(family.Mandelbrot, dcomplex.C{}, dcomplex.New(-0.5, 0), p, ComputeOptions{})
	require.NoError(t, err)
	assert.False(t, r.Escaped)
	assert.Equal(t, 1000, r.Iterations)
}

// Property 7: every c in the main cardioid or period-2 bulb must be
// reported interior by the closed-form test.
func TestInteriorCardioidAndBulb(t *testing.T) {
	assert.True(t, inMainCardioidOrBulb(dcomplex.New(-0.5, 0)))
	assert.True(t, inMainCardioidOrBulb(dcomplex.New(-1, 0))) // period-2 bulb center
	assert.False(t, inMainCardioidOrBulb(dcomplex.New(1, 0)))
	assert.False(t, inMainCardioidOrBulb(dcomplex.New(-2, 0)))
}

// S4: Julia Douady rabbit at z0=0 never escapes within 500 iterations.
func TestJuliaDouadyRabbit(t *testing.T) {
	p := mustParams(t, 500, 2, 2)
	p.JuliaC = dcomplex.New(-0.123, 0.745)
	r, err := Compute(family.Julia, dcomplex.C{}, dcomplex.C{}, p, ComputeOptions{})
	require.NoError(t, err)
	assert.False(t, r.Escaped)
	assert.Equal(t, 500, r.Iterations)
}

// Property 8: Julia iteration count at z0 equals that at -z0.
func TestJuliaSymmetry(t *testing.T) {
	p := mustParams(t, 500, 2, 2)
	p.JuliaC = dcomplex.New(-0.123, 0.745)
	z0 := dcomplex.New(0.3, -0.2)
	r1, err := Compute(family.Julia, z0, dcomplex.C{}, p, ComputeOptions{})
	require.NoError(t, err)
	r2, err := Compute(family.Julia, z0.Neg(), dcomplex.C{}, p, ComputeOptions{})
	require.NoError(t, err)
	assert.Equal(t, r1.Iterations, r2.Iterations)
	assert.Equal(t, r1.Escaped, r2.Escaped)
}

// S6: Burning Ship near the main ship does not escape.
func TestBurningShipMainShip(t *testing.T) {
	p := mustParams(t, 1000, 2, 2)
	r, err := Compute(family.BurningShip, dcomplex.C{}, dcomplex.New(-1.76, 0), p, ComputeOptions{})
	require.NoError(t, err)
	assert.False(t, r.Escaped)
}

// Property 9: Tricorn iteration counts at z and conj(z) agree (power=2).
func TestTricornReflectionSymmetry(t *testing.T) {
	p := mustParams(t, 200, 2, 2)
	p.Tricorn.Power = 2
	c := dcomplex.New(0.25, 0.1)
	conjC := c.Conj()
	r1, err := Compute(family.Tricorn, dcomplex.C{}, c, p, ComputeOptions{})
	require.NoError(t, err)
	r2, err := Compute(family.Tricorn, dcomplex.C{}, conjC, p, ComputeOptions{})
	require.NoError(t, err)
	assert.Equal(t, r1.Iterations, r2.Iterations)
	assert.Equal(t, r1.Escaped, r2.Escaped)
}

// S5 / property 10: Newton cubic converges to the root nearest z0=1+0i
// within a handful of iterations.
func TestNewtonCubicConvergesToNearestRoot(t *testing.T) {
	p := mustParams(t, 50, 1e6, 2)
	p.Newton.Tolerance = 1e-6
	p.Newton.Roots = PrecomputeRoots(p.Newton)
	r, err := Compute(family.Newton, dcomplex.New(1, 0), dcomplex.C{}, p, ComputeOptions{})
	require.NoError(t, err)
	assert.False(t, r.Escaped)
	assert.LessOrEqual(t, r.Iterations, 5)
	root := p.Newton.Roots[r.RootIndex]
	assert.Less(t, r.FinalZ.Sub(root).Abs(), p.Newton.Tolerance)
}

func TestNewtonRootIndexRecordedOnDivergence(t *testing.T) {
	p := mustParams(t, 20, 1e-6, 2) // absurdly tight bailout forces "divergence"
	p.Newton.Tolerance = 1e-9
	p.Newton.Roots = PrecomputeRoots(p.Newton)
	r, err := Compute(family.Newton, dcomplex.New(1, 0), dcomplex.C{}, p, ComputeOptions{})
	require.NoError(t, err)
	assert.True(t, r.Escaped)
	assert.GreaterOrEqual(t, r.RootIndex, 0)
}

// Property 3: the double-precision and arbitrary-precision Mandelbrot
// loops must produce identical integer iteration counts on a grid.
func TestFamilyAgreementDoubleVsArbitrary(t *testing.T) {
	const precision = 40
	pDouble := mustParams(t, 500, 2, 2)
	pArb, err := NewFractalParams(500, 2, 2, family.PrecisionArbitrary, precision)
	require.NoError(t, err)

	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			re := -2.5 + float64(i)*(3.5/8)
			im := -1.25 + float64(j)*(2.5/8)
			c := dcomplex.New(re, im)

			rd, err := Compute(family.Mandelbrot, dcomplex.C{}, c, pDouble, ComputeOptions{})
			require.NoError(t, err)
			// Disable the interior shortcut for the arbitrary path by
			// comparing escape behavior only (reforbit has no interior
			// check); both paths must still agree on escaped vs not and,
			// when escaped, on the escape iteration.
			cBig := bigdecimal.NewBigComplex(bigdecimal.FromFloat64(re, precision), bigdecimal.FromFloat64(im, precision))
			ra, err := iterateArbitrary(cBig, family.Mandelbrot, pArb, reforbit.Extras{})
			require.NoError(t, err)

			assert.Equal(t, rd.Escaped, ra.Escaped, "re=%v im=%v", re, im)
			if rd.Escaped && ra.Escaped {
				assert.Equal(t, rd.Iterations, ra.Iterations, "re=%v im=%v", re, im)
			}
		}
	}
}

func TestComputeUnsupportedPerturbationFamily(t *testing.T) {
	p := mustParams(t, 50, 2, 2)
	p.PrecisionMode = family.PrecisionPerturbation
	_, err := Compute(family.Newton, dcomplex.C{}, dcomplex.C{}, p, ComputeOptions{})
	assert.Error(t, err)
}

func TestComputeCustomRequiresFormula(t *testing.T) {
	p := mustParams(t, 50, 2, 2)
	_, err := Compute(family.Custom, dcomplex.C{}, dcomplex.C{}, p, ComputeOptions{})
	assert.Error(t, err)
}

func TestSmoothIterationEscapedIsFiniteAndAboveN(t *testing.T) {
	// |z| = 100 lies inside the bailout, so the log-ratio correction is
	// positive and the smooth count is a finite value above n.
	smooth := smoothIterationEscaped(10, 100*100, 1e6, 2)
	assert.False(t, math.IsNaN(smooth))
	assert.Greater(t, smooth, 10.0)
}
