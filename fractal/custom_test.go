package fractal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cfdwalrus/deepfrac/dcomplex"
	"github.com/cfdwalrus/deepfrac/family"
)

// stubFormula implements CustomFormula directly with the Mandelbrot
// recurrence, to exercise iterateCustom without depending on package
// formula from package fractal's own tests.
type stubFormula struct{}

func (stubFormula) Eval(z, c, p dcomplex.C, n int) (dcomplex.C, error) {
	return z.Square().Add(c), nil
}

func TestCustomFamilyMatchesMandelbrotForQuadraticFormula(t *testing.T) {
	pCustom, err := NewFractalParams(100, 2, 2, family.PrecisionDouble, 0)
	require.NoError(t, err)
	pCustom.Formula = stubFormula{}

	pPlain, err := NewFractalParams(100, 2, 2, family.PrecisionDouble, 0)
	require.NoError(t, err)

	for _, c := range []dcomplex.C{dcomplex.New(-0.5, 0), dcomplex.New(1, 0), dcomplex.New(-1.5, 0.1)} {
		rc, err := Compute(family.Custom, dcomplex.C{}, c, pCustom, ComputeOptions{})
		require.NoError(t, err)
		rp, err := Compute(family.Mandelbrot, dcomplex.C{}, c, pPlain, ComputeOptions{})
		require.NoError(t, err)
		assert.Equal(t, rp.Escaped, rc.Escaped)
		if rp.Escaped {
			assert.Equal(t, rp.Iterations, rc.Iterations)
		}
	}
}

func TestBurningShipVariants(t *testing.T) {
	p, err := NewFractalParams(200, 2, 2, family.PrecisionDouble, 0)
	require.NoError(t, err)

	for _, v := range []family.BurningShipVariant{family.Standard, family.PartialRe, family.PartialIm, family.Buffalo, family.Celtic} {
		p.BurningShip.Variant = v
		r, err := Compute(family.BurningShip, dcomplex.C{}, dcomplex.New(-1.76, 0), p, ComputeOptions{})
		require.NoError(t, err)
		_ = r // every variant must at least run to completion without error
	}
}

func TestPhoenixUshikiMode(t *testing.T) {
	p, err := NewFractalParams(200, 4, 2, family.PrecisionDouble, 0)
	require.NoError(t, err)
	p.Phoenix.UshikiMode = true

	r, err := Compute(family.Phoenix, dcomplex.C{}, dcomplex.New(0.5667, -0.5), p, ComputeOptions{})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, r.Iterations, 0)
}
