package reforbit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cfdwalrus/deepfrac/bigdecimal"
	"github.com/cfdwalrus/deepfrac/family"
)

const testPrecision = 30

func bigC(re, im string) bigdecimal.BigComplex {
	z, err := bigdecimal.ParseComplex(re, im, testPrecision)
	if err != nil {
		panic(err)
	}
	return z
}

func TestInitRejectsBadMaxIterations(t *testing.T) {
	r := New()
	err := r.Init(bigC("0", "0"), 0, 2, testPrecision)
	assert.Error(t, err)
}

func TestInitRejectsBadBailout(t *testing.T) {
	r := New()
	err := r.Init(bigC("0", "0"), 100, 0, testPrecision)
	assert.Error(t, err)
}

func TestInitRejectsBadPrecision(t *testing.T) {
	r := New()
	err := r.Init(bigC("0", "0"), 100, 2, 0)
	assert.Error(t, err)
}

func TestComputeBeforeInitErrors(t *testing.T) {
	r := New()
	err := r.Compute(family.Mandelbrot)
	assert.Error(t, err)
}

func TestComputeUnsupportedFamilyErrors(t *testing.T) {
	r := New()
	require.NoError(t, r.Init(bigC("0", "0"), 100, 2, testPrecision))
	assert.Error(t, r.Compute(family.Newton))
	assert.Error(t, r.Compute(family.Custom))
}

func TestMandelbrotOriginNeverEscapes(t *testing.T) {
	r := New()
	require.NoError(t, r.Init(bigC("0", "0"), 50, 2, testPrecision))
	require.NoError(t, r.Compute(family.Mandelbrot))
	assert.False(t, r.Escaped)
	assert.Equal(t, 50, r.Length)
	for n := 0; n < r.Length; n++ {
		assert.Equal(t, 0.0, r.Z[n].Re)
		assert.Equal(t, 0.0, r.Z[n].Im)
	}
}

func TestMandelbrotEscapesAndRecordsEscapeIteration(t *testing.T) {
	r := New()
	require.NoError(t, r.Init(bigC("2", "0"), 50, 2, testPrecision))
	require.NoError(t, r.Compute(family.Mandelbrot))
	require.True(t, r.Escaped)
	// Z0=0, Z1=2 (mag2=4, not >4), Z2=6 (mag2=36>4): escapes at n=2.
	assert.Equal(t, 2, r.EscapeIteration)
	assert.Equal(t, 3, r.Length)
	assert.InDelta(t, 6.0, r.Z[2].Re, 1e-9)
}

func TestJuliaStartsFromCenterWithFixedC(t *testing.T) {
	r := New()
	require.NoError(t, r.Init(bigC("1", "0"), 10, 2, testPrecision))
	r.SetExtras(Extras{JuliaC: bigC("0", "0")})
	require.NoError(t, r.Compute(family.Julia))
	assert.InDelta(t, 1.0, r.Z[0].Re, 1e-9)
	assert.InDelta(t, 1.0, r.Z[1].Re, 1e-9) // 1^2+0 = 1, fixed point
}

func TestTricornConjugatesBeforeSquaring(t *testing.T) {
	r := New()
	require.NoError(t, r.Init(bigC("0", "0.5"), 10, 50, testPrecision))
	require.NoError(t, r.Compute(family.Tricorn))
	// Z0=0, Z1 = conj(0)^2 + c = c = 0+0.5i
	assert.InDelta(t, 0.0, r.Z[1].Re, 1e-9)
	assert.InDelta(t, 0.5, r.Z[1].Im, 1e-9)
	// Z2 = conj(0+0.5i)^2 + c = (0-0.5i)^2 + 0.5i = -0.25 + 0.5i
	assert.InDelta(t, -0.25, r.Z[2].Re, 1e-9)
	assert.InDelta(t, 0.5, r.Z[2].Im, 1e-9)
}

func TestBurningShipRecordsSignBits(t *testing.T) {
	r := New()
	require.NoError(t, r.Init(bigC("-1", "-1"), 10, 50, testPrecision))
	require.NoError(t, r.Compute(family.BurningShip))
	require.NotNil(t, r.SignRe)
	require.NotNil(t, r.SignIm)
	// Z1 = (|0|+i|0|)^2 + c = c = -1-1i: both components negative.
	assert.EqualValues(t, -1, r.SignRe[1])
	assert.EqualValues(t, -1, r.SignIm[1])
}

func TestPhoenixTracksOneStepHistory(t *testing.T) {
	r := New()
	require.NoError(t, r.Init(bigC("0.5", "0"), 10, 50, testPrecision))
	p, err := bigdecimal.Parse("0.2", testPrecision)
	require.NoError(t, err)
	r.SetExtras(Extras{PhoenixP: p})
	require.NoError(t, r.Compute(family.Phoenix))
	require.NotNil(t, r.PrevZ)
	// prev for n=0 is the zero history term.
	assert.Equal(t, 0.0, r.PrevZ[0].Re)
	// prev for n=1 is Z0=0.
	assert.Equal(t, 0.0, r.PrevZ[1].Re)
	// Z1 = Z0^2 + c + p*prev0 = 0 + 0.5 + 0 = 0.5
	assert.InDelta(t, 0.5, r.Z[1].Re, 1e-9)
	// Z2 = Z1^2 + c + p*Z0 = 0.25+0.5+0 = 0.75
	assert.InDelta(t, 0.75, r.Z[2].Re, 1e-9)
}

func TestTwoZMatchesFamilyLinearTerm(t *testing.T) {
	r := New()
	require.NoError(t, r.Init(bigC("0.3", "0.1"), 10, 50, testPrecision))
	require.NoError(t, r.Compute(family.Mandelbrot))
	for n := 0; n < r.Length; n++ {
		assert.InDelta(t, 2*r.Z[n].Re, r.TwoZ[n].Re, 1e-9)
		assert.InDelta(t, 2*r.Z[n].Im, r.TwoZ[n].Im, 1e-9)
	}
}

func TestZMatchesDoubleTruncationOfZhp(t *testing.T) {
	r := New()
	require.NoError(t, r.Init(bigC("0.3", "-0.2"), 20, 50, testPrecision))
	require.NoError(t, r.Compute(family.Mandelbrot))
	for n := 0; n < r.Length; n++ {
		re, im := r.Zhp[n].ToFloat64()
		assert.Equal(t, re, r.Z[n].Re)
		assert.Equal(t, im, r.Z[n].Im)
	}
}
