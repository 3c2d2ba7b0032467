package formula

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cfdwalrus/deepfrac/dcomplex"
)

// TestParserRoundTrip is property 11: every formula in the named set,
// evaluated at z=0+0i, c=1+0i, p=0+0i, n=0, must match a hand-computed
// reference within 1e-12.
func TestParserRoundTrip(t *testing.T) {
	z := dcomplex.C{}
	c := dcomplex.New(1, 0)
	p := dcomplex.C{}

	cases := []struct {
		formula string
		want    dcomplex.C
	}{
		{"z^2+c", dcomplex.New(1, 0)},
		{"z^3+c", dcomplex.New(1, 0)},
		{"sin(z)+c", dcomplex.New(1, 0)},
		{"z^2+c/z", dcomplex.C{}}, // divide by zero: z is 0, c/z undefined
		{"conj(z)^2+c", dcomplex.New(1, 0)},
		{"z^2+c+p*conj(z)", dcomplex.New(1, 0)},
	}

	for _, tc := range cases {
		t.Run(tc.formula, func(t *testing.T) {
			ast, err := Parse(tc.formula)
			require.NoError(t, err)
			got, err := ast.Eval(z, c, p, 0)
			if tc.formula == "z^2+c/z" {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tc.want.Re, got.Re, 1e-12)
			assert.InDelta(t, tc.want.Im, got.Im, 1e-12)
		})
	}
}

// TestParserRejectsHostCode is property 12.
func TestParserRejectsHostCode(t *testing.T) {
	for _, formula := range []string{"eval(1)", "globalThis", "__proto__", "process.exit(0)"} {
		t.Run(formula, func(t *testing.T) {
			_, err := Parse(formula)
			assert.Error(t, err)
		})
	}
}

func TestValidateReportsStructuredResult(t *testing.T) {
	ok := Validate("z^2+c")
	assert.True(t, ok.Valid)
	assert.NoError(t, ok.Error)

	bad := Validate("z^2+")
	assert.False(t, bad.Valid)
	assert.Error(t, bad.Error)
}

func TestCompileProducesBoundFunction(t *testing.T) {
	fn, err := Compile("z^2+c")
	require.NoError(t, err)
	got, err := fn(dcomplex.New(1, 1), dcomplex.New(0, 0), dcomplex.C{}, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0, got.Re, 1e-12)
	assert.InDelta(t, 2, got.Im, 1e-12)
}

func TestDependenciesCollectsVariables(t *testing.T) {
	deps, err := Dependencies("z^2+c+p*conj(z)")
	require.NoError(t, err)
	assert.True(t, deps["z"])
	assert.True(t, deps["c"])
	assert.True(t, deps["p"])
	assert.False(t, deps["n"])
}

func TestPrecedenceAndAssociativity(t *testing.T) {
	// 2+3*4 = 14, not 20.
	ast, err := Parse("2+3*4")
	require.NoError(t, err)
	got, err := ast.Eval(dcomplex.C{}, dcomplex.C{}, dcomplex.C{}, 0)
	require.NoError(t, err)
	assert.InDelta(t, 14, got.Re, 1e-12)

	// 2^3^2 = 2^(3^2) = 512 (right-associative).
	ast, err = Parse("2^3^2")
	require.NoError(t, err)
	got, err = ast.Eval(dcomplex.C{}, dcomplex.C{}, dcomplex.C{}, 0)
	require.NoError(t, err)
	assert.InDelta(t, 512, got.Re, 1e-9)
}

func TestUnaryMinusBindsLooserThanPow(t *testing.T) {
	// -2^2 == -(2^2) == -4, the usual math convention.
	ast, err := Parse("-2^2")
	require.NoError(t, err)
	got, err := ast.Eval(dcomplex.C{}, dcomplex.C{}, dcomplex.C{}, 0)
	require.NoError(t, err)
	assert.InDelta(t, -4, got.Re, 1e-12)
}

func TestImaginaryLiteral(t *testing.T) {
	ast, err := Parse("2i")
	require.NoError(t, err)
	got, err := ast.Eval(dcomplex.C{}, dcomplex.C{}, dcomplex.C{}, 0)
	require.NoError(t, err)
	assert.Equal(t, dcomplex.New(0, 2), got)
}

func TestUnknownIdentifierRejected(t *testing.T) {
	_, err := Parse("foo+z")
	assert.Error(t, err)
}

func TestUnknownFunctionRejected(t *testing.T) {
	_, err := Parse("bogus(z)")
	assert.Error(t, err)
}

func TestArityMismatchRejected(t *testing.T) {
	_, err := Parse("sin(z,c)")
	assert.Error(t, err)
}

func TestUnterminatedParenRejected(t *testing.T) {
	_, err := Parse("(z+c")
	assert.Error(t, err)
}

func TestDivisionByZeroIsEvalError(t *testing.T) {
	ast, err := Parse("1/z")
	require.NoError(t, err)
	_, err = ast.Eval(dcomplex.C{}, dcomplex.C{}, dcomplex.C{}, 0)
	assert.Error(t, err)
}

func TestEstimatePowerDefaultsToTwo(t *testing.T) {
	ast, err := Parse("sin(z)+c")
	require.NoError(t, err)
	assert.Equal(t, 2.0, ast.EstimatePower())
}

func TestEstimatePowerFindsExponent(t *testing.T) {
	ast, err := Parse("z^5+c")
	require.NoError(t, err)
	assert.Equal(t, 5.0, ast.EstimatePower())
}

func TestConstants(t *testing.T) {
	ast, err := Parse("pi")
	require.NoError(t, err)
	got, err := ast.Eval(dcomplex.C{}, dcomplex.C{}, dcomplex.C{}, 0)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi, got.Re, 1e-12)
}
