// Package series builds the per-reference Taylor table that lets the hybrid
// iterator (package hybrid) skip a validated prefix of the perturbation
// recurrence (component E). There is no teacher precedent for this in
// gofrac — the series/skip machinery is the one piece of this engine with
// no analogue in the retrieval pack's fractal code — so the Horner
// evaluation and binary-search skip-finding below are grounded directly in
// spec.md §4.E's prose rather than an existing file; DESIGN.md records this.
package series

import (
	"math"

	"github.com/cfdwalrus/deepfrac/dcomplex"
	"github.com/cfdwalrus/deepfrac/family"
	"github.com/cfdwalrus/deepfrac/fracerr"
	"github.com/cfdwalrus/deepfrac/reforbit"
)

// DefaultErrorTolerance and DefaultKappa are the constants named in §4.E.
const (
	DefaultErrorTolerance = 1e-6
	DefaultKappa          = 0.1
)

// Coefficients is the two-dimensional A[n][k] table of §3: A[n] holds K
// entries indexed 0..K-1 for k=1..K. Row 0 is the family's initial
// condition; every other row is derived from the one before it.
type Coefficients struct {
	Order  int
	A      [][]dcomplex.C
	family family.ID
}

// Build computes the full coefficient table for a completed reference orbit.
//
// Only families with series support are accepted (Mandelbrot and Julia);
// Burning Ship, Tricorn and Phoenix are rejected. For Mandelbrot, whose
// per-pixel offset is an additive forcing term in c, row 0 is all-zero
// (delta_0 is identically zero: every pixel's orbit starts exactly at the
// family's natural initial condition, and only diverges once c starts to
// differ).
// Julia mode fixes c for the whole render and instead sweeps the *starting*
// z, so its per-pixel offset is a nonzero initial condition rather than a
// recurring forcing term; its row 0 is seeded A[0][1]=1 (the first-order
// sensitivity to the starting offset is exactly 1) with no further "+1" term
// injected at each step. This is the one place DEEPFRAC departs from the
// literal Mandelbrot-family recurrence text to keep Julia series-skippable.
func Build(ref *reforbit.ReferenceOrbit, fam family.ID, order int) (*Coefficients, error) {
	if ref == nil || ref.Length == 0 {
		return nil, fracerr.NotInitialized("series: Build called with an uncomputed reference orbit")
	}
	if !family.CapabilitiesFor(fam).SupportsSeriesApproximation {
		return nil, fracerr.Unsupported(fam.String(), "series approximation")
	}
	if order < 1 {
		return nil, fracerr.Configuration("series: order must be positive, got %d", order)
	}

	c := &Coefficients{Order: order, family: fam, A: make([][]dcomplex.C, ref.Length)}
	for n := range c.A {
		c.A[n] = make([]dcomplex.C, order)
	}
	if fam == family.Julia {
		c.A[0][0] = dcomplex.One
	}

	for n := 0; n < ref.Length-1; n++ {
		row := c.A[n]
		next := c.A[n+1]
		twoZn := ref.TwoZ[n]

		if fam == family.Julia {
			next[0] = twoZn.Mul(row[0])
		} else {
			next[0] = twoZn.Mul(row[0]).Add(dcomplex.One)
		}

		for k := 2; k <= order; k++ {
			sum := dcomplex.Zero
			for j := 1; j < k; j++ {
				sum = sum.Add(row[j-1].Mul(row[k-j-1]))
			}
			next[k-1] = twoZn.Mul(row[k-1]).Add(sum)
		}
	}
	return c, nil
}

// Evaluate computes delta_n(deltaC) = sum_{k=1..Order} A[n][k] deltaC^k via
// Horner's method with the innermost factor A[n][Order], per §4.E.
func (c *Coefficients) Evaluate(n int, deltaC dcomplex.C) dcomplex.C {
	row := c.A[n]
	k := len(row)
	if k == 0 {
		return dcomplex.Zero
	}
	acc := row[k-1]
	for i := k - 2; i >= 0; i-- {
		acc = acc.Mul(deltaC).Add(row[i])
	}
	return acc.Mul(deltaC)
}

// Validity is the outcome of the three-part check §4.E requires before a
// skip point n can be trusted for a given pixel offset deltaC.
type Validity struct {
	Valid   bool
	Delta   dcomplex.C
	Z       dcomplex.C
	Escaped bool
}

// Check runs the three validity conditions of §4.E at row n for deltaC.
func (c *Coefficients) Check(ref *reforbit.ReferenceOrbit, n int, deltaC dcomplex.C, errorTolerance float64) Validity {
	row := c.A[n]
	topCoeff := row[len(row)-1]
	errorProxy := topCoeff.Abs() * math.Pow(deltaC.Abs(), float64(len(row)+1))

	delta := c.Evaluate(n, deltaC)
	zn := ref.Z[n]
	// <= rather than a strict <: at n=0 for every family whose natural
	// initial condition is zero, Zn and delta are both exactly zero (the
	// row-0 coefficients are the all-zero invariant of §3), so a strict
	// inequality would wrongly reject the trivial, exact n=0 skip point.
	boundedByReference := delta.Mag2() <= DefaultKappa*DefaultKappa*zn.Mag2()

	z := zn.Add(delta)
	escaped := z.Mag2() > ref.BailoutSquared

	valid := errorProxy <= errorTolerance && boundedByReference && !escaped
	return Validity{Valid: valid, Delta: delta, Z: z, Escaped: escaped}
}

// FindSkip binary searches n in [0, ref.Length) for the largest n whose
// validity holds for deltaC, returning that n, the delta and z it implies,
// and whether the candidate point had already escaped (signalling the
// hybrid iterator should instead binary search for the exact escape
// iteration rather than resume perturbation from here).
func (c *Coefficients) FindSkip(ref *reforbit.ReferenceOrbit, deltaC dcomplex.C, errorTolerance float64, stats *Stats) (skipN int, result Validity) {
	lo, hi := 0, ref.Length-1
	bestN := 0
	best := c.Check(ref, 0, deltaC, errorTolerance)
	stats.recordEvaluation()

	for lo <= hi {
		mid := lo + (hi-lo)/2
		v := c.Check(ref, mid, deltaC, errorTolerance)
		stats.recordEvaluation()
		if v.Valid {
			bestN = mid
			best = v
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	stats.recordSkip(bestN)
	return bestN, best
}

// FindEscapeIteration binary searches [lo, hi] for the smallest n at which
// the series-evaluated z has escaped, used by the hybrid iterator's step 2
// when FindSkip's candidate point had already escaped.
func (c *Coefficients) FindEscapeIteration(ref *reforbit.ReferenceOrbit, deltaC dcomplex.C, lo, hi int) int {
	for lo < hi {
		mid := lo + (hi-lo)/2
		z := ref.Z[mid].Add(c.Evaluate(mid, deltaC))
		if z.Mag2() > ref.BailoutSquared {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

// AdaptiveOrder selects K per §4.E: base order clamped to [8, maxOrder] from
// the zoom depth, reduced for large views, reduced further if the estimated
// O(K^2*length) coefficient cost would exceed budgetOps.
func AdaptiveOrder(zoom float64, maxOrder, viewWidth, viewHeight, refLength int, budgetOps int64) int {
	if maxOrder < 8 {
		maxOrder = 8
	}
	base := int(2 * math.Log10(math.Max(zoom, 1)))
	if base < 8 {
		base = 8
	}
	if base > maxOrder {
		base = maxOrder
	}

	const largeView = 1920 * 1080
	if viewWidth*viewHeight > largeView {
		base = base * 3 / 4
		if base < 8 {
			base = 8
		}
	}

	for base > 8 {
		cost := int64(base) * int64(base) * int64(refLength)
		if cost <= budgetOps {
			break
		}
		base--
	}
	return base
}
