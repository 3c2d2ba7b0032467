package fractal

import (
	"math"

	"github.com/cfdwalrus/deepfrac/dcomplex"
	"github.com/cfdwalrus/deepfrac/family"
)

// trapDistance returns z's distance to the trap shape t names, used by
// the per-iteration orbit-trap accumulation §4.G describes ("aggregate
// (minimum) distance over all iterations, using a fixed set of trap
// shapes"). TrapOff returns +Inf so it never wins a running minimum.
func trapDistance(t OrbitTrapParams, z dcomplex.C) float64 {
	d := z.Sub(t.Center)
	switch t.Kind {
	case family.TrapPoint:
		return d.Abs()
	case family.TrapLine:
		return math.Abs(d.Im)
	case family.TrapCross:
		return math.Min(math.Abs(d.Re), math.Abs(d.Im))
	case family.TrapCircle:
		return math.Abs(d.Abs() - t.Size)
	case family.TrapSquare:
		return math.Max(math.Abs(d.Re), math.Abs(d.Im)) - t.Size
	case family.TrapRing:
		return math.Abs(d.Abs() - t.Size)
	default:
		return math.Inf(1)
	}
}

// trapAccumulator tracks the running minimum orbit-trap distance across an
// orbit's iterations.
type trapAccumulator struct {
	params  OrbitTrapParams
	enabled bool
	best    float64
}

func newTrapAccumulator(params OrbitTrapParams) trapAccumulator {
	return trapAccumulator{params: params, enabled: params.Kind != family.TrapOff, best: math.Inf(1)}
}

func (a *trapAccumulator) observe(z dcomplex.C) {
	if !a.enabled {
		return
	}
	if d := trapDistance(a.params, z); d < a.best {
		a.best = d
	}
}

func (a *trapAccumulator) result() float64 {
	if !a.enabled || math.IsInf(a.best, 1) {
		return 0
	}
	return a.best
}

// stripeAccumulator tracks the running stripe-average signal §4.G defines
// as 0.5*sin(density*arg(zn))+0.5 averaged over iterations.
type stripeAccumulator struct {
	density float64
	enabled bool
	sum     float64
	count   int
}

func newStripeAccumulator(density float64, enabled bool) stripeAccumulator {
	return stripeAccumulator{density: density, enabled: enabled}
}

func (a *stripeAccumulator) observe(z dcomplex.C) {
	if !a.enabled {
		return
	}
	a.sum += 0.5*math.Sin(a.density*z.Arg()) + 0.5
	a.count++
}

func (a *stripeAccumulator) result() float64 {
	if !a.enabled || a.count == 0 {
		return 0
	}
	return a.sum / float64(a.count)
}

// distanceEstimate computes the standard escape-time distance estimate
// |z|*log|z|/|z'| from the final iterate and its derivative.
func distanceEstimate(z, derivative dcomplex.C) float64 {
	zAbs := z.Abs()
	dAbs := derivative.Abs()
	if zAbs == 0 || dAbs == 0 {
		return 0
	}
	return zAbs * math.Log(zAbs) / dAbs
}

// smoothIterationEscaped computes the continuous escape-count extension
// §4.G's "Smooth iteration" prescribes: n + 1 - log(log|z|/log(bailout)) /
// log(power).
func smoothIterationEscaped(n int, finalMag2, bailout, power float64) float64 {
	z := math.Sqrt(finalMag2)
	if z <= 1 || bailout <= 1 {
		return float64(n)
	}
	return float64(n) + 1 - math.Log(math.Log(z)/math.Log(bailout))/math.Log(power)
}
