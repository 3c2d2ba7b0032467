// Package family defines the closed set of fractal families the engine
// supports and the capability flags each one advertises. gofrac modeled each
// family as its own struct implementing a shared Fraccer interface
// (Mandelbrot, JuliaQ, JuliaR, Polynomiograph in frac.go); design note 9
// replaces that open interface hierarchy with a closed sum type plus an
// explicit capability set so the hot pixel routine in package fractal stays
// monomorphic per family instead of dispatching through a vtable.
package family

// ID names one of the fractal families the dispatcher knows how to run.
type ID int

const (
	Mandelbrot ID = iota
	Julia
	BurningShip
	Tricorn
	Phoenix
	Newton
	Custom
)

func (id ID) String() string {
	switch id {
	case Mandelbrot:
		return "mandelbrot"
	case Julia:
		return "julia"
	case BurningShip:
		return "burning-ship"
	case Tricorn:
		return "tricorn"
	case Phoenix:
		return "phoenix"
	case Newton:
		return "newton"
	case Custom:
		return "custom"
	default:
		return "unknown"
	}
}

// ParseID maps an external id string (§6) to an ID.
func ParseID(s string) (ID, bool) {
	switch s {
	case "mandelbrot":
		return Mandelbrot, true
	case "julia":
		return Julia, true
	case "burning-ship":
		return BurningShip, true
	case "tricorn":
		return Tricorn, true
	case "phoenix":
		return Phoenix, true
	case "newton":
		return Newton, true
	case "custom":
		return Custom, true
	default:
		return 0, false
	}
}

// Capabilities is the trait/capability set design note 9 assigns each
// family, replacing the source's dynamic dispatch with a flat struct the
// dispatcher can branch on.
type Capabilities struct {
	SupportsPerturbation        bool
	SupportsSeriesApproximation bool
	SupportsArbitraryPrecision  bool
	HasInterior                 bool
}

// CapabilitiesFor returns the fixed capability set for id. Newton has no
// well-defined reference-orbit/perturbation story (its recurrence divides by
// f'(z), which is not amenable to a single shared reference orbit), and
// Custom formulas cannot be analyzed for series validity ahead of time, so
// neither supports perturbation or series: Newton runs through the plain
// double and arbitrary-precision loops, Custom through the plain double
// loop only (see below).
func CapabilitiesFor(id ID) Capabilities {
	switch id {
	case Mandelbrot:
		return Capabilities{true, true, true, true}
	case Julia:
		return Capabilities{true, true, true, false}
	case BurningShip:
		return Capabilities{true, false, true, false}
	case Tricorn:
		// Conjugation in the Tricorn recurrence makes the delta map
		// anti-holomorphic in deltaC, so a Taylor series in deltaC
		// cannot represent it; perturbation still applies directly.
		return Capabilities{true, false, true, false}
	case Phoenix:
		return Capabilities{true, false, true, false}
	case Newton:
		return Capabilities{false, false, true, false}
	case Custom:
		// The formula evaluator (package formula) is specified to walk
		// its AST over dcomplex.C (component B) only, not BigComplex;
		// there is no arbitrary-precision evaluation path for a user
		// formula, so this capability is false even though the plain
		// double loop always works.
		return Capabilities{false, false, false, false}
	default:
		return Capabilities{}
	}
}

// BurningShipVariant selects among the sign-masking table of §4.G.
type BurningShipVariant int

const (
	Standard BurningShipVariant = iota
	PartialRe
	PartialIm
	Buffalo
	Celtic
)

// OrbitTrapKind enumerates the trap shapes FractalParams.OrbitTrap can name.
type OrbitTrapKind int

const (
	TrapOff OrbitTrapKind = iota
	TrapPoint
	TrapLine
	TrapCross
	TrapCircle
	TrapSquare
	TrapRing
)

// PrecisionMode selects which numeric path the dispatcher runs.
type PrecisionMode int

const (
	PrecisionDouble PrecisionMode = iota
	PrecisionArbitrary
	PrecisionPerturbation
)
