package formula

import (
	"math"

	"github.com/cfdwalrus/deepfrac/dcomplex"
	"github.com/cfdwalrus/deepfrac/fracerr"
)

// constantValues is the closed constant set §4.H names, looked up by a
// NodeVariable whose name is not one of the five environment bindings.
var constantValues = map[string]float64{
	"pi":  math.Pi,
	"e":   math.E,
	"phi": (1 + math.Sqrt5) / 2,
	"tau": 2 * math.Pi,
}

// complexFromImaginary builds the pure-imaginary literal a lexed "...i"
// token denotes (e.g. "2i" -> 0+2i).
func complexFromImaginary(im float64) dcomplex.C { return dcomplex.C{Im: im} }

// env is the read-only evaluation environment §4.H names: {z, c, p, n, i}
// plus the constant set above.
type env struct {
	z, c, p dcomplex.C
	n       int
}

func (e env) lookup(name string) (dcomplex.C, bool) {
	switch name {
	case "z":
		return e.z, true
	case "c":
		return e.c, true
	case "p":
		return e.p, true
	case "n":
		return dcomplex.New(float64(e.n), 0), true
	case "i":
		return dcomplex.C{Re: 0, Im: 1}, true
	}
	if v, ok := constantValues[name]; ok {
		return dcomplex.New(v, 0), true
	}
	return dcomplex.C{}, false
}

// evalNode walks node against env, producing an EvalError on division by
// zero or a non-finite intermediate result rather than propagating NaN
// through the rest of the render (§4.H, §7).
func evalNode(node *Node, e env) (dcomplex.C, error) {
	var result dcomplex.C
	var err error

	switch node.Kind {
	case NodeNumber:
		result = dcomplex.New(node.NumberValue, 0)
	case NodeComplex:
		result = node.ComplexValue
	case NodeVariable:
		v, ok := e.lookup(node.Name)
		if !ok {
			return dcomplex.C{}, fracerr.NewEvalError("unknown identifier %q", node.Name)
		}
		result = v
	case NodeUnary:
		operand, uerr := evalNode(node.Operand, e)
		if uerr != nil {
			return dcomplex.C{}, uerr
		}
		if node.Op == '-' {
			result = operand.Neg()
		} else {
			result = operand
		}
	case NodeBinary:
		result, err = evalBinary(node, e)
		if err != nil {
			return dcomplex.C{}, err
		}
	case NodeCall:
		arg, aerr := evalNode(node.Args[0], e)
		if aerr != nil {
			return dcomplex.C{}, aerr
		}
		result, err = evalCall(node.Name, arg)
		if err != nil {
			return dcomplex.C{}, err
		}
	default:
		return dcomplex.C{}, fracerr.NewEvalError("malformed AST node")
	}

	if !result.IsFinite() {
		return dcomplex.C{}, fracerr.NewEvalError("non-finite result")
	}
	return result, nil
}

func evalBinary(node *Node, e env) (dcomplex.C, error) {
	left, err := evalNode(node.Left, e)
	if err != nil {
		return dcomplex.C{}, err
	}
	right, err := evalNode(node.Right, e)
	if err != nil {
		return dcomplex.C{}, err
	}

	switch node.Op {
	case '+':
		return left.Add(right), nil
	case '-':
		return left.Sub(right), nil
	case '*':
		return left.Mul(right), nil
	case '/':
		if right == (dcomplex.C{}) {
			return dcomplex.C{}, fracerr.NewEvalError("division by zero")
		}
		return left.Div(right), nil
	case '^':
		return evalPow(left, right)
	default:
		return dcomplex.C{}, fracerr.NewEvalError("unknown operator %q", node.Op)
	}
}

// evalPow dispatches '^' per §4.H: integer pow for an integer real-valued
// exponent, real pow for a real non-integer exponent, complex pow
// (z^w = exp(w*log z)) otherwise.
func evalPow(base, exponent dcomplex.C) (dcomplex.C, error) {
	if exponent.Im == 0 {
		if exponent.Re == math.Trunc(exponent.Re) {
			return base.Pow(int(exponent.Re)), nil
		}
		if base == (dcomplex.C{}) {
			return dcomplex.C{}, fracerr.NewEvalError("real power of zero with non-integer exponent")
		}
		return base.PowReal(exponent.Re), nil
	}
	if base == (dcomplex.C{}) {
		return dcomplex.C{}, fracerr.NewEvalError("complex power of zero")
	}
	return base.PowComplex(exponent), nil
}

func evalCall(name string, z dcomplex.C) (dcomplex.C, error) {
	switch name {
	case "sin":
		return z.Sin(), nil
	case "cos":
		return z.Cos(), nil
	case "tan":
		return z.Tan(), nil
	case "cot":
		return dcomplex.One.Div(z.Tan()), nil
	case "sec":
		return dcomplex.One.Div(z.Cos()), nil
	case "csc":
		return dcomplex.One.Div(z.Sin()), nil
	case "asin":
		return z.Asin(), nil
	case "acos":
		return z.Acos(), nil
	case "atan":
		return z.Atan(), nil
	case "sinh":
		return z.Sinh(), nil
	case "cosh":
		return z.Cosh(), nil
	case "tanh":
		return z.Tanh(), nil
	case "asinh":
		return z.Asinh(), nil
	case "acosh":
		return z.Acosh(), nil
	case "atanh":
		return z.Atanh(), nil
	case "exp":
		return z.Exp(), nil
	case "log", "ln":
		if z == (dcomplex.C{}) {
			return dcomplex.C{}, fracerr.NewEvalError("log of zero")
		}
		return z.Log(), nil
	case "log10":
		if z == (dcomplex.C{}) {
			return dcomplex.C{}, fracerr.NewEvalError("log10 of zero")
		}
		return z.Log().Scale(1 / math.Log(10)), nil
	case "log2":
		if z == (dcomplex.C{}) {
			return dcomplex.C{}, fracerr.NewEvalError("log2 of zero")
		}
		return z.Log().Scale(1 / math.Log(2)), nil
	case "sqrt":
		return z.Sqrt(), nil
	case "cbrt":
		return z.Cbrt(), nil
	case "abs":
		return dcomplex.New(z.Abs(), 0), nil
	case "arg":
		return dcomplex.New(z.Arg(), 0), nil
	case "conj":
		return z.Conj(), nil
	case "real", "re":
		return dcomplex.New(z.Re, 0), nil
	case "imag", "im":
		return dcomplex.New(z.Im, 0), nil
	case "norm":
		return dcomplex.New(z.Mag2(), 0), nil
	case "floor":
		return dcomplex.New(math.Floor(z.Re), math.Floor(z.Im)), nil
	case "ceil":
		return dcomplex.New(math.Ceil(z.Re), math.Ceil(z.Im)), nil
	case "round":
		return dcomplex.New(math.Round(z.Re), math.Round(z.Im)), nil
	case "frac":
		return dcomplex.New(z.Re-math.Trunc(z.Re), z.Im-math.Trunc(z.Im)), nil
	case "sign":
		if z == (dcomplex.C{}) {
			return dcomplex.C{}, nil
		}
		return z.Scale(1 / z.Abs()), nil
	default:
		return dcomplex.C{}, fracerr.NewEvalError("unknown function %q", name)
	}
}
