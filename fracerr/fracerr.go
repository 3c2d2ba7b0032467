// Package fracerr defines the error taxonomy shared by every deepfrac
// package: configuration, setup-order, parsing, evaluation, and arithmetic
// failures. Setup-time errors are wrapped with github.com/pkg/errors so
// callers can walk the cause chain; the per-pixel hot path never allocates
// one of these (see hybrid and fractal for how pathologies are reported
// instead, via a zeroed IterationResult).
package fracerr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel causes. Use errors.Is against these, or errors.Cause to unwrap
// a value produced by the constructors below.
var (
	// ErrConfiguration marks an invalid FractalParams value (bailout <= 0,
	// power < 2, unknown family id, precision < 1, ...).
	ErrConfiguration = errors.New("fracerr: invalid configuration")

	// ErrNotInitialized marks use of a component before its required setup
	// step (compute_reference_orbit before initialize_perturbation, and
	// so on).
	ErrNotInitialized = errors.New("fracerr: not initialized")

	// ErrArithmetic marks a BigDecimal operation that cannot produce a
	// result (division by zero, square root of a negative value).
	ErrArithmetic = errors.New("fracerr: arithmetic error")

	// ErrUnsupported marks a capability requested of a family that does
	// not offer it (e.g. perturbation for Newton).
	ErrUnsupported = errors.New("fracerr: unsupported capability")
)

// Configuration wraps ErrConfiguration with a message.
func Configuration(format string, args ...interface{}) error {
	return errors.Wrap(ErrConfiguration, fmt.Sprintf(format, args...))
}

// NotInitialized wraps ErrNotInitialized with a message naming the missing
// setup step.
func NotInitialized(format string, args ...interface{}) error {
	return errors.Wrap(ErrNotInitialized, fmt.Sprintf(format, args...))
}

// Arithmetic wraps ErrArithmetic with a message.
func Arithmetic(format string, args ...interface{}) error {
	return errors.Wrap(ErrArithmetic, fmt.Sprintf(format, args...))
}

// Unsupported wraps ErrUnsupported naming the family and capability.
func Unsupported(family, capability string) error {
	return errors.Wrapf(ErrUnsupported, "family %q does not support %s", family, capability)
}

// ParseError reports a lexing or parsing failure in a user formula, at a
// rune (character) offset into the source text.
type ParseError struct {
	Position int
	Message  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("fracerr: parse error at %d: %s", e.Position, e.Message)
}

// NewParseError constructs a ParseError at the given source position.
func NewParseError(position int, format string, args ...interface{}) *ParseError {
	return &ParseError{Position: position, Message: fmt.Sprintf(format, args...)}
}

// EvalError reports a runtime failure of the formula evaluator: division
// by zero, a non-finite intermediate result, or an unknown identifier
// reached only at evaluation time (e.g. inside an unreachable branch of a
// dynamically-typed helper).
type EvalError struct {
	Message string
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("fracerr: eval error: %s", e.Message)
}

// NewEvalError constructs an EvalError.
func NewEvalError(format string, args ...interface{}) *EvalError {
	return &EvalError{Message: fmt.Sprintf(format, args...)}
}
