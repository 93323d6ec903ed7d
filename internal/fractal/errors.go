package fractal

import (
	"errors"
	"fmt"
)

// Error kinds reported by generators and estimators. Match them with
// errors.Is; the concrete error usually carries more context.
var (
	// ErrInvalidParameter indicates an unknown method name, a negative count
	// or an otherwise unusable argument.
	ErrInvalidParameter = errors.New("levy: invalid parameter")

	// ErrInvalidProbability indicates IFS weights that are negative or do not
	// sum to a positive total.
	ErrInvalidProbability = errors.New("levy: invalid probability (weights must be non-negative with a positive sum)")

	// ErrMalformedProgram indicates an unbalanced branch stack during turtle
	// interpretation.
	ErrMalformedProgram = errors.New("levy: malformed program (unbalanced branch stack)")

	// ErrInsufficientData indicates too few points or scales for an estimate.
	ErrInsufficientData = errors.New("levy: insufficient data")

	// ErrDegenerateGeometry indicates a point set with zero span on an axis.
	ErrDegenerateGeometry = errors.New("levy: degenerate geometry (zero span)")
)

// ParamError wraps an error kind with the offending parameter.
type ParamError struct {
	Name    string
	Value   any
	Wrapped error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%v: %s = %v", e.Wrapped, e.Name, e.Value)
}

func (e *ParamError) Unwrap() error {
	return e.Wrapped
}

// InvalidParam is shorthand for a ParamError of kind ErrInvalidParameter.
func InvalidParam(name string, value any) error {
	return &ParamError{Name: name, Value: value, Wrapped: ErrInvalidParameter}
}

// ProgramError reports where interpretation of a symbol string failed.
type ProgramError struct {
	Offset  int
	Symbol  rune
	Wrapped error
}

func (e *ProgramError) Error() string {
	return fmt.Sprintf("%v: %q at offset %d", e.Wrapped, e.Symbol, e.Offset)
}

func (e *ProgramError) Unwrap() error {
	return e.Wrapped
}
