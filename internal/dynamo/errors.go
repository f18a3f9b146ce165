package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for balance operations.
var (
	// ErrInvalidMass indicates a weight with a non-positive or non-finite mass.
	ErrInvalidMass = errors.New("dynamo: invalid mass (must be positive and finite)")

	// ErrInvalidSide indicates a side that is neither left nor right.
	ErrInvalidSide = errors.New("dynamo: invalid side")

	// ErrInvalidOffset indicates a placement offset at the pivot, past the arm, or not finite.
	ErrInvalidOffset = errors.New("dynamo: invalid placement offset")

	// ErrEmptyHistory is returned by Simulation.UndoLast. The registry itself
	// treats undo on an empty history as a no-op.
	ErrEmptyHistory = errors.New("dynamo: nothing to undo")

	// ErrConfiguration indicates a rejected construction parameter.
	ErrConfiguration = errors.New("dynamo: invalid configuration")

	// ErrUnstable indicates the beam state became NaN or Inf.
	ErrUnstable = errors.New("dynamo: simulation unstable (state diverged)")

	// ErrParameterBounds indicates a tunable parameter value is outside valid range.
	ErrParameterBounds = errors.New("dynamo: parameter out of valid bounds")

	// ErrUnknownParam indicates a tunable parameter name that does not exist.
	ErrUnknownParam = errors.New("dynamo: unknown parameter")
)

// ConfigError names the field that failed validation.
type ConfigError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("dynamo: invalid configuration: %s=%g: %s", e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrConfiguration
}

// SimulationError wraps an error with simulation context.
type SimulationError struct {
	Step    int
	Time    float64
	State   State
	Wrapped error
}

func (e *SimulationError) Error() string {
	return e.Wrapped.Error()
}

func (e *SimulationError) Unwrap() error {
	return e.Wrapped
}
