package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for engine operations.
var (
	// ErrInvalidTick indicates a non-positive tick duration or a multiplier
	// outside the configured bounds.
	ErrInvalidTick = errors.New("dynamo: invalid tick")

	// ErrInvalidConfig indicates an engine configuration that cannot run.
	ErrInvalidConfig = errors.New("dynamo: invalid engine config")

	// ErrNegativeCount indicates an attempt to seed a negative population.
	ErrNegativeCount = errors.New("dynamo: negative population count")

	// ErrUnknownSpecies indicates a population entry for an unregistered species.
	ErrUnknownSpecies = errors.New("dynamo: unknown species")

	// ErrNilState indicates a step on a nil state.
	ErrNilState = errors.New("dynamo: nil state")
)

// InvariantViolation is panicked when a count would drop below zero. Every
// decrement in the engine is guarded, so this is a programming defect and is
// never returned as an error.
type InvariantViolation struct {
	Species string
	Count   int64
	Delta   int64
}

func (e InvariantViolation) Error() string {
	return fmt.Sprintf("dynamo: invariant violation: %s count %d cannot drop by %d", e.Species, e.Count, e.Delta)
}

// TickError wraps a failed step with its position in a run.
type TickError struct {
	Tick    int64
	Time    float64
	Wrapped error
}

func (e *TickError) Error() string {
	return fmt.Sprintf("tick %d (t=%.4g): %v", e.Tick, e.Time, e.Wrapped)
}

func (e *TickError) Unwrap() error {
	return e.Wrapped
}
