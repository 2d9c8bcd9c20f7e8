package plan

import (
	"errors"
	"fmt"
)

// InvalidInputError reports a structural violation in a request. It is
// raised by Request.Validate before the engine runs.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Reason)
}

// InfeasibleError reports that no constraint-satisfying plan exists for the
// requested load: either total capacity is insufficient or the load sits
// below a mandatory minimum-output floor.
type InfeasibleError struct {
	Load      float64
	Shortfall float64 // unmet MW when capacity ran out, 0 for floor violations
	Reason    string
}

func (e *InfeasibleError) Error() string {
	if e.Shortfall > 0 {
		return fmt.Sprintf("infeasible demand %g MW: %s (missing %.1f MW)", e.Load, e.Reason, e.Shortfall)
	}
	return fmt.Sprintf("infeasible demand %g MW: %s", e.Load, e.Reason)
}

// IsInfeasible reports whether err wraps an InfeasibleError.
func IsInfeasible(err error) bool {
	var ie *InfeasibleError
	return errors.As(err, &ie)
}

// IsInvalidInput reports whether err wraps an InvalidInputError.
func IsInvalidInput(err error) bool {
	var ve *InvalidInputError
	return errors.As(err, &ve)
}
