package engine

import (
	"fmt"
	"math"

	"github.com/blaisecz/shift-coach/internal/domain"
)

// InputError reports a caller contract violation on a single input field.
// It unwraps to domain.ErrInvalidInput.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("engine: invalid %s: %s", e.Field, e.Reason)
}

func (e *InputError) Unwrap() error {
	return domain.ErrInvalidInput
}

func checkFinite(field string, v float64) error {
	if math.IsNaN(v) {
		return &InputError{Field: field, Reason: "not a number"}
	}
	if math.IsInf(v, 0) {
		return &InputError{Field: field, Reason: "infinite"}
	}
	return nil
}

func checkFinitePtr(field string, v *float64) error {
	if v == nil {
		return nil
	}
	return checkFinite(field, *v)
}

func checkShift(field string, s domain.ShiftType) error {
	if !s.Valid() {
		return &InputError{Field: field, Reason: fmt.Sprintf("unknown shift type %q", s)}
	}
	return nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

// round matches half-up rounding so .5 always moves toward +Inf.
func round(v float64) float64 {
	return math.Floor(v + 0.5)
}
