package transforms

import (
	"fmt"
	"math"

	"github.com/LerianStudio/lib-transforms/transforms/assert"
)

// ShiftedExp maps the real line onto an open half-line: (shift, ∞) when
// ascending, (-∞, shift) otherwise.
type ShiftedExp struct {
	shift     float64
	scale     float64
	ascending bool
}

var _ Transform = ShiftedExp{}

// NewShiftedExp builds a half-line transform with the given shift and scale.
// A larger scale stretches the unconstrained axis: the forward map is
// shift ± exp(x/scale). Returns an error wrapping ErrNonPositiveScale unless
// scale > 0.
func NewShiftedExp(ascending bool, shift, scale float64) (ShiftedExp, error) {
	if err := assert.That(scale > 0, ErrNonPositiveScale,
		"half-line transform needs a positive scale", "scale", scale); err != nil {
		return ShiftedExp{}, err
	}

	return ShiftedExp{shift: shift, scale: scale, ascending: ascending}, nil
}

// Forward maps x to shift+exp(x/scale) (ascending) or shift-exp(x/scale)
// (descending).
func (t ShiftedExp) Forward(x float64) float64 {
	e := math.Exp(x / t.scale)
	if t.ascending {
		return t.shift + e
	}

	return t.shift - e
}

// ForwardWithLogJacobian returns Forward(x) and x/scale - log(scale).
// The derivative of exp(x/scale) is exp(x/scale)/scale; the direction sign
// cancels under the absolute value.
func (t ShiftedExp) ForwardWithLogJacobian(x float64) (float64, float64) {
	return t.Forward(x), x/t.scale - math.Log(t.scale)
}

// Inverse maps y back to scale*log(±(y-shift)). Returns an error wrapping
// ErrOutOfDomain unless y lies strictly on the open side of the shift.
func (t ShiftedExp) Inverse(y float64) (float64, error) {
	offset, err := t.offset(y)
	if err != nil {
		return 0, err
	}

	return t.scale * math.Log(offset), nil
}

// InverseWithLogJacobian returns Inverse(y) and log(scale) - log|y-shift|,
// the log-Jacobian of the inverse map at y. Domain validation is identical
// to Inverse.
func (t ShiftedExp) InverseWithLogJacobian(y float64) (float64, float64, error) {
	offset, err := t.offset(y)
	if err != nil {
		return 0, 0, err
	}

	logOffset := math.Log(offset)

	return t.scale * logOffset, math.Log(t.scale) - logOffset, nil
}

// offset returns the distance from y to the shift, validating that y lies
// strictly inside the image half-line.
func (t ShiftedExp) offset(y float64) (float64, error) {
	if t.ascending {
		if y <= t.shift {
			return 0, fmt.Errorf("%w: %g is not in (%g, ∞)", ErrOutOfDomain, y, t.shift)
		}

		return y - t.shift, nil
	}

	if y >= t.shift {
		return 0, fmt.Errorf("%w: %g is not in (-∞, %g)", ErrOutOfDomain, y, t.shift)
	}

	return t.shift - y, nil
}

// Dimension reports the single scalar coordinate the transform consumes.
func (t ShiftedExp) Dimension() int {
	return scalarDimension
}

// String renders the dispatcher call producing the transform.
func (t ShiftedExp) String() string {
	span := fmt.Sprintf("%g, ∞", t.shift)
	if !t.ascending {
		span = fmt.Sprintf("-∞, %g", t.shift)
	}

	if t.scale != 1 {
		return fmt.Sprintf("As(%s; scale=%g)", span, t.scale)
	}

	return fmt.Sprintf("As(%s)", span)
}
