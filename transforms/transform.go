package transforms

// Transform is a bijection between the unconstrained real line and an open
// subset of it. The set of implementations is closed: Identity, ShiftedExp,
// and ScaledShiftedLogistic. All implementations are immutable value objects
// whose methods are pure, so a Transform is safe for unsynchronized
// concurrent use.
type Transform interface {
	// Forward maps an unconstrained value into the transform's image
	// interval.
	Forward(x float64) float64

	// ForwardWithLogJacobian returns Forward(x) together with the logarithm
	// of the absolute derivative of the forward map at x.
	ForwardWithLogJacobian(x float64) (y, logJacobian float64)

	// Inverse maps a value from the image interval back to the
	// unconstrained line. It returns an error wrapping ErrOutOfDomain when
	// y lies outside the open image interval; the interval endpoints
	// themselves are outside.
	Inverse(y float64) (float64, error)

	// InverseWithLogJacobian returns Inverse(y) together with the logarithm
	// of the absolute derivative of the inverse map at y. Domain validation
	// is identical to Inverse.
	InverseWithLogJacobian(y float64) (x, logJacobian float64, err error)

	// Dimension reports how many scalar coordinates the transform consumes.
	// Scalar transforms always report 1; composing layers use it to lay out
	// their input vectors.
	Dimension() int

	// String renders the transform as the dispatcher call that produces it,
	// e.g. "As(0, ∞; scale=10)".
	String() string
}

// scalarDimension is the coordinate count of every scalar transform.
const scalarDimension = 1
