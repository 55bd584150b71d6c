package transforms

// Identity is the transform for the whole real line. The zero value is ready
// to use.
type Identity struct{}

var _ Transform = Identity{}

// NewIdentity returns the identity transform.
func NewIdentity() Identity {
	return Identity{}
}

// Forward returns x unchanged.
func (Identity) Forward(x float64) float64 {
	return x
}

// ForwardWithLogJacobian returns x and an exactly zero log-Jacobian.
func (Identity) ForwardWithLogJacobian(x float64) (float64, float64) {
	return x, 0
}

// Inverse returns y unchanged. It never fails; the image is the whole line.
func (Identity) Inverse(y float64) (float64, error) {
	return y, nil
}

// InverseWithLogJacobian returns y and an exactly zero log-Jacobian. It never
// fails.
func (Identity) InverseWithLogJacobian(y float64) (float64, float64, error) {
	return y, 0, nil
}

// Dimension reports the single scalar coordinate the transform consumes.
func (Identity) Dimension() int {
	return scalarDimension
}

// String renders the dispatcher call producing the transform.
func (Identity) String() string {
	return "As(-∞, ∞)"
}
