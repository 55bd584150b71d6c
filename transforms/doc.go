// Package transforms provides bijective maps between an unconstrained real
// scalar and a constrained open domain (a bounded interval, a half-line, or
// the whole real line), together with the log-Jacobian of each map at a point.
//
// Transforms let optimization and sampling code work in unconstrained
// coordinates while model parameters stay in their natural domain, with the
// log-Jacobian correcting densities under the change of variables.
//
// Typical usage:
//
//	t, err := transforms.As(transforms.Finite(0), transforms.Inf)
//	if err != nil {
//	    return fmt.Errorf("build variance transform: %w", err)
//	}
//
//	variance, logj := t.ForwardWithLogJacobian(x)
//
// Every transform is an immutable value object and every operation is a pure
// computation, so transforms are safe for unsynchronized concurrent use.
//
// The working precision is float64 throughout. Entry points that accept other
// numeric representations (AsDecimal, FiniteDecimal) convert to float64 on the
// way in; digits beyond float64 precision are rounded.
package transforms
