package transforms

import "math"

// logistic returns 1/(1+exp(-x)), evaluated without overflow for large
// negative x.
func logistic(x float64) float64 {
	if x >= 0 {
		return 1 / (1 + math.Exp(-x))
	}

	e := math.Exp(x)

	return e / (1 + e)
}

// log1pexp returns log(1+exp(x)), the softplus of x, without overflow for
// large positive x and without cancellation for large negative x.
func log1pexp(x float64) float64 {
	if x > 0 {
		return x + math.Log1p(math.Exp(-x))
	}

	return math.Log1p(math.Exp(x))
}

// logit returns log(z/(1-z)) for z in (0, 1). The two-term form keeps
// precision near both ends of the interval.
func logit(z float64) float64 {
	return math.Log(z) - math.Log1p(-z)
}
