package transforms

// The canonical transforms are built through the dispatcher once at package
// load; the accessors below hand out the shared immutable values.
var (
	wholeLine    = mustAs(NegInf, Inf)
	positiveHalf = mustAs(Finite(0), Inf)
	negativeHalf = mustAs(NegInf, Finite(0))
	unitInterval = mustAs(Finite(0), Finite(1))
)

// Real returns the identity transform over the whole real line.
func Real() Transform {
	return wholeLine
}

// Positive returns the transform onto the positive half-line (0, ∞).
func Positive() Transform {
	return positiveHalf
}

// Negative returns the transform onto the negative half-line (-∞, 0).
func Negative() Transform {
	return negativeHalf
}

// UnitInterval returns the transform onto the open unit interval (0, 1).
func UnitInterval() Transform {
	return unitInterval
}

func mustAs(lo, hi Endpoint, opts ...Option) Transform {
	t, err := As(lo, hi, opts...)
	if err != nil {
		panic(err)
	}

	return t
}
