package transforms

import "strconv"

// Endpoint designates one side of an open interval handed to As.
// The set of implementations is closed: Bound (an infinite endpoint) and
// Finite (a finite one).
type Endpoint interface {
	isEndpoint()
}

// Bound marks an infinite interval endpoint. It exists only to select the
// interval topology at construction time and never participates in
// arithmetic; use the Inf and NegInf sentinels rather than building one.
type Bound struct {
	positive bool
}

// Inf and NegInf are the infinite interval endpoints accepted by As.
var (
	Inf    = Bound{positive: true}
	NegInf = Bound{positive: false}
)

// Negate returns the opposite infinity.
func (b Bound) Negate() Bound {
	return Bound{positive: !b.positive}
}

// String renders the endpoint as "∞" or "-∞".
func (b Bound) String() string {
	if b.positive {
		return "∞"
	}

	return "-∞"
}

func (Bound) isEndpoint() {}

// Finite is a finite interval endpoint.
type Finite float64

// String renders the endpoint value in shortest-round-trip form.
func (f Finite) String() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 64)
}

func (Finite) isEndpoint() {}
