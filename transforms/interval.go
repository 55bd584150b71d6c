package transforms

import (
	"github.com/LerianStudio/lib-transforms/transforms/assert"
)

// Option configures As.
type Option func(*intervalConfig)

type intervalConfig struct {
	scale    float64
	scaleSet bool
}

// WithScale sets the scale of a half-infinite transform; the default is 1.
// As rejects it for bounded and unbounded intervals, whose scale is
// determined by the endpoints.
func WithScale(scale float64) Option {
	return func(cfg *intervalConfig) {
		cfg.scale = scale
		cfg.scaleSet = true
	}
}

// As selects and constructs the transform for the open interval (lo, hi):
//
//	As(NegInf, Inf)              -> Identity
//	As(Finite(a), Inf)           -> ShiftedExp onto (a, ∞)
//	As(NegInf, Finite(b))        -> ShiftedExp onto (-∞, b)
//	As(Finite(a), Finite(b))     -> ScaledShiftedLogistic onto (a, b), a < b
//
// Any other endpoint combination returns an error wrapping ErrNotAnInterval.
//
// Example:
//
//	t, err := transforms.As(transforms.Finite(0), transforms.Inf, transforms.WithScale(10))
//	if err != nil {
//	    return fmt.Errorf("build rate transform: %w", err)
//	}
func As(lo, hi Endpoint, opts ...Option) (Transform, error) {
	cfg := intervalConfig{scale: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	loBound, loInf := lo.(Bound)
	hiBound, hiInf := hi.(Bound)

	if _, ok := lo.(Finite); !ok && !loInf {
		return nil, assert.Violated(ErrNotAnInterval, "lower endpoint is missing", "lower", lo)
	}

	if _, ok := hi.(Finite); !ok && !hiInf {
		return nil, assert.Violated(ErrNotAnInterval, "upper endpoint is missing", "upper", hi)
	}

	if loInf && loBound.positive {
		return nil, assert.Violated(ErrNotAnInterval, "lower endpoint cannot be ∞", "lower", loBound, "upper", hi)
	}

	if hiInf && !hiBound.positive {
		return nil, assert.Violated(ErrNotAnInterval, "upper endpoint cannot be -∞", "lower", lo, "upper", hiBound)
	}

	switch {
	case loInf && hiInf:
		if cfg.scaleSet {
			return nil, assert.Violated(ErrScaleNotApplicable,
				"the whole real line has no scale", "scale", cfg.scale)
		}

		return Identity{}, nil

	case hiInf:
		return NewShiftedExp(true, float64(lo.(Finite)), cfg.scale)

	case loInf:
		return NewShiftedExp(false, float64(hi.(Finite)), cfg.scale)

	default:
		if cfg.scaleSet {
			return nil, assert.Violated(ErrScaleNotApplicable,
				"a bounded interval's scale is its width", "scale", cfg.scale)
		}

		left, right := float64(lo.(Finite)), float64(hi.(Finite))
		if left >= right {
			return nil, assert.Violated(ErrNotAnInterval,
				"endpoints must satisfy lower < upper", "lower", left, "upper", right)
		}

		return NewScaledShiftedLogistic(right-left, left)
	}
}
