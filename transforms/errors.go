package transforms

import "errors"

// ErrNotAnInterval is returned by As when the two endpoints do not describe a
// non-empty open interval.
var ErrNotAnInterval = errors.New("must be an interval")

// ErrNonPositiveScale is returned when a transform is constructed with a
// scale that is zero or negative.
var ErrNonPositiveScale = errors.New("scale must be positive")

// ErrScaleNotApplicable is returned by As when WithScale is supplied for an
// interval whose scale is determined by its endpoints.
var ErrScaleNotApplicable = errors.New("scale applies only to half-infinite intervals")

// ErrOutOfDomain is returned by Inverse and InverseWithLogJacobian when the
// supplied value lies outside the transform's open image interval. Out-of-domain
// values are never clamped.
var ErrOutOfDomain = errors.New("value outside transform domain")
