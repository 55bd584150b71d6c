// Package assert reports construction-time invariant violations.
//
// Helpers return an *Error that unwraps to the caller-supplied sentinel, so
// call sites stay errors.Is-testable, and log each violation through a
// process-wide zap logger (a no-op unless SetLogger is called).
//
// These helpers are meant for cold paths such as constructors. Hot-path
// validation (per-value domain checks) should return plain wrapped errors
// instead, to keep logging out of tight numeric loops.
package assert
