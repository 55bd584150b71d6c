package assert

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
)

// Error represents a violated construction invariant with formatted context.
type Error struct {
	Sentinel error
	Message  string
	Details  string
}

// Error formats the sentinel, the message, and the key=value detail lines.
func (e *Error) Error() string {
	if e == nil {
		return "invariant violated"
	}

	var sb strings.Builder

	if e.Sentinel != nil {
		sb.WriteString(e.Sentinel.Error())
	} else {
		sb.WriteString("invariant violated")
	}

	if e.Message != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Message)
	}

	if e.Details != "" {
		sb.WriteString("\n")
		sb.WriteString(e.Details)
	}

	return sb.String()
}

// Unwrap returns the sentinel so errors.Is matches at call sites.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.Sentinel
}

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(zap.NewNop())
}

// SetLogger routes violation logging to l. Passing nil restores the no-op
// logger. Safe to call concurrently with assertions.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}

	logger.Store(l)
}

// That returns nil when ok is true; otherwise it behaves like Violated.
//
// Example:
//
//	if err := assert.That(scale > 0, ErrNonPositiveScale, "scale must be positive", "scale", scale); err != nil {
//	    return nil, err
//	}
func That(ok bool, sentinel error, msg string, kv ...any) error {
	if ok {
		return nil
	}

	return Violated(sentinel, msg, kv...)
}

// Violated logs the violation and returns an *Error wrapping sentinel.
// kv are alternating key/value pairs rendered as indented detail lines.
func Violated(sentinel error, msg string, kv ...any) error {
	details := formatKeyValueLines(kv)

	logger.Load().Warn("invariant violated",
		zap.NamedError("invariant", sentinel),
		zap.String("message", msg),
		zap.String("details", details),
	)

	return &Error{Sentinel: sentinel, Message: msg, Details: details}
}

const maxValueLength = 200 // Truncate values longer than this

// truncateValue truncates long values for logging safety.
func truncateValue(v any) string {
	s := fmt.Sprintf("%v", v)
	if len(s) <= maxValueLength {
		return s
	}

	return s[:maxValueLength] + "... (truncated " + strconv.Itoa(len(s)-maxValueLength) + " chars)"
}

func formatKeyValueLines(kv []any) string {
	if len(kv) == 0 {
		return ""
	}

	var sb strings.Builder

	for i := 0; i < len(kv); i += 2 {
		if i > 0 {
			sb.WriteString("\n")
		}

		var value any
		if i+1 < len(kv) {
			value = kv[i+1]
		} else {
			value = "MISSING_VALUE"
		}

		fmt.Fprintf(&sb, "    %v=%v", kv[i], truncateValue(value))
	}

	return sb.String()
}
