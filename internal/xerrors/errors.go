// Package xerrors collects the small set of invariant-checking helpers
// used throughout octpoly, grounded on the Check/Assert family in
// dgraph's x package.
package xerrors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Check panics if err is non-nil, wrapping it with msg. Reserved for
// invariants that a caller cannot violate through the public API (an
// internal inconsistency, not a bad input), matching how the original
// implementation used Q_ASSERT for the same class of condition.
func Check(err error, msg string) {
	if err != nil {
		panic(errors.Wrap(err, msg))
	}
}

// AssertTrue panics with msg if cond is false.
func AssertTrue(cond bool, msg string) {
	if !cond {
		panic(msg)
	}
}

// Assertf panics with a formatted message if cond is false.
func Assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}

// Errorf builds a new error with a stack trace attached, for the cases
// where the failure is a legitimate runtime outcome (bad input, a
// tessellation that could not be resolved) rather than an internal
// invariant violation.
func Errorf(format string, args ...any) error {
	return errors.Errorf(format, args...)
}

// Wrapf attaches additional context to err while preserving its stack.
func Wrapf(err error, format string, args ...any) error {
	return errors.Wrapf(err, format, args...)
}
