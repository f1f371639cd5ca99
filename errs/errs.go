// Package errs defines the failure taxonomy shared by every stattools package.
//
// Every precondition violation is reported as an *Error whose Kind is one of
// the sentinels below, so callers can tell bad input shape, degenerate
// statistics and out-of-order calls apart with errors.Is:
//
//	if _, err := hypothesis.TTest(a, b); errors.Is(err, errs.ErrDegenerateInput) {
//	    // zero pooled variance
//	}
package errs

import (
	"errors"
	"fmt"
)

// Sentinel error kinds.
var (
	// ErrInvalidArgument is returned for unsupported strategy names,
	// dimension or sample-count mismatches and non-positive degrees of freedom.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDegenerateInput is returned when a statistic is undefined for the
	// data, e.g. zero variance, an all-NaN column or too few groups.
	ErrDegenerateInput = errors.New("degenerate input")

	// ErrNotFitted is returned when a model is used before Fit.
	ErrNotFitted = errors.New("model not fitted")
)

// Error describes a failed operation.
type Error struct {
	// Op is the operation that failed, e.g. "hypothesis.TTest".
	Op string

	// Kind is one of the sentinel errors.
	Kind error

	// Detail is a human readable description of the offending input.
	Detail string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %s", e.Op, e.Kind, e.Detail)
}

// Unwrap returns the error kind for errors.Is support.
func (e *Error) Unwrap() error {
	return e.Kind
}

// Invalid returns an ErrInvalidArgument failure for op.
func Invalid(op, format string, args ...any) error {
	return &Error{Op: op, Kind: ErrInvalidArgument, Detail: fmt.Sprintf(format, args...)}
}

// Degenerate returns an ErrDegenerateInput failure for op.
func Degenerate(op, format string, args ...any) error {
	return &Error{Op: op, Kind: ErrDegenerateInput, Detail: fmt.Sprintf(format, args...)}
}

// NotFitted returns an ErrNotFitted failure for op.
func NotFitted(op string) error {
	return &Error{Op: op, Kind: ErrNotFitted, Detail: "call Fit first"}
}
