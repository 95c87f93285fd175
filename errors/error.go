package errors

import (
	"fmt"
)

import (
	crdb "github.com/cockroachdb/errors"
)

// ErrOutOfRange marks every checked access outside a container's bounds:
// At past the end, Erase outside [begin, end), an initializer sequence too
// long for a fixed array.
var ErrOutOfRange = crdb.New("out of range")

// ErrAllocation marks allocation failures. Allocators panic with an error
// carrying this mark; it is not returned from container methods.
var ErrAllocation = crdb.New("allocation failed")

// Errorf returns an error with a stack trace attached.
func Errorf(format string, args ...interface{}) error {
	return crdb.Newf(format, args...)
}

func OutOfRangef(format string, args ...interface{}) error {
	return crdb.Wrapf(ErrOutOfRange, format, args...)
}

func AllocationFailedf(format string, args ...interface{}) error {
	return crdb.Wrapf(ErrAllocation, format, args...)
}

func IsOutOfRange(err error) bool {
	return crdb.Is(err, ErrOutOfRange)
}

func IsAllocation(err error) bool {
	return crdb.Is(err, ErrAllocation)
}

func Is(err, reference error) bool {
	return crdb.Is(err, reference)
}

func As(err error, target interface{}) bool {
	return crdb.As(err, target)
}

// Stack renders err followed by the stack traces attached to it.
func Stack(err error) string {
	return fmt.Sprintf("%+v", err)
}
