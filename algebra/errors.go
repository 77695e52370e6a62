// SPDX-License-Identifier: MIT

// Package algebra: sentinel errors.
// All messages are prefixed with "algebra: ". Match them with errors.Is.

package algebra

import (
	"errors"
	"fmt"
)

var (
	// ErrIncorrectSet is matched by every IncorrectSetError.
	ErrIncorrectSet = errors.New("algebra: incorrect set")

	// ErrFieldCapability signals that a multiplicative inverse was required but
	// the scalar type (or the concrete value) has none.
	ErrFieldCapability = errors.New("algebra: no multiplicative inverse")

	// ErrDivisionByNull is returned by Inverse on the additive identity.
	// It also matches ErrFieldCapability.
	ErrDivisionByNull = fmt.Errorf("%w: division by null element", ErrFieldCapability)

	// ErrNotMeasurable is returned when a float64 projection is requested from
	// a scalar type that does not implement Measurable.
	ErrNotMeasurable = errors.New("algebra: scalar has no float64 projection")
)

// IncorrectSetError reports an operand that does not belong to the expected
// algebraic set, e.g. a complex literal offered where reals are required.
type IncorrectSetError struct {
	Want string // name of the expected set
	Got  string // name of the set the operand belongs to
}

func (e IncorrectSetError) Error() string {
	return fmt.Sprintf("algebra: incorrect set: expected %s, got %s", e.Want, e.Got)
}

// Is makes errors.Is(err, ErrIncorrectSet) true for any IncorrectSetError.
func (e IncorrectSetError) Is(target error) bool { return target == ErrIncorrectSet }
