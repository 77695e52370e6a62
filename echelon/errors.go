// SPDX-License-Identifier: MIT
// Package echelon: sentinel errors and typed row-index error.

package echelon

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRowOperation is returned by the RowOperation constructors for a
	// null scale, identical from/onto rows, or a negative row index.
	ErrInvalidRowOperation = errors.New("echelon: invalid row operation")

	// ErrIncompatibleRowOperation is matched by RowIndexError: the operation
	// references a row the target matrix does not have.
	ErrIncompatibleRowOperation = errors.New("echelon: incompatible row operation")

	// ErrNoProgress is returned when a reduction exceeds its step budget (see WithMaxSteps).
	ErrNoProgress = errors.New("echelon: step limit exceeded")

	// ErrInconsistent is returned by Solve when the augmented system has no solution.
	ErrInconsistent = errors.New("echelon: inconsistent system")

	// ErrUnderdetermined is returned by Solve when the system has free variables.
	ErrUnderdetermined = errors.New("echelon: underdetermined system")
)

// RowIndexError reports a row operation applied to a matrix that is too small.
type RowIndexError struct {
	Op     string // rendered operation, e.g. "R1 <-> R4"
	Row    int    // offending zero-based row index
	Height int    // rows in the target matrix
}

func (e RowIndexError) Error() string {
	return fmt.Sprintf("echelon: %s references row %d of a %d-row matrix", e.Op, e.Row, e.Height)
}

// Is makes errors.Is(err, ErrIncompatibleRowOperation) succeed.
func (e RowIndexError) Is(target error) bool { return target == ErrIncompatibleRowOperation }

// echelonErrorf wraps err with an operation tag.
func echelonErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
