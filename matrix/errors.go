// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines the package-level sentinels and the typed
// IncompatibleOperationError. All kernels MUST return these (possibly wrapped)
// and tests MUST check them via errors.Is / errors.As. No error-returning
// kernel panics on user-triggered error conditions, a nil receiver included;
// the value-returning helpers (Transpose, Negative, Scale) require non-nil.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Kernels wrap
// sentinels with an operation tag via matrixErrorf; shape violations of
// square-only / addable / multipliable operations are reported as
// IncompatibleOperationError so callers can branch on the operation.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive
	// (or negative for vectors).
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row, column or coordinate) is outside valid bounds.
	// Public indexers MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add of different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when an inverse is requested for a matrix whose
	// determinant is the null element.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates that a nil *Dense or *Vector (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrInvalidArgument reports a structurally invalid argument, e.g. a unit
	// vector position outside [0, dim) or a ragged input grid.
	ErrInvalidArgument = errors.New("matrix: invalid argument")

	// ErrZeroPivot is returned by LU when a leading principal minor is null,
	// so the factorization would need a row exchange.
	ErrZeroPivot = errors.New("matrix: zero pivot")

	// ErrIncompatibleOperation is matched by every IncompatibleOperationError.
	ErrIncompatibleOperation = errors.New("matrix: incompatible operation")
)

// Operation names the matrix/vector operation whose shape precondition failed.
type Operation string

// Operation tags carried by IncompatibleOperationError.
const (
	OpAddition       Operation = "Addition"
	OpMultiplication Operation = "Multiplication"
	OpInner          Operation = "Inner"
	OpDeterminant    Operation = "Determinant"
	OpInverse        Operation = "Inverse"
	OpTrace          Operation = "Trace"
	OpDiagonal       Operation = "Diagonal"
	OpPower          Operation = "Power"
	OpLU             Operation = "LU"
)

// IncompatibleOperationError is returned when an operation's shape
// precondition does not hold (non-square input for Determinant, unequal
// shapes for Addition, inner mismatch for Multiplication, ...).
//
//   - errors.Is(err, ErrIncompatibleOperation) is always true.
//   - errors.Is(err, Err) is true for the wrapped cause (ErrNonSquare,
//     ErrDimensionMismatch, ErrSingular).
//   - errors.As(err, &ioe) exposes Op for branching.
type IncompatibleOperationError struct {
	Op  Operation
	Err error
}

func (e IncompatibleOperationError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("matrix: incompatible operation: %s", e.Op)
	}

	return fmt.Sprintf("matrix: incompatible operation: %s: %v", e.Op, e.Err)
}

// Is reports true for ErrIncompatibleOperation.
func (e IncompatibleOperationError) Is(target error) bool { return target == ErrIncompatibleOperation }

// Unwrap exposes the underlying cause.
func (e IncompatibleOperationError) Unwrap() error { return e.Err }

// incompatible builds an IncompatibleOperationError for op with cause err.
func incompatible(op Operation, err error) error {
	return IncompatibleOperationError{Op: op, Err: err}
}
