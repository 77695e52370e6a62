// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels minimal by delegating shape/nil/index checks here.
//   - Return sentinel errors wrapped with the validator tag so call sites can
//     wrap uniformly (matrixErrorf / incompatible).
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//   - Shape validators accept the Shaped interface; nil checks are generic
//     because a typed nil *Dense stored in an interface is not == nil.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/algebra"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix pointer is non-nil.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil[T algebra.Ring[T]](m *Dense[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Complexity: O(1).
func ValidateSameShape(a, b Shaped) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Errors: ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m Shaped) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateMultipliable checks the inner dimensions of a×b (a.Cols == b.Rows).
// Errors: ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMultipliable(a, b Shaped) error {
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMultipliable", ErrDimensionMismatch)
	}

	return nil
}

// ValidateIndex ensures 0 ≤ i < n.
// Errors: ErrOutOfRange.
// Complexity: O(1).
func ValidateIndex(i, n int) error {
	if i < 0 || i >= n {
		return validatorErrorf(fmt.Sprintf("ValidateIndex(%d of %d)", i, n), ErrOutOfRange)
	}

	return nil
}

// ValidateVecLen ensures the vector is non-nil and its dimension equals n.
// Errors: ErrNilMatrix, ErrInvalidArgument.
// Complexity: O(1).
func ValidateVecLen[T algebra.Ring[T]](v *Vector[T], n int) error {
	if v == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if v.Dim() != n {
		return validatorErrorf(fmt.Sprintf("ValidateVecLen(%d != %d)", v.Dim(), n), ErrInvalidArgument)
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
// Complexity: O(1).
func ValidateBinarySameShape[T algebra.Ring[T]](a, b *Dense[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateSquareNonNil – Composite: NotNil → Square.
// Complexity: O(1).
func ValidateSquareNonNil[T algebra.Ring[T]](m *Dense[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}
