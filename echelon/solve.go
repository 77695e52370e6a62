// SPDX-License-Identifier: MIT
// Package echelon - applications of the reducer: rank, Gauss–Jordan inverse
// and linear systems over augmented matrices.

package echelon

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/algebra"
	"github.com/katalvlaran/lvlalg/matrix"
)

// Rank returns the number of pivot rows of the echelon form of m.
// Errors: those of ToEchelonForm (notably algebra.ErrFieldCapability).
func Rank[T algebra.Ring[T]](m *matrix.Dense[T], opts ...Option) (int, error) {
	r := NewReducer[T](opts...)
	e, err := r.ToEchelonForm(m)
	if err != nil {
		return 0, echelonErrorf("Rank", err)
	}

	return e.Rows() - AmountOfNullRows(e, r.opts.ignoredColumns), nil
}

// Augment returns [a | b]: the columns of b appended to those of a.
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch for unequal row counts.
func Augment[T algebra.Ring[T]](a, b *matrix.Dense[T]) (*matrix.Dense[T], error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, echelonErrorf("Augment", err)
	}
	if err := matrix.ValidateNotNil(b); err != nil {
		return nil, echelonErrorf("Augment", err)
	}
	if a.Rows() != b.Rows() {
		return nil, fmt.Errorf("Augment(%d rows, %d rows): %w", a.Rows(), b.Rows(), matrix.ErrDimensionMismatch)
	}
	left, right := a.Indices(), b.Indices()
	for i := range left {
		left[i] = append(left[i], right[i]...)
	}

	return matrix.NewFromRows(left, matrix.WithVectorType(a.VectorType()))
}

// InverseGaussJordan inverts m by reducing [m | I] while ignoring the
// identity block. It agrees with m.Inverse() and runs in O(n³).
//
// Errors:
//   - matrix.IncompatibleOperationError{OpInverse} wrapping ErrNonSquare or ErrSingular.
//   - algebra.ErrFieldCapability for ring-only T.
func InverseGaussJordan[T algebra.Ring[T]](m *matrix.Dense[T]) (*matrix.Dense[T], error) {
	const tag = "InverseGaussJordan"
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, echelonErrorf(tag, err)
	}
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, echelonErrorf(tag, matrix.IncompatibleOperationError{Op: matrix.OpInverse, Err: err})
	}
	n := m.Rows()
	id, _ := matrix.IdentityLike(m)
	aug, err := Augment(m, id)
	if err != nil {
		return nil, echelonErrorf(tag, err)
	}
	red, err := ToReducedEchelonForm(aug, WithIgnoredColumns(n))
	if err != nil {
		return nil, echelonErrorf(tag, err)
	}
	if AmountOfNullRows(red, n) > 0 {
		return nil, echelonErrorf(tag, matrix.IncompatibleOperationError{Op: matrix.OpInverse, Err: matrix.ErrSingular})
	}
	grid := red.Indices()
	for i := range grid {
		grid[i] = grid[i][n:]
	}

	return matrix.NewFromRows(grid, matrix.WithVectorType(m.VectorType()))
}

// Solve returns the unique x with a·x = b.
//
// Errors:
//   - matrix.ErrDimensionMismatch when b.Dim() != a.Rows().
//   - ErrInconsistent when no solution exists.
//   - ErrUnderdetermined when the solution is not unique.
//   - algebra.ErrFieldCapability for ring-only T.
func Solve[T algebra.Ring[T]](a *matrix.Dense[T], b *matrix.Vector[T]) (*matrix.Vector[T], error) {
	const tag = "Solve"
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, echelonErrorf(tag, err)
	}
	if err := matrix.ValidateVecLen(b, a.Rows()); err != nil {
		if b != nil {
			err = fmt.Errorf("%w: %w", matrix.ErrDimensionMismatch, err)
		}
		return nil, echelonErrorf(tag, err)
	}
	rhs, err := matrix.NewFromVectors(matrix.Column, []*matrix.Vector[T]{b})
	if err != nil {
		return nil, echelonErrorf(tag, err)
	}
	aug, err := Augment(a, rhs)
	if err != nil {
		return nil, echelonErrorf(tag, err)
	}
	red, err := ToReducedEchelonForm(aug, WithIgnoredColumns(1))
	if err != nil {
		return nil, echelonErrorf(tag, err)
	}

	cols := a.Cols()
	x := make([]T, cols)
	for j := range x {
		x[j] = algebra.NullOf[T]()
	}
	rank := 0
	for i := 0; i < red.Rows(); i++ {
		p := pivot(red, i, 1)
		v := at(red, i, cols)
		if p < 0 {
			if !v.IsNull() {
				return nil, fmt.Errorf("%s: row %d reads 0 = %v: %w", tag, i+1, v, ErrInconsistent)
			}
			continue
		}
		x[p] = v
		rank++
	}
	if rank < cols {
		return nil, fmt.Errorf("%s: rank %d < %d unknowns: %w", tag, rank, cols, ErrUnderdetermined)
	}

	return matrix.NewVector(x...), nil
}
