// SPDX-License-Identifier: MIT
// Package converters - gonum/mat adapters.
//
// Notes:
//   - Entries are projected with algebra.ToFloat64; scalars without a float64
//     projection fail with algebra.ErrNotMeasurable. The projection is lossy
//     for Fraction (rounding) and Complex (imaginary part dropped).
//   - gonum panics on shape violations; every entry point validates first and
//     reports the matrix package sentinels instead.

package converters

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlalg/algebra"
	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/scalar"
)

const (
	ctxToGonum       = "ToGonum"
	ctxFromGonum     = "FromGonum"
	ctxVecToGonum    = "VectorToGonum"
	ctxVecFromGonum  = "VectorFromGonum"
	ctxDeterminantLU = "DeterminantLU"
	ctxInverseLU     = "InverseLU"
)

func convErrorf(tag string, err error) error {
	return fmt.Errorf("converters: %s: %w", tag, err)
}

// ToGonum copies m into a new *mat.Dense.
// Errors: matrix.ErrNilMatrix, algebra.ErrNotMeasurable.
func ToGonum[T algebra.Ring[T]](m *matrix.Dense[T]) (*mat.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, convErrorf(ctxToGonum, err)
	}
	rows, cols := m.Shape()
	data := make([]float64, 0, rows*cols)
	var convErr error
	m.Do(func(i, j int, v T) bool {
		f, err := algebra.ToFloat64(v)
		if err != nil {
			convErr = fmt.Errorf("entry (%d,%d): %w", i, j, err)
			return false
		}
		data = append(data, f)
		return true
	})
	if convErr != nil {
		return nil, convErrorf(ctxToGonum, convErr)
	}

	return mat.NewDense(rows, cols, data), nil
}

// FromGonum copies any mat.Matrix into a Real matrix.
// Errors: matrix.ErrNilMatrix for a nil source, matrix.ErrInvalidDimensions
// for an empty one.
func FromGonum(src mat.Matrix, opts ...matrix.Option) (*matrix.Dense[scalar.Real], error) {
	if src == nil {
		return nil, convErrorf(ctxFromGonum, matrix.ErrNilMatrix)
	}
	rows, cols := src.Dims()
	if rows == 0 || cols == 0 {
		return nil, convErrorf(ctxFromGonum, matrix.ErrInvalidDimensions)
	}
	grid := make([][]scalar.Real, rows)
	for i := range grid {
		grid[i] = make([]scalar.Real, cols)
		for j := range grid[i] {
			grid[i][j] = scalar.Real(src.At(i, j))
		}
	}

	return matrix.NewFromRows(grid, opts...)
}

// VectorToGonum copies v into a new *mat.VecDense.
// Errors: matrix.ErrNilMatrix, matrix.ErrInvalidDimensions (empty vector),
// algebra.ErrNotMeasurable.
func VectorToGonum[T algebra.Ring[T]](v *matrix.Vector[T]) (*mat.VecDense, error) {
	if v == nil {
		return nil, convErrorf(ctxVecToGonum, matrix.ErrNilMatrix)
	}
	if v.Dim() == 0 {
		return nil, convErrorf(ctxVecToGonum, matrix.ErrInvalidDimensions)
	}
	data := make([]float64, v.Dim())
	for i, x := range v.Values() {
		f, err := algebra.ToFloat64(x)
		if err != nil {
			return nil, convErrorf(ctxVecToGonum, fmt.Errorf("coordinate %d: %w", i, err))
		}
		data[i] = f
	}

	return mat.NewVecDense(len(data), data), nil
}

// VectorFromGonum copies a mat.Vector into a Real vector.
func VectorFromGonum(src mat.Vector) (*matrix.Vector[scalar.Real], error) {
	if src == nil {
		return nil, convErrorf(ctxVecFromGonum, matrix.ErrNilMatrix)
	}
	out := make([]scalar.Real, src.Len())
	for i := range out {
		out[i] = scalar.Real(src.AtVec(i))
	}

	return matrix.NewVector(out...), nil
}

// DeterminantLU returns det(m) through gonum's LU factorization.
// It agrees with m.Determinant() within floating-point error.
// Errors: matrix.ErrNilMatrix, IncompatibleOperationError{OpDeterminant}.
func DeterminantLU(m *matrix.Dense[scalar.Real]) (scalar.Real, error) {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return 0, convErrorf(ctxDeterminantLU, shapeError(matrix.OpDeterminant, err))
	}
	g, err := ToGonum(m)
	if err != nil {
		return 0, convErrorf(ctxDeterminantLU, err)
	}

	return scalar.Real(mat.Det(g)), nil
}

// InverseLU returns m⁻¹ computed by gonum.
// Errors: IncompatibleOperationError{OpInverse} wrapping ErrNonSquare, or
// ErrSingular when gonum reports an infinite or excessive condition number.
func InverseLU(m *matrix.Dense[scalar.Real]) (*matrix.Dense[scalar.Real], error) {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return nil, convErrorf(ctxInverseLU, shapeError(matrix.OpInverse, err))
	}
	g, err := ToGonum(m)
	if err != nil {
		return nil, convErrorf(ctxInverseLU, err)
	}
	var inv mat.Dense
	if err = inv.Inverse(g); err != nil {
		return nil, convErrorf(ctxInverseLU, matrix.IncompatibleOperationError{
			Op:  matrix.OpInverse,
			Err: fmt.Errorf("%w: %v", matrix.ErrSingular, err),
		})
	}

	return FromGonum(&inv, matrix.WithVectorType(m.VectorType()))
}

// shapeError tags square-shape violations with op; nil-matrix errors pass through.
func shapeError(op matrix.Operation, err error) error {
	if errors.Is(err, matrix.ErrNonSquare) {
		return matrix.IncompatibleOperationError{Op: op, Err: err}
	}

	return err
}
