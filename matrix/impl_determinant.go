// SPDX-License-Identifier: MIT
// Package matrix - determinant family: submatrices, minors, cofactors,
// adjugate, inverse.
//
// Purpose:
//   - Exact, ring-correct determinants via recursive cofactor expansion.
//     This is the default and the reference for correctness tests.
//   - An O(n³) elimination determinant for field scalars (DeterminantByElimination),
//     which agrees exactly with cofactor expansion for exact fields (Fraction).
//
// Complexity:
//   - Cofactor expansion is O(n!) — only suitable for small matrices.
//   - MatrixOfMinors/CofactorMatrix/Adjugate/Inverse are n² cofactor expansions.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/algebra"
)

const (
	opDeterminant = "Determinant"
	opMinor       = "Minor"
	opCofactor    = "Cofactor"
	opAdjugate    = "Adjugate"
	opInverse     = "Inverse"
	opElimination = "DeterminantByElimination"
)

// SubMatrix returns the (Rows-1)×(Cols-1) matrix obtained by deleting row i
// and column j.
//
// Errors:
//   - ErrOutOfRange when i ∉ [0,Rows) or j ∉ [0,Cols).
//   - ErrInvalidDimensions when the result would be empty (Rows or Cols == 1).
func (m *Dense[T]) SubMatrix(i, j int) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, denseErrorf(ctxSubMatrix, i, j, err)
	}
	if err := ValidateIndex(i, m.r); err != nil {
		return nil, denseErrorf(ctxSubMatrix, i, j, err)
	}
	if err := ValidateIndex(j, m.c); err != nil {
		return nil, denseErrorf(ctxSubMatrix, i, j, err)
	}
	if m.r == 1 || m.c == 1 {
		return nil, denseErrorf(ctxSubMatrix, i, j, ErrInvalidDimensions)
	}

	return m.subMatrix(i, j), nil
}

// subMatrix is SubMatrix without checks; it may return a 0×0 matrix.
func (m *Dense[T]) subMatrix(i, j int) *Dense[T] {
	res := newDenseZeroOK[T](m.r-1, m.c-1, m.opts)
	idx := 0
	for r := 0; r < m.r; r++ {
		if r == i {
			continue
		}
		base := r * m.c
		for c := 0; c < m.c; c++ {
			if c == j {
				continue
			}
			res.data[idx] = m.data[base+c]
			idx++
		}
	}

	return res
}

// det is the unchecked cofactor expansion along row 0 of a square matrix.
// The empty (0×0) matrix has determinant Unit(); 1×1 returns its sole entry.
// Null entries are skipped: their term is Null() in any ring.
func (m *Dense[T]) det() T {
	switch m.r {
	case 0:
		return algebra.UnitOf[T]()
	case 1:
		return m.data[0]
	}

	return m.expandRow(0)
}

// cofactor returns (-1)^(i+j) · det(subMatrix(i,j)) without checks.
func (m *Dense[T]) cofactor(i, j int) T {
	minor := m.subMatrix(i, j).det()
	if (i+j)%2 == 1 {
		return minor.Negative()
	}

	return minor
}

// expandRow returns Σ_j m[i,j]·Cofactor(i,j).
func (m *Dense[T]) expandRow(i int) T {
	acc := algebra.NullOf[T]()
	for j := 0; j < m.c; j++ {
		a := m.data[i*m.c+j]
		if a.IsNull() {
			continue
		}
		acc = acc.Add(a.Multiply(m.cofactor(i, j)))
	}

	return acc
}

// expandColumn returns Σ_i m[i,j]·Cofactor(i,j).
func (m *Dense[T]) expandColumn(j int) T {
	acc := algebra.NullOf[T]()
	for i := 0; i < m.r; i++ {
		a := m.data[i*m.c+j]
		if a.IsNull() {
			continue
		}
		acc = acc.Add(a.Multiply(m.cofactor(i, j)))
	}

	return acc
}

// Determinant computes det(m) by recursive cofactor expansion along row 0.
//
// Errors:
//   - IncompatibleOperationError{OpDeterminant} when m is not square.
//
// Complexity:
//   - Time O(n!), Space O(n²) per recursion level.
func (m *Dense[T]) Determinant() (T, error) {
	var zero T
	if err := ValidateNotNil(m); err != nil {
		return zero, matrixErrorf(opDeterminant, err)
	}
	if err := ValidateSquare(m); err != nil {
		return zero, matrixErrorf(opDeterminant, incompatible(OpDeterminant, err))
	}

	return m.det(), nil
}

// DeterminantAlongRow expands the determinant along row i.
// The value equals Determinant() for every valid i.
func (m *Dense[T]) DeterminantAlongRow(i int) (T, error) {
	var zero T
	if err := ValidateNotNil(m); err != nil {
		return zero, matrixErrorf(opDeterminant, err)
	}
	if err := ValidateSquare(m); err != nil {
		return zero, matrixErrorf(opDeterminant, incompatible(OpDeterminant, err))
	}
	if err := ValidateIndex(i, m.r); err != nil {
		return zero, matrixErrorf(opDeterminant, err)
	}
	if m.r == 1 {
		return m.data[0], nil
	}

	return m.expandRow(i), nil
}

// DeterminantAlongColumn expands the determinant along column j.
func (m *Dense[T]) DeterminantAlongColumn(j int) (T, error) {
	var zero T
	if err := ValidateNotNil(m); err != nil {
		return zero, matrixErrorf(opDeterminant, err)
	}
	if err := ValidateSquare(m); err != nil {
		return zero, matrixErrorf(opDeterminant, incompatible(OpDeterminant, err))
	}
	if err := ValidateIndex(j, m.c); err != nil {
		return zero, matrixErrorf(opDeterminant, err)
	}
	if m.r == 1 {
		return m.data[0], nil
	}

	return m.expandColumn(j), nil
}

// checkMinorArgs validates squareness and indices for Minor/Cofactor.
func (m *Dense[T]) checkMinorArgs(tag string, i, j int) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(tag, err)
	}
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf(tag, incompatible(OpDeterminant, err))
	}
	if err := ValidateIndex(i, m.r); err != nil {
		return matrixErrorf(tag, err)
	}
	if err := ValidateIndex(j, m.c); err != nil {
		return matrixErrorf(tag, err)
	}

	return nil
}

// Minor returns det(SubMatrix(i,j)); the minor of a 1×1 matrix is Unit().
// Errors: IncompatibleOperationError{OpDeterminant} (non-square), ErrOutOfRange.
func (m *Dense[T]) Minor(i, j int) (T, error) {
	if err := m.checkMinorArgs(opMinor, i, j); err != nil {
		var zero T
		return zero, err
	}

	return m.subMatrix(i, j).det(), nil
}

// Cofactor returns Minor(i,j) negated iff i+j is odd.
func (m *Dense[T]) Cofactor(i, j int) (T, error) {
	if err := m.checkMinorArgs(opCofactor, i, j); err != nil {
		var zero T
		return zero, err
	}

	return m.cofactor(i, j), nil
}

// MatrixOfMinors returns M[i,j] = Minor(i,j).
func (m *Dense[T]) MatrixOfMinors() (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opMinor, incompatible(OpDeterminant, err))
	}
	res := newDenseZeroOK[T](m.r, m.c, m.opts)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			res.data[i*m.c+j] = m.subMatrix(i, j).det()
		}
	}

	return res, nil
}

// CofactorMatrix returns C[i,j] = Cofactor(i,j).
func (m *Dense[T]) CofactorMatrix() (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opCofactor, incompatible(OpDeterminant, err))
	}
	res := newDenseZeroOK[T](m.r, m.c, m.opts)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			res.data[i*m.c+j] = m.cofactor(i, j)
		}
	}

	return res, nil
}

// Adjugate returns the transpose of the cofactor matrix.
func (m *Dense[T]) Adjugate() (*Dense[T], error) {
	c, err := m.CofactorMatrix()
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}

	return c.Transpose(), nil
}

// Inverse returns Adjugate() / Determinant().
//
// Errors:
//   - IncompatibleOperationError{OpInverse} wrapping ErrNonSquare for non-square m.
//   - IncompatibleOperationError{OpInverse} wrapping ErrSingular when the determinant is null.
//   - algebra.ErrFieldCapability when T has no multiplicative inverse.
func (m *Dense[T]) Inverse() (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, incompatible(OpInverse, err))
	}
	if !algebra.IsField[T]() {
		var zero T
		return nil, matrixErrorf(opInverse, fmt.Errorf("%T: %w", zero, algebra.ErrFieldCapability))
	}
	d := m.det()
	if d.IsNull() {
		return nil, matrixErrorf(opInverse, incompatible(OpInverse, ErrSingular))
	}
	adj, err := m.Adjugate()
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	res, err := adj.Divide(d)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return res, nil
}

// DeterminantByElimination computes det(m) in O(n³) by Gaussian elimination
// with row exchanges (each exchange flips the sign).
//
// For exact fields the result equals Determinant(); approximate fields
// (Real, Complex) agree within their equality tolerance for well-conditioned
// inputs.
//
// Errors:
//   - ErrNilMatrix, IncompatibleOperationError{OpDeterminant} for non-square m.
func DeterminantByElimination[T algebra.Field[T]](m *Dense[T]) (T, error) {
	var zero T
	if err := ValidateNotNil(m); err != nil {
		return zero, matrixErrorf(opElimination, err)
	}
	if err := ValidateSquare(m); err != nil {
		return zero, matrixErrorf(opElimination, incompatible(OpDeterminant, err))
	}

	n := m.r
	w := m.Clone()
	det := algebra.UnitOf[T]()
	for col := 0; col < n; col++ {
		pivot := -1
		for r := col; r < n; r++ {
			if !w.data[r*n+col].IsNull() {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			return algebra.NullOf[T](), nil
		}
		if pivot != col {
			_ = w.SwapRows(pivot, col) // indices validated by construction
			det = det.Negative()
		}
		p := w.data[col*n+col]
		det = det.Multiply(p)
		inv, err := p.Inverse()
		if err != nil {
			return zero, matrixErrorf(opElimination, err)
		}
		for r := col + 1; r < n; r++ {
			f := w.data[r*n+col].Multiply(inv)
			if f.IsNull() {
				continue
			}
			for c := col; c < n; c++ {
				w.data[r*n+c] = w.data[r*n+c].Add(f.Multiply(w.data[col*n+c]).Negative())
			}
		}
	}

	return det, nil
}
