// SPDX-License-Identifier: MIT
// Package matrix provides the generic linear-algebra kernels on *Dense[T]:
// element-wise addition/subtraction/negation, matrix multiplication, scalar
// scaling/division, integer powers, transpose, trace and diagonal.
// All kernels perform strict fail-fast validation and never mutate operands.
//
// Notes:
//   - Shape violations surface as IncompatibleOperationError tagged with the
//     operation (Addition, Multiplication, Trace, Diagonal, Power, ...).
//   - Division-like kernels detect the field capability at run time and
//     report algebra.ErrFieldCapability for ring-only scalar types.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/algebra"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd      = "Add"
	opSub      = "Sub"
	opMul      = "Mul"
	opDivide   = "Divide"
	opPower    = "Power"
	opTrace    = "Trace"
	opDiagonal = "Diagonal"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + b or a + (-b).
// Shared by Add/Sub to keep validation and allocation in one place.
//
// Errors:
//   - ErrNilMatrix, IncompatibleOperationError{OpAddition} (wrapping ErrDimensionMismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub[T algebra.Ring[T]](a, b *Dense[T], negate bool, opTag string) (*Dense[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, incompatible(OpAddition, err))
	}

	res := newDenseZeroOK[T](a.r, a.c, a.opts)
	for idx := range a.data { // deterministic 0..n-1
		rhs := b.data[idx]
		if negate {
			rhs = rhs.Negative()
		}
		res.data[idx] = a.data[idx].Add(rhs)
	}

	return res, nil
}

// Add returns the element-wise sum m + other as a fresh matrix.
func (m *Dense[T]) Add(other *Dense[T]) (*Dense[T], error) { return addSub(m, other, false, opAdd) }

// Sub returns the element-wise difference m - other as a fresh matrix.
func (m *Dense[T]) Sub(other *Dense[T]) (*Dense[T], error) { return addSub(m, other, true, opSub) }

// Negative returns -m.
func (m *Dense[T]) Negative() *Dense[T] {
	res := newDenseZeroOK[T](m.r, m.c, m.opts)
	for idx, v := range m.data {
		res.data[idx] = v.Negative()
	}

	return res
}

// Mul performs matrix multiplication C = m × other.
//
// Implementation:
//   - C[i,j] = Σ_k m[i,k].Inner(other[k,j]), i.e. Row(m,i) · Column(other,j)
//     under the scalar inner product (complex scalars conjugate the right factor).
//   - Fixed i→j→k loop order; no temporary vectors are allocated.
//
// Errors:
//   - ErrNilMatrix, IncompatibleOperationError{OpMultiplication} when m.Cols != other.Rows.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func (m *Dense[T]) Mul(other *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(other); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateMultipliable(m, other); err != nil {
		return nil, matrixErrorf(opMul, incompatible(OpMultiplication, err))
	}

	rows, inner, cols := m.r, m.c, other.c
	res := newDenseZeroOK[T](rows, cols, m.opts)
	var i, j, k int
	for i = 0; i < rows; i++ {
		base := i * inner
		for j = 0; j < cols; j++ {
			acc := algebra.NullOf[T]()
			for k = 0; k < inner; k++ {
				acc = acc.Add(m.data[base+k].Inner(other.data[k*cols+j]))
			}
			res.data[i*cols+j] = acc
		}
	}

	return res, nil
}

// Scale returns m * s (each entry multiplied on the right by s).
func (m *Dense[T]) Scale(s T) *Dense[T] {
	res := newDenseZeroOK[T](m.r, m.c, m.opts)
	for idx, v := range m.data {
		res.data[idx] = v.Multiply(s)
	}

	return res
}

// Divide returns m * s⁻¹.
// Errors: algebra.ErrFieldCapability (ring-only T), algebra.ErrDivisionByNull (null s).
func (m *Dense[T]) Divide(s T) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opDivide, err)
	}
	inv, err := algebra.Invert(s)
	if err != nil {
		return nil, matrixErrorf(opDivide, err)
	}

	return m.Scale(inv), nil
}

// Power returns m^k for a square matrix.
//
// Behavior highlights:
//   - k == 0 → identity of the same size.
//   - k < 0  → Inverse()^(-k) (requires the field capability).
//   - k > 0  → m multiplied by itself k-1 times.
//
// Errors:
//   - IncompatibleOperationError{OpPower} when m is not square.
//   - Errors of Inverse for k < 0.
func (m *Dense[T]) Power(k int) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opPower, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opPower, incompatible(OpPower, err))
	}
	if k == 0 {
		id, _ := NewIdentity[T](m.r) // m.r ≥ 1 for every public matrix
		id.opts = m.opts
		return id, nil
	}
	base := m
	if k < 0 {
		inv, err := m.Inverse()
		if err != nil {
			return nil, matrixErrorf(opPower, err)
		}
		base, k = inv, -k
	}

	res := base.Clone()
	var err error
	for step := 1; step < k; step++ {
		if res, err = res.Mul(base); err != nil {
			return nil, matrixErrorf(opPower, err)
		}
	}

	return res, nil
}

// Transpose returns mᵀ with indices[j,i] = m[i,j].
// Complexity: O(r*c).
func (m *Dense[T]) Transpose() *Dense[T] {
	res := newDenseZeroOK[T](m.c, m.r, m.opts)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return res
}

// Trace returns Σ m[i,i].
// Errors: IncompatibleOperationError{OpTrace} when m is not square.
func (m *Dense[T]) Trace() (T, error) {
	acc := algebra.NullOf[T]()
	if err := ValidateNotNil(m); err != nil {
		return acc, matrixErrorf(opTrace, err)
	}
	if err := ValidateSquare(m); err != nil {
		return acc, matrixErrorf(opTrace, incompatible(OpTrace, err))
	}
	for i := 0; i < m.r; i++ {
		acc = acc.Add(m.data[i*m.c+i])
	}

	return acc, nil
}

// Diagonal returns the vector of m[i,i].
// Errors: IncompatibleOperationError{OpDiagonal} when m is not square.
func (m *Dense[T]) Diagonal() (*Vector[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opDiagonal, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opDiagonal, incompatible(OpDiagonal, err))
	}
	out := make([]T, m.r)
	for i := range out {
		out[i] = m.data[i*m.c+i]
	}

	return &Vector[T]{data: out, tol: m.opts.unitTolerance}, nil
}

// IsSymmetric reports m == mᵀ (false for non-square m).
func (m *Dense[T]) IsSymmetric() bool {
	return m.Equal(m.Transpose())
}

// IsAntiSymmetric reports m == -mᵀ (false for non-square m).
func (m *Dense[T]) IsAntiSymmetric() bool {
	return m.Equal(m.Transpose().Negative())
}
