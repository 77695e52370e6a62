// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin package-level entry points mirroring the *Dense methods.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.
//
// AI-Hints:
//   - Facades are convenient in generic pipelines (func values, method-free call sites).
//   - Use NewNull/NewIdentity to build matrices with explicit shape and neutral elements.

package matrix

import "github.com/katalvlaran/lvlalg/algebra"

// ---------- Constructors & Utilities ----------

// NewNull returns the rows×cols null matrix. Alias of NewDense.
func NewNull[T algebra.Ring[T]](rows, cols int, opts ...Option) (*Dense[T], error) {
	return NewDense[T](rows, cols, opts...)
}

// NullLike returns a null matrix with the shape and options of m.
func NullLike[T algebra.Ring[T]](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("NullLike", err)
	}

	return newDenseZeroOK[T](m.r, m.c, m.opts), nil
}

// IdentityLike returns the identity with dimension Rows(m); requires square m.
func IdentityLike[T algebra.Ring[T]](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}
	id, err := NewIdentity[T](m.r)
	if err != nil {
		return nil, err
	}
	id.opts = m.opts

	return id, nil
}

// Equal reports a == b under the scalar equality; false if either is nil.
func Equal[T algebra.Ring[T]](a, b *Dense[T]) bool { return a.Equal(b) }

// ---------- Linear Algebra ----------

// Add is an alias for a.Add(b).
func Add[T algebra.Ring[T]](a, b *Dense[T]) (*Dense[T], error) { return addSub(a, b, false, opAdd) }

// Sub is an alias for a.Sub(b).
func Sub[T algebra.Ring[T]](a, b *Dense[T]) (*Dense[T], error) { return addSub(a, b, true, opSub) }

// Mul is an alias for a.Mul(b).
func Mul[T algebra.Ring[T]](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return a.Mul(b)
}

// Transpose returns mᵀ.
func Transpose[T algebra.Ring[T]](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("Transpose", err)
	}

	return m.Transpose(), nil
}

// Determinant is the cofactor-expansion determinant of m.
func Determinant[T algebra.Ring[T]](m *Dense[T]) (T, error) {
	if err := ValidateNotNil(m); err != nil {
		var zero T
		return zero, matrixErrorf(opDeterminant, err)
	}

	return m.Determinant()
}

// Inverse returns m⁻¹ via adjugate/determinant.
func Inverse[T algebra.Ring[T]](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return m.Inverse()
}
