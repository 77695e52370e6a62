// SPDX-License-Identifier: MIT

// Package algebra: capability interfaces.
//
// Purpose:
//   - Declare the minimal operation set per capability layer.
//   - Keep each capability independent so types implement them à la carte.
//
// Notes:
//   - Null() and Unit() must be callable on the zero value of T; generic code
//     uses `var zero T; zero.Null()` to obtain identities without a sample value.

package algebra

// Equaler reports equality under the scalar type's own policy
// (approximate types compare within a tolerance).
type Equaler[T any] interface {
	Equals(other T) bool
}

// Addable is the additive capability.
// Contract: Add is associative and commutative; Null() is its two-sided identity.
type Addable[T any] interface {
	Add(other T) T
	IsNull() bool
	Null() T
}

// Negatable provides additive inverses: x.Add(x.Negative()).IsNull() holds.
type Negatable[T any] interface {
	Negative() T
}

// Multipliable is the multiplicative capability.
//
// Inner is the product used by inner products and matrix multiplication.
// For most types it equals Multiply; complex numbers conjugate the right operand.
type Multipliable[T any] interface {
	Multiply(other T) T
	Inner(other T) T
	IsUnit() bool
	Unit() T
}

// Invertible is the field capability.
// Inverse fails with ErrDivisionByNull when the receiver is null.
type Invertible[T any] interface {
	Inverse() (T, error)
}

// Monoid is the additive monoid layer.
type Monoid[T any] interface {
	Equaler[T]
	Addable[T]
}

// Group extends Monoid with negation.
type Group[T any] interface {
	Monoid[T]
	Negatable[T]
}

// Ring extends Group with multiplication and a unit element.
type Ring[T any] interface {
	Group[T]
	Multipliable[T]
}

// Field extends Ring with multiplicative inversion.
type Field[T any] interface {
	Ring[T]
	Invertible[T]
}

// Measurable is implemented by scalars with a lossy float64 projection.
// It backs convenience metrics such as vector norms; it is never required
// for exact algorithms.
type Measurable interface {
	Float64() float64
}
