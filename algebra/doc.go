// SPDX-License-Identifier: MIT

// Package algebra declares the capability contract every scalar type must
// satisfy so that vectors, matrices and the row-reduction engine can be
// written once, generically.
//
// What & Why:
//
//	Capabilities are small self-typed interfaces (Addable, Negatable,
//	Multipliable, Invertible) composed into the classic layers:
//
//		Monoid[T] → Group[T] → Ring[T] → Field[T]
//
//	A scalar type opts into exactly the layers it supports. Cross-type
//	arithmetic (Real + Complex) is rejected by the compiler because every
//	operation takes the receiver's own concrete type.
//
// Field capability:
//
//	Containers are constrained by Ring[T]; operations that need division
//	(inverse, unit pivots) detect Field[T] at run time via Invert and fail
//	with ErrFieldCapability when T has no multiplicative inverse.
//
// Value semantics:
//
//	Every operation returns a new member; implementations must never mutate
//	the receiver or the argument.
package algebra
