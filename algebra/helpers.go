// SPDX-License-Identifier: MIT

// Package algebra: generic helpers composed from the capability layers.

package algebra

import "fmt"

// NullOf returns the additive identity of T.
func NullOf[T Addable[T]]() T {
	var zero T
	return zero.Null()
}

// UnitOf returns the multiplicative identity of T.
func UnitOf[T Multipliable[T]]() T {
	var zero T
	return zero.Unit()
}

// Subtract returns a + (-b).
func Subtract[T Group[T]](a, b T) T {
	return a.Add(b.Negative())
}

// Sum folds values with Add starting from the null element.
// An empty input yields Null().
func Sum[T Monoid[T]](values ...T) T {
	acc := NullOf[T]()
	for _, v := range values {
		acc = acc.Add(v)
	}

	return acc
}

// Invert returns the multiplicative inverse of x.
//
// Errors:
//   - ErrFieldCapability when T does not implement Invertible[T].
//   - ErrDivisionByNull (propagated from Inverse) when x is null.
func Invert[T Ring[T]](x T) (T, error) {
	inv, ok := any(x).(Invertible[T])
	if !ok {
		var zero T
		return zero, fmt.Errorf("%T: %w", x, ErrFieldCapability)
	}

	return inv.Inverse()
}

// Divide returns a * b⁻¹ using Invert.
func Divide[T Ring[T]](a, b T) (T, error) {
	inv, err := Invert(b)
	if err != nil {
		var zero T
		return zero, err
	}

	return a.Multiply(inv), nil
}

// IsField reports whether T implements the field capability.
func IsField[T Ring[T]]() bool {
	var zero T
	_, ok := any(zero).(Invertible[T])

	return ok
}

// ToFloat64 projects x onto float64 when T is Measurable.
func ToFloat64(x any) (float64, error) {
	m, ok := x.(Measurable)
	if !ok {
		return 0, fmt.Errorf("%T: %w", x, ErrNotMeasurable)
	}

	return m.Float64(), nil
}
