// SPDX-License-Identifier: MIT

// Package matrix - Vector[T]: fixed-dimension vectors over a ring.
//
// Purpose:
//   - Ordered container of scalars with vector-space arithmetic written once,
//     generically, over the algebra capability layers.
//   - Dimension is fixed at construction; indexers are bounds-checked.
//
// Behavior highlights:
//   - Every operation returns a fresh vector; operands are never mutated.
//   - Row/column vectors taken from a Dense are owned copies (see Dense.Row).
//
// Complexity quicksheet:
//   - At/Set: O(1); Add/Sub/Scale/Inner: O(n); Clone: O(n).
package matrix

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/lvlalg/algebra"
)

const (
	opVectorAdd    = "Vector.Add"
	opVectorInner  = "Vector.Inner"
	opVectorDivide = "Vector.Divide"
	opVectorNorm   = "Vector.Norm"
)

// Vector is an ordered, fixed-length sequence of ring members.
type Vector[T algebra.Ring[T]] struct {
	data []T
	tol  float64 // unit tolerance used by IsUnit
}

// NewVector returns a vector holding a copy of values (dimension = len(values)).
// Complexity: O(n).
func NewVector[T algebra.Ring[T]](values ...T) *Vector[T] {
	data := make([]T, len(values))
	copy(data, values)

	return &Vector[T]{data: data, tol: DefaultUnitTolerance}
}

// NewNullVector returns the dimension-dim vector whose coordinates are all Null().
// Errors: ErrInvalidDimensions when dim < 0.
func NewNullVector[T algebra.Ring[T]](dim int) (*Vector[T], error) {
	if dim < 0 {
		return nil, ErrInvalidDimensions
	}
	data := make([]T, dim)
	null := algebra.NullOf[T]()
	for i := range data {
		data[i] = null
	}

	return &Vector[T]{data: data, tol: DefaultUnitTolerance}, nil
}

// NewUnitVector returns the dimension-dim vector with Unit() at position n
// and Null() everywhere else.
// Errors: ErrInvalidDimensions (dim < 0), ErrInvalidArgument (n ∉ [0, dim)).
func NewUnitVector[T algebra.Ring[T]](dim, n int) (*Vector[T], error) {
	v, err := NewNullVector[T](dim)
	if err != nil {
		return nil, err
	}
	if n < 0 || n >= dim {
		return nil, fmt.Errorf("NewUnitVector(%d, %d): %w", dim, n, ErrInvalidArgument)
	}
	v.data[n] = algebra.UnitOf[T]()

	return v, nil
}

// Dim returns the dimension. Complexity: O(1).
func (v *Vector[T]) Dim() int { return len(v.data) }

// At returns the coordinate i or ErrOutOfRange.
func (v *Vector[T]) At(i int) (T, error) {
	if err := ValidateIndex(i, len(v.data)); err != nil {
		var zero T
		return zero, fmt.Errorf("Vector.At(%d): %w", i, err)
	}

	return v.data[i], nil
}

// Set stores x at coordinate i or returns ErrOutOfRange.
func (v *Vector[T]) Set(i int, x T) error {
	if err := ValidateIndex(i, len(v.data)); err != nil {
		return fmt.Errorf("Vector.Set(%d): %w", i, err)
	}
	v.data[i] = x

	return nil
}

// Values returns a copy of the coordinates.
func (v *Vector[T]) Values() []T {
	out := make([]T, len(v.data))
	copy(out, v.data)

	return out
}

// Clone returns a deep copy (scalars are immutable values).
func (v *Vector[T]) Clone() *Vector[T] {
	return &Vector[T]{data: v.Values(), tol: v.tol}
}

// comparable reports whether v and w have equal dimensions.
func (v *Vector[T]) comparable(w *Vector[T]) error {
	if v == nil || w == nil {
		return ErrNilMatrix
	}
	if len(v.data) != len(w.data) {
		return ErrDimensionMismatch
	}

	return nil
}

// Add returns v + w elementwise.
// Errors: IncompatibleOperationError{OpAddition} when dimensions differ.
func (v *Vector[T]) Add(w *Vector[T]) (*Vector[T], error) {
	if err := v.comparable(w); err != nil {
		return nil, matrixErrorf(opVectorAdd, incompatible(OpAddition, err))
	}
	out := make([]T, len(v.data))
	for i := range v.data {
		out[i] = v.data[i].Add(w.data[i])
	}

	return &Vector[T]{data: out, tol: v.tol}, nil
}

// Negative returns -v.
func (v *Vector[T]) Negative() *Vector[T] {
	out := make([]T, len(v.data))
	for i := range v.data {
		out[i] = v.data[i].Negative()
	}

	return &Vector[T]{data: out, tol: v.tol}
}

// Sub returns v - w elementwise; same errors as Add.
func (v *Vector[T]) Sub(w *Vector[T]) (*Vector[T], error) {
	if w == nil {
		return nil, matrixErrorf(opVectorAdd, incompatible(OpAddition, ErrNilMatrix))
	}

	return v.Add(w.Negative())
}

// Inner returns Σ v[i].Inner(w[i]).
// Errors: IncompatibleOperationError{OpInner} when dimensions differ.
func (v *Vector[T]) Inner(w *Vector[T]) (T, error) {
	acc := algebra.NullOf[T]()
	if err := v.comparable(w); err != nil {
		return acc, matrixErrorf(opVectorInner, incompatible(OpInner, err))
	}
	for i := range v.data {
		acc = acc.Add(v.data[i].Inner(w.data[i]))
	}

	return acc, nil
}

// Scale returns v * s elementwise (right multiplication).
func (v *Vector[T]) Scale(s T) *Vector[T] {
	out := make([]T, len(v.data))
	for i := range v.data {
		out[i] = v.data[i].Multiply(s)
	}

	return &Vector[T]{data: out, tol: v.tol}
}

// Divide returns v * s⁻¹.
// Errors: algebra.ErrFieldCapability when T has no inverse,
// algebra.ErrDivisionByNull when s is null.
func (v *Vector[T]) Divide(s T) (*Vector[T], error) {
	if v == nil {
		return nil, matrixErrorf(opVectorDivide, ErrNilMatrix)
	}
	inv, err := algebra.Invert(s)
	if err != nil {
		return nil, matrixErrorf(opVectorDivide, err)
	}

	return v.Scale(inv), nil
}

// Norm returns sqrt(ToFloat64(v·v)).
// Errors: algebra.ErrNotMeasurable when T has no float64 projection.
func (v *Vector[T]) Norm() (float64, error) {
	dot, err := v.Inner(v)
	if err != nil {
		return 0, err
	}
	f, err := algebra.ToFloat64(dot)
	if err != nil {
		return 0, matrixErrorf(opVectorNorm, err)
	}

	return math.Sqrt(f), nil
}

// IsNull reports whether every coordinate is null (true for dimension 0).
func (v *Vector[T]) IsNull() bool {
	for _, x := range v.data {
		if !x.IsNull() {
			return false
		}
	}

	return true
}

// IsUnit reports |‖v‖ - 1| ≤ tolerance; false when T is not measurable.
func (v *Vector[T]) IsUnit() bool { return v.IsUnitWithin(v.tol) }

// IsUnitWithin is IsUnit with an explicit tolerance.
func (v *Vector[T]) IsUnitWithin(tol float64) bool {
	n, err := v.Norm()
	if err != nil {
		return false
	}

	return math.Abs(n-1) <= tol
}

// Equal reports equal dimension and pairwise Equals; false if either is nil.
func (v *Vector[T]) Equal(w *Vector[T]) bool {
	if v == nil || w == nil || len(v.data) != len(w.data) {
		return false
	}
	for i := range v.data {
		if !v.data[i].Equals(w.data[i]) {
			return false
		}
	}

	return true
}

// String renders "[a, b, c]".
func (v *Vector[T]) String() string {
	var b strings.Builder
	b.WriteString(_fmtRowOpen)
	for i, x := range v.data {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		b.WriteString(fmt.Sprint(x))
	}
	b.WriteString("]")

	return b.String()
}
