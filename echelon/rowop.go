// SPDX-License-Identifier: MIT
// Package echelon - elementary row operations.
//
// A RowOperation is an immutable value of one of three kinds:
//
//	Scaling(onto, s)             R_onto ← R_onto · s
//	Substitution(from, onto, s)  R_onto ← R_onto + R_from · s
//	Switching(from, onto)        R_from ↔ R_onto
//
// ActOn never mutates its argument; it returns the transformed copy.
// ElementaryMatrix(n) is ActOn applied to the n×n identity, so that
// op.ActOn(M) == op.ElementaryMatrix(M.Rows()) × M.

package echelon

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/algebra"
	"github.com/katalvlaran/lvlalg/matrix"
)

// Kind enumerates the elementary row operations.
type Kind int

const (
	// KindScaling multiplies one row by a non-null scalar.
	KindScaling Kind = iota
	// KindSubstitution adds a multiple of one row to another.
	KindSubstitution
	// KindSwitching exchanges two rows.
	KindSwitching
)

// String returns "Scaling", "Substitution" or "Switching".
func (k Kind) String() string {
	switch k {
	case KindScaling:
		return "Scaling"
	case KindSubstitution:
		return "Substitution"
	case KindSwitching:
		return "Switching"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

const (
	ctxScaling      = "Scaling"
	ctxSubstitution = "Substitution"
	ctxSwitching    = "Switching"
	ctxActOn        = "RowOperation.ActOn"
	ctxElementary   = "RowOperation.ElementaryMatrix"
)

// RowOperation is one elementary row operation over T.
// The zero value is not valid; use Scaling, Substitution or Switching.
type RowOperation[T algebra.Ring[T]] struct {
	kind  Kind
	from  int // source row (Substitution, Switching)
	onto  int // target row
	scale T   // Scaling, Substitution
}

// Scaling returns the operation R_onto ← R_onto · scale.
// Errors: ErrInvalidRowOperation for a negative row or a null scale.
func Scaling[T algebra.Ring[T]](onto int, scale T) (RowOperation[T], error) {
	if onto < 0 {
		return RowOperation[T]{}, fmt.Errorf("%s(%d): negative row: %w", ctxScaling, onto, ErrInvalidRowOperation)
	}
	if scale.IsNull() {
		return RowOperation[T]{}, fmt.Errorf("%s(%d): null scale: %w", ctxScaling, onto, ErrInvalidRowOperation)
	}

	return scaling(onto, scale), nil
}

// Substitution returns the operation R_onto ← R_onto + R_from · scale.
// Errors: ErrInvalidRowOperation for negative rows, from == onto, or a null scale.
func Substitution[T algebra.Ring[T]](from, onto int, scale T) (RowOperation[T], error) {
	if err := checkPair(ctxSubstitution, from, onto); err != nil {
		return RowOperation[T]{}, err
	}
	if scale.IsNull() {
		return RowOperation[T]{}, fmt.Errorf("%s(%d, %d): null scale: %w", ctxSubstitution, from, onto, ErrInvalidRowOperation)
	}

	return substitution(from, onto, scale), nil
}

// scaling and substitution skip the null-scale check. The reducer derives
// its factors from entries it knows to be non-null, and a factor such as
// 1e-10 is legitimate even though Real.IsNull reports it as null.
func scaling[T algebra.Ring[T]](onto int, scale T) RowOperation[T] {
	return RowOperation[T]{kind: KindScaling, from: onto, onto: onto, scale: scale}
}

func substitution[T algebra.Ring[T]](from, onto int, scale T) RowOperation[T] {
	return RowOperation[T]{kind: KindSubstitution, from: from, onto: onto, scale: scale}
}

// Switching returns the operation R_from ↔ R_onto.
// Errors: ErrInvalidRowOperation for negative rows or from == onto.
func Switching[T algebra.Ring[T]](from, onto int) (RowOperation[T], error) {
	if err := checkPair(ctxSwitching, from, onto); err != nil {
		return RowOperation[T]{}, err
	}

	return RowOperation[T]{kind: KindSwitching, from: from, onto: onto, scale: algebra.UnitOf[T]()}, nil
}

func checkPair(tag string, from, onto int) error {
	if from < 0 || onto < 0 {
		return fmt.Errorf("%s(%d, %d): negative row: %w", tag, from, onto, ErrInvalidRowOperation)
	}
	if from == onto {
		return fmt.Errorf("%s(%d, %d): identical rows: %w", tag, from, onto, ErrInvalidRowOperation)
	}

	return nil
}

// Kind reports the operation kind.
func (op RowOperation[T]) Kind() Kind { return op.kind }

// From returns the source row (equal to Onto for Scaling).
func (op RowOperation[T]) From() int { return op.from }

// Onto returns the target row.
func (op RowOperation[T]) Onto() int { return op.onto }

// Scale returns the scalar factor (Unit for Switching).
func (op RowOperation[T]) Scale() T { return op.scale }

// maxRow is the largest row index the operation touches.
func (op RowOperation[T]) maxRow() int {
	if op.from > op.onto {
		return op.from
	}

	return op.onto
}

// ActOn returns a copy of m with the operation applied.
//
// Errors:
//   - matrix.ErrNilMatrix for nil m.
//   - RowIndexError (matches ErrIncompatibleRowOperation) when a referenced
//     row is ≥ m.Rows().
func (op RowOperation[T]) ActOn(m *matrix.Dense[T]) (*matrix.Dense[T], error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, echelonErrorf(ctxActOn, err)
	}
	if err := op.check(m); err != nil {
		return nil, echelonErrorf(ctxActOn, err)
	}
	out := m.Clone()
	op.apply(out)

	return out, nil
}

// ElementaryMatrix returns the operation applied to the size×size identity.
//
// Errors:
//   - matrix.ErrInvalidDimensions for size ≤ 0.
//   - RowIndexError when size is too small for the referenced rows.
func (op RowOperation[T]) ElementaryMatrix(size int) (*matrix.Dense[T], error) {
	id, err := matrix.NewIdentity[T](size)
	if err != nil {
		return nil, echelonErrorf(ctxElementary, err)
	}
	if err = op.check(id); err != nil {
		return nil, echelonErrorf(ctxElementary, err)
	}
	op.apply(id)

	return id, nil
}

// check verifies that every referenced row exists in m.
func (op RowOperation[T]) check(m *matrix.Dense[T]) error {
	if r := op.maxRow(); r >= m.Rows() {
		return RowIndexError{Op: op.String(), Row: r, Height: m.Rows()}
	}

	return nil
}

// apply mutates m in place; rows must have been validated by check.
func (op RowOperation[T]) apply(m *matrix.Dense[T]) {
	switch op.kind {
	case KindSwitching:
		_ = m.SwapRows(op.from, op.onto)
	case KindScaling:
		row, _ := m.Row(op.onto)
		_ = m.SetRow(op.onto, row.Scale(op.scale))
	case KindSubstitution:
		src, _ := m.Row(op.from)
		dst, _ := m.Row(op.onto)
		sum, _ := dst.Add(src.Scale(op.scale))
		_ = m.SetRow(op.onto, sum)
	}
}

// String renders the operation with one-based row labels:
// "R1 <-> R2", "R1 * 2", "R2 + R1 * -3".
func (op RowOperation[T]) String() string {
	switch op.kind {
	case KindSwitching:
		return fmt.Sprintf("R%d <-> R%d", op.from+1, op.onto+1)
	case KindScaling:
		return fmt.Sprintf("R%d * %v", op.onto+1, op.scale)
	case KindSubstitution:
		return fmt.Sprintf("R%d + R%d * %v", op.onto+1, op.from+1, op.scale)
	default:
		return op.kind.String()
	}
}
