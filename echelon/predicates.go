// SPDX-License-Identifier: MIT
// Package echelon - pivot search and shape predicates.
//
// Every predicate takes ignore, the number of trailing columns excluded from
// pivot search (the amountToIgnore of augmented systems). Pivots are searched
// in columns [0, Cols-ignore). GetPivot rejects an ignore outside [0, Cols];
// the boolean predicates clamp it into that range.

package echelon

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/algebra"
	"github.com/katalvlaran/lvlalg/matrix"
)

// at reads an entry whose indices are valid by construction.
func at[T algebra.Ring[T]](m *matrix.Dense[T], i, j int) T {
	v, _ := m.At(i, j)

	return v
}

// searchWidth is the number of columns considered for pivots, within [0, Cols].
func searchWidth[T algebra.Ring[T]](m *matrix.Dense[T], ignore int) int {
	switch {
	case ignore < 0:
		return m.Cols()
	case ignore > m.Cols():
		return 0
	}

	return m.Cols() - ignore
}

// pivot is GetPivot without bounds checks.
func pivot[T algebra.Ring[T]](m *matrix.Dense[T], row, ignore int) int {
	w := searchWidth(m, ignore)
	for j := 0; j < w; j++ {
		if !at(m, row, j).IsNull() {
			return j
		}
	}

	return -1
}

// GetPivot returns the column of the first non-null entry of row within
// [0, Cols-ignore), or -1 when the row is null there.
// Errors: matrix.ErrOutOfRange for an invalid row, matrix.ErrInvalidArgument
// for ignore < 0 or ignore > Cols.
func GetPivot[T algebra.Ring[T]](m *matrix.Dense[T], row, ignore int) (int, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return -1, echelonErrorf("GetPivot", err)
	}
	if ignore < 0 || ignore > m.Cols() {
		return -1, fmt.Errorf("GetPivot: ignore %d outside [0, %d]: %w", ignore, m.Cols(), matrix.ErrInvalidArgument)
	}
	if err := matrix.ValidateIndex(row, m.Rows()); err != nil {
		return -1, echelonErrorf(fmt.Sprintf("GetPivot(%d)", row), err)
	}

	return pivot(m, row, ignore), nil
}

// pivots returns the pivot column of every row.
func pivots[T algebra.Ring[T]](m *matrix.Dense[T], ignore int) []int {
	out := make([]int, m.Rows())
	for i := range out {
		out[i] = pivot(m, i, ignore)
	}

	return out
}

// AmountOfNullRows counts rows without a pivot.
func AmountOfNullRows[T algebra.Ring[T]](m *matrix.Dense[T], ignore int) int {
	n := 0
	for _, p := range pivots(m, ignore) {
		if p < 0 {
			n++
		}
	}

	return n
}

// IsNullRowsBelow reports whether every null row lies below every pivot row.
func IsNullRowsBelow[T algebra.Ring[T]](m *matrix.Dense[T], ignore int) bool {
	seenNull := false
	for _, p := range pivots(m, ignore) {
		if p < 0 {
			seenNull = true
		} else if seenNull {
			return false
		}
	}

	return true
}

// IsSorted reports IsNullRowsBelow and non-decreasing pivots among pivot rows.
func IsSorted[T algebra.Ring[T]](m *matrix.Dense[T], ignore int) bool {
	if !IsNullRowsBelow(m, ignore) {
		return false
	}
	last := -1
	for _, p := range pivots(m, ignore) {
		if p < 0 {
			break
		}
		if p < last {
			return false
		}
		last = p
	}

	return true
}

// IsEchelon reports whether pivots strictly increase from row to row and
// all null rows sit at the bottom.
func IsEchelon[T algebra.Ring[T]](m *matrix.Dense[T], ignore int) bool {
	if !IsNullRowsBelow(m, ignore) {
		return false
	}
	last := -1
	for _, p := range pivots(m, ignore) {
		if p < 0 {
			break
		}
		if p <= last {
			return false
		}
		last = p
	}

	return true
}

// IsReducedEchelon reports IsEchelon, every pivot equal to Unit(), and every
// entry above a pivot null.
func IsReducedEchelon[T algebra.Ring[T]](m *matrix.Dense[T], ignore int) bool {
	if !IsEchelon(m, ignore) {
		return false
	}
	for i, p := range pivots(m, ignore) {
		if p < 0 {
			break
		}
		if !at(m, i, p).IsUnit() {
			return false
		}
		for above := 0; above < i; above++ {
			if !at(m, above, p).IsNull() {
				return false
			}
		}
	}

	return true
}
