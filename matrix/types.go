// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by Dense and Vector.
package matrix

import "fmt"

// VectorType selects how a matrix is sliced into vectors when no explicit
// orientation is given: by rows or by columns.
type VectorType int

const (
	// Row slices a matrix into its row vectors (length = Cols).
	Row VectorType = iota
	// Column slices a matrix into its column vectors (length = Rows).
	Column
)

// String returns "Row" or "Column".
func (k VectorType) String() string {
	switch k {
	case Row:
		return "Row"
	case Column:
		return "Column"
	default:
		return fmt.Sprintf("VectorType(%d)", int(k))
	}
}

// valid reports whether k is one of the declared orientations.
func (k VectorType) valid() bool { return k == Row || k == Column }

// Shaped is the read-only shape surface consumed by validators and
// renderers outside this package.
type Shaped interface {
	// Rows returns the number of rows (height).
	Rows() int
	// Cols returns the number of columns (width).
	Cols() int
}
