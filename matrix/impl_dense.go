// SPDX-License-Identifier: MIT

// Package matrix - Dense[T] storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j
//     over any ring scalar type T.
//   - Guarantee safety at the public surface: At/Set and the vector indexers
//     return errors instead of panicking.
//   - Value semantics for vector views: Row/Column/Vector return owned copies;
//     writing back requires an explicit SetRow/SetColumn/SetVector call.
//
// Concurrency:
//   - Concurrent reads of one *Dense are safe. Any writer (Set, SetRow,
//     SetIndices, ...) requires external synchronization.
//
// Complexity quicksheet:
//   - NewDense: O(r*c); At/Set: O(1); Row/Column: O(c)/O(r); Clone: O(r*c).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlalg/algebra"
)

// ---------- error context tags ----------

const (
	ctxAt         = "At"
	ctxSet        = "Set"
	ctxVector     = "Vector"
	ctxSetVector  = "SetVector"
	ctxIndices    = "SetIndices"
	ctxFromRows   = "NewFromRows"
	ctxFromVecs   = "NewFromVectors"
	ctxNewDiag    = "NewDiagonal"
	ctxSubMatrix  = "SubMatrix"
	ctxNewDense   = "NewDense"
	ctxNewIdent   = "NewIdentity"
	ctxSwapRows   = "SwapRows"
	ctxVectorKind = "VectorType"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix over the ring T.
//   - r,c hold dimensions (Height, Width); both ≥ 1 for public constructors.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - opts carries the per-instance configuration (default VectorType, unit tolerance).
type Dense[T algebra.Ring[T]] struct {
	r, c int
	data []T
	opts Options
}

// NewDense creates an r×c null matrix (every entry is T's Null()).
//
// Errors:
//   - ErrInvalidDimensions when rows ≤ 0 or cols ≤ 0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T algebra.Ring[T]](rows, cols int, opts ...Option) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, denseErrorf(ctxNewDense, rows, cols, ErrInvalidDimensions)
	}

	return newDenseZeroOK[T](rows, cols, gatherOptions(opts...)), nil
}

// newDenseZeroOK is the internal constructor that allows rows==0 or cols==0
// (minors of 1×1 matrices). Callers guarantee non-negative dimensions.
func newDenseZeroOK[T algebra.Ring[T]](rows, cols int, o Options) *Dense[T] {
	buf := make([]T, rows*cols)
	null := algebra.NullOf[T]()
	for i := range buf {
		buf[i] = null
	}

	return &Dense[T]{r: rows, c: cols, data: buf, opts: o}
}

// NewFromRows builds a matrix from a row-major grid; the grid is copied.
//
// Errors:
//   - ErrInvalidDimensions for an empty grid or empty rows.
//   - ErrInvalidArgument for a ragged grid.
func NewFromRows[T algebra.Ring[T]](grid [][]T, opts ...Option) (*Dense[T], error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, ErrInvalidDimensions)
	}
	rows, cols := len(grid), len(grid[0])
	m := &Dense[T]{r: rows, c: cols, data: make([]T, 0, rows*cols), opts: gatherOptions(opts...)}
	for i, row := range grid {
		if len(row) != cols {
			return nil, fmt.Errorf("%s: row %d has %d entries, want %d: %w", ctxFromRows, i, len(row), cols, ErrInvalidArgument)
		}
		m.data = append(m.data, row...)
	}

	return m, nil
}

// NewFromVectors assembles a matrix from same-dimension vectors interpreted
// as rows (kind == Row) or columns (kind == Column).
//
// Errors:
//   - ErrInvalidDimensions when no vectors are given or they have dimension 0.
//   - ErrInvalidArgument when dimensions differ or kind is unknown.
//   - ErrNilMatrix when a vector is nil.
func NewFromVectors[T algebra.Ring[T]](kind VectorType, vectors []*Vector[T], opts ...Option) (*Dense[T], error) {
	if !kind.valid() {
		return nil, fmt.Errorf("%s: %w", ctxFromVecs, ErrInvalidArgument)
	}
	if len(vectors) == 0 || vectors[0] == nil || vectors[0].Dim() == 0 {
		return nil, fmt.Errorf("%s: %w", ctxFromVecs, ErrInvalidDimensions)
	}
	n, dim := len(vectors), vectors[0].Dim()
	rows, cols := n, dim
	if kind == Column {
		rows, cols = dim, n
	}
	m := newDenseZeroOK[T](rows, cols, gatherOptions(opts...))
	for k, v := range vectors {
		if err := ValidateVecLen(v, dim); err != nil {
			return nil, fmt.Errorf("%s: vector %d: %w", ctxFromVecs, k, err)
		}
		m.writeVector(k, kind, v.data)
	}

	return m, nil
}

// NewDiagonal returns the n×n matrix with values on the diagonal and Null()
// elsewhere (n = len(values)).
// Errors: ErrInvalidDimensions for no values.
func NewDiagonal[T algebra.Ring[T]](values []T, opts ...Option) (*Dense[T], error) {
	n := len(values)
	if n == 0 {
		return nil, fmt.Errorf("%s: %w", ctxNewDiag, ErrInvalidDimensions)
	}
	m := newDenseZeroOK[T](n, n, gatherOptions(opts...))
	for i, v := range values {
		m.data[i*n+i] = v
	}

	return m, nil
}

// NewIdentity returns the n×n unit matrix: Unit() on the diagonal, Null() elsewhere.
// Errors: ErrInvalidDimensions when n ≤ 0.
func NewIdentity[T algebra.Ring[T]](n int, opts ...Option) (*Dense[T], error) {
	if n <= 0 {
		return nil, denseErrorf(ctxNewIdent, n, n, ErrInvalidDimensions)
	}
	m := newDenseZeroOK[T](n, n, gatherOptions(opts...))
	unit := algebra.UnitOf[T]()
	for i := 0; i < n; i++ {
		m.data[i*n+i] = unit
	}

	return m, nil
}

// Rows returns the row count (Height). Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count (Width). Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// Options returns the matrix configuration.
func (m *Dense[T]) Options() Options { return m.opts }

// VectorType returns the default slicing orientation of this matrix.
func (m *Dense[T]) VectorType() VectorType { return m.opts.vectorType }

// IsSquare reports Rows == Cols.
func (m *Dense[T]) IsSquare() bool { return m.r == m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// extent returns (count, dim) of the vectors of the given orientation.
func (m *Dense[T]) extent(kind VectorType) (count, dim int) {
	if kind == Column {
		return m.c, m.r
	}

	return m.r, m.c
}

// readVector copies vector n of the given orientation (no bounds checks).
func (m *Dense[T]) readVector(n int, kind VectorType) []T {
	if kind == Column {
		out := make([]T, m.r)
		for i := 0; i < m.r; i++ {
			out[i] = m.data[i*m.c+n]
		}
		return out
	}
	out := make([]T, m.c)
	copy(out, m.data[n*m.c:(n+1)*m.c])

	return out
}

// writeVector stores values as vector n of the given orientation (no checks).
func (m *Dense[T]) writeVector(n int, kind VectorType, values []T) {
	if kind == Column {
		for i := 0; i < m.r; i++ {
			m.data[i*m.c+n] = values[i]
		}
		return
	}
	copy(m.data[n*m.c:(n+1)*m.c], values)
}

// VectorOf returns an owned copy of row n (kind == Row, dimension Cols) or
// column n (kind == Column, dimension Rows).
// Errors: ErrInvalidArgument (unknown kind), ErrOutOfRange.
func (m *Dense[T]) VectorOf(n int, kind VectorType) (*Vector[T], error) {
	if !kind.valid() {
		return nil, fmt.Errorf("Dense.%s(%d): %s: %w", ctxVector, n, ctxVectorKind, ErrInvalidArgument)
	}
	count, _ := m.extent(kind)
	if err := ValidateIndex(n, count); err != nil {
		return nil, fmt.Errorf("Dense.%s(%d, %s): %w", ctxVector, n, kind, err)
	}

	return &Vector[T]{data: m.readVector(n, kind), tol: m.opts.unitTolerance}, nil
}

// Vector is VectorOf with the matrix's default orientation.
func (m *Dense[T]) Vector(n int) (*Vector[T], error) { return m.VectorOf(n, m.opts.vectorType) }

// Row returns an owned copy of row i.
func (m *Dense[T]) Row(i int) (*Vector[T], error) { return m.VectorOf(i, Row) }

// Column returns an owned copy of column j.
func (m *Dense[T]) Column(j int) (*Vector[T], error) { return m.VectorOf(j, Column) }

// Vectors returns owned copies of every vector of the default orientation.
func (m *Dense[T]) Vectors() []*Vector[T] {
	kind := m.opts.vectorType
	count, _ := m.extent(kind)
	out := make([]*Vector[T], count)
	for k := 0; k < count; k++ {
		out[k] = &Vector[T]{data: m.readVector(k, kind), tol: m.opts.unitTolerance}
	}

	return out
}

// SetVectorOf writes v back as row/column n.
// The vector's dimension must equal the orthogonal extent (Cols for rows,
// Rows for columns).
// Errors: ErrInvalidArgument (kind or dimension), ErrOutOfRange, ErrNilMatrix.
func (m *Dense[T]) SetVectorOf(n int, kind VectorType, v *Vector[T]) error {
	if !kind.valid() {
		return fmt.Errorf("Dense.%s(%d): %s: %w", ctxSetVector, n, ctxVectorKind, ErrInvalidArgument)
	}
	count, dim := m.extent(kind)
	if err := ValidateIndex(n, count); err != nil {
		return fmt.Errorf("Dense.%s(%d, %s): %w", ctxSetVector, n, kind, err)
	}
	if err := ValidateVecLen(v, dim); err != nil {
		return fmt.Errorf("Dense.%s(%d, %s): %w", ctxSetVector, n, kind, err)
	}
	m.writeVector(n, kind, v.data)

	return nil
}

// SetVector is SetVectorOf with the matrix's default orientation.
func (m *Dense[T]) SetVector(n int, v *Vector[T]) error {
	return m.SetVectorOf(n, m.opts.vectorType, v)
}

// SetRow writes v as row i.
func (m *Dense[T]) SetRow(i int, v *Vector[T]) error { return m.SetVectorOf(i, Row, v) }

// SetColumn writes v as column j.
func (m *Dense[T]) SetColumn(j int, v *Vector[T]) error { return m.SetVectorOf(j, Column, v) }

// SwapRows exchanges rows i and j in place.
// Errors: ErrOutOfRange.
func (m *Dense[T]) SwapRows(i, j int) error {
	if err := ValidateIndex(i, m.r); err != nil {
		return denseErrorf(ctxSwapRows, i, j, err)
	}
	if err := ValidateIndex(j, m.r); err != nil {
		return denseErrorf(ctxSwapRows, i, j, err)
	}
	if i == j {
		return nil
	}
	a, b := m.data[i*m.c:(i+1)*m.c], m.data[j*m.c:(j+1)*m.c]
	for k := range a {
		a[k], b[k] = b[k], a[k]
	}

	return nil
}

// Indices returns a deep copy of the grid as [row][col].
func (m *Dense[T]) Indices() [][]T {
	out := make([][]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.readVector(i, Row)
	}

	return out
}

// SetIndices replaces the whole grid and recomputes Rows/Cols.
// On error the matrix is left untouched.
func (m *Dense[T]) SetIndices(grid [][]T) error {
	next, err := NewFromRows(grid)
	if err != nil {
		return fmt.Errorf("Dense.%s: %w", ctxIndices, err)
	}
	m.r, m.c, m.data = next.r, next.c, next.data

	return nil
}

// Clone returns a deep copy (new buffer, same options).
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp, opts: m.opts}
}

// Equal reports whether both matrices are non-nil, have the same shape and
// pairwise Equals entries.
func (m *Dense[T]) Equal(other *Dense[T]) bool {
	if m == nil || other == nil {
		return false
	}
	if m.r != other.r || m.c != other.c {
		return false
	}
	for k := range m.data {
		if !m.data[k].Equals(other.data[k]) {
			return false
		}
	}

	return true
}

// IsNull reports whether every entry is null.
func (m *Dense[T]) IsNull() bool {
	for _, v := range m.data {
		if !v.IsNull() {
			return false
		}
	}

	return true
}

// Do calls f for every entry in row-major order until f returns false.
func (m *Dense[T]) Do(f func(i, j int, v T) bool) {
	for i := 0; i < m.r; i++ {
		base := i * m.c
		for j := 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// String renders one "[a, b, c]" line per row for diagnostics.
func (m *Dense[T]) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base := i * m.c
		for j := 0; j < m.c; j++ {
			b.WriteString(fmt.Sprint(m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
