// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures over Real, Fraction and Integer scalars.
//   - Keep helpers fatal on construction errors so test bodies stay focused.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/algebra"
	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/scalar"
)

// RealDense builds a Real matrix from a float grid or fails the test.
func RealDense(t testing.TB, grid [][]float64, opts ...matrix.Option) *matrix.Dense[scalar.Real] {
	t.Helper()
	rows := make([][]scalar.Real, len(grid))
	for i, row := range grid {
		rows[i] = make([]scalar.Real, len(row))
		for j, v := range row {
			rows[i][j] = scalar.Real(v)
		}
	}
	m, err := matrix.NewFromRows(rows, opts...)
	require.NoError(t, err)

	return m
}

// FracDense builds an exact Fraction matrix from an integer grid.
func FracDense(t testing.TB, grid [][]int64) *matrix.Dense[scalar.Fraction] {
	t.Helper()
	rows := make([][]scalar.Fraction, len(grid))
	for i, row := range grid {
		rows[i] = make([]scalar.Fraction, len(row))
		for j, v := range row {
			rows[i][j] = scalar.FractionOf(v)
		}
	}
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// FracParse builds a Fraction matrix from literals such as "1/2".
func FracParse(t testing.TB, grid [][]string) *matrix.Dense[scalar.Fraction] {
	t.Helper()
	rows := make([][]scalar.Fraction, len(grid))
	for i, row := range grid {
		rows[i] = make([]scalar.Fraction, len(row))
		for j, s := range row {
			f, err := scalar.ParseFraction(s)
			require.NoError(t, err)
			rows[i][j] = f
		}
	}
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// IntDense builds an Integer matrix.
func IntDense(t testing.TB, grid [][]int64) *matrix.Dense[scalar.Integer] {
	t.Helper()
	rows := make([][]scalar.Integer, len(grid))
	for i, row := range grid {
		rows[i] = make([]scalar.Integer, len(row))
		for j, v := range row {
			rows[i][j] = scalar.Integer(v)
		}
	}
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt[T algebra.Ring[T]](t testing.TB, m *matrix.Dense[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// RequireEqualMatrix fails unless want.Equal(got), printing both on failure.
func RequireEqualMatrix[T algebra.Ring[T]](t testing.TB, want, got *matrix.Dense[T]) {
	t.Helper()
	require.NotNil(t, got)
	require.Truef(t, want.Equal(got), "want:\n%s\ngot:\n%s", want, got)
}
