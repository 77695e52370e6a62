// SPDX-License-Identifier: MIT
package echelon_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/algebra"
	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/scalar"
)

// grid converts an int64 grid with conv or fails the test.
func grid[T algebra.Ring[T]](t testing.TB, rows [][]int64, conv func(int64) T) *matrix.Dense[T] {
	t.Helper()
	g := make([][]T, len(rows))
	for i, row := range rows {
		g[i] = make([]T, len(row))
		for j, v := range row {
			g[i][j] = conv(v)
		}
	}
	m, err := matrix.NewFromRows(g)
	require.NoError(t, err)

	return m
}

func fracs(t testing.TB, rows [][]int64) *matrix.Dense[scalar.Fraction] {
	t.Helper()
	return grid(t, rows, scalar.FractionOf)
}

func reals(t testing.TB, rows [][]int64) *matrix.Dense[scalar.Real] {
	t.Helper()
	return grid(t, rows, func(v int64) scalar.Real { return scalar.Real(v) })
}

func ints(t testing.TB, rows [][]int64) *matrix.Dense[scalar.Integer] {
	t.Helper()
	return grid(t, rows, func(v int64) scalar.Integer { return scalar.Integer(v) })
}

// fracParse builds a Fraction matrix from literals such as "-7/10".
func fracParse(t testing.TB, rows [][]string) *matrix.Dense[scalar.Fraction] {
	t.Helper()
	g := make([][]scalar.Fraction, len(rows))
	for i, row := range rows {
		g[i] = make([]scalar.Fraction, len(row))
		for j, s := range row {
			f, err := scalar.ParseFraction(s)
			require.NoError(t, err)
			g[i][j] = f
		}
	}
	m, err := matrix.NewFromRows(g)
	require.NoError(t, err)

	return m
}

// requireMatrix fails unless want.Equal(got).
func requireMatrix[T algebra.Ring[T]](t testing.TB, want, got *matrix.Dense[T]) {
	t.Helper()
	require.NotNil(t, got)
	require.Truef(t, want.Equal(got), "want:\n%s\ngot:\n%s", want, got)
}
