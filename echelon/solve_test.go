// SPDX-License-Identifier: MIT
package echelon_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/algebra"
	"github.com/katalvlaran/lvlalg/echelon"
	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/scalar"
)

func TestRank(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		grid [][]int64
		want int
	}{
		{"full", [][]int64{{2, 0, 1}, {1, 3, 2}, {1, 1, 2}}, 3},
		{"dependent", [][]int64{{1, 2}, {2, 4}}, 1},
		{"singular4", [][]int64{{1, 1, 1, 1}, {1, 1, 1, 2}, {1, 1, 2, 3}, {1, 1, 3, 4}}, 3},
		{"zero", [][]int64{{0, 0, 0}}, 0},
		{"tall", [][]int64{{1, 2}, {3, 4}, {5, 6}}, 2},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := echelon.Rank(fracs(t, tc.grid))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := echelon.Rank(ints(t, [][]int64{{1, 2}, {3, 4}}))
	require.ErrorIs(t, err, algebra.ErrFieldCapability)
}

func TestAugment(t *testing.T) {
	t.Parallel()

	a := ints(t, [][]int64{{1, 2}, {3, 4}})
	b := ints(t, [][]int64{{5}, {6}})
	aug, err := echelon.Augment(a, b)
	require.NoError(t, err)
	requireMatrix(t, ints(t, [][]int64{{1, 2, 5}, {3, 4, 6}}), aug)

	_, err = echelon.Augment(a, ints(t, [][]int64{{1}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = echelon.Augment(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestInverseGaussJordanMatchesAdjugate(t *testing.T) {
	t.Parallel()

	for _, g := range [][][]int64{
		{{4, 7}, {2, 6}},
		{{2, 0, 1}, {1, 3, 2}, {1, 1, 2}},
		{{1, 1, 1, 1}, {1, 2, 1, 2}, {1, 1, 2, 3}, {1, 1, 3, 4}},
		{{0, 1}, {1, 0}},
	} {
		m := fracs(t, g)
		want, err := m.Inverse()
		require.NoError(t, err)
		got, err := echelon.InverseGaussJordan(m)
		require.NoError(t, err)
		requireMatrix(t, want, got)
	}
}

func TestInverseGaussJordanErrors(t *testing.T) {
	t.Parallel()

	_, err := echelon.InverseGaussJordan(fracs(t, [][]int64{{1, 1, 1, 1}, {1, 1, 1, 2}, {1, 1, 2, 3}, {1, 1, 3, 4}}))
	require.ErrorIs(t, err, matrix.ErrSingular)
	var ioe matrix.IncompatibleOperationError
	require.True(t, errors.As(err, &ioe))
	assert.Equal(t, matrix.OpInverse, ioe.Op)

	_, err = echelon.InverseGaussJordan(fracs(t, [][]int64{{1, 2, 3}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	require.ErrorIs(t, err, matrix.ErrIncompatibleOperation)

	_, err = echelon.InverseGaussJordan(ints(t, [][]int64{{1, 0}, {0, 1}}))
	require.ErrorIs(t, err, algebra.ErrFieldCapability)
}

func TestSolve(t *testing.T) {
	t.Parallel()

	a := fracs(t, [][]int64{{2, 1}, {1, 3}})
	x, err := echelon.Solve(a, matrix.NewVector(scalar.FractionOf(3), scalar.FractionOf(5)))
	require.NoError(t, err)
	want := fracParse(t, [][]string{{"4/5", "7/5"}})
	row, err := want.Row(0)
	require.NoError(t, err)
	assert.True(t, row.Equal(x), "got %s", x)

	// tall but consistent
	tall := fracs(t, [][]int64{{1, 0}, {0, 1}, {1, 1}})
	x, err = echelon.Solve(tall, matrix.NewVector(scalar.FractionOf(1), scalar.FractionOf(2), scalar.FractionOf(3)))
	require.NoError(t, err)
	assert.Equal(t, "[1, 2]", x.String())
}

func TestSolveErrors(t *testing.T) {
	t.Parallel()

	a := fracs(t, [][]int64{{1, 1}, {2, 2}})
	_, err := echelon.Solve(a, matrix.NewVector(scalar.FractionOf(1), scalar.FractionOf(3)))
	require.ErrorIs(t, err, echelon.ErrInconsistent)

	_, err = echelon.Solve(a, matrix.NewVector(scalar.FractionOf(1), scalar.FractionOf(2)))
	require.ErrorIs(t, err, echelon.ErrUnderdetermined)

	_, err = echelon.Solve(a, matrix.NewVector(scalar.FractionOf(1)))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = echelon.Solve(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	r := ints(t, [][]int64{{1, 0}, {0, 1}})
	_, err = echelon.Solve(r, matrix.NewVector[scalar.Integer](1, 1))
	require.ErrorIs(t, err, algebra.ErrFieldCapability)
}
