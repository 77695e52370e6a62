// SPDX-License-Identifier: MIT
package echelon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/algebra"
	"github.com/katalvlaran/lvlalg/echelon"
	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/scalar"
)

// dense builds a matrix from a literal grid of any scalar type.
func dense[T algebra.Ring[T]](t testing.TB, g [][]T) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewFromRows(g)
	require.NoError(t, err)

	return m
}

// requireReducesLikeInverse checks that an invertible m reduces to the
// identity and that Gauss-Jordan agrees with the adjugate inverse.
func requireReducesLikeInverse[T algebra.Field[T]](t *testing.T, m *matrix.Dense[T]) {
	t.Helper()

	red, err := echelon.ToReducedEchelonForm(m)
	require.NoError(t, err)
	assert.True(t, echelon.IsReducedEchelon(red, 0), "not reduced:\n%s", red)
	id, err := matrix.IdentityLike(m)
	require.NoError(t, err)
	requireMatrix(t, id, red)

	want, err := m.Inverse()
	require.NoError(t, err)
	got, err := echelon.InverseGaussJordan(m)
	require.NoError(t, err)
	requireMatrix(t, want, got)
}

func TestReduceRealMixedMagnitudes(t *testing.T) {
	t.Parallel()

	for name, g := range map[string][][]scalar.Real{
		"large 1x1":     {{2e9}},
		"mixed 2x2":     {{1e5, 1}, {1e-5, 2}},
		"tiny pivot":    {{3e-4, 2}, {1, 7e6}},
		"wide diagonal": {{1e-3, 0, 0}, {0, 1e4, 0}, {0, 0, 2.5}},
		"sparse 3x3":    {{4e6, 0, 3}, {0, 5e-3, 0}, {1, 0, 9e4}},
	} {
		g := g
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			requireReducesLikeInverse(t, dense(t, g))
		})
	}
}

func TestReduceComplexMixedMagnitudes(t *testing.T) {
	t.Parallel()

	for name, g := range map[string][][]scalar.Complex{
		"large 1x1": {{2e9i}},
		"mixed 2x2": {{1e5, 1i}, {1e-5, 2}},
		"rotated":   {{3e-4 + 1e-4i, 2}, {1, 7e6i}},
	} {
		g := g
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			requireReducesLikeInverse(t, dense(t, g))
		})
	}
}

func TestSolveRealMixedMagnitudes(t *testing.T) {
	t.Parallel()

	// x = [1, 1]
	a := dense(t, [][]scalar.Real{{1e5, 1}, {1e-5, 2}})
	x, err := echelon.Solve(a, matrix.NewVector[scalar.Real](1e5+1, 2+1e-5))
	require.NoError(t, err)
	assert.True(t, x.Equal(matrix.NewVector[scalar.Real](1, 1)), "got %s", x)

	rank, err := echelon.Rank(a)
	require.NoError(t, err)
	assert.Equal(t, 2, rank)
}

func TestPublicConstructorsStayStrict(t *testing.T) {
	t.Parallel()

	// the reducer may use factors such as 1e-10; callers may not
	_, err := echelon.Scaling(0, scalar.Real(1e-10))
	require.ErrorIs(t, err, echelon.ErrInvalidRowOperation)
	_, err = echelon.Substitution(0, 1, scalar.Real(1e-10))
	require.ErrorIs(t, err, echelon.ErrInvalidRowOperation)

	red, err := echelon.Reduce(dense(t, [][]scalar.Real{{1e5, 1}, {1e-5, 2}}))
	require.NoError(t, err)
	require.NotEmpty(t, red.Operations)
	assert.Equal(t, echelon.KindSubstitution, red.Operations[0].Kind())
	assert.InDelta(t, -1e-10, float64(red.Operations[0].Scale()), 1e-20)

	replayed, err := red.Replay(dense(t, [][]scalar.Real{{1e5, 1}, {1e-5, 2}}))
	require.NoError(t, err)
	requireMatrix(t, red.Matrix, replayed)
}
