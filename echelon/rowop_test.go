// SPDX-License-Identifier: MIT
package echelon_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/echelon"
	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/scalar"
)

func TestSwitchingActOn(t *testing.T) {
	t.Parallel()

	m := reals(t, [][]int64{{1, 2}, {3, 4}})
	op, err := echelon.Switching[scalar.Real](0, 1)
	require.NoError(t, err)
	got, err := op.ActOn(m)
	require.NoError(t, err)
	requireMatrix(t, reals(t, [][]int64{{3, 4}, {1, 2}}), got)
	requireMatrix(t, reals(t, [][]int64{{1, 2}, {3, 4}}), m) // input untouched
}

func TestScalingActOn(t *testing.T) {
	t.Parallel()

	m := reals(t, [][]int64{{1, 2}, {3, 4}})
	op, err := echelon.Scaling(0, scalar.Real(2))
	require.NoError(t, err)
	got, err := op.ActOn(m)
	require.NoError(t, err)
	requireMatrix(t, reals(t, [][]int64{{2, 4}, {3, 4}}), got)
}

func TestSubstitutionActOn(t *testing.T) {
	t.Parallel()

	m := ints(t, [][]int64{{1, 2}, {3, 4}})
	op, err := echelon.Substitution(0, 1, scalar.Integer(-3))
	require.NoError(t, err)
	got, err := op.ActOn(m)
	require.NoError(t, err)
	requireMatrix(t, ints(t, [][]int64{{1, 2}, {0, -2}}), got)
}

func TestRowOperationAccessors(t *testing.T) {
	t.Parallel()

	sub, err := echelon.Substitution(2, 0, scalar.Integer(5))
	require.NoError(t, err)
	assert.Equal(t, echelon.KindSubstitution, sub.Kind())
	assert.Equal(t, 2, sub.From())
	assert.Equal(t, 0, sub.Onto())
	assert.Equal(t, scalar.Integer(5), sub.Scale())

	sw, err := echelon.Switching[scalar.Integer](1, 3)
	require.NoError(t, err)
	assert.Equal(t, echelon.KindSwitching, sw.Kind())
	assert.True(t, sw.Scale().IsUnit())

	assert.Equal(t, "Scaling", echelon.KindScaling.String())
	assert.Equal(t, "Kind(9)", echelon.Kind(9).String())
}

func TestRowOperationString(t *testing.T) {
	t.Parallel()

	sw, _ := echelon.Switching[scalar.Real](0, 1)
	sc, _ := echelon.Scaling(0, scalar.Real(2))
	su, _ := echelon.Substitution(0, 1, scalar.Real(-3))
	half, _ := scalar.NewFraction(1, 2)
	fr, _ := echelon.Scaling(2, half)

	assert.Equal(t, "R1 <-> R2", sw.String())
	assert.Equal(t, "R1 * 2", sc.String())
	assert.Equal(t, "R2 + R1 * -3", su.String())
	assert.Equal(t, "R3 * 1/2", fr.String())
}

func TestRowOperationInvalid(t *testing.T) {
	t.Parallel()

	for name, build := range map[string]func() error{
		"scaling-null": func() error {
			_, err := echelon.Scaling(0, scalar.Real(0))
			return err
		},
		"scaling-negative": func() error {
			_, err := echelon.Scaling(-1, scalar.Real(1))
			return err
		},
		"substitution-same": func() error {
			_, err := echelon.Substitution(1, 1, scalar.Real(1))
			return err
		},
		"substitution-null": func() error {
			_, err := echelon.Substitution(0, 1, scalar.Fraction{})
			return err
		},
		"substitution-negative": func() error {
			_, err := echelon.Substitution(-2, 1, scalar.Real(1))
			return err
		},
		"switching-same": func() error {
			_, err := echelon.Switching[scalar.Real](0, 0)
			return err
		},
		"switching-negative": func() error {
			_, err := echelon.Switching[scalar.Real](0, -1)
			return err
		},
	} {
		assert.ErrorIs(t, build(), echelon.ErrInvalidRowOperation, name)
	}
}

func TestActOnTooSmall(t *testing.T) {
	t.Parallel()

	m := reals(t, [][]int64{{1, 2}, {3, 4}})
	op, err := echelon.Switching[scalar.Real](0, 2)
	require.NoError(t, err)

	_, err = op.ActOn(m)
	require.ErrorIs(t, err, echelon.ErrIncompatibleRowOperation)
	var rie echelon.RowIndexError
	require.True(t, errors.As(err, &rie))
	assert.Equal(t, 2, rie.Row)
	assert.Equal(t, 2, rie.Height)
	assert.Equal(t, "R1 <-> R3", rie.Op)

	_, err = op.ActOn(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestElementaryMatrix(t *testing.T) {
	t.Parallel()

	m := fracs(t, [][]int64{{1, 2, 3}, {4, 5, 6}, {7, 8, 10}})
	sub, _ := echelon.Substitution(0, 2, scalar.FractionOf(-3))
	sw, _ := echelon.Switching[scalar.Fraction](0, 1)
	sc, _ := echelon.Scaling(1, scalar.FractionOf(4))

	e, err := sub.ElementaryMatrix(3)
	require.NoError(t, err)
	requireMatrix(t, fracs(t, [][]int64{{1, 0, 0}, {0, 1, 0}, {-3, 0, 1}}), e)

	for _, op := range []echelon.RowOperation[scalar.Fraction]{sub, sw, sc} {
		e, err := op.ElementaryMatrix(m.Rows())
		require.NoError(t, err)
		viaMul, err := e.Mul(m)
		require.NoError(t, err)
		viaAct, err := op.ActOn(m)
		require.NoError(t, err)
		requireMatrix(t, viaAct, viaMul)
	}

	_, err = sub.ElementaryMatrix(2)
	require.ErrorIs(t, err, echelon.ErrIncompatibleRowOperation)
	_, err = sub.ElementaryMatrix(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
