// SPDX-License-Identifier: MIT
package echelon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvlalg/algebra"
	"github.com/katalvlaran/lvlalg/echelon"
	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/scalar"
)

// ReducerSuite exercises the four reduction phases over exact fractions.
type ReducerSuite struct {
	suite.Suite
	fixtures map[string][][]int64
}

func (s *ReducerSuite) SetupTest() {
	s.fixtures = map[string][][]int64{
		"regular3":  {{0, 2, 4}, {1, 1, 1}, {2, 2, 3}},
		"singular4": {{1, 1, 1, 1}, {1, 1, 1, 2}, {1, 1, 2, 3}, {1, 1, 3, 4}},
		"wide":      {{1, 2, 3, 4}, {2, 4, 6, 9}, {0, 0, 1, 1}},
		"tall":      {{1, 2}, {3, 4}, {5, 6}, {7, 8}},
		"nullrows":  {{0, 0, 0}, {0, 3, 1}, {0, 0, 0}, {2, 1, 1}},
		"zero":      {{0, 0}, {0, 0}},
		"single":    {{5}},
	}
}

// TestReducedIsReducedEchelon verifies the result satisfies IsReducedEchelon.
func (s *ReducerSuite) TestReducedIsReducedEchelon() {
	for name, g := range s.fixtures {
		m := fracs(s.T(), g)
		red, err := echelon.ToReducedEchelonForm(m)
		require.NoError(s.T(), err, name)
		assert.True(s.T(), echelon.IsReducedEchelon(red, 0), "%s:\n%s", name, red)
		assert.True(s.T(), echelon.IsEchelon(red, 0), name)
		assert.True(s.T(), echelon.IsSorted(red, 0), name)
	}
}

// TestIdempotent verifies RREF(RREF(M)) == RREF(M) with an empty second log.
func (s *ReducerSuite) TestIdempotent() {
	for name, g := range s.fixtures {
		once, err := echelon.ToReducedEchelonForm(fracs(s.T(), g))
		require.NoError(s.T(), err, name)
		twice, err := echelon.Reduce(once)
		require.NoError(s.T(), err, name)
		requireMatrix(s.T(), once, twice.Matrix)
		assert.Empty(s.T(), twice.Operations, name)
	}
}

// TestTransformReproducesResult verifies E × M == RREF(M) and Replay(M) == RREF(M).
func (s *ReducerSuite) TestTransformReproducesResult() {
	for name, g := range s.fixtures {
		m := fracs(s.T(), g)
		red, err := echelon.Reduce(m)
		require.NoError(s.T(), err, name)

		e, err := red.Transform(m.Rows())
		require.NoError(s.T(), err, name)
		prod, err := e.Mul(m)
		require.NoError(s.T(), err, name)
		requireMatrix(s.T(), red.Matrix, prod)

		// the same product, one elementary matrix at a time
		acc, err := matrix.IdentityLike(e)
		require.NoError(s.T(), err)
		for _, op := range red.Operations {
			el, err := op.ElementaryMatrix(m.Rows())
			require.NoError(s.T(), err)
			acc, err = el.Mul(acc)
			require.NoError(s.T(), err)
		}
		requireMatrix(s.T(), e, acc)

		replayed, err := red.Replay(m)
		require.NoError(s.T(), err)
		requireMatrix(s.T(), red.Matrix, replayed)
	}
}

// TestOperationLog pins the exact operations for a 3×3 fixture.
func (s *ReducerSuite) TestOperationLog() {
	m := fracs(s.T(), s.fixtures["regular3"])
	red, err := echelon.Reduce(m)
	require.NoError(s.T(), err)

	got := make([]string, len(red.Operations))
	for i, op := range red.Operations {
		got[i] = op.String()
	}
	require.Equal(s.T(), []string{
		"R1 <-> R2",
		"R2 <-> R3",
		"R2 + R1 * -2",
		"R2 <-> R3",
		"R2 * 1/2",
		"R1 + R3 * -1",
		"R2 + R3 * -2",
		"R1 + R2 * -1",
	}, got)

	id, err := matrix.NewIdentity[scalar.Fraction](3)
	require.NoError(s.T(), err)
	requireMatrix(s.T(), id, red.Matrix)

	// for a regular matrix the transform is the inverse
	inv, err := m.Inverse()
	require.NoError(s.T(), err)
	e, err := red.Transform(3)
	require.NoError(s.T(), err)
	requireMatrix(s.T(), inv, e)
}

// TestInputUntouched verifies reduction works on a private copy.
func (s *ReducerSuite) TestInputUntouched() {
	m := fracs(s.T(), s.fixtures["nullrows"])
	snapshot := m.Clone()
	_, err := echelon.ToReducedEchelonForm(m)
	require.NoError(s.T(), err)
	requireMatrix(s.T(), snapshot, m)
}

// TestPhases checks each intermediate form on the same input.
func (s *ReducerSuite) TestPhases() {
	m := fracs(s.T(), s.fixtures["nullrows"])
	r := echelon.NewReducer[scalar.Fraction]()

	sorted, err := r.ToSortedForm(m)
	require.NoError(s.T(), err)
	requireMatrix(s.T(), fracs(s.T(), [][]int64{{2, 1, 1}, {0, 3, 1}, {0, 0, 0}, {0, 0, 0}}), sorted)

	ech, err := r.ToEchelonForm(m)
	require.NoError(s.T(), err)
	requireMatrix(s.T(), sorted, ech)

	unit, err := r.ToUnitPivots(m)
	require.NoError(s.T(), err)
	requireMatrix(s.T(), fracParse(s.T(), [][]string{
		{"1", "1/2", "1/2"},
		{"0", "1", "1/3"},
		{"0", "0", "0"},
		{"0", "0", "0"},
	}), unit)

	rref, err := r.ToReducedEchelonForm(m)
	require.NoError(s.T(), err)
	requireMatrix(s.T(), fracParse(s.T(), [][]string{
		{"1", "0", "1/3"},
		{"0", "1", "1/3"},
		{"0", "0", "0"},
		{"0", "0", "0"},
	}), rref)
}

func TestReducerSuite(t *testing.T) {
	suite.Run(t, new(ReducerSuite))
}

func TestReduceRealDiagonal(t *testing.T) {
	t.Parallel()

	red, err := echelon.ToReducedEchelonForm(reals(t, [][]int64{{2, 0}, {0, 2}}))
	require.NoError(t, err)
	requireMatrix(t, reals(t, [][]int64{{1, 0}, {0, 1}}), red)
}

func TestReduceRealResidueIsExactNull(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewFromRows([][]scalar.Real{{0.1, 0.3}, {0.7, 0.2}})
	require.NoError(t, err)
	red, err := echelon.ToReducedEchelonForm(m)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v, _ := red.At(i, j)
			if i == j {
				assert.Equal(t, scalar.Real(1), v)
			} else {
				assert.Equal(t, scalar.Real(0), v)
			}
		}
	}
}

func TestSortedFormNullRowLast(t *testing.T) {
	t.Parallel()

	m := ints(t, [][]int64{{0, 0}, {1, 2}})
	sorted, err := echelon.ToSortedForm(m)
	require.NoError(t, err)
	requireMatrix(t, ints(t, [][]int64{{1, 2}, {0, 0}}), sorted)
	assert.Equal(t, 1, echelon.AmountOfNullRows(ints(t, [][]int64{{1, 2}, {0, 0}}), 0))
	assert.True(t, echelon.IsNullRowsBelow(sorted, 0))
	assert.False(t, echelon.IsNullRowsBelow(m, 0))
}

func TestRingOnlyFailsWithFieldCapability(t *testing.T) {
	t.Parallel()

	_, err := echelon.ToReducedEchelonForm(ints(t, [][]int64{{2, 1}, {4, 3}}))
	require.ErrorIs(t, err, algebra.ErrFieldCapability)

	// no elimination needed, but unit pivots still require inverses
	_, err = echelon.ToReducedEchelonForm(ints(t, [][]int64{{1, 0}, {0, 1}}))
	require.ErrorIs(t, err, algebra.ErrFieldCapability)

	ech, err := echelon.ToEchelonForm(ints(t, [][]int64{{0, 3}, {2, 1}}))
	require.NoError(t, err)
	requireMatrix(t, ints(t, [][]int64{{2, 1}, {0, 3}}), ech)
}

func TestPredicates(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name                     string
		grid                     [][]int64
		ignore                   int
		sorted, echelon, reduced bool
	}{
		{"identity", [][]int64{{1, 0}, {0, 1}}, 0, true, true, true},
		{"upper", [][]int64{{2, 1}, {0, 3}}, 0, true, true, false},
		{"above-pivot", [][]int64{{1, 1}, {0, 1}}, 0, true, true, false},
		{"equal-pivots", [][]int64{{1, 1}, {1, 0}}, 0, true, false, false},
		{"unsorted", [][]int64{{0, 1}, {1, 0}}, 0, false, false, false},
		{"null-on-top", [][]int64{{0, 0}, {1, 0}}, 0, false, false, false},
		{"augmented", [][]int64{{1, 0, 7}, {0, 1, 9}}, 1, true, true, true},
		{"augmented-null", [][]int64{{1, 0, 7}, {0, 0, 9}}, 1, true, true, true},
		{"all-ignored", [][]int64{{3, 4}, {5, 6}}, 2, true, true, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m := fracs(t, tc.grid)
			assert.Equal(t, tc.sorted, echelon.IsSorted(m, tc.ignore), "IsSorted")
			assert.Equal(t, tc.echelon, echelon.IsEchelon(m, tc.ignore), "IsEchelon")
			assert.Equal(t, tc.reduced, echelon.IsReducedEchelon(m, tc.ignore), "IsReducedEchelon")
		})
	}
}

func TestGetPivot(t *testing.T) {
	t.Parallel()

	m := fracs(t, [][]int64{{0, 0, 5}, {0, 2, 0}})
	p, err := echelon.GetPivot(m, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, p)
	p, err = echelon.GetPivot(m, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, -1, p)
	p, err = echelon.GetPivot(m, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, p)

	_, err = echelon.GetPivot(m, 2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = echelon.GetPivot(m, 0, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)
	_, err = echelon.GetPivot(m, 0, 4)
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)
	p, err = echelon.GetPivot(m, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, -1, p)

	// predicates clamp ignore into [0, Cols]
	assert.Equal(t, 0, echelon.AmountOfNullRows(m, -3))
	assert.Equal(t, 2, echelon.AmountOfNullRows(m, 7))
}

func TestReducerOptions(t *testing.T) {
	t.Parallel()

	r := echelon.NewReducer[scalar.Fraction](echelon.WithIgnoredColumns(1), echelon.WithMaxSteps(50))
	assert.Equal(t, 1, r.Options().IgnoredColumns())
	assert.Equal(t, 50, r.Options().MaxSteps())

	assert.PanicsWithValue(t, "echelon: WithIgnoredColumns: n must be >= 0", func() { echelon.WithIgnoredColumns(-1) })
	assert.Panics(t, func() { echelon.WithMaxSteps(-5) })

	_, err := echelon.ToReducedEchelonForm(fracs(t, [][]int64{{1, 2}}), echelon.WithIgnoredColumns(3))
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)

	_, err = echelon.ToReducedEchelonForm(fracs(t, [][]int64{{0, 2, 4}, {1, 1, 1}, {2, 2, 3}}), echelon.WithMaxSteps(3))
	require.ErrorIs(t, err, echelon.ErrNoProgress)

	_, err = echelon.ToReducedEchelonForm[scalar.Fraction](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestReduceToForms(t *testing.T) {
	t.Parallel()

	m := fracs(t, [][]int64{{0, 2, 4}, {1, 1, 1}})
	r := echelon.NewReducer[scalar.Fraction]()
	counts := map[echelon.Form]int{
		echelon.FormSorted:     1,
		echelon.FormEchelon:    1,
		echelon.FormUnitPivots: 2,
		echelon.FormReduced:    3,
	}
	for form, want := range counts {
		red, err := r.ReduceTo(m, form)
		require.NoError(t, err, form.String())
		assert.Len(t, red.Operations, want, form.String())

		parsed, err := echelon.ParseForm(form.String())
		require.NoError(t, err)
		assert.Equal(t, form, parsed)
	}

	_, err := r.ReduceTo(m, echelon.Form(9))
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)
	_, err = echelon.ParseForm("upper")
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)
	assert.Equal(t, "Form(9)", echelon.Form(9).String())
}
