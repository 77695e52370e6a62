// SPDX-License-Identifier: MIT
// Package matrix_test validates option resolution and panic contracts.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/scalar"
)

func TestOptionsDefaults(t *testing.T) {
	t.Parallel()

	o := matrix.NewMatrixOptions()
	assert.Equal(t, matrix.DefaultVectorType, o.VectorType())
	assert.Equal(t, matrix.DefaultUnitTolerance, o.UnitTolerance())
}

func TestOptionsLastWriterWins(t *testing.T) {
	t.Parallel()

	o := matrix.NewMatrixOptions(matrix.WithColumnVectors(), nil, matrix.WithRowVectors(), matrix.WithUnitTolerance(0.5))
	assert.Equal(t, matrix.Row, o.VectorType())
	assert.Equal(t, 0.5, o.UnitTolerance())
}

func TestOptionsPanics(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, "matrix: WithVectorType: unknown VectorType", func() {
		matrix.WithVectorType(matrix.VectorType(7))
	})
	for _, tol := range []float64{-1, math.NaN(), math.Inf(1)} {
		assert.Panics(t, func() { matrix.WithUnitTolerance(tol) })
	}
}

func TestUnitToleranceFlowsToVectors(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewFromRows([][]scalar.Real{{0.6, 0.81}}, matrix.WithUnitTolerance(0.01))
	require.NoError(t, err)
	row, err := m.Row(0)
	require.NoError(t, err)
	// ‖(0.6, 0.81)‖ ≈ 1.008
	assert.True(t, row.IsUnit())
	assert.False(t, row.IsUnitWithin(1e-6))
}

func TestVectorTypeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Row", matrix.Row.String())
	assert.Equal(t, "Column", matrix.Column.String())
	assert.Equal(t, "VectorType(3)", matrix.VectorType(3).String())
}
