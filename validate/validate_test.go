// SPDX-License-Identifier: MIT
package validate_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	codatools "github.com/jsuyu/CoDaTools"
	"github.com/jsuyu/CoDaTools/matrix"
	"github.com/jsuyu/CoDaTools/validate"
)

func dense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)
	return m
}

func TestIsComposition(t *testing.T) {
	X := dense(t, [][]float64{{1, 2}, {0, 1}, {3, -1}, {0.1, 0.9}})
	ok, mask := validate.IsComposition(X)
	assert.False(t, ok)
	assert.Equal(t, []bool{true, false, false, true}, mask)

	ok, mask = validate.IsComposition(dense(t, [][]float64{{1, 2}}))
	assert.True(t, ok)
	assert.Equal(t, []bool{true}, mask)

	ok, mask = validate.IsComposition(nil)
	assert.False(t, ok)
	assert.Nil(t, mask)
}

func TestIsClosed(t *testing.T) {
	t.Run("common sum", func(t *testing.T) {
		X := dense(t, [][]float64{{0.2, 0.8}, {0.5, 0.5}, {0.3, 0.7}})
		ok, mask, k := validate.IsClosed(X, 1e-6)
		assert.True(t, ok)
		assert.Equal(t, []bool{true, true, true}, mask)
		assert.InDelta(t, 1, k, 1e-12)
	})
	t.Run("constant other than one", func(t *testing.T) {
		X := dense(t, [][]float64{{60, 40}, {10, 90}})
		ok, _, k := validate.IsClosed(X, 1e-6)
		assert.True(t, ok)
		assert.Equal(t, 100.0, k)
	})
	t.Run("one row off", func(t *testing.T) {
		X := dense(t, [][]float64{{0.2, 0.8}, {0.5, 0.5}, {1, 1}})
		ok, mask, k := validate.IsClosed(X, 1e-6)
		assert.False(t, ok)
		assert.Equal(t, []bool{true, true, false}, mask)
		assert.True(t, math.IsNaN(k))
	})
	t.Run("tie goes to the smaller sum", func(t *testing.T) {
		X := dense(t, [][]float64{{1, 1}, {2, 2}})
		ok, mask, _ := validate.IsClosed(X, 1e-6)
		assert.False(t, ok)
		assert.Equal(t, []bool{true, false}, mask)
	})
	t.Run("non-positive row", func(t *testing.T) {
		X := dense(t, [][]float64{{0.5, 0.5}, {-0.5, 1.5}})
		ok, mask, k := validate.IsClosed(X, 1e-6)
		assert.False(t, ok)
		assert.Equal(t, []bool{true, false}, mask)
		assert.True(t, math.IsNaN(k))
	})
	t.Run("bad tolerance", func(t *testing.T) {
		ok, mask, _ := validate.IsClosed(dense(t, [][]float64{{1, 1}}), -1)
		assert.False(t, ok)
		assert.Nil(t, mask)
	})
}

func TestIsCLR(t *testing.T) {
	Z := dense(t, [][]float64{{-1, 0.5, 0.5}, {1, 1, 1}, {1e-12, -1e-12, 0}})
	ok, mask := validate.IsCLR(Z, 1e-9)
	assert.False(t, ok)
	assert.Equal(t, []bool{true, false, true}, mask)
}

func TestCheck(t *testing.T) {
	o, err := codatools.Resolve()
	require.NoError(t, err)

	X := dense(t, [][]float64{{1, 2, 3}, {1, 0, 1}, {1, 1, 1}, {-1, 1, 1}})
	_, err = validate.Check("CLR", X, o)
	require.ErrorIs(t, err, codatools.ErrNonPositiveInput)
	assert.Contains(t, err.Error(), "CLR: 2 row(s)")
	assert.Contains(t, err.Error(), "[2 4]")

	_, err = validate.Check("CLR", dense(t, [][]float64{{1}, {2}}), o)
	require.ErrorIs(t, err, codatools.ErrInvalidDimension)
	_, err = validate.Check("CLR", nil, o)
	require.ErrorIs(t, err, codatools.ErrInvalidDimension)

	d, err := validate.Check("CLR", dense(t, [][]float64{{1, 2}}), o)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Cols())
}
