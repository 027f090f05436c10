// SPDX-License-Identifier: MIT
package pairwise_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	codatools "github.com/jsuyu/CoDaTools"
	"github.com/jsuyu/CoDaTools/matrix"
	"github.com/jsuyu/CoDaTools/pairwise"
	"github.com/jsuyu/CoDaTools/transform"
)

func dense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)
	return m
}

func TestInferParts(t *testing.T) {
	for D := 2; D <= 40; D++ {
		got, err := pairwise.InferParts(D * (D - 1) / 2)
		require.NoError(t, err)
		assert.Equal(t, D, got)
	}
	for _, p := range []int{0, -3, 2, 4, 5, 7, 11} {
		_, err := pairwise.InferParts(p)
		require.ErrorIs(t, err, codatools.ErrInvalidDimension, "p=%d", p)
	}
}

func TestRecover_RoundTrip(t *testing.T) {
	inputs := [][][]float64{
		{{1, 2}},
		{{0.2, 0.3, 0.5}, {10, 1, 0.1}},
		{{0.4, 0.3, 0.2, 0.1}, {1, 2, 3, 4}, {5, 0.5, 20, 2}},
		{{1, 2, 3, 4, 5, 6, 7}},
	}
	for _, rows := range inputs {
		X := dense(t, rows)
		t.Run(fmt.Sprintf("D=%d", X.Cols()), func(t *testing.T) {
			pw, err := transform.PLR(X)
			require.NoError(t, err)

			res, err := pairwise.Recover(pw.Values)
			require.NoError(t, err)
			require.True(t, res.Valid, "max error %g", res.MaxError())
			assert.Equal(t, X.Cols(), res.D)
			assert.Less(t, res.MaxError(), 1e-9)

			closed, err := transform.Closure(X, 1)
			require.NoError(t, err)
			ok, err := matrix.AllClose(res.X, closed, 0, 1e-9)
			require.NoError(t, err)
			assert.True(t, ok, "want\n%vgot\n%v", closed, res.X)
		})
	}
}

func TestRecover_Infeasible(t *testing.T) {
	pw, err := transform.PLR(dense(t, [][]float64{{0.1, 0.2, 0.3, 0.4}, {1, 1, 1, 1}}))
	require.NoError(t, err)
	v, err := pw.Values.At(1, 2)
	require.NoError(t, err)
	require.NoError(t, pw.Values.Set(1, 2, v+0.5))

	res, err := pairwise.Recover(pw.Values)
	require.NoError(t, err, "an inadmissible table is not an error")
	assert.False(t, res.Valid)
	assert.Equal(t, 4, res.D)
	assert.Less(t, res.Errors[0], 1e-9)
	assert.Greater(t, res.Errors[1], 0.1)
	for _, row := range res.X.RawRows() {
		for _, x := range row {
			assert.True(t, math.IsNaN(x))
		}
	}

	// a generous tolerance admits the same table
	res, err = pairwise.Recover(pw.Values, codatools.WithTolerance(1))
	require.NoError(t, err)
	assert.True(t, res.Valid)
}

func TestRecover_ExplicitParts(t *testing.T) {
	pw := dense(t, [][]float64{{0, 0, 0}})
	res, err := pairwise.Recover(pw, codatools.WithParts(3))
	require.NoError(t, err)
	require.True(t, res.Valid)
	assert.InDeltaSlice(t, []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}, res.X.RawRows()[0], 1e-15)

	_, err = pairwise.Recover(pw, codatools.WithParts(4))
	require.ErrorIs(t, err, codatools.ErrInvalidDimension)
}

func TestRecover_Errors(t *testing.T) {
	_, err := pairwise.Recover(nil)
	require.ErrorIs(t, err, codatools.ErrInvalidDimension)

	_, err = pairwise.Recover(dense(t, [][]float64{{1, 2, 3, 4}}))
	require.ErrorIs(t, err, codatools.ErrInvalidDimension)

	nan, err := matrix.NewNaN(1, 3)
	require.NoError(t, err)
	_, err = pairwise.Recover(nan)
	require.ErrorIs(t, err, codatools.ErrInvalidParameter)

	_, err = pairwise.Recover(dense(t, [][]float64{{1}}), codatools.WithTolerance(-1))
	require.ErrorIs(t, err, codatools.ErrInvalidParameter)
}
