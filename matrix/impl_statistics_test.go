// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the row statistics.
package matrix_test

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/jsuyu/CoDaTools/matrix"
)

func TestCenterRowsBy_Max(t *testing.T) {
	X := mustFrom(t, [][]float64{{1, 2, 3}, {-1, 0, 4}})
	Xc, tops, err := matrix.CenterRowsBy(X, floats.Max)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4}, tops)
	requireClose(t, [][]float64{{-2, -1, 0}, {-5, -4, 0}}, Xc, 0)
}

func TestCenterRowsBy_LocationSeesCopy(t *testing.T) {
	X := mustFrom(t, [][]float64{{3, 1, 2}})
	med := func(row []float64) float64 {
		sort.Float64s(row) // reorders the scratch copy only
		return row[len(row)/2]
	}
	Xc, centers, err := matrix.CenterRowsBy(X, med)
	require.NoError(t, err)
	assert.Equal(t, []float64{2}, centers)
	requireClose(t, [][]float64{{1, -1, 0}}, Xc, 0)
	requireClose(t, [][]float64{{3, 1, 2}}, X, 0)
}

func TestCenterRowsBy_Errors(t *testing.T) {
	X := mustFrom(t, [][]float64{{1, 2}})
	_, _, err := matrix.CenterRowsBy(X, func([]float64) float64 { return math.NaN() })
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	_, _, err = matrix.CenterRowsBy(X, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, _, err = matrix.CenterRowsBy(nil, floats.Max)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestNormalizeRowsL1(t *testing.T) {
	X := mustFrom(t, [][]float64{{1, 3}, {0, 0}, {2, 2}})
	Y, norms, err := matrix.NormalizeRowsL1(X)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 0, 4}, norms)
	requireClose(t, [][]float64{{0.25, 0.75}, {0, 0}, {0.5, 0.5}}, Y, 1e-15)
}
