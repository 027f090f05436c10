// SPDX-License-Identifier: MIT
package basis_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	codatools "github.com/jsuyu/CoDaTools"
	"github.com/jsuyu/CoDaTools/basis"
	"github.com/jsuyu/CoDaTools/matrix"
)

func dense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)
	return m
}

// column returns column j of m.
func column(t *testing.T, m *matrix.Dense, j int) []float64 {
	t.Helper()
	out := make([]float64, m.Rows())
	for i := range out {
		v, err := m.At(i, j)
		require.NoError(t, err)
		out[i] = v
	}
	return out
}

// requireOrthonormal checks ΨᵗΨ = I within tol.
func requireOrthonormal(t *testing.T, psi *matrix.Dense, tol float64) {
	t.Helper()
	g, err := matrix.Gram(psi)
	require.NoError(t, err)
	dev, _, _, err := matrix.IdentityDeviation(g)
	require.NoError(t, err)
	require.Less(t, dev, tol)
}

// sbp3 is the four-part partition ((x1,x2) | (x3,x4)), (x1 | x2), (x3 | x4).
var sbp3 = [][]float64{
	{1, 1, 0},
	{1, -1, 0},
	{-1, 0, 1},
	{-1, 0, -1},
}

func TestPairwiseMatrix(t *testing.T) {
	H, err := basis.PairwiseMatrix(4)
	require.NoError(t, err)
	r, c := H.Shape()
	assert.Equal(t, 4, r)
	assert.Equal(t, 6, c)

	assert.Equal(t, []float64{1, -1, 0, 0}, column(t, H, 0), "pair (1,2)")
	assert.Equal(t, []float64{1, 0, 0, -1}, column(t, H, 2), "pair (1,4)")
	assert.Equal(t, []float64{0, 0, 1, -1}, column(t, H, 5), "pair (3,4)")

	assert.Equal(t, [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}, basis.Pairs(4))

	_, err = basis.PairwiseMatrix(1)
	require.ErrorIs(t, err, codatools.ErrInvalidDimension)
}

func TestALRMatrix(t *testing.T) {
	psi, err := basis.ALRMatrix(3, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 0}, {-1, -1}, {0, 1}}, psi.RawRows())

	for _, denom := range []int{0, 4} {
		_, err = basis.ALRMatrix(3, denom)
		require.ErrorIs(t, err, codatools.ErrInvalidDimension)
	}
}

func TestPivotBasis(t *testing.T) {
	for D := 2; D <= 6; D++ {
		t.Run(fmt.Sprintf("D=%d", D), func(t *testing.T) {
			psi, err := basis.PivotBasis(D)
			require.NoError(t, err)
			r, c := psi.Shape()
			require.Equal(t, D, r)
			require.Equal(t, D-1, c)
			requireOrthonormal(t, psi, 1e-12)

			// every column is a contrast
			for j := 0; j < c; j++ {
				var s float64
				for _, v := range column(t, psi, j) {
					s += v
				}
				assert.InDelta(t, 0, s, 1e-12)
			}
		})
	}
}

func TestPivotBasis_FirstColumn(t *testing.T) {
	psi, err := basis.PivotBasis(3, 2, 3, 1)
	require.NoError(t, err)
	// part 2 against parts 3 and 1: +sqrt(2/3), −sqrt(1/6)
	col := column(t, psi, 0)
	assert.InDelta(t, math.Sqrt(2.0/3), col[1], 1e-15)
	assert.InDelta(t, -math.Sqrt(1.0/6), col[2], 1e-15)
	assert.InDelta(t, -math.Sqrt(1.0/6), col[0], 1e-15)
	// last column: part 3 against part 1
	col = column(t, psi, 1)
	assert.InDelta(t, math.Sqrt(0.5), col[2], 1e-15)
	assert.InDelta(t, -math.Sqrt(0.5), col[0], 1e-15)
	assert.Zero(t, col[1])
}

func TestPivotBasis_BadOrder(t *testing.T) {
	_, err := basis.PivotBasis(3, 1, 2)
	require.ErrorIs(t, err, codatools.ErrInvalidDimension)
	_, err = basis.PivotBasis(3, 1, 1, 2)
	require.ErrorIs(t, err, codatools.ErrInvalidParameter)
	_, err = basis.PivotBasis(3, 0, 1, 2)
	require.ErrorIs(t, err, codatools.ErrInvalidParameter)
	_, err = basis.PivotBasis(1)
	require.ErrorIs(t, err, codatools.ErrInvalidDimension)
}

func TestValidateSBP_Scenario(t *testing.T) {
	ok, err := basis.ValidateSBP(dense(t, sbp3))
	require.NoError(t, err)
	assert.True(t, ok)

	psi, err := basis.SBPBasis(dense(t, sbp3))
	require.NoError(t, err)
	requireOrthonormal(t, psi, 1e-9)
	for j := 0; j < 3; j++ {
		var n2 float64
		for _, v := range column(t, psi, j) {
			n2 += v * v
		}
		assert.InDelta(t, 1, n2, 1e-12, "column %d norm", j)
	}
	// the first balance splits two parts against two: ±1/2
	assert.InDeltaSlice(t, []float64{0.5, 0.5, -0.5, -0.5}, column(t, psi, 0), 1e-15)
}

func TestValidateSBP_NestedPartition(t *testing.T) {
	// (x1,x2,x3 | x4), (x1,x2 | x3), (x1 | x2): raw sign columns overlap,
	// the balances do not.
	sbp := dense(t, [][]float64{
		{1, 1, 1},
		{1, 1, -1},
		{1, -1, 0},
		{-1, 0, 0},
	})
	ok, err := basis.ValidateSBP(sbp)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestValidateSBP_Failures(t *testing.T) {
	cases := []struct {
		name string
		sbp  [][]float64
		want error
	}{
		{"shape", [][]float64{{1, -1}, {-1, 1}}, basis.ErrSBPShape},
		{"values", [][]float64{{2, 0}, {-1, 1}, {-1, -1}}, basis.ErrSBPValues},
		{"signs", [][]float64{{1, 1}, {1, -1}, {1, 0}}, basis.ErrSBPSigns},
		{"orthogonality", [][]float64{{1, 1}, {-1, 0}, {0, -1}}, basis.ErrSBPOrthogonality},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := basis.ValidateSBP(dense(t, tc.sbp))
			assert.False(t, ok)
			require.ErrorIs(t, err, tc.want)

			_, err = basis.SBPBasis(dense(t, tc.sbp))
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := basis.ValidateSBP(nil)
	require.ErrorIs(t, err, codatools.ErrInvalidDimension)
}

func TestValidateSBP_FirstViolationWins(t *testing.T) {
	// bad value and missing sign: the value check runs first
	_, err := basis.ValidateSBP(dense(t, [][]float64{{0.5, 1}, {0, 1}, {0, 1}}))
	require.ErrorIs(t, err, basis.ErrSBPValues)
	require.ErrorIs(t, err, codatools.ErrInvalidParameter)
}

func TestValidateSBP_OrthogonalityReportsPair(t *testing.T) {
	_, err := basis.ValidateSBP(dense(t, [][]float64{{1, 1}, {-1, 0}, {0, -1}}))
	require.ErrorIs(t, err, codatools.ErrNotOrthogonal)
	assert.Contains(t, err.Error(), "columns 1 and 2")
}

func TestSBPFromPivot_MatchesPivotBasis(t *testing.T) {
	order := []int{3, 1, 4, 2, 5}
	sbp, err := basis.SBPFromPivot(5, order...)
	require.NoError(t, err)
	fromSBP, err := basis.SBPBasis(sbp)
	require.NoError(t, err)
	pivot, err := basis.PivotBasis(5, order...)
	require.NoError(t, err)

	diff, err := matrix.MaxAbsDiff(fromSBP, pivot)
	require.NoError(t, err)
	assert.Less(t, diff, 1e-15)
}

func TestCheckOrthonormal(t *testing.T) {
	psi, err := basis.PivotBasis(4)
	require.NoError(t, err)
	require.NoError(t, basis.CheckOrthonormal(psi, 4, 1e-10))

	err = basis.CheckOrthonormal(psi, 5, 1e-10)
	require.ErrorIs(t, err, codatools.ErrInvalidDimension)

	skewed := dense(t, [][]float64{{1, 1}, {-1, 0}, {0, -1}})
	err = basis.CheckOrthonormal(skewed, 3, 1e-10)
	require.ErrorIs(t, err, codatools.ErrNotOrthonormal)
	assert.Contains(t, err.Error(), "at columns (1,1)")
}
