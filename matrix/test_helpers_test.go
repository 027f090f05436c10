// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Small deterministic fixtures for the kernels.
//   - hide, a wrapper that forces the non-*Dense fallback path.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jsuyu/CoDaTools/matrix"
)

// hide wraps any Matrix so kernels cannot see the *Dense fast path.
type hide struct{ matrix.Matrix }

// mustFrom builds a Dense from literal rows or fails the test.
func mustFrom(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(tb, err)
	return m
}

// mustAt reads (i, j) or fails the test.
func mustAt(tb testing.TB, m matrix.Matrix, i, j int) float64 {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)
	return v
}

// requireClose asserts element-wise |got−want| ≤ tol.
func requireClose(tb testing.TB, want [][]float64, got matrix.Matrix, tol float64) {
	tb.Helper()
	require.Equal(tb, len(want), got.Rows(), "rows")
	require.Equal(tb, len(want[0]), got.Cols(), "cols")
	for i := range want {
		for j := range want[i] {
			require.InDelta(tb, want[i][j], mustAt(tb, got, i, j), tol, "entry (%d,%d)", i, j)
		}
	}
}
