// SPDX-License-Identifier: MIT
package codatools_test

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	codatools "github.com/jsuyu/CoDaTools"
)

func TestResolve_Defaults(t *testing.T) {
	o, err := codatools.Resolve()
	require.NoError(t, err)
	assert.Equal(t, codatools.DefaultP, o.P())
	assert.Equal(t, codatools.DefaultMaxIter, o.MaxIter())
	assert.Equal(t, codatools.DefaultXTol, o.XTol())
	assert.Equal(t, codatools.DefaultWorkers, o.Workers())
	assert.Zero(t, o.Parts())
	assert.False(t, o.Verbose())
	assert.Equal(t, 1e-3, o.Tolerance(1e-3), "unset tolerance falls back to the operation default")
}

func TestResolve_LastWriterWins(t *testing.T) {
	o, err := codatools.Resolve(
		codatools.WithP(1), codatools.WithP(3),
		codatools.WithTolerance(1e-4),
		codatools.WithWorkers(0), // 0 means sequential
		nil,
	)
	require.NoError(t, err)
	assert.Equal(t, 3.0, o.P())
	assert.Equal(t, 1e-4, o.Tolerance(1))
	assert.Equal(t, 1, o.Workers())
}

func TestResolve_Invalid(t *testing.T) {
	cases := map[string]codatools.Option{
		"negative tol":  codatools.WithTolerance(-1),
		"infinite tol":  codatools.WithTolerance(math.Inf(1)),
		"p below one":   codatools.WithP(0.5),
		"NaN p":         codatools.WithP(math.NaN()),
		"zero maxIter":  codatools.WithMaxIter(0),
		"zero xtol":     codatools.WithXTol(0),
		"negative D":    codatools.WithParts(-2),
		"negative jobs": codatools.WithWorkers(-1),
	}
	for name, opt := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := codatools.Resolve(opt)
			require.ErrorIs(t, err, codatools.ErrInvalidParameter)
		})
	}
}

func TestResolve_InfiniteP(t *testing.T) {
	o, err := codatools.Resolve(codatools.WithP(math.Inf(1)))
	require.NoError(t, err)
	assert.True(t, math.IsInf(o.P(), 1))
}

func TestOptions_Logger(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	quiet, err := codatools.Resolve()
	require.NoError(t, err)
	quiet.Logger("test").Info("hidden")
	assert.Zero(t, buf.Len())

	loud, err := codatools.Resolve(codatools.WithLogger(l))
	require.NoError(t, err)
	assert.True(t, loud.Verbose())
	loud.Logger("test").Info("shown")
	assert.Contains(t, buf.String(), "component=test")
	assert.Contains(t, buf.String(), "shown")
}

func TestOptions_PartNames(t *testing.T) {
	o, err := codatools.Resolve(codatools.WithPartNames([]string{"Ca", "Mg"}))
	require.NoError(t, err)
	assert.Equal(t, []string{"Ca", "Mg"}, o.PartNames(2))
	assert.Equal(t, []string{"x1", "x2", "x3"}, o.PartNames(3), "length mismatch falls back to defaults")
}

func TestRowsErrorf(t *testing.T) {
	err := codatools.RowsErrorf("CLR", codatools.ErrNonPositiveInput, []int{0, 3})
	require.ErrorIs(t, err, codatools.ErrNonPositiveInput)
	assert.Equal(t, "CLR: 2 row(s) violate the contract at rows [1 4]: coda: non-positive input", err.Error())

	many := make([]int, 25)
	for i := range many {
		many[i] = i
	}
	err = codatools.RowsErrorf("X", codatools.ErrNonPositiveInput, many)
	assert.Contains(t, err.Error(), "25 row(s)")
	assert.Contains(t, err.Error(), "20 ...]")
}

func TestSentinelsAreDistinct(t *testing.T) {
	all := []error{
		codatools.ErrNonPositiveInput, codatools.ErrInvalidDimension, codatools.ErrInvalidParameter,
		codatools.ErrNotOrthonormal, codatools.ErrNotOrthogonal, codatools.ErrNumericalInfeasible,
		codatools.ErrNotConverged,
	}
	for i, a := range all {
		for j, b := range all {
			assert.Equal(t, i == j, errors.Is(a, b), fmt.Sprintf("%v vs %v", a, b))
		}
	}
}
