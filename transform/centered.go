// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"

	"github.com/aclements/go-moremath/stats"

	codatools "github.com/jsuyu/CoDaTools"
	"github.com/jsuyu/CoDaTools/matrix"
)

const (
	opCLR  = "CLR"
	opMLR  = "MLR"
	opMRLR = "MRLR"
)

// median is the ordinary sample median: the mean of the two central values
// when the row length is even.
func median(row []float64) float64 {
	return stats.Sample{Xs: row}.Quantile(0.5)
}

// midrange is (max+min)/2.
func midrange(row []float64) float64 {
	lo, hi := stats.Bounds(row)
	return (lo + hi) / 2
}

// centered is the shared body of CLR, MLR and MRLR.
func centered(op, fn string, X matrix.Matrix, loc matrix.Location, opts []codatools.Option) (Coordinates, error) {
	o, d, err := prepare(op, X, opts)
	if err != nil {
		return Coordinates{}, err
	}
	L, err := logOf(op, d)
	if err != nil {
		return Coordinates{}, err
	}
	Z, _, err := matrix.CenterRowsBy(L, loc)
	if err != nil {
		return Coordinates{}, fmt.Errorf("%s: %w", op, err)
	}

	return Coordinates{Values: Z, Names: prefixed(fn, o.PartNames(d.Cols()))}, nil
}

// CLR returns the centered log-ratio coordinates log X − rowmean(log X).
// Every row of the result sums to 0 up to rounding.
//
// Errors:
//   - ErrInvalidDimension for a nil table or D < 2.
//   - ErrNonPositiveInput with the offending 1-based rows.
func CLR(X matrix.Matrix, opts ...codatools.Option) (Coordinates, error) {
	return centered(opCLR, "clr", X, stats.Mean, opts)
}

// MLR centers log X on the row median instead of the mean.
func MLR(X matrix.Matrix, opts ...codatools.Option) (Coordinates, error) {
	return centered(opMLR, "mlr", X, median, opts)
}

// MRLR centers log X on the row midrange (max+min)/2.
func MRLR(X matrix.Matrix, opts ...codatools.Option) (Coordinates, error) {
	return centered(opMRLR, "mrlr", X, midrange, opts)
}
