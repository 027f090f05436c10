// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"
	"strings"

	codatools "github.com/jsuyu/CoDaTools"
	"github.com/jsuyu/CoDaTools/matrix"
	"github.com/jsuyu/CoDaTools/validate"
)

// Coordinates is a log-ratio table and its column names.
type Coordinates struct {
	Values *matrix.Dense
	Names  []string
}

// Rows returns the number of observations.
func (c Coordinates) Rows() int {
	if c.Values == nil {
		return 0
	}
	return c.Values.Rows()
}

// prepare resolves options and validates X, the prologue of every forward map.
func prepare(op string, X matrix.Matrix, opts []codatools.Option) (codatools.Options, *matrix.Dense, error) {
	o, err := codatools.Resolve(opts...)
	if err != nil {
		return o, nil, fmt.Errorf("%s: %w", op, err)
	}
	d, err := validate.Check(op, X, o)
	if err != nil {
		return o, nil, err
	}
	o.Logger("transform").Debug("transform", "op", op, "rows", d.Rows(), "parts", d.Cols())

	return o, d, nil
}

// logOf is matrix.Log on an already validated composition.
func logOf(op string, d *matrix.Dense) (*matrix.Dense, error) {
	L, err := matrix.Log(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return L, nil
}

// prefixed builds "<fn>(<name>)" for every part name.
func prefixed(fn string, names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = fn + "(" + n + ")"
	}
	return out
}

// ratioName is log(num/den).
func ratioName(num, den string) string {
	return "log(" + num + "/" + den + ")"
}

// geoName is g(a,b,c), the geometric mean of a set of parts.
func geoName(names []string) string {
	return "g(" + strings.Join(names, ",") + ")"
}

// parts returns the column count of X, failing like validate.Check does for
// a nil table or D < 2. Structural arguments that depend on D are checked
// against it before positivity.
func parts(op string, X matrix.Matrix) (int, error) {
	if err := matrix.ValidateNotNil(X); err != nil {
		return 0, fmt.Errorf("%s: %v: %w", op, err, codatools.ErrInvalidDimension)
	}
	if X.Cols() < 2 {
		return 0, fmt.Errorf("%s: composition needs D >= 2 parts, got %d: %w", op, X.Cols(), codatools.ErrInvalidDimension)
	}
	return X.Cols(), nil
}
