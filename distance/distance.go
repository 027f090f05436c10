// SPDX-License-Identifier: MIT

// Package distance measures compositional distances as the norm of the
// entrywise ratio of two compositions, d(x1, x2) = ν(x1 ⊘ x2).
//
//	D, err := distance.Distance(X1, X2, norm.TypeAit, distance.Paired)
//	// D is n×1, D[i] = ν(X1[i] / X2[i])
//
//	D, err = distance.Distance(X, nil, norm.TypeL1CoDa, distance.AllToAll)
//	// D is n×n, symmetric, zero diagonal
//
// An empty Mode picks Paired when a distinct X2 is given with as many rows
// as X1, and AllToAll otherwise. An empty norm type means norm.TypeAit.
package distance

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/gonum/floats"

	codatools "github.com/jsuyu/CoDaTools"
	"github.com/jsuyu/CoDaTools/matrix"
	"github.com/jsuyu/CoDaTools/norm"
	"github.com/jsuyu/CoDaTools/validate"
)

// Mode selects which row pairs are compared.
type Mode string

const (
	// Auto lets Distance choose between Paired and AllToAll.
	Auto Mode = ""

	// Paired compares row i of X1 with row i of X2.
	Paired Mode = "paired"

	// AllToAll compares every row of X1 with every row of X2.
	AllToAll Mode = "all-to-all"
)

const opDistance = "Distance"

// resolveNorm maps a norm type to its function. LpCoDa is excluded.
func resolveNorm(t norm.Type) (norm.Func, error) {
	switch t {
	case "":
		t = norm.TypeAit
	case norm.TypeLp:
		return nil, fmt.Errorf("%s: norm type %q is not a distance norm: %w", opDistance, t, codatools.ErrInvalidParameter)
	}
	f, err := norm.Of(t)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opDistance, err)
	}
	return f, nil
}

// Distance returns the compositional distances between the rows of X1 and
// X2 under the norm t. With X2 == nil the distances are taken within X1
// (or when X2 is the very same table) and, in AllToAll mode, the result is
// the symmetric n×n matrix with zero diagonal.
//
// Errors, in priority order:
//   - ErrInvalidParameter for an unknown norm type or mode, or bad options.
//   - ErrInvalidDimension when the part counts differ, or when Paired is
//     requested for tables with different row counts.
//   - ErrNonPositiveInput with the offending 1-based rows of either table,
//     or with the row pair whose ratio x1 ⊘ x2 cannot be represented.
func Distance(X1, X2 matrix.Matrix, t norm.Type, mode Mode, opts ...codatools.Option) (*matrix.Dense, error) {
	o, err := codatools.Resolve(opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opDistance, err)
	}
	nu, err := resolveNorm(t)
	if err != nil {
		return nil, err
	}
	switch mode {
	case Auto, Paired, AllToAll:
	default:
		return nil, fmt.Errorf("%s: unknown mode %q: %w", opDistance, mode, codatools.ErrInvalidParameter)
	}

	if err = matrix.ValidateNotNil(X1); err != nil {
		return nil, fmt.Errorf("%s: X1: %v: %w", opDistance, err, codatools.ErrInvalidDimension)
	}
	self := matrix.ValidateNotNil(X2) != nil || sameTable(X1, X2)
	if self {
		X2 = X1
	}
	if X1.Cols() != X2.Cols() {
		return nil, fmt.Errorf("%s: X1 has %d parts, X2 has %d: %w", opDistance, X1.Cols(), X2.Cols(), codatools.ErrInvalidDimension)
	}
	if mode == Auto {
		mode = AllToAll
		if !self && X1.Rows() == X2.Rows() {
			mode = Paired
		}
	}
	if mode == Paired && X1.Rows() != X2.Rows() {
		return nil, fmt.Errorf("%s: paired mode needs equal row counts, got %d and %d: %w",
			opDistance, X1.Rows(), X2.Rows(), codatools.ErrInvalidDimension)
	}

	a, err := validate.Check(opDistance+": X1", X1, o)
	if err != nil {
		return nil, err
	}
	b := a
	if !self {
		if b, err = validate.Check(opDistance+": X2", X2, o); err != nil {
			return nil, err
		}
	}
	o.Logger("distance").Debug("distance", "norm", string(t), "mode", string(mode), "self", self,
		"rows1", a.Rows(), "rows2", b.Rows(), "parts", a.Cols())

	if mode == Paired {
		return paired(nu, a, b, opts)
	}
	return allToAll(nu, a, b, self, opts)
}

// sameTable reports whether X1 and X2 are the same *matrix.Dense.
func sameTable(X1, X2 matrix.Matrix) bool {
	a, ok1 := X1.(*matrix.Dense)
	b, ok2 := X2.(*matrix.Dense)
	return ok1 && ok2 && a == b
}

// ratio writes x1 ⊘ x2 into dst, given the logs of both rows, divided by
// the geometric midpoint of its extreme entries. Every distance norm is
// scale invariant. It reports false when even the rescaled ratio leaves the
// float64 range.
func ratio(dst, l1, l2 []float64) bool {
	floats.SubTo(dst, l1, l2)
	lo, hi := stats.Bounds(dst)
	floats.AddConst(-(lo+hi)/2, dst)
	for j, v := range dst {
		dst[j] = math.Exp(v)
		if dst[j] == 0 || math.IsInf(dst[j], 1) {
			return false
		}
	}
	return true
}

// logRows returns log(d) row by row.
func logRows(d *matrix.Dense) ([][]float64, error) {
	L, err := matrix.Log(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opDistance, err)
	}
	return L.RawRows(), nil
}

// errOutOfRange reports a ratio that float64 cannot hold, by its input rows.
func errOutOfRange(i, j int) error {
	return fmt.Errorf("%s: ratio of X1 row %d to X2 row %d is outside the float64 range: %w",
		opDistance, i+1, j+1, codatools.ErrNonPositiveInput)
}

func paired(nu norm.Func, a, b *matrix.Dense, opts []codatools.Option) (*matrix.Dense, error) {
	n, D := a.Rows(), a.Cols()
	R, err := matrix.NewDense(n, D)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opDistance, err)
	}
	la, err := logRows(a)
	if err != nil {
		return nil, err
	}
	lb, err := logRows(b)
	if err != nil {
		return nil, err
	}
	buf := make([]float64, D)
	for i := 0; i < n; i++ {
		if !ratio(buf, la[i], lb[i]) {
			return nil, errOutOfRange(i, i)
		}
		if err = R.SetRow(i, buf); err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", opDistance, i+1, err)
		}
	}
	vals, err := nu(R, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opDistance, err)
	}
	out, err := matrix.NewDense(n, 1)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opDistance, err)
	}
	for i, v := range vals {
		_ = out.Set(i, 0, v)
	}

	return out, nil
}

// allToAll evaluates ν once over the stacked ratio table. Within one table
// only the pairs i<j are computed; the result is mirrored and the diagonal
// left at zero.
func allToAll(nu norm.Func, a, b *matrix.Dense, self bool, opts []codatools.Option) (*matrix.Dense, error) {
	n1, n2, D := a.Rows(), b.Rows(), a.Cols()
	out, err := matrix.NewDense(n1, n2)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opDistance, err)
	}

	type cell struct{ i, j int }
	cells := make([]cell, 0, n1*n2)
	for i := 0; i < n1; i++ {
		j0 := 0
		if self {
			j0 = i + 1
		}
		for j := j0; j < n2; j++ {
			cells = append(cells, cell{i, j})
		}
	}
	if len(cells) == 0 {
		return out, nil // a single row compared with itself
	}

	R, err := matrix.NewDense(len(cells), D)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opDistance, err)
	}
	la, err := logRows(a)
	if err != nil {
		return nil, err
	}
	lb := la
	if !self {
		if lb, err = logRows(b); err != nil {
			return nil, err
		}
	}
	buf := make([]float64, D)
	for k, c := range cells {
		if !ratio(buf, la[c.i], lb[c.j]) {
			return nil, errOutOfRange(c.i, c.j)
		}
		if err = R.SetRow(k, buf); err != nil {
			return nil, fmt.Errorf("%s: pair (%d,%d): %w", opDistance, c.i+1, c.j+1, err)
		}
	}
	vals, err := nu(R, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opDistance, err)
	}
	for k, c := range cells {
		_ = out.Set(c.i, c.j, vals[k])
		if self {
			_ = out.Set(c.j, c.i, vals[k])
		}
	}

	return out, nil
}
