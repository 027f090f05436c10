// SPDX-License-Identifier: MIT

// Package labeled adapts named tables to the raw-array core.
//
// Compositions arrive as go-gg tables with one column per part. The adapter
// extracts those columns into a matrix.Dense, runs the numeric operation and
// returns the result as a new table whose columns carry coordinate names
// ("clr(Ca)", "log(Na/K)", ...). Labels stop at this boundary; the transform,
// norm and distance packages never see them.
//
//	coords, err := labeled.Transform(tab, []string{"Ca", "Mg", "Na"}, transform.CLR)
//	withNorm, err := labeled.NormColumn(tab, []string{"Ca", "Mg", "Na"}, norm.TypeAit, "")
package labeled

import (
	"fmt"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"

	codatools "github.com/jsuyu/CoDaTools"
	"github.com/jsuyu/CoDaTools/matrix"
	"github.com/jsuyu/CoDaTools/norm"
	"github.com/jsuyu/CoDaTools/transform"
)

// Transformer is the signature shared by the forward maps of package
// transform. Maps with extra arguments (ALR, OLR, NALR) are adapted with a
// closure.
type Transformer func(X matrix.Matrix, opts ...codatools.Option) (transform.Coordinates, error)

// column converts one table column to []float64. go-gg reports unknown
// columns and unconvertible element types by panicking.
func column(t *table.Table, name string) (out []float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, fmt.Errorf("column %q: %v: %w", name, r, codatools.ErrInvalidParameter)
		}
	}()
	slice.Convert(&out, t.MustColumn(name))
	return out, nil
}

// FromTable copies the named columns of t, in the given order, into an
// n×len(parts) table. With no parts every column of t is used.
//
// Errors:
//   - ErrInvalidDimension for a nil or empty table.
//   - ErrInvalidParameter for an unknown, non-numeric or non-finite column.
func FromTable(t *table.Table, parts ...string) (*matrix.Dense, []string, error) {
	if t == nil || t.Len() == 0 {
		return nil, nil, fmt.Errorf("FromTable: empty table: %w", codatools.ErrInvalidDimension)
	}
	if len(parts) == 0 {
		parts = t.Columns()
	}
	if len(parts) == 0 {
		return nil, nil, fmt.Errorf("FromTable: no columns: %w", codatools.ErrInvalidDimension)
	}

	n := t.Len()
	X, err := matrix.NewDense(n, len(parts))
	if err != nil {
		return nil, nil, fmt.Errorf("FromTable: %w", err)
	}
	for j, name := range parts {
		col, err := column(t, name)
		if err != nil {
			return nil, nil, fmt.Errorf("FromTable: %w", err)
		}
		for i, v := range col {
			if err = X.Set(i, j, v); err != nil {
				return nil, nil, fmt.Errorf("FromTable: column %q: %v: %w", name, err, codatools.ErrInvalidParameter)
			}
		}
	}

	return X, append([]string(nil), parts...), nil
}

// ToTable builds a table with one column per column of values.
//
// Errors:
//   - ErrInvalidDimension when names does not match the column count.
func ToTable(values *matrix.Dense, names []string) (*table.Table, error) {
	if values == nil || len(names) != values.Cols() {
		cols := 0
		if values != nil {
			cols = values.Cols()
		}
		return nil, fmt.Errorf("ToTable: %d names for %d columns: %w", len(names), cols, codatools.ErrInvalidDimension)
	}
	rows := values.RawRows()
	b := new(table.Builder)
	for j, name := range names {
		col := make([]float64, len(rows))
		for i, row := range rows {
			col[i] = row[j]
		}
		b.Add(name, col)
	}

	return b.Done(), nil
}

// Transform applies tr to the part columns of t and returns the coordinates
// as a table. Part column names become the part labels of the coordinate
// names unless opts carry codatools.WithPartNames.
func Transform(t *table.Table, parts []string, tr Transformer, opts ...codatools.Option) (*table.Table, error) {
	if tr == nil {
		return nil, fmt.Errorf("Transform: nil transformer: %w", codatools.ErrInvalidParameter)
	}
	X, names, err := FromTable(t, parts...)
	if err != nil {
		return nil, err
	}
	c, err := tr(X, append([]codatools.Option{codatools.WithPartNames(names)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("Transform: %w", err)
	}

	return ToTable(c.Values, c.Names)
}

// NormColumn evaluates the norm nt on the part columns of t and returns t
// with the result added as column name (string(nt) when empty). An existing
// column of that name is replaced.
func NormColumn(t *table.Table, parts []string, nt norm.Type, name string, opts ...codatools.Option) (*table.Table, error) {
	f, err := norm.Of(nt)
	if err != nil {
		return nil, fmt.Errorf("NormColumn: %w", err)
	}
	X, _, err := FromTable(t, parts...)
	if err != nil {
		return nil, err
	}
	vals, err := f(X, opts...)
	if err != nil {
		return nil, fmt.Errorf("NormColumn: %w", err)
	}
	if name == "" {
		name = string(nt)
	}

	return table.NewBuilder(t).Add(name, vals).Done(), nil
}
