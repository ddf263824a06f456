// Package frame provides column operations over named numeric matrices, used
// to line up encoded test rows with the columns a model was trained on.
package frame

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Frame is a row-major numeric matrix with named columns.
type Frame struct {
	Columns []string
	Rows    [][]float64
}

// New creates a frame. The rows are not copied.
func New(columns []string, rows [][]float64) Frame {
	return Frame{Columns: columns, Rows: rows}
}

// Column returns the index of a named column, or -1.
func (f Frame) Column(name string) int {
	for i, c := range f.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Values returns a copy of a column.
func (f Frame) Values(column int) []float64 {
	v := make([]float64, len(f.Rows))
	for i, row := range f.Rows {
		v[i] = row[column]
	}
	return v
}

// project builds a new frame from the given source column indexes. An index
// of -1 produces a column filled with fill.
func (f Frame) project(names []string, indexes []int, fill []float64) Frame {
	out := Frame{
		Columns: append([]string(nil), names...),
		Rows:    make([][]float64, len(f.Rows)),
	}
	for r, row := range f.Rows {
		out.Rows[r] = make([]float64, len(indexes))
		for j, i := range indexes {
			if i < 0 {
				out.Rows[r][j] = fill[j]
			} else {
				out.Rows[r][j] = row[i]
			}
		}
	}
	return out
}

// DropColumns removes the named columns. Names not in the frame are ignored.
func DropColumns(f Frame, columns ...string) Frame {
	drop := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		drop[c] = struct{}{}
	}
	var (
		names   []string
		indexes []int
	)
	for i, c := range f.Columns {
		if _, ok := drop[c]; !ok {
			names = append(names, c)
			indexes = append(indexes, i)
		}
	}
	return f.project(names, indexes, nil)
}

// KeepColumns keeps the named columns and drops all others. Column order is unchanged.
func KeepColumns(f Frame, columns ...string) Frame {
	keep := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		keep[c] = struct{}{}
	}
	var drop []string
	for _, c := range f.Columns {
		if _, ok := keep[c]; !ok {
			drop = append(drop, c)
		}
	}
	return DropColumns(f, drop...)
}

// AugmentColumns sets each named column to a constant. Columns already in the
// frame are overwritten in place; new columns are appended in name order.
func AugmentColumns(f Frame, defaults map[string]float64) Frame {
	names := append([]string(nil), f.Columns...)
	indexes := make([]int, len(f.Columns))
	fill := make([]float64, len(f.Columns))
	for i := range f.Columns {
		indexes[i] = i
	}

	var added []string
	for c, v := range defaults {
		if i := f.Column(c); i >= 0 {
			indexes[i] = -1
			fill[i] = v
		} else {
			added = append(added, c)
		}
	}
	sort.Strings(added)
	for _, c := range added {
		names = append(names, c)
		indexes = append(indexes, -1)
		fill = append(fill, defaults[c])
	}
	return f.project(names, indexes, fill)
}

// NullableColumns returns the columns that hold at least one NaN.
func NullableColumns(f Frame) []string {
	var columns []string
	for i, c := range f.Columns {
		if floats.HasNaN(f.Values(i)) {
			columns = append(columns, c)
		}
	}
	return columns
}

// ProjectOutNullColumns drops every column that holds a NaN.
func ProjectOutNullColumns(f Frame) Frame {
	return DropColumns(f, NullableColumns(f)...)
}

// Reconcile lays test out with exactly the columns of train, in train's
// order. Columns test lacks are filled with 0; columns train lacks are dropped.
func Reconcile(train, test Frame) Frame {
	missing := make(map[string]float64)
	for _, c := range train.Columns {
		if test.Column(c) < 0 {
			missing[c] = 0
		}
	}
	t := AugmentColumns(KeepColumns(test, train.Columns...), missing)

	indexes := make([]int, len(train.Columns))
	for j, c := range train.Columns {
		indexes[j] = t.Column(c)
	}
	return t.project(train.Columns, indexes, nil)
}
