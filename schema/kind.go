// Package schema decides which feature columns are categorical and names the
// columns of the encoded matrix.
package schema

import (
	"github.com/hscells/schemer/table"
)

// ColumnKind is how a feature column is encoded.
type ColumnKind uint8

const (
	// NonCategorical columns (numbers and dates) are copied into the matrix as numbers.
	NonCategorical ColumnKind = iota
	// Categorical columns (strings) are one-hot expanded.
	Categorical
)

func (k ColumnKind) String() string {
	if k == Categorical {
		return "categorical"
	}
	return "non-categorical"
}

// Partition is the kind of every feature column, sampled once from the first
// training row and applied to every row after it.
type Partition struct {
	Kinds          []ColumnKind
	NonCategorical []int
	Categorical    []int
}

// Order returns the non-categorical indexes followed by the categorical indexes.
// This is the column order of the encoded matrix.
func (p Partition) Order() []int {
	order := make([]int, 0, len(p.Kinds))
	order = append(order, p.NonCategorical...)
	return append(order, p.Categorical...)
}

// KindOf returns the kind of column i.
func (p Partition) KindOf(i int) ColumnKind {
	return p.Kinds[i]
}

// Classify partitions the feature columns using only the first training row:
// a column is categorical iff its cell in that row is a string. Later rows are
// never inspected, so a column whose first cell is a number stays
// non-categorical whatever follows it.
func Classify(rows [][]table.Cell, header []string) (Partition, error) {
	if len(rows) == 0 {
		return Partition{}, &EmptyDatasetError{Columns: len(header)}
	}

	oracle := rows[0]
	p := Partition{
		Kinds:          make([]ColumnKind, len(oracle)),
		NonCategorical: []int{},
		Categorical:    []int{},
	}
	for i, c := range oracle {
		if c.Kind == table.String {
			p.Kinds[i] = Categorical
			p.Categorical = append(p.Categorical, i)
		} else {
			p.Kinds[i] = NonCategorical
			p.NonCategorical = append(p.NonCategorical, i)
		}
	}
	return p, nil
}
