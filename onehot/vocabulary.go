// Package onehot builds per-column category vocabularies and expands
// categorical cells into binary indicator columns.
package onehot

import (
	"sort"

	"github.com/hscells/schemer/table"
	"github.com/xtgo/set"
)

// Vocabulary holds the distinct values of each categorical column. Values are
// kept sorted, so the same training rows always produce the same codes and the
// same one-hot column order.
type Vocabulary struct {
	columns    []int
	categories map[int][]string
	codes      map[int]map[string]int
}

// BuildVocabulary collects the distinct raw values seen at each categorical
// index across all rows.
func BuildVocabulary(rows [][]table.Cell, categorical []int) Vocabulary {
	v := Vocabulary{
		columns:    append([]int(nil), categorical...),
		categories: make(map[int][]string, len(categorical)),
		codes:      make(map[int]map[string]int, len(categorical)),
	}
	for _, i := range categorical {
		values := make(sort.StringSlice, len(rows))
		for r, row := range rows {
			values[r] = row[i].Raw
		}
		sort.Sort(values)
		n := set.Uniq(values)
		categories := append([]string(nil), values[:n]...)

		codes := make(map[string]int, n)
		for code, c := range categories {
			codes[c] = code
		}
		v.categories[i] = categories
		v.codes[i] = codes
	}
	return v
}

// Columns returns the categorical indexes in encoding order.
func (v Vocabulary) Columns() []int {
	return v.columns
}

// Categories returns the ordered values of a column.
func (v Vocabulary) Categories(column int) []string {
	return v.categories[column]
}

// Size is the number of distinct values of a column.
func (v Vocabulary) Size(column int) int {
	return len(v.categories[column])
}

// Sizes maps every categorical column to its vocabulary size.
func (v Vocabulary) Sizes() map[int]int {
	sizes := make(map[int]int, len(v.columns))
	for _, i := range v.columns {
		sizes[i] = len(v.categories[i])
	}
	return sizes
}

// Width is the total number of one-hot columns.
func (v Vocabulary) Width() int {
	w := 0
	for _, i := range v.columns {
		w += len(v.categories[i])
	}
	return w
}

// Code returns the position of value within a column's vocabulary.
func (v Vocabulary) Code(column int, value string) (int, bool) {
	c, ok := v.codes[column][value]
	return c, ok
}
