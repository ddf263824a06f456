package schemer

import (
	"strings"

	"github.com/hscells/schemer/frame"
)

// ColumnSelection narrows the columns of an encoded matrix before it is
// output or classified. A name is either an encoded column name or the name of
// a categorical source column, which stands for its whole one-hot block.
type ColumnSelection struct {
	Drop []string
	Keep []string
	// DropNull drops every column holding a NaN. X and XTest are checked
	// separately; ReconciledTest zero-fills what only the test rows lost.
	DropNull bool
}

func (s ColumnSelection) empty() bool {
	return len(s.Drop) == 0 && len(s.Keep) == 0 && !s.DropNull
}

// Select applies a column selection to X and XTest and their schemas. Keep is
// applied before Drop.
func (m EncodedMatrix) Select(s ColumnSelection) EncodedMatrix {
	if s.empty() {
		return m
	}
	x, test := m.Frame(), m.TestFrame()
	if len(s.Keep) > 0 {
		keep := m.columns(s.Keep)
		x = frame.KeepColumns(x, keep...)
		test = frame.KeepColumns(test, keep...)
	}
	if len(s.Drop) > 0 {
		drop := m.columns(s.Drop)
		x = frame.DropColumns(x, drop...)
		test = frame.DropColumns(test, drop...)
	}
	if s.DropNull {
		x = frame.ProjectOutNullColumns(x)
		test = frame.ProjectOutNullColumns(test)
	}
	m.X, m.XSchema = x.Rows, x.Columns
	m.XTest, m.XTestSchema = test.Rows, test.Columns
	return m
}

// columns resolves names to encoded column names. A name that is not itself a
// column resolves to the {name}_{k} columns of its one-hot block.
func (m EncodedMatrix) columns(names []string) []string {
	all := append(append([]string(nil), m.XSchema...), m.XTestSchema...)
	exact := make(map[string]bool, len(all))
	for _, c := range all {
		exact[c] = true
	}

	var out []string
	for _, name := range names {
		if exact[name] {
			out = append(out, name)
			continue
		}
		for _, c := range m.XSchema {
			if k := strings.TrimPrefix(c, name+"_"); k != c && isIndex(k) {
				out = append(out, c)
			}
		}
	}
	return out
}

func isIndex(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
