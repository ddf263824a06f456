package table

// TargetSplit holds the feature columns of a table partitioned by whether the
// target cell is populated. Targets is aligned with TrainRows.
type TargetSplit struct {
	Target        string
	HasTarget     bool
	FeatureHeader []string
	TrainRows     [][]Cell
	TestRows      [][]Cell
	Targets       []Cell
	// TrainIndex and TestIndex hold the position in RawTable.Rows of every
	// training and test row.
	TrainIndex []int
	TestIndex  []int
}

// Record returns the 1-based record number in the source of a row of
// RawTable.Rows, counting the header as record 1.
func Record(index int) int {
	return index + 2
}

// SplitNoTarget is the degraded mode used when no target column is named: the
// header is kept as-is and no rows are partitioned.
func SplitNoTarget(t RawTable) TargetSplit {
	return TargetSplit{
		FeatureHeader: append([]string(nil), t.Header...),
		TrainRows:     [][]Cell{},
		TestRows:      [][]Cell{},
		Targets:       []Cell{},
		TrainIndex:    []int{},
		TestIndex:     []int{},
	}
}

// Split removes the target column from the table and partitions its rows. A
// row whose target cell is the empty string is a test row; every other row is
// a training row and contributes its target cell to Targets. An empty target
// name selects SplitNoTarget.
func Split(t RawTable, target string) (TargetSplit, error) {
	if len(target) == 0 {
		return SplitNoTarget(t), nil
	}

	idx := t.Column(target)
	if idx < 0 {
		return TargetSplit{}, &UnknownColumnError{Column: target, Header: t.Header}
	}

	s := TargetSplit{
		Target:        target,
		HasTarget:     true,
		FeatureHeader: withoutName(t.Header, idx),
		TrainRows:     [][]Cell{},
		TestRows:      [][]Cell{},
		Targets:       []Cell{},
		TrainIndex:    []int{},
		TestIndex:     []int{},
	}

	for r, row := range t.Rows {
		features := without(row, idx)
		if row[idx].IsEmpty() {
			s.TestRows = append(s.TestRows, features)
			s.TestIndex = append(s.TestIndex, r)
			continue
		}
		s.TrainRows = append(s.TrainRows, features)
		s.TrainIndex = append(s.TrainIndex, r)
		s.Targets = append(s.Targets, row[idx])
	}

	return s, nil
}

func without(row []Cell, idx int) []Cell {
	out := make([]Cell, 0, len(row)-1)
	out = append(out, row[:idx]...)
	return append(out, row[idx+1:]...)
}

func withoutName(header []string, idx int) []string {
	out := make([]string, 0, len(header)-1)
	out = append(out, header[:idx]...)
	return append(out, header[idx+1:]...)
}
