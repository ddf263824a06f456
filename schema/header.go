package schema

import (
	"strconv"
)

// BuildSchema names the columns of the encoded matrix. Non-categorical
// columns keep their original names; each categorical column i expands to
// vocabularySizes[i] names of the form "{name}_{k}".
func BuildSchema(header []string, nonCategorical, categorical []int, vocabularySizes map[int]int) []string {
	width := len(nonCategorical)
	for _, i := range categorical {
		width += vocabularySizes[i]
	}

	names := make([]string, 0, width)
	for _, i := range nonCategorical {
		names = append(names, header[i])
	}
	for _, i := range categorical {
		for k := 0; k < vocabularySizes[i]; k++ {
			names = append(names, header[i]+"_"+strconv.Itoa(k))
		}
	}
	return names
}

// NonCategoricalSchema names only the non-categorical columns, for matrices
// that do not carry a one-hot block.
func NonCategoricalSchema(header []string, p Partition) []string {
	return BuildSchema(header, p.NonCategorical, nil, nil)
}

// CheckWidth verifies that a schema names exactly width columns.
func CheckWidth(names []string, width int) error {
	if len(names) != width {
		return &InternalConsistencyFault{What: "columns", Want: len(names), Got: width}
	}
	return nil
}
