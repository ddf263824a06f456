package schemer

import (
	"github.com/hscells/schemer/schema"
)

// Assemble concatenates the non-categorical values and the one-hot block row
// by row and checks the result against the schema. Row order is preserved.
func Assemble(nonCategorical, oneHot [][]float64, targets []float64, names []string, target string) (EncodedMatrix, error) {
	x, err := hstack(nonCategorical, oneHot, names)
	if err != nil {
		return EncodedMatrix{}, err
	}
	if len(targets) != len(x) {
		return EncodedMatrix{}, &schema.InternalConsistencyFault{What: "rows", Want: len(x), Got: len(targets)}
	}
	return EncodedMatrix{
		X:       x,
		Y:       targets,
		XSchema: names,
		YSchema: target,
	}, nil
}

// hstack joins two blocks with the same number of rows. Every joined row must
// have one value per schema name.
func hstack(left, right [][]float64, names []string) ([][]float64, error) {
	if right != nil && len(left) != len(right) {
		return nil, &schema.InternalConsistencyFault{What: "rows", Want: len(left), Got: len(right)}
	}
	out := make([][]float64, len(left))
	for i := range left {
		row := make([]float64, 0, len(names))
		row = append(row, left[i]...)
		if right != nil {
			row = append(row, right[i]...)
		}
		if err := schema.CheckWidth(names, len(row)); err != nil {
			return nil, err
		}
		out[i] = row
	}
	return out, nil
}
