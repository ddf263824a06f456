package classify

import (
	"math"
	"math/rand"
)

// DefaultTestRatio is the share of rows held out for scoring.
const DefaultTestRatio = 0.25

// TrainTestSplit shuffles the rows with rng and holds out ceil(ratio*n) of
// them, keeping at least one row on each side when there are two or more rows.
func TrainTestSplit(X [][]float64, y []float64, ratio float64, rng *rand.Rand) (XTrain, XTest [][]float64, yTrain, yTest []float64) {
	n := len(X)
	nTest := int(math.Ceil(ratio * float64(n)))
	if n > 1 {
		if nTest < 1 {
			nTest = 1
		}
		if nTest > n-1 {
			nTest = n - 1
		}
	} else {
		nTest = 0
	}

	for i, idx := range rng.Perm(n) {
		if i < nTest {
			XTest = append(XTest, X[idx])
			yTest = append(yTest, y[idx])
		} else {
			XTrain = append(XTrain, X[idx])
			yTrain = append(yTrain, y[idx])
		}
	}
	return
}
