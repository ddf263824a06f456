package classify

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"
)

// StandardScaler rescales every column to zero mean and unit variance. The
// variance is the population variance; constant columns are only centred.
type StandardScaler struct {
	Mean []float64
	Std  []float64
}

// Fit computes the per column mean and standard deviation.
func (s *StandardScaler) Fit(X [][]float64) error {
	if len(X) == 0 {
		return errors.New("classify: cannot fit a scaler on zero rows")
	}
	cols := len(X[0])
	s.Mean = make([]float64, cols)
	s.Std = make([]float64, cols)
	col := make([]float64, len(X))
	n := float64(len(X))
	for j := 0; j < cols; j++ {
		for i, row := range X {
			col[i] = row[j]
		}
		mean, variance := stat.MeanVariance(col, nil)
		if len(X) > 1 {
			variance *= (n - 1) / n
		} else {
			variance = 0
		}
		s.Mean[j] = mean
		s.Std[j] = math.Sqrt(variance)
	}
	return nil
}

// Transform returns a scaled copy of X.
func (s *StandardScaler) Transform(X [][]float64) ([][]float64, error) {
	out := make([][]float64, len(X))
	for i, row := range X {
		if len(row) != len(s.Mean) {
			return nil, errors.New("classify: row width does not match the fitted scaler")
		}
		out[i] = make([]float64, len(row))
		for j, v := range row {
			v -= s.Mean[j]
			if s.Std[j] > 0 {
				v /= s.Std[j]
			}
			out[i][j] = v
		}
	}
	return out, nil
}

// FitTransform fits the scaler on X and scales it.
func (s *StandardScaler) FitTransform(X [][]float64) ([][]float64, error) {
	if err := s.Fit(X); err != nil {
		return nil, err
	}
	return s.Transform(X)
}
