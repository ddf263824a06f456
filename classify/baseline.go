package classify

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

var errNotFitted = errors.New("classify: model has not been fitted")

// Majority always predicts the most frequent training label. Ties go to the smallest label.
type Majority struct {
	label  float64
	fitted bool
}

func (m *Majority) Fit(X [][]float64, y []float64) error {
	if len(y) == 0 {
		return errors.New("classify: cannot fit on zero rows")
	}
	counts := make(map[float64]int)
	for _, v := range y {
		counts[v]++
	}
	labels := sortedLabels(counts)
	best := labels[0]
	for _, l := range labels[1:] {
		if counts[l] > counts[best] {
			best = l
		}
	}
	m.label = best
	m.fitted = true
	return nil
}

func (m *Majority) Predict(X [][]float64) ([]float64, error) {
	if !m.fitted {
		return nil, errNotFitted
	}
	out := make([]float64, len(X))
	for i := range out {
		out[i] = m.label
	}
	return out, nil
}

// NearestCentroid predicts the label whose training mean is closest under the L-Norm distance.
type NearestCentroid struct {
	Norm      float64
	labels    []float64
	centroids [][]float64
}

func (n *NearestCentroid) Fit(X [][]float64, y []float64) error {
	if len(X) == 0 || len(X) != len(y) {
		return errors.New("classify: X and y must be non-empty and the same length")
	}
	counts := make(map[float64]int)
	sums := make(map[float64][]float64)
	for i, row := range X {
		if _, ok := sums[y[i]]; !ok {
			sums[y[i]] = make([]float64, len(row))
		}
		floats.Add(sums[y[i]], row)
		counts[y[i]]++
	}
	n.labels = sortedLabels(counts)
	n.centroids = make([][]float64, len(n.labels))
	for i, l := range n.labels {
		floats.Scale(1/float64(counts[l]), sums[l])
		n.centroids[i] = sums[l]
	}
	return nil
}

func (n *NearestCentroid) Predict(X [][]float64) ([]float64, error) {
	if len(n.centroids) == 0 {
		return nil, errNotFitted
	}
	norm := n.Norm
	if norm == 0 {
		norm = 2
	}
	out := make([]float64, len(X))
	for i, row := range X {
		if len(row) != len(n.centroids[0]) {
			return nil, errors.New("classify: row width does not match the fitted model")
		}
		best := math.Inf(1)
		for j, c := range n.centroids {
			if d := floats.Distance(row, c, norm); d < best {
				best = d
				out[i] = n.labels[j]
			}
		}
	}
	return out, nil
}

func sortedLabels(counts map[float64]int) []float64 {
	labels := make([]float64, 0, len(counts))
	for l := range counts {
		labels = append(labels, l)
	}
	sort.Float64s(labels)
	return labels
}
