package classify

import (
	"bytes"
	"fmt"
	"strconv"
)

// Accuracy is the share of predictions equal to the truth.
func Accuracy(truth, predicted []float64) float64 {
	if len(truth) == 0 {
		return 0
	}
	correct := 0
	for i := range truth {
		if truth[i] == predicted[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(truth))
}

// ClassReport is the precision, recall, f1 and support of one label.
type ClassReport struct {
	Label     float64
	Precision float64
	Recall    float64
	F1        float64
	Support   int
}

// PerClass computes a ClassReport for every label in truth or predicted, in label order.
func PerClass(truth, predicted []float64) []ClassReport {
	tp := make(map[float64]int)
	fp := make(map[float64]int)
	support := make(map[float64]int)
	for i, t := range truth {
		support[t]++
		if predicted[i] == t {
			tp[t]++
		} else {
			fp[predicted[i]]++
		}
	}

	seen := make(map[float64]int)
	for l, n := range support {
		seen[l] += n
	}
	for l, n := range fp {
		seen[l] += n
	}

	var reports []ClassReport
	for _, l := range sortedLabels(seen) {
		r := ClassReport{Label: l, Support: support[l]}
		if d := tp[l] + fp[l]; d > 0 {
			r.Precision = float64(tp[l]) / float64(d)
		}
		if support[l] > 0 {
			r.Recall = float64(tp[l]) / float64(support[l])
		}
		if r.Precision+r.Recall > 0 {
			r.F1 = 2 * r.Precision * r.Recall / (r.Precision + r.Recall)
		}
		reports = append(reports, r)
	}
	return reports
}

// ClassificationReport formats PerClass as a text table.
func ClassificationReport(truth, predicted []float64) string {
	b := new(bytes.Buffer)
	fmt.Fprintf(b, "%12s %10s %10s %10s %10s\n\n", "", "precision", "recall", "f1-score", "support")
	for _, r := range PerClass(truth, predicted) {
		fmt.Fprintf(b, "%12s %10.2f %10.2f %10.2f %10d\n",
			strconv.FormatFloat(r.Label, 'f', -1, 64), r.Precision, r.Recall, r.F1, r.Support)
	}
	fmt.Fprintf(b, "\n%12s %32.2f %10d\n", "accuracy", Accuracy(truth, predicted), len(truth))
	return b.String()
}
