// Package classify compares binary classifiers over an encoded matrix. The
// models themselves live behind the Classifier interface; this package only
// registers, schedules and scores them.
package classify

import (
	"errors"
)

// ErrUnknownModel is returned when a model identifier is not registered.
var ErrUnknownModel = errors.New("classify: unknown model")

// Classifier is a model that can be fitted on a design matrix and asked for predictions.
type Classifier interface {
	Fit(X [][]float64, y []float64) error
	Predict(X [][]float64) ([]float64, error)
}

// Scorer is implemented by classifiers that score themselves. Classifiers that
// do not implement it are scored by Accuracy.
type Scorer interface {
	Score(X [][]float64, y []float64) (float64, error)
}

// Score scores a fitted classifier on X and y.
func Score(c Classifier, X [][]float64, y []float64) (float64, error) {
	if s, ok := c.(Scorer); ok {
		return s.Score(X, y)
	}
	predicted, err := c.Predict(X)
	if err != nil {
		return 0, err
	}
	return Accuracy(y, predicted), nil
}
