package schemer

import (
	"github.com/google/uuid"
	"github.com/hscells/schemer/classify"
)

// ResultType is the type of result being returned through a pipeline channel.
type ResultType uint8

const (
	// Matrix is the encoded matrix and its formatted outputs.
	Matrix ResultType = iota
	// Report is the classifier comparison report.
	Report
	// Predictions are the predictions for the test rows.
	Predictions
	// Error indicates an error was raised.
	Error
	// Done indicates the pipeline has completed.
	Done
)

// PipelineResult is the output of a schemer pipeline. Every result of one
// execution carries the same run ID.
type PipelineResult struct {
	ID          uuid.UUID
	Matrix      *EncodedMatrix
	Outputs     []string
	Report      string
	Results     classify.Results
	IDs         []string
	Predictions []float64
	Error       error
	Type        ResultType
}
