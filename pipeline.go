package schemer

import (
	"context"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/hscells/schemer/classify"
	"github.com/hscells/schemer/output"
	"github.com/hscells/schemer/table"
	"github.com/pkg/errors"
)

// Pipeline contains all the information for encoding a table and, optionally,
// comparing classifiers on it and predicting its test rows.
type Pipeline struct {
	Path             string
	Target           string
	LoaderOptions    []table.LoaderOption
	BuildOptions     []Option
	Columns          ColumnSelection
	MatrixFormatters []output.MatrixFormatter
	Runner           *classify.Runner
	Prediction       PredictionConfiguration
}

// PredictionConfiguration specifies which fitted model predicts the test rows
// and where the predictions are written. Output may be empty, in which case
// the predictions are only sent through the channel.
type PredictionConfiguration struct {
	Model  string
	ID     string
	Output string
}

// Loading configures how the table is read.
func Loading(options ...table.LoaderOption) func() interface{} {
	return func() interface{} {
		return options
	}
}

// Encoding configures how the table is encoded.
func Encoding(options ...Option) func() interface{} {
	return func() interface{} {
		return options
	}
}

// Columns narrows the encoded columns before they are output or classified.
func Columns(selection ColumnSelection) func() interface{} {
	return func() interface{} {
		return selection
	}
}

// MatrixOutput adds output formats for the encoded matrix.
func MatrixOutput(formatter ...output.MatrixFormatter) func() interface{} {
	return func() interface{} {
		return formatter
	}
}

// Classification compares the models of a runner on the encoded matrix.
func Classification(runner *classify.Runner) func() interface{} {
	return func() interface{} {
		return runner
	}
}

// Prediction predicts the test rows with a model, identifying each row by the
// value of the id column.
func Prediction(model, id, path string) func() interface{} {
	return func() interface{} {
		return PredictionConfiguration{Model: model, ID: id, Output: path}
	}
}

// NewPipeline creates a new schemer pipeline. The table path and target column
// are required. Additional components are provided via the optional functional
// arguments.
func NewPipeline(path, target string, components ...func() interface{}) Pipeline {
	p := Pipeline{
		Path:   path,
		Target: target,
	}

	for _, component := range components {
		val := component()
		switch v := val.(type) {
		case []table.LoaderOption:
			p.LoaderOptions = v
		case []Option:
			p.BuildOptions = v
		case ColumnSelection:
			p.Columns = v
		case []output.MatrixFormatter:
			p.MatrixFormatters = v
		case *classify.Runner:
			p.Runner = v
		case PredictionConfiguration:
			p.Prediction = v
		}
	}

	return p
}

// Execute runs the pipeline, sending results through c. The channel is closed
// when the pipeline finishes; the last result is either Error or Done.
func (p Pipeline) Execute(ctx context.Context, c chan PipelineResult) {
	defer close(c)
	id := uuid.New()
	fail := func(err error) {
		c <- PipelineResult{ID: id, Error: err, Type: Error}
	}

	log.Printf("starting schemer pipeline %s...\n", id)

	loader, err := table.NewLoader(p.LoaderOptions...)
	if err != nil {
		fail(err)
		return
	}
	raw, err := loader.LoadFile(p.Path)
	if err != nil {
		fail(err)
		return
	}

	m, err := Build(raw, p.Target, p.BuildOptions...)
	if err != nil {
		fail(err)
		return
	}
	m = m.Select(p.Columns)

	// Format the matrix into the specified formats.
	outputs := make([]string, len(p.MatrixFormatters))
	for i, formatter := range p.MatrixFormatters {
		outputs[i], err = formatter(m.Bundle())
		if err != nil {
			fail(err)
			return
		}
	}
	c <- PipelineResult{ID: id, Matrix: &m, Outputs: outputs, Type: Matrix}

	runner := p.Runner
	if runner == nil && len(p.Prediction.Model) > 0 {
		runner = classify.NewRunner(classify.NewDefaultRegistry(), classify.Models(p.Prediction.Model))
	}
	if runner == nil {
		c <- PipelineResult{ID: id, Type: Done}
		return
	}

	log.Println("comparing classifiers...")
	results, err := runner.Run(ctx, m.X, m.Y)
	if err != nil {
		fail(err)
		return
	}
	c <- PipelineResult{ID: id, Report: results.Report(), Results: results, Type: Report}

	if len(p.Prediction.Model) > 0 {
		ids, predictions, err := p.predict(raw, m, results)
		if err != nil {
			fail(err)
			return
		}
		c <- PipelineResult{ID: id, IDs: ids, Predictions: predictions, Type: Predictions}
	}

	c <- PipelineResult{ID: id, Type: Done}
}

// predict predicts the test rows laid out like the training matrix, and
// writes them out if an output path is configured.
func (p Pipeline) predict(raw table.RawTable, m EncodedMatrix, results classify.Results) ([]string, []float64, error) {
	target := raw.Column(p.Target)
	idColumn := raw.Column(p.Prediction.ID)
	if idColumn < 0 {
		return nil, nil, &table.UnknownColumnError{Column: p.Prediction.ID, Header: raw.Header}
	}

	var ids []string
	for _, row := range raw.Rows {
		if row[target].IsEmpty() {
			ids = append(ids, row[idColumn].Raw)
		}
	}

	var predictions []float64
	if test := m.ReconciledTest(); len(test.Rows) > 0 {
		var err error
		predictions, err = results.Predict(p.Prediction.Model, test.Rows)
		if err != nil {
			return nil, nil, err
		}
	}

	if len(p.Prediction.Output) > 0 {
		f, err := os.OpenFile(p.Prediction.Output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0664)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "could not create %s", p.Prediction.Output)
		}
		if err := output.WritePredictions(f, p.Prediction.ID, p.Target, ids, predictions); err != nil {
			f.Close()
			return nil, nil, err
		}
		if err := f.Close(); err != nil {
			return nil, nil, err
		}
		log.Printf("wrote %d predictions to %s\n", len(ids), p.Prediction.Output)
	}
	return ids, predictions, nil
}
