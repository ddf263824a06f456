// Package schemer infers the schema of a delimited table and encodes it into a
// numeric design matrix for binary classifiers. Rows with an empty target are
// held out as the rows to predict.
package schemer

import (
	"fmt"
	"log"
	"sort"

	"github.com/hscells/schemer/onehot"
	"github.com/hscells/schemer/schema"
	"github.com/hscells/schemer/table"
	"github.com/xtgo/set"
)

// KindMismatchError is returned when a row holds a string where the first
// training row fixed the column as non-categorical. The column kind is not
// revised.
type KindMismatchError struct {
	Column string
	// Row is the 0-based index of the row within the training or test rows.
	Row int
	// Line is the 1-based record number in the source, the header being record 1.
	Line  int
	Value string
	Test  bool
}

func (e *KindMismatchError) Error() string {
	partition := "training"
	if e.Test {
		partition = "test"
	}
	return fmt.Sprintf("column %q is non-categorical but line %d (%s row %d) holds %q", e.Column, e.Line, partition, e.Row, e.Value)
}

type options struct {
	categoricalTestEncoding bool
}

// Option configures Build.
type Option func(o *options)

// CategoricalTestEncoding one-hot encodes the test rows with the training
// vocabulary, so XTest has the same columns as X. Test values that never
// occur in the training rows encode as all-zero blocks.
func CategoricalTestEncoding(enabled bool) Option {
	return func(o *options) {
		o.categoricalTestEncoding = enabled
	}
}

// Build runs the whole engine over a table: split on the target, classify
// columns from the first training row, fit vocabularies on the training rows,
// then assemble X, Y and XTest. Every call starts from scratch.
func Build(raw table.RawTable, target string, opts ...Option) (EncodedMatrix, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	split, err := table.Split(raw, target)
	if err != nil {
		return EncodedMatrix{}, err
	}

	partition, err := schema.Classify(split.TrainRows, split.FeatureHeader)
	if err != nil {
		return EncodedMatrix{}, err
	}

	vocabulary := onehot.BuildVocabulary(split.TrainRows, partition.Categorical)
	codes, err := onehot.Encode(split.TrainRows, vocabulary)
	if err != nil {
		return EncodedMatrix{}, err
	}
	oneHot := onehot.OneHotExpand(codes, vocabulary)

	nonCategorical, err := numericColumns(split.TrainRows, split.TrainIndex, split.FeatureHeader, partition, false)
	if err != nil {
		return EncodedMatrix{}, err
	}

	y, labels := encodeTargets(split.Targets)
	names := schema.BuildSchema(split.FeatureHeader, partition.NonCategorical, partition.Categorical, vocabulary.Sizes())

	m, err := Assemble(nonCategorical, oneHot, y, names, split.Target)
	if err != nil {
		return EncodedMatrix{}, err
	}
	m.YLabels = labels
	m.Vocabulary = vocabulary
	m.CategoricalTestEncoding = o.categoricalTestEncoding

	testNonCategorical, err := numericColumns(split.TestRows, split.TestIndex, split.FeatureHeader, partition, true)
	if err != nil {
		return EncodedMatrix{}, err
	}
	if o.categoricalTestEncoding {
		enc := onehot.NewEncoder(onehot.IgnoreUnknown)
		enc.Fit(split.TrainRows, partition.Categorical)
		testOneHot, err := enc.Transform(split.TestRows)
		if err != nil {
			return EncodedMatrix{}, err
		}
		m.XTest, err = hstack(testNonCategorical, testOneHot, names)
		if err != nil {
			return EncodedMatrix{}, err
		}
		m.XTestSchema = names
	} else {
		m.XTestSchema = schema.NonCategoricalSchema(split.FeatureHeader, partition)
		m.XTest, err = hstack(testNonCategorical, nil, m.XTestSchema)
		if err != nil {
			return EncodedMatrix{}, err
		}
	}

	log.Printf("encoded %d training rows and %d test rows into %d columns (%d categorical features)\n",
		len(m.X), len(m.XTest), len(m.XSchema), len(partition.Categorical))
	return m, nil
}

// numericColumns extracts the non-categorical cells of every row as numbers.
func numericColumns(rows [][]table.Cell, index []int, header []string, p schema.Partition, test bool) ([][]float64, error) {
	out := make([][]float64, len(rows))
	for r, row := range rows {
		out[r] = make([]float64, len(p.NonCategorical))
		for j, i := range p.NonCategorical {
			v, ok := row[i].Numeric()
			if !ok {
				return nil, &KindMismatchError{
					Column: header[i],
					Row:    r,
					Line:   table.Record(index[r]),
					Value:  row[i].Raw,
					Test:   test,
				}
			}
			out[r][j] = v
		}
	}
	return out, nil
}

// encodeTargets turns target cells into numbers. Numeric and date targets are
// used as-is; if any target is a string, every target is replaced by the index
// of its text among the sorted distinct labels.
func encodeTargets(targets []table.Cell) ([]float64, []string) {
	y := make([]float64, len(targets))
	numeric := true
	for i, c := range targets {
		v, ok := c.Numeric()
		if !ok {
			numeric = false
			break
		}
		y[i] = v
	}
	if numeric {
		return y, nil
	}

	labels := make(sort.StringSlice, len(targets))
	for i, c := range targets {
		labels[i] = c.Raw
	}
	sort.Sort(labels)
	labels = labels[:set.Uniq(labels)]

	index := make(map[string]int, len(labels))
	for i, l := range labels {
		index[l] = i
	}
	for i, c := range targets {
		y[i] = float64(index[c.Raw])
	}
	return y, labels
}
