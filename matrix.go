package schemer

import (
	"github.com/hscells/schemer/frame"
	"github.com/hscells/schemer/onehot"
	"github.com/hscells/schemer/output"
	"gonum.org/v1/gonum/mat"
)

// EncodedMatrix is the numerically encoded design matrix and its schema.
//
// X has non-categorical columns first, in original order, followed by the
// one-hot block of every categorical column. Y is aligned with the rows of X.
// XTest holds the rows with an empty target; unless CategoricalTestEncoding
// is set it only has the non-categorical columns, named by XTestSchema.
type EncodedMatrix struct {
	X           [][]float64
	Y           []float64
	XTest       [][]float64
	XSchema     []string
	XTestSchema []string
	// YSchema is the target column name; it is empty when there is no target.
	YSchema string
	// YLabels names the classes of a string target; Y holds indexes into it.
	YLabels []string

	CategoricalTestEncoding bool
	Vocabulary              onehot.Vocabulary
}

// Dense returns X as a gonum matrix, or nil when X is empty.
func (m EncodedMatrix) Dense() *mat.Dense {
	return dense(m.X, len(m.XSchema))
}

// TestDense returns XTest as a gonum matrix, or nil when XTest is empty.
func (m EncodedMatrix) TestDense() *mat.Dense {
	return dense(m.XTest, len(m.XTestSchema))
}

// Frame returns X with its column names.
func (m EncodedMatrix) Frame() frame.Frame {
	return frame.New(m.XSchema, m.X)
}

// TestFrame returns XTest with its column names.
func (m EncodedMatrix) TestFrame() frame.Frame {
	return frame.New(m.XTestSchema, m.XTest)
}

// ReconciledTest returns XTest laid out exactly like X. Columns missing from
// the test rows are filled with zeros.
func (m EncodedMatrix) ReconciledTest() frame.Frame {
	return frame.Reconcile(m.Frame(), m.TestFrame())
}

func dense(rows [][]float64, cols int) *mat.Dense {
	if len(rows) == 0 || cols == 0 {
		return nil
	}
	data := make([]float64, 0, len(rows)*cols)
	for _, row := range rows {
		data = append(data, row...)
	}
	return mat.NewDense(len(rows), cols, data)
}

// Bundle returns the matrices and schemas for an output formatter.
func (m EncodedMatrix) Bundle() output.Bundle {
	return output.Bundle{
		X:           m.X,
		Y:           m.Y,
		XTest:       m.XTest,
		XSchema:     m.XSchema,
		XTestSchema: m.XTestSchema,
		YSchema:     m.YSchema,
	}
}
