package onehot

import (
	"fmt"

	"github.com/hscells/schemer/table"
)

// Unknown is the code given to a value outside the vocabulary when unknown values are ignored.
const Unknown = -1

// UnknownPolicy decides what happens to a value that is not in the vocabulary.
type UnknownPolicy uint8

const (
	// ErrorOnUnknown fails the encode with an UnknownCategoryError.
	ErrorOnUnknown UnknownPolicy = iota
	// IgnoreUnknown encodes the value as an all-zero block.
	IgnoreUnknown
)

// UnknownCategoryError is returned when a value was never seen in the training rows.
type UnknownCategoryError struct {
	Row    int
	Column int
	Value  string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown category %q in column %d of row %d", e.Value, e.Column, e.Row)
}

// Encode replaces every categorical cell with its position in the column's
// vocabulary. The result has one column per categorical index, in vocabulary
// column order.
func Encode(rows [][]table.Cell, v Vocabulary) ([][]int, error) {
	return encode(rows, v, ErrorOnUnknown)
}

func encode(rows [][]table.Cell, v Vocabulary, policy UnknownPolicy) ([][]int, error) {
	codes := make([][]int, len(rows))
	for r, row := range rows {
		codes[r] = make([]int, len(v.columns))
		for j, i := range v.columns {
			code, ok := v.Code(i, row[i].Raw)
			if !ok {
				if policy == ErrorOnUnknown {
					return nil, &UnknownCategoryError{Row: r, Column: i, Value: row[i].Raw}
				}
				code = Unknown
			}
			codes[r][j] = code
		}
	}
	return codes, nil
}

// OneHotExpand turns each code column into a block of |vocabulary| binary
// columns with 1.0 at the code and 0.0 elsewhere. An Unknown code yields a
// block of zeros.
func OneHotExpand(codes [][]int, v Vocabulary) [][]float64 {
	width := v.Width()
	out := make([][]float64, len(codes))
	for r, row := range codes {
		out[r] = make([]float64, width)
		offset := 0
		for j, i := range v.columns {
			if code := row[j]; code != Unknown {
				out[r][offset+code] = 1
			}
			offset += v.Size(i)
		}
	}
	return out
}

// Encoder fits a vocabulary on training rows and one-hot encodes rows with it.
type Encoder struct {
	Policy     UnknownPolicy
	vocabulary Vocabulary
	fitted     bool
}

// NewEncoder creates an encoder with the given unknown value policy.
func NewEncoder(policy UnknownPolicy) *Encoder {
	return &Encoder{Policy: policy}
}

// Fit builds the vocabulary.
func (e *Encoder) Fit(rows [][]table.Cell, categorical []int) {
	e.vocabulary = BuildVocabulary(rows, categorical)
	e.fitted = true
}

// Vocabulary returns the fitted vocabulary.
func (e *Encoder) Vocabulary() Vocabulary {
	return e.vocabulary
}

// Transform one-hot encodes rows with the fitted vocabulary.
func (e *Encoder) Transform(rows [][]table.Cell) ([][]float64, error) {
	if !e.fitted {
		return nil, fmt.Errorf("onehot: encoder must be fitted before transform")
	}
	codes, err := encode(rows, e.vocabulary, e.Policy)
	if err != nil {
		return nil, err
	}
	return OneHotExpand(codes, e.vocabulary), nil
}

// FitTransform fits the vocabulary on rows and encodes them.
func (e *Encoder) FitTransform(rows [][]table.Cell, categorical []int) ([][]float64, error) {
	e.Fit(rows, categorical)
	return e.Transform(rows)
}
