package output

import (
	"math"

	"github.com/mailru/easyjson/jwriter"
)

// MarshalEasyJSON writes the bundle as an object with the keys X, y, X_test,
// X_schema, X_test_schema and y_schema. y and y_schema are null without a target.
// NaN and infinite values have no JSON form and are written as null.
func (b Bundle) MarshalEasyJSON(w *jwriter.Writer) {
	w.RawString(`{"X":`)
	writeMatrix(w, b.X)
	w.RawString(`,"y":`)
	if b.YSchema == "" {
		w.RawString("null")
	} else {
		writeFloats(w, b.Y)
	}
	w.RawString(`,"X_test":`)
	writeMatrix(w, b.XTest)
	w.RawString(`,"X_schema":`)
	writeStrings(w, b.XSchema)
	w.RawString(`,"X_test_schema":`)
	writeStrings(w, b.XTestSchema)
	w.RawString(`,"y_schema":`)
	if b.YSchema == "" {
		w.RawString("null")
	} else {
		w.String(b.YSchema)
	}
	w.RawByte('}')
}

// MarshalJSON implements json.Marshaler.
func (b Bundle) MarshalJSON() ([]byte, error) {
	w := jwriter.Writer{}
	b.MarshalEasyJSON(&w)
	return w.BuildBytes()
}

// JsonMatrixFormatter outputs the whole bundle as a single JSON object.
func JsonMatrixFormatter(b Bundle) (string, error) {
	v, err := b.MarshalJSON()
	if err != nil {
		return "", err
	}
	return string(v), nil
}

func writeMatrix(w *jwriter.Writer, m [][]float64) {
	w.RawByte('[')
	for i, row := range m {
		if i > 0 {
			w.RawByte(',')
		}
		writeFloats(w, row)
	}
	w.RawByte(']')
}

func writeFloats(w *jwriter.Writer, v []float64) {
	w.RawByte('[')
	for i, f := range v {
		if i > 0 {
			w.RawByte(',')
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			w.RawString("null")
			continue
		}
		w.Float64(f)
	}
	w.RawByte(']')
}

func writeStrings(w *jwriter.Writer, v []string) {
	w.RawByte('[')
	for i, s := range v {
		if i > 0 {
			w.RawByte(',')
		}
		w.String(s)
	}
	w.RawByte(']')
}
