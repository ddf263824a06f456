package output_test

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"github.com/hscells/schemer/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bundle = output.Bundle{
	X:           [][]float64{{2, 1.5, 1, 0}, {3, 2, 0, 1}},
	Y:           []float64{1, 0},
	XTest:       [][]float64{{4, 0.25}},
	XSchema:     []string{"a", "b", "c_0", "c_1"},
	XTestSchema: []string{"a", "b"},
	YSchema:     "label",
}

func TestCsvMatrixFormatter(t *testing.T) {
	s, err := output.CsvMatrixFormatter(bundle)
	require.NoError(t, err)
	assert.Equal(t, "a,b,c_0,c_1,label\n2,1.5,1,0,1\n3,2,0,1,0\n", s)

	noTarget := bundle
	noTarget.YSchema = ""
	s, err = output.CsvMatrixFormatter(noTarget)
	require.NoError(t, err)
	assert.Equal(t, "a,b,c_0,c_1\n2,1.5,1,0\n3,2,0,1\n", s)
}

func TestCsvTestFormatter(t *testing.T) {
	s, err := output.CsvTestFormatter(bundle)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n4,0.25\n", s)
}

func TestJsonMatrixFormatter(t *testing.T) {
	s, err := output.JsonMatrixFormatter(bundle)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"X": [[2, 1.5, 1, 0], [3, 2, 0, 1]],
		"y": [1, 0],
		"X_test": [[4, 0.25]],
		"X_schema": ["a", "b", "c_0", "c_1"],
		"X_test_schema": ["a", "b"],
		"y_schema": "label"
	}`, s)

	// The stdlib encoder goes through MarshalJSON.
	v, err := json.Marshal(output.Bundle{XSchema: []string{"x"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"X":[],"y":null,"X_test":[],"X_schema":["x"],"X_test_schema":[],"y_schema":null}`, string(v))
}

func TestWritePredictions(t *testing.T) {
	b := new(bytes.Buffer)
	require.NoError(t, output.WritePredictions(b, "PassengerId", "Survived", []string{"892", "893"}, []float64{0, 1}))
	assert.Equal(t, "PassengerId,Survived\n892,0\n893,1\n", b.String())

	assert.Error(t, output.WritePredictions(b, "id", "y", []string{"1"}, nil))
}

func TestJsonMatrixFormatterNonFinite(t *testing.T) {
	b := output.Bundle{
		X:       [][]float64{{math.NaN(), 1, 0}, {2, 0, 1}},
		Y:       []float64{1, math.Inf(1)},
		XTest:   [][]float64{{math.Inf(-1)}},
		XSchema: []string{"x", "c_0", "c_1"},
		YSchema: "label",
	}
	s, err := output.JsonMatrixFormatter(b)
	require.NoError(t, err)

	var v map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(s), &v))
	assert.Equal(t, []interface{}{nil, 1.0, 0.0}, v["X"].([]interface{})[0])
	assert.Equal(t, []interface{}{1.0, nil}, v["y"])
	assert.Equal(t, []interface{}{[]interface{}{nil}}, v["X_test"])
}
