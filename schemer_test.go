package schemer_test

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/hscells/schemer"
	"github.com/hscells/schemer/output"
	"github.com/hscells/schemer/schema"
	"github.com/hscells/schemer/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	d2000 = 946684800.0
	d2001 = 981072000.0
)

func load(t *testing.T, options ...table.LoaderOption) table.RawTable {
	l, err := table.NewLoader(options...)
	require.NoError(t, err)
	raw, err := l.LoadFile("testdata/csv_parser_test.csv")
	require.NoError(t, err)
	return raw
}

func loadString(t *testing.T, s string) table.RawTable {
	l, err := table.NewLoader()
	require.NoError(t, err)
	raw, err := l.Load(strings.NewReader(s))
	require.NoError(t, err)
	return raw
}

func TestBuild(t *testing.T) {
	m, err := schemer.Build(load(t), "col3")
	require.NoError(t, err)

	assert.Equal(t, []string{"col1", "col4", "col6", "col2_0", "col2_1", "col5_0"}, m.XSchema)
	assert.Equal(t, [][]float64{
		{2, d2001, 2.3, 1, 0, 1},
		{2, d2001, 2.3, 0, 1, 1},
	}, m.X)
	assert.Equal(t, []float64{1, 0}, m.Y)
	assert.Equal(t, "col3", m.YSchema)
	assert.Nil(t, m.YLabels)

	assert.False(t, m.CategoricalTestEncoding)
	assert.Equal(t, []string{"col1", "col4", "col6"}, m.XTestSchema)
	assert.Equal(t, [][]float64{{1, d2000, 2.3}}, m.XTest)
	assert.Equal(t, []string{"y", "z"}, m.Vocabulary.Categories(1))
}

func TestBuildCategoricalTestEncoding(t *testing.T) {
	pst := time.FixedZone("PST", -8*60*60)
	m, err := schemer.Build(load(t, table.Location(pst)), "col3", schemer.CategoricalTestEncoding(true))
	require.NoError(t, err)

	assert.True(t, m.CategoricalTestEncoding)
	assert.Equal(t, [][]float64{
		{2, 9.811008e+08, 2.3, 1, 0, 1},
		{2, 9.811008e+08, 2.3, 0, 1, 1},
	}, m.X)
	assert.Equal(t, [][]float64{{1, 9.467136e+08, 2.3, 1, 0, 1}}, m.XTest)
	assert.Equal(t, m.XSchema, m.XTestSchema)
}

func TestBuildUnseenTestCategory(t *testing.T) {
	raw := loadString(t, "n,c,label\n1,a,1\n2,b,0\n3,q,\n")

	m, err := schemer.Build(raw, "label", schemer.CategoricalTestEncoding(true))
	require.NoError(t, err)
	assert.Equal(t, []string{"n", "c_0", "c_1"}, m.XTestSchema)
	assert.Equal(t, [][]float64{{3, 0, 0}}, m.XTest)
}

func TestBuildInvariants(t *testing.T) {
	raw := loadString(t, strings.Join([]string{
		"id,colour,size,joined,label",
		"1,red,S,2019-01-01,1",
		"2,green,M,2019-02-01,0",
		"3,red,L,2019-03-01,",
		"4,blue,S,2019-04-01,1",
		"5,green,XL,2019-05-01,",
		"6,red,M,2019-06-01,0",
	}, "\n"))

	m, err := schemer.Build(raw, "label")
	require.NoError(t, err)

	assert.Equal(t, len(raw.Rows), len(m.X)+len(m.XTest))
	assert.Len(t, m.Y, len(m.X))
	for _, row := range m.X {
		assert.Len(t, row, len(m.XSchema))

		// Training rows hold three colours (blue green red) and two sizes (M S).
		assert.Equal(t, 1.0, row[2]+row[3]+row[4])
		assert.Equal(t, 1.0, row[5]+row[6])
	}
	assert.Equal(t, []string{"id", "joined", "colour_0", "colour_1", "colour_2", "size_0", "size_1"}, m.XSchema)

	again, err := schemer.Build(raw, "label")
	require.NoError(t, err)
	assert.Equal(t, m.X, again.X)
	assert.Equal(t, m.Y, again.Y)
	assert.Equal(t, m.XTest, again.XTest)
	assert.Equal(t, m.XSchema, again.XSchema)
}

func TestBuildStringTarget(t *testing.T) {
	raw := loadString(t, "x,label\n1,yes\n2,no\n3,\n4,yes\n")

	m, err := schemer.Build(raw, "label")
	require.NoError(t, err)
	assert.Equal(t, []string{"no", "yes"}, m.YLabels)
	assert.Equal(t, []float64{1, 0, 1}, m.Y)
}

func TestBuildKindMismatch(t *testing.T) {
	raw := loadString(t, "x,label\n1,1\nabc,0\n")

	_, err := schemer.Build(raw, "label")
	var mismatch *schemer.KindMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, "x", mismatch.Column)
	assert.Equal(t, 1, mismatch.Row)
	assert.Equal(t, 3, mismatch.Line)
	assert.False(t, mismatch.Test)
	assert.Contains(t, mismatch.Error(), "line 3")

	// An empty cell in a test row is a string too. The test row is the
	// first of its partition but the fourth record of the source.
	raw = loadString(t, "x,label\n1,1\n2,0\n,\n")
	_, err = schemer.Build(raw, "label")
	require.True(t, errors.As(err, &mismatch))
	assert.True(t, mismatch.Test)
	assert.Equal(t, 0, mismatch.Row)
	assert.Equal(t, 4, mismatch.Line)
}

func TestBuildErrors(t *testing.T) {
	raw := load(t)

	_, err := schemer.Build(raw, "nope")
	var unknown *table.UnknownColumnError
	assert.True(t, errors.As(err, &unknown))

	_, err = schemer.Build(raw, "")
	assert.True(t, errors.Is(err, schema.ErrEmptyDataset))

	_, err = schemer.Build(loadString(t, "x,label\n1,\n2,\n"), "label")
	assert.True(t, errors.Is(err, schema.ErrEmptyDataset))
}

func TestAssemble(t *testing.T) {
	m, err := schemer.Assemble(
		[][]float64{{1, 2}, {3, 4}},
		[][]float64{{1, 0}, {0, 1}},
		[]float64{1, 0},
		[]string{"a", "b", "c_0", "c_1"},
		"label")
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2, 1, 0}, {3, 4, 0, 1}}, m.X)

	_, err = schemer.Assemble([][]float64{{1, 2}}, [][]float64{{1, 0}}, []float64{1}, []string{"a", "b", "c_0"}, "label")
	var fault *schema.InternalConsistencyFault
	require.True(t, errors.As(err, &fault))
	assert.Equal(t, "columns", fault.What)
	assert.Equal(t, 3, fault.Want)
	assert.Equal(t, 4, fault.Got)
	assert.Equal(t, schema.CheckWidth([]string{"a", "b", "c_0"}, 4), err)

	_, err = schemer.Assemble([][]float64{{1}}, nil, []float64{1, 0}, []string{"a"}, "label")
	require.True(t, errors.As(err, &fault))
	assert.Equal(t, "rows", fault.What)
}

func TestEncodedMatrixViews(t *testing.T) {
	m, err := schemer.Build(load(t), "col3")
	require.NoError(t, err)

	d := m.Dense()
	r, c := d.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 6, c)
	assert.Equal(t, 1.0, d.At(1, 4))

	td := m.TestDense()
	r, c = td.Dims()
	assert.Equal(t, 1, r)
	assert.Equal(t, 3, c)

	rt := m.ReconciledTest()
	assert.Equal(t, m.XSchema, rt.Columns)
	assert.Equal(t, [][]float64{{1, d2000, 2.3, 0, 0, 0}}, rt.Rows)

	assert.Nil(t, schemer.EncodedMatrix{}.Dense())
}

func TestSelect(t *testing.T) {
	raw := loadString(t, "id,colour,size,label\n1,red,S,1\n2,blue,M,0\n3,red,S,\n")
	m, err := schemer.Build(raw, "label", schemer.CategoricalTestEncoding(true))
	require.NoError(t, err)
	require.Equal(t, []string{"id", "colour_0", "colour_1", "size_0", "size_1"}, m.XSchema)

	kept := m.Select(schemer.ColumnSelection{Keep: []string{"id", "colour"}})
	assert.Equal(t, []string{"id", "colour_0", "colour_1"}, kept.XSchema)
	assert.Equal(t, [][]float64{{1, 0, 1}, {2, 1, 0}}, kept.X)
	assert.Equal(t, kept.XSchema, kept.XTestSchema)
	assert.Equal(t, [][]float64{{3, 0, 1}}, kept.XTest)
	assert.Equal(t, m.Y, kept.Y)

	dropped := m.Select(schemer.ColumnSelection{Drop: []string{"colour_1", "size"}})
	assert.Equal(t, []string{"id", "colour_0"}, dropped.XSchema)
	assert.Equal(t, [][]float64{{3, 0}}, dropped.XTest)

	// The matrix Select was called on is left alone.
	assert.Len(t, m.XSchema, 5)
	assert.Equal(t, m, m.Select(schemer.ColumnSelection{}))
}

func TestNonFiniteCells(t *testing.T) {
	raw := loadString(t, "x,c,label\nNaN,a,1\n2,b,0\n")
	m, err := schemer.Build(raw, "label")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(m.X[0][0]))

	s, err := output.JsonMatrixFormatter(m.Bundle())
	require.NoError(t, err)
	var v map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(s), &v))

	m = m.Select(schemer.ColumnSelection{DropNull: true})
	assert.Equal(t, []string{"c_0", "c_1"}, m.XSchema)
	assert.Equal(t, [][]float64{{1, 0}, {0, 1}}, m.X)
}
