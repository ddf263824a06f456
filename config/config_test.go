package config_test

import (
	"io/ioutil"
	"path/filepath"
	"testing"
	"time"

	"github.com/hscells/schemer"
	"github.com/hscells/schemer/classify"
	"github.com/hscells/schemer/config"
	"github.com/hscells/schemer/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadString(t *testing.T) {
	c, err := config.LoadString(`
file = train.csv
target = Survived
date.layouts = 2006-01-02, 02/01/2006
location = UTC
delimiter = ;
cache.size = 16
test.categorical = true
columns.drop = Name, Cabin
columns.dropnull = true
classify.models = NearestCentroid
classify.concurrency = 2
classify.seed = 9
classify.test_ratio = 0.5
predict.model = NearestCentroid
predict.id = PassengerId
predict.output = out.csv
`)
	require.NoError(t, err)
	assert.Equal(t, "train.csv", c.File)
	assert.Equal(t, "Survived", c.Target)
	assert.Equal(t, []string{"2006-01-02", "02/01/2006"}, c.DateLayouts)
	assert.Equal(t, time.UTC, c.Location)
	assert.Equal(t, ';', c.Delimiter)
	assert.Equal(t, 16, c.CacheSize)
	assert.True(t, c.CategoricalTestEncoding)
	assert.Equal(t, []string{"Name", "Cabin"}, c.Drop)
	assert.Empty(t, c.Keep)
	assert.True(t, c.DropNull)
	assert.Equal(t, schemer.ColumnSelection{Drop: []string{"Name", "Cabin"}, DropNull: true}, c.Columns())
	assert.Equal(t, []string{"NearestCentroid"}, c.Models)
	assert.Equal(t, 2, c.Concurrency)
	assert.Equal(t, int64(9), c.Seed)
	assert.Equal(t, 0.5, c.TestRatio)
	assert.Equal(t, "NearestCentroid", c.PredictModel)
	assert.Equal(t, "PassengerId", c.PredictID)
	assert.Equal(t, "out.csv", c.PredictOutput)

	assert.Len(t, c.LoaderOptions(), 4)
	assert.Len(t, c.BuildOptions(), 1)
	assert.Len(t, c.RunnerOptions(), 4)
}

func TestDefaults(t *testing.T) {
	c, err := config.LoadString("target = y\n")
	require.NoError(t, err)
	assert.Equal(t, table.DefaultDateLayouts, c.DateLayouts)
	assert.Equal(t, ',', c.Delimiter)
	assert.Equal(t, table.DefaultCacheSize, c.CacheSize)
	assert.Equal(t, classify.DefaultTestRatio, c.TestRatio)
	assert.False(t, c.CategoricalTestEncoding)
	assert.Len(t, c.RunnerOptions(), 2)

	// The options are usable as they are.
	_, err = table.NewLoader(c.LoaderOptions()...)
	assert.NoError(t, err)
}

func TestInvalid(t *testing.T) {
	_, err := config.LoadString("delimiter = ab\n")
	assert.Error(t, err)

	_, err = config.LoadString("location = Not/AZone\n")
	assert.Error(t, err)

	_, err = config.LoadString("classify.test_ratio = 1.5\n")
	assert.Error(t, err)
}

func TestMalformedValues(t *testing.T) {
	for _, s := range []string{
		"classify.concurrency = abc\n",
		"classify.seed = 1.5\n",
		"classify.test_ratio = half\n",
		"cache.size = big\n",
		"test.categorical = maybe\n",
		"columns.dropnull = 2\n",
	} {
		_, err := config.LoadString(s)
		assert.Error(t, err, s)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schemer.properties")
	require.NoError(t, ioutil.WriteFile(path, []byte("file = data.csv\ntarget = label\n"), 0644))

	c, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "data.csv", c.File)
	assert.Equal(t, "label", c.Target)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.properties"))
	assert.Error(t, err)
}
