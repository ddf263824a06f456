// Package config reads schemer settings from a .properties file.
//
//	file=train.csv
//	target=Survived
//	date.layouts=2006-01-02,02/01/2006
//	location=UTC
//	delimiter=,
//	cache.size=4096
//	test.categorical=true
//	columns.drop=Name,Ticket,Cabin
//	columns.keep=
//	columns.dropnull=true
//	classify.models=Majority,NearestCentroid
//	classify.concurrency=4
//	classify.seed=1
//	classify.test_ratio=0.25
//	predict.model=NearestCentroid
//	predict.id=PassengerId
//	predict.output=predictions.csv
package config

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/hscells/schemer"
	"github.com/hscells/schemer/classify"
	"github.com/hscells/schemer/table"
	"github.com/magiconair/properties"
	"github.com/pkg/errors"
)

// Config is everything a schemer run can be configured with.
type Config struct {
	File   string
	Target string

	DateLayouts []string
	Location    *time.Location
	Delimiter   rune
	CacheSize   int

	CategoricalTestEncoding bool

	Drop     []string
	Keep     []string
	DropNull bool

	Models      []string
	Concurrency int
	Seed        int64
	TestRatio   float64

	PredictModel  string
	PredictID     string
	PredictOutput string
}

// Default is the configuration used for keys a file leaves out.
func Default() Config {
	return Config{
		DateLayouts: table.DefaultDateLayouts,
		Location:    time.UTC,
		Delimiter:   ',',
		CacheSize:   table.DefaultCacheSize,
		Seed:        1,
		TestRatio:   classify.DefaultTestRatio,
	}
}

// Load reads a configuration file.
func Load(path string) (Config, error) {
	p, err := properties.LoadFile(path, properties.UTF8)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config: could not load %s", path)
	}
	return fromProperties(p)
}

// LoadString reads a configuration from a string.
func LoadString(s string) (Config, error) {
	p, err := properties.LoadString(s)
	if err != nil {
		return Config{}, errors.Wrap(err, "config")
	}
	return fromProperties(p)
}

func fromProperties(p *properties.Properties) (Config, error) {
	c := Default()
	c.File = p.GetString("file", c.File)
	c.Target = p.GetString("target", c.Target)

	if v, ok := p.Get("date.layouts"); ok {
		c.DateLayouts = list(v)
	}
	if v, ok := p.Get("location"); ok {
		loc, err := time.LoadLocation(v)
		if err != nil {
			return Config{}, errors.Wrapf(err, "config: location %q", v)
		}
		c.Location = loc
	}
	if v, ok := p.Get("delimiter"); ok {
		r, size := utf8.DecodeRuneInString(v)
		if size == 0 || size != len(v) {
			return Config{}, errors.Errorf("config: delimiter must be a single character, got %q", v)
		}
		c.Delimiter = r
	}
	var err error
	if c.CacheSize, err = getInt(p, "cache.size", c.CacheSize); err != nil {
		return Config{}, err
	}
	if c.CategoricalTestEncoding, err = getBool(p, "test.categorical", c.CategoricalTestEncoding); err != nil {
		return Config{}, err
	}

	if v, ok := p.Get("columns.drop"); ok {
		c.Drop = list(v)
	}
	if v, ok := p.Get("columns.keep"); ok {
		c.Keep = list(v)
	}
	if c.DropNull, err = getBool(p, "columns.dropnull", c.DropNull); err != nil {
		return Config{}, err
	}

	if v, ok := p.Get("classify.models"); ok {
		c.Models = list(v)
	}
	if c.Concurrency, err = getInt(p, "classify.concurrency", c.Concurrency); err != nil {
		return Config{}, err
	}
	if c.Seed, err = getInt64(p, "classify.seed", c.Seed); err != nil {
		return Config{}, err
	}
	if c.TestRatio, err = getFloat64(p, "classify.test_ratio", c.TestRatio); err != nil {
		return Config{}, err
	}
	if c.TestRatio <= 0 || c.TestRatio >= 1 {
		return Config{}, errors.Errorf("config: classify.test_ratio must be in (0, 1), got %v", c.TestRatio)
	}

	c.PredictModel = p.GetString("predict.model", c.PredictModel)
	c.PredictID = p.GetString("predict.id", c.PredictID)
	c.PredictOutput = p.GetString("predict.output", c.PredictOutput)
	return c, nil
}

// LoaderOptions returns the table loader options of the configuration.
func (c Config) LoaderOptions() []table.LoaderOption {
	return []table.LoaderOption{
		table.DateLayouts(c.DateLayouts...),
		table.Location(c.Location),
		table.Delimiter(c.Delimiter),
		table.CacheSize(c.CacheSize),
	}
}

// BuildOptions returns the encoding options of the configuration.
func (c Config) BuildOptions() []schemer.Option {
	return []schemer.Option{
		schemer.CategoricalTestEncoding(c.CategoricalTestEncoding),
	}
}

// Columns returns the column selection of the configuration.
func (c Config) Columns() schemer.ColumnSelection {
	return schemer.ColumnSelection{Drop: c.Drop, Keep: c.Keep, DropNull: c.DropNull}
}

// RunnerOptions returns the classifier runner options of the configuration.
func (c Config) RunnerOptions() []classify.RunnerOption {
	opts := []classify.RunnerOption{
		classify.Seed(c.Seed),
		classify.TestRatio(c.TestRatio),
	}
	if len(c.Models) > 0 {
		opts = append(opts, classify.Models(c.Models...))
	}
	if c.Concurrency > 0 {
		opts = append(opts, classify.Concurrency(c.Concurrency))
	}
	return opts
}

// getInt and its siblings read a typed key, returning def when the key is
// absent and an error when the value is malformed.
func getInt(p *properties.Properties, key string, def int) (int, error) {
	v, ok := p.Get(key)
	if !ok {
		return def, nil
	}
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, errors.Wrapf(err, "config: %s", key)
	}
	return i, nil
}

func getInt64(p *properties.Properties, key string, def int64) (int64, error) {
	v, ok := p.Get(key)
	if !ok {
		return def, nil
	}
	i, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "config: %s", key)
	}
	return i, nil
}

func getFloat64(p *properties.Properties, key string, def float64) (float64, error) {
	v, ok := p.Get(key)
	if !ok {
		return def, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, errors.Wrapf(err, "config: %s", key)
	}
	return f, nil
}

func getBool(p *properties.Properties, key string, def bool) (bool, error) {
	v, ok := p.Get(key)
	if !ok {
		return def, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return false, errors.Wrapf(err, "config: %s", key)
	}
	return b, nil
}

func list(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
