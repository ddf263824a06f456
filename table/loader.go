package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// DefaultDateLayouts are tried, in order, when no layouts are configured. The
// second accepts months and days without a leading zero, such as 2000-1-1.
var DefaultDateLayouts = []string{
	"2006-01-02",
	"2006-1-2",
}

// DefaultCacheSize is the number of distinct raw values the loader memoises.
const DefaultCacheSize = 4096

// RawTable is a header and rows of typed cells. Every row has exactly len(Header) cells.
type RawTable struct {
	Header []string
	Rows   [][]Cell
}

// Column returns the index of a named column, or -1.
func (t RawTable) Column(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// Loader reads delimited text into a RawTable.
type Loader struct {
	layouts   []string
	location  *time.Location
	delimiter rune
	trim      bool
	cacheSize int
	cache     CellCacher
}

// LoaderOption configures a Loader.
type LoaderOption func(l *Loader)

// DateLayouts sets the time layouts tried when coercing a cell. The first layout that parses wins.
func DateLayouts(layouts ...string) LoaderOption {
	return func(l *Loader) {
		l.layouts = layouts
	}
}

// Location sets the time zone dates are interpreted in.
func Location(loc *time.Location) LoaderOption {
	return func(l *Loader) {
		l.location = loc
	}
}

// Delimiter sets the field delimiter (default ',').
func Delimiter(r rune) LoaderOption {
	return func(l *Loader) {
		l.delimiter = r
	}
}

// TrimSpace trims surrounding white space from cells before coercion.
func TrimSpace(trim bool) LoaderOption {
	return func(l *Loader) {
		l.trim = trim
	}
}

// CacheSize bounds the coercion cache. A size of zero disables caching.
func CacheSize(size int) LoaderOption {
	return func(l *Loader) {
		l.cacheSize = size
	}
}

// Cache sets the coercion cache directly, overriding CacheSize.
func Cache(c CellCacher) LoaderOption {
	return func(l *Loader) {
		l.cache = c
	}
}

// NewLoader creates a loader. Without options it reads comma separated values
// and recognises ISO dates in UTC.
func NewLoader(options ...LoaderOption) (*Loader, error) {
	l := &Loader{
		layouts:   DefaultDateLayouts,
		location:  time.UTC,
		delimiter: ',',
		cacheSize: DefaultCacheSize,
	}
	for _, o := range options {
		o(l)
	}
	if l.cache == nil {
		if l.cacheSize > 0 {
			c, err := NewLRUCellCache(l.cacheSize)
			if err != nil {
				return nil, err
			}
			l.cache = c
		} else {
			l.cache = noCellCache{}
		}
	}
	return l, nil
}

// Coerce infers the type of a raw value using the loader's layouts, location and cache.
func (l *Loader) Coerce(raw string) Cell {
	if l.trim {
		raw = strings.TrimSpace(raw)
	}
	if c, ok := l.cache.Get(raw); ok {
		return c
	}
	c := Coerce(raw, l.layouts, l.location)
	l.cache.Set(raw, c)
	return c
}

// Load reads a header row followed by data rows. A single malformed row aborts the whole load.
func (l *Loader) Load(r io.Reader) (RawTable, error) {
	var t RawTable

	cr := csv.NewReader(r)
	cr.Comma = l.delimiter
	// Cardinality is checked below so the error carries our own type.
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return t, &MalformedInputError{Reason: "no header row"}
	}
	if err != nil {
		return t, &MalformedInputError{Err: err}
	}
	t.Header = header

	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return RawTable{}, &MalformedInputError{Line: line, Err: err}
		}
		if len(record) != len(header) {
			return RawTable{}, &MalformedInputError{
				Line:   line,
				Reason: fmt.Sprintf("row has %d cells, header has %d", len(record), len(header)),
			}
		}
		row := make([]Cell, len(record))
		for i, v := range record {
			row[i] = l.Coerce(v)
		}
		t.Rows = append(t.Rows, row)
	}

	log.Printf("loaded %d rows with %d columns\n", len(t.Rows), len(t.Header))
	return t, nil
}

// LoadFile opens and loads a file. A missing file is malformed input.
func (l *Loader) LoadFile(path string) (RawTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return RawTable{}, &MalformedInputError{Err: errors.Wrapf(err, "opening %s", path)}
	}
	defer f.Close()
	return l.Load(f)
}
