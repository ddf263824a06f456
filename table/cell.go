// Package table loads delimited text into typed rows and splits them into training and test partitions.
package table

import (
	"strconv"
	"time"
)

// Kind is the inferred type of a cell.
type Kind uint8

const (
	// String is the fallback kind; empty cells are strings too.
	String Kind = iota
	// Float is any cell strconv can parse as a float64.
	Float
	// DateTime is a cell matching one of the loader's date layouts.
	DateTime
)

func (k Kind) String() string {
	switch k {
	case Float:
		return "float"
	case DateTime:
		return "datetime"
	default:
		return "string"
	}
}

// Cell is a single typed value in a raw table. Raw always holds the text the
// cell was read from.
type Cell struct {
	Kind  Kind
	Raw   string
	Float float64
	Time  time.Time
}

// NewString creates a string cell.
func NewString(s string) Cell {
	return Cell{Kind: String, Raw: s}
}

// NewFloat creates a float cell.
func NewFloat(f float64) Cell {
	return Cell{Kind: Float, Raw: strconv.FormatFloat(f, 'f', -1, 64), Float: f}
}

// NewDateTime creates a date cell.
func NewDateTime(t time.Time, raw string) Cell {
	return Cell{Kind: DateTime, Raw: raw, Time: t}
}

// IsEmpty reports whether the cell is the empty string. Only string cells can be empty.
func (c Cell) IsEmpty() bool {
	return c.Kind == String && c.Raw == ""
}

// Numeric returns the arithmetic value of the cell: floats as-is and dates as
// Unix seconds. The second return value is false for string cells.
func (c Cell) Numeric() (float64, bool) {
	switch c.Kind {
	case Float:
		return c.Float, true
	case DateTime:
		return float64(c.Time.Unix()), true
	}
	return 0, false
}

func (c Cell) String() string {
	return c.Raw
}

// Coerce infers the type of a raw value. A float parse is tried first, then
// each date layout in order, and anything else is kept as a string. Text such
// as "NaN" or "Inf" parses as a non-finite float; frame.ProjectOutNullColumns
// removes such columns when asked to.
func Coerce(raw string, layouts []string, loc *time.Location) Cell {
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return Cell{Kind: Float, Raw: raw, Float: f}
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return Cell{Kind: DateTime, Raw: raw, Time: t}
		}
	}
	return Cell{Kind: String, Raw: raw}
}
