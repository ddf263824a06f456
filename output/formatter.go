// Package output provides the formats an encoded matrix can be written in.
package output

import (
	"bytes"
	"encoding/csv"
	"strconv"
)

// Bundle is the encoded dataset handed to a formatter. YSchema is empty when
// the dataset had no target column.
type Bundle struct {
	X           [][]float64
	Y           []float64
	XTest       [][]float64
	XSchema     []string
	XTestSchema []string
	YSchema     string
}

// MatrixFormatter is used in a schemer pipeline to output an encoded matrix.
type MatrixFormatter func(b Bundle) (string, error)

// CsvMatrixFormatter outputs the training matrix as CSV, with the target as the last column.
func CsvMatrixFormatter(b Bundle) (string, error) {
	header := append([]string(nil), b.XSchema...)
	if b.YSchema != "" {
		header = append(header, b.YSchema)
	}
	return writeCsv(header, b.X, func(i int) []string {
		if b.YSchema == "" || i >= len(b.Y) {
			return nil
		}
		return []string{formatFloat(b.Y[i])}
	})
}

// CsvTestFormatter outputs the test matrix as CSV.
func CsvTestFormatter(b Bundle) (string, error) {
	return writeCsv(b.XTestSchema, b.XTest, nil)
}

func writeCsv(header []string, rows [][]float64, extra func(i int) []string) (string, error) {
	buff := bytes.NewBufferString("")
	w := csv.NewWriter(buff)
	if err := w.Write(header); err != nil {
		return "", err
	}
	for i, row := range rows {
		record := make([]string, len(row))
		for j, v := range row {
			record[j] = formatFloat(v)
		}
		if extra != nil {
			record = append(record, extra(i)...)
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}
	w.Flush()
	return buff.String(), w.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
