package output

import (
	"encoding/csv"
	"io"

	"github.com/pkg/errors"
)

// WritePredictions writes one row per test record: the record's id and the
// predicted target, under the header idName,targetName.
func WritePredictions(w io.Writer, idName, targetName string, ids []string, predictions []float64) error {
	if len(ids) != len(predictions) {
		return errors.Errorf("output: %d ids but %d predictions", len(ids), len(predictions))
	}
	c := csv.NewWriter(w)
	if err := c.Write([]string{idName, targetName}); err != nil {
		return err
	}
	for i, id := range ids {
		if err := c.Write([]string{id, formatFloat(predictions[i])}); err != nil {
			return err
		}
	}
	c.Flush()
	return c.Error()
}
