package schema

import (
	"errors"
	"fmt"
)

// ErrEmptyDataset is matched by every EmptyDatasetError.
var ErrEmptyDataset = errors.New("schema: no training rows to infer column kinds from")

// EmptyDatasetError is returned when there is no first row to classify columns with.
type EmptyDatasetError struct {
	Columns int
}

func (e *EmptyDatasetError) Error() string {
	return fmt.Sprintf("%s (%d feature columns)", ErrEmptyDataset.Error(), e.Columns)
}

func (e *EmptyDatasetError) Is(target error) bool {
	return target == ErrEmptyDataset
}

// InternalConsistencyFault means the emitted schema does not line up with the
// matrix it describes. It indicates a bug rather than bad input.
type InternalConsistencyFault struct {
	// What is being counted, "columns" or "rows".
	What string
	Want int
	Got  int
}

func (e *InternalConsistencyFault) Error() string {
	return fmt.Sprintf("schema: expected %d %s, assembled %d", e.Want, e.What, e.Got)
}
