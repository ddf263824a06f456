package table

import "fmt"

// MalformedInputError is returned when the source has no header, cannot be
// read, or a row does not have as many cells as the header.
type MalformedInputError struct {
	// Line is the 1-based record number (the header is 1), or 0 when the error is not about a record.
	Line   int
	Reason string
	Err    error
}

func (e *MalformedInputError) Error() string {
	msg := "malformed input"
	if e.Line > 0 {
		msg = fmt.Sprintf("%s on line %d", msg, e.Line)
	}
	if len(e.Reason) > 0 {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}

// UnknownColumnError is returned when a target column is not in the header.
type UnknownColumnError struct {
	Column string
	Header []string
}

func (e *UnknownColumnError) Error() string {
	return fmt.Sprintf("unknown column %q; header is %v", e.Column, e.Header)
}
