package ingestion

import "fmt"

// InputReadError is returned when a record source cannot be read or is malformed.
type InputReadError struct {
	Source  string
	Message string
	Cause   error
}

func (e *InputReadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cannot read %s: %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("cannot read %s: %s", e.Source, e.Message)
}

func (e *InputReadError) Unwrap() error {
	return e.Cause
}
