package model

import "fmt"

// DataShapeError reports a required field that is absent or of the wrong
// primitive kind in an input document. It is raised synchronously by the
// loader and the timeline transformer; the affected section renders an
// explicit error state instead of fabricated placeholder values.
type DataShapeError struct {
	Field  string
	Reason string
}

func (e *DataShapeError) Error() string {
	return fmt.Sprintf("data shape: field %q %s", e.Field, e.Reason)
}

// NewDataShapeError creates a DataShapeError for the given dotted field path.
func NewDataShapeError(field, reason string) *DataShapeError {
	return &DataShapeError{Field: field, Reason: reason}
}
