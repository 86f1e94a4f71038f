package models

import (
	"errors"
	"fmt"
)

// ErrMissingInput indicates a request without a tool name or a query.
var ErrMissingInput = errors.New("either 'query' or 'tool' must be provided")

// ErrNoDataAvailable indicates an upstream answered successfully but
// returned nothing to aggregate.
var ErrNoDataAvailable = errors.New("no trading data available")

// UnsupportedOperationError indicates a tool name absent from the registry.
type UnsupportedOperationError struct {
	Name string
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("unsupported tool: %s", e.Name)
}

// DataShapeError indicates an upstream response that parsed as JSON but
// did not match the expected structure. Never retried.
type DataShapeError struct {
	API    string
	Detail string
}

func (e *DataShapeError) Error() string {
	return fmt.Sprintf("%s: unexpected response shape: %s", e.API, e.Detail)
}

// NewDataShapeError creates a DataShapeError for the given API.
func NewDataShapeError(api, format string, a ...interface{}) *DataShapeError {
	return &DataShapeError{API: api, Detail: fmt.Sprintf(format, a...)}
}

// IsDataShapeError reports whether err wraps a DataShapeError.
func IsDataShapeError(err error) bool {
	var se *DataShapeError
	return errors.As(err, &se)
}
