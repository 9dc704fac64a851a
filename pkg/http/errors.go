package http

import "fmt"

// MarshalError reports a request that cannot be serialized.
type MarshalError struct {
	Message string // human-readable error message
	Field   string // offending Request field ("" if not field-specific)
}

// Error implements the error interface.
func (e *MarshalError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("http: invalid request %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("http: %s", e.Message)
}

func newMarshalError(field, msg string) *MarshalError {
	return &MarshalError{Message: msg, Field: field}
}
