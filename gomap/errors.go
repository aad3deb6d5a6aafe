package gomap

import "fmt"

// MarshalError represents an error during conversion to an ir tree.
type MarshalError struct {
	FieldPath string // Field path (e.g., "spec.containers[0].name")
	Message   string
	Err       error
}

func (e *MarshalError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("marshal error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("marshal error: %s", e.Message)
}

func (e *MarshalError) Unwrap() error {
	return e.Err
}
