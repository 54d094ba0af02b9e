package models

import "fmt"

// ValidationError reports a field value rejected at construction.
// Reason is written for direct display to the user.
type ValidationError struct {
	Field  string // "name", "phone" or "birthday"
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
