package service

import (
	"errors"
	"fmt"
)

// ErrNotFound reports a command that named a contact the book does not have.
var ErrNotFound = errors.New("no contact with this name was found")

// ArgumentError reports a command called with the wrong number of
// arguments. Usage holds the command's argument shape for display.
type ArgumentError struct {
	Usage string
}

// Error implements the error interface.
func (e *ArgumentError) Error() string {
	return fmt.Sprintf("usage: %s", e.Usage)
}
