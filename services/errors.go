package services

import (
	"errors"
	"fmt"
)

// ErrNotFound covers both missing rows and rows owned by another user,
// so callers cannot probe for other users' data.
var ErrNotFound = errors.New("not found")

var ErrInvalidCredentials = errors.New("invalid username or password")

// ValidationError carries a field-level message back to the caller.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
