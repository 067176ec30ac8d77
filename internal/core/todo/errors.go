package todo

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when no todo has the requested id.
var ErrNotFound = errors.New("todo not found")

// ValidationError is returned when a required field is empty.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s cannot be empty", e.Field)
}

// PersistenceError is returned when a mutation was applied in memory but the
// collection could not be saved. The in-memory change is not rolled back.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: save todos: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsPersistence reports whether err is a *PersistenceError.
func IsPersistence(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}
