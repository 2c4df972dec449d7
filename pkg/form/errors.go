package form

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyFieldID    = errors.New("form: field id cannot be empty")
	ErrNilLocator      = errors.New("form: field locator cannot be nil")
	ErrDetachedLocator = errors.New("form: field locator does not address the state")
	ErrDuplicateField  = errors.New("form: field id is bound more than once")
	ErrNilEvent        = errors.New("form: event cannot be nil")
	ErrEventCollision  = errors.New("form: submit, success and change events must have distinct names")
	ErrCascadeLimit    = errors.New("form: event cascade limit exceeded")
)

// FieldConfigError reports a field validation that cannot be used.
type FieldConfigError struct {
	Field FieldID
	Err   error
}

func (e *FieldConfigError) Error() string {
	return fmt.Sprintf("form: field %q: %v", e.Field, e.Err)
}

func (e *FieldConfigError) Unwrap() error {
	return e.Err
}

func newFieldConfigError(id FieldID, err error) *FieldConfigError {
	return &FieldConfigError{Field: id, Err: err}
}

func IsFieldConfigError(err error) bool {
	var e *FieldConfigError
	return errors.As(err, &e)
}
