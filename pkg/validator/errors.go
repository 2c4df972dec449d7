package validator

import "errors"

var (
	// ErrInvalidRule is returned when a rule has no check function or no message.
	ErrInvalidRule = errors.New("invalid validation rule")
)
