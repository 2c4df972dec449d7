package showcase

import "errors"

var (
	ErrUnknownForm  = errors.New("showcase: unknown form")
	ErrUnknownField = errors.New("showcase: unknown field")
	ErrInvalidInput = errors.New("showcase: invalid input")
	ErrImageLoad    = errors.New("showcase: image could not be loaded")
)
