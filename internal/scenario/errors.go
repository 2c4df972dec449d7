package scenario

import "errors"

var (
	ErrInvalidScenario = errors.New("scenario: invalid document")
	ErrInvalidStep     = errors.New("scenario: invalid step")
	ErrExpectation     = errors.New("scenario: expectation not met")
)
