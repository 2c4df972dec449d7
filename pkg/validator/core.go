package validator

import (
	"errors"
	"fmt"
	"strings"
)

// Rule is a single named predicate over a value of type V together with the
// message reported when the predicate does not hold.
type Rule[V any] struct {
	Name    string
	Message string
	Check   func(V) bool
}

// New creates a custom rule from a message and a predicate.
func New[V any](message string, check func(V) bool) Rule[V] {
	return Rule[V]{
		Name:    "custom",
		Message: message,
		Check:   check,
	}
}

// Validate reports whether value satisfies the rule.
// A rule without a predicate never passes.
func (r Rule[V]) Validate(value V) bool {
	if r.Check == nil {
		return false
	}
	return r.Check(value)
}

// Err checks the rule definition itself: a usable rule has a predicate and a
// non-empty message.
func (r Rule[V]) Err() error {
	if r.Check == nil {
		return fmt.Errorf("%w: rule %q has no check", ErrInvalidRule, r.Name)
	}
	if r.Message == "" {
		return fmt.Errorf("%w: rule %q has an empty message", ErrInvalidRule, r.Name)
	}
	return nil
}

// Rules is an ordered list of rules for one value. Order decides which
// message wins when several rules fail.
type Rules[V any] []Rule[V]

// Evaluate returns the message of the first rule that value does not satisfy.
// Evaluation stops at that rule. failed is false when every rule passes.
func (rs Rules[V]) Evaluate(value V) (message string, failed bool) {
	for _, rule := range rs {
		if !rule.Validate(value) {
			return rule.Message, true
		}
	}
	return "", false
}

// Err returns the joined definition errors of all rules in the list.
func (rs Rules[V]) Err() error {
	var errs []error
	for i, rule := range rs {
		if err := rule.Err(); err != nil {
			errs = append(errs, fmt.Errorf("rule[%d]: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// ValidationError describes the failure of a single field.
type ValidationError struct {
	Field   string
	Message string
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns the message recorded for field, or an empty string.
func (ve ValidationErrors) Get(field string) string {
	for _, err := range ve {
		if err.Field == field {
			return err.Message
		}
	}
	return ""
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
