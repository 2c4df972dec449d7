package validator

import (
	"fmt"
	"slices"
	"strings"
)

// OneOf validates that a value is one of allowed.
func OneOf[V comparable](allowed []V, fieldName string) Rule[V] {
	options := make([]string, len(allowed))
	for i, v := range allowed {
		options[i] = fmt.Sprint(v)
	}

	return Rule[V]{
		Name:    "one_of",
		Message: fmt.Sprintf("%s should be one of: %s", displayName(fieldName), strings.Join(options, ", ")),
		Check: func(value V) bool {
			return slices.Contains(allowed, value)
		},
	}
}

// NoneOf validates that a value is not one of forbidden.
func NoneOf[V comparable](forbidden []V, message string) Rule[V] {
	return Rule[V]{
		Name:    "none_of",
		Message: message,
		Check: func(value V) bool {
			return !slices.Contains(forbidden, value)
		},
	}
}
