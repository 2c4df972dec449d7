package validator

import (
	"cmp"
	"fmt"
)

// GreaterOrEqual validates that a value is not below threshold. The bound is inclusive.
func GreaterOrEqual[V cmp.Ordered](threshold V, fieldName string) Rule[V] {
	return Rule[V]{
		Name:    "greater_or_equal",
		Message: fmt.Sprintf("%s should be greater or equal to %v", displayName(fieldName), threshold),
		Check: func(value V) bool {
			return value >= threshold
		},
	}
}

// LessOrEqual validates that a value is not above threshold. The bound is inclusive.
func LessOrEqual[V cmp.Ordered](threshold V, fieldName string) Rule[V] {
	return Rule[V]{
		Name:    "less_or_equal",
		Message: fmt.Sprintf("%s should be less or equal to %v", displayName(fieldName), threshold),
		Check: func(value V) bool {
			return value <= threshold
		},
	}
}

// Equal validates that a value equals target.
func Equal[V comparable](target V, fieldName string) Rule[V] {
	return EqualMessage(target, fmt.Sprintf("%s should be %v", displayName(fieldName), target))
}

// EqualMessage is Equal with a caller-provided message.
func EqualMessage[V comparable](target V, message string) Rule[V] {
	return Rule[V]{
		Name:    "equal",
		Message: message,
		Check: func(value V) bool {
			return value == target
		},
	}
}
