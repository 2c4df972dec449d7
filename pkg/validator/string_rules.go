package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// NonEmpty validates that a string has at least one character.
// Whitespace counts as content; use NonBlank to reject it.
func NonEmpty(fieldName string) Rule[string] {
	return Rule[string]{
		Name:    "non_empty",
		Message: fmt.Sprintf("%s should not be empty", displayName(fieldName)),
		Check: func(value string) bool {
			return value != ""
		},
	}
}

// NonBlank validates that a string is not empty after trimming whitespace.
func NonBlank(fieldName string) Rule[string] {
	return Rule[string]{
		Name:    "non_blank",
		Message: fmt.Sprintf("%s should not be empty", displayName(fieldName)),
		Check: func(value string) bool {
			return strings.TrimSpace(value) != ""
		},
	}
}

// MinLen validates that a string has at least min characters.
// Length is counted in runes, not bytes.
func MinLen(min int, message string) Rule[string] {
	return Rule[string]{
		Name:    "min_length",
		Message: message,
		Check: func(value string) bool {
			return utf8.RuneCountInString(value) >= min
		},
	}
}

// MaxLen validates that a string has at most max characters.
func MaxLen(max int, message string) Rule[string] {
	return Rule[string]{
		Name:    "max_length",
		Message: message,
		Check: func(value string) bool {
			return utf8.RuneCountInString(value) <= max
		},
	}
}
