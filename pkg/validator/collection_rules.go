package validator

import "fmt"

// Collection rules count elements. Sets are expressed as map[T]struct{} and
// use the map variants.

func NonEmptySlice[E any](fieldName string) Rule[[]E] {
	return Rule[[]E]{
		Name:    "non_empty",
		Message: fmt.Sprintf("%s should not be empty", displayName(fieldName)),
		Check: func(value []E) bool {
			return len(value) > 0
		},
	}
}

func MinLenSlice[E any](min int, message string) Rule[[]E] {
	return Rule[[]E]{
		Name:    "min_length",
		Message: message,
		Check: func(value []E) bool {
			return len(value) >= min
		},
	}
}

func MaxLenSlice[E any](max int, message string) Rule[[]E] {
	return Rule[[]E]{
		Name:    "max_length",
		Message: message,
		Check: func(value []E) bool {
			return len(value) <= max
		},
	}
}

func NonEmptyMap[K comparable, E any](fieldName string) Rule[map[K]E] {
	return Rule[map[K]E]{
		Name:    "non_empty",
		Message: fmt.Sprintf("%s should not be empty", displayName(fieldName)),
		Check: func(value map[K]E) bool {
			return len(value) > 0
		},
	}
}

func MinLenMap[K comparable, E any](min int, message string) Rule[map[K]E] {
	return Rule[map[K]E]{
		Name:    "min_length",
		Message: message,
		Check: func(value map[K]E) bool {
			return len(value) >= min
		},
	}
}

func MaxLenMap[K comparable, E any](max int, message string) Rule[map[K]E] {
	return Rule[map[K]E]{
		Name:    "max_length",
		Message: message,
		Check: func(value map[K]E) bool {
			return len(value) <= max
		},
	}
}
