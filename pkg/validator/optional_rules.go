package validator

// Present validates that an optional value is set. Optional values are
// pointers; a pointer to a zero value such as 0, false or "" is present.
func Present[V any](message string) Rule[*V] {
	return Rule[*V]{
		Name:    "present",
		Message: message,
		Check: func(value *V) bool {
			return value != nil
		},
	}
}
