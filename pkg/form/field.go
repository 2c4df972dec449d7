package form

// ValidatableField bundles a form field value with the error text produced by
// its last validation run.
//
// ErrorText is empty when the last run passed. Between a change of Value and
// the next validation run it may describe the previous value.
type ValidatableField[V any] struct {
	Value     V
	ErrorText string
}

// NewValidatableField creates a field holding value and no error.
func NewValidatableField[V any](value V) ValidatableField[V] {
	return ValidatableField[V]{Value: value}
}

// HasError reports whether the last validation run failed.
func (f ValidatableField[V]) HasError() bool {
	return f.ErrorText != ""
}
