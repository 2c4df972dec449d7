package form

import (
	"reflect"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// FieldID names a field of the form state. It is the identity used to match
// Changed events against field validations.
type FieldID string

const (
	valueKey     = "value"
	errorTextKey = "errorText"
)

// Value returns the id of the value part of a ValidatableField.
func (id FieldID) Value() FieldID {
	return id + "." + valueKey
}

// ErrorText returns the id of the error part of a ValidatableField.
func (id FieldID) ErrorText() FieldID {
	return id + "." + errorTextKey
}

// Ref locates a storage slot inside the state S, e.g.
//
//	func(s *Profile) *string { return &s.Username }
type Ref[S, V any] func(*S) *V

// Field binds one field of S to its ordered rules and to the place its error
// text is written. It holds no state of its own; every call works on the
// state passed in.
type Field[S any] struct {
	id       FieldID
	triggers []FieldID
	rules    int
	validate func(*S) bool
	errorOf  func(*S) string
	err      error
}

// Bind creates a validation for a plain value with a separate error slot.
func Bind[S, V any](id FieldID, field Ref[S, V], errorState Ref[S, string], rules ...validator.Rule[V]) Field[S] {
	if field == nil {
		return broken[S](id, ErrNilLocator)
	}
	if err := probe(field); err != nil {
		return broken[S](id, err)
	}
	return build(id, []FieldID{id}, func(s *S) V { return *field(s) }, errorState, rules)
}

// BindFunc creates a validation whose value is computed from the state rather
// than read from a single slot. Change events for id trigger it.
func BindFunc[S, V any](id FieldID, value func(*S) V, errorState Ref[S, string], rules ...validator.Rule[V]) Field[S] {
	if value == nil {
		return broken[S](id, ErrNilLocator)
	}
	return build(id, []FieldID{id}, value, errorState, rules)
}

// BindField creates a validation for a ValidatableField. Value and error text
// are both read from the same slot. Changes reported for id or id.Value()
// trigger validation; changes reported for id.ErrorText() do not.
func BindField[S, V any](id FieldID, field Ref[S, ValidatableField[V]], rules ...validator.Rule[V]) Field[S] {
	if field == nil {
		return broken[S](id, ErrNilLocator)
	}
	if err := probe(field); err != nil {
		return broken[S](id, err)
	}
	value := func(s *S) V { return field(s).Value }
	errorText := func(s *S) *string { return &field(s).ErrorText }
	return build(id, []FieldID{id, id.Value()}, value, errorText, rules)
}

func build[S, V any](id FieldID, triggers []FieldID, value func(*S) V, errorState Ref[S, string], rules []validator.Rule[V]) Field[S] {
	if id == "" {
		return broken[S](id, ErrEmptyFieldID)
	}
	if errorState == nil {
		return broken[S](id, ErrNilLocator)
	}
	if err := probe(errorState); err != nil {
		return broken[S](id, err)
	}
	list := validator.Rules[V](append([]validator.Rule[V](nil), rules...))
	if err := list.Err(); err != nil {
		return broken[S](id, err)
	}

	return Field[S]{
		id:       id,
		triggers: triggers,
		rules:    len(list),
		validate: func(s *S) bool {
			msg, failed := list.Evaluate(value(s))
			*errorState(s) = msg
			return !failed
		},
		errorOf: func(s *S) string {
			return *errorState(s)
		},
	}
}

func broken[S any](id FieldID, err error) Field[S] {
	return Field[S]{id: id, err: newFieldConfigError(id, err)}
}

// probe resolves ref against two distinct zero states. A locator that yields
// nil, or the same address for both, does not point into the state and would
// never observe a change.
func probe[S, V any](ref Ref[S, V]) (err error) {
	defer func() {
		// Locators through nil nested pointers cannot be checked on a zero state.
		if recover() != nil {
			err = nil
		}
	}()

	var a, b S
	pa, pb := ref(&a), ref(&b)
	if pa == nil || pb == nil {
		return ErrNilLocator
	}
	if pa == pb && reflect.TypeOf((*V)(nil)).Elem().Size() > 0 {
		return ErrDetachedLocator
	}
	return nil
}

// ID returns the field identity.
func (f Field[S]) ID() FieldID {
	return f.id
}

// Err returns the configuration error recorded when the field was built.
func (f Field[S]) Err() error {
	return f.err
}

// Validate runs the field's rules against the current value, overwrites the
// error slot with the first failing message (or clears it) and reports
// whether every rule passed. A misconfigured field reports false and leaves
// the state untouched.
func (f Field[S]) Validate(state *S) bool {
	if f.validate == nil || state == nil {
		return false
	}
	return f.validate(state)
}

// ErrorText returns the error text currently stored for the field.
func (f Field[S]) ErrorText(state *S) string {
	if f.errorOf == nil || state == nil {
		return ""
	}
	return f.errorOf(state)
}

func (f Field[S]) matches(id FieldID) bool {
	for _, t := range f.triggers {
		if t == id {
			return true
		}
	}
	return false
}
