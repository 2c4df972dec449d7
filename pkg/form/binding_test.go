package form_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

type plainState struct {
	Value      string
	ValueError string
}

func alwaysTrue() validator.Rule[string] {
	return validator.New("unused", func(string) bool { return true })
}

func alwaysFalse(id string) validator.Rule[string] {
	return validator.New("Test validation "+id, func(string) bool { return false })
}

func valueRef(s *plainState) *string      { return &s.Value }
func valueErrorRef(s *plainState) *string { return &s.ValueError }

func TestBind_Validate(t *testing.T) {
	t.Parallel()

	t.Run("success clears a previous error", func(t *testing.T) {
		state := plainState{ValueError: "Initial error"}
		field := form.Bind("value", valueRef, valueErrorRef, alwaysTrue(), alwaysTrue())
		require.NoError(t, field.Err())

		assert.True(t, field.Validate(&state))
		assert.Empty(t, state.ValueError)
	})

	t.Run("failure stores the first failing message", func(t *testing.T) {
		state := plainState{ValueError: "Initial error"}
		field := form.Bind("value", valueRef, valueErrorRef, alwaysTrue(), alwaysFalse("1"), alwaysFalse("2"))

		assert.False(t, field.Validate(&state))
		assert.Equal(t, "Test validation 1", state.ValueError)
		assert.Equal(t, "Test validation 1", field.ErrorText(&state))
	})

	t.Run("idempotent without value change", func(t *testing.T) {
		state := plainState{}
		field := form.Bind("value", valueRef, valueErrorRef, validator.NonEmpty("value"))

		first := field.Validate(&state)
		firstErr := state.ValueError
		second := field.Validate(&state)

		assert.Equal(t, first, second)
		assert.Equal(t, firstErr, state.ValueError)
		assert.Equal(t, "Value should not be empty", state.ValueError)
	})

	t.Run("revalidation with a passing value clears the error", func(t *testing.T) {
		state := plainState{}
		field := form.Bind("value", valueRef, valueErrorRef, validator.NonEmpty("value"))

		require.False(t, field.Validate(&state))
		state.Value = "filled"
		assert.True(t, field.Validate(&state))
		assert.Empty(t, state.ValueError)
	})

	t.Run("no rules always passes", func(t *testing.T) {
		state := plainState{ValueError: "stale"}
		field := form.Bind[plainState, string]("value", valueRef, valueErrorRef)
		assert.True(t, field.Validate(&state))
		assert.Empty(t, state.ValueError)
	})

	t.Run("nil state", func(t *testing.T) {
		field := form.Bind("value", valueRef, valueErrorRef, alwaysTrue())
		assert.False(t, field.Validate(nil))
		assert.Empty(t, field.ErrorText(nil))
	})
}

func TestBindField_Validate(t *testing.T) {
	t.Parallel()

	type state struct {
		Age form.ValidatableField[int]
	}
	ageRef := func(s *state) *form.ValidatableField[int] { return &s.Age }

	field := form.BindField("age", ageRef, validator.GreaterOrEqual(18, "age"))
	require.NoError(t, field.Err())
	assert.Equal(t, form.FieldID("age"), field.ID())

	s := state{Age: form.NewValidatableField(17)}
	assert.False(t, field.Validate(&s))
	assert.Equal(t, "Age should be greater or equal to 18", s.Age.ErrorText)
	assert.True(t, s.Age.HasError())
	assert.Equal(t, 17, s.Age.Value)

	s.Age.Value = 18
	assert.True(t, field.Validate(&s))
	assert.False(t, s.Age.HasError())
}

func TestBindFunc_Validate(t *testing.T) {
	t.Parallel()

	type state struct {
		First, Last string
		NameError   string
	}
	fullName := func(s *state) string { return s.First + s.Last }
	nameErr := func(s *state) *string { return &s.NameError }

	field := form.BindFunc("name", fullName, nameErr, validator.MinLen(3, "Name is too short"))
	s := state{First: "A", Last: "B"}
	assert.False(t, field.Validate(&s))
	assert.Equal(t, "Name is too short", s.NameError)

	s.Last = "nn"
	assert.True(t, field.Validate(&s))
	assert.Empty(t, s.NameError)
}

func TestBind_ConfigErrors(t *testing.T) {
	t.Parallel()

	var shared string
	detached := func(*plainState) *string { return &shared }
	nilRef := func(*plainState) *string { return nil }

	tests := []struct {
		name  string
		field form.Field[plainState]
		err   error
	}{
		{"empty id", form.Bind("", valueRef, valueErrorRef, alwaysTrue()), form.ErrEmptyFieldID},
		{"nil field locator", form.Bind[plainState, string]("value", nil, valueErrorRef), form.ErrNilLocator},
		{"nil error locator", form.Bind("value", valueRef, nil, alwaysTrue()), form.ErrNilLocator},
		{"locator returning nil", form.Bind("value", nilRef, valueErrorRef, alwaysTrue()), form.ErrNilLocator},
		{"detached field locator", form.Bind("value", detached, valueErrorRef, alwaysTrue()), form.ErrDetachedLocator},
		{"detached error locator", form.Bind("value", valueRef, detached, alwaysTrue()), form.ErrDetachedLocator},
		{"nil func", form.BindFunc[plainState, string]("value", nil, valueErrorRef), form.ErrNilLocator},
		{"rule without message", form.Bind("value", valueRef, valueErrorRef, validator.New("", func(string) bool { return true })), validator.ErrInvalidRule},
		{"rule without check", form.Bind("value", valueRef, valueErrorRef, validator.Rule[string]{Message: "x"}), validator.ErrInvalidRule},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.field.Err()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.err)
			assert.True(t, form.IsFieldConfigError(err))

			state := plainState{ValueError: "untouched"}
			assert.False(t, tt.field.Validate(&state))
			assert.Equal(t, "untouched", state.ValueError)
		})
	}
}

func TestFieldID(t *testing.T) {
	id := form.FieldID("username")
	assert.Equal(t, form.FieldID("username.value"), id.Value())
	assert.Equal(t, form.FieldID("username.errorText"), id.ErrorText())
}
