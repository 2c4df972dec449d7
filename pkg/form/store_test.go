package form_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

type userForm struct {
	Username      string
	Age           int
	UsernameError string
	AgeError      string
	Confirmations int
}

func usernameRef(s *userForm) *string { return &s.Username }
func ageRef(s *userForm) *int         { return &s.Age }

func newUserStore(t *testing.T) *form.Store[userForm] {
	t.Helper()

	reducer, err := form.New([]form.Field[userForm]{
		form.Bind("username", usernameRef,
			func(s *userForm) *string { return &s.UsernameError },
			validator.NonEmpty("username"),
		),
		form.Bind("age", ageRef,
			func(s *userForm) *string { return &s.AgeError },
			validator.GreaterOrEqual(18, "Age"),
		),
	})
	require.NoError(t, err)

	host := form.HandlerFunc[userForm](func(_ context.Context, s *userForm, e form.Event) []form.Event {
		if e.Name() == form.ValidatedEvent.Name() {
			s.Confirmations++
		}
		return nil
	})

	return form.NewStore(userForm{}, []form.Handler[userForm]{reducer, host}, form.WithStoreID("test-form"))
}

func TestStore_EndToEnd(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newUserStore(t)
	assert.Equal(t, "test-form", store.ID())

	_, err := form.Set(ctx, store, "username", usernameRef, "")
	require.NoError(t, err)
	_, err = form.Set(ctx, store, "age", ageRef, 17)
	require.NoError(t, err)

	events, err := store.Send(ctx, form.SubmitEvent)
	require.NoError(t, err)
	assert.Zero(t, countEvents(events, form.ValidatedEvent.Name()))

	state := store.State()
	assert.Equal(t, "Username should not be empty", state.UsernameError)
	assert.Equal(t, "Age should be greater or equal to 18", state.AgeError)
	assert.Zero(t, state.Confirmations)

	_, err = form.Set(ctx, store, "username", usernameRef, "Ann")
	require.NoError(t, err)
	_, err = form.Set(ctx, store, "age", ageRef, 18)
	require.NoError(t, err)

	state = store.State()
	assert.Empty(t, state.UsernameError, "change events revalidate")
	assert.Empty(t, state.AgeError)

	events, err = store.Send(ctx, form.SubmitEvent)
	require.NoError(t, err)
	assert.Equal(t, 1, countEvents(events, form.ValidatedEvent.Name()))
	assert.Equal(t, 1, store.State().Confirmations)
}

func TestStore_SetValidatesCommittedValue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newUserStore(t)

	_, err := form.Set(ctx, store, "age", ageRef, 12)
	require.NoError(t, err)
	state := store.State()
	assert.Equal(t, 12, state.Age)
	assert.Equal(t, "Age should be greater or equal to 18", state.AgeError)
	assert.Empty(t, state.UsernameError, "only the changed field is validated")

	_, err = form.Set[userForm, int](ctx, store, "age", nil, 1)
	assert.ErrorIs(t, err, form.ErrNilLocator)
}

func TestStore_Send(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("nil event", func(t *testing.T) {
		_, err := newUserStore(t).Send(ctx, nil)
		assert.ErrorIs(t, err, form.ErrNilEvent)
	})

	t.Run("produced events are dispatched in order", func(t *testing.T) {
		var seen []string
		h := form.HandlerFunc[int](func(_ context.Context, s *int, e form.Event) []form.Event {
			seen = append(seen, e.Name())
			*s++
			switch e.Name() {
			case "a":
				return []form.Event{form.StringEvent("b"), nil, form.StringEvent("c")}
			case "b":
				return []form.Event{form.StringEvent("d")}
			}
			return nil
		})
		store := form.NewStore(0, []form.Handler[int]{h})

		events, err := store.Send(ctx, form.StringEvent("a"))
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c", "d"}, seen)
		assert.Len(t, events, 3)
		assert.Equal(t, 4, store.State())
	})

	t.Run("cascade limit", func(t *testing.T) {
		ping := form.HandlerFunc[int](func(_ context.Context, _ *int, e form.Event) []form.Event {
			return []form.Event{e}
		})
		store := form.NewStore(0, []form.Handler[int]{ping})

		_, err := store.Send(ctx, form.StringEvent("ping"))
		assert.ErrorIs(t, err, form.ErrCascadeLimit)
	})
}

func TestStore_Task(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	type state struct {
		Loading bool
		Result  string
	}
	loaded := form.StringEvent("loaded")

	h := form.HandlerFunc[state](func(_ context.Context, s *state, e form.Event) []form.Event {
		switch e.Name() {
		case "load":
			s.Loading = true
			return []form.Event{form.Task{ID: "load", Run: func(context.Context) form.Event {
				return loaded
			}}}
		case loaded.Name():
			s.Loading = false
			s.Result = "done"
		}
		return nil
	})
	store := form.NewStore(state{}, []form.Handler[state]{h})

	events, err := store.Send(ctx, form.StringEvent("load"))
	require.NoError(t, err)
	require.Len(t, events, 1)
	_, isTask := events[0].(form.Task)
	assert.True(t, isTask)

	store.Wait()
	assert.Equal(t, state{Loading: false, Result: "done"}, store.State())
}

func TestStore_TaskWithoutResult(t *testing.T) {
	t.Parallel()

	calls := make(chan struct{}, 1)
	h := form.HandlerFunc[int](func(_ context.Context, s *int, e form.Event) []form.Event {
		*s++
		if e.Name() == "start" {
			return []form.Event{
				form.Task{ID: "noop", Run: func(context.Context) form.Event {
					calls <- struct{}{}
					return nil
				}},
				form.Task{ID: "empty"},
			}
		}
		return nil
	})
	store := form.NewStore(0, []form.Handler[int]{h})

	_, err := store.Send(context.Background(), form.StringEvent("start"))
	require.NoError(t, err)
	store.Wait()

	assert.Len(t, calls, 1)
	assert.Equal(t, 1, store.State(), "tasks are not dispatched to handlers")
}

func TestFieldConfigError(t *testing.T) {
	err := &form.FieldConfigError{Field: "age", Err: form.ErrNilLocator}
	assert.Equal(t, `form: field "age": form: field locator cannot be nil`, err.Error())
	assert.True(t, errors.Is(err, form.ErrNilLocator))
}
