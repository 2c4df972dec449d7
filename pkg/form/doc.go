// Package form binds validation rules to the fields of a form state and runs
// them in response to field-change and submit events.
//
// The package never owns the state. A host keeps the state, commits value
// changes to it and then reports them with a Changed event; the Reducer
// re-validates the changed field and writes the first failing rule's message,
// or clears it, into the field's error slot. On the submit event every field
// is validated, none is skipped after an earlier failure, and the success
// event is produced only when all of them pass.
//
// # Binding fields
//
// Fields are addressed with typed accessor closures instead of reflection:
//
//	type Signup struct {
//	    Username      string
//	    UsernameError string
//	    Age           form.ValidatableField[int]
//	}
//
//	fields := []form.Field[Signup]{
//	    form.Bind("username",
//	        func(s *Signup) *string { return &s.Username },
//	        func(s *Signup) *string { return &s.UsernameError },
//	        validator.NonEmpty("username"),
//	    ),
//	    form.BindField("age",
//	        func(s *Signup) *form.ValidatableField[int] { return &s.Age },
//	        validator.GreaterOrEqual(18, "age"),
//	    ),
//	}
//
// Bind pairs a plain value with a separate error slot. BindField works on a
// ValidatableField, which carries its own error text. BindFunc validates a
// value computed from the state.
//
// # Reducer
//
//	reducer, err := form.New(fields,
//	    form.WithSubmitEvent(form.StringEvent("register")),
//	    form.WithSuccessEvent(form.StringEvent("registered")),
//	)
//
//	state.Username = "ann"
//	reducer.Reduce(ctx, &state, form.Changed{Field: "username"})
//	events := reducer.Reduce(ctx, &state, form.StringEvent("register"))
//
// New rejects broken definitions up front: empty ids, nil or detached
// locators, rules without a check or message, ids bound twice and colliding
// event names. MustNew panics instead.
//
// # Store
//
// Store is a small host: it owns the state, runs handlers one event at a time
// under a mutex and feeds produced events back in FIFO order. Set commits a
// value and dispatches the matching Changed event in one step. Task events
// carry host-side asynchronous work; the store runs them in the background and
// dispatches their result when they finish.
//
// Rules themselves stay synchronous and pure; see package validator.
package form
