package form

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Handler reacts to an event by mutating state and returning the events it
// produces.
type Handler[S any] interface {
	Reduce(ctx context.Context, state *S, event Event) []Event
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc[S any] func(ctx context.Context, state *S, event Event) []Event

func (f HandlerFunc[S]) Reduce(ctx context.Context, state *S, event Event) []Event {
	return f(ctx, state, event)
}

// Reducer validates fields of S in response to events.
//
// A Changed event re-validates the one field bound to the changed id. The
// submit event validates every field in registration order, without stopping
// at the first failure, and produces the success event when all of them pass.
// Any other event is ignored.
type Reducer[S any] struct {
	fields  []Field[S]
	index   map[FieldID]int
	submit  Event
	success Event
	logger  *slog.Logger
}

// New creates a Reducer for the given field validations.
func New[S any](fields []Field[S], opts ...Option) (*Reducer[S], error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.submit == nil || cfg.success == nil {
		return nil, ErrNilEvent
	}
	if cfg.submit.Name() == cfg.success.Name() ||
		cfg.submit.Name() == changedEventName ||
		cfg.success.Name() == changedEventName {
		return nil, fmt.Errorf("%w: submit %q, success %q", ErrEventCollision, cfg.submit.Name(), cfg.success.Name())
	}

	r := &Reducer[S]{
		fields:  make([]Field[S], 0, len(fields)),
		index:   make(map[FieldID]int, len(fields)),
		submit:  cfg.submit,
		success: cfg.success,
		logger:  cfg.logger.With(logger.Component("form")),
	}

	var errs []error
	for i, f := range fields {
		if f.err != nil {
			errs = append(errs, fmt.Errorf("field[%d]: %w", i, f.err))
			continue
		}
		if f.validate == nil {
			errs = append(errs, fmt.Errorf("field[%d]: %w", i, newFieldConfigError(f.id, ErrNilLocator)))
			continue
		}
		for _, trigger := range f.triggers {
			if prev, ok := r.index[trigger]; ok {
				errs = append(errs, fmt.Errorf("field[%d]: %w",
					i, newFieldConfigError(f.id, fmt.Errorf("%w: %q also bound by %q", ErrDuplicateField, trigger, r.fields[prev].id))))
				continue
			}
			r.index[trigger] = len(r.fields)
		}
		r.fields = append(r.fields, f)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return r, nil
}

// MustNew is like New but panics on configuration errors, so a broken form
// definition fails at startup.
func MustNew[S any](fields []Field[S], opts ...Option) *Reducer[S] {
	r, err := New(fields, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create form reducer: %v", err))
	}
	return r
}

// Reduce handles one event. It returns the success event after a fully valid
// submit and nil otherwise.
func (r *Reducer[S]) Reduce(ctx context.Context, state *S, event Event) []Event {
	if event == nil || state == nil {
		return nil
	}

	switch e := event.(type) {
	case Changed:
		r.validateChanged(ctx, state, e.Field)
		return nil
	case *Changed:
		if e != nil {
			r.validateChanged(ctx, state, e.Field)
		}
		return nil
	}

	if event.Name() != r.submit.Name() {
		return nil
	}

	if !r.ValidateAll(ctx, state) {
		r.logger.DebugContext(ctx, "form submit rejected", logger.Event(event.Name()))
		return nil
	}
	r.logger.DebugContext(ctx, "form validated", logger.Event(r.success.Name()))
	return []Event{r.success}
}

// ValidateAll validates every field in registration order and reports whether
// all of them passed. Every field's error slot is refreshed, including those
// after a failing one.
func (r *Reducer[S]) ValidateAll(ctx context.Context, state *S) bool {
	valid := true
	for _, f := range r.fields {
		if !f.Validate(state) {
			valid = false
			r.logger.DebugContext(ctx, "field invalid",
				logger.Field(string(f.id)),
				slog.String("message", f.ErrorText(state)),
			)
		}
	}
	return valid
}

// Check validates a copy of state and returns the failures as
// validator.ValidationErrors. The caller's state is not modified.
func (r *Reducer[S]) Check(state S) error {
	var errs validator.ValidationErrors
	for _, f := range r.fields {
		if !f.Validate(&state) {
			errs.Add(validator.ValidationError{
				Field:   string(f.id),
				Message: f.ErrorText(&state),
			})
		}
	}
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// Fields returns the ids of the bound fields in registration order.
func (r *Reducer[S]) Fields() []FieldID {
	ids := make([]FieldID, len(r.fields))
	for i, f := range r.fields {
		ids[i] = f.id
	}
	return ids
}

func (r *Reducer[S]) validateChanged(ctx context.Context, state *S, id FieldID) {
	i, ok := r.index[id]
	if !ok {
		return
	}
	f := r.fields[i]
	valid := f.Validate(state)
	r.logger.DebugContext(ctx, "field validated",
		logger.Field(string(f.id)),
		slog.Bool("valid", valid),
	)
}
