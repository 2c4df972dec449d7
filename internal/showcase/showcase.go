package showcase

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

// Form is the surface shared by every showcase, used by the scenario runner.
type Form interface {
	Name() string
	// Fields lists the settable fields in display order.
	Fields() []string
	Set(ctx context.Context, field, raw string) error
	Submit(ctx context.Context) error
	// Wait blocks until background work started by the form has settled.
	Wait()
	// Errors returns the current error text of every validated field.
	Errors() map[string]string
	Alert() *Alert
}

// Alert is shown by a form once it has been validated.
type Alert struct {
	Title   string
	Message string
}

// FormValidatedAlert is the acknowledgment every showcase displays on success.
var FormValidatedAlert = Alert{
	Title:   "Success!",
	Message: "Your form has been validated",
}

// FormValidationSucceed is the success event shared by the showcases.
const FormValidationSucceed = form.StringEvent("form_validation_succeed")

// Options configures showcase construction.
type Options struct {
	Logger       *slog.Logger
	ImageLoader  ImageLoader
	ImageTimeout time.Duration
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return logger.Discard()
	}
	return o.Logger
}

var registry = map[string]func(Options) (Form, error){
	UserProfileName:     func(o Options) (Form, error) { return NewUserProfile(o) },
	RegistrationName:    func(o Options) (Form, error) { return NewRegistration(o) },
	ImageSubmissionName: func(o Options) (Form, error) { return NewImageSubmission(o) },
}

// Names returns the registered showcase names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// New creates the showcase registered under name.
func New(name string, opts Options) (Form, error) {
	factory, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownForm, name, strings.Join(Names(), ", "))
	}
	return factory(opts)
}

// storeForm implements Form on top of a form.Store.
type storeForm[S any] struct {
	name    string
	store   *form.Store[S]
	submit  form.Event
	order   []string
	setters map[string]func(ctx context.Context, raw string) error
	errors  func(S) map[string]string
	alert   func(S) *Alert
}

func (f *storeForm[S]) Name() string { return f.name }

func (f *storeForm[S]) Fields() []string { return slices.Clone(f.order) }

func (f *storeForm[S]) Set(ctx context.Context, field, raw string) error {
	set, ok := f.setters[field]
	if !ok {
		return fmt.Errorf("%w: %q on form %q", ErrUnknownField, field, f.name)
	}
	return set(ctx, raw)
}

func (f *storeForm[S]) Submit(ctx context.Context) error {
	_, err := f.store.Send(ctx, f.submit)
	return err
}

func (f *storeForm[S]) Wait() { f.store.Wait() }

func (f *storeForm[S]) Errors() map[string]string { return f.errors(f.store.State()) }

func (f *storeForm[S]) Alert() *Alert { return f.alert(f.store.State()) }

// State returns a copy of the underlying form state.
func (f *storeForm[S]) State() S { return f.store.State() }

func (f *storeForm[S]) addSetter(field string, set func(ctx context.Context, raw string) error) {
	if f.setters == nil {
		f.setters = make(map[string]func(ctx context.Context, raw string) error)
	}
	f.order = append(f.order, field)
	f.setters[field] = set
}

// setter parses raw input and commits it to the slot ref points at.
func setter[S, V any](store *form.Store[S], id form.FieldID, ref form.Ref[S, V], parse func(string) (V, error)) func(context.Context, string) error {
	return func(ctx context.Context, raw string) error {
		v, err := parse(raw)
		if err != nil {
			return fmt.Errorf("%w: field %q: %w", ErrInvalidInput, id, err)
		}
		_, err = form.Set(ctx, store, id, ref, v)
		return err
	}
}

func parseString(raw string) (string, error) { return raw, nil }

func parseInt(raw string) (int, error) { return strconv.Atoi(strings.TrimSpace(raw)) }

func parseBool(raw string) (bool, error) { return strconv.ParseBool(strings.TrimSpace(raw)) }

// parseOptional maps empty input to nil.
func parseOptional(raw string) (*string, error) {
	if raw == "" {
		return nil, nil
	}
	return &raw, nil
}

// alertOnSuccess is the feature handler shared by the showcases: it presents
// the success alert once the validation reducer reports a valid form.
func alertOnSuccess[S any](alert func(*S) **Alert) form.Handler[S] {
	return form.HandlerFunc[S](func(_ context.Context, s *S, e form.Event) []form.Event {
		if e.Name() == FormValidationSucceed.Name() {
			a := FormValidatedAlert
			*alert(s) = &a
		}
		return nil
	})
}
