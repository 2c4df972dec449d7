package form

import (
	"log/slog"

	"github.com/dmitrymomot/formkit/pkg/logger"
)

// Option configures a Reducer during construction.
type Option func(*options)

type options struct {
	submit  Event
	success Event
	logger  *slog.Logger
}

func defaultOptions() *options {
	return &options{
		submit:  SubmitEvent,
		success: ValidatedEvent,
		logger:  logger.Discard(),
	}
}

// WithSubmitEvent sets the event that validates the whole form.
func WithSubmitEvent(e Event) Option {
	return func(o *options) {
		o.submit = e
	}
}

// WithSuccessEvent sets the event produced when a submit finds every field valid.
func WithSuccessEvent(e Event) Option {
	return func(o *options) {
		o.success = e
	}
}

// WithLogger sets the logger used for debug output. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
