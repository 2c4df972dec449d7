package form

import "context"

// Event is anything dispatched to, or produced by, a form.
type Event interface {
	Name() string
}

// StringEvent provides a simple string-based event implementation.
type StringEvent string

func (e StringEvent) Name() string {
	return string(e)
}

const (
	// SubmitEvent is the default event that validates the whole form.
	SubmitEvent = StringEvent("submit")
	// ValidatedEvent is the default event produced when every field passes on submit.
	ValidatedEvent = StringEvent("validated")
)

const changedEventName = "changed"

// Changed reports that the host has committed a new value to a field.
// The value is already stored in the state when the event is dispatched.
type Changed struct {
	Field FieldID
	Value any
}

func (Changed) Name() string {
	return changedEventName
}

// Task is host-side asynchronous work. A Store runs it outside its lock and
// dispatches the returned event, if any, once Run returns.
type Task struct {
	ID  string
	Run func(ctx context.Context) Event
}

func (t Task) Name() string {
	return "task:" + t.ID
}
