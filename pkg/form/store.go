package form

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/formkit/pkg/logger"
)

// maxCascade bounds how many events a single Send may process, so handlers
// that keep answering each other cannot loop forever.
const maxCascade = 64

// Store owns a form state and runs every event through its handlers one at a
// time. Handlers run in the order given, so a typical store lists the
// validation Reducer before the feature handler that reacts to its success
// event.
type Store[S any] struct {
	mu       sync.Mutex
	id       string
	state    S
	handlers []Handler[S]
	logger   *slog.Logger
	tasks    sync.WaitGroup
	taskCtx  context.Context
}

// StoreOption configures a Store.
type StoreOption func(*storeConfig)

type storeConfig struct {
	id      string
	logger  *slog.Logger
	taskCtx context.Context
}

// WithStoreID sets the id attached to the store's log records.
// A random UUID is used by default.
func WithStoreID(id string) StoreOption {
	return func(c *storeConfig) {
		if id != "" {
			c.id = id
		}
	}
}

// WithStoreLogger sets the store logger. Nil loggers are ignored.
func WithStoreLogger(l *slog.Logger) StoreOption {
	return func(c *storeConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithTaskContext sets the parent context of tasks started by the store.
func WithTaskContext(ctx context.Context) StoreOption {
	return func(c *storeConfig) {
		if ctx != nil {
			c.taskCtx = ctx
		}
	}
}

// NewStore creates a store holding initial and dispatching to handlers.
func NewStore[S any](initial S, handlers []Handler[S], opts ...StoreOption) *Store[S] {
	cfg := &storeConfig{
		id:      uuid.NewString(),
		logger:  logger.Discard(),
		taskCtx: context.Background(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return &Store[S]{
		id:       cfg.id,
		state:    initial,
		handlers: handlers,
		logger:   cfg.logger.With(logger.Component("form_store"), logger.Form(cfg.id)),
		taskCtx:  cfg.taskCtx,
	}
}

// ID returns the store id.
func (s *Store[S]) ID() string {
	return s.id
}

// State returns a copy of the current state.
func (s *Store[S]) State() S {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Send dispatches event and every event produced while handling it, in FIFO
// order. It returns all produced events.
func (s *Store[S]) Send(ctx context.Context, event Event) ([]Event, error) {
	if event == nil {
		return nil, ErrNilEvent
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dispatch(ctx, event)
}

// Set commits value to the slot ref points at and then dispatches
// Changed{id, value}, both under the store lock, so validation always
// observes the committed value.
func Set[S, V any](ctx context.Context, s *Store[S], id FieldID, ref Ref[S, V], value V) ([]Event, error) {
	if ref == nil {
		return nil, ErrNilLocator
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	*ref(&s.state) = value
	return s.dispatch(ctx, Changed{Field: id, Value: value})
}

// Wait blocks until every task started by the store has finished and its
// result has been dispatched.
func (s *Store[S]) Wait() {
	s.tasks.Wait()
}

// dispatch must be called with s.mu held.
func (s *Store[S]) dispatch(ctx context.Context, event Event) ([]Event, error) {
	var produced []Event
	queue := []Event{event}

	for steps := 0; len(queue) > 0; steps++ {
		if steps >= maxCascade {
			return produced, fmt.Errorf("%w: stopped at %q", ErrCascadeLimit, queue[0].Name())
		}

		current := queue[0]
		queue = queue[1:]

		if task, ok := current.(Task); ok {
			s.start(task)
			continue
		}

		s.logger.DebugContext(ctx, "dispatch", logger.Event(current.Name()))
		for _, h := range s.handlers {
			out := h.Reduce(ctx, &s.state, current)
			for _, e := range out {
				if e == nil {
					continue
				}
				produced = append(produced, e)
				queue = append(queue, e)
			}
		}
	}

	return produced, nil
}

func (s *Store[S]) start(task Task) {
	if task.Run == nil {
		return
	}

	s.tasks.Add(1)
	go func() {
		defer s.tasks.Done()

		result := task.Run(s.taskCtx)
		if result == nil {
			return
		}
		if _, err := s.Send(s.taskCtx, result); err != nil {
			s.logger.Error("task result dispatch failed",
				logger.Event(task.Name()),
				logger.Error(err),
			)
		}
	}()
}
