package todo

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/colonyops/todo/internal/core/logging"
)

// Store owns the in-memory todo collection and persists it through a Codec
// after every mutation. Reads never touch the codec.
//
// Store is not safe for concurrent use.
type Store struct {
	todos         []Todo
	codec         Codec
	log           zerolog.Logger
	now           func() time.Time
	newID         func() string
	defaultStatus string
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the time source used for created_at and updated_at.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator sets the id generator used by Create.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

// WithDefaultStatus sets the status given to todos created without one.
func WithDefaultStatus(status string) Option {
	return func(s *Store) {
		if status = strings.TrimSpace(status); status != "" {
			s.defaultStatus = status
		}
	}
}

// Open loads the collection through codec and returns a Store owning it.
func Open(ctx context.Context, codec Codec, log zerolog.Logger, opts ...Option) (*Store, error) {
	todos, err := codec.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load todos: %w", err)
	}
	if todos == nil {
		todos = []Todo{}
	}

	s := &Store{
		todos:         todos,
		codec:         codec,
		log:           logging.Component(log, "todo-store"),
		now:           time.Now,
		newID:         uuid.NewString,
		defaultStatus: StatusPending,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.log.Debug().Int("count", len(todos)).Msg("todos loaded")
	return s, nil
}

// Len returns the number of todos.
func (s *Store) Len() int {
	return len(s.todos)
}

// List returns a copy of the collection in insertion order.
func (s *Store) List() []Todo {
	return slices.Clone(s.todos)
}

// Get returns the todo with the given id. Returns ErrNotFound if none matches.
func (s *Store) Get(id string) (Todo, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return Todo{}, ErrNotFound
	}
	return s.todos[idx], nil
}

// Create validates in, appends a new todo and saves the collection.
//
// Returns a *ValidationError if the title or description is empty. When the
// save fails the todo is still kept in memory and returned together with a
// *PersistenceError.
func (s *Store) Create(ctx context.Context, in NewTodo) (Todo, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return Todo{}, &ValidationError{Field: "title"}
	}
	description := strings.TrimSpace(in.Description)
	if description == "" {
		return Todo{}, &ValidationError{Field: "description"}
	}
	status := strings.TrimSpace(in.Status)
	if status == "" {
		status = s.defaultStatus
	}

	now := formatTimestamp(s.now())
	t := Todo{
		ID:          s.newID(),
		Title:       title,
		Description: description,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.todos = append(s.todos, t)
	s.log.Debug().Ctx(ctx).Str("id", t.ID).Msg("todo created")

	return t, s.save(ctx, "create")
}

// Update replaces every non-empty field of changes on the todo with the given
// id and refreshes its updated_at, even when nothing else changed.
//
// Returns ErrNotFound if no todo matches. A failed save keeps the update in
// memory and returns a *PersistenceError.
func (s *Store) Update(ctx context.Context, id string, changes Changes) (Todo, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return Todo{}, ErrNotFound
	}

	t := &s.todos[idx]
	if v := strings.TrimSpace(changes.Title); v != "" {
		t.Title = v
	}
	if v := strings.TrimSpace(changes.Description); v != "" {
		t.Description = v
	}
	if v := strings.TrimSpace(changes.Status); v != "" {
		t.Status = v
	}
	t.UpdatedAt = s.touch(t.UpdatedAt)

	s.log.Debug().Ctx(ctx).Str("id", t.ID).Msg("todo updated")

	return *t, s.save(ctx, "update")
}

// Delete removes the todo with the given id, keeping the order of the rest.
//
// Returns ErrNotFound if no todo matches. A failed save keeps the removal in
// memory and returns a *PersistenceError.
func (s *Store) Delete(ctx context.Context, id string) (Todo, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return Todo{}, ErrNotFound
	}

	removed := s.todos[idx]
	s.todos = slices.Delete(s.todos, idx, idx+1)
	s.log.Debug().Ctx(ctx).Str("id", removed.ID).Msg("todo deleted")

	return removed, s.save(ctx, "delete")
}

func (s *Store) indexOf(id string) int {
	id = strings.TrimSpace(id)
	return slices.IndexFunc(s.todos, func(t Todo) bool { return t.ID == id })
}

// touch returns the new updated_at value. It never moves backwards from prev
// so updated_at stays >= created_at when the wall clock steps back.
func (s *Store) touch(prev string) string {
	now := s.now()
	if last, ok := parseTimestamp(prev); ok && now.Before(last) {
		return prev
	}
	return formatTimestamp(now)
}

func (s *Store) save(ctx context.Context, op string) error {
	if err := s.codec.Save(ctx, s.todos); err != nil {
		s.log.Error().Ctx(ctx).Err(err).Str("op", op).Msg("failed to save todos")
		return &PersistenceError{Op: op, Err: err}
	}
	return nil
}
