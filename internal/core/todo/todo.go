// Package todo defines the todo record, its error kinds, and the in-memory
// store that owns the collection.
package todo

import (
	"context"
	"time"
)

// StatusPending is the status given to a todo created without one.
const StatusPending = "Pending"

// Todo is a single task record.
//
// Timestamps are kept as the RFC3339 strings found in the backing file so a
// value that fails to parse still survives a load and save unchanged.
type Todo struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// Created returns the parsed creation time. ok is false when the stored value
// is not RFC3339.
func (t Todo) Created() (time.Time, bool) {
	return parseTimestamp(t.CreatedAt)
}

// Updated returns the parsed last update time.
func (t Todo) Updated() (time.Time, bool) {
	return parseTimestamp(t.UpdatedAt)
}

// NewTodo holds the user supplied fields for Store.Create.
type NewTodo struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// Changes holds the user supplied fields for Store.Update. Empty fields keep
// the current value.
type Changes struct {
	Title       string
	Description string
	Status      string
}

// IsEmpty reports whether no field would be replaced.
func (c Changes) IsEmpty() bool {
	return c.Title == "" && c.Description == "" && c.Status == ""
}

// Codec loads and saves the whole todo collection.
type Codec interface {
	// Load returns the persisted collection. A missing or malformed backing
	// file yields an empty collection and no error.
	Load(ctx context.Context) ([]Todo, error)

	// Save replaces the persisted collection with todos.
	Save(ctx context.Context, todos []Todo) error
}
