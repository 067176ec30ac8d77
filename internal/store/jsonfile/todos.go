package jsonfile

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/colonyops/todo/internal/core/logging"
	"github.com/colonyops/todo/internal/core/todo"
)

//go:embed todos.schema.json
var todosSchemaJSON string

var todosSchema = jsonschema.MustCompileString("todos.schema.json", todosSchemaJSON)

// ParseError reports a backing file that could not be decoded. TodoFile.Load
// logs it and falls back to an empty collection.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// TodoFile implements todo.Codec using a single pretty-printed JSON file.
type TodoFile struct {
	path           string
	validateSchema bool
	log            zerolog.Logger
}

var _ todo.Codec = (*TodoFile)(nil)

// TodoFileOption configures a TodoFile.
type TodoFileOption func(*TodoFile)

// WithSchemaValidation toggles the JSON Schema check run before decoding.
func WithSchemaValidation(enabled bool) TodoFileOption {
	return func(f *TodoFile) { f.validateSchema = enabled }
}

// NewTodoFile creates a codec for the file at path.
func NewTodoFile(path string, log zerolog.Logger, opts ...TodoFileOption) *TodoFile {
	f := &TodoFile{
		path:           path,
		validateSchema: true,
		log:            logging.Component(log, "jsonfile").With().Str("path", path).Logger(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Path returns the backing file path.
func (f *TodoFile) Path() string {
	return f.path
}

// Load reads the backing file. A missing, empty, or malformed file yields an
// empty collection; only other read failures are returned.
func (f *TodoFile) Load(ctx context.Context) ([]todo.Todo, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []todo.Todo{}, nil
		}
		return nil, fmt.Errorf("read todos file: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return []todo.Todo{}, nil
	}

	todos, err := f.decode(data)
	if err != nil {
		f.log.Warn().Ctx(ctx).Err(err).Msg("malformed todos file, starting with an empty list")
		return []todo.Todo{}, nil
	}

	return todos, nil
}

// Save truncates the backing file and writes todos as an indented JSON array.
func (f *TodoFile) Save(ctx context.Context, todos []todo.Todo) error {
	data, err := Encode(todos)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(f.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create todos dir: %w", err)
		}
	}

	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return fmt.Errorf("write todos file: %w", err)
	}

	f.log.Debug().Ctx(ctx).Int("count", len(todos)).Msg("todos saved")
	return nil
}

func (f *TodoFile) decode(data []byte) ([]todo.Todo, error) {
	if f.validateSchema {
		var doc any
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, &ParseError{Path: f.path, Err: err}
		}
		if err := todosSchema.Validate(doc); err != nil {
			return nil, &ParseError{Path: f.path, Err: err}
		}
	}

	var todos []todo.Todo
	if err := json.Unmarshal(data, &todos); err != nil {
		return nil, &ParseError{Path: f.path, Err: err}
	}
	if todos == nil {
		todos = []todo.Todo{}
	}
	return todos, nil
}

// Encode renders todos the way Save writes them: a two-space indented JSON
// array with a trailing newline, "[]" when empty.
func Encode(todos []todo.Todo) ([]byte, error) {
	if todos == nil {
		todos = []todo.Todo{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(todos); err != nil {
		return nil, fmt.Errorf("encode todos: %w", err)
	}
	return buf.Bytes(), nil
}
