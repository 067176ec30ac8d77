package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/todo/internal/core/todo"
)

type rootResult struct {
	out string
	err string
}

// runRoot executes args against the command tree main uses, including its
// Before hook, with logs and config isolated to a temp dir.
func runRoot(t *testing.T, stdin string, args ...string) (rootResult, error) {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("TODO_LOG_FILE", filepath.Join(dir, "todo.log"))
	t.Setenv("TODO_CONFIG", filepath.Join(dir, "missing.yaml"))
	t.Setenv("TODO_FILE", "")

	prev := log.Logger
	t.Cleanup(func() { log.Logger = prev })

	var out, errOut bytes.Buffer
	root := NewRootCmd("test")
	root.Reader = strings.NewReader(stdin)
	root.Writer = &out
	root.ErrWriter = &errOut

	err := root.Run(context.Background(), append([]string{"todo"}, args...))
	return rootResult{out: out.String(), err: errOut.String()}, err
}

func readTodos(t *testing.T, path string) []todo.Todo {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var todos []todo.Todo
	require.NoError(t, json.Unmarshal(data, &todos))
	return todos
}

func TestRoot_ConfigValidateReportsStorageDirectory(t *testing.T) {
	storage := t.TempDir()

	res, err := runRoot(t, "", "-f", storage, "config", "validate", "--format", "json")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "open todos")

	var got validationOutput
	require.NoError(t, json.Unmarshal([]byte(res.out), &got))
	assert.False(t, got.Valid)
	require.Len(t, got.Errors, 1)
	assert.Equal(t, "storage.file", got.Errors[0].Field)
	assert.Contains(t, got.Errors[0].Message, "is a directory")
}

func TestRoot_ConfigValidateReportsParentFile(t *testing.T) {
	parent := filepath.Join(t.TempDir(), "plain")
	require.NoError(t, os.WriteFile(parent, []byte("x"), 0o644))

	res, err := runRoot(t, "", "-f", filepath.Join(parent, "todos.json"), "config", "validate")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "open todos")
	assert.Contains(t, res.out, "storage.file")
	assert.Contains(t, res.out, "not a directory")
}

func TestRoot_ConfigValidateOK(t *testing.T) {
	res, err := runRoot(t, "", "-f", filepath.Join(t.TempDir(), "todos.json"), "config", "validate")
	require.NoError(t, err)
	assert.Contains(t, res.out, "config ok")
}

func TestRoot_StoreCommandFailsOnUnreadableStorage(t *testing.T) {
	_, err := runRoot(t, "", "-f", t.TempDir(), "ls")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open todos")
}

func TestRoot_AddThenList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todos.json")

	res, err := runRoot(t, "", "-f", path, "add", "-t", "Buy milk", "-d", "2% milk")
	require.NoError(t, err)

	todos := readTodos(t, path)
	require.Len(t, todos, 1)
	assert.Equal(t, todos[0].ID+"\n", res.out)
	assert.Equal(t, todo.StatusPending, todos[0].Status)

	res, err = runRoot(t, "", "-f", path, "ls", "--json")
	require.NoError(t, err)

	var listed todo.Todo
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(res.out)), &listed))
	assert.Equal(t, todos[0], listed)
}

func TestRoot_ImportInputDoesNotShadowGlobalFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "todos.json")
	input := filepath.Join(dir, "backlog.json")
	require.NoError(t, os.WriteFile(input, []byte(`[{"title":"a","description":"b"}]`), 0o644))

	res, err := runRoot(t, "", "-f", path, "import", "-i", input)
	require.NoError(t, err)
	assert.Equal(t, "imported 1, skipped 0\n", res.out)

	todos := readTodos(t, path)
	require.Len(t, todos, 1)
	assert.Equal(t, "a", todos[0].Title)

	data, err := os.ReadFile(input)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"title":"a","description":"b"}]`, string(data), "input file is not rewritten")
}

func TestRoot_ShellByDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todos.json")

	res, err := runRoot(t, "5\n", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, res.out, "Exiting... Goodbye!")
}

func TestRoot_UnknownCommand(t *testing.T) {
	_, err := runRoot(t, "", "-f", filepath.Join(t.TempDir(), "todos.json"), "frobnicate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}
