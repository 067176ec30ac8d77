package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/todo/internal/core/config"
	"github.com/colonyops/todo/internal/core/todo"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Storage.File = filepath.Join(t.TempDir(), "todos.json")
	cfg.Display.Timezone = "UTC"
	return &cfg
}

func TestNew_EmptyFile(t *testing.T) {
	cfg := testConfig(t)

	a, err := New(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, 0, a.Todos.Len())
	assert.Equal(t, cfg.Storage.File, a.File)
	assert.Equal(t, time.UTC, a.Location)
}

func TestNew_DefaultStatusFromConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.Defaults.Status = "Inbox"

	a, err := New(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)

	created, err := a.Todos.Create(context.Background(), todo.NewTodo{Title: "A", Description: "B"})
	require.NoError(t, err)
	assert.Equal(t, "Inbox", created.Status)
	assert.FileExists(t, cfg.Storage.File)
}

func TestNew_MalformedFileStartsEmpty(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(cfg.Storage.File, []byte("{broken"), 0o644))

	a, err := New(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 0, a.Todos.Len())
}

func TestApp_FormatTime(t *testing.T) {
	a, err := New(context.Background(), testConfig(t), zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, "2025-03-01 08:00:00", a.FormatTime("2025-03-01T09:00:00+01:00"))
	assert.Equal(t, "garbage", a.FormatTime("garbage"))
}
