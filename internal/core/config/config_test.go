package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "todos.json", cfg.Storage.File)
	assert.True(t, cfg.SchemaValidation())
	assert.Equal(t, "Pending", cfg.Defaults.Status)
	assert.Equal(t, "2006-01-02 15:04:05", cfg.Display.TimeFormat)
	assert.Equal(t, "Local", cfg.Display.Timezone)
	assert.True(t, cfg.ClearScreen())
	assert.Equal(t, "tokyo-night", cfg.Theme)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Storage.File, cfg.Storage.File)
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfig(t, `
storage:
  file: /tmp/my-todos.json
  validate_schema: false
defaults:
  status: Todo
display:
  time_format: "02 Jan 15:04"
  timezone: UTC
shell:
  clear_screen: false
theme: gruvbox
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/my-todos.json", cfg.Storage.File)
	assert.False(t, cfg.SchemaValidation())
	assert.Equal(t, "Todo", cfg.Defaults.Status)
	assert.Equal(t, "02 Jan 15:04", cfg.Display.TimeFormat)
	assert.False(t, cfg.ClearScreen())
	assert.Equal(t, "gruvbox", cfg.Theme)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "theme: gruvbox\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "gruvbox", cfg.Theme)
	assert.Equal(t, "todos.json", cfg.Storage.File)
	assert.True(t, cfg.SchemaValidation())
	assert.True(t, cfg.ClearScreen())
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "storage: [unclosed")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"unknown theme", "theme: neon\n", "unknown theme"},
		{"bad timezone", "display:\n  timezone: Mars/Olympus\n", "display.timezone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestConfig_StoragePath(t *testing.T) {
	cfg := DefaultConfig()

	path, err := cfg.StoragePath()
	require.NoError(t, err)

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(wd, "todos.json"), path)

	abs := filepath.Join(t.TempDir(), "x.json")
	cfg.Storage.File = abs
	path, err = cfg.StoragePath()
	require.NoError(t, err)
	assert.Equal(t, abs, path)
}

func TestValidateDeep_Valid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Storage.File = filepath.Join(t.TempDir(), "todos.json")

	assert.NoError(t, cfg.ValidateDeep(""))
}

func TestValidateDeep_StorageFileIsDirectory(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Storage.File = t.TempDir()

	err := cfg.ValidateDeep("")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "storage.file", fieldErrs[0].Field)
	assert.Contains(t, fieldErrs[0].Err.Error(), "is a directory")
}

func TestValidateDeep_StorageParentIsFile(t *testing.T) {
	parent := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(parent, []byte("x"), 0o644))

	cfg := DefaultConfig()
	cfg.Storage.File = filepath.Join(parent, "todos.json")

	err := cfg.ValidateDeep("")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestValidateDeep_StaticTimeFormat(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Storage.File = filepath.Join(t.TempDir(), "todos.json")
	cfg.Display.TimeFormat = "today"

	err := cfg.ValidateDeep("")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "display.time_format", fieldErrs[0].Field)
}

func TestValidateDeep_MultilineStatus(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Storage.File = filepath.Join(t.TempDir(), "todos.json")
	cfg.Defaults.Status = "Pending\nLater"

	err := cfg.ValidateDeep("")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "defaults.status", fieldErrs[0].Field)
}

func TestValidateDeep_ConfigPathIsDirectory(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Storage.File = filepath.Join(t.TempDir(), "todos.json")

	err := cfg.ValidateDeep(t.TempDir())

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "config_file", fieldErrs[0].Field)
}
