// Package config handles configuration loading and validation for todo.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/todo/internal/core/styles"
	"github.com/colonyops/todo/internal/core/todo"
)

// DefaultFile is the backing file name used when none is configured.
const DefaultFile = "todos.json"

// Config holds the application configuration.
type Config struct {
	Storage  StorageConfig  `yaml:"storage"`
	Defaults DefaultsConfig `yaml:"defaults"`
	Display  DisplayConfig  `yaml:"display"`
	Shell    ShellConfig    `yaml:"shell"`
	Theme    string         `yaml:"theme"`
}

// StorageConfig controls the backing file.
type StorageConfig struct {
	// File is the backing file. Relative paths resolve against the working
	// directory.
	File string `yaml:"file"`
	// ValidateSchema checks the file against the todo JSON Schema on load.
	ValidateSchema *bool `yaml:"validate_schema"`
}

// DefaultsConfig holds values applied to new todos.
type DefaultsConfig struct {
	Status string `yaml:"status"`
}

// DisplayConfig controls how todos are rendered.
type DisplayConfig struct {
	TimeFormat string `yaml:"time_format"` // Go reference layout
	Timezone   string `yaml:"timezone"`    // IANA name or "Local"
}

// ShellConfig controls the interactive shell.
type ShellConfig struct {
	ClearScreen *bool `yaml:"clear_screen"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Storage: StorageConfig{
			File:           DefaultFile,
			ValidateSchema: boolPtr(true),
		},
		Defaults: DefaultsConfig{
			Status: todo.StatusPending,
		},
		Display: DisplayConfig{
			TimeFormat: todo.DefaultTimeLayout,
			Timezone:   "Local",
		},
		Shell: ShellConfig{
			ClearScreen: boolPtr(true),
		},
		Theme: styles.DefaultTheme,
	}
}

// Load reads configuration from the given path. If configPath is empty or
// doesn't exist, defaults are returned.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Storage.File == "" {
		c.Storage.File = defaults.Storage.File
	}
	if c.Storage.ValidateSchema == nil {
		c.Storage.ValidateSchema = defaults.Storage.ValidateSchema
	}
	if c.Defaults.Status == "" {
		c.Defaults.Status = defaults.Defaults.Status
	}
	if c.Display.TimeFormat == "" {
		c.Display.TimeFormat = defaults.Display.TimeFormat
	}
	if c.Display.Timezone == "" {
		c.Display.Timezone = defaults.Display.Timezone
	}
	if c.Shell.ClearScreen == nil {
		c.Shell.ClearScreen = defaults.Shell.ClearScreen
	}
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Storage.File == "" {
		return fmt.Errorf("storage.file cannot be empty")
	}

	if _, ok := styles.GetPalette(c.Theme); !ok {
		return fmt.Errorf("unknown theme %q (available: %v)", c.Theme, styles.ThemeNames())
	}

	if _, err := c.Location(); err != nil {
		return fmt.Errorf("display.timezone: %w", err)
	}

	return nil
}

// StoragePath returns the backing file as an absolute path.
func (c *Config) StoragePath() (string, error) {
	if filepath.IsAbs(c.Storage.File) {
		return c.Storage.File, nil
	}
	abs, err := filepath.Abs(c.Storage.File)
	if err != nil {
		return "", fmt.Errorf("resolve storage.file: %w", err)
	}
	return abs, nil
}

// SchemaValidation reports whether the backing file is checked against the
// JSON Schema on load.
func (c *Config) SchemaValidation() bool {
	return c.Storage.ValidateSchema == nil || *c.Storage.ValidateSchema
}

// ClearScreen reports whether the shell clears the screen between views.
func (c *Config) ClearScreen() bool {
	return c.Shell.ClearScreen == nil || *c.Shell.ClearScreen
}

// Location returns the display time zone.
func (c *Config) Location() (*time.Location, error) {
	switch c.Display.Timezone {
	case "", "Local":
		return time.Local, nil
	default:
		return time.LoadLocation(c.Display.Timezone)
	}
}

func boolPtr(b bool) *bool {
	return &b
}
