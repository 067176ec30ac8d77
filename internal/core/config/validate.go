package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hay-kot/criterio"
)

// ValidateDeep performs comprehensive validation of the configuration,
// including file accessibility. The configPath argument specifies the config
// file location to validate (empty string skips the config file check).
// This calls Validate() first for basic structural validation, then adds I/O
// checks.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("storage.file", c.Storage.File, isFileOrNotExist),
		criterio.Run("storage.file", c.Storage.File, parentIsDirectoryOrNotExist),
		criterio.Run("display.time_format", c.Display.TimeFormat, hasTimeFields),
		criterio.Run("defaults.status", c.Defaults.Status, isSingleLine),
	)
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

// isFileOrNotExist validates that a path is a regular file or doesn't exist.
func isFileOrNotExist(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil // created on first save
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, not a file", path)
	}
	return nil
}

// parentIsDirectoryOrNotExist validates that the parent of path can hold the
// backing file.
func parentIsDirectoryOrNotExist(path string) error {
	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil // created on first save
	}
	if err != nil {
		return fmt.Errorf("cannot access %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("parent %s exists but is not a directory", dir)
	}
	return nil
}

// hasTimeFields rejects layouts that render a fixed string.
func hasTimeFields(layout string) error {
	ref := time.Date(2001, 2, 3, 4, 5, 6, 0, time.UTC)
	if ref.Format(layout) == layout {
		return fmt.Errorf("layout %q contains no time fields", layout)
	}
	return nil
}

func isSingleLine(s string) error {
	if strings.ContainsAny(s, "\r\n") {
		return fmt.Errorf("must be a single line")
	}
	return nil
}
