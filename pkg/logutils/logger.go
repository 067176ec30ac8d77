// Package logutils builds the zerolog logger used by the todo CLI.
package logutils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// New returns a logger that appends JSON lines to file. An empty file
// discards all output so the interactive shell is never interleaved with log
// lines.
//
// The level parameter can be one of: trace, debug, info, warn, error, fatal,
// panic, disabled.
func New(level string, file string) (zerolog.Logger, func(), error) {
	closer := func() {}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, closer, fmt.Errorf("parse log level: %w", err)
	}

	var writer io.Writer = io.Discard
	if file != "" {
		if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
			return zerolog.Logger{}, closer, fmt.Errorf("create logs dir: %w", err)
		}

		osFile, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Logger{}, closer, fmt.Errorf("open log file: %w", err)
		}
		closer = func() { _ = osFile.Close() }
		writer = osFile
	}

	l := zerolog.New(writer).
		With().
		Timestamp().
		Logger().
		Level(lvl)

	return l, closer, nil
}
