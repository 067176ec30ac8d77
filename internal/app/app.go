// Package app wires configuration, storage, and the todo store together for
// commands and the interactive shell.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/colonyops/todo/internal/core/config"
	"github.com/colonyops/todo/internal/core/todo"
	"github.com/colonyops/todo/internal/store/jsonfile"
)

// App is the central entry point for all todo operations.
// Commands and the shell consume App instead of cherry-picking raw dependencies.
type App struct {
	Todos    *todo.Store
	Config   *config.Config
	Location *time.Location
	File     string
	Log      zerolog.Logger
}

// New opens the backing file named by cfg and loads the todo store.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger, opts ...todo.Option) (*App, error) {
	path, err := cfg.StoragePath()
	if err != nil {
		return nil, err
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("load display timezone: %w", err)
	}

	codec := jsonfile.NewTodoFile(path, log, jsonfile.WithSchemaValidation(cfg.SchemaValidation()))

	storeOpts := append([]todo.Option{todo.WithDefaultStatus(cfg.Defaults.Status)}, opts...)
	store, err := todo.Open(ctx, codec, log, storeOpts...)
	if err != nil {
		return nil, err
	}

	log.Debug().Str("file", path).Int("count", store.Len()).Msg("app ready")

	return &App{
		Todos:    store,
		Config:   cfg,
		Location: loc,
		File:     path,
		Log:      log,
	}, nil
}

// FormatTime renders a stored timestamp for display.
func (a *App) FormatTime(raw string) string {
	return todo.FormatTimestamp(raw, a.Location, a.Config.Display.TimeFormat)
}
