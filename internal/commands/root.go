package commands

import (
	"context"
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/todo/internal/app"
	"github.com/colonyops/todo/internal/core/config"
	"github.com/colonyops/todo/internal/core/logging"
	"github.com/colonyops/todo/internal/core/styles"
	"github.com/colonyops/todo/pkg/logutils"
)

// storelessCommands run without opening the todos file so they can report
// problems with it.
var storelessCommands = []string{"config"}

// NewRootCmd builds the todo command tree. version is reported by --version.
func NewRootCmd(version string) *cli.Command {
	var (
		logCloser func()
		todoApp   = &app.App{}
	)

	flags := &Flags{}

	root := &cli.Command{
		Name:      "todo",
		Usage:     "Keep a task list in a local JSON file",
		UsageText: "todo [global options] command [command options]",
		Description: `todo stores short task records (title, description, status) in a JSON file
and lets you add, list, update, and delete them.

Run 'todo' with no arguments to open the interactive menu.`,
		Version:               version,
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("TODO_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file",
				Sources:     cli.EnvVars("TODO_LOG_FILE"),
				Value:       DefaultLogFile(),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("TODO_CONFIG"),
				Value:       DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "file",
				Aliases:     []string{"f"},
				Usage:       "path to the todos file (overrides storage.file)",
				Sources:     cli.EnvVars("TODO_FILE"),
				Destination: &flags.File,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, closer, err := logutils.New(flags.LogLevel, flags.LogFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger.Hook(logging.ContextHook{})
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			if flags.File != "" {
				cfg.Storage.File = flags.File
			}
			flags.Config = cfg

			// Validation ensures the theme exists
			palette, _ := styles.GetPalette(cfg.Theme)
			styles.SetTheme(palette)

			if slices.Contains(storelessCommands, c.Args().First()) {
				return ctx, nil
			}

			a, err := app.New(ctx, cfg, log.Logger)
			if err != nil {
				return ctx, fmt.Errorf("open todos: %w", err)
			}

			// Populate the pre-allocated App (commands already hold a pointer to it)
			*todoApp = *a

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	shellCmd := NewShellCmd(flags, todoApp)

	root = shellCmd.Register(root)
	root = NewAddCmd(flags, todoApp).Register(root)
	root = NewLsCmd(flags, todoApp).Register(root)
	root = NewUpdateCmd(flags, todoApp).Register(root)
	root = NewRmCmd(flags, todoApp).Register(root)
	root = NewImportCmd(flags, todoApp).Register(root)
	root = NewConfigValidateCmd(flags).Register(root)

	// Open the shell when no subcommand is provided
	root.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'todo --help' for usage", c.Args().First())
		}
		return shellCmd.Run(ctx, c)
	}

	return root
}
