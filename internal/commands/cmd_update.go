package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/todo/internal/app"
	"github.com/colonyops/todo/internal/core/logging"
	"github.com/colonyops/todo/internal/core/todo"
)

type UpdateCmd struct {
	flags *Flags
	app   *app.App

	// flags
	title       string
	description string
	status      string
}

// NewUpdateCmd creates a new update command
func NewUpdateCmd(flags *Flags, app *app.App) *UpdateCmd {
	return &UpdateCmd{flags: flags, app: app}
}

// Register adds the update command to the application
func (cmd *UpdateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "update",
		Usage:     "Update a todo",
		UsageText: "todo update <id> [--title <title>] [--description <desc>] [--status <status>]",
		Description: `Replaces the given fields of a todo. Omitted fields keep their value;
updated_at is refreshed even when no field is given.

Examples:
  todo update 6f1c1f0e-... --status Done
  todo update 6f1c1f0e-... -t "Buy oat milk"`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "title",
				Aliases:     []string{"t"},
				Usage:       "new title",
				Destination: &cmd.title,
			},
			&cli.StringFlag{
				Name:        "description",
				Aliases:     []string{"d"},
				Usage:       "new description",
				Destination: &cmd.description,
			},
			&cli.StringFlag{
				Name:        "status",
				Aliases:     []string{"s"},
				Usage:       "new status",
				Destination: &cmd.status,
			},
		},
		ShellComplete: TodoIDCompleter(cmd.app),
		Action:        cmd.run,
	})

	return app
}

func (cmd *UpdateCmd) run(ctx context.Context, c *cli.Command) error {
	ctx = logging.WithCommand(ctx, "update")

	if c.NArg() < 1 {
		return fmt.Errorf("usage: todo update <id>")
	}

	id := c.Args().Get(0)
	_, err := cmd.app.Todos.Update(ctx, id, todo.Changes{
		Title:       cmd.title,
		Description: cmd.description,
		Status:      cmd.status,
	})
	if err != nil {
		return mutationError(c.Root().ErrWriter, "update", err)
	}

	_, _ = fmt.Fprintln(c.Root().Writer, "updated")
	return nil
}
