package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/todo/internal/app"
	"github.com/colonyops/todo/internal/core/logging"
)

type RmCmd struct {
	flags *Flags
	app   *app.App
}

// NewRmCmd creates a new rm command
func NewRmCmd(flags *Flags, app *app.App) *RmCmd {
	return &RmCmd{flags: flags, app: app}
}

// Register adds the rm command to the application
func (cmd *RmCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "rm",
		Aliases:   []string{"delete"},
		Usage:     "Delete a todo",
		UsageText: "todo rm <id>",
		Description: `Removes a todo by its exact id.

Examples:
  todo rm 6f1c1f0e-8d4c-4b7a-9d61-0f3b7c2a1e11`,
		ShellComplete: TodoIDCompleter(cmd.app),
		Action:        cmd.run,
	})

	return app
}

func (cmd *RmCmd) run(ctx context.Context, c *cli.Command) error {
	ctx = logging.WithCommand(ctx, "rm")

	if c.NArg() < 1 {
		return fmt.Errorf("usage: todo rm <id>")
	}

	id := c.Args().Get(0)
	if _, err := cmd.app.Todos.Delete(ctx, id); err != nil {
		return mutationError(c.Root().ErrWriter, "delete", err)
	}

	_, _ = fmt.Fprintln(c.Root().Writer, "deleted")
	return nil
}
