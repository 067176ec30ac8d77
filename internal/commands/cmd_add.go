package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/todo/internal/app"
	"github.com/colonyops/todo/internal/core/logging"
	"github.com/colonyops/todo/internal/core/todo"
	"github.com/colonyops/todo/pkg/iojson"
)

type AddCmd struct {
	flags *Flags
	app   *app.App

	// flags
	title       string
	description string
	status      string
	jsonOutput  bool
}

// NewAddCmd creates a new add command
func NewAddCmd(flags *Flags, app *app.App) *AddCmd {
	return &AddCmd{flags: flags, app: app}
}

// Register adds the add command to the application
func (cmd *AddCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "add",
		Usage:     "Add a todo",
		UsageText: "todo add --title <title> --description <desc> [--status <status>]",
		Description: `Creates a todo and prints its id.

The status defaults to the configured default status ("Pending").

Examples:
  todo add --title "Buy milk" --description "2% milk"
  todo add -t "Ship release" -d "tag and push" -s Done`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "title",
				Aliases:     []string{"t"},
				Usage:       "title for the todo",
				Required:    true,
				Destination: &cmd.title,
			},
			&cli.StringFlag{
				Name:        "description",
				Aliases:     []string{"d"},
				Usage:       "description for the todo",
				Required:    true,
				Destination: &cmd.description,
			},
			&cli.StringFlag{
				Name:        "status",
				Aliases:     []string{"s"},
				Usage:       "status label (defaults to the configured default status)",
				Destination: &cmd.status,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "print the created todo as JSON",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *AddCmd) run(ctx context.Context, c *cli.Command) error {
	ctx = logging.WithCommand(ctx, "add")

	created, err := cmd.app.Todos.Create(ctx, todo.NewTodo{
		Title:       cmd.title,
		Description: cmd.description,
		Status:      cmd.status,
	})
	if err != nil {
		return mutationError(c.Root().ErrWriter, "add", err)
	}

	out := c.Root().Writer
	if cmd.jsonOutput {
		return iojson.WriteLine(out, created)
	}

	_, _ = fmt.Fprintln(out, created.ID)
	return nil
}
