package commands

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/todo/internal/app"
	"github.com/colonyops/todo/internal/core/styles"
	"github.com/colonyops/todo/pkg/iojson"
)

type LsCmd struct {
	flags *Flags
	app   *app.App

	// flags
	jsonOutput bool
}

// NewLsCmd creates a new ls command
func NewLsCmd(flags *Flags, app *app.App) *LsCmd {
	return &LsCmd{flags: flags, app: app}
}

// Register adds the ls command to the application
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ls",
		Aliases:   []string{"list"},
		Usage:     "List all todos",
		UsageText: "todo ls [--json]",
		Description: `Displays a table of all todos in the order they were added.

Use --json for one JSON object per line with every stored field.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *LsCmd) run(ctx context.Context, c *cli.Command) error {
	todos := cmd.app.Todos.List()
	out := c.Root().Writer

	if len(todos) == 0 {
		if !cmd.jsonOutput {
			_, _ = fmt.Fprintln(c.Root().ErrWriter, styles.Warning("No todo items available."))
		}
		return nil
	}

	if cmd.jsonOutput {
		for _, t := range todos {
			if err := iojson.WriteLine(out, t); err != nil {
				return fmt.Errorf("encode todo: %w", err)
			}
		}
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tTITLE\tSTATUS\tUPDATED")
	for _, t := range todos {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.ID, t.Title, t.Status, cmd.app.FormatTime(t.UpdatedAt))
	}
	return w.Flush()
}
